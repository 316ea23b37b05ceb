package dedup

// Set is the deduplication oracle: the snapshot of fingerprints already
// ingested before the run began. It is built once at run start and read-only
// thereafter, so listings produced during the run never join it. That keeps
// run behavior reproducible regardless of candidate scheduling order.
type Set struct {
	known map[string]struct{}
}

// NewSet builds a Set from previously known fingerprints.
func NewSet(fingerprints []string) *Set {
	known := make(map[string]struct{}, len(fingerprints))
	for _, fp := range fingerprints {
		known[fp] = struct{}{}
	}

	return &Set{known: known}
}

// Contains reports whether the fingerprint was known before the run started.
func (s *Set) Contains(fingerprint string) bool {
	_, ok := s.known[fingerprint]
	return ok
}

// Size returns the number of known fingerprints.
func (s *Set) Size() int {
	return len(s.known)
}
