package report

import (
	"sync"
	"time"

	"github.com/samber/lo"
)

// Error classes used for report entries.
const (
	TypeSnapshot  = "fingerprint-snapshot"
	TypeDealer    = "dealer"
	TypeCandidate = "candidate"
	TypeImage     = "image"
	TypePersist   = "persist"
)

// Entry is one structured error record.
type Entry struct {
	Type    string `json:"type"`
	Context string `json:"context"`
	Message string `json:"message"`
}

// Report accumulates counters and errors for the duration of one run.
// It is the only mutable resource shared between candidate workers, so every
// mutation goes through its mutex. A snapshot is valid at any point in the
// run; partial reports from cancelled runs are still flushed.
type Report struct {
	mu sync.Mutex

	startedAt      time.Time
	finishedAt     *time.Time
	dealers        []string
	found          int32
	newListings    int32
	skipped        int32
	imagesUploaded int32
	errors         []Entry
}

// Snapshot is an immutable copy of the report state.
type Snapshot struct {
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt"`
	Dealers        []string   `json:"dealers"`
	Found          int32      `json:"found"`
	New            int32      `json:"new"`
	Skipped        int32      `json:"skipped"`
	ImagesUploaded int32      `json:"imagesUploaded"`
	Errors         []Entry    `json:"errors"`
}

// New returns a Report for a run over the provided dealer roster.
func New(startedAt time.Time, dealers []string) *Report {
	return &Report{
		startedAt: startedAt,
		dealers:   dealers,
	}
}

// AddError appends one structured error entry.
func (r *Report) AddError(errType, context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, Entry{Type: errType, Context: context, Message: message})
}

// IncFound counts one discovered candidate.
func (r *Report) IncFound() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.found++
}

// IncNew counts one newly persisted listing.
func (r *Report) IncNew() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.newListings++
}

// IncSkipped counts one candidate suppressed as a duplicate.
func (r *Report) IncSkipped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

// AddImagesUploaded counts successfully rehosted images.
func (r *Report) AddImagesUploaded(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imagesUploaded += int32(count)
}

// Finish stamps the end of the run.
func (r *Report) Finish(finishedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finishedAt = lo.ToPtr(finishedAt)
}

// Snapshot returns an immutable copy of the current state.
func (r *Report) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		StartedAt:      r.startedAt,
		FinishedAt:     r.finishedAt,
		Dealers:        append([]string(nil), r.dealers...),
		Found:          r.found,
		New:            r.newListings,
		Skipped:        r.skipped,
		ImagesUploaded: r.imagesUploaded,
		Errors:         append([]Entry(nil), r.errors...),
	}
}
