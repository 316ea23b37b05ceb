package normalize

import (
	"strings"

	"github.com/samber/lo"
)

// Mapping binds one source vocabulary key to its canonical value.
type Mapping struct {
	Key       string
	Canonical string
}

// Table is an ordered vocabulary mapping. Order matters: the substring tier
// resolves ties by picking the first entry whose key matches.
type Table []Mapping

// Normalize maps free-text source vocabulary to a canonical value.
// Resolution order, first match wins:
//  1. exact key match
//  2. case-insensitive key match
//  3. case-insensitive substring match (value contains a table key)
//
// Blank input and unmapped values both yield nil; an unmapped value is
// expected steady-state behavior, not an error.
func (t Table) Normalize(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	for _, m := range t {
		if m.Key == trimmed {
			return lo.ToPtr(m.Canonical)
		}
	}

	lowered := strings.ToLower(trimmed)
	for _, m := range t {
		if strings.ToLower(m.Key) == lowered {
			return lo.ToPtr(m.Canonical)
		}
	}

	for _, m := range t {
		if strings.Contains(lowered, strings.ToLower(m.Key)) {
			return lo.ToPtr(m.Canonical)
		}
	}

	return nil
}
