package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const fingerprintDelimiter = "|"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Fingerprint computes the durable identity hash of a listing from its four
// identity fields. Absent fields are substituted with the empty string, so
// the digest is a pure function of the inputs and stable across runs.
func Fingerprint(mk, model *string, mileage *int, firstRegistration *string) string {
	parts := []string{
		deref(mk),
		deref(model),
		derefInt(mileage),
		deref(firstRegistration),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, fingerprintDelimiter)))

	return hex.EncodeToString(sum[:])
}

// Slug builds the human-readable display key: lowercased, hyphenated
// make-model-year plus a short random suffix. The suffix makes slugs
// practically unique even for identical vehicles and is never part of
// the fingerprint.
func Slug(mk, model *string, year string) string {
	if year == "" {
		year = "unknown"
	}

	base := strings.ToLower(strings.Join([]string{deref(mk), deref(model), year}, " "))
	base = nonAlphanumeric.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Year extracts the four-digit year from a canonical YYYYMM registration.
// Anything shorter yields empty string.
func Year(firstRegistration *string) string {
	reg := deref(firstRegistration)
	if len(reg) < 4 {
		return ""
	}
	if _, err := strconv.Atoi(reg[:4]); err != nil {
		return ""
	}

	return reg[:4]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
