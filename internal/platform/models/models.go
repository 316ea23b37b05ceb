package models

import "time"

// Semantic field keys of RawListing.Fields. The dealer source fills only the
// keys it could extract; consumers must treat every key as potentially absent.
const (
	FieldTitle         = "title"
	FieldSubtitle      = "subtitle"
	FieldMileage       = "mileage"
	FieldPower         = "power"
	FieldFuel          = "fuel"
	FieldGearbox       = "gearbox"
	FieldBodyType      = "bodyType"
	FieldDriveType     = "driveType"
	FieldColor         = "color"
	FieldInterior      = "interior"
	FieldClimate       = "climate"
	FieldPrice         = "price"
	FieldRegistration  = "firstRegistration"
	FieldOwners        = "previousOwners"
	FieldCondition     = "condition"
	FieldAccident      = "accident"
	FieldCubicCapacity = "cubicCapacity"
	FieldCylinders     = "cylinders"
)

// RawListing is the untyped field bag extracted from one candidate page.
// It is consumed once by the pipeline and never persisted.
type RawListing struct {
	URL       string
	Fields    map[string]string
	ImageURLs []string
	Features  []string
}

// Field returns the value for key or empty string when the key is absent.
func (r RawListing) Field(key string) string {
	return r.Fields[key]
}

// Listing is the canonical listing record. It is immutable once assembled;
// optional fields are nil when the source text was absent or unmappable.
type Listing struct {
	ID          int
	Fingerprint string
	Slug        string

	Make      *string
	Model     *string
	BodyType  *string
	DriveType *string

	Fuel          *string
	Gearbox       *string
	PowerKW       *int
	PowerPS       *int
	CubicCapacity *int
	Cylinders     *int

	Mileage           *int
	FirstRegistration *string
	PreviousOwners    *int
	Condition         string
	AccidentDamaged   *bool

	ExteriorColor    *string
	Metallic         bool
	InteriorColor    *string
	InteriorMaterial *string
	Climate          *string

	Price     *int
	Currency  string
	PriceType string

	Images   []string
	Features []string

	// SourceURL is kept for provenance only and is never exposed externally.
	SourceURL string
}

// Run is one sync run over the configured dealer roster.
type Run struct {
	ID             int
	CreatedAt      time.Time
	FinishedAt     *time.Time
	IsSuccess      *bool
	StatusMessage  *string
	Found          *int32
	New            *int32
	Skipped        *int32
	ImagesUploaded *int32
}
