package dealer

import "github.com/dealersync/dealersync/internal/platform/models"

// Profile maps the DOM of one storefront software family to semantic field
// keys. Storefronts running the same dealer software share a profile.
type Profile struct {
	// ListingAnchors selects candidate detail-page anchors on the inventory page.
	ListingAnchors string
	// Fields maps semantic field keys to detail-page selectors.
	Fields map[string]string
	// Images selects gallery image nodes on the detail page.
	Images string
	// Features selects equipment list items on the detail page.
	Features string
}

// DefaultProfile matches the storefront markup most German dealer sites
// are built from.
func DefaultProfile() Profile {
	return Profile{
		ListingAnchors: `a[href*="/fahrzeug"], a.vehicle-link, .vehicle-card a`,
		Fields: map[string]string{
			models.FieldTitle:         `h1.vehicle-title, h1`,
			models.FieldSubtitle:      `.vehicle-subtitle`,
			models.FieldMileage:       `[data-field="mileage"], .spec-mileage dd`,
			models.FieldPower:         `[data-field="power"], .spec-power dd`,
			models.FieldFuel:          `[data-field="fuel"], .spec-fuel dd`,
			models.FieldGearbox:       `[data-field="gearbox"], .spec-gearbox dd`,
			models.FieldBodyType:      `[data-field="category"], .spec-category dd`,
			models.FieldDriveType:     `[data-field="drive"], .spec-drive dd`,
			models.FieldColor:         `[data-field="color"], .spec-color dd`,
			models.FieldInterior:      `[data-field="interior"], .spec-interior dd`,
			models.FieldPrice:         `.vehicle-price, [data-field="price"]`,
			models.FieldRegistration:  `[data-field="first-registration"], .spec-registration dd`,
			models.FieldOwners:        `[data-field="owners"], .spec-owners dd`,
			models.FieldCondition:     `[data-field="condition"], .spec-condition dd`,
			models.FieldAccident:      `[data-field="accident"], .spec-accident dd`,
			models.FieldClimate:       `[data-field="climate"], .spec-climate dd`,
			models.FieldCubicCapacity: `[data-field="cubic-capacity"], .spec-ccm dd`,
			models.FieldCylinders:     `[data-field="cylinders"], .spec-cylinders dd`,
		},
		Images:   `.vehicle-gallery img, .gallery img`,
		Features: `.vehicle-features li, .equipment-list li`,
	}
}
