package assemble

import (
	"github.com/dealersync/dealersync/internal/normalize"
	"github.com/dealersync/dealersync/internal/parse"
	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/samber/lo"
)

// Core holds the four identity fields of a candidate. They are extracted
// before deduplication so a duplicate never pays for full normalization.
type Core struct {
	Make              *string
	Model             *string
	Mileage           *int
	FirstRegistration *string
}

// ExtractCore parses the identity fields out of the raw bag.
func ExtractCore(raw models.RawListing) Core {
	mk, model := parse.MakeModel(raw.Field(models.FieldTitle))

	var registration *string
	if reg := parse.Registration(raw.Field(models.FieldRegistration)); reg != "" {
		registration = lo.ToPtr(reg)
	}

	return Core{
		Make:              mk,
		Model:             model,
		Mileage:           parse.Number(raw.Field(models.FieldMileage)),
		FirstRegistration: registration,
	}
}

// Assemble combines parser outputs, identity and image results into one
// canonical immutable listing. Every unparseable field defaults to nil so a
// partially-unreadable source page still yields a usable record.
func Assemble(raw models.RawListing, core Core, fingerprint, slug string, images []string) models.Listing {
	powerKW, powerPS := parse.Power(raw.Field(models.FieldPower))
	exteriorColor, metallic := parse.Color(raw.Field(models.FieldColor))
	interiorMaterial, interiorColor := parse.Interior(raw.Field(models.FieldInterior))
	price, currency, priceType := parse.Price(raw.Field(models.FieldPrice))

	return models.Listing{
		Fingerprint: fingerprint,
		Slug:        slug,

		Make:      core.Make,
		Model:     core.Model,
		BodyType:  normalize.Body.Normalize(raw.Field(models.FieldBodyType)),
		DriveType: normalize.Drive.Normalize(raw.Field(models.FieldDriveType)),

		Fuel:          normalize.Fuel.Normalize(raw.Field(models.FieldFuel)),
		Gearbox:       normalize.Gearbox.Normalize(raw.Field(models.FieldGearbox)),
		PowerKW:       powerKW,
		PowerPS:       powerPS,
		CubicCapacity: parse.Number(raw.Field(models.FieldCubicCapacity)),
		Cylinders:     parse.Number(raw.Field(models.FieldCylinders)),

		Mileage:           core.Mileage,
		FirstRegistration: core.FirstRegistration,
		PreviousOwners:    parse.Number(raw.Field(models.FieldOwners)),
		Condition:         parse.Condition(raw.Field(models.FieldCondition)),
		AccidentDamaged:   parse.AccidentDamaged(raw.Field(models.FieldAccident)),

		ExteriorColor:    exteriorColor,
		Metallic:         metallic,
		InteriorColor:    interiorColor,
		InteriorMaterial: interiorMaterial,
		Climate:          normalize.Climate.Normalize(raw.Field(models.FieldClimate)),

		Price:     price,
		Currency:  currency,
		PriceType: priceType,

		Images:   images,
		Features: raw.Features,

		SourceURL: raw.URL,
	}
}
