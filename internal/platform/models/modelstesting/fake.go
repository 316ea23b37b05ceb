package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeListing returns models.Listing with fake data and a random number of fake images.
func FakeListing(ops ...func(l *models.Listing)) models.Listing {
	listing := models.Listing{
		Fingerprint:       faker.UUIDDigit(),
		Slug:              faker.Word(),
		Make:              lo.ToPtr(faker.Word()),
		Model:             lo.ToPtr(faker.Word()),
		BodyType:          lo.ToPtr(faker.Word()),
		DriveType:         lo.ToPtr(faker.Word()),
		Fuel:              lo.ToPtr(faker.Word()),
		Gearbox:           lo.ToPtr(faker.Word()),
		PowerKW:           lo.ToPtr(rand.Intn(400)),
		PowerPS:           lo.ToPtr(rand.Intn(550)),
		CubicCapacity:     lo.ToPtr(rand.Intn(5000)),
		Cylinders:         lo.ToPtr(rand.Intn(12)),
		Mileage:           lo.ToPtr(rand.Intn(300000)),
		FirstRegistration: lo.ToPtr(fakeRegistration()),
		PreviousOwners:    lo.ToPtr(rand.Intn(5)),
		Condition:         "USED",
		ExteriorColor:     lo.ToPtr(faker.Word()),
		InteriorColor:     lo.ToPtr(faker.Word()),
		InteriorMaterial:  lo.ToPtr(faker.Word()),
		Price:             lo.ToPtr(rand.Intn(100000)),
		Currency:          "EUR",
		PriceType:         faker.Word(),
		Images:            fakeImages(),
		Features:          fakeFeatures(),
		SourceURL:         faker.URL(),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

// FakeRawListing returns models.RawListing with fake field values for every known key.
func FakeRawListing(ops ...func(r *models.RawListing)) models.RawListing {
	raw := models.RawListing{
		URL: faker.URL(),
		Fields: map[string]string{
			models.FieldTitle:        fmt.Sprintf("%s %s", faker.Word(), faker.Word()),
			models.FieldMileage:      fmt.Sprintf("%d km", rand.Intn(300000)),
			models.FieldPower:        fmt.Sprintf("%d kW (%d PS)", rand.Intn(400), rand.Intn(550)),
			models.FieldFuel:         faker.Word(),
			models.FieldGearbox:      faker.Word(),
			models.FieldColor:        faker.Word(),
			models.FieldInterior:     fmt.Sprintf("%s, %s", faker.Word(), faker.Word()),
			models.FieldPrice:        fmt.Sprintf("%d €", rand.Intn(100000)),
			models.FieldRegistration: fakeRawRegistration(),
		},
		ImageURLs: fakeImages(),
		Features:  fakeFeatures(),
	}

	for _, op := range ops {
		op(&raw)
	}

	return raw
}

func fakeRegistration() string {
	return fmt.Sprintf("%d%02d", 2000+rand.Intn(24), 1+rand.Intn(12))
}

func fakeRawRegistration() string {
	return fmt.Sprintf("%02d/%d", 1+rand.Intn(12), 2000+rand.Intn(24))
}

func fakeImages() []string {
	imagesLen := rand.Intn(5)
	images := make([]string, 0, imagesLen)
	for i := 0; i < imagesLen; i++ {
		images = append(images, faker.URL())
	}

	return images
}

func fakeFeatures() []string {
	featuresLen := rand.Intn(8)
	features := make([]string, 0, featuresLen)
	for i := 0; i < featuresLen; i++ {
		features = append(features, faker.Word())
	}

	return features
}
