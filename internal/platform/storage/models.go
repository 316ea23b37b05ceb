package storage

import (
	"strings"

	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/dealersync/dealersync/internal/platform/report"
	"github.com/samber/lo"

	pgmodels "github.com/dealersync/dealersync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		FinishedAt:     run.FinishedAt,
		Success:        run.IsSuccess,
		StatusMessage:  run.StatusMessage,
		Found:          run.Found,
		NewListings:    run.New,
		Skipped:        run.Skipped,
		ImagesUploaded: run.ImagesUploaded,
	}
}

// ToDBListing converts models.Listing into postgres listing model.
func ToDBListing(listing *models.Listing) *pgmodels.Listing {
	return &pgmodels.Listing{
		Fingerprint:       listing.Fingerprint,
		Slug:              listing.Slug,
		Make:              listing.Make,
		Model:             listing.Model,
		BodyType:          listing.BodyType,
		DriveType:         listing.DriveType,
		Fuel:              listing.Fuel,
		Gearbox:           listing.Gearbox,
		PowerKw:           toInt32(listing.PowerKW),
		PowerPs:           toInt32(listing.PowerPS),
		CubicCapacity:     toInt32(listing.CubicCapacity),
		Cylinders:         toInt32(listing.Cylinders),
		Mileage:           toInt32(listing.Mileage),
		FirstRegistration: listing.FirstRegistration,
		PreviousOwners:    toInt32(listing.PreviousOwners),
		Condition:         listing.Condition,
		AccidentDamaged:   listing.AccidentDamaged,
		ExteriorColor:     listing.ExteriorColor,
		Metallic:          listing.Metallic,
		InteriorColor:     listing.InteriorColor,
		InteriorMaterial:  listing.InteriorMaterial,
		Climate:           listing.Climate,
		Price:             toInt32(listing.Price),
		Currency:          listing.Currency,
		PriceType:         listing.PriceType,
		Images:            joinLines(listing.Images),
		Features:          joinLines(listing.Features),
		SourceURL:         listing.SourceURL,
	}
}

// ToDBRunErrors converts report entries into postgres run error models,
// keeping their original order via the position column.
func ToDBRunErrors(runID int32, entries []report.Entry) []pgmodels.RunError {
	if len(entries) == 0 {
		return []pgmodels.RunError{}
	}

	dbErrors := make([]pgmodels.RunError, 0, len(entries))
	for ix := range entries {
		dbErrors = append(dbErrors, pgmodels.RunError{
			RunID:     runID,
			Position:  int32(ix),
			ErrorType: entries[ix].Type,
			Context:   entries[ix].Context,
			Message:   entries[ix].Message,
		})
	}
	return dbErrors
}

func toInt32(value *int) *int32 {
	if value == nil {
		return nil
	}
	return lo.ToPtr(int32(*value))
}

func joinLines(values []string) string {
	return strings.Join(values, "\n")
}
