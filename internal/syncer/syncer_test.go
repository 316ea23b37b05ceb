package syncer_test

import (
	"context"
	"testing"
	"time"

	"github.com/dealersync/dealersync/internal/assemble"
	"github.com/dealersync/dealersync/internal/identity"
	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/dealersync/dealersync/internal/platform/models/modelstesting"
	"github.com/dealersync/dealersync/internal/platform/report"
	"github.com/dealersync/dealersync/internal/syncer"
	"github.com/dealersync/dealersync/internal/syncer/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	createdAt = time.Date(2024, time.April, 1, 1, 1, 1, 0, time.UTC)
	now       = time.Date(2024, time.April, 1, 2, 1, 1, 0, time.UTC)

	dealerOne = "https://dealer-one.example/fahrzeuge"
	dealerTwo = "https://dealer-two.example/fahrzeuge"

	rawGolf = fakeRaw("VW Golf VIII", "30.000 km", "03/2021", []string{
		"https://dealer-one.example/img/golf-1.jpg",
		"https://dealer-one.example/img/golf-2.jpg",
	})
	rawPassat = fakeRaw("VW Passat Variant", "95.500 km", "11/2018", []string{
		"https://dealer-one.example/img/passat-1.jpg",
	})
	rawCorsa = fakeRaw("Opel Corsa F", "12.000 km", "06/2023", []string{
		"https://dealer-two.example/img/corsa-1.jpg",
	})
)

func testConfig() syncer.Config {
	return syncer.Config{
		PerDealerCap: 10,
		Workers:      2,
	}
}

func TestUnitSync(t *testing.T) {
	run := &models.Run{ID: 1, CreatedAt: createdAt}

	// passat is already known, so it must be counted as skipped without any
	// image or storage work spent on it.
	wantRun := &models.Run{
		ID:             1,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		Found:          lo.ToPtr(int32(3)),
		New:            lo.ToPtr(int32(2)),
		Skipped:        lo.ToPtr(int32(1)),
		ImagesUploaded: lo.ToPtr(int32(3)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, []string{fingerprintOf(rawPassat)}, nil)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf", "https://one/passat"}, nil)
	mockSourceListingURLs(source, dealerTwo, []string{"https://two/corsa"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockSourceFetchListing(source, "https://one/passat", rawPassat, nil)
	mockSourceFetchListing(source, "https://two/corsa", rawCorsa, nil)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg", "cdn/golf/1.jpg"}, nil)
	mockImagesProcess(images, rawCorsa.ImageURLs, []string{"cdn/corsa/0.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawGolf), 10, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawCorsa), 11, nil)
	mockStorageFinishRun(storage, wantRun, nil, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne, dealerTwo})

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSyncStartRunError(t *testing.T) {
	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, nil, assert.AnError)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.ErrorIs(t, err, assert.AnError, "should return error from starting run")
}

func TestUnitSyncFingerprintsError(t *testing.T) {
	run := &models.Run{ID: 2, CreatedAt: createdAt}

	// a failed snapshot load degrades dedup to an empty set, everything is
	// treated as new and the failure lands in the report.
	wantRun := &models.Run{
		ID:             2,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		StatusMessage:  lo.ToPtr("finished with 1 recovered errors"),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(1)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, assert.AnError)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/passat"}, nil)
	mockSourceFetchListing(source, "https://one/passat", rawPassat, nil)
	mockImagesProcess(images, rawPassat.ImageURLs, []string{"cdn/passat/0.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawPassat), 12, nil)
	mockStorageFinishRun(storage, wantRun, []string{report.TypeSnapshot}, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSyncDealerError(t *testing.T) {
	run := &models.Run{ID: 3, CreatedAt: createdAt}

	wantRun := &models.Run{
		ID:             3,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		StatusMessage:  lo.ToPtr("finished with 1 recovered errors"),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(1)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	mockSourceListingURLs(source, dealerOne, nil, assert.AnError)
	mockSourceListingURLs(source, dealerTwo, []string{"https://two/corsa"}, nil)
	mockSourceFetchListing(source, "https://two/corsa", rawCorsa, nil)
	mockImagesProcess(images, rawCorsa.ImageURLs, []string{"cdn/corsa/0.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawCorsa), 13, nil)
	mockStorageFinishRun(storage, wantRun, []string{report.TypeDealer}, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne, dealerTwo})

	require.NoError(t, err, "one broken storefront shouldn't fail the run")
}

func TestUnitSyncCandidateError(t *testing.T) {
	run := &models.Run{ID: 4, CreatedAt: createdAt}

	wantRun := &models.Run{
		ID:             4,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		StatusMessage:  lo.ToPtr("finished with 1 recovered errors"),
		Found:          lo.ToPtr(int32(2)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(2)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf", "https://one/broken"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockSourceFetchListing(source, "https://one/broken", nil, assert.AnError)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg", "cdn/golf/1.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawGolf), 14, nil)
	mockStorageFinishRun(storage, wantRun, []string{report.TypeCandidate}, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "one broken candidate page shouldn't fail the run")
}

func TestUnitSyncInsertError(t *testing.T) {
	run := &models.Run{ID: 5, CreatedAt: createdAt}

	wantRun := &models.Run{
		ID:             5,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		StatusMessage:  lo.ToPtr("finished with 1 recovered errors"),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(0)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(2)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg", "cdn/golf/1.jpg"}, nil)
	storage.On("InsertListing", mock.Anything, mock.Anything).Return(0, assert.AnError).Once()
	mockStorageFinishRun(storage, wantRun, []string{report.TypePersist}, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "a failed insert shouldn't fail the run")
}

func TestUnitSyncImageErrors(t *testing.T) {
	run := &models.Run{ID: 6, CreatedAt: createdAt}

	// one of two photos fails, the listing is persisted with the survivor
	// and the failure is reported.
	wantRun := &models.Run{
		ID:             6,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		StatusMessage:  lo.ToPtr("finished with 1 recovered errors"),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(1)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg"}, []error{assert.AnError})
	mockStorageInsertListing(storage, fingerprintOf(rawGolf), 15, nil)
	mockStorageFinishRun(storage, wantRun, []string{report.TypeImage}, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "failed photos shouldn't fail the run")
}

func TestUnitSyncPerDealerCap(t *testing.T) {
	run := &models.Run{ID: 7, CreatedAt: createdAt}

	wantRun := &models.Run{
		ID:             7,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(2)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	// only the first of three candidates may be fetched.
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf", "https://one/passat", "https://one/corsa"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg", "cdn/golf/1.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawGolf), 16, nil)
	mockStorageFinishRun(storage, wantRun, nil, nil)

	config := testConfig()
	config.PerDealerCap = 1
	logger := zerolog.Nop()
	sy := syncer.NewSyncer(source, storage, images, &logger, config, syncer.WithClock(fakeClock{now: &now}))

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSyncGlobalCap(t *testing.T) {
	run := &models.Run{ID: 8, CreatedAt: createdAt}

	wantRun := &models.Run{
		ID:             8,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		Found:          lo.ToPtr(int32(1)),
		New:            lo.ToPtr(int32(1)),
		Skipped:        lo.ToPtr(int32(0)),
		ImagesUploaded: lo.ToPtr(int32(2)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	// the budget is spent on dealer one's first candidate, so dealer two is
	// never even listed.
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf", "https://one/passat"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockImagesProcess(images, rawGolf.ImageURLs, []string{"cdn/golf/0.jpg", "cdn/golf/1.jpg"}, nil)
	mockStorageInsertListing(storage, fingerprintOf(rawGolf), 17, nil)
	mockStorageFinishRun(storage, wantRun, nil, nil)

	config := testConfig()
	config.GlobalCap = 1
	logger := zerolog.Nop()
	sy := syncer.NewSyncer(source, storage, images, &logger, config, syncer.WithClock(fakeClock{now: &now}))

	err := sy.Sync(context.TODO(), []string{dealerOne, dealerTwo})

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSyncRerunSkipsEverything(t *testing.T) {
	run := &models.Run{ID: 9, CreatedAt: createdAt}

	// a re-run over an unchanged storefront persists nothing.
	wantRun := &models.Run{
		ID:             9,
		CreatedAt:      createdAt,
		FinishedAt:     &now,
		IsSuccess:      lo.ToPtr(true),
		Found:          lo.ToPtr(int32(2)),
		New:            lo.ToPtr(int32(0)),
		Skipped:        lo.ToPtr(int32(2)),
		ImagesUploaded: lo.ToPtr(int32(0)),
	}

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, []string{fingerprintOf(rawGolf), fingerprintOf(rawPassat)}, nil)
	mockSourceListingURLs(source, dealerOne, []string{"https://one/golf", "https://one/passat"}, nil)
	mockSourceFetchListing(source, "https://one/golf", rawGolf, nil)
	mockSourceFetchListing(source, "https://one/passat", rawPassat, nil)
	mockStorageFinishRun(storage, wantRun, nil, nil)

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(context.TODO(), []string{dealerOne})

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSyncCancelledRunStillFlushes(t *testing.T) {
	run := &models.Run{ID: 10, CreatedAt: createdAt}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := mocks.NewSource(t)
	storage := mocks.NewStorage(t)
	images := mocks.NewImageProcessor(t)

	mockStorageStartRun(storage, run, nil)
	mockStorageKnownFingerprints(storage, nil, nil)
	storage.On(
		"FinishRun",
		mock.Anything,
		mock.MatchedBy(func(got *models.Run) bool {
			return got.IsSuccess != nil && !*got.IsSuccess &&
				got.StatusMessage != nil && *got.StatusMessage == "interrupted: context canceled"
		}),
		mock.Anything,
	).Return(nil).Once()

	sy := newSyncer(t, source, storage, images)

	err := sy.Sync(ctx, []string{dealerOne})

	require.NoError(t, err, "shouldn't return any error")
}

func newSyncer(
	t *testing.T,
	source *mocks.Source,
	storage *mocks.Storage,
	images *mocks.ImageProcessor,
) *syncer.Syncer {
	t.Helper()
	logger := zerolog.Nop()
	return syncer.NewSyncer(source, storage, images, &logger, testConfig(), syncer.WithClock(fakeClock{now: &now}))
}

func fakeRaw(title, mileage, registration string, images []string) *models.RawListing {
	raw := modelstesting.FakeRawListing(func(r *models.RawListing) {
		r.Fields[models.FieldTitle] = title
		r.Fields[models.FieldMileage] = mileage
		r.Fields[models.FieldRegistration] = registration
		r.ImageURLs = images
	})
	return &raw
}

func fingerprintOf(raw *models.RawListing) string {
	core := assemble.ExtractCore(*raw)
	return identity.Fingerprint(core.Make, core.Model, core.Mileage, core.FirstRegistration)
}

func mockStorageStartRun(storage *mocks.Storage, run *models.Run, err error) {
	storage.On("StartRun", mock.Anything).Return(run, err).Once()
}

func mockStorageKnownFingerprints(storage *mocks.Storage, fingerprints []string, err error) {
	storage.On("KnownFingerprints", mock.Anything).Return(fingerprints, err).Once()
}

func mockSourceListingURLs(source *mocks.Source, dealerURL string, urls []string, err error) {
	source.On("ListingURLs", mock.Anything, dealerURL).Return(urls, err).Once()
}

func mockSourceFetchListing(source *mocks.Source, url string, raw *models.RawListing, err error) {
	source.On("FetchListing", mock.Anything, url).Return(raw, err).Once()
}

func mockImagesProcess(images *mocks.ImageProcessor, sourceURLs, refs []string, errs []error) {
	images.On("Process", mock.Anything, mock.AnythingOfType("string"), sourceURLs).Return(refs, errs).Once()
}

func mockStorageInsertListing(storage *mocks.Storage, fingerprint string, id int, err error) {
	storage.On(
		"InsertListing",
		mock.Anything,
		mock.MatchedBy(func(listing *models.Listing) bool { return listing.Fingerprint == fingerprint }),
	).Return(id, err).Once()
}

func mockStorageFinishRun(storage *mocks.Storage, wantRun *models.Run, wantErrTypes []string, err error) {
	storage.On(
		"FinishRun",
		mock.Anything,
		wantRun,
		mock.MatchedBy(func(entries []report.Entry) bool {
			if len(entries) != len(wantErrTypes) {
				return false
			}
			for ix, entry := range entries {
				if entry.Type != wantErrTypes[ix] {
					return false
				}
			}
			return true
		}),
	).Return(err).Once()
}

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
