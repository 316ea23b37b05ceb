package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/dealersync/dealersync/internal/assemble"
	"github.com/dealersync/dealersync/internal/dedup"
	"github.com/dealersync/dealersync/internal/identity"
	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/dealersync/dealersync/internal/platform/report"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Source --filename source.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name ImageProcessor --filename image_processor.go

// Source lists and fetches candidate listings of a dealer storefront.
type Source interface {
	// ListingURLs returns candidate listing page URLs of the dealer storefront.
	ListingURLs(ctx context.Context, dealerURL string) ([]string, error)
	// FetchListing fetches one candidate page and extracts its raw fields.
	FetchListing(ctx context.Context, url string) (*models.RawListing, error)
}

// Storage is listings and runs storage.
type Storage interface {
	// StartRun creates new run if there is no other run in progress.
	StartRun(ctx context.Context) (*models.Run, error)
	// FinishRun finishes provided run, updates its statistics and persists report entries.
	FinishRun(ctx context.Context, run *models.Run, entries []report.Entry) error
	// KnownFingerprints returns fingerprints of all persisted listings.
	KnownFingerprints(ctx context.Context) ([]string, error)
	// InsertListing persists the listing and returns its id.
	// Inserting an already-known fingerprint is a no-op returning the existing id.
	InsertListing(ctx context.Context, listing *models.Listing) (int, error)
}

// ImageProcessor standardizes and rehosts listing photos.
type ImageProcessor interface {
	Process(ctx context.Context, slug string, sourceURLs []string) ([]string, []error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Monitor counts pipeline events for observability.
type Monitor interface {
	IncFound()
	IncNew()
	IncSkipped()
	AddImagesUploaded(count int)
	IncError(errType string)
}

// Config bounds one sync run.
type Config struct {
	// PerDealerCap is the maximum number of candidates taken from one storefront.
	PerDealerCap int
	// GlobalCap is the maximum number of candidates processed in one run,
	// zero or negative means unbounded.
	GlobalCap int
	// Workers is the number of concurrent candidate workers per dealer.
	Workers int
	// Pace is the minimum spacing between source page fetches.
	Pace time.Duration
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer discovers dealer listings, filters known ones and persists the rest.
type Syncer struct {
	source  Source
	storage Storage
	images  ImageProcessor
	logger  *zerolog.Logger
	config  Config
	clock   Clock
	monitor Monitor
	pace    *pacer
}

// NewSyncer returns new Syncer.
func NewSyncer(
	source Source,
	storage Storage,
	images ImageProcessor,
	logger *zerolog.Logger,
	config Config,
	ops ...Option,
) *Syncer {
	sy := &Syncer{
		source:  source,
		storage: storage,
		images:  images,
		logger:  logger,
		config:  config,
		clock:   systemClock{},
		monitor: noopMonitor{},
		pace:    newPacer(config.Pace),
	}
	if sy.config.Workers <= 0 {
		sy.config.Workers = 1
	}

	for _, op := range ops {
		op(sy)
	}

	return sy
}

// Sync runs one full pass over the provided dealer storefronts.
// Dealer, candidate, image and persistence failures are recorded in the run
// report and do not abort the pass; only a failed run start is returned as
// an error.
func (s *Syncer) Sync(ctx context.Context, dealers []string) error {
	run, err := s.storage.StartRun(ctx)
	if err != nil {
		return fmt.Errorf("can't start run: %w", err)
	}

	rep := report.New(run.CreatedAt, dealers)

	// the snapshot is loaded once and never updated mid-run; a failed load
	// degrades the run to dedup-free instead of aborting it.
	fingerprints, err := s.storage.KnownFingerprints(ctx)
	if err != nil {
		rep.AddError(report.TypeSnapshot, "", err.Error())
		s.monitor.IncError(report.TypeSnapshot)
	}
	known := dedup.NewSet(fingerprints)

	budget := newBudget(s.config.GlobalCap)

	for _, dealerURL := range dealers {
		if ctx.Err() != nil || budget.exhausted() {
			break
		}
		if err := s.syncDealer(ctx, dealerURL, known, budget, rep); err != nil {
			rep.AddError(report.TypeDealer, dealerURL, err.Error())
			s.monitor.IncError(report.TypeDealer)
		}
	}

	return s.finishRun(ctx, run, rep)
}

func (s *Syncer) syncDealer(
	ctx context.Context,
	dealerURL string,
	known *dedup.Set,
	budget *budget,
	rep *report.Report,
) error {
	urls, err := s.source.ListingURLs(ctx, dealerURL)
	if err != nil {
		return fmt.Errorf("can't list candidates: %w", err)
	}
	if s.config.PerDealerCap > 0 && len(urls) > s.config.PerDealerCap {
		urls = urls[:s.config.PerDealerCap]
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Workers)

	for _, url := range urls {
		if groupCtx.Err() != nil || !budget.claim() {
			break
		}
		url := url
		group.Go(func() error {
			s.syncCandidate(groupCtx, url, known, rep)
			return nil
		})
	}

	return group.Wait()
}

func (s *Syncer) syncCandidate(ctx context.Context, url string, known *dedup.Set, rep *report.Report) {
	rep.IncFound()
	s.monitor.IncFound()

	if err := s.pace.Wait(ctx); err != nil {
		return
	}

	raw, err := s.source.FetchListing(ctx, url)
	if err != nil {
		rep.AddError(report.TypeCandidate, url, err.Error())
		s.monitor.IncError(report.TypeCandidate)
		return
	}

	core := assemble.ExtractCore(*raw)
	fingerprint := identity.Fingerprint(core.Make, core.Model, core.Mileage, core.FirstRegistration)

	// duplicates are settled on identity fields alone, before any parsing
	// or image work is spent on the candidate.
	if known.Contains(fingerprint) {
		rep.IncSkipped()
		s.monitor.IncSkipped()
		return
	}

	slug := identity.Slug(core.Make, core.Model, identity.Year(core.FirstRegistration))

	images, imageErrs := s.images.Process(ctx, slug, raw.ImageURLs)
	for _, imageErr := range imageErrs {
		rep.AddError(report.TypeImage, url, imageErr.Error())
		s.monitor.IncError(report.TypeImage)
	}
	rep.AddImagesUploaded(len(images))
	s.monitor.AddImagesUploaded(len(images))

	listing := assemble.Assemble(*raw, core, fingerprint, slug, images)

	if _, err := s.storage.InsertListing(ctx, &listing); err != nil {
		rep.AddError(report.TypePersist, url, err.Error())
		s.monitor.IncError(report.TypePersist)
		return
	}

	rep.IncNew()
	s.monitor.IncNew()
}

func (s *Syncer) finishRun(ctx context.Context, run *models.Run, rep *report.Report) error {
	rep.Finish(*s.clock.Now())
	snap := rep.Snapshot()

	run.FinishedAt = snap.FinishedAt
	run.Found = lo.ToPtr(snap.Found)
	run.New = lo.ToPtr(snap.New)
	run.Skipped = lo.ToPtr(snap.Skipped)
	run.ImagesUploaded = lo.ToPtr(snap.ImagesUploaded)

	if cause := ctx.Err(); cause != nil {
		run.IsSuccess = lo.ToPtr(false)
		run.StatusMessage = lo.ToPtr(fmt.Sprintf("interrupted: %s", cause))
	} else {
		run.IsSuccess = lo.ToPtr(true)
		if count := len(snap.Errors); count > 0 {
			run.StatusMessage = lo.ToPtr(fmt.Sprintf("finished with %d recovered errors", count))
		}
	}

	// a cancelled run still flushes its partial report.
	if err := s.storage.FinishRun(context.WithoutCancel(ctx), run, snap.Errors); err != nil {
		return fmt.Errorf("can't finish run: %w", err)
	}

	s.logSummary(snap)

	return nil
}

func (s *Syncer) logSummary(snap report.Snapshot) {
	s.logger.Info().
		Strs("dealers", snap.Dealers).
		Int32("found", snap.Found).
		Int32("new", snap.New).
		Int32("skipped", snap.Skipped).
		Int32("imagesUploaded", snap.ImagesUploaded).
		Int("errors", len(snap.Errors)).
		Msg("sync finished")

	for _, entry := range snap.Errors {
		s.logger.Warn().
			Str("type", entry.Type).
			Str("context", entry.Context).
			Msg(entry.Message)
	}
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithMonitor sets Syncer's event Monitor.
func WithMonitor(m Monitor) Option {
	return func(s *Syncer) {
		s.monitor = m
	}
}

type noopMonitor struct{}

func (noopMonitor) IncFound()             {}
func (noopMonitor) IncNew()               {}
func (noopMonitor) IncSkipped()           {}
func (noopMonitor) AddImagesUploaded(int) {}
func (noopMonitor) IncError(string)       {}
