package images

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Uploader --filename uploader.go

// Fetcher fetches source image pixels.
type Fetcher interface {
	FetchImage(ctx context.Context, url string) (io.ReadCloser, error)
}

// Uploader stores an object and returns its publicly dereferenceable URL.
type Uploader interface {
	Upload(ctx context.Context, path string, body []byte, contentType string) (string, error)
}

// Config holds per-image processing parameters.
type Config struct {
	Width     int
	Height    int
	Quality   int
	MaxImages int
	Workers   int
	// Timeout bounds fetch+transform+upload of a single image.
	Timeout time.Duration
}

// Pipeline standardizes and rehosts listing photos.
type Pipeline struct {
	fetcher  Fetcher
	uploader Uploader
	cfg      Config
	logger   *zerolog.Logger
}

// NewPipeline returns new Pipeline.
func NewPipeline(fetcher Fetcher, uploader Uploader, cfg Config, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		uploader: uploader,
		cfg:      cfg,
		logger:   logger,
	}
}

// Process converts source image URLs into rehosted standardized references.
// The source sequence is truncated to the configured maximum before any work
// starts. Images are processed on a bounded worker pool; the returned
// references keep source presentation order regardless of completion order.
// A failed image is logged, reported in the error slice and skipped — it
// never aborts the remaining images, so a listing may legitimately end up
// with fewer images than attempted, including zero.
func (p *Pipeline) Process(ctx context.Context, slug string, sourceURLs []string) ([]string, []error) {
	if len(sourceURLs) > p.cfg.MaxImages {
		sourceURLs = sourceURLs[:p.cfg.MaxImages]
	}

	results := make([]string, len(sourceURLs))
	failures := make([]error, len(sourceURLs))

	grp := errgroup.Group{}
	grp.SetLimit(p.cfg.Workers)

	for ix, url := range sourceURLs {
		ix, url := ix, url
		grp.Go(func() error {
			ref, err := p.processOne(ctx, slug, ix, url)
			if err != nil {
				failures[ix] = fmt.Errorf("can't process image %q: %w", url, err)
				p.logger.Warn().
					Err(err).
					Str("slug", slug).
					Str("imageUrl", url).
					Msg("skipping failed image")
				return nil
			}

			results[ix] = ref
			return nil
		})
	}

	_ = grp.Wait()

	refs := make([]string, 0, len(results))
	for _, ref := range results {
		if ref != "" {
			refs = append(refs, ref)
		}
	}

	errs := make([]error, 0, len(failures))
	for _, err := range failures {
		if err != nil {
			errs = append(errs, err)
		}
	}

	return refs, errs
}

func (p *Pipeline) processOne(ctx context.Context, slug string, index int, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	source, err := p.fetcher.FetchImage(ctx, url)
	if err != nil {
		return "", fmt.Errorf("can't fetch image: %w", err)
	}
	defer source.Close()

	body, err := standardize(source, p.cfg.Width, p.cfg.Height, p.cfg.Quality)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/%d.jpg", slug, index)
	ref, err := p.uploader.Upload(ctx, path, body, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("can't upload image: %w", err)
	}

	return ref, nil
}
