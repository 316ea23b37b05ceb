package dealer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/rs/zerolog"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Source scrapes dealer storefronts with a headless browser. One Source
// holds one browser allocator; every page visit runs in its own tab.
type Source struct {
	allocator   context.Context
	profile     Profile
	pageTimeout time.Duration
	logger      *zerolog.Logger
}

// NewSource returns new Source and a shutdown function releasing the
// browser allocator.
func NewSource(profile Profile, pageTimeout time.Duration, logger *zerolog.Logger) (*Source, func()) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1280, 900),
	)
	allocator, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Source{
		allocator:   allocator,
		profile:     profile,
		pageTimeout: pageTimeout,
		logger:      logger,
	}, cancel
}

// ListingURLs returns the candidate detail-page URLs found on the dealer's
// inventory page, absolute, deduplicated and in page order.
func (s *Source) ListingURLs(ctx context.Context, dealerURL string) ([]string, error) {
	tabCtx, cancel := s.newTab(ctx)
	defer cancel()

	var nodes []*cdp.Node
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(dealerURL),
		chromedp.WaitReady("body"),
		chromedp.Nodes(s.profile.ListingAnchors, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, fmt.Errorf("can't scrape inventory page: %w", err)
	}

	base, err := url.Parse(dealerURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse dealer URL: %w", err)
	}

	hrefs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		hrefs = append(hrefs, node.AttributeValue("href"))
	}

	urls := resolveLinks(base, hrefs)

	s.logger.Debug().
		Str("dealerUrl", dealerURL).
		Int("candidates", len(urls)).
		Msg("inventory page scraped")

	return urls, nil
}

// FetchListing navigates one candidate detail page and extracts the raw
// semantic field map, gallery image URLs and equipment list. Missing DOM
// nodes yield absent keys, not errors.
func (s *Source) FetchListing(ctx context.Context, pageURL string) (*models.RawListing, error) {
	tabCtx, cancel := s.newTab(ctx)
	defer cancel()

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
	); err != nil {
		return nil, fmt.Errorf("can't load candidate page: %w", err)
	}

	fields := make(map[string]string, len(s.profile.Fields))
	for key, selector := range s.profile.Fields {
		var value string
		if err := chromedp.Run(tabCtx,
			chromedp.Text(selector, &value, chromedp.ByQuery, chromedp.AtLeast(0)),
		); err != nil {
			return nil, fmt.Errorf("can't extract field %q: %w", key, err)
		}
		if value = strings.TrimSpace(value); value != "" {
			fields[key] = value
		}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse candidate URL: %w", err)
	}

	images, err := s.imageURLs(tabCtx, base)
	if err != nil {
		return nil, err
	}

	features, err := s.features(tabCtx)
	if err != nil {
		return nil, err
	}

	return &models.RawListing{
		URL:       pageURL,
		Fields:    fields,
		ImageURLs: images,
		Features:  features,
	}, nil
}

func (s *Source) imageURLs(tabCtx context.Context, base *url.URL) ([]string, error) {
	var nodes []*cdp.Node
	if err := chromedp.Run(tabCtx,
		chromedp.Nodes(s.profile.Images, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	); err != nil {
		return nil, fmt.Errorf("can't extract gallery images: %w", err)
	}

	srcs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		src := node.AttributeValue("data-src")
		if src == "" {
			src = node.AttributeValue("src")
		}
		srcs = append(srcs, src)
	}

	return resolveLinks(base, srcs), nil
}

func (s *Source) features(tabCtx context.Context) ([]string, error) {
	var features []string
	script := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(n => n.textContent.trim()).filter(t => t.length > 0)`,
		s.profile.Features,
	)
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(script, &features)); err != nil {
		return nil, fmt.Errorf("can't extract features: %w", err)
	}

	return features, nil
}

// newTab opens a fresh browser tab bounded by the page timeout and tied to
// the caller's context.
func (s *Source) newTab(ctx context.Context) (context.Context, context.CancelFunc) {
	tabCtx, cancelTab := chromedp.NewContext(s.allocator)
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.pageTimeout)
	stop := context.AfterFunc(ctx, cancelTimeout)

	return tabCtx, func() {
		stop()
		cancelTimeout()
		cancelTab()
	}
}

// resolveLinks resolves hrefs against base and deduplicates them while
// preserving page order.
func resolveLinks(base *url.URL, hrefs []string) []string {
	seen := make(map[string]struct{}, len(hrefs))
	resolved := make([]string, 0, len(hrefs))

	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref)
		abs.Fragment = ""
		link := abs.String()
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		resolved = append(resolved, link)
	}

	return resolved
}
