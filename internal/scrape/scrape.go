// Package scrape collects raw job listings from multiple portals. Each
// configured source gets its own token-bucket rate limiter, sources are
// scraped concurrently, and individual source failures never abort the
// others: the join collects whatever succeeded (partial-success policy).
package scrape

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jonathan/resume-insight/internal/fetch"
	"github.com/jonathan/resume-insight/internal/types"
)

// Source describes one portal to scrape.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// RequestsPerWindow and Window bound this source's request rate.
	// Zero values fall back to DefaultRequestsPerWindow / DefaultWindow.
	RequestsPerWindow int           `json:"requests_per_window"`
	Window            time.Duration `json:"window"`
	// UseBrowser forces headless rendering for JS-only portals.
	UseBrowser bool `json:"use_browser"`
}

// Default per-source rate: 5 requests per minute.
const (
	DefaultRequestsPerWindow = 5
	DefaultWindow            = time.Minute
)

// SourceResult is one source's settled outcome.
type SourceResult struct {
	Source   string
	Listings []types.RawListing
	Err      error
}

// Scraper fans scraping out over its sources.
type Scraper struct {
	sources  []Source
	limiters map[string]*rate.Limiter
	timeout  time.Duration
	verbose  bool

	// fetchPage is swappable in tests.
	fetchPage func(ctx context.Context, src Source) (string, error)
}

// New builds a Scraper with one limiter per source.
func New(sources []Source, timeout time.Duration, verbose bool) *Scraper {
	if timeout == 0 {
		timeout = fetch.DefaultTimeout
	}

	s := &Scraper{
		sources:  sources,
		limiters: make(map[string]*rate.Limiter, len(sources)),
		timeout:  timeout,
		verbose:  verbose,
	}
	s.fetchPage = s.fetchSourcePage

	for _, src := range sources {
		s.limiters[src.Name] = newLimiter(src)
	}
	return s
}

func newLimiter(src Source) *rate.Limiter {
	requests := src.RequestsPerWindow
	if requests <= 0 {
		requests = DefaultRequestsPerWindow
	}
	window := src.Window
	if window <= 0 {
		window = DefaultWindow
	}
	return rate.NewLimiter(rate.Every(window/time.Duration(requests)), requests)
}

// ScrapeAll scrapes every source concurrently and returns the combined raw
// listings plus each source's settled outcome. The error group carries no
// errors by design; failures live in the per-source results.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]types.RawListing, []SourceResult) {
	results := make([]SourceResult, len(s.sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			listings, err := s.scrapeSource(ctx, src)
			results[i] = SourceResult{Source: src.Name, Listings: listings, Err: err}
			if err != nil && s.verbose {
				log.Printf("[SCRAPE] source %s failed: %v", src.Name, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	var combined []types.RawListing
	for _, r := range results {
		combined = append(combined, r.Listings...)
	}
	return combined, results
}

func (s *Scraper) scrapeSource(ctx context.Context, src Source) ([]types.RawListing, error) {
	limiter, ok := s.limiters[src.Name]
	if ok {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait for %s: %w", src.Name, err)
		}
	}

	html, err := s.fetchPage(ctx, src)
	if err != nil {
		return nil, err
	}

	doc, err := fetch.Document(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s page: %w", src.Name, err)
	}

	selectors := fetch.PortalListingSelectors(fetch.DetectPortal(src.URL))
	listings := ParseListings(doc, selectors, src)
	if s.verbose {
		log.Printf("[SCRAPE] source %s yielded %d listings", src.Name, len(listings))
	}
	return listings, nil
}

func (s *Scraper) fetchSourcePage(ctx context.Context, src Source) (string, error) {
	if src.UseBrowser {
		return fetch.WithBrowser(ctx, src.URL, s.timeout, s.verbose)
	}

	result, err := fetch.URL(ctx, src.URL, &fetch.Options{
		Timeout:   s.timeout,
		UserAgent: fetch.DefaultUserAgent,
	})
	if err != nil {
		return "", err
	}

	// JS-rendered result pages come back nearly empty over plain HTTP.
	text, textErr := fetch.ExtractMainText(result.HTML, nil)
	if textErr == nil && fetch.ShouldUseBrowser(text) {
		return fetch.WithBrowser(ctx, src.URL, s.timeout, s.verbose)
	}
	return result.HTML, nil
}

// ParseListings walks listing cards with the portal's selector set, trying
// each selector in order until one yields nodes.
func ParseListings(doc *goquery.Document, selectors fetch.ListingSelectors, src Source) []types.RawListing {
	var listings []types.RawListing

	cards := findFirst(doc.Selection, selectors.Card)
	if cards == nil {
		return listings
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		title := textFirst(card, selectors.Title)
		company := textFirst(card, selectors.Company)
		if title == "" || company == "" {
			return
		}
		listings = append(listings, types.RawListing{
			Title:    title,
			Company:  company,
			Location: textFirst(card, selectors.Location),
			URL:      resolveLink(card, selectors.Link, src.URL),
			Source:   src.Name,
		})
	})
	return listings
}

func findFirst(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return nil
}

func textFirst(card *goquery.Selection, selectors []string) string {
	if found := findFirst(card, selectors); found != nil {
		return strings.TrimSpace(found.First().Text())
	}
	return ""
}

func resolveLink(card *goquery.Selection, selectors []string, base string) string {
	found := findFirst(card, selectors)
	if found == nil {
		return ""
	}
	href, ok := found.First().Attr("href")
	if !ok || href == "" {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if parsed.IsAbs() {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(parsed).String()
}
