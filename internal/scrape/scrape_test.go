package scrape

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/fetch"
)

const listingPage = `<html><body>
<ul>
	<li class="job-card">
		<h2 class="job-title">Backend Engineer</h2>
		<span class="company">Acme Corp</span>
		<span class="location">Pune</span>
		<a href="/jobs/123">view</a>
	</li>
	<li class="job-card">
		<h2 class="job-title">Frontend Engineer</h2>
		<span class="company">Globex</span>
		<span class="location">Remote</span>
		<a href="https://jobs.example.com/456">view</a>
	</li>
	<li class="job-card">
		<h2 class="job-title">Listing Without Company</h2>
	</li>
</ul>
</body></html>`

func testSources() []Source {
	return []Source{
		{Name: "portal-a", URL: "https://jobs.example.com/search", RequestsPerWindow: 5, Window: time.Minute},
		{Name: "portal-b", URL: "https://boards.example.org/search", RequestsPerWindow: 10, Window: time.Minute},
	}
}

func TestParseListings_ExtractsCards(t *testing.T) {
	doc, err := fetch.Document(listingPage)
	require.NoError(t, err)

	src := Source{Name: "portal-a", URL: "https://jobs.example.com/search"}
	selectors := fetch.PortalListingSelectors(fetch.PortalUnknown)

	listings := ParseListings(doc, selectors, src)

	require.Len(t, listings, 2, "card without company must be skipped")
	assert.Equal(t, "Backend Engineer", listings[0].Title)
	assert.Equal(t, "Acme Corp", listings[0].Company)
	assert.Equal(t, "Pune", listings[0].Location)
	assert.Equal(t, "portal-a", listings[0].Source)
	assert.Equal(t, "https://jobs.example.com/jobs/123", listings[0].URL, "relative links resolve against the source URL")
	assert.Equal(t, "https://jobs.example.com/456", listings[1].URL)
}

func TestScrapeAll_PartialSuccess(t *testing.T) {
	s := New(testSources(), time.Second, false)
	s.fetchPage = func(_ context.Context, src Source) (string, error) {
		if src.Name == "portal-b" {
			return "", errors.New("connection refused")
		}
		return listingPage, nil
	}

	listings, results := s.ScrapeAll(context.Background())

	require.Len(t, results, 2)
	byName := map[string]SourceResult{}
	for _, r := range results {
		byName[r.Source] = r
	}

	assert.NoError(t, byName["portal-a"].Err)
	assert.Len(t, byName["portal-a"].Listings, 2)
	assert.Error(t, byName["portal-b"].Err)
	assert.Len(t, listings, 2, "failed source contributes nothing, successful one still counts")
}

func TestScrapeAll_AllSourcesFail(t *testing.T) {
	s := New(testSources(), time.Second, false)
	s.fetchPage = func(_ context.Context, _ Source) (string, error) {
		return "", errors.New("boom")
	}

	listings, results := s.ScrapeAll(context.Background())

	assert.Empty(t, listings)
	for _, r := range results {
		assert.Error(t, r.Err)
	}
}

func TestNew_LimiterPerSource(t *testing.T) {
	s := New(testSources(), time.Second, false)

	require.Len(t, s.limiters, 2)
	assert.NotSame(t, s.limiters["portal-a"], s.limiters["portal-b"])
	// 10 requests per minute refills faster than 5 per minute.
	assert.Greater(t, float64(s.limiters["portal-b"].Limit()), float64(s.limiters["portal-a"].Limit()))
}

func TestNewLimiter_DefaultsApplied(t *testing.T) {
	limiter := newLimiter(Source{Name: "bare"})

	assert.Equal(t, DefaultRequestsPerWindow, limiter.Burst())
}

func TestScrapeSource_RespectsContextCancellation(t *testing.T) {
	s := New([]Source{{Name: "only", URL: "https://jobs.example.com", RequestsPerWindow: 1, Window: time.Hour}}, time.Second, false)
	s.fetchPage = func(_ context.Context, _ Source) (string, error) {
		return listingPage, nil
	}

	// First request consumes the lone token; the second waits an hour and
	// must abort when the context is cancelled.
	_, err := s.scrapeSource(context.Background(), s.sources[0])
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.scrapeSource(ctx, s.sources[0])
	assert.Error(t, err)
}
