package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/jobs"
)

// handleScrapeJobs runs a scrape across all configured sources, normalizes
// and deduplicates the results, and stores them when a database is present.
func (s *Server) handleScrapeJobs(w http.ResponseWriter, r *http.Request) {
	if s.scraper == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no scrape sources configured")
		return
	}

	raw, results := s.scraper.ScrapeAll(r.Context())
	listings, dropped := jobs.NormalizeAndDedupe(raw)
	if dropped > 0 {
		log.Printf("[SERVER] Dropped %d malformed listings", dropped)
	}

	saved := 0
	if s.db != nil && len(listings) > 0 {
		var err error
		saved, err = s.db.SaveListings(r.Context(), listings)
		if err != nil {
			log.Printf("[SERVER] Failed to store listings: %v", err)
		}
	}

	sources := make([]map[string]any, 0, len(results))
	for _, res := range results {
		entry := map[string]any{
			"source": res.Source,
			"count":  len(res.Listings),
		}
		if res.Err != nil {
			entry["error"] = res.Err.Error()
		}
		sources = append(sources, entry)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"listings": listings,
		"count":    len(listings),
		"dropped":  dropped,
		"saved":    saved,
		"sources":  sources,
	})
}

// handleListJobs retrieves stored job listings with optional filters
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.ListingFilters{
		Source:         r.URL.Query().Get("source"),
		ExperienceBand: r.URL.Query().Get("experience_band"),
		JobType:        r.URL.Query().Get("job_type"),
		Limit:          parseIntQuery(r, "limit", 100),
	}

	listings, err := s.db.ListListings(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  listings,
		"count": len(listings),
	})
}

// parseIntQuery reads an integer query parameter, falling back to a default
// on absence or garbage.
func parseIntQuery(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
