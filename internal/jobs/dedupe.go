package jobs

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// DedupeKey builds the case- and whitespace-insensitive identity of a
// listing. Matching is exact after folding; near-duplicate titles with typos
// are deliberately not merged. The same key is the upsert conflict target in
// the listings table.
func DedupeKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "_" + strings.ToLower(strings.TrimSpace(company))
}

// Dedupe drops listings whose (title, company) key was already seen,
// preserving input order. First occurrence wins. Idempotent.
func Dedupe(listings []types.JobListing) []types.JobListing {
	seen := make(map[string]bool, len(listings))
	result := make([]types.JobListing, 0, len(listings))
	for _, l := range listings {
		key := DedupeKey(l.Title, l.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, l)
	}
	return result
}

// NormalizeAndDedupe is the pipeline boundary consumed by the HTTP
// collaborator: it normalizes every well-formed raw listing, drops malformed
// ones, and deduplicates the remainder. The second return value is the count
// of dropped malformed listings so callers can log it.
func NormalizeAndDedupe(raw []types.RawListing) ([]types.JobListing, int) {
	normalized := make([]types.JobListing, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		listing, ok := Normalize(r)
		if !ok {
			dropped++
			continue
		}
		normalized = append(normalized, listing)
	}
	return Dedupe(normalized), dropped
}
