package db

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-insight/internal/jobs"
	"github.com/jonathan/resume-insight/internal/types"
)

// SaveListings upserts normalized job listings keyed by their dedupe key.
// Re-scrapes of the same posting refresh the stored attributes instead of
// inserting duplicates. Returns the number of listings written.
func (db *DB) SaveListings(ctx context.Context, listings []types.JobListing) (int, error) {
	saved := 0
	for _, l := range listings {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO job_listings
			   (dedupe_key, title, company, location, url, source, posted_date,
			    experience_band, job_type, inferred_skills, salary_range, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 ON CONFLICT (dedupe_key) DO UPDATE SET
			   location = $4, url = $5, source = $6, posted_date = $7,
			   experience_band = $8, job_type = $9, inferred_skills = $10,
			   salary_range = $11, description = $12, updated_at = NOW()`,
			jobs.DedupeKey(l.Title, l.Company),
			l.Title, l.Company, l.Location, l.URL, l.Source, l.PostedDate,
			l.ExperienceBand, l.JobType, l.InferredSkills, l.SalaryRange, l.Description,
		)
		if err != nil {
			return saved, fmt.Errorf("failed to save listing %q at %q: %w", l.Title, l.Company, err)
		}
		saved++
	}
	return saved, nil
}

// ListingFilters holds optional filters for listing queries
type ListingFilters struct {
	Source         string
	ExperienceBand string
	JobType        string
	Limit          int
}

// ListListings retrieves stored job listings with optional filters,
// newest first
func (db *DB) ListListings(ctx context.Context, filters ListingFilters) ([]types.JobListing, error) {
	if filters.Limit == 0 {
		filters.Limit = 100
	}

	query := `SELECT title, company, location, url, source, posted_date,
		       experience_band, job_type, inferred_skills, salary_range, description
		FROM job_listings WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}
	if filters.ExperienceBand != "" {
		query += fmt.Sprintf(" AND experience_band = $%d", argNum)
		args = append(args, filters.ExperienceBand)
		argNum++
	}
	if filters.JobType != "" {
		query += fmt.Sprintf(" AND job_type = $%d", argNum)
		args = append(args, filters.JobType)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job listings: %w", err)
	}
	defer rows.Close()

	var listings []types.JobListing
	for rows.Next() {
		var l types.JobListing
		if err := rows.Scan(&l.Title, &l.Company, &l.Location, &l.URL, &l.Source, &l.PostedDate,
			&l.ExperienceBand, &l.JobType, &l.InferredSkills, &l.SalaryRange, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}
