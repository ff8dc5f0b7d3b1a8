// Package jobs normalizes raw scraped job listings: it infers experience
// bands, job types, likely skills and a salary estimate from the title and
// location, and deduplicates listings across sources.
package jobs

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

// seniorityLadder is evaluated top to bottom; the first matching rule wins.
// Order is load-bearing: "Senior Associate" must resolve as senior, so the
// senior rules sit above associate.
var seniorityLadder = []struct {
	keyword string
	band    string
}{
	{"intern", "Fresher"},
	{"senior", "3-6 years"},
	{"sr.", "3-6 years"},
	{"lead", "5-8 years"},
	{"principal", "5-8 years"},
	{"architect", "6+ years"},
	{"manager", "6+ years"},
	{"junior", "1-3 years"},
	{"jr.", "1-3 years"},
	{"associate", "0-2 years"},
}

// defaultBand is used when no ladder keyword matches the title.
const defaultBand = "0-3 years"

// Salary bases in INR lakhs per annum, selected by role keyword.
var salaryBases = []struct {
	keyword string
	base    float64
}{
	{"intern", 3},
	{"data scientist", 10},
	{"data engineer", 9},
	{"devops", 9},
	{"architect", 20},
	{"manager", 18},
	{"lead", 16},
	{"senior", 14},
	{"engineer", 7},
	{"developer", 7},
	{"analyst", 6},
}

const defaultSalaryBase = 6

// Technology multipliers, first match applies. Checked before the location
// multiplier; multipliers compose multiplicatively.
var techMultipliers = []struct {
	keyword    string
	multiplier float64
}{
	{"machine learning", 1.6},
	{"ml", 1.6},
	{"ai", 1.6},
	{"devops", 1.4},
	{"cloud", 1.4},
	{"full stack", 1.3},
	{"full-stack", 1.3},
	{"backend", 1.2},
	{"frontend", 1.2},
	{"front end", 1.2},
	{"back end", 1.2},
}

const metroMultiplier = 1.2

// Normalize converts a raw scraped tuple into a JobListing with inferred
// attributes. Returns false when the listing is malformed (missing title or
// company) and should be dropped.
func Normalize(raw types.RawListing) (types.JobListing, bool) {
	title := strings.TrimSpace(raw.Title)
	company := strings.TrimSpace(raw.Company)
	if title == "" || company == "" {
		return types.JobListing{}, false
	}

	lowerTitle := strings.ToLower(title)

	listing := types.JobListing{
		Title:          title,
		Company:        company,
		Location:       strings.TrimSpace(raw.Location),
		URL:            raw.URL,
		Source:         raw.Source,
		PostedDate:     raw.PostedDate,
		ExperienceBand: inferBand(lowerTitle),
		JobType:        inferJobType(lowerTitle),
		InferredSkills: inferSkills(lowerTitle),
		SalaryRange:    estimateSalary(lowerTitle, strings.ToLower(raw.Location)),
	}
	listing.Description = fmt.Sprintf("%s role at %s (%s)", listing.Title, listing.Company, listing.ExperienceBand)

	return listing, true
}

func inferBand(lowerTitle string) string {
	for _, rule := range seniorityLadder {
		if strings.Contains(lowerTitle, rule.keyword) {
			return rule.band
		}
	}
	return defaultBand
}

func inferJobType(lowerTitle string) string {
	for _, indicator := range taxonomy.JobTypeIndicators {
		for _, kw := range indicator.Keywords {
			if strings.Contains(lowerTitle, kw) {
				return indicator.Label
			}
		}
	}
	return "Full-time"
}

// inferSkills matches the technical taxonomy against the title alone; scraped
// result pages rarely expose descriptions, so the title is the only signal.
func inferSkills(lowerTitle string) []string {
	skills := []string{}
	padded := " " + lowerTitle + " "
	for _, skill := range taxonomy.TechnicalSkills {
		for _, v := range skill.Variants {
			if strings.Contains(padded, v) {
				skills = append(skills, skill.Canonical)
				break
			}
		}
		if len(skills) >= 5 {
			break
		}
	}
	return skills
}

// estimateSalary picks a base by role keyword, applies at most one technology
// multiplier (ladder order), then the metro-location multiplier. Technology
// before location, always; the composition order is fixed so estimates are
// reproducible across runs.
func estimateSalary(lowerTitle, lowerLocation string) string {
	base := float64(defaultSalaryBase)
	for _, b := range salaryBases {
		if strings.Contains(lowerTitle, b.keyword) {
			base = b.base
			break
		}
	}

	estimate := base
	padded := " " + lowerTitle + " "
	for _, m := range techMultipliers {
		// Short keywords like "ml" and "ai" need word boundaries.
		needle := m.keyword
		if len(needle) <= 2 {
			needle = " " + needle + " "
		}
		if strings.Contains(padded, needle) {
			estimate *= m.multiplier
			break
		}
	}

	for _, metro := range taxonomy.MetroCities {
		if strings.Contains(lowerLocation, metro) {
			estimate *= metroMultiplier
			break
		}
	}

	low := estimate * 0.8
	high := estimate * 1.2
	return fmt.Sprintf("%.1f-%.1f LPA", low, high)
}
