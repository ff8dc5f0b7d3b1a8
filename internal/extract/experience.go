package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

// yearsPatterns cover the common phrasings of explicit experience claims.
// The maximum N across all matches wins: resumes restate experience in
// several places and the largest explicit figure is the most reliable.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+of\s+experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+experience`),
	regexp.MustCompile(`experience\s*[:\-]?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\.?\s+(?:of\s+)?experience`),
}

// seniorityFallbacks map title keywords to minimum plausible years. Applied
// only when no explicit year phrase matched; an explicit number always wins.
var seniorityFallbacks = []struct {
	keyword string
	years   int
}{
	{"principal", 5},
	{"lead", 5},
	{"manager", 5},
	{"senior", 3},
	{"sr.", 3},
	{"junior", 1},
	{"jr.", 1},
	{"intern", 0},
}

// Company mentions never span lines; the patterns only allow single spaces so
// a match cannot bleed across the newline-preserving Original text.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\bat|@) ([A-Z][A-Za-z0-9&\-]*(?: [A-Z][A-Za-z0-9&\-]*){0,3})`),
	regexp.MustCompile(`([A-Z][A-Za-z0-9&\-]*(?: [A-Z][A-Za-z0-9&\-]*){0,2} (?:Pvt\.? Ltd|Private Limited|Technologies|Solutions|Systems|Labs|Inc\.?|LLC|Corp\.?))`),
}

// Experience derives years of experience, internship and project counts, and
// company mentions from the normalized text.
func Experience(norm *textnorm.Normalized) types.ExperienceSummary {
	summary := types.ExperienceSummary{
		Companies: []string{},
	}

	summary.Years = extractYears(norm.Folded)
	summary.InternshipCount = min(strings.Count(norm.Folded, "intern"), types.MaxProjectCount)
	summary.ProjectCount = min(strings.Count(norm.Folded, "project"), types.MaxProjectCount)
	summary.Companies = extractCompanies(norm.Original)

	return summary
}

func extractYears(folded string) int {
	maxYears := -1
	for _, re := range yearsPatterns {
		for _, m := range re.FindAllStringSubmatch(folded, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > maxYears {
				maxYears = n
			}
		}
	}
	if maxYears >= 0 {
		return maxYears
	}

	// Zero regex matches: fall back to the seniority ladder.
	for _, fb := range seniorityFallbacks {
		if strings.Contains(folded, fb.keyword) {
			return fb.years
		}
	}
	return 0
}

func extractCompanies(original string) []string {
	companies := []string{}
	seen := make(map[string]bool)
	for _, re := range companyPatterns {
		for _, m := range re.FindAllStringSubmatch(original, -1) {
			name := strings.TrimSpace(m[1])
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true
			companies = append(companies, name)
			if len(companies) >= types.MaxCompanies {
				return companies
			}
		}
	}
	return companies
}
