package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	institutionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:University|College|Institute)(?:\s+of\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)?`),
		regexp.MustCompile(`(?:University|College|Institute)\s+of\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`),
		regexp.MustCompile(`(?:IIT|NIT|IIIT|BITS)\s+[A-Z][a-z]+`),
	}

	// Labeled figures: "CGPA: 8.5", "GPA 3.2". Scale figures: "8.5/10",
	// "3.2/4". A 4-point figure is rescaled to the 10-point CGPA scale.
	labeledGPARE = regexp.MustCompile(`(cgpa|gpa)\s*[:\-]?\s*(\d+(?:\.\d+)?)`)
	scaledGPARE  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(10|4)\b`)

	gradYearRE  = regexp.MustCompile(`(?:graduat\w*|batch|year)\D{0,20}(20[0-3]\d)`)
	yearRangeRE = regexp.MustCompile(`(20[0-3]\d)\s*[-–]\s*(20[0-3]\d)`)
)

// Education extracts degree, institution, GPA (on the 10-point CGPA scale),
// and graduation year. Missing fields carry the NotFound sentinel or zero.
func Education(norm *textnorm.Normalized) types.EducationSummary {
	summary := types.EducationSummary{
		Degree:      types.NotFound,
		Institution: types.NotFound,
	}

	if degree := extractDegree(norm.Folded); degree != "" {
		summary.Degree = degree
	}
	for _, re := range institutionPatterns {
		if m := re.FindString(norm.Original); m != "" {
			summary.Institution = strings.TrimSpace(m)
			break
		}
	}
	summary.GPA = extractGPA(norm.Folded)
	summary.GraduationYear = extractGraduationYear(norm.Folded)

	return summary
}

// extractDegree pairs a degree keyword with a field of study when one appears
// nearby, otherwise returns the bare degree keyword.
func extractDegree(folded string) string {
	for _, degree := range taxonomy.DegreeKeywords {
		idx := strings.Index(folded, degree)
		if idx < 0 {
			continue
		}
		// Look for a field of study within the following few words.
		window := folded[idx:min(idx+80, len(folded))]
		for _, field := range taxonomy.FieldsOfStudy {
			if strings.Contains(window, field) {
				return strings.ToUpper(degree[:1]) + degree[1:] + " in " + titleCase(field)
			}
		}
		return strings.ToUpper(degree[:1]) + degree[1:]
	}
	return ""
}

func extractGPA(folded string) float64 {
	if m := scaledGPARE.FindStringSubmatch(folded); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if m[2] == "4" {
				value = value * 10 / 4
			}
			return clampGPA(value)
		}
	}
	if m := labeledGPARE.FindStringSubmatch(folded); m != nil {
		value, err := strconv.ParseFloat(m[2], 64)
		if err == nil {
			// A bare "GPA" figure at or below 4.0 is on the US scale.
			if m[1] == "gpa" && value <= 4.0 {
				value = value * 10 / 4
			}
			return clampGPA(value)
		}
	}
	return 0
}

func clampGPA(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func extractGraduationYear(folded string) int {
	if m := gradYearRE.FindStringSubmatch(folded); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil && year >= 2000 && year <= 2030 {
			return year
		}
	}
	// "2019-2023" style ranges: the later year is graduation.
	if m := yearRangeRE.FindStringSubmatch(folded); m != nil {
		if year, err := strconv.Atoi(m[2]); err == nil && year >= 2000 && year <= 2030 {
			return year
		}
	}
	return 0
}
