// Package extract implements the independent field extractors of the resume
// analysis pipeline. Every extractor is a pure function over normalized text
// and returns a best-effort partial result; a field that cannot be located
// yields the types.NotFound sentinel (or a zero count), never an error, so
// the pipeline stays total.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

// nameCandidateLines is how many leading non-empty lines are scanned for a
// name-shaped token. Names sit at the top of virtually every resume layout.
const nameCandidateLines = 5

var (
	nameRE  = regexp.MustCompile(`^[A-Z][a-zA-Z.'\-]+(?: [A-Z][a-zA-Z.'\-]+){1,3}$`)
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Indian mobile numbers: optional +91/0 prefix, then ten digits
	// starting 6-9. Checked before the generic formatted-number fallback.
	indianPhoneRE  = regexp.MustCompile(`(?:\+91[\s\-]?|0)?[6-9]\d{9}`)
	genericPhoneRE = regexp.MustCompile(`\+?\d[\d\s\-().]{8,14}\d`)
)

// PersonalInfo scans the document head for a name, and the whole text for
// email, phone, and a known location. contactEmail is the caller-supplied
// fallback used when no email appears in the text.
func PersonalInfo(norm *textnorm.Normalized, contactEmail string) types.PersonalInfo {
	info := types.PersonalInfo{
		Name:     types.NotFound,
		Email:    contactEmail,
		Phone:    types.NotFound,
		Location: types.NotFound,
	}
	if info.Email == "" {
		info.Email = types.NotFound
	}

	if name := extractName(norm.Lines); name != "" {
		info.Name = name
	}
	if email := emailRE.FindString(norm.Original); email != "" {
		info.Email = email
	}
	if phone := extractPhone(norm.Original); phone != "" {
		info.Phone = phone
	}
	if loc := extractLocation(norm.Folded); loc != "" {
		info.Location = loc
	}

	return info
}

func extractName(lines []string) string {
	limit := min(nameCandidateLines, len(lines))
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "resume") || strings.Contains(lower, "curriculum") ||
			strings.Contains(lower, " cv") || strings.HasPrefix(lower, "cv") {
			continue
		}
		if len(line) < 5 || len(line) > 50 {
			continue
		}
		if nameRE.MatchString(line) {
			return line
		}
	}
	return ""
}

func extractPhone(text string) string {
	if m := indianPhoneRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := genericPhoneRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return ""
}

// extractLocation returns the first taxonomy city present in the folded text,
// title-cased for display.
func extractLocation(folded string) string {
	for _, city := range taxonomy.Cities {
		if strings.Contains(folded, city) {
			return titleCase(city)
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
