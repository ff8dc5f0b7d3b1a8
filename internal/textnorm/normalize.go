// Package textnorm prepares raw resume text for pattern matching. It produces
// both a case-preserving view (name extraction needs original casing) and a
// lower-cased whitespace-collapsed view (keyword matching), plus the
// non-empty line list.
package textnorm

import (
	"regexp"
	"strings"
)

// MinTextLength is the minimum raw-text length accepted for analysis.
// Anything shorter yields false-confidence extractions.
const MinTextLength = 50

var whitespaceRE = regexp.MustCompile(`[ \t]+`)

// Normalized is one analysis call's private view of the input text.
// It is never shared across requests.
type Normalized struct {
	// Original preserves casing with collapsed horizontal whitespace.
	Original string
	// Folded is Original lower-cased, with newlines also collapsed to
	// single spaces and padded so space-delimited variants match at the
	// text boundaries.
	Folded string
	// Lines holds the non-empty trimmed lines of Original, in order.
	Lines []string
}

// Normalize validates and normalizes raw extracted text.
// Returns *InsufficientTextError when the input is shorter than MinTextLength.
func Normalize(raw string) (*Normalized, error) {
	if len(strings.TrimSpace(raw)) < MinTextLength {
		return nil, &InsufficientTextError{Length: len(strings.TrimSpace(raw)), Min: MinTextLength}
	}

	// Normalize line endings first so line splitting is uniform.
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		collapsed := whitespaceRE.ReplaceAllString(strings.TrimSpace(line), " ")
		kept = append(kept, collapsed)
		if collapsed != "" {
			lines = append(lines, collapsed)
		}
	}

	original := strings.Join(kept, "\n")
	folded := strings.ToLower(strings.Join(lines, " "))

	return &Normalized{
		Original: original,
		Folded:   " " + folded + " ",
		Lines:    lines,
	}, nil
}
