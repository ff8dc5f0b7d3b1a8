package extract

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

var projectHeadings = []string{"projects", "personal projects", "academic projects"}

var certificationHeadings = []string{"certifications", "certificates", "courses"}

// Projects locates a projects section and parses its bullet and heading lines
// into entries, capped at MaxProjects. Technologies per entry come from
// taxonomy matches within the entry's own line, capped at MaxProjectTechs.
func Projects(norm *textnorm.Normalized) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	for _, line := range sectionLines(norm.Original, projectHeadings) {
		entry := parseProjectLine(line)
		if entry == nil {
			continue
		}
		projects = append(projects, *entry)
		if len(projects) >= types.MaxProjects {
			break
		}
	}
	return projects
}

// Certifications locates a certifications section and collects its entry
// lines, deduplicated case-insensitively and capped at MaxCertifications.
func Certifications(norm *textnorm.Normalized) []string {
	certs := []string{}
	seen := make(map[string]bool)
	for _, line := range sectionLines(norm.Original, certificationHeadings) {
		name := strings.TrimLeft(line, "-•*> \t")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		certs = append(certs, name)
		if len(certs) >= types.MaxCertifications {
			break
		}
	}
	return certs
}

// sectionLines returns the lines between a matching section heading and the
// next blank line or next recognized section heading.
func sectionLines(original string, headings []string) []string {
	lines := strings.Split(original, "\n")
	start := -1
	for i, line := range lines {
		if isHeading(line, headings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var body []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(body) > 0 {
				break
			}
			continue
		}
		if isHeading(line, taxonomy.SectionHeadings) {
			break
		}
		body = append(body, trimmed)
	}
	return body
}

// isHeading reports whether a line is exactly a section heading, allowing a
// trailing colon. Headings are short lines, not sentences that happen to
// contain the word.
func isHeading(line string, headings []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimSuffix(trimmed, ":")
	for _, h := range headings {
		if trimmed == h {
			return true
		}
	}
	return false
}

// parseProjectLine splits an entry line into name and description on the
// first separator, then tags technologies found in the line.
func parseProjectLine(line string) *types.ProjectEntry {
	text := strings.TrimLeft(line, "-•*> \t")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	name := text
	description := ""
	for _, sep := range []string{":", " - ", " – "} {
		if idx := strings.Index(text, sep); idx > 0 {
			name = strings.TrimSpace(text[:idx])
			description = strings.TrimSpace(text[idx+len(sep):])
			break
		}
	}

	entry := &types.ProjectEntry{
		Name:         name,
		Description:  description,
		Technologies: []string{},
	}

	folded := " " + strings.ToLower(text) + " "
	for _, skill := range taxonomy.TechnicalSkills {
		if len(entry.Technologies) >= types.MaxProjectTechs {
			break
		}
		if matchesAnyVariant(folded, skill.Variants) {
			entry.Technologies = append(entry.Technologies, skill.Canonical)
		}
	}
	return entry
}
