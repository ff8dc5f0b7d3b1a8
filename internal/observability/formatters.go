// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", result.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", result.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Location: %s\n", result.PersonalInfo.Location))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.QualityScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Technical skills (%d):\n", len(result.Skills.Technical)))
	appendItems(&sb, result.Skills.Technical)

	sb.WriteString(fmt.Sprintf("\nExperience: %d years, %d companies\n",
		result.Experience.Years, len(result.Experience.Companies)))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", result.Education.Degree))

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListings outputs a human-readable summary of normalized job listings.
func (p *Printer) PrintListings(listings []types.JobListing, dropped int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Listings: %d (%d malformed dropped)\n\n", len(listings), dropped))

	shown := listings
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, l := range shown {
		sb.WriteString(fmt.Sprintf("%s at %s\n", l.Title, l.Company))
		sb.WriteString(fmt.Sprintf("  %s | %s | %s\n", l.ExperienceBand, l.JobType, l.SalaryRange))
	}
	if len(listings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(listings)-maxItemsToShow))
	}

	p.printBox("JOB LISTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the strengths, improvements and recommendations lists.
func (p *Printer) PrintInsights(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Strengths:\n")
	appendItems(&sb, result.Strengths)
	sb.WriteString("\nImprovements:\n")
	appendItems(&sb, result.Improvements)
	sb.WriteString("\nRecommendations:\n")
	appendItems(&sb, result.Recommendations)

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

func appendItems(sb *strings.Builder, items []string) {
	shown := items
	truncated := false
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
		truncated = true
	}
	for _, item := range shown {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if truncated {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
