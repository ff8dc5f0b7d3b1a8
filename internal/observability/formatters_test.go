package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insight/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		PersonalInfo: types.PersonalInfo{
			Name:     "Rahul Sharma",
			Email:    "rahul@example.com",
			Location: "Bangalore",
		},
		Skills: types.SkillSet{
			Technical: []string{"Python", "React", "Docker", "AWS", "MongoDB", "Redis", "Kafka"},
		},
		Experience: types.ExperienceSummary{
			Years:     3,
			Companies: []string{"Acme Technologies"},
		},
		Education:    types.EducationSummary{Degree: "B.Tech"},
		QualityScore: 74,
		Strengths:    []string{"Strong technical skill set"},
		Improvements: []string{"Add project descriptions"},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "Rahul Sharma")
	assert.Contains(t, out, "74/100")
	// Skill list is clipped with a continuation marker
	assert.Contains(t, out, "and 2 more")
}

func TestPrintAnalysis_NilResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintListings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	listings := []types.JobListing{
		{Title: "Backend Developer", Company: "Acme", ExperienceBand: "0-3 years", JobType: "Full-time", SalaryRange: "6.7-10.1 LPA"},
	}
	p.PrintListings(listings, 2)

	out := buf.String()
	assert.Contains(t, out, "JOB LISTINGS")
	assert.Contains(t, out, "Backend Developer at Acme")
	assert.Contains(t, out, "2 malformed dropped")
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInsights(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "INSIGHTS")
	assert.Contains(t, out, "Strong technical skill set")
	assert.Contains(t, out, "Add project descriptions")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
