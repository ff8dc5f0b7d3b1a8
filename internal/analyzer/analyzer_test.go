package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

const sampleResume = `Rahul Sharma
Senior Software Engineer
Email: rahul.sharma@example.com | Phone: +91 9876543210
Bangalore, Karnataka

5 years of experience building backend services at Acme Technologies.

Skills: React, Node.js, Python, PostgreSQL, Docker

Education:
B.Tech in Computer Science, IIT Madras, CGPA: 8.5/10, graduated 2019

Projects:
- E-commerce Platform: storefront built with React and Node.js
- Log Pipeline: streaming ingestion with Python and PostgreSQL

Certifications:
- AWS Certified Developer`

func TestAnalyze_EndToEndScenario(t *testing.T) {
	result, err := Analyze(sampleResume, "fallback@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Rahul Sharma", result.PersonalInfo.Name)
	assert.Equal(t, "rahul.sharma@example.com", result.PersonalInfo.Email)

	// The explicit "5 years" phrase wins over the "Senior" keyword fallback.
	assert.Equal(t, 5, result.Experience.Years)
	assert.InDelta(t, 8.5, result.Education.GPA, 0.001)
	assert.Equal(t, 2019, result.Education.GraduationYear)

	assert.Contains(t, result.Skills.Technical, "React")
	assert.Contains(t, result.Skills.Technical, "Node.js")
	assert.Contains(t, result.Skills.Technical, "Python")

	assert.Len(t, result.Projects, 2)
	assert.Equal(t, []string{"AWS Certified Developer"}, result.Certifications)
}

func TestAnalyze_Deterministic(t *testing.T) {
	first, err := Analyze(sampleResume, "a@b.com")
	require.NoError(t, err)
	second, err := Analyze(sampleResume, "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_ScoreWithinBounds(t *testing.T) {
	result, err := Analyze(sampleResume, "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.QualityScore, 0)
	assert.LessOrEqual(t, result.QualityScore, 100)
}

func TestAnalyze_InsightsNeverEmpty(t *testing.T) {
	result, err := Analyze(sampleResume, "")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Improvements)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyze_CapInvariants(t *testing.T) {
	result, err := Analyze(sampleResume, "")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Skills.Technical), types.MaxTechnicalSkills)
	assert.LessOrEqual(t, len(result.Skills.Soft), types.MaxSoftSkills)
	assert.LessOrEqual(t, len(result.Projects), types.MaxProjects)
	assert.LessOrEqual(t, len(result.Experience.Companies), types.MaxCompanies)
	assert.LessOrEqual(t, len(result.Certifications), types.MaxCertifications)
}

func TestAnalyze_ShortTextFailsWithInsufficientTextError(t *testing.T) {
	_, err := Analyze("too short to analyze", "a@b.com")

	var insufficientErr *textnorm.InsufficientTextError
	require.True(t, errors.As(err, &insufficientErr))
}

func TestAnalyze_GarbageTextStillTotal(t *testing.T) {
	result, err := Analyze("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor", "someone@example.com")
	require.NoError(t, err)

	assert.Equal(t, types.NotFound, result.PersonalInfo.Name)
	assert.Equal(t, "someone@example.com", result.PersonalInfo.Email)
	assert.NotEmpty(t, result.Improvements)
	assert.GreaterOrEqual(t, result.QualityScore, 0)
}

func TestFallbackText_CarriesSourceAndContact(t *testing.T) {
	text := FallbackText("resume.pdf", "user@example.com")

	assert.Contains(t, text, "resume.pdf")
	assert.Contains(t, text, "user@example.com")
	assert.GreaterOrEqual(t, len(text), textnorm.MinTextLength)
}
