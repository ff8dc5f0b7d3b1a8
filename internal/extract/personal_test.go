package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

func mustNormalize(t *testing.T, raw string) *textnorm.Normalized {
	t.Helper()
	norm, err := textnorm.Normalize(raw)
	require.NoError(t, err)
	return norm
}

func TestPersonalInfo_FullExtraction(t *testing.T) {
	norm := mustNormalize(t, `Rahul Sharma
Software Engineer
Email: rahul.sharma@example.com | Phone: +91 9876543210
Bangalore, Karnataka
Experienced backend developer with Go and PostgreSQL.`)

	info := PersonalInfo(norm, "fallback@example.com")

	assert.Equal(t, "Rahul Sharma", info.Name)
	assert.Equal(t, "rahul.sharma@example.com", info.Email)
	assert.Equal(t, "+91 9876543210", info.Phone)
	assert.Equal(t, "Bangalore", info.Location)
}

func TestPersonalInfo_NameSkipsResumeHeaderLines(t *testing.T) {
	norm := mustNormalize(t, `Resume
Curriculum Vitae
Priya Patel
Data Analyst with four years of reporting experience in Pune`)

	info := PersonalInfo(norm, "")

	assert.Equal(t, "Priya Patel", info.Name)
}

func TestPersonalInfo_NameBeyondFifthLineNotFound(t *testing.T) {
	norm := mustNormalize(t, `objective
seeking a challenging role
skills include problem solving
worked on several projects
references available
John Smith is mentioned far too late to be a name candidate`)

	info := PersonalInfo(norm, "")

	assert.Equal(t, types.NotFound, info.Name)
}

func TestPersonalInfo_ContactEmailFallback(t *testing.T) {
	norm := mustNormalize(t, `Anita Desai
Frontend developer building React applications for three years`)

	info := PersonalInfo(norm, "anita@uploads.example.com")

	assert.Equal(t, "anita@uploads.example.com", info.Email)
}

func TestPersonalInfo_MissingFieldsUseSentinel(t *testing.T) {
	norm := mustNormalize(t, `experienced developer who prefers to keep contact details private for now`)

	info := PersonalInfo(norm, "")

	assert.Equal(t, types.NotFound, info.Name)
	assert.Equal(t, types.NotFound, info.Email)
	assert.Equal(t, types.NotFound, info.Phone)
	assert.Equal(t, types.NotFound, info.Location)
}

func TestPersonalInfo_GenericPhoneFallback(t *testing.T) {
	norm := mustNormalize(t, `Maria Garcia
Software developer reachable at +1 (415) 555-0132 for opportunities`)

	info := PersonalInfo(norm, "")

	assert.NotEqual(t, types.NotFound, info.Phone)
	assert.Contains(t, info.Phone, "415")
}
