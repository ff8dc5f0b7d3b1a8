package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestEducation_DegreeWithFieldOfStudy(t *testing.T) {
	norm := mustNormalize(t, `B.Tech in Computer Science from Pune Institute of Technology, batch of 2023`)

	summary := Education(norm)

	assert.Equal(t, "B.tech in Computer Science", summary.Degree)
	assert.Equal(t, 2023, summary.GraduationYear)
}

func TestEducation_InstitutionPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"university_of",
			"Graduated from the University of Mumbai with first-class honours in engineering",
			"University of Mumbai",
		},
		{
			"trailing_institute",
			"Completed my degree at Vellore Institute of Technology studying electronics",
			"Vellore Institute of Technology",
		},
		{
			"iit_short_form",
			"Studied computer science and engineering at IIT Madras for four years",
			"IIT Madras",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Education(mustNormalize(t, tt.text))
			assert.Equal(t, tt.want, summary.Institution)
		})
	}
}

func TestEducation_CGPAOnTenScale(t *testing.T) {
	norm := mustNormalize(t, `Bachelor of Technology in Information Technology, CGPA: 8.5/10, graduated 2022`)

	summary := Education(norm)

	assert.InDelta(t, 8.5, summary.GPA, 0.001)
	assert.Equal(t, 2022, summary.GraduationYear)
}

func TestEducation_FourPointGPARescaledToCGPA(t *testing.T) {
	norm := mustNormalize(t, `Master of Science in Data Science, GPA 3.2/4, completed coursework in statistics`)

	summary := Education(norm)

	assert.InDelta(t, 8.0, summary.GPA, 0.001)
}

func TestEducation_BareLabeledGPAUnderFourIsRescaled(t *testing.T) {
	norm := mustNormalize(t, `Bachelor of Science in computer applications with GPA: 3.2 across all semesters`)

	summary := Education(norm)

	assert.InDelta(t, 8.0, summary.GPA, 0.001)
}

func TestEducation_GraduationYearFromRange(t *testing.T) {
	norm := mustNormalize(t, `B.Sc in electronics, Delhi College of Engineering, 2019-2023, merit scholarship holder`)

	summary := Education(norm)

	assert.Equal(t, 2023, summary.GraduationYear)
}

func TestEducation_MissingFieldsUseSentinels(t *testing.T) {
	norm := mustNormalize(t, `self-taught developer who learned everything from building real products`)

	summary := Education(norm)

	assert.Equal(t, types.NotFound, summary.Degree)
	assert.Equal(t, types.NotFound, summary.Institution)
	assert.Zero(t, summary.GPA)
	assert.Zero(t, summary.GraduationYear)
}
