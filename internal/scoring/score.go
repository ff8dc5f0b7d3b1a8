// Package scoring computes the composite resume quality score from extracted
// fields. The score is a deterministic pure function of its input: fixed
// weights, no randomness, no external state.
package scoring

import (
	"github.com/jonathan/resume-insight/internal/types"
)

// Category maximums. Each sub-total is capped independently before summation
// and the grand total is clamped to maxScore.
const (
	maxScore = 100

	maxPersonalPoints   = 10
	maxSkillPoints      = 30
	maxExperiencePoints = 25
	maxEducationPoints  = 20
	maxPortfolioPoints  = 15

	technicalSkillPoints = 2
	maxTechnicalPoints   = 20
	softSkillPoints      = 1
	maxSoftPoints        = 10

	yearPoints            = 3
	maxYearPoints         = 15
	projectPresencePoints = 5
	companyPresencePoints = 5

	degreePoints      = 6
	institutionPoints = 5
	gpaPoints         = 5
	gradYearPoints    = 4
	gpaThreshold      = 6.0

	projectEntryPoints = 2
	maxProjectPoints   = 10
	certPoints         = 1
	maxCertPoints      = 5
)

// Score computes the quality score in [0,100] for an assembled analysis.
func Score(r *types.AnalysisResult) int {
	total := personalScore(r.PersonalInfo) +
		skillScore(r.Skills) +
		experienceScore(r.Experience) +
		educationScore(r.Education) +
		portfolioScore(r.Projects, r.Certifications)

	return clamp(total, 0, maxScore)
}

// personalScore distributes up to 10 points across the four contact
// sub-fields; a sub-field carrying the NotFound sentinel earns nothing.
func personalScore(info types.PersonalInfo) int {
	points := 0
	if present(info.Name) {
		points += 3
	}
	if present(info.Email) {
		points += 3
	}
	if present(info.Phone) {
		points += 2
	}
	if present(info.Location) {
		points += 2
	}
	return clamp(points, 0, maxPersonalPoints)
}

func skillScore(skills types.SkillSet) int {
	technical := clamp(len(skills.Technical)*technicalSkillPoints, 0, maxTechnicalPoints)
	soft := clamp(len(skills.Soft)*softSkillPoints, 0, maxSoftPoints)
	return clamp(technical+soft, 0, maxSkillPoints)
}

func experienceScore(exp types.ExperienceSummary) int {
	points := clamp(exp.Years*yearPoints, 0, maxYearPoints)
	if exp.ProjectCount > 0 {
		points += projectPresencePoints
	}
	if len(exp.Companies) > 0 {
		points += companyPresencePoints
	}
	return clamp(points, 0, maxExperiencePoints)
}

func educationScore(edu types.EducationSummary) int {
	points := 0
	if present(edu.Degree) {
		points += degreePoints
	}
	if present(edu.Institution) {
		points += institutionPoints
	}
	if edu.GPA >= gpaThreshold {
		points += gpaPoints
	}
	if edu.GraduationYear > 0 {
		points += gradYearPoints
	}
	return clamp(points, 0, maxEducationPoints)
}

func portfolioScore(projects []types.ProjectEntry, certs []string) int {
	points := clamp(len(projects)*projectEntryPoints, 0, maxProjectPoints)
	points += clamp(len(certs)*certPoints, 0, maxCertPoints)
	return clamp(points, 0, maxPortfolioPoints)
}

func present(field string) bool {
	return field != "" && field != types.NotFound
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
