// Package types defines the shared data structures exchanged between the
// extraction pipeline, the scoring engine, and external collaborators.
package types

// NotFound is the sentinel for a sub-field the extractors could not locate.
// It stands in for absence so downstream scoring stays total; callers should
// compare against it rather than against the empty string.
const NotFound = "Not found"

// Collection caps enforced by the extractors. Excess entries beyond the first
// N encountered are discarded, never sampled.
const (
	MaxTechnicalSkills = 15
	MaxSoftSkills      = 10
	MaxProjects        = 5
	MaxProjectTechs    = 5
	MaxCompanies       = 5
	MaxCertifications  = 10
	MaxProjectCount    = 10
)

// PersonalInfo holds contact details extracted from the top of a resume.
// Absent sub-fields carry the NotFound sentinel.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SkillSet holds detected skills in first-seen order. Technical is capped at
// MaxTechnicalSkills entries, Soft at MaxSoftSkills.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// ExperienceSummary aggregates work-history signals.
type ExperienceSummary struct {
	Years           int      `json:"years"`
	InternshipCount int      `json:"internship_count"`
	ProjectCount    int      `json:"project_count"`
	Companies       []string `json:"companies"`
}

// EducationSummary holds the highest-confidence education signals found.
// GPA is always on the 10-point CGPA scale; 4.0-scale inputs are rescaled
// linearly at extraction time. A zero GPA means none was found.
type EducationSummary struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	GPA            float64 `json:"gpa"`
	GraduationYear int     `json:"graduation_year"`
}

// ProjectEntry is a single project parsed from a Projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// AnalysisResult is the aggregate output of one analysis invocation.
// It is constructed fresh per call and never mutated after return.
// QualityScore is a deterministic pure function of the other fields,
// always in [0,100].
type AnalysisResult struct {
	PersonalInfo    PersonalInfo      `json:"personal_info"`
	Skills          SkillSet          `json:"skills"`
	Experience      ExperienceSummary `json:"experience"`
	Education       EducationSummary  `json:"education"`
	Projects        []ProjectEntry    `json:"projects"`
	Certifications  []string          `json:"certifications"`
	QualityScore    int               `json:"quality_score"`
	Strengths       []string          `json:"strengths"`
	Improvements    []string          `json:"improvements"`
	Recommendations []string          `json:"recommendations"`
}
