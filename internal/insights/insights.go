// Package insights turns extracted-field statistics into human-readable
// strength, improvement, and recommendation lists. Generation is pure rule
// evaluation: each category walks a fixed ordered rule table and collects
// every message whose predicate holds. A category never comes back empty;
// when no rule fires the generic fallback message is returned.
package insights

import (
	"fmt"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

type rule struct {
	applies func(*types.AnalysisResult) bool
	message string
}

var strengthRules = []rule{
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Skills.Technical) >= 8 },
		message: "Broad technical skill set covering multiple technology areas",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return r.Experience.Years >= 3 },
		message: "Solid professional experience that stands out to recruiters",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Projects) >= 3 },
		message: "Strong project portfolio demonstrating hands-on ability",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return r.Education.GPA >= 8.0 },
		message: "Excellent academic record with a high CGPA",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Certifications) >= 2 },
		message: "Certifications that validate your skills to employers",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return r.Experience.InternshipCount >= 1 },
		message: "Internship experience showing industry exposure",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Skills.Soft) >= 4 },
		message: "Well-rounded soft skills complementing technical depth",
	},
}

var improvementRules = []rule{
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Skills.Technical) < 5 },
		message: "List more technical skills; aim for at least five relevant technologies",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Projects) == 0 },
		message: "Add a projects section; hands-on work is the strongest signal for freshers",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return r.PersonalInfo.Phone == types.NotFound },
		message: "Add a phone number so recruiters can reach you directly",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return r.PersonalInfo.Location == types.NotFound },
		message: "Mention your city or preferred work location",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Certifications) == 0 },
		message: "Consider adding one or two industry certifications",
	},
	{
		applies: func(r *types.AnalysisResult) bool {
			return r.Experience.Years == 0 && r.Experience.InternshipCount == 0
		},
		message: "Highlight internships, freelance work, or open-source contributions",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Skills.Soft) < 2 },
		message: "Weave soft skills like communication and teamwork into your summary",
	},
}

var recommendationRules = []rule{
	{
		applies: func(r *types.AnalysisResult) bool { return r.Experience.Years >= 5 },
		message: "Target senior roles and lead with quantified impact statements",
	},
	{
		applies: func(r *types.AnalysisResult) bool {
			return r.Experience.Years == 0 && len(r.Projects) > 0
		},
		message: "Lead with your projects section; place it above education",
	},
	{
		applies: func(r *types.AnalysisResult) bool { return len(r.Skills.Technical) >= 10 },
		message: "Group skills by category (languages, frameworks, tools) for readability",
	},
}

const (
	genericStrength       = "Your resume has a clear foundation to build on"
	genericImprovement    = "Tailor your resume to each job description you apply for"
	genericRecommendation = "Keep your resume to one page and quantify achievements where possible"
)

// Strengths returns the strength messages for an analysis, in rule order.
func Strengths(r *types.AnalysisResult) []string {
	return evaluate(strengthRules, r, genericStrength)
}

// Improvements returns the improvement messages for an analysis, in rule order.
func Improvements(r *types.AnalysisResult) []string {
	return evaluate(improvementRules, r, genericImprovement)
}

// Recommendations returns recommendation messages: fixed rules first, then
// technology-adjacency suggestions for detected skills. Never empty.
func Recommendations(r *types.AnalysisResult) []string {
	messages := []string{}
	for _, rl := range recommendationRules {
		if rl.applies(r) {
			messages = append(messages, rl.message)
		}
	}
	for _, skill := range r.Skills.Technical {
		if suggestion, ok := taxonomy.SkillAdjacency[skill]; ok {
			messages = append(messages, fmt.Sprintf("You know %s: %s", skill, suggestion))
		}
	}
	if len(messages) == 0 {
		return []string{genericRecommendation}
	}
	return messages
}

func evaluate(rules []rule, r *types.AnalysisResult, fallback string) []string {
	messages := []string{}
	for _, rl := range rules {
		if rl.applies(r) {
			messages = append(messages, rl.message)
		}
	}
	if len(messages) == 0 {
		return []string{fallback}
	}
	return messages
}
