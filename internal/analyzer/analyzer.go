// Package analyzer wires the extraction pipeline together: normalize, run the
// independent field extractors, score, and generate insights. One call is one
// self-contained analysis; no state is shared across invocations, so
// concurrent calls need no synchronization.
package analyzer

import (
	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/insights"
	"github.com/jonathan/resume-insight/internal/scoring"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

// Analyze runs the full pipeline over already-decoded resume text.
// contactEmail is the caller-supplied address used when none is found in the
// text. The only possible error is *textnorm.InsufficientTextError; for any
// input at or above the minimum length the result is total and best-effort.
func Analyze(rawText, contactEmail string) (*types.AnalysisResult, error) {
	norm, err := textnorm.Normalize(rawText)
	if err != nil {
		return nil, err
	}

	result := &types.AnalysisResult{
		PersonalInfo:   extract.PersonalInfo(norm, contactEmail),
		Skills:         extract.Skills(norm),
		Experience:     extract.Experience(norm),
		Education:      extract.Education(norm),
		Projects:       extract.Projects(norm),
		Certifications: extract.Certifications(norm),
	}

	result.QualityScore = scoring.Score(result)
	result.Strengths = insights.Strengths(result)
	result.Improvements = insights.Improvements(result)
	result.Recommendations = insights.Recommendations(result)

	return result, nil
}
