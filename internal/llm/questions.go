// Package llm - questions.go parses quiz questions out of raw collaborator
// output. The parse is two-stage: first a JSON array is pulled out of the
// (possibly markdown-wrapped) text and schema-validated; if that fails, a
// line-splitting fallback recovers plain-text numbered questions. The outcome
// is an explicit variant, not an exception chain.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/schemas"
)

// Question is one parsed quiz question.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// ValidationFailure explains why a payload was rejected by both stages.
type ValidationFailure struct {
	Stage   string // "json" or "fallback"
	Message string
}

// ParseOutcome is the tagged result of parsing a question payload:
// either Questions is populated (Ok) or Failure is set (Err), never both.
type ParseOutcome struct {
	Questions []Question
	Failure   *ValidationFailure
}

// Ok reports whether the parse produced questions.
func (o ParseOutcome) Ok() bool {
	return o.Failure == nil
}

var jsonArrayRE = regexp.MustCompile(`(?s)\[.*\]`)

var numberedLineRE = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)

// ParseQuestionPayload runs the two-stage parse over raw collaborator text.
func ParseQuestionPayload(raw string) ParseOutcome {
	cleaned := CleanJSONBlock(raw)

	// Stage 1: extract a JSON array and validate it against the schema.
	if arrayText := jsonArrayRE.FindString(cleaned); arrayText != "" {
		if err := schemas.ValidateGeneratedQuestions([]byte(arrayText)); err == nil {
			var questions []Question
			if jsonErr := json.Unmarshal([]byte(arrayText), &questions); jsonErr == nil {
				return ParseOutcome{Questions: questions}
			}
		}
	}

	// Stage 2: recover numbered plain-text questions.
	if questions := parseNumberedLines(cleaned); len(questions) > 0 {
		return ParseOutcome{Questions: questions}
	}

	return ParseOutcome{Failure: &ValidationFailure{
		Stage:   "fallback",
		Message: "payload contained neither a valid question array nor numbered question lines",
	}}
}

// parseNumberedLines turns "1. Why ...?" style lines into open questions
// without options; the caller decides whether that degraded form is usable.
func parseNumberedLines(text string) []Question {
	var questions []Question
	for _, line := range strings.Split(text, "\n") {
		m := numberedLineRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if len(body) < 10 || !strings.Contains(body, "?") {
			continue
		}
		questions = append(questions, Question{Question: body})
	}
	return questions
}

// questionPrompt asks for strict JSON; the parse still tolerates markdown
// wrapping and prose because collaborators ignore such instructions often
// enough.
func questionPrompt(topic string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice quiz questions about %s.
Return ONLY a JSON array, no markdown, no explanation, matching:
[{"question": "...", "options": ["...", "...", "...", "..."], "answer": "...", "explanation": "..."}]
The answer must be one of the options.`, count, topic)
}

// GenerateQuestions asks the collaborator for questions on a topic and parses
// the response. A ParseOutcome with Failure set is returned as an error so
// callers see one failure surface.
func GenerateQuestions(ctx context.Context, client Client, topic string, count int) ([]Question, error) {
	raw, err := client.GenerateContent(ctx, questionPrompt(topic, count), TierStandard)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	outcome := ParseQuestionPayload(raw)
	if !outcome.Ok() {
		return nil, fmt.Errorf("question payload rejected at stage %s: %s", outcome.Failure.Stage, outcome.Failure.Message)
	}
	return outcome.Questions, nil
}
