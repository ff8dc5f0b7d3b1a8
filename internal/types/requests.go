package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the payload for a resume analysis call. Text carries the
// already-extracted resume text; extraction from binary formats happens in
// the ingestion layer before this point.
type AnalyzeRequest struct {
	FileName string `json:"file_name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Text     string `json:"text" validate:"required"`
}

// GenerateQuestionsRequest asks for interview questions on a topic.
type GenerateQuestionsRequest struct {
	Topic string `json:"topic" validate:"required,min=2,max=100"`
	Count int    `json:"count,omitempty" validate:"omitempty,min=1,max=25"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateQuestionsRequest using the validator.
func (r *GenerateQuestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
