package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{"valid with text only", AnalyzeRequest{Text: "resume body"}, false},
		{"valid with email", AnalyzeRequest{Text: "resume body", Email: "a@b.com"}, false},
		{"missing text", AnalyzeRequest{Email: "a@b.com"}, true},
		{"malformed email", AnalyzeRequest{Text: "resume body", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateQuestionsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateQuestionsRequest
		wantErr bool
	}{
		{"valid", GenerateQuestionsRequest{Topic: "go", Count: 10}, false},
		{"count optional", GenerateQuestionsRequest{Topic: "python"}, false},
		{"missing topic", GenerateQuestionsRequest{Count: 5}, true},
		{"topic too short", GenerateQuestionsRequest{Topic: "x"}, true},
		{"count too large", GenerateQuestionsRequest{Topic: "go", Count: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
