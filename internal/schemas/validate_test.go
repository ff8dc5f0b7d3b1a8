package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneratedQuestions_ValidPayload(t *testing.T) {
	payload := []byte(`[
		{
			"question": "Which company develops the Go programming language?",
			"options": ["Google", "Microsoft", "Oracle", "Meta"],
			"answer": "Google",
			"explanation": "Go was created at Google in 2009."
		}
	]`)

	assert.NoError(t, ValidateGeneratedQuestions(payload))
}

func TestValidateGeneratedQuestions_MissingAnswer(t *testing.T) {
	payload := []byte(`[
		{
			"question": "What does CSS stand for?",
			"options": ["Cascading Style Sheets", "Computer Style Sheets"]
		}
	]`)

	err := ValidateGeneratedQuestions(payload)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateGeneratedQuestions_EmptyArrayRejected(t *testing.T) {
	assert.Error(t, ValidateGeneratedQuestions([]byte(`[]`)))
}

func TestValidateGeneratedQuestions_NotAnArray(t *testing.T) {
	assert.Error(t, ValidateGeneratedQuestions([]byte(`{"question": "lonely object"}`)))
}

func TestValidateGeneratedQuestions_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateGeneratedQuestions([]byte(`not json at all`)))
}

func TestValidateGeneratedQuestions_TooFewOptions(t *testing.T) {
	payload := []byte(`[
		{
			"question": "Is this valid?",
			"options": ["Only one"],
			"answer": "Only one"
		}
	]`)

	assert.Error(t, ValidateGeneratedQuestions(payload))
}
