// Package llm provides the client abstraction over the external
// text-generation collaborator. The engine treats the collaborator as opaque:
// it sends prompts and ingests text, never trusting the shape of what comes
// back (see questions.go for the validating parse).
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output: question generation.
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider.
const ProviderGemini Provider = "gemini"

// Config holds the model configuration.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the stock Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-1.5-flash",
			TierStandard: "gemini-1.5-pro",
		},
	}
}

// GetModel returns the model name configured for a tier.
func (c *Config) GetModel(tier ModelTier) string {
	if c.Models == nil {
		return ""
	}
	return c.Models[tier]
}
