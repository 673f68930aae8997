// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// LLMService provides language model text generation for verdicts.
// This is an optional service - when nil, verdicts degrade gracefully
// to the rule-based analyzers.
//
// Implementations include:
//   - Ollama (local models)
//   - OpenAI and OpenAI-compatible endpoints (Qwen via DashScope)
//   - Anthropic (Claude)
//   - Gemini
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// System is an optional system instruction sent before the prompt.
	System string
}

// DefaultGenerateOptions are the sampling settings used for verdicts.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		MaxTokens:   1000,
		Temperature: 0.3,
		System:      "Ты опытный бизнес-консультант для малого бизнеса в Казахстане. Отвечаешь кратко и по делу.",
	}
}
