// Package ai provides factory functions for creating LLM service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/custodia-labs/radar/internal/adapters/driven/llm/anthropic"
	geminillm "github.com/custodia-labs/radar/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/custodia-labs/radar/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/radar/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult contains the result of AI service initialisation.
type InitResult struct {
	LLMService driven.LLMService
	Warnings   []string // Non-fatal issues that caused fallback.
	FellBack   bool     // True if verdicts will be rule-based only.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// Init builds the LLM service for settings without pinging it. Failures
// are reported as warnings so the caller can carry on rule-based.
func Init(ctx context.Context, settings *domain.LLMSettings) *InitResult {
	result := &InitResult{}

	if settings == nil || !settings.IsConfigured() {
		result.FellBack = true
		return result
	}

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		result.FellBack = true
		result.Warnings = append(result.Warnings, fmt.Sprintf("%v: %v", domain.ErrLLMUnavailable, err))
		return result
	}

	result.LLMService = svc
	return result
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'radar settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'radar settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	svc, err := CreateLLMService(context.Background(), settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return createOllamaLLM(settings), nil

	case domain.AIProviderOpenAI:
		return createOpenAILLM(settings, settings.BaseURL)

	case domain.AIProviderQwen:
		baseURL := settings.BaseURL
		if baseURL == "" {
			baseURL = domain.QwenBaseURL
		}
		return createOpenAILLM(settings, baseURL)

	case domain.AIProviderAnthropic:
		return createAnthropicLLM(settings)

	case domain.AIProviderGemini:
		return createGeminiLLM(ctx, settings)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

func createOllamaLLM(settings *domain.LLMSettings) driven.LLMService {
	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.ModelOrDefault(),
		Timeout: settings.Timeout,
	})
}

func createOpenAILLM(settings *domain.LLMSettings, baseURL string) (driven.LLMService, error) {
	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: baseURL,
		Model:   settings.ModelOrDefault(),
		Timeout: settings.Timeout,
	})
}

func createAnthropicLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return anthropicllm.NewLLMService(anthropicllm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.ModelOrDefault(),
		Timeout: settings.Timeout,
	})
}

func createGeminiLLM(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	return geminillm.NewLLMService(ctx, geminillm.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.ModelOrDefault(),
		Timeout: settings.Timeout,
	})
}
