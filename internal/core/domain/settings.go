package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderGemini is Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderQwen is Alibaba DashScope, spoken to over its
	// OpenAI-compatible endpoint.
	AIProviderQwen AIProvider = "qwen"
)

// QwenBaseURL is DashScope's OpenAI-compatible endpoint.
const QwenBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic, AIProviderGemini, AIProviderQwen:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p.IsValid() && !p.IsLocal()
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderGemini:
		return "Gemini (cloud)"
	case AIProviderQwen:
		return "Qwen via DashScope (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and Qwen).
	BaseURL string

	// APIKey is the API key for cloud providers.
	APIKey string

	// Timeout bounds a single generation call. Zero means the default.
	Timeout time.Duration

	// RequestsPerMinute caps LLM calls. Zero means unlimited.
	RequestsPerMinute int
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// ModelOrDefault returns Model, or the provider's default when unset.
func (l LLMSettings) ModelOrDefault() string {
	if l.Model != "" {
		return l.Model
	}
	return DefaultLLMModels()[l.Provider]
}

// NormaliserSettings holds text normaliser configuration.
type NormaliserSettings struct {
	// SlangFile is an optional TOML dictionary of custom slang.
	SlangFile string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// LLM holds LLM provider settings.
	LLM LLMSettings

	// Normaliser holds text normaliser settings.
	Normaliser NormaliserSettings
}

// DefaultLLMTimeout bounds an AI call when no timeout is configured.
const DefaultLLMTimeout = 30 * time.Second

// DefaultAppSettings returns settings with sensible defaults.
// The LLM is left unconfigured so verdicts are rule-based until a
// provider is chosen.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Timeout: DefaultLLMTimeout,
		},
		Normaliser: NormaliserSettings{},
	}
}

// AllLLMProviders returns providers that support LLM operations.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
		AIProviderGemini,
		AIProviderQwen,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "qwen2.5:7b",
		AIProviderQwen:      "qwen-turbo",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
		AIProviderGemini:    "gemini-2.0-flash",
	}
}
