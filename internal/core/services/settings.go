package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
	"github.com/custodia-labs/radar/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMBaseURL    = "llm.base_url"
	keyLLMAPIKey     = "llm.api_key"
	keyLLMTimeout    = "llm.timeout"
	keyLLMRateLimit  = "llm.requests_per_minute"
	keySlangFile     = "normaliser.slang_file"
	defaultOllamaURL = "http://localhost:11434"
)

// Environment variables that override stored settings.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvLLMProvider = "RADAR_LLM_PROVIDER"
	EnvLLMModel    = "RADAR_LLM_MODEL"
	EnvLLMBaseURL  = "RADAR_LLM_BASE_URL"
	EnvLLMAPIKey   = "RADAR_LLM_API_KEY"
	EnvQwenAPIKey  = "QWEN_API_KEY"
	EnvUseLocalLLM = "USE_LOCAL_LLM"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings. Stored values come first,
// then environment overrides are applied on top.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:          s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:             s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:           s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:            s.configStore.GetString(keyLLMAPIKey),
			Timeout:           s.getDuration(keyLLMTimeout, defaults.LLM.Timeout),
			RequestsPerMinute: s.configStore.GetInt(keyLLMRateLimit),
		},
		Normaliser: domain.NormaliserSettings{
			SlangFile: s.getString(keySlangFile, defaults.Normaliser.SlangFile),
		},
	}

	s.applyEnv(&settings.LLM)
	return settings, nil
}

// applyEnv layers environment variables over stored LLM settings.
// Explicit RADAR_* variables win. When still no provider is chosen,
// USE_LOCAL_LLM=true selects Ollama and QWEN_API_KEY selects Qwen.
func (s *SettingsService) applyEnv(llm *domain.LLMSettings) {
	if p := domain.AIProvider(strings.ToLower(s.getenv(EnvLLMProvider))); p.IsValid() {
		llm.Provider = p
	}
	if v := s.getenv(EnvLLMModel); v != "" {
		llm.Model = v
	}
	if v := s.getenv(EnvLLMBaseURL); v != "" {
		llm.BaseURL = v
	}
	if v := s.getenv(EnvLLMAPIKey); v != "" {
		llm.APIKey = v
	}

	if llm.Provider != "" {
		return
	}
	switch {
	case strings.EqualFold(s.getenv(EnvUseLocalLLM), "true"):
		llm.Provider = domain.AIProviderOllama
		if llm.BaseURL == "" {
			llm.BaseURL = defaultOllamaURL
		}
	case s.getenv(EnvQwenAPIKey) != "":
		llm.Provider = domain.AIProviderQwen
		llm.APIKey = s.getenv(EnvQwenAPIKey)
	default:
		return
	}
	if llm.Model == "" {
		llm.Model = domain.DefaultLLMModels()[llm.Provider]
	}
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	if settings.LLM.Timeout > 0 {
		if err := s.configStore.Set(keyLLMTimeout, settings.LLM.Timeout.String()); err != nil {
			return fmt.Errorf("save llm timeout: %w", err)
		}
	}
	if err := s.configStore.Set(keyLLMRateLimit, settings.LLM.RequestsPerMinute); err != nil {
		return fmt.Errorf("save llm requests_per_minute: %w", err)
	}
	if err := s.configStore.Set(keySlangFile, settings.Normaliser.SlangFile); err != nil {
		return fmt.Errorf("save slang file: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey, baseURL string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	switch {
	case baseURL != "":
		settings.LLM.BaseURL = baseURL
	case provider.IsLocal():
		settings.LLM.BaseURL = defaultOllamaURL
	case provider == domain.AIProviderQwen:
		settings.LLM.BaseURL = domain.QwenBaseURL
	default:
		// Cloud providers don't need a custom base URL
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetSlangFile sets the custom slang dictionary path.
func (s *SettingsService) SetSlangFile(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Normaliser.SlangFile = path
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
