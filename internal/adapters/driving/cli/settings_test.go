package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Short key", input: "abc123", expected: "****"},
		{name: "Exactly 8 chars", input: "12345678", expected: "****"},
		{name: "Long key", input: "sk-1234567890abcdef", expected: "sk-1...cdef"},
		{name: "Empty key", input: "", expected: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.input))
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"Empty input returns default", "", 5, 1, 1},
		{"Valid choice within range", "3", 5, 1, 3},
		{"Choice below minimum returns default", "0", 5, 1, 1},
		{"Choice above maximum returns default", "6", 5, 1, 1},
		{"Invalid input returns default", "abc", 5, 2, 2},
		{"Maximum value is valid", "5", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[LLM]")
	assert.Contains(t, out, "verdicts are rule-based")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "Slang file: (default)")
}

func TestSettingsLLM_Flags(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "llm", "openai", "--api-key", "sk-1234567890abcdef", "--skip-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "LLM provider configured: OpenAI (cloud) (gpt-4o-mini)")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "sk-1234567890abcdef", settings.LLM.APIKey)

	out, err = execute(t, "", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "API Key: sk-1...cdef")
	assert.Contains(t, out, "Status: configured")
}

func TestSettingsLLM_MissingKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "settings", "llm", "anthropic", "--skip-verify")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsLLM_ValidatesByDefault(t *testing.T) {
	setupTestServices(t)

	// No validator is wired in tests, so validation passes.
	out, err := execute(t, "", "settings", "llm", "ollama", "--model", "llama3.2")

	require.NoError(t, err)
	assert.Contains(t, out, "Validating configuration... OK")
	assert.Contains(t, out, "(llama3.2)")
}

func TestSettingsLLM_Interactive(t *testing.T) {
	setupTestServices(t)

	// choice 5 (qwen), default model, then the API key
	out, err := execute(t, "5\n\nsk-qwen-secret\n", "settings", "llm", "--skip-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Select LLM Provider")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderQwen, settings.LLM.Provider)
	assert.Equal(t, "qwen-turbo", settings.LLM.Model)
	assert.Equal(t, "sk-qwen-secret", settings.LLM.APIKey)
	assert.Equal(t, domain.QwenBaseURL, settings.LLM.BaseURL)
}

func TestSettingsSlangFile(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "slang-file", "/tmp/radar-slang.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "Slang file set to: /tmp/radar-slang.toml")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/radar-slang.toml", settings.Normaliser.SlangFile)
}

func TestSettings_NotConfigured(t *testing.T) {
	setupTestServices(t)
	settingsService = nil

	_, err := execute(t, "", "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
