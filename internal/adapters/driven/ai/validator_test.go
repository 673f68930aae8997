package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/domain"
)

func TestNewConfigValidator(t *testing.T) {
	require.NotNil(t, NewConfigValidator())
}

func TestConfigValidator_ValidateLLM_NilConfig(t *testing.T) {
	assert.NoError(t, NewConfigValidator().ValidateLLM(nil))
}

func TestConfigValidator_ValidateLLM_UnconfiguredProvider(t *testing.T) {
	config := &domain.LLMSettings{Provider: "", Model: "test-model"}

	assert.NoError(t, NewConfigValidator().ValidateLLM(config))
}

func TestConfigValidator_ValidateLLM_Unreachable(t *testing.T) {
	config := &domain.LLMSettings{Provider: domain.AIProviderOllama, BaseURL: "http://127.0.0.1:1"}

	assert.Error(t, NewConfigValidator().ValidateLLM(config))
}
