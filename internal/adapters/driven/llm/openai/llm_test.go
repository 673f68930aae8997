package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
)

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(LLMConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewLLMService_Defaults(t *testing.T) {
	s, err := NewLLMService(LLMConfig{APIKey: "sk"})
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, s.baseURL)
	assert.Equal(t, DefaultLLMModel, s.ModelName())
	assert.NoError(t, s.Close())
}

func TestNewLLMService_Qwen(t *testing.T) {
	s, err := NewLLMService(LLMConfig{APIKey: "sk", BaseURL: domain.QwenBaseURL, Model: "qwen-turbo"})
	require.NoError(t, err)

	assert.Equal(t, domain.QwenBaseURL, s.baseURL)
	assert.Equal(t, "qwen-turbo", s.ModelName())
}

func TestLLMService_Generate(t *testing.T) {
	var got chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"🔴 Зона: риск"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	s, err := NewLLMService(LLMConfig{APIKey: "sk-test", BaseURL: server.URL, Model: "qwen-turbo"})
	require.NoError(t, err)

	text, err := s.Generate(context.Background(), "prompt", driven.DefaultGenerateOptions())

	require.NoError(t, err)
	assert.Equal(t, "🔴 Зона: риск", text)
	assert.Equal(t, "qwen-turbo", got.Model)
	assert.Equal(t, 1000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, chatCompletionMsg{Role: "user", Content: "prompt"}, got.Messages[1])
}

func TestLLMService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"message":"bad key","type":"auth"}}`, "bad key"},
		{"status without error", http.StatusBadGateway, `{}`, "status 502"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no response choices"},
		{"bad json", http.StatusOK, `not json`, "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s, err := NewLLMService(LLMConfig{APIKey: "sk", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = s.Generate(context.Background(), "p", driven.GenerateOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLLMService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" || r.Header.Get("Authorization") != "Bearer sk" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	ok, _ := NewLLMService(LLMConfig{APIKey: "sk", BaseURL: server.URL})
	assert.NoError(t, ok.Ping(context.Background()))

	bad, _ := NewLLMService(LLMConfig{APIKey: "wrong", BaseURL: server.URL})
	err := bad.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestLLMService_Ping_TruncatedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("short"))
	}))
	defer server.Close()

	svc, _ := NewLLMService(LLMConfig{APIKey: "sk", BaseURL: server.URL})
	err := svc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502: failed to read response")
}
