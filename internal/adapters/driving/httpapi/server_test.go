package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/services"
	"github.com/custodia-labs/radar/internal/normalisers/slang"
)

func newTestServer(t *testing.T, a *mockAnalysisService) *Server {
	t.Helper()
	s, err := NewServer(&Ports{Analysis: a, Normaliser: mockNormaliser{}})
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_ValidatesPorts(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAnalysisService)

	_, err = NewServer(&Ports{Analysis: &mockAnalysisService{}})
	assert.ErrorIs(t, err, ErrMissingNormaliser)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &mockAnalysisService{aiEnabled: true})

	rec := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","ai_enabled":true}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t, &mockAnalysisService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestDomains(t *testing.T) {
	s := newTestServer(t, &mockAnalysisService{})

	rec := do(t, s, http.MethodGet, "/v1/domains", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []DomainInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "import", infos[3].Domain)
}

func TestAnalyze(t *testing.T) {
	verdict := domain.Verdict{
		Zone:     domain.ZoneGreen,
		Headline: "🟢 Всё хорошо",
		Origin:   domain.OriginRuleBased,
	}

	t.Run("rules by default", func(t *testing.T) {
		a := &mockAnalysisService{verdict: verdict}
		s := newTestServer(t, a)

		rec := do(t, s, http.MethodPost, "/v1/analyze/market", `{"answers":{"sales":"да"}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, a.ruleCalls)
		assert.Equal(t, 0, a.aiCalls)
		var out VerdictResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "market", out.Domain)
		assert.Equal(t, "green", out.Zone)
		assert.Equal(t, []string{}, out.Signals)
		assert.Equal(t, "🟢 Всё хорошо", out.Rendered)
	})

	t.Run("use_ai asks the service to try the LLM", func(t *testing.T) {
		a := &mockAnalysisService{verdict: verdict}
		s := newTestServer(t, a)

		rec := do(t, s, http.MethodPost, "/v1/analyze/debt", `{"answers":{},"use_ai":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, a.aiCalls)
		assert.Equal(t, 0, a.ruleCalls)
	})

	t.Run("normalise", func(t *testing.T) {
		a := &mockAnalysisService{verdict: verdict}
		s := newTestServer(t, a)

		rec := do(t, s, http.MethodPost, "/v1/analyze/idea", `{"answers":{"idea":"  Кофейня "},"normalise":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.AnswerSet{"idea": "кофейня"}, a.gotAnswers)
	})

	t.Run("unknown domain is 404", func(t *testing.T) {
		s := newTestServer(t, &mockAnalysisService{})

		rec := do(t, s, http.MethodPost, "/v1/analyze/taxes", `{"answers":{}}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported domain")
	})

	t.Run("bad json is 400", func(t *testing.T) {
		s := newTestServer(t, &mockAnalysisService{})

		rec := do(t, s, http.MethodPost, "/v1/analyze/debt", `{"answers":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		s := newTestServer(t, &mockAnalysisService{})

		rec := do(t, s, http.MethodPost, "/v1/analyze/debt", `{"answerz":{}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure is 500", func(t *testing.T) {
		s := newTestServer(t, &mockAnalysisService{err: errors.New("boom")})

		rec := do(t, s, http.MethodPost, "/v1/analyze/debt", `{"answers":{}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("wrong method", func(t *testing.T) {
		s := newTestServer(t, &mockAnalysisService{})

		rec := do(t, s, http.MethodGet, "/v1/analyze/debt", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestAnalyze_RealServices(t *testing.T) {
	s, err := NewServer(&Ports{
		Analysis:   services.NewAnalysisService(analysis.NewRegistry()),
		Normaliser: slang.New(),
	})
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/v1/analyze/import_mod", `{"answers":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out VerdictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "import", out.Domain)
	assert.Equal(t, "rule_based", out.Origin)
	assert.Empty(t, out.Signals)
}

func TestNormalize(t *testing.T) {
	s := newTestServer(t, &mockAnalysisService{})

	rec := do(t, s, http.MethodPost, "/v1/normalize", `{"text":"  ПРИВЕТ "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"привет"}`, rec.Body.String())
}

func TestEntities(t *testing.T) {
	s := newTestServer(t, &mockAnalysisService{})

	rec := do(t, s, http.MethodPost, "/v1/entities", `{"text":"нужно 5 млн"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"amounts":["5 млн"],"cities":null}`, rec.Body.String())
}

func TestRouting_MethodAndPathErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   int
		msg    string
	}{
		{"get analyze", http.MethodGet, "/v1/analyze/debt", http.StatusMethodNotAllowed, "method not allowed"},
		{"post domains", http.MethodPost, "/v1/domains", http.StatusMethodNotAllowed, "method not allowed"},
		{"get normalize", http.MethodGet, "/v1/normalize", http.StatusMethodNotAllowed, "method not allowed"},
		{"delete health", http.MethodDelete, "/health", http.StatusMethodNotAllowed, "method not allowed"},
		{"unknown path", http.MethodGet, "/v2/domains", http.StatusNotFound, "not found"},
		{"unknown domain", http.MethodPost, "/v1/analyze/taxes", http.StatusNotFound, "unsupported domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &mockAnalysisService{})

			rec := do(t, s, tt.method, tt.path, `{"answers":{}}`)

			assert.Equal(t, tt.want, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}
