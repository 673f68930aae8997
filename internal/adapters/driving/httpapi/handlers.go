package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/logger"
)

// AnalyzeRequest is the body of POST /v1/analyze/{domain}.
type AnalyzeRequest struct {
	Answers   map[string]string `json:"answers"`
	Normalise bool              `json:"normalise,omitempty"`
	UseAI     bool              `json:"use_ai,omitempty"`
}

// VerdictResponse is a verdict plus its rendered text.
type VerdictResponse struct {
	Domain         string   `json:"domain"`
	Zone           string   `json:"zone"`
	Headline       string   `json:"headline"`
	Signals        []string `json:"signals"`
	Recommendation string   `json:"recommendation,omitempty"`
	Origin         string   `json:"origin"`
	Rendered       string   `json:"rendered"`
}

// TextRequest is the body of the normalize and entities endpoints.
type TextRequest struct {
	Text string `json:"text"`
}

// EntitiesResponse lists what was found in the text.
type EntitiesResponse struct {
	Amounts []string `json:"amounts"`
	Cities  []string `json:"cities"`
}

// DomainInfo describes one questionnaire.
type DomainInfo struct {
	Domain      string   `json:"domain"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"ai_enabled": s.ports.Analysis.AIEnabled(),
	})
}

func (s *Server) handleDomains(w http.ResponseWriter, _ *http.Request) {
	profiles := analysis.Profiles()
	out := make([]DomainInfo, len(profiles))
	for i, p := range profiles {
		out[i] = DomainInfo{
			Domain:      p.Domain.String(),
			Description: p.Domain.Description(),
			Fields:      p.Fields(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	d, ok := domain.ParseDomain(mux.Vars(r)["domain"])
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrUnsupportedDomain.Error())
		return
	}

	var req AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	answers := domain.AnswerSet(req.Answers)
	if req.Normalise {
		answers = answers.Map(s.ports.Normaliser.Normalise)
	}

	var (
		verdict domain.Verdict
		err     error
	)
	if req.UseAI {
		verdict, err = s.ports.Analysis.Analyze(r.Context(), d, answers)
	} else {
		verdict, err = s.ports.Analysis.RuleBased(d, answers)
	}
	if errors.Is(err, domain.ErrUnsupportedDomain) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.Warnw("analyze failed", "domain", d, "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, toVerdictResponse(verdict))
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, TextRequest{Text: s.ports.Normaliser.Normalise(req.Text)})
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e := s.ports.Normaliser.ExtractEntities(req.Text)
	writeJSON(w, http.StatusOK, EntitiesResponse{
		Amounts: e.Get(domain.EntityAmounts),
		Cities:  e.Get(domain.EntityCities),
	})
}

func toVerdictResponse(v domain.Verdict) VerdictResponse {
	return VerdictResponse{
		Domain:         v.Domain.String(),
		Zone:           v.Zone.String(),
		Headline:       v.Headline,
		Signals:        v.SignalStrings(),
		Recommendation: v.Recommendation,
		Origin:         string(v.Origin),
		Rendered:       analysis.Render(v),
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
