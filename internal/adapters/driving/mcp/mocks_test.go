package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/radar/internal/core/domain"
)

type mockAnalysisService struct {
	verdict    domain.Verdict
	err        error
	aiCalls    int
	ruleCalls  int
	gotAnswers domain.AnswerSet
}

func (m *mockAnalysisService) Analyze(_ context.Context, d domain.Domain, a domain.AnswerSet) (domain.Verdict, error) {
	m.aiCalls++
	m.gotAnswers = a
	v := m.verdict
	v.Domain = d
	return v, m.err
}

func (m *mockAnalysisService) RuleBased(d domain.Domain, a domain.AnswerSet) (domain.Verdict, error) {
	m.ruleCalls++
	m.gotAnswers = a
	v := m.verdict
	v.Domain = d
	return v, m.err
}

func (m *mockAnalysisService) AIEnabled() bool { return false }

type mockNormaliser struct{}

func (mockNormaliser) Normalise(text string) string { return strings.ToUpper(text) }

func (mockNormaliser) ExtractEntities(text string) domain.Entities {
	e := domain.Entities{}
	if strings.Contains(text, "Алматы") {
		e.Add(domain.EntityCities, "Алматы")
	}
	return e
}

func (mockNormaliser) AddCustomSlang(_, _ string) error { return nil }
