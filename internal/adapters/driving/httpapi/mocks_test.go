package httpapi

import (
	"context"
	"strings"

	"github.com/custodia-labs/radar/internal/core/domain"
)

type mockAnalysisService struct {
	verdict    domain.Verdict
	err        error
	aiEnabled  bool
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

func (m *mockAnalysisService) AIEnabled() bool { return m.aiEnabled }

type mockNormaliser struct{}

func (mockNormaliser) Normalise(text string) string { return strings.TrimSpace(strings.ToLower(text)) }

func (mockNormaliser) ExtractEntities(text string) domain.Entities {
	e := domain.Entities{}
	if strings.Contains(text, "5 млн") {
		e.Add(domain.EntityAmounts, "5 млн")
	}
	return e
}

func (mockNormaliser) AddCustomSlang(_, _ string) error { return nil }
