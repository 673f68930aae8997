package driving

import (
	"context"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// AnalysisService produces verdicts for questionnaire answers.
type AnalysisService interface {
	// Analyze returns a verdict for the domain. When an LLM is configured
	// it is tried once; any failure yields the rule-based verdict.
	// The only error is domain.ErrUnsupportedDomain.
	Analyze(ctx context.Context, d domain.Domain, answers domain.AnswerSet) (domain.Verdict, error)

	// RuleBased returns the deterministic verdict without consulting an LLM.
	RuleBased(d domain.Domain, answers domain.AnswerSet) (domain.Verdict, error)

	// AIEnabled reports whether an LLM is wired in.
	AIEnabled() bool
}
