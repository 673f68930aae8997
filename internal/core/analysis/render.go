package analysis

import (
	"strings"

	"github.com/custodia-labs/radar/internal/core/domain"
)

const (
	problemsHeader       = "\n\nПроблемы:\n• "
	problemsSeparator    = "\n• "
	recommendationHeader = "\n\nРекомендация: "
)

// RenderOption adjusts Render output.
type RenderOption func(*renderConfig)

type renderConfig struct {
	recommendation bool
}

// WithRecommendation appends the zone recommendation after the signals.
func WithRecommendation() RenderOption {
	return func(c *renderConfig) { c.recommendation = true }
}

// Render turns a verdict into user-facing text: the headline followed by
// the problem list. AI verdicts already carry their full text in the
// headline and are returned unchanged.
func Render(v domain.Verdict, opts ...RenderOption) string {
	if v.IsAI() {
		return v.Headline
	}

	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString(v.Headline)
	if len(v.Signals) > 0 {
		b.WriteString(problemsHeader)
		b.WriteString(strings.Join(v.SignalStrings(), problemsSeparator))
	}
	if cfg.recommendation && v.Recommendation != "" {
		b.WriteString(recommendationHeader)
		b.WriteString(v.Recommendation)
	}
	return b.String()
}
