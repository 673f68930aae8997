package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Analyzer runs one profile. It holds no per-call state and is safe for
// concurrent use.
type Analyzer struct {
	profile Profile
}

// New creates an analyzer for profile.
func New(profile Profile) *Analyzer {
	return &Analyzer{profile: profile}
}

// Domain returns the analyzer's domain.
func (a *Analyzer) Domain() domain.Domain {
	return a.profile.Domain
}

// Profile returns the analyzer's configuration.
func (a *Analyzer) Profile() Profile {
	return a.profile
}

// Analyze runs every check in order and reduces the signals to a verdict.
func (a *Analyzer) Analyze(answers domain.AnswerSet) domain.Verdict {
	signals := make([]domain.Signal, 0, len(a.profile.Checks))
	for _, c := range a.profile.Checks {
		if s, ok := c.Check(answers); ok {
			signals = append(signals, s)
		}
	}

	zone := a.profile.Policy.Reduce(len(signals))
	return domain.Verdict{
		Domain:         a.profile.Domain,
		Zone:           zone,
		Headline:       a.profile.Headlines[zone],
		Signals:        signals,
		Recommendation: a.profile.Recommendations[zone],
		Origin:         domain.OriginRuleBased,
	}
}
