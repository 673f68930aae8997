package analysis

import (
	"fmt"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// Registry maps domains to their analyzers.
type Registry struct {
	analyzers map[domain.Domain]*Analyzer
}

// NewRegistry returns a registry with the built-in profiles.
func NewRegistry() *Registry {
	return NewRegistryFrom(Profiles()...)
}

// NewRegistryFrom builds a registry from the given profiles. A later
// profile replaces an earlier one for the same domain.
func NewRegistryFrom(profiles ...Profile) *Registry {
	r := &Registry{analyzers: make(map[domain.Domain]*Analyzer, len(profiles))}
	for _, p := range profiles {
		r.analyzers[p.Domain] = New(p)
	}
	return r
}

// Get returns the analyzer for d.
func (r *Registry) Get(d domain.Domain) (*Analyzer, error) {
	a, ok := r.analyzers[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDomain, d)
	}
	return a, nil
}

// Domains lists registered domains in canonical order.
func (r *Registry) Domains() []domain.Domain {
	out := make([]domain.Domain, 0, len(r.analyzers))
	for _, d := range domain.AllDomains() {
		if _, ok := r.analyzers[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
