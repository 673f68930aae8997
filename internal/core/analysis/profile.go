package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Profile is the configuration of one domain analyzer.
type Profile struct {
	Domain          domain.Domain
	Checks          []NamedCheck
	Policy          Policy
	Headlines       map[domain.Zone]string
	Recommendations map[domain.Zone]string
}

// Profiles returns the built-in profiles in domain order.
func Profiles() []Profile {
	return []Profile{
		DebtProfile(),
		MarketProfile(),
		HiringProfile(),
		ImportProfile(),
		IdeaProfile(),
	}
}

// Fields lists the answer keys the profile reads, in check order.
func (p Profile) Fields() []string {
	out := make([]string, len(p.Checks))
	for i, c := range p.Checks {
		out[i] = c.Field
	}
	return out
}
