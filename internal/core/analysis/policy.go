package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Thresholds are the minimum signal counts for the middle and worst tiers.
type Thresholds struct {
	Yellow int
	Red    int
}

// Tiers names the zones a domain reports, best to worst.
type Tiers struct {
	Best   domain.Zone
	Middle domain.Zone
	Worst  domain.Zone
}

// ColourTiers is the green/yellow/red vocabulary.
var ColourTiers = Tiers{Best: domain.ZoneGreen, Middle: domain.ZoneYellow, Worst: domain.ZoneRed}

// RiskTiers is the low/medium/high vocabulary.
var RiskTiers = Tiers{Best: domain.ZoneLow, Middle: domain.ZoneMedium, Worst: domain.ZoneHigh}

// Policy reduces a signal count to a zone.
type Policy struct {
	Thresholds Thresholds
	Tiers      Tiers
}

// Reduce returns the zone for n signals. It is monotone in n.
func (p Policy) Reduce(n int) domain.Zone {
	switch {
	case n >= p.Thresholds.Red:
		return p.Tiers.Worst
	case n >= p.Thresholds.Yellow:
		return p.Tiers.Middle
	default:
		return p.Tiers.Best
	}
}

// ByRank returns the tier for a rank (0 best, 2 worst).
func (t Tiers) ByRank(rank int) domain.Zone {
	switch rank {
	case 0:
		return t.Best
	case 1:
		return t.Middle
	case 2:
		return t.Worst
	default:
		return domain.ZoneUnknown
	}
}
