package analysis

import (
	"strings"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// zoneMarkers are checked in order; the first group with a hit wins.
var zoneMarkers = []struct {
	rank    int
	markers []string
}{
	{0, []string{"🟢", "Зелёная", "Зеленая", "Низкий"}},
	{1, []string{"🟡", "Жёлтая", "Желтая", "Средний"}},
	{2, []string{"🔴", "Красная", "Высокий"}},
}

// InferZone reads the zone out of free model text. Text with no marker
// yields domain.ZoneUnknown rather than a guess.
func InferZone(text string) domain.Zone {
	return inferTier(text, ColourTiers)
}

// InferZoneFor is InferZone in the vocabulary of domain d.
func InferZoneFor(d domain.Domain, text string) domain.Zone {
	if d == domain.DomainHiring {
		return inferTier(text, RiskTiers)
	}
	return inferTier(text, ColourTiers)
}

func inferTier(text string, tiers Tiers) domain.Zone {
	for _, g := range zoneMarkers {
		for _, m := range g.markers {
			if strings.Contains(text, m) {
				return tiers.ByRank(g.rank)
			}
		}
	}
	return domain.ZoneUnknown
}
