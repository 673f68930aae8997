package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Market answer fields.
const (
	FieldSalesVolume = "sales_volume"
	FieldCompetitors = "competitors"
	FieldPrice       = "price"
)

// MarketProfile scores a business's market position. It has fewer live
// checks than the other domains, so two signals already mean red.
func MarketProfile() Profile {
	return Profile{
		Domain: domain.DomainMarket,
		Checks: []NamedCheck{
			{Field: FieldSalesVolume, Check: checkNoSales},
			whenContains(FieldCompetitors, "Конкурентов не изучил — не можешь позиционироваться", "не знаю", "білмеймін"),
			noop(FieldPrice),
		},
		Policy: Policy{Thresholds: Thresholds{Yellow: 1, Red: 2}, Tiers: ColourTiers},
		Headlines: map[domain.Zone]string{
			domain.ZoneRed:    "🔴 Красная зона\n\nПозиция опасная.",
			domain.ZoneYellow: "🟡 Жёлтая зона\n\nЕсть риски.",
			domain.ZoneGreen:  "🟢 Зелёная зона\n\nПозиция на рынке нормальная.",
		},
		Recommendations: map[domain.Zone]string{
			domain.ZoneRed:    "Срочно изучите конкурентов и пересмотрите цену. Продаж нет не просто так.",
			domain.ZoneYellow: "Изучите конкурентов и сравните цены. Возможно, вы не в рынке.",
			domain.ZoneGreen:  "Позиция нормальная. Продолжайте мониторить рынок и конкурентов.",
		},
	}
}

func checkNoSales(a domain.AnswerSet) (domain.Signal, bool) {
	n, ok := parseCount(a.Get(FieldSalesVolume))
	if ok && n == 0 {
		return "Продаж нет — проблема может быть в цене или канале", true
	}
	return "", false
}
