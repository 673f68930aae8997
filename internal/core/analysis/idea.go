package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Idea answer fields.
const (
	FieldIdeaDescription = "idea_description"
	FieldTargetAudience  = "target_audience"
	FieldCompetition     = "competition"
	FieldRevenueModel    = "revenue_model"
	FieldInvestment      = "investment"
)

const (
	minIdeaRunes     = 20
	minAudienceRunes = 10
	minRevenueRunes  = 10
)

// IdeaProfile scores how well a business idea is worked out.
func IdeaProfile() Profile {
	return Profile{
		Domain: domain.DomainIdea,
		Checks: []NamedCheck{
			{Field: FieldIdeaDescription, Check: checkIdeaTooShort},
			{Field: FieldTargetAudience, Check: checkAudienceUndefined},
			whenContains(FieldCompetition, "Конкурентов не изучал", "не знаю", "білмеймін"),
			{Field: FieldRevenueModel, Check: checkRevenueUnclear},
			noop(FieldInvestment),
		},
		Policy: Policy{Thresholds: Thresholds{Yellow: 1, Red: 3}, Tiers: ColourTiers},
		Headlines: map[domain.Zone]string{
			domain.ZoneRed:    "🔴 Красная зона\n\nИдея сырая. Много неизвестных.",
			domain.ZoneYellow: "🟡 Жёлтая зона\n\nИдея имеет право на жизнь.",
			domain.ZoneGreen:  "🟢 Зелёная зона\n\nИдея проработана хорошо.",
		},
		Recommendations: map[domain.Zone]string{
			domain.ZoneRed:    "Идея слишком сырая. Проработайте каждый пункт: клиент, конкуренты, доход.",
			domain.ZoneYellow: "Идея имеет потенциал, но требует доработки. Изучите слабые места.",
			domain.ZoneGreen:  "Идея хорошо проработана. Можно начинать быстрый тест.",
		},
	}
}

func checkIdeaTooShort(a domain.AnswerSet) (domain.Signal, bool) {
	if shorterThan(a.Get(FieldIdeaDescription), minIdeaRunes) {
		return "Идея описана слишком кратко", true
	}
	return "", false
}

func checkAudienceUndefined(a domain.AnswerSet) (domain.Signal, bool) {
	audience := a.Get(FieldTargetAudience)
	if containsAny(audience, "не знаю", "білмеймін") || shorterThan(audience, minAudienceRunes) {
		return "Клиент не определён", true
	}
	return "", false
}

func checkRevenueUnclear(a domain.AnswerSet) (domain.Signal, bool) {
	if shorterThan(a.Get(FieldRevenueModel), minRevenueRunes) {
		return "Модель дохода неясна", true
	}
	return "", false
}
