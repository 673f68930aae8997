package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Hiring answer fields.
const (
	FieldExperience = "experience"
	FieldReferences = "references"
	FieldProbation  = "probation"
	FieldSalary     = "salary"
)

// HiringProfile scores the risk of hiring a candidate. It reports risk
// levels (low/medium/high) instead of colours.
func HiringProfile() Profile {
	return Profile{
		Domain: domain.DomainHiring,
		Checks: []NamedCheck{
			{Field: FieldExperience, Check: checkNoExperience},
			whenContains(FieldReferences, "Нет рекомендаций — красный флаг", "нет", "жоқ"),
			whenContains(FieldProbation, "Нет испытательного срока — риск ошибки при найме", "нет", "жоқ"),
			noop(FieldSalary),
		},
		Policy: Policy{Thresholds: Thresholds{Yellow: 1, Red: 3}, Tiers: RiskTiers},
		Headlines: map[domain.Zone]string{
			domain.ZoneHigh:   "🔴 Высокий риск\n\nКандидат опасен.",
			domain.ZoneMedium: "🟡 Средний риск\n\nЕсть риски.",
			domain.ZoneLow:    "🟢 Низкий риск\n\nКандидат выглядит надёжно.",
		},
		Recommendations: map[domain.Zone]string{
			domain.ZoneHigh:   "Рекомендую отказаться. Слишком много красных флагов.",
			domain.ZoneMedium: "Можно рассмотреть, но с осторожностью. Введите испытательный срок.",
			domain.ZoneLow:    "Кандидат выглядит надёжно. Можно предлагать оффер.",
		},
	}
}

func checkNoExperience(a domain.AnswerSet) (domain.Signal, bool) {
	exp := a.Get(FieldExperience)
	if exp == "0" || containsAny(exp, "без", "тәжірибесіз") {
		return "Нет опыта — высокий риск ошибок", true
	}
	return "", false
}
