package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Debt answer fields.
const (
	FieldAmount        = "amount"
	FieldDate          = "date"
	FieldDebtorType    = "debtor_type"
	FieldEvidence      = "evidence"
	FieldContactStatus = "contact_status"
)

const (
	smallDebtLimit = 100_000
	largeDebtLimit = 5_000_000
)

// DebtProfile scores the chance of recovering a debt.
func DebtProfile() Profile {
	return Profile{
		Domain: domain.DomainDebt,
		Checks: []NamedCheck{
			{Field: FieldAmount, Check: checkDebtAmount},
			{Field: FieldDate, Check: checkDebtAge},
			{Field: FieldDebtorType, Check: checkDebtorType},
			whenContains(FieldEvidence, "Нет доказательств — позиция слабая.", "нет", "жоқ", "не знаю"),
			whenContains(FieldContactStatus, "Не выходит на связь — готовьтесь к суду.", "нет", "не выходит", "жоқ"),
		},
		Policy: Policy{Thresholds: Thresholds{Yellow: 1, Red: 3}, Tiers: ColourTiers},
		Headlines: map[domain.Zone]string{
			domain.ZoneRed:    "🔴 Красная зона\n\nШансы на возврат низкие.",
			domain.ZoneYellow: "🟡 Жёлтая зона\n\nШансы 50/50.",
			domain.ZoneGreen:  "🟢 Зелёная зона\n\nХорошие шансы на возврат.",
		},
		Recommendations: map[domain.Zone]string{
			domain.ZoneRed:    "Рекомендую обратиться к юристу. Шансы низкие, но попробовать стоит.",
			domain.ZoneYellow: "Можно попробовать вернуть самостоятельно. Начните с официальной претензии.",
			domain.ZoneGreen:  "Высокие шансы на возврат. Начните с переговоров, затем претензия.",
		},
	}
}

func checkDebtAmount(a domain.AnswerSet) (domain.Signal, bool) {
	amount, ok := parseAmount(a.Get(FieldAmount))
	if !ok {
		return "", false
	}
	switch {
	case amount < smallDebtLimit:
		return "Сумма небольшая — стоит ли тратить время?", true
	case amount > largeDebtLimit:
		return "Крупная сумма — рекомендую юриста.", true
	default:
		return "", false
	}
}

// checkDebtAge: years outrank months when both appear.
func checkDebtAge(a domain.AnswerSet) (domain.Signal, bool) {
	date := a.Get(FieldDate)
	switch {
	case containsAny(date, "год", "лет"):
		return "Долг старый — высокий риск невозврата.", true
	case containsAny(date, "месяц"):
		return "Срок средний — ещё можно вернуть.", true
	default:
		return "", false
	}
}

func checkDebtorType(a domain.AnswerSet) (domain.Signal, bool) {
	debtor := a.Get(FieldDebtorType)
	switch {
	case equalsAny(debtor, "Неизвестно", "Белгісіз"):
		return "Должник исчез — это плохой знак.", true
	case equalsAny(debtor, "Частное лицо", "Жеке тұлға"):
		return "С физлиц взыскать сложнее, чем с юрлиц.", true
	default:
		return "", false
	}
}
