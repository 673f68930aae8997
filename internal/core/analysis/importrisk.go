package analysis

import "github.com/custodia-labs/radar/internal/core/domain"

// Import answer fields.
const (
	FieldSupplierCheck = "supplier_check"
	FieldPaymentTerms  = "payment_terms"
	FieldCountry       = "country"
	FieldBatchSize     = "batch_size"
)

// ImportProfile scores the risk of an import deal.
func ImportProfile() Profile {
	return Profile{
		Domain: domain.DomainImport,
		Checks: []NamedCheck{
			whenContains(FieldSupplierCheck, "Не проверял поставщика — 90% проблем от этого", "не проверял", "тексермедім"),
			whenContains(FieldPaymentTerms, "100% предоплата — максимальный риск", "100%", "алдын ала", "предоплата"),
			whenContains(FieldCountry, "Китай — долгая доставка, возможен брак", "китай", "қытай"),
			noop(FieldBatchSize),
		},
		Policy: Policy{Thresholds: Thresholds{Yellow: 1, Red: 3}, Tiers: ColourTiers},
		Headlines: map[domain.Zone]string{
			domain.ZoneRed:    "🔴 Красная зона\n\nОчень высокие риски.",
			domain.ZoneYellow: "🟡 Жёлтая зона\n\nЕсть риски.",
			domain.ZoneGreen:  "🟢 Зелёная зона\n\nРиски минимальные.",
		},
		Recommendations: map[domain.Zone]string{
			domain.ZoneRed:    "Критические риски! Проверьте поставщика, не платите 100% вперёд.",
			domain.ZoneYellow: "Есть риски, но управляемые. Проверьте поставщика перед оплатой.",
			domain.ZoneGreen:  "Риски минимальные. Можно продолжать, но проверяйте документы.",
		},
	}
}
