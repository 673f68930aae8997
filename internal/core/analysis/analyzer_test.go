package analysis

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/domain"
)

func analyze(t *testing.T, d domain.Domain, answers domain.AnswerSet) domain.Verdict {
	t.Helper()
	a, err := NewRegistry().Get(d)
	require.NoError(t, err)
	return a.Analyze(answers)
}

func TestAnalyze_EmptyAnswersGiveBestTier(t *testing.T) {
	want := map[domain.Domain]domain.Zone{
		domain.DomainDebt:   domain.ZoneGreen,
		domain.DomainMarket: domain.ZoneGreen,
		domain.DomainHiring: domain.ZoneLow,
		domain.DomainImport: domain.ZoneGreen,
		domain.DomainIdea:   domain.ZoneGreen,
	}

	for _, d := range domain.AllDomains() {
		t.Run(string(d), func(t *testing.T) {
			for _, answers := range []domain.AnswerSet{nil, {}, {"unrelated": "нет"}} {
				v := analyze(t, d, answers)
				assert.Equal(t, want[d], v.Zone)
				assert.Empty(t, v.Signals)
				assert.Equal(t, domain.OriginRuleBased, v.Origin)
				assert.NotEmpty(t, v.Headline)
				assert.NotEmpty(t, v.Recommendation)
			}
		})
	}
}

func TestAnalyze_EmptyStringValuesGiveBestTier(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(string(p.Domain), func(t *testing.T) {
			answers := domain.AnswerSet{}
			for _, f := range p.Fields() {
				answers[f] = ""
			}
			v := New(p).Analyze(answers)
			assert.Empty(t, v.Signals)
			assert.Equal(t, 0, v.Zone.Rank())
		})
	}
}

func TestDebt(t *testing.T) {
	tests := []struct {
		name    string
		answers domain.AnswerSet
		zone    domain.Zone
		signals []domain.Signal
	}{
		{
			name:    "large amount alone",
			answers: domain.AnswerSet{"amount": "6000000"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Крупная сумма — рекомендую юриста."},
		},
		{
			name:    "small amount alone",
			answers: domain.AnswerSet{"amount": "50000"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Сумма небольшая — стоит ли тратить время?"},
		},
		{
			name:    "grouped amount in range",
			answers: domain.AnswerSet{"amount": "1 500,000"},
			zone:    domain.ZoneGreen,
			signals: []domain.Signal{},
		},
		{
			name:    "boundaries are exclusive",
			answers: domain.AnswerSet{"amount": "100000"},
			zone:    domain.ZoneGreen,
			signals: []domain.Signal{},
		},
		{
			name:    "unparseable amount is ignored",
			answers: domain.AnswerSet{"amount": "много"},
			zone:    domain.ZoneGreen,
			signals: []domain.Signal{},
		},
		{
			name: "everything bad",
			answers: domain.AnswerSet{
				"amount":         "6000000",
				"date":           "3 года",
				"debtor_type":    "Неизвестно",
				"evidence":       "нет",
				"contact_status": "нет",
			},
			zone: domain.ZoneRed,
			signals: []domain.Signal{
				"Крупная сумма — рекомендую юриста.",
				"Долг старый — высокий риск невозврата.",
				"Должник исчез — это плохой знак.",
				"Нет доказательств — позиция слабая.",
				"Не выходит на связь — готовьтесь к суду.",
			},
		},
		{
			name:    "years outrank months",
			answers: domain.AnswerSet{"date": "1 год и 2 месяца"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Долг старый — высокий риск невозврата."},
		},
		{
			name:    "months",
			answers: domain.AnswerSet{"date": "Три месяца назад"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Срок средний — ещё можно вернуть."},
		},
		{
			name:    "kazakh private person",
			answers: domain.AnswerSet{"debtor_type": "Жеке тұлға"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"С физлиц взыскать сложнее, чем с юрлиц."},
		},
		{
			name:    "debtor type needs exact match",
			answers: domain.AnswerSet{"debtor_type": "неизвестно"},
			zone:    domain.ZoneGreen,
			signals: []domain.Signal{},
		},
		{
			name:    "evidence unknown is case-insensitive",
			answers: domain.AnswerSet{"evidence": "Не знаю", "contact_status": "Жоқ"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Нет доказательств — позиция слабая.", "Не выходит на связь — готовьтесь к суду."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyze(t, domain.DomainDebt, tt.answers)
			assert.Equal(t, tt.zone, v.Zone)
			if diff := cmp.Diff(tt.signals, v.Signals); diff != "" {
				t.Errorf("signals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarket(t *testing.T) {
	tests := []struct {
		name    string
		answers domain.AnswerSet
		zone    domain.Zone
		count   int
	}{
		{"no sales and unknown competitors", domain.AnswerSet{"sales_volume": "0", "competitors": "не знаю"}, domain.ZoneRed, 2},
		{"no sales only", domain.AnswerSet{"sales_volume": "0"}, domain.ZoneYellow, 1},
		{"kazakh unknown competitors", domain.AnswerSet{"competitors": "Білмеймін"}, domain.ZoneYellow, 1},
		{"some sales", domain.AnswerSet{"sales_volume": "1 200", "competitors": "Kaspi магазины"}, domain.ZoneGreen, 0},
		{"non-numeric sales", domain.AnswerSet{"sales_volume": "ноль"}, domain.ZoneGreen, 0},
		{"price never fires", domain.AnswerSet{"price": "0"}, domain.ZoneGreen, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyze(t, domain.DomainMarket, tt.answers)
			assert.Equal(t, tt.zone, v.Zone)
			assert.Len(t, v.Signals, tt.count)
		})
	}
}

func TestHiring(t *testing.T) {
	v := analyze(t, domain.DomainHiring, domain.AnswerSet{"experience": "0", "references": "нет", "probation": "нет"})
	assert.Equal(t, domain.ZoneHigh, v.Zone)
	assert.Len(t, v.Signals, 3)
	assert.Equal(t, "🔴 Высокий риск\n\nКандидат опасен.", v.Headline)

	v = analyze(t, domain.DomainHiring, domain.AnswerSet{"experience": "без опыта"})
	assert.Equal(t, domain.ZoneMedium, v.Zone)
	assert.Equal(t, []domain.Signal{"Нет опыта — высокий риск ошибок"}, v.Signals)

	v = analyze(t, domain.DomainHiring, domain.AnswerSet{"experience": "10", "references": "есть", "salary": "0"})
	assert.Equal(t, domain.ZoneLow, v.Zone)
	assert.Empty(t, v.Signals)
}

func TestImport(t *testing.T) {
	v := analyze(t, domain.DomainImport, domain.AnswerSet{
		"supplier_check": "Не проверял",
		"payment_terms":  "100% вперёд",
		"country":        "Китай",
	})
	assert.Equal(t, domain.ZoneRed, v.Zone)
	assert.Equal(t, []domain.Signal{
		"Не проверял поставщика — 90% проблем от этого",
		"100% предоплата — максимальный риск",
		"Китай — долгая доставка, возможен брак",
	}, v.Signals)

	v = analyze(t, domain.DomainImport, domain.AnswerSet{"payment_terms": "Алдын ала", "batch_size": "1"})
	assert.Equal(t, domain.ZoneYellow, v.Zone)
	assert.Len(t, v.Signals, 1)
}

func TestIdea(t *testing.T) {
	tests := []struct {
		name    string
		answers domain.AnswerSet
		zone    domain.Zone
		signals []domain.Signal
	}{
		{
			name: "well worked out",
			answers: domain.AnswerSet{
				"idea_description": "Кофейня навынос у бизнес-центров Алматы",
				"target_audience":  "Офисные сотрудники 25-40 лет",
				"competition":      "Starbucks, местные кофейни",
				"revenue_model":    "Продажа кофе и выпечки",
			},
			zone:    domain.ZoneGreen,
			signals: []domain.Signal{},
		},
		{
			name: "raw idea",
			answers: domain.AnswerSet{
				"idea_description": "Кофейня",
				"target_audience":  "не знаю",
				"competition":      "не знаю",
				"revenue_model":    "продажи",
			},
			zone: domain.ZoneRed,
			signals: []domain.Signal{
				"Идея описана слишком кратко",
				"Клиент не определён",
				"Конкурентов не изучал",
				"Модель дохода неясна",
			},
		},
		{
			name:    "lengths count characters not bytes",
			answers: domain.AnswerSet{"target_audience": "Студенты"},
			zone:    domain.ZoneYellow,
			signals: []domain.Signal{"Клиент не определён"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyze(t, domain.DomainIdea, tt.answers)
			assert.Equal(t, tt.zone, v.Zone)
			if diff := cmp.Diff(tt.signals, v.Signals); diff != "" {
				t.Errorf("signals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	answers := domain.AnswerSet{"amount": "50000", "evidence": "нет"}
	a := New(DebtProfile())

	first := a.Analyze(answers)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, a.Analyze(answers)); diff != "" {
			t.Fatalf("verdict changed between calls (-first +got):\n%s", diff)
		}
	}
}

func TestAnalyze_ConcurrentCallsDoNotShareSignals(t *testing.T) {
	a := New(DebtProfile())
	bad := domain.AnswerSet{"amount": "50000", "date": "2 года", "evidence": "нет"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Len(t, a.Analyze(bad).Signals, 3)
		}()
		go func() {
			defer wg.Done()
			assert.Empty(t, a.Analyze(domain.AnswerSet{}).Signals)
		}()
	}
	wg.Wait()
}

func TestAnalyze_ZoneIsMonotone(t *testing.T) {
	steps := []domain.AnswerSet{
		{},
		{"amount": "50000"},
		{"amount": "50000", "date": "год"},
		{"amount": "50000", "date": "год", "evidence": "нет"},
		{"amount": "50000", "date": "год", "evidence": "нет", "contact_status": "нет"},
	}
	a := New(DebtProfile())

	prev := -1
	for _, s := range steps {
		rank := a.Analyze(s).Zone.Rank()
		assert.GreaterOrEqual(t, rank, prev)
		prev = rank
	}
}
