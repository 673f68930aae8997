package analysis

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// notSpecified fills template fields that were not answered.
const notSpecified = "не указано"

// defaultPrompts are the built-in verdict prompt templates. Fields are
// read from the AnswerSet, e.g. {{field "amount"}}.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[domain.Domain]string{
	domain.DomainDebt: `Ты бизнес-аналитик для предпринимателей Казахстана.
Твоя задача — дать холодный, честный вердикт без эмоций.

Данные о долге:
- Сумма: {{field "amount"}} тенге
- Срок: {{field "date"}}
- Должник: {{field "debtor_type"}}
- Доказательства: {{field "evidence"}}
- Контакт с должником: {{field "contact_status"}}

Формат ответа СТРОГО:
🟢/🟡/🔴 Зона: [название]

Проблемы:
• [проблема 1]
• [проблема 2]

Рекомендации:
• [рекомендация 1]
• [рекомендация 2]

Без воды, только факты. Пиши на русском языке.`,

	domain.DomainMarket: `Ты бизнес-аналитик для предпринимателей Казахстана.

Данные о бизнесе:
- Продукт: {{field "product"}}
- Цена: {{field "price"}} тенге
- Город: {{field "city"}}
- Продажи за месяц: {{field "sales_volume"}} шт
- Конкуренты: {{field "competitors"}}

Дай вердикт: в рынке ли предприниматель?

Формат ответа СТРОГО:
🟢/🟡/🔴 Зона: [название]

Проблемы:
• [проблема 1]

Рекомендации:
• [рекомендация 1]

Пиши на русском языке.`,

	domain.DomainHiring: `Ты HR-аналитик для предпринимателей Казахстана.

Данные о кандидате:
- Должность: {{field "position"}}
- Опыт: {{field "experience"}}
- Зарплата: {{field "salary"}} тенге
- Рекомендации: {{field "references"}}
- Испытательный срок: {{field "probation"}}

Оцени риски найма.

Формат ответа СТРОГО:
🟢/🟡/🔴 Риск: [уровень]

Флаги:
• [флаг 1]

Рекомендация: [брать/не брать/с осторожностью]

Пиши на русском языке.`,

	domain.DomainImport: `Ты аналитик ВЭД для предпринимателей Казахстана.

Данные об импорте:
- Товар: {{field "product_type"}}
- Страна: {{field "country"}}
- Партия: {{field "batch_size"}}
- Проверка поставщика: {{field "supplier_check"}}
- Условия оплаты: {{field "payment_terms"}}

Оцени риски импорта.

Формат ответа СТРОГО:
🟢/🟡/🔴 Зона: [название]

Риски:
• [риск 1]

Что проверить до оплаты:
• [проверка 1]

Пиши на русском языке.`,

	domain.DomainIdea: `Ты бизнес-аналитик для стартапов в Казахстане.

Данные об идее:
- Описание: {{field "idea_description"}}
- Клиент: {{field "target_audience"}}
- Инвестиции: {{field "investment"}} тенге
- Конкуренты: {{field "competition"}}
- Модель дохода: {{field "revenue_model"}}

Найди слабые места идеи.

Формат ответа СТРОГО:
🟢/🟡/🔴 Зона: [название]

Слабые места:
• [слабость 1]

Как проверить быстро:
• [тест 1]

Пиши на русском языке.`,
}

// DefaultPrompt returns the built-in prompt template for d, or "".
func DefaultPrompt(d domain.Domain) string {
	return defaultPrompts[d]
}

// RenderPrompt fills a prompt template with answers. Blank answers
// render as "не указано".
func RenderPrompt(tmpl string, answers domain.AnswerSet) (string, error) {
	funcs := template.FuncMap{
		"field": func(key string) string {
			if v := strings.TrimSpace(answers.Get(key)); v != "" {
				return v
			}
			return notSpecified
		},
	}

	t, err := template.New("prompt").Funcs(funcs).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse prompt: %w", err)
	}

	var b strings.Builder
	if err := t.Execute(&b, answers); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return b.String(), nil
}
