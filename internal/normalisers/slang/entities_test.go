package slang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/radar/internal/core/domain"
)

func TestExtractEntities_Amounts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"with scale word", "Долг 500 тысяч тенге", []string{"500 тысяч"}},
		{"grouped digits", "заплатил 1 500 000 и ещё 2,000,000.50", []string{"1 500 000", "2,000,000.50"}},
		{"decimal millions", "около 1.5 млн", []string{"1.5 млн"}},
		{"inflected scale", "2 миллиона", []string{"2 миллиона"}},
		{"kazakh scale", "500 мың", []string{"500 мың"}},
		{"deduplicated", "5 лям и снова 5 лям", []string{"5 лям"}},
		{"bare number", "3 года", []string{"3"}},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.ExtractEntities(tt.in)
			assert.Equal(t, tt.want, got.Get(domain.EntityAmounts))
		})
	}
}

func TestExtractEntities_Cities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"locative", "Алматыда, 500 мың", []string{"Алматы"}},
		{"case insensitive", "из АСТАНЫ в шымкент", []string{"Астана", "Шымкент"}},
		{"kazakh spelling", "Қарағандыда кездесу", []string{"Караганда"}},
		{"hyphenated", "Усть-Каменогорск.", []string{"Усть-Каменогорск"}},
		{"first appearance order", "Шымкент, Алматы, шымкенте", []string{"Шымкент", "Алматы"}},
		{"suffix too long", "алматыдағылардың", nil},
		{"semey city", "филиал в Семейде", []string{"Семей"}},
		{"semey adjective", "Семейный бизнес, семейное кафе", nil},
		{"semey lowercase plural", "много семей", nil},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.ExtractEntities(tt.in)
			assert.Equal(t, tt.want, got.Get(domain.EntityCities))
		})
	}
}

func TestExtractEntities_AbsentCategories(t *testing.T) {
	n := New()

	empty := n.ExtractEntities("")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	onlyCity := n.ExtractEntities("в Таразе")
	_, hasAmounts := onlyCity[domain.EntityAmounts]
	assert.False(t, hasAmounts)
	assert.Equal(t, []string{"Тараз"}, onlyCity.Get(domain.EntityCities))
}
