package slang

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// amountPattern matches a number with optional digit grouping and decimal
// part, optionally followed by a scale word and its inflection.
var amountPattern = regexp.MustCompile(
	`\d+(?:[ \x{00A0}.,]\d{3})*(?:[.,]\d+)?(?:[ \x{00A0}]*(?:тысяч|тыс|миллиард|млрд|миллион|млн|мың|лям)[\p{L}]*)?`,
)

// maxCitySuffix bounds the case ending allowed after a city stem,
// so "Алматыда" matches but unrelated longer words do not.
const maxCitySuffix = 4

type city struct {
	name  string
	stems []string
	// skip lists prefixes of ordinary words that share a stem.
	skip []string
	// capitalised cities are only recognised when written with a capital.
	capitalised bool
}

// cities is the gazetteer. Stems are lowercase prefixes in Russian and
// Kazakh spelling.
var cities = []city{
	{name: "Алматы", stems: []string{"алматы"}},
	{name: "Астана", stems: []string{"астан"}},
	{name: "Шымкент", stems: []string{"шымкент"}},
	{name: "Караганда", stems: []string{"караганд", "қарағанд"}},
	{name: "Актобе", stems: []string{"актобе", "ақтөбе"}},
	{name: "Тараз", stems: []string{"тараз"}},
	{name: "Павлодар", stems: []string{"павлодар"}},
	{name: "Усть-Каменогорск", stems: []string{"усть-каменогорск", "өскемен"}},
	{name: "Семей", stems: []string{"семей"}, skip: []string{"семейн"}, capitalised: true},
	{name: "Атырау", stems: []string{"атырау"}},
	{name: "Костанай", stems: []string{"костана", "қостана"}},
	{name: "Кызылорда", stems: []string{"кызылорд", "қызылорд"}},
	{name: "Уральск", stems: []string{"уральск"}},
	{name: "Петропавловск", stems: []string{"петропавловск", "петропавл"}},
	{name: "Актау", stems: []string{"актау", "ақтау"}},
	{name: "Темиртау", stems: []string{"темиртау", "теміртау"}},
	{name: "Туркестан", stems: []string{"туркестан", "түркістан"}},
	{name: "Кокшетау", stems: []string{"кокшетау", "көкшетау"}},
	{name: "Талдыкорган", stems: []string{"талдыкорган", "талдықорған"}},
	{name: "Экибастуз", stems: []string{"экибастуз", "екібастұз"}},
	{name: "Жезказган", stems: []string{"жезказган", "жезқазған"}},
}

// ExtractEntities finds amounts and cities in text. Categories without a
// match are absent from the result; the map itself is never nil.
func (n *Normaliser) ExtractEntities(text string) domain.Entities {
	entities := domain.Entities{}

	for _, m := range amountPattern.FindAllString(text, -1) {
		entities.Add(domain.EntityAmounts, strings.Join(strings.Fields(m), " "))
	}

	for _, field := range strings.Fields(text) {
		if name, ok := matchCity(splitToken(field).core); ok {
			entities.Add(domain.EntityCities, name)
		}
	}
	return entities
}

func matchCity(core string) (string, bool) {
	if core == "" {
		return "", false
	}
	word := strings.ToLower(core)
	first, _ := utf8.DecodeRuneInString(core)
	for _, c := range cities {
		if c.capitalised && !unicode.IsUpper(first) {
			continue
		}
		if hasAnyPrefix(word, c.skip) {
			continue
		}
		for _, stem := range c.stems {
			if !strings.HasPrefix(word, stem) {
				continue
			}
			if utf8.RuneCountInString(word)-utf8.RuneCountInString(stem) <= maxCitySuffix {
				return c.name, true
			}
		}
	}
	return "", false
}

func hasAnyPrefix(word string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	return false
}
