package domain

import "strings"

// AnswerSet maps questionnaire field names to free-text answers.
// A missing key and an empty value mean the same thing: not answered.
type AnswerSet map[string]string

// Get returns the answer for key, or "" when absent.
func (a AnswerSet) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// Has reports whether key holds a non-blank answer.
func (a AnswerSet) Has(key string) bool {
	return strings.TrimSpace(a.Get(key)) != ""
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Map returns a copy with fn applied to every value.
func (a AnswerSet) Map(fn func(string) string) AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = fn(v)
	}
	return out
}

// Domain identifies one of the advisory areas.
type Domain string

// Supported domains.
const (
	DomainDebt   Domain = "debt"
	DomainMarket Domain = "market"
	DomainHiring Domain = "hiring"
	DomainImport Domain = "import"
	DomainIdea   Domain = "idea"
)

// domainAliases maps legacy names onto domains.
var domainAliases = map[string]Domain{
	"import_mod": DomainImport,
}

// AllDomains returns every supported domain in a stable order.
func AllDomains() []Domain {
	return []Domain{DomainDebt, DomainMarket, DomainHiring, DomainImport, DomainIdea}
}

// ParseDomain resolves a name or alias to a Domain.
func ParseDomain(s string) (Domain, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if d, ok := domainAliases[name]; ok {
		return d, true
	}
	d := Domain(name)
	return d, d.IsValid()
}

// IsValid returns true if the domain is recognised.
func (d Domain) IsValid() bool {
	switch d {
	case DomainDebt, DomainMarket, DomainHiring, DomainImport, DomainIdea:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Domain) String() string {
	return string(d)
}

// Description returns a human-readable description of the domain.
func (d Domain) Description() string {
	switch d {
	case DomainDebt:
		return "Debt recovery"
	case DomainMarket:
		return "Market position"
	case DomainHiring:
		return "Hiring risk"
	case DomainImport:
		return "Import risk"
	case DomainIdea:
		return "Idea validation"
	default:
		return "Unknown"
	}
}
