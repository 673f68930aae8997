package domain

// EntityCategory names a kind of entity extracted from text.
type EntityCategory string

// Entity categories.
const (
	EntityAmounts EntityCategory = "amounts"
	EntityCities  EntityCategory = "cities"
)

// Entities holds extracted matches per category in order of first
// appearance. A category is present only when it has at least one match.
type Entities map[EntityCategory][]string

// Get returns matches for a category, or nil.
func (e Entities) Get(c EntityCategory) []string {
	if e == nil {
		return nil
	}
	return e[c]
}

// Add appends a value unless it is already present.
func (e Entities) Add(c EntityCategory, value string) {
	for _, v := range e[c] {
		if v == value {
			return
		}
	}
	e[c] = append(e[c], value)
}
