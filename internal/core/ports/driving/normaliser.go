package driving

import "github.com/custodia-labs/radar/internal/core/domain"

// TextNormaliser cleans colloquial text and extracts entities from it.
type TextNormaliser interface {
	// Normalise substitutes slang and removes filler words.
	Normalise(text string) string

	// ExtractEntities finds amounts and cities in text.
	ExtractEntities(text string) domain.Entities

	// AddCustomSlang registers one slang entry.
	AddCustomSlang(surface, canonical string) error
}
