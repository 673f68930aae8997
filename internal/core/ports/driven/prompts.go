package driven

import "github.com/custodia-labs/radar/internal/core/domain"

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return the
	// built-in default.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// PromptName returns the template name for a domain's verdict prompt.
// Templates are rendered with text/template against the AnswerSet, so
// fields are referenced as {{.amount}} and so on.
func PromptName(d domain.Domain) string {
	return "verdict_" + string(d)
}
