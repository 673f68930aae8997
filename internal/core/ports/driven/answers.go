package driven

import (
	"io"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// AnswerLoader decodes questionnaire answers from files or streams.
type AnswerLoader interface {
	// LoadFile reads answers from path. The format follows the extension.
	LoadFile(path string) (domain.AnswerSet, error)

	// Decode reads answers from r in the named format ("yaml" or "json").
	Decode(r io.Reader, format string) (domain.AnswerSet, error)
}
