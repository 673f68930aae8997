// Package answers decodes questionnaire answer files into domain.AnswerSet.
// YAML, JSON and TOML documents are accepted; each must be a flat mapping of
// field name to scalar value.
package answers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.AnswerLoader = (*Loader)(nil)

// Supported formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Loader reads answer files.
type Loader struct{}

// NewLoader creates an answer loader.
func NewLoader() *Loader {
	return &Loader{}
}

// FormatForPath maps a file extension to a format name.
func FormatForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// LoadFile reads answers from path. The format follows the extension.
func (l *Loader) LoadFile(path string) (domain.AnswerSet, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: answers file %s: unknown extension", domain.ErrUnsupportedType, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	answers, err := l.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return answers, nil
}

// Decode reads answers from r in the named format.
func (l *Loader) Decode(r io.Reader, format string) (domain.AnswerSet, error) {
	raw := map[string]any{}

	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: decode yaml: %v", domain.ErrInvalidInput, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: decode json: %v", domain.ErrInvalidInput, err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode toml: %v", domain.ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: answers format %q", domain.ErrUnsupportedType, format)
	}

	answers := make(domain.AnswerSet, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		s, err := scalar(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", domain.ErrInvalidInput, key, err)
		}
		answers[key] = s
	}
	return answers, nil
}

// scalar renders a decoded value as the string an analyzer expects.
// Numbers keep their plain decimal form so "5000000" never becomes "5e+06".
func scalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}
