package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
)

// Ensure SlangFile implements the interface.
var _ driven.SlangDictionary = (*SlangFile)(nil)

// slangDocument is the on-disk layout:
//
//	[slang]
//	"лям" = "миллион"
//	"щас" = "сейчас"
//
// Non-ASCII keys must be quoted.
type slangDocument struct {
	Slang map[string]string `toml:"slang"`
}

// SlangFile is a TOML-backed custom slang dictionary.
type SlangFile struct {
	mu   sync.Mutex
	path string
}

// NewSlangFile returns a dictionary stored at path.
// If path is empty, defaults to ~/.radar/slang.toml.
func NewSlangFile(path string) (*SlangFile, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(dir, "slang.toml")
	}
	return &SlangFile{path: path}, nil
}

// Path returns the dictionary file path.
func (f *SlangFile) Path() string {
	return f.path
}

// Load reads all entries. A missing file yields an empty dictionary.
func (f *SlangFile) Load() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *SlangFile) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var doc slangDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, f.path, err)
	}
	if doc.Slang == nil {
		doc.Slang = map[string]string{}
	}
	return doc.Slang, nil
}

// Add stores one entry, replacing any previous canonical form for surface.
func (f *SlangFile) Add(surface, canonical string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[surface] = canonical

	data, err := toml.Marshal(slangDocument{Slang: entries})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}
