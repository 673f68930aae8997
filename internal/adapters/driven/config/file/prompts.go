package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

const promptExt = ".tmpl"

// PromptStore loads verdict prompts from user-editable files on disk,
// falling back to the built-in templates.
//
// Files are only created when first accessed, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts returns the built-in template for every prompt name.
func defaultPrompts() map[string]string {
	out := make(map[string]string, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		out[driven.PromptName(d)] = analysis.DefaultPrompt(d)
	}
	return out
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.radar/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(dir, "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
func (s *PromptStore) Load(name string) (string, error) {
	defaults := defaultPrompts()

	s.initOnce.Do(func() { s.initErr = s.initialise(defaults) })
	if s.initErr != nil {
		if prompt, ok := defaults[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	if err != nil || prompt == "" {
		if fallback, ok := defaults[name]; ok {
			return fallback, nil
		}
		if err == nil {
			err = os.ErrNotExist
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and any missing default files.
func (s *PromptStore) initialise(defaults map[string]string) error {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}

	for name, content := range defaults {
		path := filepath.Join(s.promptDir, name+promptExt)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				return fmt.Errorf("create default prompt %q: %w", name, err)
			}
		}
	}

	return s.createReadme()
}

func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+promptExt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	content := `# radar prompts

One template per domain, used when an LLM provider is configured:

- ` + "`verdict_debt.tmpl`" + `
- ` + "`verdict_market.tmpl`" + `
- ` + "`verdict_hiring.tmpl`" + `
- ` + "`verdict_import.tmpl`" + `
- ` + "`verdict_idea.tmpl`" + `

Templates use Go text/template syntax. ` + "`{{field \"amount\"}}`" + ` inserts an
answer, or "не указано" when it is blank.

Keep the zone marker line (🟢/🟡/🔴) in the requested output format: the zone
is read from it. Delete a file to restore the built-in template.
`
	return os.WriteFile(path, []byte(content), 0600)
}
