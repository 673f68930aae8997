// Package slang normalises colloquial Russian and Kazakh business talk
// and extracts amounts and cities from it.
package slang

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driving"
)

// Ensure Normaliser implements the interface.
var _ driving.TextNormaliser = (*Normaliser)(nil)

// builtinSlang maps lowercase surface tokens to canonical forms.
var builtinSlang = map[string]string{
	"лям":   "миллион",
	"лямов": "миллион",
	"ляма":  "миллион",
	"млн":   "миллион",
	"тыс":   "тысяч",
	"тыщ":   "тысяч",
	"тыщи":  "тысяч",
	"мың":   "тысяч",
	"теңге": "тенге",
	"тг":    "тенге",
	"бабки": "деньги",
	"бабло": "деньги",
}

// builtinFillers are dropped when they stand alone as a token or, for
// phrases, as a run of adjacent tokens.
var builtinFillers = []string{
	"короче", "ну", "типа", "как бы", "значит", "вообще", "слушай", "блин",
	"там", "ээ", "мм", "жаңағы", "енді", "яғни",
}

// Normaliser substitutes slang and strips filler words. It is safe for
// concurrent use; custom entries can be changed while it is serving.
type Normaliser struct {
	mu      sync.RWMutex
	custom  map[string]string
	merged  map[string]string
	fillers map[string]struct{}
	// longest filler phrase, in words
	maxFiller int
}

// Option configures a Normaliser.
type Option func(*Normaliser)

// WithFillers adds extra filler words or phrases.
func WithFillers(words ...string) Option {
	return func(n *Normaliser) {
		for _, w := range words {
			n.addFiller(w)
		}
	}
}

func (n *Normaliser) addFiller(phrase string) {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 {
		return
	}
	n.fillers[strings.Join(words, " ")] = struct{}{}
	if len(words) > n.maxFiller {
		n.maxFiller = len(words)
	}
}

// New creates a normaliser with the built-in slang and fillers.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{
		custom:  map[string]string{},
		fillers: make(map[string]struct{}, len(builtinFillers)),
	}
	for _, f := range builtinFillers {
		n.addFiller(f)
	}
	for _, opt := range opts {
		opt(n)
	}
	// A filler that is also a canonical form would be stripped on a
	// second pass.
	for _, canonical := range builtinSlang {
		delete(n.fillers, canonical)
	}
	n.merged = merge(builtinSlang, n.custom)
	return n
}

// AddCustomSlang registers one entry. It overrides a built-in or earlier
// entry with the same surface. Entries that would let a second pass
// change already normalised text are rejected with domain.ErrInvalidInput.
func (n *Normaliser) AddCustomSlang(surface, canonical string) error {
	key, value, err := cleanEntry(surface, canonical)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	custom := make(map[string]string, len(n.custom)+1)
	for k, v := range n.custom {
		custom[k] = v
	}
	custom[key] = value

	merged := merge(builtinSlang, custom)
	if err := n.validate(merged); err != nil {
		return err
	}
	n.custom = custom
	n.merged = merged
	return nil
}

// ReplaceCustomSlang swaps the whole custom table at once. On error the
// previous table stays in place.
func (n *Normaliser) ReplaceCustomSlang(entries map[string]string) error {
	custom := make(map[string]string, len(entries))
	for surface, canonical := range entries {
		key, value, err := cleanEntry(surface, canonical)
		if err != nil {
			return err
		}
		custom[key] = value
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	merged := merge(builtinSlang, custom)
	if err := n.validate(merged); err != nil {
		return err
	}
	n.custom = custom
	n.merged = merged
	return nil
}

// CustomSlang returns a copy of the custom entries.
func (n *Normaliser) CustomSlang() map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make(map[string]string, len(n.custom))
	for k, v := range n.custom {
		out[k] = v
	}
	return out
}

// Normalise replaces slang tokens with canonical forms and removes
// standalone fillers and filler phrases. Numbers and proper nouns pass
// through unchanged, as does the whitespace between kept words; only
// leading and trailing whitespace is trimmed.
// Normalise(Normalise(x)) == Normalise(x) for every x.
func (n *Normaliser) Normalise(text string) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var kept []word
	for _, f := range scanFields(text) {
		t := splitToken(f.text)
		lower := strings.ToLower(t.core)
		canonical, ok := n.merged[lower]
		if t.core == "" || !ok {
			kept = n.push(kept, word{sep: f.sep, text: f.text, core: lower})
			continue
		}

		parts := strings.Fields(matchCase(t.core, canonical))
		for i, part := range parts {
			w := word{sep: " ", text: part, core: strings.ToLower(splitToken(part).core)}
			if i == 0 {
				w.sep = f.sep
				w.text = t.prefix + w.text
			}
			if i == len(parts)-1 {
				w.text += t.suffix
			}
			kept = n.push(kept, w)
		}
	}

	var b strings.Builder
	for i, w := range kept {
		if i > 0 {
			b.WriteString(w.sep)
		}
		b.WriteString(w.text)
	}
	return b.String()
}

// word is an output token with the whitespace that preceded it.
type word struct {
	sep  string
	text string
	core string
}

// push appends w and then drops any filler phrase the kept words now end
// with. Checking against kept words, not the input, keeps a second pass
// from finding phrases joined up by an earlier removal.
func (n *Normaliser) push(kept []word, w word) []word {
	kept = append(kept, w)
	for size := min(n.maxFiller, len(kept)); size > 0; size-- {
		tail := kept[len(kept)-size:]
		cores := make([]string, size)
		for i, t := range tail {
			cores[i] = t.core
		}
		if _, ok := n.fillers[strings.Join(cores, " ")]; ok {
			return kept[:len(kept)-size]
		}
	}
	return kept
}

type field struct {
	sep  string
	text string
}

// scanFields splits text like strings.Fields but keeps the whitespace run
// before each field.
func scanFields(text string) []field {
	var out []field
	i := 0
	for i < len(text) {
		start := i
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		wordStart := i
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if wordStart < i {
			out = append(out, field{sep: text[start:wordStart], text: text[wordStart:i]})
		}
	}
	return out
}

// validate rejects tables where a canonical word is itself a surface or
// a filler. Must be called with n.mu held.
func (n *Normaliser) validate(table map[string]string) error {
	surfaces := make([]string, 0, len(table))
	for s := range table {
		surfaces = append(surfaces, s)
	}
	sort.Strings(surfaces)

	for _, s := range surfaces {
		for _, w := range strings.Fields(table[s]) {
			core := strings.ToLower(splitToken(w).core)
			if _, ok := table[core]; ok {
				return fmt.Errorf("%w: slang %q maps to %q which is itself slang", domain.ErrInvalidInput, s, table[s])
			}
			if _, ok := n.fillers[core]; ok {
				return fmt.Errorf("%w: slang %q maps to filler %q", domain.ErrInvalidInput, s, core)
			}
		}
	}
	return nil
}

func cleanEntry(surface, canonical string) (string, string, error) {
	key := strings.ToLower(strings.TrimSpace(surface))
	value := strings.Join(strings.Fields(canonical), " ")
	switch {
	case key == "" || value == "":
		return "", "", fmt.Errorf("%w: slang entry needs both surface and canonical form", domain.ErrInvalidInput)
	case strings.ContainsFunc(key, unicode.IsSpace):
		return "", "", fmt.Errorf("%w: slang surface %q must be a single word", domain.ErrInvalidInput, surface)
	case splitToken(key).core != key:
		return "", "", fmt.Errorf("%w: slang surface %q must not carry punctuation", domain.ErrInvalidInput, surface)
	}
	return key, value, nil
}

func merge(base, custom map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(custom))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range custom {
		out[k] = v
	}
	return out
}

// token is a whitespace-delimited word split around its letters and digits.
type token struct {
	prefix string
	core   string
	suffix string
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func splitToken(s string) token {
	start := strings.IndexFunc(s, isWordRune)
	if start < 0 {
		return token{prefix: s}
	}
	end := strings.LastIndexFunc(s, isWordRune)
	_, size := utf8.DecodeRuneInString(s[end:])
	end += size
	return token{prefix: s[:start], core: s[start:end], suffix: s[end:]}
}

// matchCase capitalises replacement when original starts upper case.
func matchCase(original, replacement string) string {
	first, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}
