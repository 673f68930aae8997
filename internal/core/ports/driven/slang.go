package driven

// SlangDictionary loads user-defined slang entries (surface form to
// canonical form) from persistent storage.
type SlangDictionary interface {
	// Load reads the full dictionary. A missing dictionary is empty, not an error.
	Load() (map[string]string, error)

	// Path returns the dictionary location.
	Path() string
}
