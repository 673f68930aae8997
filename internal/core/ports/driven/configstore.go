package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("llm.provider"). Implementations handle
// persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Set stores a configuration value. The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
