package driven

// ConfigStore holds configuration values addressed by dot-notation keys
// such as "classifier.short_line_threshold".
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset or of
	// another type.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when unset or not numeric.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when unset.
	GetBool(key string) bool

	// GetStringSlice returns the value as a string slice, or nil.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Keys returns every set key in sorted order.
	Keys() []string

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns where the configuration lives; empty for in-memory
	// stores.
	Path() string
}
