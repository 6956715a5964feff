package driven

// ConfigStore holds flat, dot-keyed settings such as "anki.port".
//
// Typed getters return the zero value when a key is absent or holds a value
// of another type; use Get to tell the two apart.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt accepts whole numbers stored as int, int64 or float64.
	GetInt(key string) int

	// GetFloat accepts any stored number.
	GetFloat(key string) float64

	GetBool(key string) bool

	// GetStringSlice returns nil unless the value is a list of strings.
	GetStringSlice(key string) []string

	// Set stores value under key and persists it.
	Set(key string, value any) error

	// Save writes every value back to storage.
	Save() error

	// Load replaces the in-memory values with what is in storage.
	Load() error

	// Path reports where the values are stored.
	Path() string
}
