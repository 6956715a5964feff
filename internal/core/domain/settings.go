package domain

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 8765
	DefaultTimeout    = 10 * time.Second
	DefaultAPIVersion = 6
	DefaultQuery      = "deck:English::Listening"
	DefaultField      = "Text"
	DefaultFormatter  = "listening"
)

// AnkiSettings configures the connection to the note service.
type AnkiSettings struct {
	// Host is the AnkiConnect host (default: localhost).
	Host string

	// Port is the AnkiConnect port (default: 8765).
	Port int

	// Timeout bounds each request (default: 10s).
	Timeout time.Duration

	// APIKey is sent as "key" when AnkiConnect has apiKey set.
	APIKey string

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64
}

// URL returns the AnkiConnect endpoint.
func (a AnkiSettings) URL() string {
	return fmt.Sprintf("http://%s:%d", a.Host, a.Port)
}

// ReformSettings holds the defaults for a reform run.
type ReformSettings struct {
	// Query selects the notes (default: deck:English::Listening).
	Query string

	// Field is the field to format (default: Text).
	Field string

	// Formatters is the ordered list of formatter names to apply.
	Formatters []string
}

// HistorySettings configures the run journal.
type HistorySettings struct {
	// Enabled turns recording and restore on.
	Enabled bool

	// DataDir holds the history database. Empty means ~/.ankiform/data.
	DataDir string
}

// Settings is the effective configuration.
type Settings struct {
	Anki    AnkiSettings
	Reform  ReformSettings
	History HistorySettings
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Anki: AnkiSettings{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Timeout: DefaultTimeout,
		},
		Reform: ReformSettings{
			Query:      DefaultQuery,
			Field:      DefaultField,
			Formatters: []string{DefaultFormatter},
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	if s.Anki.Host == "" {
		return fmt.Errorf("%w: anki host is empty", ErrInvalidInput)
	}
	if s.Anki.Port <= 0 || s.Anki.Port > 65535 {
		return fmt.Errorf("%w: anki port %d out of range", ErrInvalidInput, s.Anki.Port)
	}
	if s.Anki.Timeout <= 0 {
		return fmt.Errorf("%w: anki timeout must be positive", ErrInvalidInput)
	}
	if s.Anki.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidInput)
	}
	if s.Reform.Query == "" {
		return fmt.Errorf("%w: reform query is empty", ErrInvalidInput)
	}
	if s.Reform.Field == "" {
		return fmt.Errorf("%w: reform field is empty", ErrInvalidInput)
	}
	if len(s.Reform.Formatters) == 0 {
		return fmt.Errorf("%w: no formatters configured", ErrInvalidInput)
	}
	return nil
}
