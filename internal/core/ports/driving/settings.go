package driving

import "github.com/custodia-labs/ankiform/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the defaults overlaid with every stored value.
	// Returns an error wrapping domain.ErrInvalidInput if the result is unusable.
	Get() (*domain.Settings, error)

	// Set parses value for key and persists it.
	Set(key, value string) error

	// Keys returns every recognised configuration key.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns where settings are stored.
	Path() string
}
