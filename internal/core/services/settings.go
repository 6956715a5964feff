package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/ankiform/internal/core/domain"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAnkiHost              = "anki.host"
	KeyAnkiPort              = "anki.port"
	KeyAnkiTimeoutSeconds    = "anki.timeout_seconds"
	KeyAnkiAPIKey            = "anki.api_key"
	KeyAnkiRequestsPerSecond = "anki.requests_per_second"
	KeyReformQuery           = "reform.query"
	KeyReformField           = "reform.field"
	KeyReformFormatters      = "reform.formatters"
	KeyHistoryEnabled        = "history.enabled"
	KeyHistoryDataDir        = "history.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get overlays the stored values on the defaults and validates the result.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := s.load()
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Set parses value according to the key's type and persists it.
// Nothing is stored if the resulting settings would not validate.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	candidate := s.load()
	apply(candidate, key, parsed)
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) load() *domain.Settings {
	d := domain.DefaultSettings()

	return &domain.Settings{
		Anki: domain.AnkiSettings{
			Host:              s.getString(KeyAnkiHost, d.Anki.Host),
			Port:              s.getInt(KeyAnkiPort, d.Anki.Port),
			Timeout:           s.getSeconds(KeyAnkiTimeoutSeconds, d.Anki.Timeout),
			APIKey:            s.getString(KeyAnkiAPIKey, d.Anki.APIKey),
			RequestsPerSecond: s.getFloat(KeyAnkiRequestsPerSecond, d.Anki.RequestsPerSecond),
		},
		Reform: domain.ReformSettings{
			Query:      s.getString(KeyReformQuery, d.Reform.Query),
			Field:      s.getString(KeyReformField, d.Reform.Field),
			Formatters: s.getStringSlice(KeyReformFormatters, d.Reform.Formatters),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(KeyHistoryEnabled, d.History.Enabled),
			DataDir: s.getString(KeyHistoryDataDir, d.History.DataDir),
		},
	}
}

// apply sets the field for key. parsed must come from parseValue.
func apply(settings *domain.Settings, key string, parsed any) {
	switch key {
	case KeyAnkiHost:
		settings.Anki.Host = parsed.(string)
	case KeyAnkiPort:
		settings.Anki.Port = int(parsed.(int64))
	case KeyAnkiTimeoutSeconds:
		settings.Anki.Timeout = time.Duration(parsed.(float64) * float64(time.Second))
	case KeyAnkiAPIKey:
		settings.Anki.APIKey = parsed.(string)
	case KeyAnkiRequestsPerSecond:
		settings.Anki.RequestsPerSecond = parsed.(float64)
	case KeyReformQuery:
		settings.Reform.Query = parsed.(string)
	case KeyReformField:
		settings.Reform.Field = parsed.(string)
	case KeyReformFormatters:
		settings.Reform.Formatters = parsed.([]string)
	case KeyHistoryEnabled:
		settings.History.Enabled = parsed.(bool)
	case KeyHistoryDataDir:
		settings.History.DataDir = parsed.(string)
	}
}

// Keys returns every recognised configuration key, in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyAnkiHost,
		KeyAnkiPort,
		KeyAnkiTimeoutSeconds,
		KeyAnkiAPIKey,
		KeyAnkiRequestsPerSecond,
		KeyReformQuery,
		KeyReformField,
		KeyReformFormatters,
		KeyHistoryEnabled,
		KeyHistoryDataDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// parseValue converts a command-line string into the type stored for key.
func parseValue(key, raw string) (any, error) {
	switch key {
	case KeyAnkiPort:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		return int64(n), nil
	case KeyAnkiTimeoutSeconds, KeyAnkiRequestsPerSecond:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		return f, nil
	case KeyHistoryEnabled:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case KeyReformFormatters:
		names := []string{}
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
		return names, nil
	case KeyAnkiHost, KeyAnkiAPIKey, KeyReformQuery, KeyReformField, KeyHistoryDataDir:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
}

// Helper methods for reading config with defaults. A key that is present
// overrides the default even when its value is the zero value.

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetFloat(key) * float64(time.Second))
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}
