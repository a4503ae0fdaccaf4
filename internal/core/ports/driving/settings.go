package driving

import "github.com/datamill-labs/sqlfan-cli/internal/core/domain"

// SettingsService manages persisted user preferences.
type SettingsService interface {
	// Get retrieves current settings, with defaults filled in for
	// anything not stored.
	Get() (*domain.Settings, error)

	// Save persists the given settings.
	Save(settings *domain.Settings) error
}
