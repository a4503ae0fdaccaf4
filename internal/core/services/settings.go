package services

import (
	"fmt"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driven"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultUsername = "generate.default_username"
	keyOutputDir       = "generate.output_dir"
	keyHistoryEnabled  = "history.enabled"
)

// SettingsService manages application settings on top of a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, layering stored values over defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if username := s.configStore.GetString(keyDefaultUsername); username != "" {
		settings.DefaultUsername = username
	}
	if dir := s.configStore.GetString(keyOutputDir); dir != "" {
		settings.OutputDir = dir
	}
	if _, ok := s.configStore.Get(keyHistoryEnabled); ok {
		settings.HistoryEnabled = s.configStore.GetBool(keyHistoryEnabled)
	}

	return &settings, nil
}

// Save persists the given settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(keyDefaultUsername, settings.DefaultUsername); err != nil {
		return fmt.Errorf("save default username: %w", err)
	}
	if err := s.configStore.Set(keyOutputDir, settings.OutputDir); err != nil {
		return fmt.Errorf("save output dir: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.HistoryEnabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	return nil
}
