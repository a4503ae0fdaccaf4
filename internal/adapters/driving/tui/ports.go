// Package tui provides an interactive terminal user interface for sqlfan.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Generator parses row sources and assembles scripts.
	Generator driving.GeneratorService

	// History records and lists generation runs. Optional.
	History driving.HistoryService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	generator driving.GeneratorService,
	history driving.HistoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Generator: generator,
		History:   history,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	return nil
}
