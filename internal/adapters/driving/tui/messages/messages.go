// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewGenerate is the script generation form.
	ViewGenerate
	// ViewHistory lists previous generation runs.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewGenerate:
		return "generate"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// GenerationCompleted carries the outcome of a generation run.
type GenerationCompleted struct {
	OutputPath  string
	TargetCount int
	Err         error
}

// RunsLoaded carries the generation history from the service.
type RunsLoaded struct {
	Runs []domain.Run
	Err  error
}

// SettingsLoaded carries application settings from the service.
type SettingsLoaded struct {
	Settings *domain.Settings
	Err      error
}
