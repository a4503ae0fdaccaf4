package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Generator: &MockGeneratorService{},
		History:   &MockHistoryService{},
		Settings:  &MockSettingsService{},
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	app.Update(messages.ViewChanged{View: messages.ViewHistory})

	assert.Equal(t, messages.ViewHistory, app.CurrentView())
}

func TestApp_Update_ViewChanged_GenerateInits(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewGenerate})

	assert.Equal(t, messages.ViewGenerate, app.CurrentView())
	// Switching to the form triggers a settings load.
	assert.NotNil(t, cmd)
}

func TestApp_Update_EscFromHelp(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	boom := errors.New("boom")
	app.Update(messages.ErrorOccurred{Err: boom})

	assert.Equal(t, boom, app.Err())
}

func TestApp_Update_RunsLoaded(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHistory})

	app.Update(messages.RunsLoaded{Runs: []domain.Run{{ID: "r1", TargetCount: 3}}})

	view := app.View()
	assert.Contains(t, view, "3 targets")
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_Menu(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "sqlfan")
	assert.Contains(t, view, "Generate")
	assert.Contains(t, view, "History")
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "SQLCMD")
}
