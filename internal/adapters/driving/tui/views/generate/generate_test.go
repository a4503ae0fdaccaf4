package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driven/storage/memory"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/services"
)

func newTestView(t *testing.T) (*View, *memory.RunStore) {
	t.Helper()
	store := memory.NewRunStore()
	v := NewView(
		nil,
		services.NewGeneratorService(),
		services.NewHistoryService(store),
		nil,
	)
	v.SetDimensions(80, 24)
	return v, store
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestView_Submit_RequiresPaths(t *testing.T) {
	v, _ := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
}

func TestView_Submit_GeneratesFile(t *testing.T) {
	v, store := newTestView(t)
	csvPath := writeCSV(t, "server,database\nSrvA,DB1\nSrvB,DB2\n")

	v.inputs[fieldCSVPath].SetValue(csvPath)
	v.inputs[fieldScriptPath].SetValue(`C:\scripts\deploy.sql`)
	v.inputs[fieldUsername].SetValue("alice")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(messages.GenerationCompleted)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, 2, done.TargetCount)

	// Output lands next to the CSV.
	assert.Equal(t, filepath.Dir(csvPath), filepath.Dir(done.OutputPath))
	content, err := os.ReadFile(done.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), ":CONNECT SrvA")
	assert.Contains(t, string(content), "USE [DB2]")

	// The run was recorded.
	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].TargetCount)

	// Completion message updates the view state.
	v, _ = v.Update(done)
	assert.Equal(t, done.OutputPath, v.OutputPath())
	assert.NoError(t, v.Err())
	assert.Contains(t, v.View(), "(2 targets)")
}

func TestView_Submit_BadCSVReportsError(t *testing.T) {
	v, _ := newTestView(t)
	csvPath := writeCSV(t, "host,db\nSrvA,DB1\n")

	v.inputs[fieldCSVPath].SetValue(csvPath)
	v.inputs[fieldScriptPath].SetValue("deploy.sql")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	done, ok := cmd().(messages.GenerationCompleted)
	require.True(t, ok)
	assert.Error(t, done.Err)
}

func TestView_View_SingularTargetLabel(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(messages.GenerationCompleted{
		OutputPath:  "/data/run_all_20260103_213522.sql",
		TargetCount: 1,
	})

	assert.Contains(t, v.View(), "(1 target)")
}

func TestView_TabCyclesFocus(t *testing.T) {
	v, _ := newTestView(t)

	assert.Equal(t, fieldCSVPath, v.focused)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldScriptPath, v.focused)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldCSVPath, v.focused)
	// Wraps backwards to the last field.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPassword, v.focused)
}

func TestView_Init_DefaultsWithoutSettingsService(t *testing.T) {
	v, _ := newTestView(t)

	cmd := v.Init()
	require.NotNil(t, cmd)

	loaded, ok := cmd().(messages.SettingsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	require.NotNil(t, loaded.Settings)
	assert.True(t, loaded.Settings.HistoryEnabled)
}

func TestView_SettingsLoaded_PrefillsUsername(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(messages.SettingsLoaded{
		Settings: &domain.Settings{DefaultUsername: "svc_deploy", OutputDir: "/tmp/out"},
	})

	assert.Equal(t, "svc_deploy", v.inputs[fieldUsername].Value())
	assert.Equal(t, "/tmp/out", v.outputDir)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v, _ := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}
