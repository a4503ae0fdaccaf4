package history

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driven/storage/memory"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/services"
)

func newTestView(t *testing.T, runs ...domain.Run) *View {
	t.Helper()
	store := memory.NewRunStore()
	for _, run := range runs {
		require.NoError(t, store.Save(context.Background(), run))
	}
	v := NewView(nil, services.NewHistoryService(store))
	v.SetDimensions(80, 24)
	return v
}

func testRun(id string, targets int) domain.Run {
	return domain.Run{
		ID:          id,
		GeneratedAt: time.Now(),
		CSVPath:     "/data/targets.csv",
		ScriptPath:  "/data/deploy.sql",
		OutputPath:  "/data/run_all_20260103_213522.sql",
		TargetCount: targets,
	}
}

func TestView_Init_LoadsRuns(t *testing.T) {
	v := newTestView(t, testRun("r1", 3))

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.RunsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Runs, 1)

	v, _ = v.Update(loaded)
	assert.Len(t, v.Runs(), 1)
}

func TestView_Update_Navigation(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(messages.RunsLoaded{Runs: []domain.Run{
		testRun("r1", 1), testRun("r2", 2),
	}})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.Selected())

	// Does not run past the end.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.Selected())
}

func TestView_Update_EscReturnsToMenu(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_View_Empty(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(messages.RunsLoaded{})

	assert.Contains(t, v.View(), "No runs recorded yet.")
}

func TestView_View_ShowsSelectedDetail(t *testing.T) {
	v := newTestView(t)
	v, _ = v.Update(messages.RunsLoaded{Runs: []domain.Run{testRun("r1", 5)}})

	out := v.View()
	assert.Contains(t, out, "5 targets")
	assert.Contains(t, out, "CSV:    /data/targets.csv")
	assert.Contains(t, out, "Output: /data/run_all_20260103_213522.sql")
}
