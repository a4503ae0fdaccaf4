// Package history provides the generation history view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/keymap"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/styles"
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// defaultLimit is how many runs the view fetches.
const defaultLimit = 20

// View is the generation history view.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService
	keys           *keymap.KeyMap

	runs     []domain.Run
	selected int
	err      error
	loading  bool

	width  int
	height int
	ready  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		historyService: history,
		keys:           keymap.DefaultKeyMap(),
		width:          80,
		height:         24,
	}
}

// Init initialises the view and loads the run history.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadRuns()
}

// loadRuns returns a command that fetches recent runs.
func (v *View) loadRuns() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.RunsLoaded{Err: fmt.Errorf("history service not available")}
		}
		runs, err := v.historyService.List(context.Background(), defaultLimit)
		return messages.RunsLoaded{Runs: runs, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.RunsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.runs = msg.Runs
			v.err = nil
			if v.selected >= len(v.runs) {
				v.selected = 0
			}
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.runs)-1 {
				v.selected++
			}
			return v, nil

		case msg.String() == "r":
			v.loading = true
			return v, v.loadRuns()

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.runs) == 0:
		b.WriteString(v.styles.Muted.Render("No runs recorded yet."))
		b.WriteString("\n")
	default:
		for i, run := range v.runs {
			cursor := "  "
			line := fmt.Sprintf("%s  %d targets", run.GeneratedAt.Format("2006-01-02 15:04:05"), run.TargetCount)
			if i == v.selected {
				cursor = "> "
				b.WriteString(cursor + v.styles.Selected.Render(line))
			} else {
				b.WriteString(cursor + v.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}

		// Detail for the selected run.
		run := v.runs[v.selected]
		output := run.OutputPath
		if output == "" {
			output = "(stdout)"
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("CSV:    " + run.CSVPath))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Script: " + run.ScriptPath))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Output: " + output))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [r] Refresh  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Runs returns the loaded runs.
func (v *View) Runs() []domain.Run {
	return v.runs
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
