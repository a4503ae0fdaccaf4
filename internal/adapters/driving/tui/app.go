package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/styles"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/views/generate"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/views/history"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// generateView is the script generation form.
	generateView *generate.View

	// historyView lists previous generation runs.
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		generateView: generate.NewView(s, ports.Generator, ports.History, ports.Settings),
		historyView:  history.NewView(s, ports.History),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("sqlfan - SQLCMD Script Generator"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.generateView.SetDimensions(msg.Width, msg.Height)
		a.historyView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewGenerate:
			a.generateView, cmd = a.generateView.Update(msg)
			a.err = a.generateView.Err()
			return a, cmd

		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewGenerate:
			a.generateView.Reset()
			return a, a.generateView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No special initialisation needed
		}
		return a, nil

	case messages.SettingsLoaded, messages.GenerationCompleted:
		a.generateView, cmd = a.generateView.Update(msg)
		a.err = a.generateView.Err()
		return a, cmd

	case messages.RunsLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
// It renders the current view.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewGenerate:
		return a.generateView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.helpView()
	default:
		return a.menuView.View()
	}
}

// helpView renders the help screen.
func (a *App) helpView() string {
	title := a.styles.Title.Render("Help")
	body := a.styles.Normal.Render(`
Generate   Fill in a CSV of server,database rows and a script path.
           The generated file runs the script on every target under
           SQLCMD mode (Query > SQLCMD Mode in SSMS).

History    Browse previous generation runs.

Keys       j/k or arrows to navigate, Enter to select,
           Tab to move between form fields, Esc to go back,
           q or Ctrl+C to quit.`)
	footer := a.styles.Help.Render("\n\n[Esc] Back")
	return title + body + footer
}

// SetDimensions sets the terminal dimensions for all views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.generateView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}

// Ready reports whether the app has received its initial dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}
