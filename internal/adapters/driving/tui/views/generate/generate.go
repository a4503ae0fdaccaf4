// Package generate provides the script generation form view for the TUI.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/messages"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/tui/styles"
	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
)

// Field indices for focus cycling.
const (
	fieldCSVPath = iota
	fieldScriptPath
	fieldUsername
	fieldPassword
	fieldCount
)

// View is the script generation form view.
type View struct {
	styles           *styles.Styles
	generatorService driving.GeneratorService
	historyService   driving.HistoryService
	settingsService  driving.SettingsService

	// Form inputs in focus order.
	inputs  []textinput.Model
	focused int

	// outputDir overrides the CSV directory when set via settings.
	outputDir string

	// Result state from the last generation.
	outputPath  string
	targetCount int
	err         error
	generating  bool

	width  int
	height int
	ready  bool
}

// NewView creates a new generate view.
func NewView(
	s *styles.Styles,
	generator driving.GeneratorService,
	history driving.HistoryService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	inputs := make([]textinput.Model, fieldCount)

	csvInput := textinput.New()
	csvInput.Placeholder = "Path to CSV with server,database columns"
	csvInput.CharLimit = 512
	csvInput.Width = 60
	inputs[fieldCSVPath] = csvInput

	scriptInput := textinput.New()
	scriptInput.Placeholder = "Path to the .sql script to run on each target"
	scriptInput.CharLimit = 512
	scriptInput.Width = 60
	inputs[fieldScriptPath] = scriptInput

	usernameInput := textinput.New()
	usernameInput.Placeholder = "SQL username (optional)"
	usernameInput.CharLimit = 128
	usernameInput.Width = 60
	inputs[fieldUsername] = usernameInput

	passwordInput := textinput.New()
	passwordInput.Placeholder = "SQL password (optional)"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.CharLimit = 128
	passwordInput.Width = 60
	inputs[fieldPassword] = passwordInput

	inputs[fieldCSVPath].Focus()

	return &View{
		styles:           s,
		generatorService: generator,
		historyService:   history,
		settingsService:  settings,
		inputs:           inputs,
		focused:          fieldCSVPath,
		width:            80,
		height:           24,
	}
}

// Init initialises the view and loads settings defaults.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads settings for form defaults.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			defaults := domain.DefaultSettings()
			return messages.SettingsLoaded{Settings: &defaults}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Reset clears result state so the form can be reused.
func (v *View) Reset() {
	v.outputPath = ""
	v.targetCount = 0
	v.err = nil
	v.generating = false
	v.inputs[fieldPassword].SetValue("")
	v.setFocus(fieldCSVPath)
}

// Update handles messages for the generate view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil {
			if v.inputs[fieldUsername].Value() == "" {
				v.inputs[fieldUsername].SetValue(msg.Settings.DefaultUsername)
			}
			v.outputDir = msg.Settings.OutputDir
		}
		return v, nil

	case messages.GenerationCompleted:
		v.generating = false
		v.err = msg.Err
		if msg.Err == nil {
			v.outputPath = msg.OutputPath
			v.targetCount = msg.TargetCount
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "tab":
		v.setFocus((v.focused + 1) % fieldCount)
		return v, nil

	case "shift+tab":
		v.setFocus((v.focused + fieldCount - 1) % fieldCount)
		return v, nil

	case "enter":
		// Enter on the last field submits, otherwise advances.
		if v.focused == fieldPassword {
			return v.submit()
		}
		v.setFocus(v.focused + 1)
		return v, nil

	case "ctrl+s":
		return v.submit()
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

func (v *View) setFocus(index int) {
	v.focused = index
	for i := range v.inputs {
		if i == index {
			v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
}

func (v *View) submit() (*View, tea.Cmd) {
	if v.generating {
		return v, nil
	}

	csvPath := strings.TrimSpace(v.inputs[fieldCSVPath].Value())
	scriptPath := strings.TrimSpace(v.inputs[fieldScriptPath].Value())
	if csvPath == "" || scriptPath == "" {
		v.err = fmt.Errorf("CSV path and script path are required")
		return v, nil
	}

	v.generating = true
	v.err = nil
	v.outputPath = ""

	username := strings.TrimSpace(v.inputs[fieldUsername].Value())
	password := v.inputs[fieldPassword].Value()

	return v, v.generateCmd(csvPath, scriptPath, username, password)
}

// generateCmd runs the generation off the update loop.
func (v *View) generateCmd(csvPath, scriptPath, username, password string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(csvPath)
		if err != nil {
			return messages.GenerationCompleted{Err: fmt.Errorf("opening CSV: %w", err)}
		}
		defer func() { _ = file.Close() }()

		targets, err := v.generatorService.ReadTargets(file)
		if err != nil {
			return messages.GenerationCompleted{Err: err}
		}

		script, err := v.generatorService.Generate(domain.GenerationRequest{
			Targets:    targets,
			ScriptPath: scriptPath,
			Username:   username,
			Password:   password,
		}, time.Now())
		if err != nil {
			return messages.GenerationCompleted{Err: err}
		}

		outDir := v.outputDir
		if outDir == "" {
			outDir = filepath.Dir(csvPath)
		}
		outPath := filepath.Join(outDir, script.Filename)

		// Generated scripts embed credentials, keep them private.
		if err := os.WriteFile(outPath, []byte(script.Content), 0600); err != nil {
			return messages.GenerationCompleted{Err: fmt.Errorf("writing script: %w", err)}
		}

		if v.historyService != nil {
			_, _ = v.historyService.Record(context.Background(), domain.Run{
				GeneratedAt: time.Now(),
				CSVPath:     csvPath,
				ScriptPath:  scriptPath,
				OutputPath:  outPath,
				TargetCount: len(targets),
			})
		}

		return messages.GenerationCompleted{
			OutputPath:  outPath,
			TargetCount: len(targets),
		}
	}
}

// View renders the generation form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Generate Script"))
	b.WriteString("\n\n")

	labels := []string{"CSV file", "SQL script", "Username", "Password"}
	for i, input := range v.inputs {
		label := labels[i]
		if i == v.focused {
			b.WriteString(v.styles.Subtitle.Render("> " + label))
		} else {
			b.WriteString(v.styles.Muted.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	switch {
	case v.generating:
		b.WriteString(v.styles.Warning.Render("Generating..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.outputPath != "":
		label := fmt.Sprintf("%d targets", v.targetCount)
		if v.targetCount == 1 {
			label = "1 target"
		}
		b.WriteString(v.styles.Success.Render(
			fmt.Sprintf("Generated %s (%s)", v.outputPath, label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[Tab] Next field  [Enter] Submit  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// OutputPath returns the path of the last generated script.
func (v *View) OutputPath() string {
	return v.outputPath
}
