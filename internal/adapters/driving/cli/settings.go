package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

// Settable keys, as shown to the user.
const (
	settingUsername = "default-username"
	settingOutput   = "output-dir"
	settingHistory  = "history"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted defaults",
	Long: `View and change persisted defaults used by the generate command.

Available settings:
  default-username   SQL login used when --username is omitted
  output-dir         directory generated scripts are written to
                     (empty: next to the CSV)
  history            whether generation runs are recorded (true/false)`,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadSettings returns current settings, falling back to defaults when
// the settings service is unavailable or failing.
func loadSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("loading settings: %v", err)
		return domain.DefaultSettings()
	}
	return *settings
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Printf("%s = %q\n", settingUsername, settings.DefaultUsername)
	cmd.Printf("%s = %q\n", settingOutput, settings.OutputDir)
	cmd.Printf("%s = %t\n", settingHistory, settings.HistoryEnabled)
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	switch args[0] {
	case settingUsername:
		cmd.Println(settings.DefaultUsername)
	case settingOutput:
		cmd.Println(settings.OutputDir)
	case settingHistory:
		cmd.Println(settings.HistoryEnabled)
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case settingUsername:
		settings.DefaultUsername = value
	case settingOutput:
		settings.OutputDir = value
	case settingHistory:
		switch value {
		case "true":
			settings.HistoryEnabled = true
		case "false":
			settings.HistoryEnabled = false
		default:
			return fmt.Errorf("%s must be true or false, got %q", settingHistory, value)
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Printf("%s set\n", key)
	return nil
}
