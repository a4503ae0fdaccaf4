// Package cli provides the cobra command tree for sqlfan.
//
// Services are injected by main via SetServices before Execute runs;
// commands fail with a clear error when their service is missing.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamill-labs/sqlfan-cli/internal/core/ports/driving"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

// version is the build version, overridden by main at startup.
var version = "dev"

// Injected services. Nil until SetServices is called.
var (
	generatorService driving.GeneratorService
	historyService   driving.HistoryService
	settingsService  driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sqlfan",
	Short: "Generate multi-server SQLCMD fan-out scripts",
	Long: `sqlfan reads (server, database) pairs from a CSV file and generates
a single SQLCMD script that connects to each server in turn, switches
database context, and runs a SQL script of your choosing.

Credentials are bound once via :setvar variables at the top of the
generated script; execution blocks reference the variables only.
sqlfan never executes anything itself - it is a pure generator.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the core services used by the commands.
func SetServices(gen driving.GeneratorService, hist driving.HistoryService, set driving.SettingsService) {
	generatorService = gen
	historyService = hist
	settingsService = set
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
