package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Long: `Lists recent generation runs, newest first. Each entry shows when the
script was generated, from which CSV, and where it was written.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, runs)
	}
	return outputHistoryTable(cmd, runs)
}

func outputHistoryJSON(cmd *cobra.Command, runs []domain.Run) error {
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, runs []domain.Run) error {
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Println("Recent runs:")
	cmd.Println()
	for i := range runs {
		cmd.Printf("  [%d] %s  %d targets\n",
			i+1, runs[i].GeneratedAt.Local().Format("2006-01-02 15:04:05"), runs[i].TargetCount)
		cmd.Printf("      CSV:    %s\n", runs[i].CSVPath)
		cmd.Printf("      Script: %s\n", runs[i].ScriptPath)
		if runs[i].OutputPath != "" {
			cmd.Printf("      Output: %s\n", runs[i].OutputPath)
		} else {
			cmd.Printf("      Output: (stdout)\n")
		}
		cmd.Println()
	}

	return nil
}
