package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

var (
	generateUsername string
	generatePassword string
	generateOutput   string
	generateStdout   bool
	generateWatch    bool
	generateNoAsk    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <targets.csv> <script.sql>",
	Short: "Generate a SQLCMD fan-out script",
	Long: `Reads (server, database) pairs from the CSV file and generates a
SQLCMD script that runs the given SQL script against every pair.

The CSV needs a header row with "server" and "database" columns.
The generated file is written next to the CSV (or to --output) as
run_all_<timestamp>.sql.

The password is prompted for without echo when --password is not
given; pass --no-input to skip the prompt. Credentials end up in the
generated file as plain text - that is how SQLCMD variable binding
works, so treat the output accordingly.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateUsername, "username", "u", "", "SQL login name (default from settings)")
	generateCmd.Flags().StringVarP(&generatePassword, "password", "p", "", "SQL login password (prompted if omitted)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (default: the CSV's directory)")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the script instead of writing a file")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "stay running and regenerate when inputs change")
	generateCmd.Flags().BoolVar(&generateNoAsk, "no-input", false, "never prompt; use empty credentials if not given")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}

	csvPath, scriptPath := args[0], args[1]

	settings := loadSettings()

	username := generateUsername
	if username == "" {
		username = settings.DefaultUsername
	}

	password := generatePassword
	if password == "" && !generateNoAsk {
		cmd.Printf("Password for %s (enter to leave empty): ", displayUser(username))
		password = readPassword()
		cmd.Println()
	}

	if username == "" {
		cmd.PrintErrln("warning: username is empty; the generated script binds an empty USERNAME")
	}
	if password == "" {
		cmd.PrintErrln("warning: password is empty; the generated script binds an empty PASSWORD")
	}

	outDir := generateOutput
	if outDir == "" {
		outDir = settings.OutputDir
	}

	gen := generation{
		csvPath:    csvPath,
		scriptPath: scriptPath,
		username:   username,
		password:   password,
		outDir:     outDir,
		toStdout:   generateStdout,
		history:    settings.HistoryEnabled,
	}

	if err := gen.run(cmd); err != nil {
		return err
	}

	if generateWatch {
		return watchAndRegenerate(cmd, gen)
	}
	return nil
}

// generation bundles the resolved inputs of one generate invocation so
// watch mode can re-run it.
type generation struct {
	csvPath    string
	scriptPath string
	username   string
	password   string
	outDir     string
	toStdout   bool
	history    bool
}

func (g generation) run(cmd *cobra.Command) error {
	f, err := os.Open(g.csvPath)
	if err != nil {
		return fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	targets, err := generatorService.ReadTargets(f)
	if err != nil {
		if errors.Is(err, domain.ErrNoTargets) {
			return fmt.Errorf("%s: no rows to process", g.csvPath)
		}
		return fmt.Errorf("reading %s: %w", g.csvPath, err)
	}

	now := time.Now()
	script, err := generatorService.Generate(domain.GenerationRequest{
		Targets:    targets,
		ScriptPath: g.scriptPath,
		Username:   g.username,
		Password:   g.password,
	}, now)
	if err != nil {
		return fmt.Errorf("generating script: %w", err)
	}

	if g.toStdout {
		cmd.Print(script.Content)
		g.record(cmd, now, "", len(targets))
		return nil
	}

	dir := g.outDir
	if dir == "" {
		dir = filepath.Dir(g.csvPath)
	}
	outPath := filepath.Join(dir, script.Filename)

	// 0600: the file embeds credentials in plain text.
	if err := os.WriteFile(outPath, []byte(script.Content), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	cmd.Printf("Generated %s (%s)\n", outPath, targetCountLabel(len(targets)))
	g.record(cmd, now, outPath, len(targets))
	return nil
}

// record stores the run in history; failures are reported but never
// fail the generation itself.
func (g generation) record(cmd *cobra.Command, generatedAt time.Time, outputPath string, targetCount int) {
	if !g.history || historyService == nil {
		return
	}

	_, err := historyService.Record(cmd.Context(), domain.Run{
		GeneratedAt: generatedAt,
		CSVPath:     g.csvPath,
		ScriptPath:  g.scriptPath,
		OutputPath:  outputPath,
		TargetCount: targetCount,
	})
	if err != nil {
		cmd.PrintErrf("warning: recording history: %v\n", err)
	}
}

// watchAndRegenerate blocks, re-running the generation whenever the
// CSV or the SQL script changes. Bursty editor events are debounced.
func watchAndRegenerate(cmd *cobra.Command, gen generation) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors replace files on save,
	// which drops direct file watches.
	watched := map[string]bool{
		absPath(gen.csvPath):    true,
		absPath(gen.scriptPath): true,
	}
	for dir := range map[string]bool{
		filepath.Dir(absPath(gen.csvPath)):    true,
		filepath.Dir(absPath(gen.scriptPath)): true,
	} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Section("watch")
	cmd.Println("Watching for changes; press Ctrl+C to stop.")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[absPath(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("debounced event for %s", event.Name)
				continue
			}

			logger.Info("change detected in %s", event.Name)
			if err := gen.run(cmd); err != nil {
				// Keep watching: a half-saved CSV should not kill
				// the session.
				cmd.PrintErrf("regenerate failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func displayUser(username string) string {
	if username == "" {
		return "(no username)"
	}
	return username
}

func targetCountLabel(n int) string {
	if n == 1 {
		return "1 target"
	}
	return fmt.Sprintf("%d targets", n)
}
