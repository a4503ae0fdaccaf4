package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driven/storage/memory"
	"github.com/datamill-labs/sqlfan-cli/internal/core/services"
)

// setupTestServices wires real services backed by in-memory stores and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldGenerator := generatorService
	oldHistory := historyService
	oldSettings := settingsService

	generatorService = services.NewGeneratorService()
	historyService = services.NewHistoryService(memory.NewRunStore())
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		generatorService = oldGenerator
		historyService = oldHistory
		settingsService = oldSettings
	}
}

// resetGenerateFlags restores the generate flag values between tests,
// since cobra keeps package-level flag variables across Execute calls.
func resetGenerateFlags() {
	generateUsername = ""
	generatePassword = ""
	generateOutput = ""
	generateStdout = false
	generateWatch = false
	generateNoAsk = false
}

// writeTestCSV writes CSV content into a temp dir and returns its path.
func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
