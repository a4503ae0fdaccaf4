package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driven/config/file"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driven/storage/sqlite"
	"github.com/datamill-labs/sqlfan-cli/internal/adapters/driving/cli"
	"github.com/datamill-labs/sqlfan-cli/internal/core/services"
	"github.com/datamill-labs/sqlfan-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening run store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing run store: %v", err)
		}
	}()

	cli.SetVersion(version)
	cli.SetServices(
		services.NewGeneratorService(),
		services.NewHistoryService(store.RunStore()),
		services.NewSettingsService(configStore),
	)

	return cli.Execute(ctx)
}
