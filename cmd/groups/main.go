// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command groups is the entry point for the group roster service.
//
// # Subcommands
//
//   - serve: Start the HTTP API with graceful shutdown.
//   - seed: Load groups from a YAML file into the configured store.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from .env and environment variables.
//  3. Open the configured store (PostgreSQL via GORM, or memory).
//  4. Ensure the groups table exists (postgres, ENSURE_SCHEMA=true).
//  5. Run the subcommand.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grouproster/internal/platform/config"
	"github.com/taibuivan/grouproster/internal/platform/constants"
)

func main() {
	root := &cobra.Command{
		Use:           "groups",
		Short:         "Group roster REST service",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newSeedCommand())

	if err := root.Execute(); err != nil {
		slog.Error("command_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// bootstrap builds the logger and loads configuration shared by every subcommand.
func bootstrap() (*config.Config, *slog.Logger, error) {
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		return nil, log, err
	}

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	return cfg, log, nil
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}
