// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/grouproster/internal/api"
	"github.com/taibuivan/grouproster/internal/core/group"
	"github.com/taibuivan/grouproster/internal/platform/constants"
	"github.com/taibuivan/grouproster/internal/platform/metrics"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	// Root context cancelled on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer startupCancel()

	store, err := openStorage(startupCtx, cfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	// ── Metrics ───────────────────────────────────────────────────────────
	recorder, err := metrics.NewRecorder()
	if err != nil {
		return err
	}
	if store.db != nil {
		if err := recorder.RegisterDB(store.db, "groups"); err != nil {
			return err
		}
	}

	// ── Domain Wiring ─────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckDatabase: store.ping}, log)
	service := group.NewService(store.repository, log)

	server := api.NewServer(ctx, cfg, log, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Metrics:    recorder.Handler(),
		Instrument: recorder.Middleware,
		Group:      group.NewHandler(service),
	})

	// ── Graceful Shutdown ─────────────────────────────────────────────────
	workers, workersCtx := errgroup.WithContext(ctx)

	workers.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	workers.Go(func() error {
		<-workersCtx.Done()
		log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	if err := workers.Wait(); err != nil {
		return err
	}

	log.Info("server_stopped_cleanly")
	return nil
}
