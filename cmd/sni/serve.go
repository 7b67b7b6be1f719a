package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/design4music/sni-platform-sub000/pkg/api"
	"github.com/design4music/sni-platform-sub000/pkg/cleanup"
	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/queue"
	"github.com/design4music/sni-platform-sub000/pkg/services"
	"github.com/design4music/sni-platform-sub000/pkg/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the worker pool and operational HTTP API",
	Long: `Starts the run queue worker pool, the orphan scanner, the optional
scheduler, and the operational HTTP API, then blocks until SIGTERM or
SIGINT. Shutdown stops the API first, then drains the active run up to
the graceful shutdown timeout; an abandoned run is reclaimed later by
orphan recovery.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	podID := resolvePodID()

	slog.Info("Starting sni",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", configDir)

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fail(models.ErrorCategoryConfig, err)
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer closeDatabase(db)
	slog.Info("Connected to PostgreSQL database")

	recorder, shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer flushTelemetry(shutdownTelemetry)

	runs := services.NewRunService(db.Client)

	// A pod restarted mid-run left no worker behind its runs; abort them
	// now instead of waiting out the heartbeat threshold.
	if recovered, err := runs.RecoverStartupOrphans(ctx, podID); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
	} else if recovered > 0 {
		slog.Warn("Recovered runs from previous incarnation",
			"count", recovered, "pod_id", podID)
	}

	orch := buildOrchestrator(cfg, db, recorder)

	pool := queue.NewWorkerPool(podID, runs, cfg.Queue, orch)
	if err := pool.Start(ctx); err != nil {
		return fail(models.ErrorCategoryStore, err)
	}

	retention := cleanup.NewService(cfg.Retention, runs)
	retention.Start(ctx)
	defer retention.Stop()

	server := api.NewServer(cfg.API, db, runs, pool)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.ListenAddr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("sni started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"schedule_interval", cfg.Queue.ScheduleInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	// Stop accepting API traffic first so this replica enqueues nothing
	// new while the pool drains.
	httpCtx, httpCancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	poolCtx, poolCancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
	defer poolCancel()
	if err := pool.Shutdown(poolCtx); err != nil {
		slog.Warn("Worker pool shutdown incomplete, abandoned runs will be orphan-recovered",
			"error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
