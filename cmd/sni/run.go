package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/design4music/sni-platform-sub000/pkg/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one pipeline run in-process",
	Long: `Selects unassigned titles and drives them through the map, reduce,
merge, and persist phases once, then exits. The exit code reports the
outcome:

  0  run completed
  2  store failure
  3  LLM endpoint failure
  4  configuration failure
  5  invariant violation
  6  run cancelled

The first interrupt cancels the run gracefully and records it as
cancelled; a second interrupt exits immediately.`,
	Args: cobra.NoArgs,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx, stop := interruptContext(cmd.Context())
	defer stop()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fail(models.ErrorCategoryConfig, err)
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	recorder, shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer flushTelemetry(shutdownTelemetry)

	runs := services.NewRunService(db.Client)
	orch := buildOrchestrator(cfg, db, recorder)

	run, err := runs.Create(ctx, models.TriggerCLI)
	if err != nil {
		return fail(models.ErrorCategoryStore, err)
	}
	slog.Info("Run created", "run_id", run.ID, "trigger", models.TriggerCLI)

	if err := orch.Execute(ctx, run.ID); err != nil {
		return fail(pipeline.Categorize(err), err)
	}
	return nil
}

// interruptContext cancels the returned context on the first SIGINT or
// SIGTERM so the run winds down and gets recorded as cancelled. A second
// interrupt exits immediately without waiting for the terminal write.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			slog.Info("Interrupt received, cancelling run", "signal", sig)
			cancel()
		case <-ctx.Done():
			signal.Stop(sigCh)
			return
		}

		sig := <-sigCh
		slog.Warn("Second interrupt, exiting immediately", "signal", sig)
		os.Exit(exitCanceled)
	}()

	return ctx, cancel
}
