// SNI pipeline CLI: turns gate-approved news titles into durable Event
// Families via the LLM map/reduce/merge pipeline. `sni run` executes one
// pipeline run in-process; `sni serve` runs the queue worker pool and the
// operational HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/database"
	"github.com/design4music/sni-platform-sub000/pkg/events"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
	"github.com/design4music/sni-platform-sub000/pkg/services"
	"github.com/design4music/sni-platform-sub000/pkg/telemetry"
)

// Exit codes for pipeline outcomes, one per error category. Generic CLI
// failures (bad flags, unknown commands) exit 1.
const (
	exitStore     = 2
	exitLLM       = 3
	exitConfig    = 4
	exitInvariant = 5
	exitCanceled  = 6
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "sni",
	Short: "Event family pipeline for gate-approved news titles",
	Long: `sni clusters multilingual news titles into durable Event Families.

Each pipeline run selects unassigned titles, clusters them into incidents
with an LLM map stage, classifies the incidents against the theater and
event type vocabularies in a reduce stage, merges the candidates with the
stored Event Families, and persists the survivors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitError pins a specific process exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// fail wraps err with the exit code documented for its category.
func fail(category string, err error) error {
	return &exitError{code: exitCodeFor(category), err: err}
}

func exitCodeFor(category string) int {
	switch category {
	case models.ErrorCategoryStore:
		return exitStore
	case models.ErrorCategoryLLM:
		return exitLLM
	case models.ErrorCategoryConfig:
		return exitConfig
	case models.ErrorCategoryInvariant:
		return exitInvariant
	case models.ErrorCategoryCanceled:
		return exitCanceled
	default:
		return 1
	}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// loadDotEnv loads optional secrets (API keys, DB passwords) from the
// config directory before any component reads the environment.
func loadDotEnv() {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}
}

// openDatabase loads the SNI_DB_* environment configuration and connects,
// running pending migrations. Config errors and connection errors carry
// different exit codes.
func openDatabase(ctx context.Context) (*database.Client, error) {
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fail(models.ErrorCategoryConfig, err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, fail(models.ErrorCategoryStore, err)
	}
	return db, nil
}

func closeDatabase(db *database.Client) {
	if err := db.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}

// initTelemetry installs the meter provider and builds the Recorder facade.
// The returned shutdown func flushes pending exports; it is a no-op when
// telemetry is disabled.
func initTelemetry(ctx context.Context, cfg *config.TelemetryConfig) (*telemetry.Recorder, func(context.Context) error, error) {
	shutdown, err := telemetry.Init(ctx, cfg)
	if err != nil {
		return nil, nil, fail(models.ErrorCategoryConfig, err)
	}
	recorder, err := telemetry.NewRecorder()
	if err != nil {
		return nil, nil, fail(models.ErrorCategoryConfig, err)
	}
	return recorder, shutdown, nil
}

func flushTelemetry(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.Warn("Telemetry shutdown error", "error", err)
	}
}

// buildOrchestrator wires the pipeline stages against the database and the
// configured LLM endpoint. recorder may be nil (metrics disabled).
func buildOrchestrator(cfg *config.Config, db *database.Client, recorder *telemetry.Recorder) *pipeline.Orchestrator {
	titles := services.NewTitleService(db.Client)
	efs := services.NewEventFamilyService(db.Client)
	runs := services.NewRunService(db.Client)

	// A typed-nil recorder must not reach the interface fields; the nil
	// checks downstream compare against the interface value.
	var llmMetrics llm.Metrics
	var phaseMetrics pipeline.PhaseRecorder
	if recorder != nil {
		llmMetrics = recorder
		phaseMetrics = recorder
	}

	maxInflight := cfg.LLM.EffectiveMaxInflight(cfg.Pipeline)
	client := llm.NewHTTPClient(cfg.LLM, int64(maxInflight), llmMetrics)
	retrier := llm.NewRetrier(client, cfg.LLM)
	prompts := prompt.NewBuilder(cfg.Vocab)

	selector := pipeline.NewSelector(titles, cfg.Pipeline)
	mapper := pipeline.NewMapper(retrier, prompts, cfg.Pipeline)
	reducer := pipeline.NewReducer(retrier, prompts, cfg.Pipeline, cfg.Vocab)

	publisher := events.NewPublisher(db.DB())

	return pipeline.NewOrchestrator(selector, mapper, reducer, efs, runs, cfg.Pipeline, publisher, phaseMetrics)
}
