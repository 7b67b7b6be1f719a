// Package queue provides the serve-mode worker pool that claims pending
// pipeline runs and drives them through the orchestrator.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/design4music/sni-platform-sub000/ent"
)

// ErrNoRunsAvailable indicates no pending runs are in the queue.
var ErrNoRunsAvailable = errors.New("no runs available")

// RunExecutor processes one claimed run end to end.
//
// The executor owns the run lifecycle after the claim: phase transitions,
// counters, and the terminal status write all happen inside Execute. The
// worker only handles claiming, the cancel registry, and the heartbeat.
// Cancelling the passed context cancels the run.
type RunExecutor interface {
	Execute(ctx context.Context, runID string) error
}

// RunStore is the run persistence surface the pool and its workers use.
// *services.RunService implements it.
type RunStore interface {
	ClaimNextPending(ctx context.Context, podID string) (*ent.PipelineRun, error)
	Heartbeat(ctx context.Context, runID string) error
	Create(ctx context.Context, trigger string) (*ent.PipelineRun, error)
	HasActiveRun(ctx context.Context) (bool, error)
	RecoverOrphaned(ctx context.Context, threshold time.Duration) (int, error)
	QueueDepth(ctx context.Context) (int, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
