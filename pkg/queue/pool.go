package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/design4music/sni-platform-sub000/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the orphan scanner and
// the optional run scheduler.
type WorkerPool struct {
	podID    string
	runs     RunStore
	config   *config.QueueConfig
	executor RunExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Run cancel registry: run_id → cancel function
	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, runs RunStore, cfg *config.QueueConfig, executor RunExecutor) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		runs:       runs,
		config:     cfg,
		executor:   executor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines, the orphan scanner, and the scheduler
// when schedule_interval is set. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.runs, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScanner(ctx)
	}()

	if p.config.ScheduleInterval > 0 {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.runScheduler(ctx)
		}()
		slog.Info("Run scheduler enabled", "interval", p.config.ScheduleInterval)
	}

	slog.Info("Worker pool started")
	return nil
}

// Shutdown signals all workers to stop and waits for active runs to finish
// or ctx to expire. An abandoned run stops heartbeating when the process
// exits, so the orphan scanner on a surviving replica reclaims it.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeRunIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active runs to complete",
			"count", len(active),
			"run_ids", active)
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	for _, worker := range p.workers {
		worker.signalStop()
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.wait()
		}
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
		return nil
	case <-ctx.Done():
		slog.Warn("Shutdown deadline exceeded, abandoning active runs",
			"run_ids", p.activeRunIDs())
		return ctx.Err()
	}
}

// RegisterRun stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterRun(runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRun(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun triggers context cancellation for a run executing on this pod.
// Returns true if the run was found and cancelled here.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[runID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health(ctx context.Context) *PoolHealth {
	queueDepth, errQ := p.runs.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if the queue cannot be read, the pod
	// cannot claim work.
	dbHealthy := errQ == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	orphansRecovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       p.activeRunCount(),
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// activeRunIDs returns IDs of currently processing runs (for logging).
func (p *WorkerPool) activeRunIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	runs := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		runs = append(runs, id)
	}
	return runs
}

func (p *WorkerPool) activeRunCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.activeRuns)
}
