package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       10 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanScanInterval:      1 * time.Hour,
		OrphanThreshold:         5 * time.Minute,
	}
}

// fakeRegistry satisfies RunRegistry for worker-only tests.
type fakeRegistry struct {
	mu           sync.Mutex
	registered   []string
	unregistered []string
}

func (f *fakeRegistry) RegisterRun(runID string, _ context.CancelFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, runID)
}

func (f *fakeRegistry) UnregisterRun(runID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistered = append(f.unregistered, runID)
}

func (f *fakeRegistry) snapshot() (registered, unregistered []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.registered...), append([]string{}, f.unregistered...)
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRunID)
	assert.Equal(t, 0, h.RunsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "run-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "run-abc", h.CurrentRunID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRunID)
}

func TestWorkerProcessesRunAndTracksRegistry(t *testing.T) {
	store := &fakeRunStore{}
	run := pendingRun()
	store.enqueue(run)
	executor := &fakeExecutor{}
	registry := &fakeRegistry{}

	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, registry)
	w.Start(context.Background())
	defer w.Stop()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "run executed", func() bool {
		return len(executor.executedRuns()) == 1
	})
	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "worker back to idle", func() bool {
		return w.Health().Status == "idle" && w.Health().RunsProcessed == 1
	})

	assert.Equal(t, []string{run.ID}, executor.executedRuns())
	registered, unregistered := registry.snapshot()
	assert.Equal(t, []string{run.ID}, registered)
	assert.Equal(t, []string{run.ID}, unregistered)
}

func TestWorkerHeartbeatsWhileExecuting(t *testing.T) {
	store := &fakeRunStore{}
	store.enqueue(pendingRun())
	executor := &fakeExecutor{block: make(chan struct{})}
	cfg := testQueueConfig()
	cfg.HeartbeatInterval = 10 * time.Millisecond

	w := NewWorker("worker-1", "pod-1", store, cfg, executor, &fakeRegistry{})
	w.Start(context.Background())

	awaitCondition(t, 5*time.Second, 5*time.Millisecond, "heartbeats recorded", func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.heartbeats >= 2
	})

	close(executor.block)
	w.Stop()
}

func TestWorkerStopTwiceDoesNotPanic(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", &fakeRunStore{}, testQueueConfig(), &fakeExecutor{}, &fakeRegistry{})
	w.Start(context.Background())

	w.Stop()
	require.NotPanics(t, w.Stop)
}
