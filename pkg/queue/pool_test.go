package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// fakeRunStore is an in-memory RunStore for pool and worker tests.
type fakeRunStore struct {
	mu         sync.Mutex
	pending    []*ent.PipelineRun
	created    []string
	heartbeats int
	active     bool
	orphaned   int
}

func (f *fakeRunStore) ClaimNextPending(_ context.Context, _ string) (*ent.PipelineRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) == 0 {
		return nil, nil
	}
	run := f.pending[0]
	f.pending = f.pending[1:]
	return run, nil
}

func (f *fakeRunStore) Heartbeat(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats++
	return nil
}

func (f *fakeRunStore) Create(_ context.Context, trigger string) (*ent.PipelineRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, trigger)
	return &ent.PipelineRun{ID: uuid.New().String()}, nil
}

func (f *fakeRunStore) HasActiveRun(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active, nil
}

func (f *fakeRunStore) RecoverOrphaned(_ context.Context, _ time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.orphaned
	f.orphaned = 0
	return n, nil
}

func (f *fakeRunStore) QueueDepth(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending), nil
}

func (f *fakeRunStore) enqueue(runs ...*ent.PipelineRun) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, runs...)
}

func (f *fakeRunStore) createdTriggers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.created...)
}

// fakeExecutor records executed run ids. When block is non-nil, Execute
// waits for it to close or for the run context to be cancelled.
type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	errs     []error
	block    chan struct{}
}

func (f *fakeExecutor) Execute(ctx context.Context, runID string) error {
	f.mu.Lock()
	f.executed = append(f.executed, runID)
	f.mu.Unlock()

	var err error
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	f.mu.Lock()
	f.errs = append(f.errs, err)
	f.mu.Unlock()
	return err
}

func (f *fakeExecutor) executedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.executed...)
}

func (f *fakeExecutor) lastErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs[len(f.errs)-1]
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func pendingRun() *ent.PipelineRun {
	return &ent.PipelineRun{ID: uuid.New().String()}
}

func TestPoolRegisterAndCancelRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)

	// Cancel should succeed for a registered run
	assert.True(t, pool.CancelRun("run-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for an unknown run
	assert.False(t, pool.CancelRun("unknown"))
}

func TestPoolUnregisterRun(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterRun("run-1", cancel)
	assert.True(t, pool.CancelRun("run-1"))

	pool.UnregisterRun("run-1")
	assert.False(t, pool.CancelRun("run-1"))
}

func TestPoolActiveRunIDs(t *testing.T) {
	pool := &WorkerPool{
		activeRuns: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.activeRunIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterRun("run-a", cancel1)
	pool.RegisterRun("run-b", cancel2)

	ids := pool.activeRunIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "run-a")
	assert.Contains(t, ids, "run-b")
}

func TestPoolShutdownTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.NotPanics(t, func() { _ = pool.Shutdown(context.Background()) })
}

func TestPoolProcessesPendingRuns(t *testing.T) {
	store := &fakeRunStore{}
	run1, run2 := pendingRun(), pendingRun()
	store.enqueue(run1, run2)
	executor := &fakeExecutor{}

	pool := NewWorkerPool("test-pod", store, testQueueConfig(), executor)
	require.NoError(t, pool.Start(context.Background()))
	defer func() { _ = pool.Shutdown(context.Background()) }()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "runs executed", func() bool {
		return len(executor.executedRuns()) == 2
	})

	executed := executor.executedRuns()
	assert.Contains(t, executed, run1.ID)
	assert.Contains(t, executed, run2.ID)
}

func TestPoolCancelRunCancelsExecution(t *testing.T) {
	store := &fakeRunStore{}
	run := pendingRun()
	store.enqueue(run)
	executor := &fakeExecutor{block: make(chan struct{})}

	pool := NewWorkerPool("test-pod", store, testQueueConfig(), executor)
	require.NoError(t, pool.Start(context.Background()))
	defer func() { _ = pool.Shutdown(context.Background()) }()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "run started", func() bool {
		return len(executor.executedRuns()) == 1
	})

	require.True(t, pool.CancelRun(run.ID))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "run cancelled", func() bool {
		return pool.activeRunCount() == 0
	})
	assert.ErrorIs(t, executor.lastErr(), context.Canceled)
}

func TestPoolShutdownWaitsForActiveRun(t *testing.T) {
	store := &fakeRunStore{}
	store.enqueue(pendingRun())
	executor := &fakeExecutor{block: make(chan struct{})}

	pool := NewWorkerPool("test-pod", store, testQueueConfig(), executor)
	require.NoError(t, pool.Start(context.Background()))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "run started", func() bool {
		return len(executor.executedRuns()) == 1
	})

	// Deadline expires while the executor is still blocked.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Shutdown(shutdownCtx), context.DeadlineExceeded)

	// Release the executor; a second shutdown completes cleanly.
	close(executor.block)
	assert.NoError(t, pool.Shutdown(context.Background()))
}

func TestPoolSchedulerEnqueuesWhenIdle(t *testing.T) {
	store := &fakeRunStore{}
	cfg := testQueueConfig()
	cfg.ScheduleInterval = 20 * time.Millisecond

	pool := NewWorkerPool("test-pod", store, cfg, &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer func() { _ = pool.Shutdown(context.Background()) }()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "scheduled run created", func() bool {
		return len(store.createdTriggers()) >= 1
	})
	assert.Equal(t, models.TriggerScheduled, store.createdTriggers()[0])
}

func TestPoolSchedulerSkipsWhenActive(t *testing.T) {
	store := &fakeRunStore{active: true}
	cfg := testQueueConfig()
	cfg.ScheduleInterval = 10 * time.Millisecond

	pool := NewWorkerPool("test-pod", store, cfg, &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer func() { _ = pool.Shutdown(context.Background()) }()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, store.createdTriggers())
}

func TestPoolOrphanScannerUpdatesHealth(t *testing.T) {
	store := &fakeRunStore{orphaned: 3}
	cfg := testQueueConfig()
	cfg.OrphanScanInterval = 20 * time.Millisecond

	pool := NewWorkerPool("test-pod", store, cfg, &fakeExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer func() { _ = pool.Shutdown(context.Background()) }()

	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "orphan scan ran", func() bool {
		return pool.Health(context.Background()).OrphansRecovered == 3
	})
}

func TestPoolHealth(t *testing.T) {
	store := &fakeRunStore{}
	store.enqueue(pendingRun())

	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})
	health := pool.Health(context.Background())

	assert.False(t, health.IsHealthy) // no workers before Start
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, 0, health.TotalWorkers)
}
