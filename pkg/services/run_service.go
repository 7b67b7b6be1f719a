package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/google/uuid"
)

// createRunTimeout bounds the enqueue write when the caller's context (an
// HTTP request, typically) may be cancelled mid-flight.
const createRunTimeout = 5 * time.Second

// statuses a live worker moves a run through; pending is excluded because
// an unclaimed run has no worker to lose.
var workingStatuses = []pipelinerun.Status{
	pipelinerun.StatusSelecting,
	pipelinerun.StatusMapping,
	pipelinerun.StatusReducing,
	pipelinerun.StatusMerging,
	pipelinerun.StatusPersisting,
}

// terminal statuses eligible for retention pruning.
var terminalStatuses = []pipelinerun.Status{
	pipelinerun.StatusDone,
	pipelinerun.StatusAborted,
	pipelinerun.StatusCancelled,
}

// RunService persists pipeline run state: creation, claiming, the phase
// state machine, counters, and terminal outcomes.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// Create enqueues a new pending run.
func (s *RunService) Create(ctx context.Context, trigger string) (*ent.PipelineRun, error) {
	switch trigger {
	case models.TriggerCLI, models.TriggerAPI, models.TriggerScheduled:
	default:
		return nil, NewValidationError("trigger", fmt.Sprintf("unknown trigger %q", trigger))
	}

	// Detach from the caller's context so a dropped request cannot leave a
	// half-created run behind.
	writeCtx, cancel := context.WithTimeout(context.Background(), createRunTimeout)
	defer cancel()

	run, err := s.client.PipelineRun.Create().
		SetID(uuid.New().String()).
		SetStatus(pipelinerun.StatusPending).
		SetTrigger(pipelinerun.Trigger(trigger)).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// ClaimNextPending atomically claims the oldest pending run for podID and
// moves it to selecting, using FOR UPDATE SKIP LOCKED so concurrent workers
// never block on each other's claims. Returns (nil, nil) when nothing is
// pending.
func (s *RunService) ClaimNextPending(ctx context.Context, podID string) (*ent.PipelineRun, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.PipelineRun.Query().
		Where(pipelinerun.StatusEQ(pipelinerun.StatusPending)).
		Order(ent.Asc(pipelinerun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	run, err = run.Update().
		SetStatus(pipelinerun.StatusSelecting).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return run, nil
}

// UpdatePhase records a phase transition and refreshes the heartbeat.
// Sets started_at on the first transition of a run that skipped the claim
// path (CLI runs execute in-process without a queue worker).
func (s *RunService) UpdatePhase(ctx context.Context, runID, phase string) error {
	if err := pipelinerun.StatusValidator(pipelinerun.Status(phase)); err != nil {
		return NewValidationError("phase", fmt.Sprintf("unknown phase %q", phase))
	}

	run, err := s.client.PipelineRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	now := time.Now()
	update := run.Update().
		SetStatus(pipelinerun.Status(phase)).
		SetLastHeartbeatAt(now)
	if run.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	return nil
}

// RecordCounters flushes in-progress counters so an aborted or recovered
// run still shows how far it got.
func (s *RunService) RecordCounters(ctx context.Context, runID string, counters models.RunCounters) error {
	err := applyCounters(s.client.PipelineRun.UpdateOneID(runID), counters).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to persist counters: %w", err)
	}
	return nil
}

// Complete marks a run done with its final counters.
func (s *RunService) Complete(ctx context.Context, runID string, counters models.RunCounters) error {
	err := applyCounters(s.client.PipelineRun.UpdateOneID(runID), counters).
		SetStatus(pipelinerun.StatusDone).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// Abort marks a run aborted with the failure category and message.
func (s *RunService) Abort(ctx context.Context, runID, category, message string, counters models.RunCounters) error {
	update := applyCounters(s.client.PipelineRun.UpdateOneID(runID), counters).
		SetStatus(pipelinerun.StatusAborted).
		SetErrorMessage(message).
		SetCompletedAt(time.Now())
	if category != "" {
		update = update.SetErrorCategory(pipelinerun.ErrorCategory(category))
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to abort run: %w", err)
	}
	return nil
}

// Cancel marks a run cancelled. Counters keep whatever the run finished
// before the cancellation landed.
func (s *RunService) Cancel(ctx context.Context, runID string, counters models.RunCounters) error {
	err := applyCounters(s.client.PipelineRun.UpdateOneID(runID), counters).
		SetStatus(pipelinerun.StatusCancelled).
		SetErrorCategory(pipelinerun.ErrorCategoryCanceled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	return nil
}

// CancelPending flips a still-pending run to cancelled. Returns false when
// the run was already claimed; the caller must signal the worker instead.
func (s *RunService) CancelPending(ctx context.Context, runID string) (bool, error) {
	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.IDEQ(runID),
			pipelinerun.StatusEQ(pipelinerun.StatusPending),
		).
		SetStatus(pipelinerun.StatusCancelled).
		SetErrorCategory(pipelinerun.ErrorCategoryCanceled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending run: %w", err)
	}
	return count > 0, nil
}

// Heartbeat refreshes last_heartbeat_at for an in-flight run.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	err := s.client.PipelineRun.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// Get retrieves a run by id.
func (s *RunService) Get(ctx context.Context, runID string) (*ent.PipelineRun, error) {
	run, err := s.client.PipelineRun.Query().
		Where(pipelinerun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// List returns runs newest first, optionally filtered by status.
func (s *RunService) List(ctx context.Context, status string, limit int) ([]*ent.PipelineRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.PipelineRun.Query()
	if status != "" {
		if err := pipelinerun.StatusValidator(pipelinerun.Status(status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
		}
		query = query.Where(pipelinerun.StatusEQ(pipelinerun.Status(status)))
	}

	runs, err := query.
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// HasActiveRun reports whether any run is pending or mid-pipeline. The
// scheduler uses it to avoid queueing redundant work.
func (s *RunService) HasActiveRun(ctx context.Context) (bool, error) {
	statuses := append([]pipelinerun.Status{pipelinerun.StatusPending}, workingStatuses...)
	exists, err := s.client.PipelineRun.Query().
		Where(pipelinerun.StatusIn(statuses...)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for active runs: %w", err)
	}
	return exists, nil
}

// RecoverOrphaned aborts runs whose worker heartbeat went stale, returning
// how many were recovered. Orphaned runs never assigned their titles, so
// the next run simply reselects them; no error category applies because
// the pipeline itself did not fail.
func (s *RunService) RecoverOrphaned(ctx context.Context, threshold time.Duration) (int, error) {
	if threshold <= 0 {
		return 0, NewValidationError("threshold", "must be positive")
	}
	cutoff := time.Now().Add(-threshold)

	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.StatusIn(workingStatuses...),
			pipelinerun.LastHeartbeatAtNotNil(),
			pipelinerun.LastHeartbeatAtLT(cutoff),
		).
		SetStatus(pipelinerun.StatusAborted).
		SetErrorMessage("worker heartbeat lost, titles roll to the next run").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned runs: %w", err)
	}
	return count, nil
}

// RecoverStartupOrphans aborts runs a previous incarnation of this pod left
// mid-pipeline. Called once at serve startup, before workers begin claiming,
// so a crashed pod does not have to wait out the heartbeat threshold.
func (s *RunService) RecoverStartupOrphans(ctx context.Context, podID string) (int, error) {
	if podID == "" {
		return 0, NewValidationError("pod_id", "must not be empty")
	}

	count, err := s.client.PipelineRun.Update().
		Where(
			pipelinerun.StatusIn(workingStatuses...),
			pipelinerun.PodIDEQ(podID),
		).
		SetStatus(pipelinerun.StatusAborted).
		SetErrorMessage(fmt.Sprintf("pod %s restarted mid-run, titles roll to the next run", podID)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover startup orphans: %w", err)
	}
	return count, nil
}

// PruneTerminal deletes terminal runs that completed more than
// retentionDays ago. Merge audit rows cascade with their run; Event
// Families, their lineage pointers, and titles are never touched.
func (s *RunService) PruneTerminal(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, NewValidationError("retention_days", "must be positive")
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.PipelineRun.Delete().
		Where(
			pipelinerun.StatusIn(terminalStatuses...),
			pipelinerun.CompletedAtNotNil(),
			pipelinerun.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune terminal runs: %w", err)
	}
	return count, nil
}

// QueueDepth counts pending runs waiting for a worker.
func (s *RunService) QueueDepth(ctx context.Context) (int, error) {
	depth, err := s.client.PipelineRun.Query().
		Where(pipelinerun.StatusEQ(pipelinerun.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending runs: %w", err)
	}
	return depth, nil
}

// CountRunning counts runs currently mid-pipeline on the given pod.
func (s *RunService) CountRunning(ctx context.Context, podID string) (int, error) {
	count, err := s.client.PipelineRun.Query().
		Where(
			pipelinerun.StatusIn(workingStatuses...),
			pipelinerun.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running runs: %w", err)
	}
	return count, nil
}

func applyCounters(update *ent.PipelineRunUpdateOne, c models.RunCounters) *ent.PipelineRunUpdateOne {
	return update.
		SetTitlesSelected(c.TitlesSelected).
		SetShardsTotal(c.ShardsTotal).
		SetShardsFailed(c.ShardsFailed).
		SetIncidentsMapped(c.IncidentsMapped).
		SetOrphansMapped(c.OrphansMapped).
		SetCandidatesReduced(c.CandidatesReduced).
		SetReduceDrops(c.ReduceDrops).
		SetEfsCreated(c.EFsCreated).
		SetEfsUpdated(c.EFsUpdated).
		SetTitlesAssigned(c.TitlesAssigned)
}
