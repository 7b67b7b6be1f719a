package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/events"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// Run status values persisted on the run row. The five middle ones double
// as phase names for timeouts and metrics.
const (
	StatusPending    = "pending"
	StatusSelecting  = "selecting"
	StatusMapping    = "mapping"
	StatusReducing   = "reducing"
	StatusMerging    = "merging"
	StatusPersisting = "persisting"
	StatusDone       = "done"
	StatusAborted    = "aborted"
	StatusCancelled  = "cancelled"
)

// terminalWriteTimeout bounds the status write that records a run's
// outcome. It runs on a fresh context so cancelled runs still get recorded.
const terminalWriteTimeout = 10 * time.Second

// CommitResult reports what one survivor commit changed.
type CommitResult struct {
	// Created is true when the survivor was inserted as a new EF row
	// rather than updating an existing one.
	Created bool

	// TitlesAssigned counts titles whose event_family_id moved from NULL
	// to the survivor in this commit.
	TitlesAssigned int

	// RetiredEFIDs lists stored EFs marked merged into the survivor.
	RetiredEFIDs []string
}

// EventFamilyStore provides merge lookups and the per-survivor commit.
// Implemented by services.EventFamilyService; the interface keeps this
// package free of ent imports and enables test doubles.
type EventFamilyStore interface {
	// ActiveByKey returns every active EF with the given ef_key.
	ActiveByKey(ctx context.Context, efKey string) ([]*models.EventFamily, error)

	// CommitSurvivor atomically upserts the survivor, assigns its member
	// titles, records merge audit rows, and retires absorbed stored EFs.
	// A member title already assigned elsewhere fails the whole commit
	// with *ConflictingAssignmentError.
	CommitSurvivor(ctx context.Context, survivor *models.EventFamily, runID string) (*CommitResult, error)
}

// RunStore persists run state transitions and counters.
// Implemented by services.RunService.
type RunStore interface {
	UpdatePhase(ctx context.Context, runID, phase string) error
	RecordCounters(ctx context.Context, runID string, counters models.RunCounters) error
	Complete(ctx context.Context, runID string, counters models.RunCounters) error
	Abort(ctx context.Context, runID, category, message string, counters models.RunCounters) error
	Cancel(ctx context.Context, runID string, counters models.RunCounters) error
}

// EventPublisher broadcasts run and EF lifecycle notifications.
// Implemented by events.Publisher; may be nil (publishing disabled).
type EventPublisher interface {
	PublishRunStatus(ctx context.Context, payload events.RunStatusPayload) error
	PublishEFChanged(ctx context.Context, payload events.EFChangedPayload) error
}

// PhaseRecorder records pipeline metrics.
// Implemented by telemetry.Recorder; may be nil (metrics disabled).
type PhaseRecorder interface {
	RecordPhase(ctx context.Context, phase string, duration time.Duration, err error)
	RecordRun(ctx context.Context, status string, duration time.Duration, counters models.RunCounters)
}

// Orchestrator drives one run through the phase state machine:
// selecting, mapping, reducing, merging, persisting. Map and Reduce contain
// their per-item LLM failures; merge lookups, commits, and run bookkeeping
// surface store errors, which abort the run.
type Orchestrator struct {
	selector *Selector
	mapper   *Mapper
	reducer  *Reducer
	efs      EventFamilyStore
	runs     RunStore
	events   EventPublisher
	metrics  PhaseRecorder
	timeouts config.PhaseTimeouts
}

// NewOrchestrator creates an orchestrator.
// eventPublisher and metrics may be nil; everything else must not be.
func NewOrchestrator(selector *Selector, mapper *Mapper, reducer *Reducer, efs EventFamilyStore, runs RunStore, cfg *config.PipelineConfig, eventPublisher EventPublisher, metrics PhaseRecorder) *Orchestrator {
	if selector == nil {
		panic("pipeline.NewOrchestrator: selector must not be nil")
	}
	if mapper == nil {
		panic("pipeline.NewOrchestrator: mapper must not be nil")
	}
	if reducer == nil {
		panic("pipeline.NewOrchestrator: reducer must not be nil")
	}
	if efs == nil {
		panic("pipeline.NewOrchestrator: efs must not be nil")
	}
	if runs == nil {
		panic("pipeline.NewOrchestrator: runs must not be nil")
	}
	if cfg == nil {
		panic("pipeline.NewOrchestrator: cfg must not be nil")
	}
	return &Orchestrator{
		selector: selector,
		mapper:   mapper,
		reducer:  reducer,
		efs:      efs,
		runs:     runs,
		events:   eventPublisher,
		metrics:  metrics,
		timeouts: cfg.PhaseTimeouts,
	}
}

// Execute runs the full pipeline for an already-claimed run and records the
// terminal status. The returned error is nil only when the run ends done;
// callers map aborts to exit codes via Categorize.
func (o *Orchestrator) Execute(ctx context.Context, runID string) error {
	logger := slog.With("run_id", runID)
	started := time.Now()
	var counters models.RunCounters

	runErr := o.runPhases(ctx, runID, logger, &counters)

	termCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), terminalWriteTimeout)
	defer cancel()

	status := StatusDone
	category := ""
	switch {
	case runErr == nil:
		if err := o.runs.Complete(termCtx, runID, counters); err != nil {
			runErr = fmt.Errorf("failed to mark run done: %w", err)
			status = StatusAborted
			category = Categorize(runErr)
		}
	case Categorize(runErr) == models.ErrorCategoryCanceled:
		status = StatusCancelled
		category = models.ErrorCategoryCanceled
		if err := o.runs.Cancel(termCtx, runID, counters); err != nil {
			logger.Error("Failed to record run cancellation", "error", err)
		}
	default:
		status = StatusAborted
		category = Categorize(runErr)
		if err := o.runs.Abort(termCtx, runID, category, runErr.Error(), counters); err != nil {
			logger.Error("Failed to record run abort", "error", err)
		}
	}

	o.publishRunStatus(termCtx, runID, status, category, counters)
	if o.metrics != nil {
		o.metrics.RecordRun(termCtx, status, time.Since(started), counters)
	}

	if runErr != nil {
		logger.Error("Run finished",
			"status", status,
			"category", category,
			"duration_ms", time.Since(started).Milliseconds(),
			"error", runErr)
		return runErr
	}
	logger.Info("Run completed",
		"duration_ms", time.Since(started).Milliseconds(),
		"titles_selected", counters.TitlesSelected,
		"titles_assigned", counters.TitlesAssigned,
		"efs_created", counters.EFsCreated,
		"efs_updated", counters.EFsUpdated,
		"reduce_drops", counters.ReduceDrops)
	return nil
}

// runPhases walks the phase state machine, flushing counters after each
// transition. Phase work runs under the phase deadline; bookkeeping writes
// use the run context so they survive a phase deadline expiry.
func (o *Orchestrator) runPhases(ctx context.Context, runID string, logger *slog.Logger, counters *models.RunCounters) error {
	titles, err := o.phaseSelect(ctx, runID, counters)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		logger.Info("No unassigned titles, finishing run with nothing to do")
		return nil
	}

	titleByID := make(map[string]models.Title, len(titles))
	for _, t := range titles {
		titleByID[t.ID] = t
	}

	mapRes, err := o.phaseMap(ctx, runID, logger, counters, titles)
	if err != nil {
		return err
	}

	reduceRes, err := o.phaseReduce(ctx, runID, logger, counters, mapRes, titleByID)
	if err != nil {
		return err
	}

	planned, err := o.phaseMerge(ctx, runID, logger, reduceRes.Candidates)
	if err != nil {
		return err
	}

	return o.phasePersist(ctx, runID, logger, counters, planned)
}

func (o *Orchestrator) phaseSelect(ctx context.Context, runID string, counters *models.RunCounters) ([]models.Title, error) {
	if err := o.enterPhase(ctx, runID, StatusSelecting, counters); err != nil {
		return nil, err
	}
	start := time.Now()
	pctx, cancel := phaseContext(ctx, o.timeouts.Selecting)
	defer cancel()

	titles, err := o.selector.SelectTitles(pctx)
	o.recordPhase(ctx, StatusSelecting, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("selecting phase: %w", err)
	}

	counters.TitlesSelected = len(titles)
	if err := o.flushCounters(ctx, runID, counters); err != nil {
		return nil, err
	}
	return titles, nil
}

func (o *Orchestrator) phaseMap(ctx context.Context, runID string, logger *slog.Logger, counters *models.RunCounters, titles []models.Title) (*MapResult, error) {
	if err := o.enterPhase(ctx, runID, StatusMapping, counters); err != nil {
		return nil, err
	}
	start := time.Now()
	pctx, cancel := phaseContext(ctx, o.timeouts.Mapping)
	defer cancel()

	res, err := o.mapper.Run(pctx, titles)
	o.recordPhase(ctx, StatusMapping, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("mapping phase: %w", err)
	}

	counters.ShardsTotal = res.ShardsTotal
	counters.ShardsFailed = res.ShardsFailed
	counters.IncidentsMapped = len(res.Incidents)
	counters.OrphansMapped = len(res.OrphanTitleIDs)
	logger.Info("Map stage complete",
		"shards_total", res.ShardsTotal,
		"shards_failed", res.ShardsFailed,
		"incidents", len(res.Incidents),
		"orphans", len(res.OrphanTitleIDs))
	if err := o.flushCounters(ctx, runID, counters); err != nil {
		return nil, err
	}
	return res, nil
}

func (o *Orchestrator) phaseReduce(ctx context.Context, runID string, logger *slog.Logger, counters *models.RunCounters, mapRes *MapResult, titleByID map[string]models.Title) (*ReduceResult, error) {
	if err := o.enterPhase(ctx, runID, StatusReducing, counters); err != nil {
		return nil, err
	}
	start := time.Now()
	pctx, cancel := phaseContext(ctx, o.timeouts.Reducing)
	defer cancel()

	res, err := o.reducer.Run(pctx, mapRes.Incidents, mapRes.OrphanTitleIDs, titleByID)
	o.recordPhase(ctx, StatusReducing, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("reducing phase: %w", err)
	}

	counters.CandidatesReduced = len(res.Candidates)
	counters.ReduceDrops = len(res.DroppedTitleIDs)
	logger.Info("Reduce stage complete",
		"candidates", len(res.Candidates),
		"incidents_failed", res.IncidentsFailed,
		"dropped_titles", len(res.DroppedTitleIDs))
	if err := o.flushCounters(ctx, runID, counters); err != nil {
		return nil, err
	}
	return res, nil
}

// plannedCommit pairs a folded candidate with its store-resolved survivor.
// The candidate is kept so a conflicting commit can re-resolve against
// fresh store state.
type plannedCommit struct {
	candidate *models.EventFamily
	survivor  *models.EventFamily
}

func (o *Orchestrator) phaseMerge(ctx context.Context, runID string, logger *slog.Logger, candidates []*models.EventFamily) ([]plannedCommit, error) {
	if err := o.enterPhase(ctx, runID, StatusMerging, nil); err != nil {
		return nil, err
	}
	start := time.Now()
	pctx, cancel := phaseContext(ctx, o.timeouts.Merging)
	defer cancel()

	now := time.Now().UTC()
	folded := FoldCandidates(candidates, runID, now)

	planned := make([]plannedCommit, 0, len(folded))
	var phaseErr error
	for i, candidate := range folded {
		hits, err := o.efs.ActiveByKey(pctx, candidate.EFKey)
		if err != nil {
			if errors.Is(pctx.Err(), context.DeadlineExceeded) {
				logger.Warn("Merging phase deadline reached, deferring remaining candidates",
					"resolved", len(planned),
					"deferred", len(folded)-i)
				break
			}
			phaseErr = fmt.Errorf("merging phase: lookup ef_key %s: %w", candidate.EFKey, err)
			break
		}
		survivor, err := ResolveAgainstStore(candidate, hits, runID, now)
		if err != nil {
			phaseErr = fmt.Errorf("merging phase: %w", err)
			break
		}
		planned = append(planned, plannedCommit{candidate: candidate, survivor: survivor})
	}

	if phaseErr == nil {
		survivors := make([]*models.EventFamily, len(planned))
		for i, pc := range planned {
			survivors[i] = pc.survivor
		}
		if err := VerifyDisjoint(survivors); err != nil {
			phaseErr = fmt.Errorf("merging phase: %w", err)
		}
	}

	o.recordPhase(ctx, StatusMerging, time.Since(start), phaseErr)
	if phaseErr != nil {
		return nil, phaseErr
	}
	logger.Info("Merge stage complete",
		"candidates", len(candidates),
		"folded", len(folded),
		"survivors", len(planned))
	return planned, nil
}

func (o *Orchestrator) phasePersist(ctx context.Context, runID string, logger *slog.Logger, counters *models.RunCounters, planned []plannedCommit) error {
	if err := o.enterPhase(ctx, runID, StatusPersisting, counters); err != nil {
		return err
	}
	start := time.Now()
	pctx, cancel := phaseContext(ctx, o.timeouts.Persisting)
	defer cancel()

	var phaseErr error
	for i, pc := range planned {
		res, err := o.commitWithRetry(pctx, runID, logger, pc)
		if err != nil {
			var violation *InvariantViolationError
			if !errors.As(err, &violation) && errors.Is(pctx.Err(), context.DeadlineExceeded) {
				logger.Warn("Persisting phase deadline reached, deferring remaining survivors",
					"committed", i,
					"deferred", len(planned)-i)
				break
			}
			phaseErr = fmt.Errorf("persisting phase: %w", err)
			break
		}

		if res.Created {
			counters.EFsCreated++
		} else {
			counters.EFsUpdated++
		}
		counters.TitlesAssigned += res.TitlesAssigned
		o.publishEFCommit(ctx, runID, pc.survivor, res)
	}

	o.recordPhase(ctx, StatusPersisting, time.Since(start), phaseErr)
	if err := o.flushCounters(ctx, runID, counters); err != nil && phaseErr == nil {
		phaseErr = err
	}
	if phaseErr != nil {
		return phaseErr
	}
	logger.Info("Persist stage complete",
		"efs_created", counters.EFsCreated,
		"efs_updated", counters.EFsUpdated,
		"titles_assigned", counters.TitlesAssigned)
	return nil
}

// commitWithRetry commits one survivor, re-resolving against fresh store
// state after a conflicting assignment. A second conflict for the same
// survivor violates single assignment and is fatal.
func (o *Orchestrator) commitWithRetry(ctx context.Context, runID string, logger *slog.Logger, pc plannedCommit) (*CommitResult, error) {
	res, err := o.efs.CommitSurvivor(ctx, pc.survivor, runID)
	var conflict *ConflictingAssignmentError
	if !errors.As(err, &conflict) {
		return res, err
	}

	logger.Warn("Conflicting title assignment, re-merging against fresh store state",
		"title_id", conflict.TitleID,
		"assigned_to", conflict.AssignedTo,
		"ef_id", pc.survivor.ID)

	hits, err := o.efs.ActiveByKey(ctx, pc.candidate.EFKey)
	if err != nil {
		return nil, fmt.Errorf("re-merge lookup for ef_key %s: %w", pc.candidate.EFKey, err)
	}
	survivor, err := ResolveAgainstStore(pc.candidate, hits, runID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	res, err = o.efs.CommitSurvivor(ctx, survivor, runID)
	if errors.As(err, &conflict) {
		return nil, &InvariantViolationError{
			Invariant: InvariantSingleAssignment,
			Detail:    fmt.Sprintf("title %s still assigned to %s after re-merge", conflict.TitleID, conflict.AssignedTo),
		}
	}
	return res, err
}

// enterPhase persists the phase transition and broadcasts it. counters may
// be nil for phases with no counter changes yet.
func (o *Orchestrator) enterPhase(ctx context.Context, runID, phase string, counters *models.RunCounters) error {
	if err := o.runs.UpdatePhase(ctx, runID, phase); err != nil {
		return fmt.Errorf("failed to enter %s phase: %w", phase, err)
	}
	var snapshot models.RunCounters
	if counters != nil {
		snapshot = *counters
	}
	o.publishRunStatus(ctx, runID, phase, "", snapshot)
	return nil
}

func (o *Orchestrator) flushCounters(ctx context.Context, runID string, counters *models.RunCounters) error {
	if err := o.runs.RecordCounters(ctx, runID, *counters); err != nil {
		return fmt.Errorf("failed to record run counters: %w", err)
	}
	return nil
}

func (o *Orchestrator) recordPhase(ctx context.Context, phase string, duration time.Duration, err error) {
	if o.metrics == nil {
		return
	}
	o.metrics.RecordPhase(ctx, phase, duration, err)
}

func (o *Orchestrator) publishRunStatus(ctx context.Context, runID, status, category string, counters models.RunCounters) {
	if o.events == nil {
		return
	}
	payload := events.RunStatusPayload{
		RunID:         runID,
		Status:        status,
		ErrorCategory: category,
		Counters:      counters,
	}
	if err := o.events.PublishRunStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish run status event", "run_id", runID, "status", status, "error", err)
	}
}

// publishEFCommit emits created/updated for the survivor and merged for
// every stored EF the commit retired.
func (o *Orchestrator) publishEFCommit(ctx context.Context, runID string, survivor *models.EventFamily, res *CommitResult) {
	if o.events == nil {
		return
	}
	action := events.EFActionUpdated
	if res.Created {
		action = events.EFActionCreated
	}
	payload := events.EFChangedPayload{
		EFID:       survivor.ID,
		EFKey:      survivor.EFKey,
		Action:     action,
		RunID:      runID,
		TitleCount: survivor.TitleCount(),
	}
	if err := o.events.PublishEFChanged(ctx, payload); err != nil {
		slog.Warn("Failed to publish EF event", "ef_id", survivor.ID, "action", action, "error", err)
	}
	for _, retired := range res.RetiredEFIDs {
		payload := events.EFChangedPayload{
			EFID:   retired,
			EFKey:  survivor.EFKey,
			Action: events.EFActionMerged,
			RunID:  runID,
		}
		if err := o.events.PublishEFChanged(ctx, payload); err != nil {
			slog.Warn("Failed to publish EF event", "ef_id", retired, "action", events.EFActionMerged, "error", err)
		}
	}
}

// phaseContext derives the phase deadline. A non-positive timeout means the
// phase runs unbounded under the run context.
func phaseContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
