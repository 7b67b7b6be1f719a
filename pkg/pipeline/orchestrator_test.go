package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/events"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

type fakeTitleStore struct {
	titles   []models.Title
	err      error
	gotLimit int
}

var _ TitleStore = (*fakeTitleStore)(nil)

func (f *fakeTitleStore) SelectForPipeline(_ context.Context, limit int) ([]models.Title, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.titles, nil
}

type fakeEFStore struct {
	mu          sync.Mutex
	active      map[string][]*models.EventFamily
	activeErr   error
	commits     []*models.EventFamily
	commitHook  func(call int, survivor *models.EventFamily) (*CommitResult, error)
	commitCalls int
}

var _ EventFamilyStore = (*fakeEFStore)(nil)

func (f *fakeEFStore) ActiveByKey(_ context.Context, efKey string) ([]*models.EventFamily, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.active[efKey], nil
}

func (f *fakeEFStore) CommitSurvivor(_ context.Context, survivor *models.EventFamily, _ string) (*CommitResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commitCalls++
	if f.commitHook != nil {
		res, err := f.commitHook(f.commitCalls, survivor)
		if err != nil {
			return nil, err
		}
		f.commits = append(f.commits, survivor)
		return res, nil
	}
	f.commits = append(f.commits, survivor)
	return &CommitResult{
		Created:        !survivor.Persisted,
		TitlesAssigned: survivor.TitleCount(),
	}, nil
}

type fakeRunStore struct {
	mu             sync.Mutex
	phases         []string
	counters       []models.RunCounters
	completed      bool
	finalCounters  models.RunCounters
	aborted        bool
	abortCategory  string
	abortMessage   string
	cancelled      bool
	updatePhaseErr error
}

var _ RunStore = (*fakeRunStore)(nil)

func (f *fakeRunStore) UpdatePhase(_ context.Context, _ string, phase string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updatePhaseErr != nil {
		return f.updatePhaseErr
	}
	f.phases = append(f.phases, phase)
	return nil
}

func (f *fakeRunStore) RecordCounters(_ context.Context, _ string, counters models.RunCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counters)
	return nil
}

func (f *fakeRunStore) Complete(_ context.Context, _ string, counters models.RunCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = true
	f.finalCounters = counters
	return nil
}

func (f *fakeRunStore) Abort(_ context.Context, _ string, category, message string, counters models.RunCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aborted = true
	f.abortCategory = category
	f.abortMessage = message
	f.finalCounters = counters
	return nil
}

func (f *fakeRunStore) Cancel(_ context.Context, _ string, counters models.RunCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = true
	f.finalCounters = counters
	return nil
}

type fakePublisher struct {
	mu          sync.Mutex
	runStatuses []events.RunStatusPayload
	efEvents    []events.EFChangedPayload
}

var _ EventPublisher = (*fakePublisher)(nil)

func (f *fakePublisher) PublishRunStatus(_ context.Context, payload events.RunStatusPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runStatuses = append(f.runStatuses, payload)
	return nil
}

func (f *fakePublisher) PublishEFChanged(_ context.Context, payload events.EFChangedPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.efEvents = append(f.efEvents, payload)
	return nil
}

func newOrchestratorForTest(client llm.Client, titles *fakeTitleStore, efs *fakeEFStore, runs *fakeRunStore, pub *fakePublisher) *Orchestrator {
	vocab := config.DefaultVocabConfig()
	prompts := prompt.NewBuilder(vocab)
	cfg := testPipelineConfig(50, 1, 1)
	cfg.MaxTitles = 50
	retrier := testRetrier(client)
	selector := NewSelector(titles, cfg)
	mapper := NewMapper(retrier, prompts, cfg)
	reducer := NewReducer(retrier, prompts, cfg, vocab)
	return NewOrchestrator(selector, mapper, reducer, efs, runs, cfg, pub, nil)
}

func TestOrchestrator_HappyPath(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one incident", "t-1", "t-2", "t-3"))),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(3)}
	efs := &fakeEFStore{}
	runs := &fakeRunStore{}
	pub := &fakePublisher{}
	orch := newOrchestratorForTest(client, titles, efs, runs, pub)

	err := orch.Execute(context.Background(), "run-1")

	require.NoError(t, err)
	assert.Equal(t, []string{
		StatusSelecting, StatusMapping, StatusReducing, StatusMerging, StatusPersisting,
	}, runs.phases)
	assert.True(t, runs.completed)
	assert.Equal(t, 50, titles.gotLimit)

	c := runs.finalCounters
	assert.Equal(t, 3, c.TitlesSelected)
	assert.Equal(t, 1, c.ShardsTotal)
	assert.Equal(t, 0, c.ShardsFailed)
	assert.Equal(t, 1, c.IncidentsMapped)
	assert.Equal(t, 0, c.OrphansMapped)
	assert.Equal(t, 1, c.CandidatesReduced)
	assert.Equal(t, 0, c.ReduceDrops)
	assert.Equal(t, 1, c.EFsCreated)
	assert.Equal(t, 0, c.EFsUpdated)
	assert.Equal(t, 3, c.TitlesAssigned)

	require.Len(t, efs.commits, 1)
	committed := efs.commits[0]
	assert.Equal(t, ComputeEFKey("EUROPE", "MILITARY_OP"), committed.EFKey)
	assert.Equal(t, "run-1", committed.CreatedByRunID)
	assert.ElementsMatch(t, []string{"t-1", "t-2", "t-3"}, committed.TitleIDs)

	require.NotEmpty(t, pub.runStatuses)
	last := pub.runStatuses[len(pub.runStatuses)-1]
	assert.Equal(t, StatusDone, last.Status)
	require.Len(t, pub.efEvents, 1)
	assert.Equal(t, events.EFActionCreated, pub.efEvents[0].Action)
}

func TestOrchestrator_SingleTitleBecomesSingletonFamily(t *testing.T) {
	// The map stage places nothing, so the lone title falls through as an
	// orphan and the reduce stage classifies it as a singleton family.
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON()),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(1)}
	efs := &fakeEFStore{}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, efs, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.NoError(t, err)
	assert.True(t, runs.completed)

	c := runs.finalCounters
	assert.Equal(t, 1, c.TitlesSelected)
	assert.Equal(t, 1, c.ShardsTotal)
	assert.Equal(t, 0, c.IncidentsMapped)
	assert.Equal(t, 1, c.OrphansMapped)
	assert.Equal(t, 1, c.CandidatesReduced)
	assert.Equal(t, 1, c.EFsCreated)
	assert.Equal(t, 1, c.TitlesAssigned)

	require.Len(t, efs.commits, 1)
	committed := efs.commits[0]
	assert.True(t, committed.SingletonOrigin)
	assert.Equal(t, 1, committed.TitleCount())
	assert.Equal(t, ComputeEFKey("EUROPE", "MILITARY_OP"), committed.EFKey)
	assert.InDelta(t, 0.9, committed.Confidence, 0.001)
}

func TestOrchestrator_EmptySelectionShortCircuits(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON()),
	}}
	titles := &fakeTitleStore{}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, &fakeEFStore{}, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.NoError(t, err)
	assert.True(t, runs.completed)
	assert.Equal(t, []string{StatusSelecting}, runs.phases)
	assert.Equal(t, models.RunCounters{}, runs.finalCounters)
	assert.Equal(t, 0, client.callCount())
}

func TestOrchestrator_SelectionFailureAborts(t *testing.T) {
	titles := &fakeTitleStore{err: fmt.Errorf("%w: connection refused", ErrStoreUnavailable)}
	runs := &fakeRunStore{}
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){respondPermanent()}}
	orch := newOrchestratorForTest(client, titles, &fakeEFStore{}, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.Error(t, err)
	assert.True(t, runs.aborted)
	assert.Equal(t, models.ErrorCategoryStore, runs.abortCategory)
	assert.False(t, runs.completed)
	assert.Equal(t, 0, client.callCount())
}

func TestOrchestrator_PermanentLLMErrorAborts(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondPermanent(),
	}}
	titles := &fakeTitleStore{titles: testTitles(2)}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, &fakeEFStore{}, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.Error(t, err)
	assert.True(t, runs.aborted)
	assert.Equal(t, models.ErrorCategoryLLM, runs.abortCategory)
	assert.Equal(t, []string{StatusSelecting, StatusMapping}, runs.phases)
}

func TestOrchestrator_ContainedLLMFailuresStillComplete(t *testing.T) {
	// Map succeeds but every reduce attempt fails transiently: the titles
	// are dropped for this run and the run still ends done.
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one", "t-1", "t-2"))),
		respondTransient(),
	}}
	titles := &fakeTitleStore{titles: testTitles(2)}
	efs := &fakeEFStore{}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, efs, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.NoError(t, err)
	assert.True(t, runs.completed)
	assert.Equal(t, 2, runs.finalCounters.ReduceDrops)
	assert.Equal(t, 0, runs.finalCounters.EFsCreated)
	assert.Empty(t, efs.commits)
}

func TestOrchestrator_CrossBatchMerge(t *testing.T) {
	key := ComputeEFKey("EUROPE", "MILITARY_OP")
	stored := candidateEF("ef-stored", "EUROPE", "MILITARY_OP", []string{"t-10"}, withPersisted())
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one", "t-1", "t-2"))),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(2)}
	efs := &fakeEFStore{active: map[string][]*models.EventFamily{key: {stored}}}
	runs := &fakeRunStore{}
	pub := &fakePublisher{}
	orch := newOrchestratorForTest(client, titles, efs, runs, pub)

	err := orch.Execute(context.Background(), "run-2")

	require.NoError(t, err)
	require.Len(t, efs.commits, 1)
	assert.Equal(t, "ef-stored", efs.commits[0].ID)
	assert.ElementsMatch(t, []string{"t-10", "t-1", "t-2"}, efs.commits[0].TitleIDs)
	assert.Equal(t, 1, runs.finalCounters.EFsUpdated)
	assert.Equal(t, 0, runs.finalCounters.EFsCreated)
	require.Len(t, pub.efEvents, 1)
	assert.Equal(t, events.EFActionUpdated, pub.efEvents[0].Action)
}

func TestOrchestrator_ConflictRetriesOnceThenSucceeds(t *testing.T) {
	key := ComputeEFKey("EUROPE", "MILITARY_OP")
	other := candidateEF("ef-other", "EUROPE", "MILITARY_OP", []string{"t-1"}, withPersisted())
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one", "t-1", "t-2"))),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(2)}
	efs := &fakeEFStore{}
	efs.commitHook = func(call int, survivor *models.EventFamily) (*CommitResult, error) {
		if call == 1 {
			// A concurrent run assigned t-1 between merge and commit.
			efs.active = map[string][]*models.EventFamily{key: {other}}
			return nil, &ConflictingAssignmentError{TitleID: "t-1", AssignedTo: "ef-other", WantEF: survivor.ID}
		}
		return &CommitResult{Created: false, TitlesAssigned: 1}, nil
	}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, efs, runs, nil)

	err := orch.Execute(context.Background(), "run-2")

	require.NoError(t, err)
	assert.Equal(t, 2, efs.commitCalls)
	require.Len(t, efs.commits, 1)
	assert.Equal(t, "ef-other", efs.commits[0].ID)
	assert.True(t, runs.completed)
	assert.Equal(t, 1, runs.finalCounters.EFsUpdated)
}

func TestOrchestrator_SecondConflictIsInvariantViolation(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one", "t-1"))),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(1)}
	efs := &fakeEFStore{}
	efs.commitHook = func(int, *models.EventFamily) (*CommitResult, error) {
		return nil, &ConflictingAssignmentError{TitleID: "t-1", AssignedTo: "ef-other", WantEF: "ef-new"}
	}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, efs, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.Error(t, err)
	var violation *InvariantViolationError
	assert.ErrorAs(t, err, &violation)
	assert.Equal(t, 2, efs.commitCalls)
	assert.True(t, runs.aborted)
	assert.Equal(t, models.ErrorCategoryInvariant, runs.abortCategory)
}

func TestOrchestrator_DuplicateActiveKeyAborts(t *testing.T) {
	key := ComputeEFKey("EUROPE", "MILITARY_OP")
	a := candidateEF("ef-a", "EUROPE", "MILITARY_OP", []string{"t-10"}, withPersisted())
	b := candidateEF("ef-b", "EUROPE", "MILITARY_OP", []string{"t-11"}, withPersisted())
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("one", "t-1"))),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.9, "[]")),
	}}
	titles := &fakeTitleStore{titles: testTitles(1)}
	efs := &fakeEFStore{active: map[string][]*models.EventFamily{key: {a, b}}}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, efs, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.Error(t, err)
	assert.True(t, runs.aborted)
	assert.Equal(t, models.ErrorCategoryInvariant, runs.abortCategory)
	assert.Empty(t, efs.commits)
}

type cancellingLLM struct {
	cancel context.CancelFunc
}

func (c *cancellingLLM) Complete(context.Context, *llm.Request) (*llm.Response, error) {
	c.cancel()
	return nil, context.Canceled
}

func TestOrchestrator_CancellationMarksRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := &cancellingLLM{cancel: cancel}
	titles := &fakeTitleStore{titles: testTitles(2)}
	runs := &fakeRunStore{}
	orch := newOrchestratorForTest(client, titles, &fakeEFStore{}, runs, nil)

	err := orch.Execute(ctx, "run-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, runs.cancelled)
	assert.False(t, runs.aborted)
	assert.False(t, runs.completed)
}

func TestOrchestrator_PhaseTransitionFailureAborts(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){respondPermanent()}}
	titles := &fakeTitleStore{titles: testTitles(1)}
	runs := &fakeRunStore{updatePhaseErr: errors.New("connection reset")}
	orch := newOrchestratorForTest(client, titles, &fakeEFStore{}, runs, nil)

	err := orch.Execute(context.Background(), "run-1")

	require.Error(t, err)
	assert.True(t, runs.aborted)
	assert.Equal(t, models.ErrorCategoryStore, runs.abortCategory)
	assert.Equal(t, 0, client.callCount())
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"cancellation", context.Canceled, models.ErrorCategoryCanceled},
		{"wrapped cancellation", fmt.Errorf("mapping phase: %w", context.Canceled), models.ErrorCategoryCanceled},
		{"invariant violation", &InvariantViolationError{Invariant: InvariantSingleAssignment}, models.ErrorCategoryInvariant},
		{"conflicting assignment", &ConflictingAssignmentError{TitleID: "t-1"}, models.ErrorCategoryInvariant},
		{"llm status error", &llm.Error{StatusCode: 401}, models.ErrorCategoryLLM},
		{"malformed llm payload", fmt.Errorf("shard: %w", llm.ErrMalformed), models.ErrorCategoryLLM},
		{"store sentinel", fmt.Errorf("select: %w", ErrStoreUnavailable), models.ErrorCategoryStore},
		{"plain error", errors.New("something broke"), models.ErrorCategoryStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	conflict := &ConflictingAssignmentError{TitleID: "t-1", AssignedTo: "ef-a", WantEF: "ef-b"}
	assert.Equal(t, "title t-1 already assigned to EF ef-a, wanted EF ef-b", conflict.Error())

	violation := &InvariantViolationError{Invariant: InvariantActiveKeyUnique, Detail: "two active rows"}
	assert.Equal(t, "invariant violation (active-key-unique): two active rows", violation.Error())
}
