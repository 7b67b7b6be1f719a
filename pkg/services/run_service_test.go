package services

import (
	"context"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending run", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerAPI)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, pipelinerun.StatusPending, run.Status)
		assert.Equal(t, pipelinerun.Trigger(models.TriggerAPI), run.Trigger)
		assert.Nil(t, run.StartedAt)
		assert.Nil(t, run.PodID)
		assert.Zero(t, run.TitlesSelected)
	})

	t.Run("rejects an unknown trigger", func(t *testing.T) {
		_, err := service.Create(ctx, "cron")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	seedPending := func(createdAt time.Time) string {
		id := uuid.New().String()
		err := client.PipelineRun.Create().
			SetID(id).
			SetStatus(pipelinerun.StatusPending).
			SetTrigger(pipelinerun.Trigger(models.TriggerScheduled)).
			SetCreatedAt(createdAt).
			Exec(ctx)
		require.NoError(t, err)
		return id
	}

	t.Run("claims the oldest pending run", func(t *testing.T) {
		older := seedPending(time.Now().Add(-2 * time.Minute))
		newer := seedPending(time.Now().Add(-1 * time.Minute))

		run, err := service.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, older, run.ID)
		assert.Equal(t, pipelinerun.StatusSelecting, run.Status)
		require.NotNil(t, run.PodID)
		assert.Equal(t, "pod-a", *run.PodID)
		assert.NotNil(t, run.StartedAt)
		assert.NotNil(t, run.LastHeartbeatAt)

		second, err := service.ClaimNextPending(ctx, "pod-b")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, newer, second.ID)
	})

	t.Run("returns nil when nothing is pending", func(t *testing.T) {
		run, err := service.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		assert.Nil(t, run)
	})
}

func TestRunService_UpdatePhase(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("moves the run through the state machine", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		// A CLI run skips the claim path; the first transition must stamp
		// started_at itself.
		err = service.UpdatePhase(ctx, run.ID, pipeline.StatusSelecting)
		require.NoError(t, err)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusSelecting, row.Status)
		require.NotNil(t, row.StartedAt)
		require.NotNil(t, row.LastHeartbeatAt)
		started := *row.StartedAt

		err = service.UpdatePhase(ctx, run.ID, pipeline.StatusMapping)
		require.NoError(t, err)

		row, err = service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusMapping, row.Status)
		assert.True(t, row.StartedAt.Equal(started))
	})

	t.Run("rejects an unknown phase", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		err = service.UpdatePhase(ctx, run.ID, "exploding")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("maps missing runs to ErrNotFound", func(t *testing.T) {
		err := service.UpdatePhase(ctx, uuid.New().String(), pipeline.StatusSelecting)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestRunService_TerminalStates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	counters := models.RunCounters{
		TitlesSelected:    40,
		ShardsTotal:       2,
		IncidentsMapped:   7,
		CandidatesReduced: 7,
		EFsCreated:        5,
		EFsUpdated:        2,
		TitlesAssigned:    38,
	}

	t.Run("complete records done with counters", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		err = service.Complete(ctx, run.ID, counters)
		require.NoError(t, err)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusDone, row.Status)
		assert.NotNil(t, row.CompletedAt)
		assert.Nil(t, row.ErrorCategory)
		assert.Equal(t, 40, row.TitlesSelected)
		assert.Equal(t, 5, row.EfsCreated)
		assert.Equal(t, 38, row.TitlesAssigned)
	})

	t.Run("abort records the category and message", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		err = service.Abort(ctx, run.ID, models.ErrorCategoryLLM, "LLM request failed with status 401", counters)
		require.NoError(t, err)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusAborted, row.Status)
		require.NotNil(t, row.ErrorCategory)
		assert.Equal(t, pipelinerun.ErrorCategory(models.ErrorCategoryLLM), *row.ErrorCategory)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "status 401")
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("abort tolerates an empty category", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		err = service.Abort(ctx, run.ID, "", "worker heartbeat lost", models.RunCounters{})
		require.NoError(t, err)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusAborted, row.Status)
		assert.Nil(t, row.ErrorCategory)
	})

	t.Run("cancel records the canceled category", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerCLI)
		require.NoError(t, err)

		err = service.Cancel(ctx, run.ID, models.RunCounters{TitlesSelected: 12})
		require.NoError(t, err)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCancelled, row.Status)
		require.NotNil(t, row.ErrorCategory)
		assert.Equal(t, pipelinerun.ErrorCategoryCanceled, *row.ErrorCategory)
		assert.Equal(t, 12, row.TitlesSelected)
	})
}

func TestRunService_CancelPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("cancels a pending run", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerAPI)
		require.NoError(t, err)

		cancelled, err := service.CancelPending(ctx, run.ID)
		require.NoError(t, err)
		assert.True(t, cancelled)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCancelled, row.Status)
	})

	t.Run("reports false once a worker claimed the run", func(t *testing.T) {
		run, err := service.Create(ctx, models.TriggerAPI)
		require.NoError(t, err)
		claimed, err := service.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, run.ID, claimed.ID)

		cancelled, err := service.CancelPending(ctx, run.ID)
		require.NoError(t, err)
		assert.False(t, cancelled)

		row, err := service.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusSelecting, row.Status)
	})
}

func TestRunService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	_, err := service.Create(ctx, models.TriggerScheduled)
	require.NoError(t, err)
	run, err := service.ClaimNextPending(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, run)
	require.NotNil(t, run.LastHeartbeatAt)
	before := *run.LastHeartbeatAt

	time.Sleep(20 * time.Millisecond)
	err = service.Heartbeat(ctx, run.ID)
	require.NoError(t, err)

	row, err := service.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, row.LastHeartbeatAt)
	assert.True(t, row.LastHeartbeatAt.After(before))

	err = service.Heartbeat(ctx, uuid.New().String())
	assert.Equal(t, ErrNotFound, err)
}

func TestRunService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	seed := func(status pipelinerun.Status, createdAt time.Time) string {
		id := uuid.New().String()
		err := client.PipelineRun.Create().
			SetID(id).
			SetStatus(status).
			SetTrigger(pipelinerun.Trigger(models.TriggerCLI)).
			SetCreatedAt(createdAt).
			Exec(ctx)
		require.NoError(t, err)
		return id
	}

	now := time.Now()
	oldest := seed(pipelinerun.StatusDone, now.Add(-3*time.Hour))
	middle := seed(pipelinerun.StatusAborted, now.Add(-2*time.Hour))
	newest := seed(pipelinerun.StatusDone, now.Add(-1*time.Hour))

	t.Run("lists newest first", func(t *testing.T) {
		runs, err := service.List(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, newest, runs[0].ID)
		assert.Equal(t, middle, runs[1].ID)
		assert.Equal(t, oldest, runs[2].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		runs, err := service.List(ctx, "done", 10)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, newest, runs[0].ID)
	})

	t.Run("caps at limit", func(t *testing.T) {
		runs, err := service.List(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, newest, runs[0].ID)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := service.List(ctx, "sleeping", 10)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_HasActiveRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	active, err := service.HasActiveRun(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	run, err := service.Create(ctx, models.TriggerScheduled)
	require.NoError(t, err)

	active, err = service.HasActiveRun(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	err = service.Cancel(ctx, run.ID, models.RunCounters{})
	require.NoError(t, err)

	active, err = service.HasActiveRun(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRunService_RecoverOrphaned(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("aborts runs with stale heartbeats", func(t *testing.T) {
		_, err := service.Create(ctx, models.TriggerScheduled)
		require.NoError(t, err)
		stale, err := service.ClaimNextPending(ctx, "pod-dead")
		require.NoError(t, err)
		require.NotNil(t, stale)

		// Simulate a worker that stopped heartbeating ten minutes ago.
		err = client.PipelineRun.UpdateOneID(stale.ID).
			SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.Create(ctx, models.TriggerScheduled)
		require.NoError(t, err)
		healthy, err := service.ClaimNextPending(ctx, "pod-live")
		require.NoError(t, err)
		require.NotNil(t, healthy)

		recovered, err := service.RecoverOrphaned(ctx, 2*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, recovered)

		staleRow, err := service.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusAborted, staleRow.Status)
		require.NotNil(t, staleRow.ErrorMessage)
		assert.Contains(t, *staleRow.ErrorMessage, "heartbeat")
		assert.Nil(t, staleRow.ErrorCategory)

		healthyRow, err := service.Get(ctx, healthy.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusSelecting, healthyRow.Status)
	})

	t.Run("ignores pending runs, which have no heartbeat", func(t *testing.T) {
		pending, err := service.Create(ctx, models.TriggerScheduled)
		require.NoError(t, err)

		recovered, err := service.RecoverOrphaned(ctx, 2*time.Minute)
		require.NoError(t, err)
		assert.Zero(t, recovered)

		row, err := service.Get(ctx, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusPending, row.Status)
	})

	t.Run("rejects a non-positive threshold", func(t *testing.T) {
		_, err := service.RecoverOrphaned(ctx, 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
