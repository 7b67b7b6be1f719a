package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
)

// TestE2E_CancelMidRun_RecordsCancelledStatus parks the map call until the
// run context is cancelled, then checks the run lands cancelled with its
// partial counters and that nothing was persisted.
func TestE2E_CancelMidRun_RecordsCancelledStatus(t *testing.T) {
	app := NewTestApp(t)
	ids := app.SeedTitles(3)

	blocked := make(chan struct{}, 1)
	app.LLM.RouteMap(ids[0], ScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	run, err := app.Runs.Create(context.Background(), models.TriggerCLI)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- app.Orchestrator.Execute(ctx, run.ID) }()

	select {
	case <-blocked:
	case <-time.After(30 * time.Second):
		t.Fatal("map call never started")
	}
	cancel()

	var execErr error
	select {
	case execErr = <-errCh:
	case <-time.After(30 * time.Second):
		t.Fatal("run did not finish after cancellation")
	}
	require.Error(t, execErr)
	assert.Equal(t, models.ErrorCategoryCanceled, pipeline.Categorize(execErr))

	refreshed, err := app.Runs.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCancelled, refreshed.Status)
	require.NotNil(t, refreshed.ErrorCategory)
	assert.Equal(t, pipelinerun.ErrorCategoryCanceled, *refreshed.ErrorCategory)
	assert.NotNil(t, refreshed.CompletedAt)

	// Selection finished before the block, persistence never ran.
	assert.Equal(t, 3, refreshed.TitlesSelected)
	assert.Zero(t, refreshed.EfsCreated)
	assert.Zero(t, refreshed.TitlesAssigned)

	assert.Empty(t, app.ActiveEFs(context.Background()))
	for _, id := range ids {
		assert.Empty(t, app.AssignedEF(context.Background(), id), "title %s must stay unassigned", id)
	}
}
