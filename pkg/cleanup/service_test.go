package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/database"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/services"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRunService(t *testing.T) (*database.Client, *services.RunService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewRunService(client.Client)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		RunRetentionDays: 90,
		CleanupInterval:  1 * time.Hour,
	}
}

func TestService_PrunesOldTerminalRuns(t *testing.T) {
	client, runService := setupRunService(t)
	ctx := context.Background()

	run, err := runService.Create(ctx, models.TriggerCLI)
	require.NoError(t, err)

	err = client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusDone).
		SetCompletedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), runService)
	svc.pruneRuns(ctx)

	_, err = runService.Get(ctx, run.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentRuns(t *testing.T) {
	client, runService := setupRunService(t)
	ctx := context.Background()

	run, err := runService.Create(ctx, models.TriggerCLI)
	require.NoError(t, err)

	err = client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusDone).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), runService)
	svc.pruneRuns(ctx)

	kept, err := runService.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusDone, kept.Status)
}

func TestService_PreservesNonTerminalRuns(t *testing.T) {
	client, runService := setupRunService(t)
	ctx := context.Background()

	run, err := runService.Create(ctx, models.TriggerCLI)
	require.NoError(t, err)

	// Only terminal statuses age out, however old the timestamps look.
	err = client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusSelecting).
		SetCompletedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), runService)
	svc.pruneRuns(ctx)

	kept, err := runService.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusSelecting, kept.Status)
}

func TestService_StartDisabledWithoutRetentionDays(t *testing.T) {
	_, runService := setupRunService(t)

	cfg := retentionConfig()
	cfg.RunRetentionDays = -1

	svc := NewService(cfg, runService)
	svc.Start(context.Background())
	// Stop must not block when the loop never started.
	svc.Stop()
}
