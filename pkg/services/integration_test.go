package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	titleService := NewTitleService(client.Client)
	efService := NewEventFamilyService(client.Client)
	runService := NewRunService(client.Client)

	t.Run("full persistence lifecycle", func(t *testing.T) {
		// 1. Ingestion writes gate-approved titles.
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		var titleIDs []string
		for i := 0; i < 5; i++ {
			score := 0.8
			created, err := titleService.CreateTitle(ctx, models.CreateTitleRequest{
				URLHash:     uuid.New().String(),
				TitleText:   fmt.Sprintf("wire story %d", i),
				Lang:        "en",
				SourceName:  "reuters",
				PublishedAt: base.Add(time.Duration(i) * time.Hour),
				GateKeep:    true,
				GateScore:   &score,
			})
			require.NoError(t, err)
			titleIDs = append(titleIDs, created.ID)
		}

		// 2. A run is queued and claimed by a worker.
		queued, err := runService.Create(ctx, models.TriggerAPI)
		require.NoError(t, err)
		run, err := runService.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, run)
		require.Equal(t, queued.ID, run.ID)

		// 3. Selection sees all five titles, newest first.
		selected, err := titleService.SelectForPipeline(ctx, 50)
		require.NoError(t, err)
		require.Len(t, selected, 5)
		assert.Equal(t, titleIDs[4], selected[0].ID)

		// 4. The run moves through its phases.
		phases := []string{
			pipeline.StatusMapping,
			pipeline.StatusReducing,
			pipeline.StatusMerging,
			pipeline.StatusPersisting,
		}
		for _, phase := range phases {
			require.NoError(t, runService.UpdatePhase(ctx, run.ID, phase))
		}

		// 5. The first three titles persist as a fresh EF.
		first := newCandidate("EUROPE", "MILITARY_OP", run.ID, titleIDs[:3], base)
		result, err := efService.CommitSurvivor(ctx, first, run.ID)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 3, result.TitlesAssigned)

		// 6. Terminal bookkeeping.
		err = runService.Complete(ctx, run.ID, models.RunCounters{
			TitlesSelected:    5,
			ShardsTotal:       1,
			IncidentsMapped:   1,
			CandidatesReduced: 1,
			EFsCreated:        1,
			TitlesAssigned:    3,
		})
		require.NoError(t, err)

		// 7. The next selection only sees the two leftover titles.
		selected, err = titleService.SelectForPipeline(ctx, 50)
		require.NoError(t, err)
		require.Len(t, selected, 2)

		// 8. Cross-batch: the second run's candidate merges into the
		// stored EF, which survives.
		run2, err := runService.Create(ctx, models.TriggerScheduled)
		require.NoError(t, err)
		claimed2, err := runService.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed2)
		require.Equal(t, run2.ID, claimed2.ID)

		hits, err := efService.ActiveByKey(ctx, first.EFKey)
		require.NoError(t, err)
		require.Len(t, hits, 1)

		candidate := newCandidate("EUROPE", "MILITARY_OP", run2.ID,
			[]string{selected[0].ID, selected[1].ID}, base.Add(3*time.Hour))
		survivor := pipeline.MergeInto(hits[0], candidate, run2.ID, time.Now().UTC())

		result, err = efService.CommitSurvivor(ctx, survivor, run2.ID)
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, 2, result.TitlesAssigned)

		// 9. Store state: one EF holding all five titles, nothing left to
		// select.
		row, err := efService.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, row.TitleCount)
		assert.Equal(t, run.ID, row.CreatedByRunID)
		assert.Equal(t, run2.ID, row.UpdatedByRunID)

		count, err := titleService.CountUnassigned(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		err = runService.Complete(ctx, run2.ID, models.RunCounters{
			TitlesSelected:    2,
			ShardsTotal:       1,
			IncidentsMapped:   1,
			CandidatesReduced: 1,
			EFsUpdated:        1,
			TitlesAssigned:    2,
		})
		require.NoError(t, err)

		// 10. Run history shows both runs done.
		runs, err := runService.List(ctx, "done", 10)
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
