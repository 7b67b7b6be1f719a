package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

// TestE2E_MixedBatch_SingleRun drives one run over ten titles that the map
// stage splits into two incidents and three orphans, all classified under
// the same theater and event type, so everything folds into one EF.
func TestE2E_MixedBatch_SingleRun(t *testing.T) {
	ctx := context.Background()
	app := NewTestApp(t)

	// MapBatchSize is 5: ids[0:5] form shard one, ids[5:10] shard two.
	ids := app.SeedTitles(10)
	app.LLM.RouteMap(ids[0], MapReply([]string{ids[0], ids[1], ids[2], ids[3]}))
	app.LLM.RouteMap(ids[5], MapReply([]string{ids[5], ids[6], ids[7]}))
	// One reduce call per incident, one per orphan singleton.
	for _, id := range []string{ids[0], ids[5], ids[4], ids[8], ids[9]} {
		app.LLM.RouteReduce(id, ReduceReply("EUROPE", "DIPLOMACY"))
	}

	run, err := app.RunPipeline(ctx)
	require.NoError(t, err)

	assert.Equal(t, pipelinerun.StatusDone, run.Status)
	assert.Equal(t, 10, run.TitlesSelected)
	assert.Equal(t, 2, run.ShardsTotal)
	assert.Equal(t, 0, run.ShardsFailed)
	assert.Equal(t, 2, run.IncidentsMapped)
	assert.Equal(t, 3, run.OrphansMapped)
	assert.Equal(t, 5, run.CandidatesReduced)
	assert.Equal(t, 0, run.ReduceDrops)
	assert.Equal(t, 1, run.EfsCreated)
	assert.Equal(t, 0, run.EfsUpdated)
	assert.Equal(t, 10, run.TitlesAssigned)

	efs := app.ActiveEFs(ctx)
	require.Len(t, efs, 1)
	ef := efs[0]
	assert.Equal(t, "EUROPE", ef.Theater)
	assert.Equal(t, "DIPLOMACY", ef.EventType)
	assert.Equal(t, pipeline.ComputeEFKey("EUROPE", "DIPLOMACY"), ef.EfKey)
	assert.Equal(t, 10, ef.TitleCount)
	assert.False(t, ef.SingletonOrigin)
	assert.InDelta(t, 0.9, ef.Confidence, 0.01)

	members := MemberTitleIDs(ef)
	for _, id := range ids {
		assert.True(t, members[id], "title %s missing from the EF", id)
		assert.Equal(t, ef.ID, app.AssignedEF(ctx, id))
	}

	// All four absorptions happened in one run, so they aggregate into a
	// single lineage entry: the second incident plus three singletons.
	require.Len(t, ef.Lineage, 1)
	entry := ef.Lineage[0]
	assert.Equal(t, run.ID, entry.RunID)
	assert.Equal(t, 10, entry.TitleCountAfter)
	require.Len(t, entry.Absorbed, 4)
	singletons := 0
	for _, ref := range entry.Absorbed {
		assert.Equal(t, models.SourceKindCandidate, ref.SourceKind)
		if ref.Singleton {
			singletons++
		}
	}
	assert.Equal(t, 3, singletons)
}

// TestE2E_CrossBatchMerge_SecondRunUpdatesExistingEF runs two batches about
// the same event. The second run's candidate must merge into the EF the
// first run created instead of opening a duplicate.
func TestE2E_CrossBatchMerge_SecondRunUpdatesExistingEF(t *testing.T) {
	ctx := context.Background()
	app := NewTestApp(t)

	first := app.SeedTitles(3)
	app.LLM.RouteMap(first[0], MapReply(first))
	app.LLM.RouteReduce(first[0], ReduceReply("MIDEAST", "MILITARY_OP"))

	run1, err := app.RunPipeline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, run1.EfsCreated)
	assert.Equal(t, 3, run1.TitlesAssigned)

	created := app.ActiveEFs(ctx)
	require.Len(t, created, 1)
	efID := created[0].ID
	assert.Equal(t, 3, created[0].TitleCount)
	// A single candidate adopted as new absorbs nothing.
	assert.Empty(t, created[0].Lineage)

	second := []string{
		app.SeedTitle("strike follow-up coverage", seedBase.Add(30*time.Minute)),
		app.SeedTitle("casualty figures revised", seedBase.Add(29*time.Minute)),
	}
	app.LLM.RouteMap(second[0], MapReply(second))
	app.LLM.RouteReduce(second[0], ReduceReply("MIDEAST", "MILITARY_OP"))

	run2, err := app.RunPipeline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, run2.TitlesSelected)
	assert.Equal(t, 0, run2.EfsCreated)
	assert.Equal(t, 1, run2.EfsUpdated)
	assert.Equal(t, 2, run2.TitlesAssigned)

	efs := app.ActiveEFs(ctx)
	require.Len(t, efs, 1)
	ef := efs[0]
	assert.Equal(t, efID, ef.ID)
	assert.Equal(t, 5, ef.TitleCount)
	for _, id := range append(first, second...) {
		assert.Equal(t, ef.ID, app.AssignedEF(ctx, id))
	}
	// First-seen stays anchored at the earliest batch-one title.
	assert.WithinDuration(t, seedBase.Add(-2*time.Minute), ef.FirstSeenAt, time.Second)

	require.Len(t, ef.Lineage, 1)
	entry := ef.Lineage[0]
	assert.Equal(t, run2.ID, entry.RunID)
	assert.Equal(t, 5, entry.TitleCountAfter)
	require.Len(t, entry.Absorbed, 1)
	assert.Equal(t, models.SourceKindCandidate, entry.Absorbed[0].SourceKind)
	assert.Equal(t, 2, entry.Absorbed[0].TitlesAdded)
}

// TestE2E_ShardFailure_ContainedAsOrphans exhausts one map shard's retry
// budget. Its titles must fall through as orphans, get classified as
// singletons (here with an off-vocabulary theater that lands on the
// fallback), and the run still finishes done.
func TestE2E_ShardFailure_ContainedAsOrphans(t *testing.T) {
	ctx := context.Background()
	app := NewTestApp(t)

	ids := app.SeedTitles(10)
	app.LLM.RouteMap(ids[0], MapReply([]string{ids[0], ids[1], ids[2], ids[3], ids[4]}))
	app.LLM.RouteMap(ids[5], ScriptEntry{Err: &llm.Error{
		StatusCode: 503,
		Message:    "upstream overloaded",
		Retryable:  true,
	}})
	app.LLM.RouteReduce(ids[0], ReduceReply("EUROPE", "DIPLOMACY"))
	for _, id := range ids[5:] {
		// Off-vocabulary theater: the reducer substitutes GLOBAL and
		// applies the confidence penalty.
		app.LLM.RouteReduce(id, ReduceReply("Atlantis", "DIPLOMACY"))
	}

	run, err := app.RunPipeline(ctx)
	require.NoError(t, err)

	assert.Equal(t, pipelinerun.StatusDone, run.Status)
	assert.Equal(t, 2, run.ShardsTotal)
	assert.Equal(t, 1, run.ShardsFailed)
	assert.Equal(t, 1, run.IncidentsMapped)
	assert.Equal(t, 5, run.OrphansMapped)
	assert.Equal(t, 6, run.CandidatesReduced)
	assert.Equal(t, 0, run.ReduceDrops)
	assert.Equal(t, 2, run.EfsCreated)
	assert.Equal(t, 10, run.TitlesAssigned)

	efs := app.ActiveEFs(ctx)
	require.Len(t, efs, 2)
	var europe, fallback *ent.EventFamily
	for _, ef := range efs {
		switch ef.Theater {
		case "EUROPE":
			europe = ef
		case models.FallbackTheater:
			fallback = ef
		}
	}
	require.NotNil(t, europe)
	require.NotNil(t, fallback)

	assert.Equal(t, 5, europe.TitleCount)
	assert.InDelta(t, 0.9, europe.Confidence, 0.01)
	for _, id := range ids[:5] {
		assert.Equal(t, europe.ID, app.AssignedEF(ctx, id))
	}

	assert.Equal(t, 5, fallback.TitleCount)
	assert.Equal(t, "DIPLOMACY", fallback.EventType)
	assert.True(t, fallback.SingletonOrigin)
	assert.InDelta(t, 0.75, fallback.Confidence, 0.01)
	for _, id := range ids[5:] {
		assert.Equal(t, fallback.ID, app.AssignedEF(ctx, id))
	}
	require.Len(t, fallback.Lineage, 1)
	assert.Len(t, fallback.Lineage[0].Absorbed, 4)
}

// TestE2E_FoldTieBreak_DeterministicAcrossRuns replays identical inputs in
// two fresh schemas. The two same-key candidates tie on title count and
// first-seen, so the fold target comes down to the title-set hash, which
// must pick the same winner both times.
func TestE2E_FoldTieBreak_DeterministicAcrossRuns(t *testing.T) {
	ids := []string{
		"1f7a3c9e-0000-4000-8000-000000000001",
		"1f7a3c9e-0000-4000-8000-000000000002",
		"1f7a3c9e-0000-4000-8000-000000000003",
		"1f7a3c9e-0000-4000-8000-000000000004",
	}
	// Both pairs bottom out at seedBase-3m, forcing the hash tie-break.
	published := []time.Time{
		seedBase,
		seedBase.Add(-3 * time.Minute),
		seedBase.Add(-1 * time.Minute),
		seedBase.Add(-3 * time.Minute),
	}

	runOnce := func() *ent.EventFamily {
		ctx := context.Background()
		app := NewTestApp(t)
		for i, id := range ids {
			app.SeedTitleWithID(id, fmt.Sprintf("tie title %d", i), published[i])
		}
		app.LLM.RouteMap(ids[0], MapReply(
			[]string{ids[0], ids[1]},
			[]string{ids[2], ids[3]},
		))
		app.LLM.RouteReduce(ids[0], ScriptEntry{JSON: prompt.ReduceResponse{
			Theater:    "ASIA_PAC",
			EventType:  "CYBER",
			Headline:   "first pair headline",
			Summary:    "first pair",
			Confidence: 0.9,
		}})
		app.LLM.RouteReduce(ids[2], ScriptEntry{JSON: prompt.ReduceResponse{
			Theater:    "ASIA_PAC",
			EventType:  "CYBER",
			Headline:   "second pair headline",
			Summary:    "second pair",
			Confidence: 0.9,
		}})

		run, err := app.RunPipeline(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, run.EfsCreated)

		efs := app.ActiveEFs(ctx)
		require.Len(t, efs, 1)
		require.Equal(t, 4, efs[0].TitleCount)
		return efs[0]
	}

	a := runOnce()
	b := runOnce()

	// The fold winner keeps its headline, so equal headlines mean the
	// same candidate won in both schemas.
	assert.Equal(t, a.Headline, b.Headline)
	assert.Equal(t, a.Summary, b.Summary)
	assert.Equal(t, MemberTitleIDs(a), MemberTitleIDs(b))
	require.Len(t, a.Lineage, 1)
	require.Len(t, b.Lineage, 1)
	require.Len(t, a.Lineage[0].Absorbed, 1)
	require.Len(t, b.Lineage[0].Absorbed, 1)
	assert.Equal(t, a.Lineage[0].Absorbed[0].TitleCount, b.Lineage[0].Absorbed[0].TitleCount)
}

// TestE2E_SplitSiblings_MergeIntoCanonicalTarget seeds two active EFs that
// share an ef_key because they are siblings of one split. A new candidate
// with that key must merge into the canonical target (largest first) and
// leave the other sibling untouched.
func TestE2E_SplitSiblings_MergeIntoCanonicalTarget(t *testing.T) {
	ctx := context.Background()
	app := NewTestApp(t)

	parent := uuid.New().String()
	bigTitles := []string{
		app.SeedTitle("offensive begins", seedBase.Add(-2*time.Hour)),
		app.SeedTitle("offensive widens", seedBase.Add(-119*time.Minute)),
		app.SeedTitle("offensive continues", seedBase.Add(-118*time.Minute)),
	}
	smallTitles := []string{
		app.SeedTitle("naval blockade reported", seedBase.Add(-90*time.Minute)),
		app.SeedTitle("blockade condemned", seedBase.Add(-89*time.Minute)),
	}
	big := app.SeedEF(ctx, "MIDEAST", "MILITARY_OP", bigTitles, seedBase.Add(-2*time.Hour), &parent)
	small := app.SeedEF(ctx, "MIDEAST", "MILITARY_OP", smallTitles, seedBase.Add(-90*time.Minute), &parent)

	fresh := []string{
		app.SeedTitle("ceasefire talks collapse", seedBase),
		app.SeedTitle("front line shifts again", seedBase.Add(-time.Minute)),
	}
	app.LLM.RouteMap(fresh[0], MapReply(fresh))
	app.LLM.RouteReduce(fresh[0], ReduceReply("MIDEAST", "MILITARY_OP"))

	run, err := app.RunPipeline(ctx)
	require.NoError(t, err)
	// Seeded titles are already assigned; only the fresh pair selects.
	assert.Equal(t, 2, run.TitlesSelected)
	assert.Equal(t, 0, run.EfsCreated)
	assert.Equal(t, 1, run.EfsUpdated)
	assert.Equal(t, 2, run.TitlesAssigned)

	efs := app.ActiveEFs(ctx)
	require.Len(t, efs, 2)
	byID := make(map[string]*ent.EventFamily, len(efs))
	for _, ef := range efs {
		byID[ef.ID] = ef
	}
	target := byID[big.ID]
	untouched := byID[small.ID]
	require.NotNil(t, target)
	require.NotNil(t, untouched)

	assert.Equal(t, 5, target.TitleCount)
	members := MemberTitleIDs(target)
	for _, id := range fresh {
		assert.True(t, members[id], "fresh title %s missing from the target sibling", id)
	}
	require.Len(t, target.Lineage, 1)
	assert.Equal(t, run.ID, target.Lineage[0].RunID)
	require.NotNil(t, target.ParentEfID)
	assert.Equal(t, parent, *target.ParentEfID)

	assert.Equal(t, 2, untouched.TitleCount)
	assert.Equal(t, eventfamily.StatusActive, untouched.Status)
	assert.Empty(t, untouched.Lineage)
	require.NotNil(t, untouched.ParentEfID)
	assert.Equal(t, parent, *untouched.ParentEfID)
}

// TestE2E_Replay_NoNewTitles_NoChanges reruns the pipeline with nothing
// left to select. The rerun must finish done without touching the LLM or
// any stored EF.
func TestE2E_Replay_NoNewTitles_NoChanges(t *testing.T) {
	ctx := context.Background()
	app := NewTestApp(t)

	ids := app.SeedTitles(5)
	app.LLM.RouteMap(ids[0], MapReply(ids))
	app.LLM.RouteReduce(ids[0], ReduceReply("AFRICA", "ENERGY"))

	run1, err := app.RunPipeline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, run1.EfsCreated)

	before := app.ActiveEFs(ctx)
	require.Len(t, before, 1)
	callsBefore := app.LLM.CallCount()

	run2, err := app.RunPipeline(ctx)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusDone, run2.Status)
	assert.Zero(t, run2.TitlesSelected)
	assert.Zero(t, run2.ShardsTotal)
	assert.Zero(t, run2.EfsCreated)
	assert.Zero(t, run2.EfsUpdated)
	assert.Zero(t, run2.TitlesAssigned)
	assert.Equal(t, callsBefore, app.LLM.CallCount())

	after := app.ActiveEFs(ctx)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, 5, after[0].TitleCount)
	assert.Empty(t, after[0].Lineage)
	assert.True(t, after[0].LastUpdatedAt.Equal(before[0].LastUpdatedAt))
}
