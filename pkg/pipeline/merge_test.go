package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

var mergeNow = time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)

func candidateEF(id, theater, eventType string, titleIDs []string, opts ...func(*models.EventFamily)) *models.EventFamily {
	ef := &models.EventFamily{
		ID:              id,
		EFKey:           ComputeEFKey(theater, eventType),
		Theater:         theater,
		EventType:       eventType,
		Headline:        "Headline " + id,
		Summary:         "Summary " + id,
		Confidence:      0.8,
		TitleIDs:        titleIDs,
		SingletonOrigin: len(titleIDs) == 1,
		FirstSeenAt:     time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(ef)
	}
	return ef
}

func withFirstSeen(ts time.Time) func(*models.EventFamily) {
	return func(ef *models.EventFamily) { ef.FirstSeenAt = ts }
}

func withPersisted() func(*models.EventFamily) {
	return func(ef *models.EventFamily) { ef.Persisted = true }
}

func withParent(parent string) func(*models.EventFamily) {
	return func(ef *models.EventFamily) { ef.ParentEFID = &parent }
}

func entry(ts time.Time, desc string, sources ...string) models.TimelineEntry {
	return models.TimelineEntry{Timestamp: ts, Description: desc, SourceTitleIDs: sources}
}

func TestFoldCandidates_GroupsByKey(t *testing.T) {
	a := candidateEF("ef-a", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
	b := candidateEF("ef-b", "EUROPE", "MILITARY_OP", []string{"t-3"})
	c := candidateEF("ef-c", "MIDEAST", "DIPLOMACY", []string{"t-4"})

	survivors := FoldCandidates([]*models.EventFamily{a, b, c}, "run-1", mergeNow)

	require.Len(t, survivors, 2)
	// Output is sorted by ef_key; MIDEAST|DIPLOMACY hashes lower.
	assert.Equal(t, "ef-c", survivors[0].ID)
	assert.Equal(t, "ef-a", survivors[1].ID)
	assert.ElementsMatch(t, []string{"t-1", "t-2", "t-3"}, survivors[1].TitleIDs)
	assert.Equal(t, 3, survivors[1].TitleCount())
}

func TestFoldCandidates_OrderIndependent(t *testing.T) {
	build := func() []*models.EventFamily {
		return []*models.EventFamily{
			candidateEF("ef-big", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2", "t-3"}),
			candidateEF("ef-mid", "EUROPE", "MILITARY_OP", []string{"t-4", "t-5"}),
			candidateEF("ef-small", "EUROPE", "MILITARY_OP", []string{"t-6"}),
		}
	}
	forward := FoldCandidates(build(), "run-1", mergeNow)

	reversed := build()
	reversed[0], reversed[2] = reversed[2], reversed[0]
	backward := FoldCandidates(reversed, "run-1", mergeNow)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, "ef-big", forward[0].ID)
	assert.Equal(t, forward[0].ID, backward[0].ID)
	assert.Equal(t, forward[0].TitleIDs, backward[0].TitleIDs)
	assert.Equal(t, forward[0].Confidence, backward[0].Confidence)
}

func TestFoldCandidates_TieBreaks(t *testing.T) {
	t.Run("earlier first seen wins at equal size", func(t *testing.T) {
		early := candidateEF("ef-early", "EUROPE", "CYBER", []string{"t-1"},
			withFirstSeen(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
		late := candidateEF("ef-late", "EUROPE", "CYBER", []string{"t-2"},
			withFirstSeen(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)))

		survivors := FoldCandidates([]*models.EventFamily{late, early}, "run-1", mergeNow)
		require.Len(t, survivors, 1)
		assert.Equal(t, "ef-early", survivors[0].ID)
	})

	t.Run("title set hash breaks full ties", func(t *testing.T) {
		seen := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		a := candidateEF("ef-1", "EUROPE", "CYBER", []string{"t-a"}, withFirstSeen(seen))
		b := candidateEF("ef-2", "EUROPE", "CYBER", []string{"t-b"}, withFirstSeen(seen))

		// sha256("t-b") < sha256("t-a") lexicographically, so ef-2 survives
		// regardless of input order.
		forward := FoldCandidates([]*models.EventFamily{a, b}, "run-1", mergeNow)
		backward := FoldCandidates([]*models.EventFamily{b, a}, "run-1", mergeNow)
		require.Len(t, forward, 1)
		assert.Equal(t, "ef-2", forward[0].ID)
		assert.Equal(t, "ef-2", backward[0].ID)
	})
}

func TestMergeInto_UnionsAndWeightsConfidence(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2", "t-3"})
	survivor.Confidence = 0.8
	survivor.Actors = []string{"Alpha", "Bravo"}
	survivor.Tags = []string{"strikes"}

	source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-3", "t-4"})
	source.Confidence = 0.5
	source.Actors = []string{"Bravo", "Charlie"}
	source.Tags = []string{"strikes", "energy-grid"}

	merged := MergeInto(survivor, source, "run-1", mergeNow)

	assert.Equal(t, []string{"t-1", "t-2", "t-3", "t-4"}, merged.TitleIDs)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, merged.Actors)
	assert.Equal(t, []string{"strikes", "energy-grid"}, merged.Tags)
	// (0.8*3 + 0.5*2) / 5, weighted by pre-merge title counts.
	assert.InDelta(t, 0.68, merged.Confidence, 1e-9)
	assert.Equal(t, 4, merged.TitleCount())
	assert.Equal(t, mergeNow, merged.LastUpdatedAt)
	assert.Equal(t, "run-1", merged.UpdatedByRunID)
}

func TestMergeInto_TimelineMergeAndDedup(t *testing.T) {
	t1 := time.Date(2025, 11, 1, 6, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 11, 2, 6, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC)

	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"})
	survivor.Timeline = []models.TimelineEntry{
		entry(t1, "First strike reported", "t-1"),
		entry(t3, "Follow-up attack"),
	}
	source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-2"})
	source.Timeline = []models.TimelineEntry{
		entry(t1, "First strike reported", "t-2"),
		entry(t2, "Emergency session convened"),
	}

	merged := MergeInto(survivor, source, "run-1", mergeNow)

	require.Len(t, merged.Timeline, 3)
	assert.Equal(t, "First strike reported", merged.Timeline[0].Description)
	assert.Equal(t, "Emergency session convened", merged.Timeline[1].Description)
	assert.Equal(t, "Follow-up attack", merged.Timeline[2].Description)
	for i := 1; i < len(merged.Timeline); i++ {
		assert.False(t, merged.Timeline[i].Timestamp.Before(merged.Timeline[i-1].Timestamp))
	}
	// The duplicate keeps the survivor's source attribution.
	assert.Equal(t, []string{"t-1"}, merged.Timeline[0].SourceTitleIDs)
}

func TestMergeInto_HeadlinePreference(t *testing.T) {
	t.Run("singleton survivor upgrades to non-singleton prose", func(t *testing.T) {
		survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"})
		source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-2", "t-3"})

		merged := MergeInto(survivor, source, "run-1", mergeNow)
		assert.Equal(t, source.Headline, merged.Headline)
		assert.Equal(t, source.Summary, merged.Summary)
		assert.False(t, merged.SingletonOrigin)
	})

	t.Run("non-singleton survivor keeps its prose", func(t *testing.T) {
		survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
		source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-3", "t-4"})

		merged := MergeInto(survivor, source, "run-1", mergeNow)
		assert.Equal(t, survivor.Headline, merged.Headline)
		assert.Equal(t, survivor.Summary, merged.Summary)
	})

	t.Run("singleton absorbing singleton keeps survivor prose", func(t *testing.T) {
		survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"})
		source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-2"})

		merged := MergeInto(survivor, source, "run-1", mergeNow)
		assert.Equal(t, survivor.Headline, merged.Headline)
		assert.True(t, merged.SingletonOrigin)
	})
}

func TestMergeInto_NoOpAbsorption(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
	survivor.Timeline = []models.TimelineEntry{
		entry(time.Date(2025, 11, 1, 6, 0, 0, 0, time.UTC), "First strike reported"),
	}
	source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
	source.Timeline = append([]models.TimelineEntry{}, survivor.Timeline...)
	source.Actors = []string{"Different Actor"}

	merged := MergeInto(survivor, source, "run-2", mergeNow)

	assert.Same(t, survivor, merged)
	assert.Empty(t, merged.Lineage)
	assert.True(t, merged.LastUpdatedAt.IsZero())
}

func TestMergeInto_SelfMergeIsNoOp(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"})
	assert.Same(t, survivor, MergeInto(survivor, survivor, "run-1", mergeNow))
}

func TestMergeInto_LineageAggregatesPerRun(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
	first := candidateEF("ef-c1", "EUROPE", "MILITARY_OP", []string{"t-3"})
	second := candidateEF("ef-c2", "EUROPE", "MILITARY_OP", []string{"t-4"}, withPersisted())

	merged := MergeInto(survivor, first, "run-1", mergeNow)
	merged = MergeInto(merged, second, "run-1", mergeNow)

	require.Len(t, merged.Lineage, 1)
	lineage := merged.Lineage[0]
	assert.Equal(t, "run-1", lineage.RunID)
	assert.Equal(t, 4, lineage.TitleCountAfter)
	require.Len(t, lineage.Absorbed, 2)
	assert.Equal(t, "ef-c1", lineage.Absorbed[0].SourceID)
	assert.Equal(t, models.SourceKindCandidate, lineage.Absorbed[0].SourceKind)
	assert.True(t, lineage.Absorbed[0].Singleton)
	assert.Equal(t, "ef-c2", lineage.Absorbed[1].SourceID)
	assert.Equal(t, models.SourceKindStored, lineage.Absorbed[1].SourceKind)

	// A later run opens a new entry.
	third := candidateEF("ef-c3", "EUROPE", "MILITARY_OP", []string{"t-5"})
	merged = MergeInto(merged, third, "run-2", mergeNow.Add(time.Hour))
	require.Len(t, merged.Lineage, 2)
	assert.Equal(t, "run-2", merged.Lineage[1].RunID)
	assert.Equal(t, 5, merged.Lineage[1].TitleCountAfter)
}

func TestMergeInto_DoesNotMutateInputs(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"})
	survivor.Actors = []string{"Alpha"}
	survivor.Timeline = []models.TimelineEntry{
		entry(time.Date(2025, 11, 1, 6, 0, 0, 0, time.UTC), "First strike reported"),
	}
	source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-2"})
	source.Actors = []string{"Bravo"}

	merged := MergeInto(survivor, source, "run-1", mergeNow)

	assert.NotSame(t, survivor, merged)
	assert.Equal(t, []string{"t-1"}, survivor.TitleIDs)
	assert.Equal(t, []string{"Alpha"}, survivor.Actors)
	assert.Empty(t, survivor.Lineage)
	assert.True(t, survivor.LastUpdatedAt.IsZero())
	assert.Equal(t, []string{"t-2"}, source.TitleIDs)
}

func TestMergeInto_FirstSeenKeepsEarliest(t *testing.T) {
	survivor := candidateEF("ef-s", "EUROPE", "MILITARY_OP", []string{"t-1"},
		withFirstSeen(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)))
	source := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-2"},
		withFirstSeen(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))

	merged := MergeInto(survivor, source, "run-1", mergeNow)
	assert.Equal(t, source.FirstSeenAt, merged.FirstSeenAt)
}

func TestResolveAgainstStore_NewEF(t *testing.T) {
	candidate := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-1"})

	survivor, err := ResolveAgainstStore(candidate, nil, "run-1", mergeNow)

	require.NoError(t, err)
	assert.Equal(t, "ef-c", survivor.ID)
	assert.False(t, survivor.Persisted)
	assert.Equal(t, "run-1", survivor.CreatedByRunID)
	assert.Equal(t, "run-1", survivor.UpdatedByRunID)
	assert.Equal(t, mergeNow, survivor.LastUpdatedAt)
}

func TestResolveAgainstStore_MergesIntoStored(t *testing.T) {
	stored := candidateEF("ef-stored", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"}, withPersisted())
	candidate := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-3"})

	survivor, err := ResolveAgainstStore(candidate, []*models.EventFamily{stored}, "run-1", mergeNow)

	require.NoError(t, err)
	assert.Equal(t, "ef-stored", survivor.ID)
	assert.True(t, survivor.Persisted)
	assert.ElementsMatch(t, []string{"t-1", "t-2", "t-3"}, survivor.TitleIDs)
	require.Len(t, survivor.Lineage, 1)
	assert.Equal(t, "ef-c", survivor.Lineage[0].Absorbed[0].SourceID)
}

func TestResolveAgainstStore_SiblingsDoNotMerge(t *testing.T) {
	stored := candidateEF("ef-sib-a", "EUROPE", "MILITARY_OP", []string{"t-1"},
		withPersisted(), withParent("ef-parent"))
	candidate := candidateEF("ef-sib-b", "EUROPE", "MILITARY_OP", []string{"t-2"},
		withParent("ef-parent"))

	survivor, err := ResolveAgainstStore(candidate, []*models.EventFamily{stored}, "run-1", mergeNow)

	require.NoError(t, err)
	assert.Equal(t, "ef-sib-b", survivor.ID)
	assert.False(t, survivor.Persisted)
	assert.Equal(t, []string{"t-2"}, survivor.TitleIDs)
}

func TestResolveAgainstStore_SiblingHitsPickDeterministicTarget(t *testing.T) {
	big := candidateEF("ef-sib-big", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2", "t-3"},
		withPersisted(), withParent("ef-parent"))
	small := candidateEF("ef-sib-small", "EUROPE", "MILITARY_OP", []string{"t-4"},
		withPersisted(), withParent("ef-parent"))
	candidate := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-5"})

	survivor, err := ResolveAgainstStore(candidate,
		[]*models.EventFamily{small, big}, "run-1", mergeNow)

	require.NoError(t, err)
	assert.Equal(t, "ef-sib-big", survivor.ID)
	assert.ElementsMatch(t, []string{"t-1", "t-2", "t-3", "t-5"}, survivor.TitleIDs)
}

func TestResolveAgainstStore_MultipleHitsWithoutCommonParent(t *testing.T) {
	a := candidateEF("ef-a", "EUROPE", "MILITARY_OP", []string{"t-1"}, withPersisted())
	b := candidateEF("ef-b", "EUROPE", "MILITARY_OP", []string{"t-2"}, withPersisted())
	candidate := candidateEF("ef-c", "EUROPE", "MILITARY_OP", []string{"t-3"})

	_, err := ResolveAgainstStore(candidate, []*models.EventFamily{a, b}, "run-1", mergeNow)

	var violation *InvariantViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, InvariantActiveKeyUnique, violation.Invariant)
	assert.Contains(t, violation.Detail, candidate.EFKey)
}

func TestVerifyDisjoint(t *testing.T) {
	t.Run("disjoint survivor sets pass", func(t *testing.T) {
		a := candidateEF("ef-a", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
		b := candidateEF("ef-b", "MIDEAST", "DIPLOMACY", []string{"t-3"})
		assert.NoError(t, VerifyDisjoint([]*models.EventFamily{a, b}))
	})

	t.Run("shared title is a violation", func(t *testing.T) {
		a := candidateEF("ef-a", "EUROPE", "MILITARY_OP", []string{"t-1", "t-2"})
		b := candidateEF("ef-b", "MIDEAST", "DIPLOMACY", []string{"t-2"})

		err := VerifyDisjoint([]*models.EventFamily{a, b})
		var violation *InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, InvariantSingleAssignment, violation.Invariant)
		assert.Contains(t, violation.Detail, "t-2")
	})
}
