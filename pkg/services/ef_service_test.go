package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFamilyService_CommitSurvivor(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventFamilyService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)

	t.Run("creates a new EF and assigns its titles", func(t *testing.T) {
		titleIDs := []string{
			seedTitle(t, client.Client, base),
			seedTitle(t, client.Client, base.Add(time.Hour)),
			seedTitle(t, client.Client, base.Add(2*time.Hour)),
		}
		ef := newCandidate("EUROPE", "MILITARY_OP", "run-1", titleIDs, base)

		result, err := service.CommitSurvivor(ctx, ef, "run-1")
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 3, result.TitlesAssigned)
		assert.Empty(t, result.RetiredEFIDs)

		row, err := client.EventFamily.Get(ctx, ef.ID)
		require.NoError(t, err)
		assert.Equal(t, ef.EFKey, row.EfKey)
		assert.Equal(t, "EUROPE", row.Theater)
		assert.Equal(t, "MILITARY_OP", row.EventType)
		assert.Equal(t, eventfamily.StatusActive, row.Status)
		assert.Equal(t, 3, row.TitleCount)
		assert.Equal(t, "run-1", row.CreatedByRunID)
		assert.Equal(t, "run-1", row.UpdatedByRunID)
		assert.True(t, row.FirstSeenAt.Equal(base))

		assigned, err := client.Title.Query().
			Where(title.EventFamilyIDEQ(ef.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, assigned)

		// No merges happened, so no audit rows.
		auditRows, err := client.MergeEvent.Query().
			Where(mergeevent.SurvivorEfIDEQ(ef.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, auditRows)
	})

	t.Run("is idempotent on re-commit", func(t *testing.T) {
		titleIDs := []string{seedTitle(t, client.Client, base)}
		ef := newCandidate("EUROPE", "PROTEST", "run-1", titleIDs, base)

		first, err := service.CommitSurvivor(ctx, ef, "run-1")
		require.NoError(t, err)
		assert.True(t, first.Created)

		second, err := service.CommitSurvivor(ctx, ef, "run-1")
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Zero(t, second.TitlesAssigned)

		rows, err := client.EventFamily.Query().
			Where(eventfamily.EfKeyEQ(ef.EFKey)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, rows)
	})

	t.Run("merges a candidate into a stored EF", func(t *testing.T) {
		oldIDs := []string{
			seedTitle(t, client.Client, base),
			seedTitle(t, client.Client, base.Add(time.Hour)),
		}
		stored := newCandidate("MIDEAST", "DIPLOMACY", "run-1", oldIDs, base)
		_, err := service.CommitSurvivor(ctx, stored, "run-1")
		require.NoError(t, err)

		hits, err := service.ActiveByKey(ctx, stored.EFKey)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.True(t, hits[0].Persisted)

		newID := seedTitle(t, client.Client, base.Add(26*time.Hour))
		candidate := newCandidate("MIDEAST", "DIPLOMACY", "run-2", []string{newID}, base.Add(26*time.Hour))
		survivor := pipeline.MergeInto(hits[0], candidate, "run-2", time.Now().UTC())

		result, err := service.CommitSurvivor(ctx, survivor, "run-2")
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, 1, result.TitlesAssigned)
		assert.Empty(t, result.RetiredEFIDs)

		row, err := client.EventFamily.Get(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, row.TitleCount)
		assert.Equal(t, "run-1", row.CreatedByRunID)
		assert.Equal(t, "run-2", row.UpdatedByRunID)
		require.Len(t, row.Lineage, 1)
		assert.Equal(t, "run-2", row.Lineage[0].RunID)

		auditRows, err := client.MergeEvent.Query().
			Where(mergeevent.SurvivorEfIDEQ(stored.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, auditRows, 1)
		assert.Equal(t, mergeevent.SourceKindCandidate, auditRows[0].SourceKind)
		assert.Equal(t, candidate.ID, auditRows[0].SourceID)
		assert.Equal(t, 1, auditRows[0].TitlesAdded)
	})

	t.Run("rejects a member title owned by an unrelated EF", func(t *testing.T) {
		ownedID := seedTitle(t, client.Client, base)
		owner := newCandidate("ASIA", "SANCTIONS", "run-1", []string{ownedID}, base)
		_, err := service.CommitSurvivor(ctx, owner, "run-1")
		require.NoError(t, err)

		freeID := seedTitle(t, client.Client, base.Add(time.Hour))
		intruder := newCandidate("ASIA", "STRIKE", "run-2", []string{ownedID, freeID}, base)

		_, err = service.CommitSurvivor(ctx, intruder, "run-2")
		require.Error(t, err)

		var conflict *pipeline.ConflictingAssignmentError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ownedID, conflict.TitleID)
		assert.Equal(t, owner.ID, conflict.AssignedTo)
		assert.Equal(t, intruder.ID, conflict.WantEF)

		// The whole transaction rolled back: no intruder row, free title
		// still unassigned.
		exists, err := client.EventFamily.Query().
			Where(eventfamily.IDEQ(intruder.ID)).
			Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)

		freeRow, err := client.Title.Get(ctx, freeID)
		require.NoError(t, err)
		assert.Nil(t, freeRow.EventFamilyID)
	})

	t.Run("consolidates split siblings and retires the absorbed row", func(t *testing.T) {
		parentID := uuid.New().String()
		aIDs := []string{
			seedTitle(t, client.Client, base),
			seedTitle(t, client.Client, base.Add(time.Hour)),
			seedTitle(t, client.Client, base.Add(2*time.Hour)),
		}
		bIDs := []string{
			seedTitle(t, client.Client, base.Add(3*time.Hour)),
			seedTitle(t, client.Client, base.Add(4*time.Hour)),
		}

		a := newCandidate("GLOBAL", "CYBER_OP", "run-1", aIDs, base)
		a.ParentEFID = &parentID
		b := newCandidate("GLOBAL", "CYBER_OP", "run-1", bIDs, base.Add(3*time.Hour))
		b.ParentEFID = &parentID

		_, err := service.CommitSurvivor(ctx, a, "run-1")
		require.NoError(t, err)
		_, err = service.CommitSurvivor(ctx, b, "run-1")
		require.NoError(t, err)

		// Both siblings are active under one key; consolidate them the way
		// an operator-driven merge would, a as survivor.
		hits, err := service.ActiveByKey(ctx, a.EFKey)
		require.NoError(t, err)
		require.Len(t, hits, 2)

		survivor, source := hits[0], hits[1]
		if survivor.ID != a.ID {
			survivor, source = source, survivor
		}
		merged := pipeline.MergeInto(survivor, source, "run-2", time.Now().UTC())

		result, err := service.CommitSurvivor(ctx, merged, "run-2")
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Zero(t, result.TitlesAssigned)
		assert.Equal(t, []string{source.ID}, result.RetiredEFIDs)

		// The absorbed sibling is retired and empty; its titles moved.
		sourceRow, err := client.EventFamily.Get(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, eventfamily.StatusMerged, sourceRow.Status)
		require.NotNil(t, sourceRow.MergedIntoID)
		assert.Equal(t, survivor.ID, *sourceRow.MergedIntoID)

		moved, err := client.Title.Query().
			Where(title.EventFamilyIDEQ(source.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, moved)

		survivorTitles, err := client.Title.Query().
			Where(title.EventFamilyIDEQ(survivor.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, survivorTitles)

		// Only the survivor remains active under the key.
		active, err := service.ActiveByKey(ctx, a.EFKey)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, survivor.ID, active[0].ID)

		auditRows, err := client.MergeEvent.Query().
			Where(mergeevent.SurvivorEfIDEQ(survivor.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, auditRows, 1)
		assert.Equal(t, mergeevent.SourceKindStored, auditRows[0].SourceKind)
		assert.Equal(t, 2, auditRows[0].TitlesAdded)

		// Re-committing the consolidation changes nothing.
		again, err := service.CommitSurvivor(ctx, merged, "run-2")
		require.NoError(t, err)
		assert.False(t, again.Created)
		assert.Zero(t, again.TitlesAssigned)

		auditCount, err := client.MergeEvent.Query().
			Where(mergeevent.SurvivorEfIDEQ(survivor.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, auditCount)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CommitSurvivor(ctx, nil, "run-1")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		empty := newCandidate("EUROPE", "ELECTION", "run-1", nil, base)
		_, err = service.CommitSurvivor(ctx, empty, "run-1")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		withTitle := newCandidate("EUROPE", "ELECTION", "run-1", []string{seedTitle(t, client.Client, base)}, base)
		_, err = service.CommitSurvivor(ctx, withTitle, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestEventFamilyService_ActiveByKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventFamilyService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 2, 11, 6, 0, 0, 0, time.UTC)
	titleIDs := []string{
		seedTitle(t, client.Client, base),
		seedTitle(t, client.Client, base.Add(time.Hour)),
	}
	ef := newCandidate("EUROPE", "ENERGY", "run-1", titleIDs, base)
	_, err := service.CommitSurvivor(ctx, ef, "run-1")
	require.NoError(t, err)

	t.Run("returns active EFs with sorted member ids", func(t *testing.T) {
		hits, err := service.ActiveByKey(ctx, ef.EFKey)
		require.NoError(t, err)
		require.Len(t, hits, 1)

		got := hits[0]
		assert.Equal(t, ef.ID, got.ID)
		assert.True(t, got.Persisted)
		assert.Equal(t, "EUROPE", got.Theater)

		want := append([]string{}, titleIDs...)
		sort.Strings(want)
		assert.Equal(t, want, got.TitleIDs)
	})

	t.Run("empty for an unknown key", func(t *testing.T) {
		hits, err := service.ActiveByKey(ctx, pipeline.ComputeEFKey("GLOBAL", "OTHER"))
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestEventFamilyService_ResolveSurvivor(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventFamilyService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 2, 12, 6, 0, 0, 0, time.UTC)
	parentID := uuid.New().String()

	a := newCandidate("AFRICA", "COUP", "run-1", []string{seedTitle(t, client.Client, base)}, base)
	a.ParentEFID = &parentID
	b := newCandidate("AFRICA", "COUP", "run-1", []string{seedTitle(t, client.Client, base.Add(time.Hour))}, base)
	b.ParentEFID = &parentID
	_, err := service.CommitSurvivor(ctx, a, "run-1")
	require.NoError(t, err)
	_, err = service.CommitSurvivor(ctx, b, "run-1")
	require.NoError(t, err)

	hits, err := service.ActiveByKey(ctx, a.EFKey)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	survivor, source := hits[0], hits[1]
	merged := pipeline.MergeInto(survivor, source, "run-2", time.Now().UTC())
	_, err = service.CommitSurvivor(ctx, merged, "run-2")
	require.NoError(t, err)

	t.Run("active EF resolves to itself", func(t *testing.T) {
		row, err := service.ResolveSurvivor(ctx, survivor.ID)
		require.NoError(t, err)
		assert.Equal(t, survivor.ID, row.ID)
	})

	t.Run("merged EF resolves one hop", func(t *testing.T) {
		row, err := service.ResolveSurvivor(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, survivor.ID, row.ID)
	})

	t.Run("missing EF maps to ErrNotFound", func(t *testing.T) {
		_, err := service.ResolveSurvivor(ctx, uuid.New().String())
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("a second hop is an invariant violation", func(t *testing.T) {
		c := newCandidate("AFRICA", "ELECTION", "run-3", []string{seedTitle(t, client.Client, base)}, base)
		_, err := service.CommitSurvivor(ctx, c, "run-3")
		require.NoError(t, err)

		// Corrupt the forest by hand: survivor itself becomes merged.
		err = client.EventFamily.UpdateOneID(survivor.ID).
			SetStatus(eventfamily.StatusMerged).
			SetMergedIntoID(c.ID).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.ResolveSurvivor(ctx, source.ID)
		require.Error(t, err)

		var violation *pipeline.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, pipeline.InvariantLineageSingleHop, violation.Invariant)
	})
}

func TestEventFamilyService_ListActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventFamilyService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 2, 13, 6, 0, 0, 0, time.UTC)

	europe := newCandidate("EUROPE", "MILITARY_OP", "run-1", []string{seedTitle(t, client.Client, base)}, base)
	mideast := newCandidate("MIDEAST", "MILITARY_OP", "run-1", []string{seedTitle(t, client.Client, base)}, base)
	_, err := service.CommitSurvivor(ctx, europe, "run-1")
	require.NoError(t, err)
	_, err = service.CommitSurvivor(ctx, mideast, "run-1")
	require.NoError(t, err)

	t.Run("lists all active EFs", func(t *testing.T) {
		rows, err := service.ListActive(ctx, "", "", 10)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("filters by theater", func(t *testing.T) {
		rows, err := service.ListActive(ctx, "EUROPE", "", 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, europe.ID, rows[0].ID)
	})

	t.Run("filters by event type across theaters", func(t *testing.T) {
		rows, err := service.ListActive(ctx, "", "MILITARY_OP", 10)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
