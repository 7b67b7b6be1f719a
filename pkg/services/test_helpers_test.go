package services

import (
	"context"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// seedTitle inserts a gate-approved, unassigned title and returns its id.
func seedTitle(t *testing.T, client *ent.Client, publishedAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	err := client.Title.Create().
		SetID(id).
		SetURLHash(uuid.New().String()).
		SetTitleText("seed title " + id[:8]).
		SetLang("en").
		SetSourceName("reuters").
		SetPublishedAt(publishedAt).
		SetGateKeep(true).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

// newCandidate builds an unpersisted survivor the way the merge engine
// hands them to the store: provisional uuid, member titles, no lineage.
func newCandidate(theater, eventType, runID string, titleIDs []string, firstSeen time.Time) *models.EventFamily {
	id := uuid.New().String()
	return &models.EventFamily{
		ID:        id,
		EFKey:     pipeline.ComputeEFKey(theater, eventType),
		Theater:   theater,
		EventType: eventType,
		Headline:  theater + " " + eventType + " headline " + id[:8],
		Summary:   "summary " + id[:8],
		Actors:    []string{"Germany", "France"},
		Tags:      []string{"sanctions"},
		Timeline: []models.TimelineEntry{
			{Timestamp: firstSeen, Description: "first report", SourceTitleIDs: titleIDs},
		},
		Confidence:     0.8,
		TitleIDs:       titleIDs,
		FirstSeenAt:    firstSeen,
		LastUpdatedAt:  time.Now().UTC(),
		CreatedByRunID: runID,
		UpdatedByRunID: runID,
	}
}

// absorbedInto appends a lineage entry recording that source was folded
// into survivor during runID, mirroring what MergeInto writes.
func absorbedInto(survivor, source *models.EventFamily, runID string, titlesAdded int) {
	survivor.Lineage = append(survivor.Lineage, models.LineageEntry{
		RunID:    runID,
		MergedAt: time.Now().UTC(),
		Absorbed: []models.AbsorbedRef{
			{
				SourceID:    source.ID,
				SourceKind:  source.SourceKind(),
				TitleCount:  source.TitleCount(),
				TitlesAdded: titlesAdded,
				Singleton:   source.SingletonOrigin,
			},
		},
		TitleCountAfter: survivor.TitleCount(),
	})
	survivor.UpdatedByRunID = runID
}
