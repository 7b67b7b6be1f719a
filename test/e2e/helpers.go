package e2e

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
)

// seedBase anchors seeded published_at values. Titles are seeded newest
// first from here so selection order equals seed order.
var seedBase = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// SeedTitle inserts one gate-approved, unassigned title and returns its id.
func (app *TestApp) SeedTitle(text string, publishedAt time.Time) string {
	app.t.Helper()
	id := uuid.New().String()
	app.SeedTitleWithID(id, text, publishedAt)
	return id
}

// SeedTitleWithID inserts a gate-approved title under an explicit id.
// Deterministic ids pin down hash-based tie-breaks.
func (app *TestApp) SeedTitleWithID(id, text string, publishedAt time.Time) {
	app.t.Helper()
	err := app.Ent.Title.Create().
		SetID(id).
		SetURLHash(uuid.New().String()).
		SetTitleText(text).
		SetLang("en").
		SetSourceName("reuters").
		SetPublishedAt(publishedAt).
		SetGateKeep(true).
		Exec(context.Background())
	require.NoError(app.t, err)
}

// SeedTitles inserts count titles one minute apart, newest first, so the
// selector returns them in slice order. Returns ids in that order.
func (app *TestApp) SeedTitles(count int) []string {
	app.t.Helper()
	ids := make([]string, count)
	for i := range ids {
		ids[i] = app.SeedTitle(
			fmt.Sprintf("seed title %02d", i),
			seedBase.Add(-time.Duration(i)*time.Minute),
		)
	}
	return ids
}

// SeedEF persists an EF owning the given titles, seeding cross-batch store
// state. A non-nil parentID marks it as a split sibling.
func (app *TestApp) SeedEF(ctx context.Context, theater, eventType string, titleIDs []string, firstSeen time.Time, parentID *string) *models.EventFamily {
	app.t.Helper()

	seedRun, err := app.Runs.Create(ctx, models.TriggerCLI)
	require.NoError(app.t, err)

	id := uuid.New().String()
	ef := &models.EventFamily{
		ID:             id,
		EFKey:          pipeline.ComputeEFKey(theater, eventType),
		Theater:        theater,
		EventType:      eventType,
		Headline:       "seeded " + theater + " " + eventType + " " + id[:8],
		Summary:        "seeded event family",
		Confidence:     0.8,
		TitleIDs:       titleIDs,
		ParentEFID:     parentID,
		FirstSeenAt:    firstSeen,
		LastUpdatedAt:  firstSeen,
		CreatedByRunID: seedRun.ID,
		UpdatedByRunID: seedRun.ID,
	}
	_, err = app.EFs.CommitSurvivor(ctx, ef, seedRun.ID)
	require.NoError(app.t, err)
	require.NoError(app.t, app.Runs.Complete(ctx, seedRun.ID, models.RunCounters{}))
	return ef
}

// RunPipeline enqueues a cli-triggered run, executes it in-process, and
// returns the refreshed run row plus the execution error.
func (app *TestApp) RunPipeline(ctx context.Context) (*ent.PipelineRun, error) {
	app.t.Helper()

	run, err := app.Runs.Create(ctx, models.TriggerCLI)
	require.NoError(app.t, err)

	execErr := app.Orchestrator.Execute(ctx, run.ID)

	refreshed, err := app.Runs.Get(context.Background(), run.ID)
	require.NoError(app.t, err)
	return refreshed, execErr
}

// ActiveEFs loads active EF rows with their member titles, ordered by id.
func (app *TestApp) ActiveEFs(ctx context.Context) []*ent.EventFamily {
	app.t.Helper()
	rows, err := app.Ent.EventFamily.Query().
		Where(eventfamily.StatusEQ(eventfamily.StatusActive)).
		WithTitles().
		Order(ent.Asc(eventfamily.FieldID)).
		All(ctx)
	require.NoError(app.t, err)
	return rows
}

// MemberTitleIDs returns the member title ids of a loaded EF row as a set.
func MemberTitleIDs(row *ent.EventFamily) map[string]bool {
	ids := make(map[string]bool, len(row.Edges.Titles))
	for _, title := range row.Edges.Titles {
		ids[title.ID] = true
	}
	return ids
}

// AssignedEF returns the EF a title is assigned to, or "" when unassigned.
func (app *TestApp) AssignedEF(ctx context.Context, titleID string) string {
	app.t.Helper()
	row, err := app.Ent.Title.Get(ctx, titleID)
	require.NoError(app.t, err)
	if row.EventFamilyID == nil {
		return ""
	}
	return *row.EventFamilyID
}

// WaitForRunStatus polls the run row until it reaches the wanted status.
func (app *TestApp) WaitForRunStatus(runID string, want pipelinerun.Status) {
	app.t.Helper()
	require.Eventually(app.t, func() bool {
		run, err := app.Runs.Get(context.Background(), runID)
		if err != nil {
			return false
		}
		return run.Status == want
	}, 30*time.Second, 100*time.Millisecond, "run %s never reached status %s", runID, want)
}
