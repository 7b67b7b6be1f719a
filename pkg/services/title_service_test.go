package services

import (
	"context"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/models"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleService_SelectForPipeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTitleService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	// Five kept, unassigned titles published an hour apart.
	ids := make([]string, 5)
	for i := range ids {
		ids[i] = seedTitle(t, client.Client, base.Add(time.Duration(i)*time.Hour))
	}

	// Rejected by the gate: never selectable, even though it is newest.
	err := client.Title.Create().
		SetID(uuid.New().String()).
		SetURLHash(uuid.New().String()).
		SetTitleText("rejected title").
		SetLang("en").
		SetSourceName("reuters").
		SetPublishedAt(base.Add(10 * time.Hour)).
		SetGateKeep(false).
		Exec(ctx)
	require.NoError(t, err)

	// Consumed by an earlier run: assigned titles never reappear.
	assigned := seedTitle(t, client.Client, base.Add(11*time.Hour))
	ef := newCandidate("EUROPE", "DIPLOMACY", "run-prev", []string{assigned}, base)
	_, err = NewEventFamilyService(client.Client).CommitSurvivor(ctx, ef, "run-prev")
	require.NoError(t, err)

	t.Run("returns unassigned kept titles newest first", func(t *testing.T) {
		titles, err := service.SelectForPipeline(ctx, 10)
		require.NoError(t, err)
		require.Len(t, titles, 5)
		assert.Equal(t, ids[4], titles[0].ID)
		assert.Equal(t, ids[0], titles[4].ID)
		for i := 1; i < len(titles); i++ {
			assert.False(t, titles[i].PublishedAt.After(titles[i-1].PublishedAt))
		}
	})

	t.Run("caps the batch at limit", func(t *testing.T) {
		titles, err := service.SelectForPipeline(ctx, 2)
		require.NoError(t, err)
		require.Len(t, titles, 2)
		assert.Equal(t, ids[4], titles[0].ID)
		assert.Equal(t, ids[3], titles[1].ID)
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		_, err := service.SelectForPipeline(ctx, 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("counts the same population", func(t *testing.T) {
		count, err := service.CountUnassigned(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestTitleService_CreateTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTitleService(client.Client)
	ctx := context.Background()

	t.Run("creates a title with gate metadata", func(t *testing.T) {
		score := 0.91
		req := models.CreateTitleRequest{
			URLHash:     uuid.New().String(),
			TitleText:   "Bundestag approves new defense budget",
			Lang:        "de",
			SourceName:  "dw",
			PublishedAt: time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC),
			GateKeep:    true,
			GateScore:   &score,
			GateActors:  []string{"Germany"},
		}

		created, err := service.CreateTitle(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		row, err := client.Title.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, req.TitleText, row.TitleText)
		assert.Equal(t, req.SourceName, row.SourceName)
		assert.True(t, row.GateKeep)
		require.NotNil(t, row.GateScore)
		assert.InDelta(t, score, *row.GateScore, 1e-9)
		assert.Equal(t, []string{"Germany"}, row.GateActors)
		assert.Nil(t, row.EventFamilyID)
	})

	t.Run("rejects duplicate url_hash", func(t *testing.T) {
		req := models.CreateTitleRequest{
			URLHash:     uuid.New().String(),
			TitleText:   "same wire story",
			Lang:        "en",
			SourceName:  "ap",
			PublishedAt: time.Now().UTC(),
			GateKeep:    true,
		}
		_, err := service.CreateTitle(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateTitle(ctx, req)
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateTitleRequest
		}{
			{"missing url_hash", models.CreateTitleRequest{TitleText: "x", PublishedAt: time.Now()}},
			{"missing title_text", models.CreateTitleRequest{URLHash: uuid.New().String(), PublishedAt: time.Now()}},
			{"missing published_at", models.CreateTitleRequest{URLHash: uuid.New().String(), TitleText: "x"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateTitle(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestTitleService_GetTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTitleService(client.Client)
	ctx := context.Background()

	id := seedTitle(t, client.Client, time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))

	t.Run("returns the row", func(t *testing.T) {
		row, err := service.GetTitle(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, row.ID)
	})

	t.Run("maps missing rows to ErrNotFound", func(t *testing.T) {
		_, err := service.GetTitle(ctx, uuid.New().String())
		assert.Equal(t, ErrNotFound, err)
	})
}
