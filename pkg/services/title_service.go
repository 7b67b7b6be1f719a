package services

import (
	"context"
	"fmt"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/google/uuid"
)

// TitleService reads gate-approved titles for the pipeline. Title rows are
// written by upstream ingestion; the only mutation this codebase performs
// on them is the event_family_id assignment inside CommitSurvivor.
type TitleService struct {
	client *ent.Client
}

// NewTitleService creates a new TitleService
func NewTitleService(client *ent.Client) *TitleService {
	return &TitleService{client: client}
}

// SelectForPipeline returns unassigned, gate-approved titles, newest first
// by published_at, bounded by limit.
func (s *TitleService) SelectForPipeline(ctx context.Context, limit int) ([]models.Title, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	rows, err := s.client.Title.Query().
		Where(
			title.GateKeep(true),
			title.EventFamilyIDIsNil(),
		).
		Order(ent.Desc(title.FieldPublishedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query unassigned titles: %w", err)
	}

	titles := make([]models.Title, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, titleFromEnt(row))
	}
	return titles, nil
}

// CountUnassigned reports how many gate-approved titles are still waiting
// for an EF assignment.
func (s *TitleService) CountUnassigned(ctx context.Context) (int, error) {
	count, err := s.client.Title.Query().
		Where(
			title.GateKeep(true),
			title.EventFamilyIDIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unassigned titles: %w", err)
	}
	return count, nil
}

// GetTitle retrieves a title by ID
func (s *TitleService) GetTitle(ctx context.Context, titleID string) (*ent.Title, error) {
	row, err := s.client.Title.Query().
		Where(title.IDEQ(titleID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	return row, nil
}

// CreateTitle inserts a title row. Production rows come from the ingestion
// pipeline upstream of this service; tests and seed tooling use this path.
func (s *TitleService) CreateTitle(ctx context.Context, req models.CreateTitleRequest) (*ent.Title, error) {
	if req.URLHash == "" {
		return nil, NewValidationError("url_hash", "required")
	}
	if req.TitleText == "" {
		return nil, NewValidationError("title_text", "required")
	}
	if req.PublishedAt.IsZero() {
		return nil, NewValidationError("published_at", "required")
	}

	builder := s.client.Title.Create().
		SetID(uuid.New().String()).
		SetURLHash(req.URLHash).
		SetTitleText(req.TitleText).
		SetLang(req.Lang).
		SetSourceName(req.SourceName).
		SetPublishedAt(req.PublishedAt).
		SetGateKeep(req.GateKeep)

	if req.GateScore != nil {
		builder.SetGateScore(*req.GateScore)
	}
	if req.GateActors != nil {
		builder.SetGateActors(req.GateActors)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create title: %w", err)
	}
	return row, nil
}

// titleFromEnt converts a title row into the pipeline's value type.
func titleFromEnt(row *ent.Title) models.Title {
	return models.Title{
		ID:          row.ID,
		Text:        row.TitleText,
		Lang:        row.Lang,
		Source:      row.SourceName,
		PublishedAt: row.PublishedAt,
		Actors:      row.GateActors,
	}
}
