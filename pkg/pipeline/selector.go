package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// TitleStore provides the title selection query.
// Implemented by services.TitleService; the interface keeps this package
// free of ent imports and enables test doubles.
type TitleStore interface {
	// SelectForPipeline returns gate-approved titles with no event family
	// assignment, newest first by published_at, at most limit rows.
	SelectForPipeline(ctx context.Context, limit int) ([]models.Title, error)
}

// Selector pulls one run's input titles.
type Selector struct {
	titles    TitleStore
	maxTitles int
}

// NewSelector creates a selector. titles and cfg must not be nil.
func NewSelector(titles TitleStore, cfg *config.PipelineConfig) *Selector {
	if titles == nil {
		panic("pipeline.NewSelector: titles must not be nil")
	}
	if cfg == nil {
		panic("pipeline.NewSelector: cfg must not be nil")
	}
	return &Selector{titles: titles, maxTitles: cfg.MaxTitles}
}

// SelectTitles returns the unassigned gate-approved titles this run will
// process. An empty result short-circuits the run to done.
func (s *Selector) SelectTitles(ctx context.Context) ([]models.Title, error) {
	titles, err := s.titles.SelectForPipeline(ctx, s.maxTitles)
	if err != nil {
		return nil, fmt.Errorf("failed to select titles: %w", err)
	}
	slog.Debug("Selected titles for run", "count", len(titles), "limit", s.maxTitles)
	return titles, nil
}
