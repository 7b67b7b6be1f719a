// Package cleanup prunes operational history past its retention window.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/services"
)

// Service periodically deletes terminal pipeline runs older than the
// retention window. Runs and their merge audit rows are bookkeeping;
// Event Families and titles are durable and never pruned.
//
// Pruning is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	runs   *services.RunService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(cfg *config.RetentionConfig, runs *services.RunService) *Service {
	return &Service{
		config: cfg,
		runs:   runs,
	}
}

// Start launches the background retention loop. Does nothing when run
// pruning is disabled.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil || s.config.RunRetentionDays <= 0 {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"run_retention_days", s.config.RunRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.pruneRuns(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneRuns(ctx)
		}
	}
}

func (s *Service) pruneRuns(_ context.Context) {
	// Detached context: a prune already in flight at shutdown may finish.
	count, err := s.runs.PruneTerminal(context.Background(), s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: run pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal runs", "count", count)
	}
}
