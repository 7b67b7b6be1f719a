package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// runScheduler enqueues a pending run every schedule_interval, but only
// when nothing is already pending or mid-pipeline, so a slow run never
// stacks up duplicates behind itself.
func (p *WorkerPool) runScheduler(ctx context.Context) {
	ticker := time.NewTicker(p.config.ScheduleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.scheduleRun(ctx)
		}
	}
}

func (p *WorkerPool) scheduleRun(ctx context.Context) {
	active, err := p.runs.HasActiveRun(ctx)
	if err != nil {
		slog.Error("Scheduler failed to check for active runs", "error", err)
		return
	}
	if active {
		return
	}

	run, err := p.runs.Create(ctx, models.TriggerScheduled)
	if err != nil {
		slog.Error("Scheduler failed to enqueue run", "error", err)
		return
	}
	slog.Info("Scheduled run enqueued", "run_id", run.ID)
}
