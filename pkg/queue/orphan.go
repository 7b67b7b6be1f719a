package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanScanner periodically aborts runs whose heartbeat went stale.
// All pods run this independently; the underlying abort is idempotent and
// the orphaned titles simply roll to the next run.
func (p *WorkerPool) runOrphanScanner(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			count, err := p.runs.RecoverOrphaned(ctx, p.config.OrphanThreshold)
			if err != nil {
				slog.Error("Orphan scan failed", "error", err)
				continue
			}
			if count > 0 {
				slog.Warn("Recovered orphaned runs",
					"count", count,
					"threshold", p.config.OrphanThreshold)
			}

			p.orphans.mu.Lock()
			p.orphans.lastScan = time.Now()
			p.orphans.recovered += count
			p.orphans.mu.Unlock()
		}
	}
}
