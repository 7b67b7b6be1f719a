package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

// MapResult is the outcome of the map phase. Every selected title lands
// in exactly one incident or in OrphanTitleIDs, never both.
type MapResult struct {
	Incidents      []models.Incident
	OrphanTitleIDs []string
	ShardsTotal    int
	ShardsFailed   int
}

// Mapper clusters selected titles into incidents, one LLM call per shard.
type Mapper struct {
	retrier     *llm.Retrier
	prompts     *prompt.Builder
	batchSize   int
	concurrency int
}

// NewMapper creates a Mapper with the configured shard geometry.
func NewMapper(retrier *llm.Retrier, prompts *prompt.Builder, cfg *config.PipelineConfig) *Mapper {
	return &Mapper{
		retrier:     retrier,
		prompts:     prompts,
		batchSize:   cfg.MapBatchSize,
		concurrency: cfg.MapConcurrency,
	}
}

type shardResult struct {
	incidents []models.Incident
	orphans   []string
	failed    bool
}

// Run clusters titles into incidents. Shards execute concurrently but
// results assemble in shard order, so output ordering is deterministic in
// the input. A shard whose retry budget is exhausted (or whose phase
// deadline expired) orphans all of its titles; only endpoint-level
// rejections and run cancellation abort the phase.
func (m *Mapper) Run(ctx context.Context, titles []models.Title) (*MapResult, error) {
	if len(titles) == 0 {
		return &MapResult{}, nil
	}

	shards := partitionTitles(titles, m.batchSize)
	results := make([]shardResult, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i, shard := range shards {
		g.Go(func() error {
			res, err := m.mapShard(gctx, i, shard)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &MapResult{ShardsTotal: len(shards)}
	for _, res := range results {
		out.Incidents = append(out.Incidents, res.incidents...)
		out.OrphanTitleIDs = append(out.OrphanTitleIDs, res.orphans...)
		if res.failed {
			out.ShardsFailed++
		}
	}
	return out, nil
}

func (m *Mapper) mapShard(ctx context.Context, idx int, shard []models.Title) (shardResult, error) {
	ctx = llm.WithStage(ctx, llm.StageMap)

	var resp prompt.MapResponse
	if _, err := m.retrier.DoJSON(ctx, m.prompts.BuildMapPrompt(shard), &resp); err != nil {
		if llm.IsTransient(err) || llm.IsMalformed(err) {
			slog.Warn("Map shard failed, orphaning its titles",
				"shard", idx,
				"titles", len(shard),
				"error", err)
			return shardResult{orphans: titleIDs(shard), failed: true}, nil
		}
		return shardResult{}, fmt.Errorf("map shard %d: %w", idx, err)
	}

	incidents, orphans := validateMapResponse(shard, resp)
	return shardResult{incidents: incidents, orphans: orphans}, nil
}

// validateMapResponse enforces the map contract on a raw response: ids
// outside the shard are dropped, an id claimed by several incidents stays
// with the first one, and incidents left empty disappear. Unplaced titles
// become orphans.
func validateMapResponse(shard []models.Title, resp prompt.MapResponse) ([]models.Incident, []string) {
	inShard := make(map[string]bool, len(shard))
	for _, t := range shard {
		inShard[t.ID] = true
	}

	placed := make(map[string]bool, len(shard))
	var incidents []models.Incident

	for _, raw := range resp.Incidents {
		var ids []string
		for _, id := range raw.TitleIDs {
			if !inShard[id] {
				slog.Warn("Map response referenced a title outside the shard", "title_id", id)
				continue
			}
			if placed[id] {
				continue
			}
			placed[id] = true
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			continue
		}
		incidents = append(incidents, models.Incident{
			ID:         uuid.New().String(),
			TitleIDs:   ids,
			Rationale:  raw.Rationale,
			Confidence: raw.Confidence,
			Singleton:  len(ids) == 1,
		})
	}

	var orphans []string
	for _, t := range shard {
		if !placed[t.ID] {
			orphans = append(orphans, t.ID)
		}
	}
	return incidents, orphans
}

// partitionTitles splits titles into order-preserving shards of at most
// size entries.
func partitionTitles(titles []models.Title, size int) [][]models.Title {
	if size <= 0 {
		size = len(titles)
	}
	var shards [][]models.Title
	for start := 0; start < len(titles); start += size {
		end := min(start+size, len(titles))
		shards = append(shards, titles[start:end])
	}
	return shards
}

func titleIDs(titles []models.Title) []string {
	ids := make([]string, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
	}
	return ids
}
