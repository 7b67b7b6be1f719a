package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

// ReduceResult carries the candidate event families produced from one run's
// incidents plus the titles that exhausted both reduce passes.
type ReduceResult struct {
	// Candidates are fully classified event families, not yet folded or
	// persisted. Order follows the first-pass input order, then the
	// singleton retry pass, so downstream folding sees a stable sequence.
	Candidates []*models.EventFamily

	// DroppedTitleIDs exhausted the singleton retry and stay unassigned
	// until a future run picks them up again.
	DroppedTitleIDs []string

	// IncidentsFailed counts first-pass items that fell back to the
	// singleton retry pass.
	IncidentsFailed int
}

// Reducer classifies incidents into candidate event families using one LLM
// call per incident bounded by the configured concurrency.
type Reducer struct {
	retrier     *llm.Retrier
	prompts     *prompt.Builder
	vocab       *config.VocabConfig
	penalty     float64
	concurrency int
}

// NewReducer creates a reducer. All arguments must not be nil.
func NewReducer(retrier *llm.Retrier, prompts *prompt.Builder, cfg *config.PipelineConfig, vocab *config.VocabConfig) *Reducer {
	if retrier == nil {
		panic("pipeline.NewReducer: retrier must not be nil")
	}
	if prompts == nil {
		panic("pipeline.NewReducer: prompts must not be nil")
	}
	if cfg == nil {
		panic("pipeline.NewReducer: cfg must not be nil")
	}
	if vocab == nil {
		panic("pipeline.NewReducer: vocab must not be nil")
	}
	concurrency := cfg.ReduceConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Reducer{
		retrier:     retrier,
		prompts:     prompts,
		vocab:       vocab,
		penalty:     cfg.ConfidenceUnknownPenalty,
		concurrency: concurrency,
	}
}

// reduceOutcome is the per-incident result of one reduce attempt.
type reduceOutcome struct {
	candidate *models.EventFamily
	failed    bool
}

// Run classifies every incident and orphan title into a candidate event
// family. Orphans join the first pass as degenerate singleton incidents.
// Any first-pass failure rolls its titles into a second pass of singletons;
// a singleton that fails the second pass too is dropped from this run and
// stays unassigned. Only permanent LLM errors and cancellation abort.
func (r *Reducer) Run(ctx context.Context, incidents []models.Incident, orphanTitleIDs []string, titles map[string]models.Title) (*ReduceResult, error) {
	result := &ReduceResult{}

	firstPass := append([]models.Incident{}, incidents...)
	firstPass = append(firstPass, singletonIncidents(orphanTitleIDs)...)

	outcomes, err := r.reducePass(ctx, firstPass, titles)
	if err != nil {
		return nil, err
	}

	var retryIDs []string
	for i, out := range outcomes {
		if out.failed {
			result.IncidentsFailed++
			retryIDs = append(retryIDs, firstPass[i].TitleIDs...)
			continue
		}
		result.Candidates = append(result.Candidates, out.candidate)
	}
	if len(retryIDs) == 0 {
		return result, nil
	}

	singletons := singletonIncidents(retryIDs)
	outcomes, err = r.reducePass(ctx, singletons, titles)
	if err != nil {
		return nil, err
	}
	for i, out := range outcomes {
		if out.failed {
			titleID := singletons[i].TitleIDs[0]
			result.DroppedTitleIDs = append(result.DroppedTitleIDs, titleID)
			slog.Warn("Reduce exhausted, dropping title from run",
				"title_id", titleID,
				"incident_id", singletons[i].ID)
			continue
		}
		result.Candidates = append(result.Candidates, out.candidate)
	}

	return result, nil
}

// singletonIncidents wraps each title id in a one-title incident.
func singletonIncidents(titleIDs []string) []models.Incident {
	out := make([]models.Incident, 0, len(titleIDs))
	for _, id := range titleIDs {
		out = append(out, models.Incident{
			ID:        uuid.New().String(),
			TitleIDs:  []string{id},
			Singleton: true,
		})
	}
	return out
}

// reducePass classifies one batch of incidents under the configured
// concurrency and returns per-incident outcomes in input order.
func (r *Reducer) reducePass(ctx context.Context, incidents []models.Incident, titles map[string]models.Title) ([]reduceOutcome, error) {
	outcomes := make([]reduceOutcome, len(incidents))
	if len(incidents) == 0 {
		return outcomes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, incident := range incidents {
		g.Go(func() error {
			out, err := r.reduceIncident(gctx, incident, titles)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// reduceIncident issues one classification call and builds the candidate.
// Transient and malformed failures that survive the retry budget mark the
// incident failed; other errors abort the pass.
func (r *Reducer) reduceIncident(ctx context.Context, incident models.Incident, titles map[string]models.Title) (reduceOutcome, error) {
	members := memberTitles(incident, titles)
	if len(members) == 0 {
		slog.Warn("Incident has no resolvable titles, skipping",
			"incident_id", incident.ID)
		return reduceOutcome{failed: true}, nil
	}

	ctx = llm.WithStage(ctx, llm.StageReduce)
	req := r.prompts.BuildReducePrompt(incident, members)

	var resp prompt.ReduceResponse
	if _, err := r.retrier.DoJSON(ctx, req, &resp); err != nil {
		if llm.IsTransient(err) || llm.IsMalformed(err) {
			slog.Warn("Reduce call failed for incident",
				"incident_id", incident.ID,
				"title_count", len(members),
				"error", err)
			return reduceOutcome{failed: true}, nil
		}
		return reduceOutcome{}, fmt.Errorf("reduce incident %s: %w", incident.ID, err)
	}

	candidate := r.buildCandidate(incident, members, &resp)
	return reduceOutcome{candidate: candidate}, nil
}

// buildCandidate translates a validated LLM response into a candidate event
// family, normalizing enums against the controlled vocabularies.
func (r *Reducer) buildCandidate(incident models.Incident, members []models.Title, resp *prompt.ReduceResponse) *models.EventFamily {
	theater := config.Normalize(resp.Theater)
	eventType := config.Normalize(resp.EventType)
	confidence := clampConfidence(resp.Confidence)

	if !r.vocab.HasTheater(theater) {
		slog.Warn("Unknown theater from model, substituting fallback",
			"incident_id", incident.ID,
			"theater", resp.Theater)
		theater = models.FallbackTheater
		confidence = clampConfidence(confidence - r.penalty)
	}
	if !r.vocab.HasEventType(eventType) {
		slog.Warn("Unknown event type from model, substituting fallback",
			"incident_id", incident.ID,
			"event_type", resp.EventType)
		eventType = models.FallbackEventType
		confidence = clampConfidence(confidence - r.penalty)
	}

	titleIDs := make([]string, 0, len(members))
	firstSeen := members[0].PublishedAt
	for _, t := range members {
		titleIDs = append(titleIDs, t.ID)
		if t.PublishedAt.Before(firstSeen) {
			firstSeen = t.PublishedAt
		}
	}

	return &models.EventFamily{
		ID:              uuid.New().String(),
		EFKey:           ComputeEFKey(theater, eventType),
		Theater:         theater,
		EventType:       eventType,
		Headline:        resp.Headline,
		Summary:         resp.Summary,
		Actors:          dedupeStrings(resp.Actors),
		Tags:            dedupeStrings(resp.Tags),
		Timeline:        buildTimeline(resp.Timeline, titleIDs),
		Confidence:      confidence,
		TitleIDs:        titleIDs,
		SingletonOrigin: len(titleIDs) == 1,
		FirstSeenAt:     firstSeen,
	}
}

// memberTitles resolves an incident's title ids against the run's title map,
// skipping ids the selector never loaded.
func memberTitles(incident models.Incident, titles map[string]models.Title) []models.Title {
	members := make([]models.Title, 0, len(incident.TitleIDs))
	for _, id := range incident.TitleIDs {
		t, ok := titles[id]
		if !ok {
			slog.Warn("Incident references unknown title id, skipping it",
				"incident_id", incident.ID,
				"title_id", id)
			continue
		}
		members = append(members, t)
	}
	return members
}

// buildTimeline validates, clamps and sorts the model's timeline entries.
// Entries with unparseable timestamps or empty descriptions are dropped, and
// source title ids are restricted to the incident's own titles.
func buildTimeline(entries []prompt.TimelineEntry, titleIDs []string) []models.TimelineEntry {
	allowed := make(map[string]struct{}, len(titleIDs))
	for _, id := range titleIDs {
		allowed[id] = struct{}{}
	}

	out := make([]models.TimelineEntry, 0, len(entries))
	for _, e := range entries {
		ts, err := parseTimelineTimestamp(e.Timestamp)
		if err != nil {
			slog.Warn("Dropping timeline entry with unparseable timestamp",
				"timestamp", e.Timestamp)
			continue
		}
		if e.Description == "" {
			continue
		}
		var sources []string
		for _, id := range e.SourceTitleIDs {
			if _, ok := allowed[id]; ok {
				sources = append(sources, id)
			}
		}
		out = append(out, models.TimelineEntry{
			Timestamp:      ts.UTC(),
			Description:    e.Description,
			SourceTitleIDs: sources,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })

	deduped := out[:0]
	for _, e := range out {
		if len(deduped) > 0 && deduped[len(deduped)-1].SameEvent(e) {
			continue
		}
		deduped = append(deduped, e)
	}
	return deduped
}

// parseTimelineTimestamp accepts RFC 3339 and the date-only form models tend
// to emit for timeline entries.
func parseTimelineTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", s)
}

// clampConfidence keeps confidence inside [0, 1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// dedupeStrings returns the input with later duplicates removed, preserving
// first-seen order.
func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
