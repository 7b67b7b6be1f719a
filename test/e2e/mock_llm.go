package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

// ScriptEntry defines one scripted completion.
type ScriptEntry struct {
	// Response content (at most one is used, in this precedence).
	Err     error  // returned instead of a response
	Content string // raw response body
	JSON    any    // marshaled into the response body

	// Test control.
	BlockUntilCancelled bool            // park until ctx is cancelled, then return ctx.Err()
	OnBlock             chan<- struct{} // notified when the entry parks
}

// route matches entries to calls by a substring of the user prompt,
// typically a title id, so parallel shards and incidents get their
// responses regardless of arrival order.
type route struct {
	match   string
	entries []ScriptEntry
	idx     int
}

// stageScript holds the script for one pipeline stage: content-routed
// entries first, then a sequential fallback queue.
type stageScript struct {
	routes []route
	seq    []ScriptEntry
	seqIdx int
}

func (s *stageScript) next(userPrompt string) (*ScriptEntry, bool) {
	for i := range s.routes {
		r := &s.routes[i]
		if r.idx < len(r.entries) && strings.Contains(userPrompt, r.match) {
			entry := &r.entries[r.idx]
			r.idx++
			return entry, true
		}
	}
	if s.seqIdx < len(s.seq) {
		entry := &s.seq[s.seqIdx]
		s.seqIdx++
		return entry, true
	}
	return nil, false
}

// ScriptedLLMClient implements llm.Client with per-stage dispatch: the
// pipeline tags calls with their stage via llm.WithStage, and within a
// stage entries are routed by user-prompt content before falling back to
// sequential order. Map shards and reduce incidents execute concurrently,
// so order-based scripts alone would be flaky.
type ScriptedLLMClient struct {
	mu     sync.Mutex
	stages map[string]*stageScript
	calls  []*llm.Request
}

// NewScriptedLLMClient creates an empty script.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		stages: map[string]*stageScript{
			llm.StageMap:    {},
			llm.StageReduce: {},
		},
	}
}

// RouteMap registers a map-stage entry for the shard whose user prompt
// contains match (use a title id unique to that shard).
func (c *ScriptedLLMClient) RouteMap(match string, entries ...ScriptEntry) {
	c.addRoute(llm.StageMap, match, entries)
}

// RouteReduce registers a reduce-stage entry for the incident whose user
// prompt contains match (use a title id unique to that incident).
func (c *ScriptedLLMClient) RouteReduce(match string, entries ...ScriptEntry) {
	c.addRoute(llm.StageReduce, match, entries)
}

// MapSequential queues map-stage entries consumed in call order after all
// routes are exhausted. Only safe when map calls cannot interleave (a
// single shard, or concurrency 1).
func (c *ScriptedLLMClient) MapSequential(entries ...ScriptEntry) {
	c.addSequential(llm.StageMap, entries)
}

// ReduceSequential queues reduce-stage entries consumed in call order.
func (c *ScriptedLLMClient) ReduceSequential(entries ...ScriptEntry) {
	c.addSequential(llm.StageReduce, entries)
}

func (c *ScriptedLLMClient) addRoute(stage, match string, entries []ScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stages[stage]
	s.routes = append(s.routes, route{match: match, entries: entries})
}

func (c *ScriptedLLMClient) addSequential(stage string, entries []ScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stages[stage]
	s.seq = append(s.seq, entries...)
}

// Complete implements llm.Client.
func (c *ScriptedLLMClient) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	stage := llm.StageFromContext(ctx)

	c.mu.Lock()
	c.calls = append(c.calls, req)
	script, ok := c.stages[stage]
	var entry *ScriptEntry
	if ok {
		entry, ok = script.next(req.User)
	}
	c.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("ScriptedLLMClient: unscripted %q call", stage)
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if entry.Err != nil {
		return nil, entry.Err
	}

	body := entry.Content
	if body == "" && entry.JSON != nil {
		data, err := json.Marshal(entry.JSON)
		if err != nil {
			return nil, fmt.Errorf("ScriptedLLMClient: marshal entry: %w", err)
		}
		body = string(data)
	}

	return &llm.Response{
		Content: body,
		Model:   "scripted",
		Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}, nil
}

// CallCount returns the total number of Complete calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// MapReply builds a map response placing each group of title ids in one
// incident. Titles outside every group orphan.
func MapReply(groups ...[]string) ScriptEntry {
	var resp prompt.MapResponse
	for _, g := range groups {
		resp.Incidents = append(resp.Incidents, prompt.MapIncident{
			TitleIDs:   g,
			Rationale:  "same underlying event",
			Confidence: 0.9,
		})
	}
	return ScriptEntry{JSON: resp}
}

// ReduceReply builds a reduce response classifying the incident under the
// given vocabulary values.
func ReduceReply(theater, eventType string) ScriptEntry {
	return ScriptEntry{JSON: prompt.ReduceResponse{
		Theater:    theater,
		EventType:  eventType,
		Headline:   theater + " " + eventType + " event",
		Summary:    "Scripted classification of one incident.",
		Actors:     []string{"Actor One"},
		Tags:       []string{"scripted"},
		Confidence: 0.9,
	}}
}
