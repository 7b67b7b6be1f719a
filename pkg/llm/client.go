// Package llm provides the HTTP client for OpenAI-style chat completion
// endpoints plus the retry layer used by all pipeline stages.
package llm

import (
	"context"
	"time"
)

// Client is the single-call LLM surface. One Complete call is one HTTP
// request; retry policy lives in Retrier, not here.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// Request carries the prompts for one completion call. Model, temperature,
// and token budget come from configuration, not from callers.
type Request struct {
	System string
	User   string
}

// Usage reports provider token accounting for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is a completed (non-streaming) LLM call.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Metrics receives per-call measurements. Implemented by pkg/telemetry;
// a nil Metrics disables recording.
type Metrics interface {
	RecordLLMCall(ctx context.Context, model string, duration time.Duration, usage Usage, err error)
}

// Pipeline stages that issue LLM calls, used as the stage metric attribute.
const (
	StageMap    = "map"
	StageReduce = "reduce"
)

type stageKey struct{}

// WithStage tags ctx with the pipeline stage issuing calls under it.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey{}, stage)
}

// StageFromContext returns the stage set by WithStage, or "" when untagged.
func StageFromContext(ctx context.Context) string {
	stage, _ := ctx.Value(stageKey{}).(string)
	return stage
}
