package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// Recorder is the instrument facade handed to the pipeline and the LLM
// client. It satisfies pipeline.PhaseRecorder and llm.Metrics. Construct it
// after Init; under the no-op provider every method is free.
type Recorder struct {
	llmCalls      metric.Int64Counter
	llmTokens     metric.Int64Counter
	llmDuration   metric.Float64Histogram
	phaseDuration metric.Float64Histogram
	runDuration   metric.Float64Histogram
	titles        metric.Int64Counter
	runs          metric.Int64Counter
}

// NewRecorder creates all pipeline instruments on the global meter provider.
func NewRecorder() (*Recorder, error) {
	meter := otel.Meter(instrumentationScope)
	r := &Recorder{}

	var err error
	if r.llmCalls, err = meter.Int64Counter("sni.llm.calls",
		metric.WithDescription("LLM calls issued by pipeline stages"),
	); err != nil {
		return nil, err
	}
	if r.llmTokens, err = meter.Int64Counter("sni.llm.tokens",
		metric.WithDescription("Tokens consumed by LLM calls"),
	); err != nil {
		return nil, err
	}
	if r.llmDuration, err = meter.Float64Histogram("sni.llm.duration",
		metric.WithDescription("LLM call latency"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.phaseDuration, err = meter.Float64Histogram("sni.pipeline.phase.duration",
		metric.WithDescription("Pipeline phase duration"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.runDuration, err = meter.Float64Histogram("sni.pipeline.run.duration",
		metric.WithDescription("End-to-end run duration"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.titles, err = meter.Int64Counter("sni.pipeline.titles",
		metric.WithDescription("Selected titles by final disposition"),
	); err != nil {
		return nil, err
	}
	if r.runs, err = meter.Int64Counter("sni.pipeline.runs",
		metric.WithDescription("Completed runs by outcome"),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RecordLLMCall records one completion call. The stage attribute comes from
// the llm.WithStage tag on ctx.
func (r *Recorder) RecordLLMCall(ctx context.Context, model string, duration time.Duration, usage llm.Usage, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("stage", llm.StageFromContext(ctx)),
		attribute.String("model", model),
		attribute.String("outcome", outcome(err)),
	}
	r.llmCalls.Add(ctx, 1, metric.WithAttributes(attrs...))
	r.llmDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if usage.PromptTokens > 0 {
		r.llmTokens.Add(ctx, int64(usage.PromptTokens), metric.WithAttributes(
			attribute.String("stage", llm.StageFromContext(ctx)),
			attribute.String("direction", "prompt"),
		))
	}
	if usage.CompletionTokens > 0 {
		r.llmTokens.Add(ctx, int64(usage.CompletionTokens), metric.WithAttributes(
			attribute.String("stage", llm.StageFromContext(ctx)),
			attribute.String("direction", "completion"),
		))
	}
}

// RecordPhase records one phase transition's duration and outcome.
func (r *Recorder) RecordPhase(ctx context.Context, phase string, duration time.Duration, err error) {
	r.phaseDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.String("outcome", outcome(err)),
	))
}

// RecordRun records a finished run: its outcome, duration, and the final
// disposition of every selected title. Titles neither assigned nor dropped
// were deferred to a later run by a phase deadline.
func (r *Recorder) RecordRun(ctx context.Context, status string, duration time.Duration, counters models.RunCounters) {
	r.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", status)))
	r.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", status),
	))

	deferred := counters.TitlesSelected - counters.TitlesAssigned - counters.ReduceDrops
	if deferred < 0 {
		deferred = 0
	}
	r.addTitles(ctx, "assigned", counters.TitlesAssigned)
	r.addTitles(ctx, "dropped", counters.ReduceDrops)
	r.addTitles(ctx, "deferred", deferred)
}

func (r *Recorder) addTitles(ctx context.Context, disposition string, n int) {
	if n <= 0 {
		return
	}
	r.titles.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("disposition", disposition),
	))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
