package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateVocab(); err != nil {
		return fmt.Errorf("vocabulary validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateAPI(); err != nil {
		return fmt.Errorf("api validation failed: %w", err)
	}

	if err := v.validateTelemetry(); err != nil {
		return fmt.Errorf("telemetry validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline

	if p.MaxTitles <= 0 {
		return NewValidationError("pipeline", "max_titles", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, p.MaxTitles))
	}
	if p.MapBatchSize <= 0 {
		return NewValidationError("pipeline", "map_batch_size", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, p.MapBatchSize))
	}
	if p.MapConcurrency <= 0 {
		return NewValidationError("pipeline", "map_concurrency", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, p.MapConcurrency))
	}
	if p.ReduceConcurrency <= 0 {
		return NewValidationError("pipeline", "reduce_concurrency", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, p.ReduceConcurrency))
	}
	if p.ConfidenceUnknownPenalty < 0 || p.ConfidenceUnknownPenalty > 1 {
		return NewValidationError("pipeline", "confidence_unknown_penalty", fmt.Errorf("%w: must be in [0,1], got %g", ErrInvalidValue, p.ConfidenceUnknownPenalty))
	}

	timeouts := []struct {
		name string
		d    int64
	}{
		{"selecting", int64(p.PhaseTimeouts.Selecting)},
		{"mapping", int64(p.PhaseTimeouts.Mapping)},
		{"reducing", int64(p.PhaseTimeouts.Reducing)},
		{"merging", int64(p.PhaseTimeouts.Merging)},
		{"persisting", int64(p.PhaseTimeouts.Persisting)},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			return NewValidationError("pipeline", "phase_timeouts."+t.name, fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM

	if l.BaseURL == "" {
		return NewValidationError("llm", "base_url", ErrMissingRequiredField)
	}
	if l.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return NewValidationError("llm", "temperature", fmt.Errorf("%w: must be in [0,2], got %g", ErrInvalidValue, l.Temperature))
	}
	if l.Timeout <= 0 {
		return NewValidationError("llm", "llm_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if l.MaxRetries < 0 {
		return NewValidationError("llm", "llm_max_retries", fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, l.MaxRetries))
	}
	if l.MaxTokens <= 0 {
		return NewValidationError("llm", "llm_max_tokens", fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, l.MaxTokens))
	}
	if l.MaxInflight < 0 {
		return NewValidationError("llm", "max_inflight", fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, l.MaxInflight))
	}

	return nil
}

func (v *ConfigValidator) validateVocab() error {
	vocab := v.cfg.Vocab

	if err := validateVocabList("theaters", vocab.Theaters); err != nil {
		return err
	}
	if err := validateVocabList("event_types", vocab.EventTypes); err != nil {
		return err
	}

	// Unknown model answers normalize to the fallbacks, so the
	// vocabularies must contain them.
	if !vocab.HasTheater("GLOBAL") {
		return NewValidationError("vocab", "theaters", fmt.Errorf("%w: fallback member GLOBAL is required", ErrInvalidValue))
	}
	if !vocab.HasEventType("OTHER") {
		return NewValidationError("vocab", "event_types", fmt.Errorf("%w: fallback member OTHER is required", ErrInvalidValue))
	}

	return nil
}

func validateVocabList(field string, tokens []string) error {
	if len(tokens) == 0 {
		return NewValidationError("vocab", field, ErrMissingRequiredField)
	}

	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if t == "" {
			return NewValidationError("vocab", field, fmt.Errorf("%w: empty member", ErrInvalidValue))
		}
		if t != Normalize(t) {
			return NewValidationError("vocab", field, fmt.Errorf("%w: member %q is not an uppercase token", ErrInvalidValue, t))
		}
		if seen[t] {
			return NewValidationError("vocab", field, fmt.Errorf("%w: duplicate member %q", ErrInvalidValue, t))
		}
		seen[t] = true
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidValue, q.WorkerCount))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanScanInterval <= 0 {
		return NewValidationError("queue", "orphan_scan_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	// A threshold at or below the heartbeat interval would flag healthy
	// workers as orphaned.
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold", fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "graceful_shutdown_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.ScheduleInterval < 0 {
		return NewValidationError("queue", "schedule_interval", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateAPI() error {
	a := v.cfg.API

	if a.ListenAddr == "" {
		return NewValidationError("api", "listen_addr", ErrMissingRequiredField)
	}
	if a.ShutdownTimeout <= 0 {
		return NewValidationError("api", "shutdown_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateTelemetry() error {
	t := v.cfg.Telemetry

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		return NewValidationError("telemetry", "exporter", fmt.Errorf("%w: must be 'stdout' or 'otlp', got %q", ErrInvalidValue, t.Exporter))
	}
	if t.Exporter == "otlp" && t.Enabled && t.OTLPEndpoint == "" {
		return NewValidationError("telemetry", "otlp_endpoint", ErrMissingRequiredField)
	}
	if t.Interval <= 0 {
		return NewValidationError("telemetry", "interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}
