// Package config provides configuration management for the sni pipeline:
// loading sni.yaml, expanding {{.ENV_VAR}} references, merging defaults,
// and validating the result before anything else starts.
package config

import "log/slog"

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Pipeline  *PipelineConfig
	LLM       *LLMConfig
	Vocab     *VocabConfig
	Queue     *QueueConfig
	API       *APIConfig
	Telemetry *TelemetryConfig
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats contains a summary of the effective configuration for logging.
type Stats struct {
	Theaters          int
	EventTypes        int
	MaxTitles         int
	MapBatchSize      int
	MapConcurrency    int
	ReduceConcurrency int
	Workers           int
}

// LogSummary logs the effective knobs after defaults and user values merge.
func (c *Config) LogSummary(log *slog.Logger) {
	stats := c.Stats()
	log.Info("Configuration initialized successfully",
		"theaters", stats.Theaters,
		"event_types", stats.EventTypes,
		"max_titles", stats.MaxTitles,
		"map_batch_size", stats.MapBatchSize,
		"map_concurrency", stats.MapConcurrency,
		"reduce_concurrency", stats.ReduceConcurrency,
		"workers", stats.Workers)
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Vocab != nil {
		s.Theaters = len(c.Vocab.Theaters)
		s.EventTypes = len(c.Vocab.EventTypes)
	}
	if c.Pipeline != nil {
		s.MaxTitles = c.Pipeline.MaxTitles
		s.MapBatchSize = c.Pipeline.MapBatchSize
		s.MapConcurrency = c.Pipeline.MapConcurrency
		s.ReduceConcurrency = c.Pipeline.ReduceConcurrency
	}
	if c.Queue != nil {
		s.Workers = c.Queue.WorkerCount
	}
	return s
}
