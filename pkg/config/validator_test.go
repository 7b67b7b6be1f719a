package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a configuration that passes full validation.
func validTestConfig() *Config {
	llm := DefaultLLMConfig()
	llm.BaseURL = "https://llm.example.com/v1"
	llm.APIKey = "test-key"
	llm.Model = "test-model"

	return &Config{
		Pipeline:  DefaultPipelineConfig(),
		LLM:       llm,
		Vocab:     DefaultVocabConfig(),
		Queue:     DefaultQueueConfig(),
		API:       DefaultAPIConfig(),
		Telemetry: DefaultTelemetryConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidateAllAcceptsDefaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero max_titles",
			mutate:  func(c *Config) { c.Pipeline.MaxTitles = 0 },
			wantErr: "max_titles",
		},
		{
			name:    "negative map_batch_size",
			mutate:  func(c *Config) { c.Pipeline.MapBatchSize = -1 },
			wantErr: "map_batch_size",
		},
		{
			name:    "zero map_concurrency",
			mutate:  func(c *Config) { c.Pipeline.MapConcurrency = 0 },
			wantErr: "map_concurrency",
		},
		{
			name:    "zero reduce_concurrency",
			mutate:  func(c *Config) { c.Pipeline.ReduceConcurrency = 0 },
			wantErr: "reduce_concurrency",
		},
		{
			name:    "penalty above one",
			mutate:  func(c *Config) { c.Pipeline.ConfidenceUnknownPenalty = 1.5 },
			wantErr: "confidence_unknown_penalty",
		},
		{
			name:    "zero mapping timeout",
			mutate:  func(c *Config) { c.Pipeline.PhaseTimeouts.Mapping = 0 },
			wantErr: "phase_timeouts.mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLLM(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing base_url",
			mutate:  func(c *Config) { c.LLM.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: "model",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.LLM.Temperature = 3.0 },
			wantErr: "temperature",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.LLM.Timeout = 0 },
			wantErr: "llm_timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.LLM.MaxRetries = -1 },
			wantErr: "llm_max_retries",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.LLM.MaxTokens = 0 },
			wantErr: "llm_max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVocab(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty theaters",
			mutate:  func(c *Config) { c.Vocab.Theaters = nil },
			wantErr: "theaters",
		},
		{
			name:    "missing GLOBAL fallback",
			mutate:  func(c *Config) { c.Vocab.Theaters = []string{"EUROPE", "MIDEAST"} },
			wantErr: "GLOBAL",
		},
		{
			name:    "missing OTHER fallback",
			mutate:  func(c *Config) { c.Vocab.EventTypes = []string{"DIPLOMACY", "CYBER"} },
			wantErr: "OTHER",
		},
		{
			name:    "lowercase member",
			mutate:  func(c *Config) { c.Vocab.Theaters = []string{"europe", "GLOBAL"} },
			wantErr: "uppercase",
		},
		{
			name:    "duplicate member",
			mutate:  func(c *Config) { c.Vocab.EventTypes = []string{"OTHER", "CYBER", "CYBER"} },
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateQueueViaValidateAll(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.OrphanThreshold = cfg.Queue.HeartbeatInterval

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orphan_threshold")

	cfg = validTestConfig()
	cfg.Queue.WorkerCount = 0

	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestValidateAPI(t *testing.T) {
	cfg := validTestConfig()
	cfg.API.ListenAddr = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen_addr")
}

func TestValidateTelemetry(t *testing.T) {
	cfg := validTestConfig()
	cfg.Telemetry.Exporter = "statsd"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exporter")

	cfg = validTestConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.OTLPEndpoint = ""

	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otlp_endpoint")
}

func TestValidateRetention(t *testing.T) {
	cfg := validTestConfig()
	cfg.Retention.CleanupInterval = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cleanup_interval")

	// Negative retention days means pruning is disabled, not invalid.
	cfg = validTestConfig()
	cfg.Retention.RunRetentionDays = -1
	require.NoError(t, NewValidator(cfg).ValidateAll())
}
