package config

import "time"

// LLMConfig defines the LLM endpoint and call budget. The client speaks
// OpenAI-style chat completions over HTTP JSON, so any compatible
// provider works; there is exactly one active provider per deployment,
// which keeps this a struct rather than a registry.
type LLMConfig struct {
	// BaseURL of the chat completions endpoint, without the path suffix
	// (e.g. "https://api.openai.com/v1").
	BaseURL string `yaml:"base_url"`

	// APIKey is the bearer token. In YAML this is normally written as
	// {{.SNI_LLM_API_KEY}} and expanded from the environment.
	APIKey string `yaml:"api_key"`

	// Model name passed through to the provider.
	Model string `yaml:"model"`

	// Temperature for all pipeline calls. Clustering and classification
	// want near-deterministic output.
	Temperature float64 `yaml:"temperature"`

	// Timeout bounds one HTTP call, not the whole retry budget.
	Timeout time.Duration `yaml:"llm_timeout"`

	// MaxRetries is the shared attempt budget for transient transport
	// failures and malformed payloads per logical call.
	MaxRetries int `yaml:"llm_max_retries"`

	// MaxTokens caps the completion size.
	MaxTokens int `yaml:"llm_max_tokens"`

	// MaxInflight caps concurrent requests across all stages.
	// 0 derives the cap from map_concurrency + reduce_concurrency.
	MaxInflight int `yaml:"max_inflight"`
}

// DefaultLLMConfig returns the built-in LLM defaults. BaseURL, APIKey,
// and Model carry no defaults; validation requires them.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Temperature: 0.1,
		Timeout:     60 * time.Second,
		MaxRetries:  3,
		MaxTokens:   4096,
	}
}

// EffectiveMaxInflight returns the concurrent request cap, deriving it
// from the stage concurrency limits when max_inflight is unset. Map and
// reduce never overlap within a run, but the cap is shared across runs.
func (l *LLMConfig) EffectiveMaxInflight(p *PipelineConfig) int {
	if l.MaxInflight > 0 {
		return l.MaxInflight
	}
	return p.MapConcurrency + p.ReduceConcurrency
}
