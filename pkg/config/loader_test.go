package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Sections are always populated
	assert.NotNil(t, cfg.Pipeline)
	assert.NotNil(t, cfg.LLM)
	assert.NotNil(t, cfg.Vocab)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.API)
	assert.NotNil(t, cfg.Telemetry)
	assert.NotNil(t, cfg.Retention)

	// YAML overrides took effect
	assert.Equal(t, 100, cfg.Pipeline.MaxTitles)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "test-model", cfg.LLM.Model)

	// Unset fields keep their defaults
	assert.Equal(t, 50, cfg.Pipeline.MapBatchSize)
	assert.Equal(t, 4, cfg.Pipeline.MapConcurrency)
	assert.Equal(t, 0.15, cfg.Pipeline.ConfidenceUnknownPenalty)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1, cfg.Queue.WorkerCount)

	// Default vocabularies include the fallbacks
	assert.True(t, cfg.Vocab.HasTheater("GLOBAL"))
	assert.True(t, cfg.Vocab.HasEventType("OTHER"))
	assert.True(t, cfg.Vocab.HasTheater("MIDEAST"))
	assert.True(t, cfg.Vocab.HasEventType("MILITARY_OP"))

	stats := cfg.Stats()
	assert.Equal(t, 6, stats.Theaters)
	assert.Equal(t, 8, stats.EventTypes)
	assert.Equal(t, 100, stats.MaxTitles)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `pipeline: [not a mapping`
	err := os.WriteFile(filepath.Join(configDir, "sni.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Vocabulary without the OTHER fallback must be rejected
	invalidConfig := `
llm:
  base_url: "https://llm.example.com/v1"
  model: "test-model"

vocab:
  event_types:
    - DIPLOMACY
    - MILITARY_OP
`
	err := os.WriteFile(filepath.Join(configDir, "sni.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "OTHER")
}

func TestLoadSNIYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
pipeline:
  max_titles: 250
  map_batch_size: 25

llm:
  base_url: "https://llm.example.com/v1"
  model: "test-model"

queue:
  worker_count: 2
`
	err := os.WriteFile(filepath.Join(configDir, "sni.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	yamlCfg, err := loader.loadSNIYAML()

	require.NoError(t, err)
	require.NotNil(t, yamlCfg.Pipeline)
	assert.Equal(t, 250, yamlCfg.Pipeline.MaxTitles)
	assert.Equal(t, 25, yamlCfg.Pipeline.MapBatchSize)
	require.NotNil(t, yamlCfg.Queue)
	assert.Equal(t, 2, yamlCfg.Queue.WorkerCount)
	assert.Nil(t, yamlCfg.Vocab)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm:
  base_url: "{{.TEST_LLM_BASE_URL}}"
  api_key: "{{.TEST_LLM_API_KEY}}"
  model: "test-model"
`
	err := os.WriteFile(filepath.Join(configDir, "sni.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_LLM_BASE_URL", "https://expanded.example.com/v1")
	t.Setenv("TEST_LLM_API_KEY", "sk-expanded")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "sk-expanded", cfg.LLM.APIKey)
}

func TestVocabOverrideReplacesDefaults(t *testing.T) {
	configDir := t.TempDir()

	// Lowercase members are normalized; a custom list replaces the default
	// one wholesale instead of merging into it.
	config := `
llm:
  base_url: "https://llm.example.com/v1"
  model: "test-model"

vocab:
  theaters:
    - europe
    - global
`
	err := os.WriteFile(filepath.Join(configDir, "sni.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, []string{"EUROPE", "GLOBAL"}, cfg.Vocab.Theaters)
	assert.False(t, cfg.Vocab.HasTheater("MIDEAST"))

	// Event types were not overridden and keep the default list
	assert.True(t, cfg.Vocab.HasEventType("CYBER"))
}

func TestTelemetryEnvOverride(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("SNI_TELEMETRY", "1")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.Enabled)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	sniYAML := `
pipeline:
  max_titles: 100

llm:
  base_url: "https://llm.example.com/v1"
  api_key: "test-key"
  model: "test-model"
`
	err := os.WriteFile(filepath.Join(dir, "sni.yaml"), []byte(sniYAML), 0644)
	require.NoError(t, err)

	return dir
}
