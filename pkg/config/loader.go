package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// sniYAMLConfig represents the complete sni.yaml file structure.
type sniYAMLConfig struct {
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	LLM       *LLMConfig       `yaml:"llm"`
	Vocab     *VocabConfig     `yaml:"vocab"`
	Queue     *QueueConfig     `yaml:"queue"`
	API       *APIConfig       `yaml:"api"`
	Telemetry *TelemetryConfig `yaml:"telemetry"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load sni.yaml from configDir
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg.LogSummary(log)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadSNIYAML()
	if err != nil {
		return nil, NewLoadError("sni.yaml", err)
	}

	// Start each section from defaults, then merge user config on top so
	// unset fields keep their defaults.
	pipeline := DefaultPipelineConfig()
	if yamlCfg.Pipeline != nil {
		if err := mergo.Merge(pipeline, yamlCfg.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}

	llm := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llm, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queue, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	api := DefaultAPIConfig()
	if yamlCfg.API != nil {
		if err := mergo.Merge(api, yamlCfg.API, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge api config: %w", err)
		}
	}

	telemetry := DefaultTelemetryConfig()
	if yamlCfg.Telemetry != nil {
		if err := mergo.Merge(telemetry, yamlCfg.Telemetry, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge telemetry config: %w", err)
		}
	}
	// Quick enablement without touching YAML
	if os.Getenv("SNI_TELEMETRY") == "1" {
		telemetry.Enabled = true
	}

	retention := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retention, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	// Vocabularies replace wholesale rather than merge; merging lists would
	// leak default members into a deliberately narrowed vocabulary.
	vocab := DefaultVocabConfig()
	if yamlCfg.Vocab != nil {
		if len(yamlCfg.Vocab.Theaters) > 0 {
			vocab.Theaters = normalizeAll(yamlCfg.Vocab.Theaters)
		}
		if len(yamlCfg.Vocab.EventTypes) > 0 {
			vocab.EventTypes = normalizeAll(yamlCfg.Vocab.EventTypes)
		}
	}

	return &Config{
		configDir: configDir,
		Pipeline:  pipeline,
		LLM:       llm,
		Vocab:     vocab,
		Queue:     queue,
		API:       api,
		Telemetry: telemetry,
		Retention: retention,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

func normalizeAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Normalize(t))
	}
	return out
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadSNIYAML() (*sniYAMLConfig, error) {
	var config sniYAMLConfig

	if err := l.loadYAML("sni.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
