package config

import "time"

// PipelineConfig controls a single EF generation run: selection bounds,
// shard geometry, stage concurrency, and per-phase deadlines.
type PipelineConfig struct {
	// MaxTitles bounds how many unassigned titles one run selects.
	MaxTitles int `yaml:"max_titles"`

	// MapBatchSize is the maximum shard size sent to one Map call.
	MapBatchSize int `yaml:"map_batch_size"`

	// MapConcurrency is the number of parallel Map shard workers.
	MapConcurrency int `yaml:"map_concurrency"`

	// ReduceConcurrency is the number of parallel Reduce workers.
	ReduceConcurrency int `yaml:"reduce_concurrency"`

	// ConfidenceUnknownPenalty is subtracted from a candidate's confidence
	// for each enum field the model answered outside the vocabulary.
	ConfidenceUnknownPenalty float64 `yaml:"confidence_unknown_penalty"`

	// PhaseTimeouts bounds each orchestrator phase. A phase that hits its
	// deadline keeps whatever it completed; the rest waits for the next run.
	PhaseTimeouts PhaseTimeouts `yaml:"phase_timeouts"`
}

// PhaseTimeouts holds the per-phase deadlines of the run state machine.
type PhaseTimeouts struct {
	Selecting  time.Duration `yaml:"selecting"`
	Mapping    time.Duration `yaml:"mapping"`
	Reducing   time.Duration `yaml:"reducing"`
	Merging    time.Duration `yaml:"merging"`
	Persisting time.Duration `yaml:"persisting"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxTitles:                500,
		MapBatchSize:             50,
		MapConcurrency:           4,
		ReduceConcurrency:        4,
		ConfidenceUnknownPenalty: 0.15,
		PhaseTimeouts: PhaseTimeouts{
			Selecting:  30 * time.Second,
			Mapping:    10 * time.Minute,
			Reducing:   15 * time.Minute,
			Merging:    1 * time.Minute,
			Persisting: 5 * time.Minute,
		},
	}
}
