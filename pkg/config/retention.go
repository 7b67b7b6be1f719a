package config

import "time"

// RetentionConfig controls pruning of terminal pipeline runs. Run rows and
// their merge audit rows are operational history; Event Families and titles
// are durable and never pruned.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep done, aborted, and
	// cancelled runs before deleting them. A negative value disables
	// pruning.
	RunRetentionDays int `yaml:"run_retention_days"`

	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		CleanupInterval:  12 * time.Hour,
	}
}
