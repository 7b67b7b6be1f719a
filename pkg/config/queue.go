package config

import "time"

// QueueConfig contains worker pool configuration for serve mode.
// These values control how pending runs are polled, claimed, and
// recovered after worker loss.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Pipeline runs are heavyweight; one worker per pod is the norm.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often an active worker stamps its run.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for the active run
	// to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often to scan for orphaned runs.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat
	// before it is considered orphaned and aborted.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// ScheduleInterval enqueues a pending run this often when no run is
	// pending or in flight. 0 disables scheduled runs.
	ScheduleInterval time.Duration `yaml:"schedule_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             1,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      1 * time.Second,
		HeartbeatInterval:       10 * time.Second,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanScanInterval:      30 * time.Second,
		OrphanThreshold:         2 * time.Minute,
	}
}
