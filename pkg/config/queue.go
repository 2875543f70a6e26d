package config

import (
	"fmt"
	"time"
)

// QueueConfig contains worker pool configuration. These values control how
// queued runs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes runs.
	WorkerCount int

	// MaxConcurrentRuns is the global limit of concurrently running
	// generations across ALL replicas. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int

	// PollInterval is the base interval for checking due queued runs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// RunTimeout is the maximum wall time for a single generation.
	RunTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// ReaperInterval is how often the stale-run sweep executes.
	ReaperInterval time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentRuns:       8,
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      250 * time.Millisecond,
		RunTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		ReaperInterval:          30 * time.Second,
	}
}

// LoadQueueConfig loads queue configuration from the environment on top
// of the defaults.
func LoadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	var err error
	if cfg.WorkerCount, err = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrentRuns, err = getEnvInt("QUEUE_MAX_CONCURRENT_RUNS", cfg.MaxConcurrentRuns); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.RunTimeout, err = getEnvDuration("QUEUE_RUN_TIMEOUT", cfg.RunTimeout); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.ReaperInterval, err = getEnvDuration("QUEUE_REAPER_INTERVAL", cfg.ReaperInterval); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for invalid combinations.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.WorkerCount)
	}
	if c.MaxConcurrentRuns < c.WorkerCount {
		return fmt.Errorf("max concurrent runs (%d) must be >= worker count (%d)",
			c.MaxConcurrentRuns, c.WorkerCount)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.PollInterval)
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %v", c.RunTimeout)
	}
	return nil
}
