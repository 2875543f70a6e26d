package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls cleanup of persisted timeline event rows.
// Events only exist for WebSocket catch-up; once every client has had a
// reasonable window to reconnect they are dead weight.
type RetentionConfig struct {
	// EventTTL is how long event rows are kept after creation.
	EventTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// LoadRetentionConfig loads retention configuration from the environment
// on top of the defaults.
func LoadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.EventTTL, err = getEnvDuration("EVENT_TTL", cfg.EventTTL); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for invalid combinations.
func (c *RetentionConfig) Validate() error {
	if c.EventTTL <= 0 {
		return fmt.Errorf("event TTL must be positive, got %v", c.EventTTL)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %v", c.CleanupInterval)
	}
	return nil
}
