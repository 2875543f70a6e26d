package config

import (
	"fmt"
	"time"
)

// SchedulerConfig contains the turn scheduler and reaper tunables.
type SchedulerConfig struct {
	// StuckThreshold is how long a running run may go without a heartbeat
	// (or a queued run without a worker ack) before the reaper recovers it.
	StuckThreshold time.Duration

	// UserTurnDebounceDefault is the default run_after delay applied to
	// replies triggered by user messages when the space does not override it.
	UserTurnDebounceDefault time.Duration

	// AutoModeMaxRounds caps the user-chosen auto-mode round budget.
	AutoModeMaxRounds int

	// CopilotMaxSteps caps copilot_remaining_steps.
	CopilotMaxSteps int

	// GlobalTokenLimit is an optional ceiling applied on top of per-space
	// token limits. Zero means no global limit.
	GlobalTokenLimit int64
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		StuckThreshold:          2 * time.Minute,
		UserTurnDebounceDefault: 0,
		AutoModeMaxRounds:       10,
		CopilotMaxSteps:         10,
		GlobalTokenLimit:        0,
	}
}

// LoadSchedulerConfig loads scheduler configuration from the environment
// on top of the defaults.
func LoadSchedulerConfig() (*SchedulerConfig, error) {
	cfg := DefaultSchedulerConfig()

	stuckSecs, err := getEnvInt("STUCK_THRESHOLD_SECS", int(cfg.StuckThreshold/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.StuckThreshold = time.Duration(stuckSecs) * time.Second

	debounceMs, err := getEnvInt("USER_TURN_DEBOUNCE_MS_DEFAULT", int(cfg.UserTurnDebounceDefault/time.Millisecond))
	if err != nil {
		return nil, err
	}
	cfg.UserTurnDebounceDefault = time.Duration(debounceMs) * time.Millisecond

	if cfg.AutoModeMaxRounds, err = getEnvInt("AUTO_MODE_MAX_ROUNDS", cfg.AutoModeMaxRounds); err != nil {
		return nil, err
	}
	if cfg.CopilotMaxSteps, err = getEnvInt("COPILOT_MAX_STEPS", cfg.CopilotMaxSteps); err != nil {
		return nil, err
	}
	if cfg.GlobalTokenLimit, err = getEnvInt64("GLOBAL_TOKEN_LIMIT", cfg.GlobalTokenLimit); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for invalid combinations.
func (c *SchedulerConfig) Validate() error {
	if c.StuckThreshold <= 0 {
		return fmt.Errorf("stuck threshold must be positive, got %v", c.StuckThreshold)
	}
	if c.AutoModeMaxRounds < 1 {
		return fmt.Errorf("auto-mode max rounds must be at least 1, got %d", c.AutoModeMaxRounds)
	}
	if c.CopilotMaxSteps < 1 {
		return fmt.Errorf("copilot max steps must be at least 1, got %d", c.CopilotMaxSteps)
	}
	if c.GlobalTokenLimit < 0 {
		return fmt.Errorf("global token limit must not be negative, got %d", c.GlobalTokenLimit)
	}
	return nil
}
