package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 8, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Queue.RunTimeout)
	assert.Equal(t, 30*time.Second, cfg.Queue.ReaperInterval)

	assert.Equal(t, 2*time.Minute, cfg.Scheduler.StuckThreshold)
	assert.Equal(t, time.Duration(0), cfg.Scheduler.UserTurnDebounceDefault)
	assert.Equal(t, 10, cfg.Scheduler.AutoModeMaxRounds)
	assert.Equal(t, 10, cfg.Scheduler.CopilotMaxSteps)
	assert.Equal(t, int64(0), cfg.Scheduler.GlobalTokenLimit)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)

	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "2")
	t.Setenv("QUEUE_MAX_CONCURRENT_RUNS", "6")
	t.Setenv("QUEUE_POLL_INTERVAL", "250ms")
	t.Setenv("QUEUE_RUN_TIMEOUT", "90s")
	t.Setenv("STUCK_THRESHOLD_SECS", "45")
	t.Setenv("USER_TURN_DEBOUNCE_MS_DEFAULT", "1500")
	t.Setenv("AUTO_MODE_MAX_ROUNDS", "3")
	t.Setenv("GLOBAL_TOKEN_LIMIT", "200000")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("EVENT_TTL", "48h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 6, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 90*time.Second, cfg.Queue.RunTimeout)
	assert.Equal(t, 45*time.Second, cfg.Scheduler.StuckThreshold)
	assert.Equal(t, 1500*time.Millisecond, cfg.Scheduler.UserTurnDebounceDefault)
	assert.Equal(t, 3, cfg.Scheduler.AutoModeMaxRounds)
	assert.Equal(t, int64(200000), cfg.Scheduler.GlobalTokenLimit)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 48*time.Hour, cfg.Retention.EventTTL)
}

func TestLoadInvalidEnvValue(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "many")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUEUE_WORKER_COUNT")
}

func TestQueueConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{"defaults valid", func(c *QueueConfig) {}, ""},
		{"zero workers", func(c *QueueConfig) { c.WorkerCount = 0 }, "worker count"},
		{"capacity below workers", func(c *QueueConfig) { c.MaxConcurrentRuns = 2 }, "max concurrent runs"},
		{"zero poll interval", func(c *QueueConfig) { c.PollInterval = 0 }, "poll interval"},
		{"zero run timeout", func(c *QueueConfig) { c.RunTimeout = 0 }, "run timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultQueueConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSchedulerConfigValidate(t *testing.T) {
	cfg := DefaultSchedulerConfig()
	require.NoError(t, cfg.Validate())

	cfg.StuckThreshold = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultSchedulerConfig()
	cfg.AutoModeMaxRounds = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultSchedulerConfig()
	cfg.GlobalTokenLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestRetentionConfigValidate(t *testing.T) {
	cfg := DefaultRetentionConfig()
	require.NoError(t, cfg.Validate())

	cfg.EventTTL = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultRetentionConfig()
	cfg.CleanupInterval = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestLLMConfigValidate(t *testing.T) {
	cfg := &LLMConfig{Model: "gpt-4o-mini"}
	require.NoError(t, cfg.Validate())

	cfg.Model = ""
	assert.Error(t, cfg.Validate())

	cfg = &LLMConfig{Model: "m", MaxTokens: -5}
	assert.Error(t, cfg.Validate())
}
