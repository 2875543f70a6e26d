// Package config loads scheduler, queue, and LLM configuration from the
// environment. A .env file may be loaded by the caller (cmd/talkwheel)
// before Load is invoked.
package config

import "fmt"

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	Queue     *QueueConfig
	Scheduler *SchedulerConfig
	LLM       *LLMConfig
	Retention *RetentionConfig
}

// Load reads all configuration from the environment, applying defaults
// and validating the result.
func Load() (*Config, error) {
	queue, err := LoadQueueConfig()
	if err != nil {
		return nil, fmt.Errorf("queue config: %w", err)
	}
	sched, err := LoadSchedulerConfig()
	if err != nil {
		return nil, fmt.Errorf("scheduler config: %w", err)
	}
	llm, err := LoadLLMConfig()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	retention, err := LoadRetentionConfig()
	if err != nil {
		return nil, fmt.Errorf("retention config: %w", err)
	}
	return &Config{
		Queue:     queue,
		Scheduler: sched,
		LLM:       llm,
		Retention: retention,
	}, nil
}
