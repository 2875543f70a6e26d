package config

import (
	"fmt"
	"os"
)

// LLMConfig contains the streaming LLM transport settings. The transport
// speaks an OpenAI-compatible chat completions API.
type LLMConfig struct {
	// BaseURL points at an OpenAI-compatible endpoint. Empty means the
	// provider's default.
	BaseURL string

	// APIKey authenticates against the provider.
	APIKey string

	// Model is the default model when a space does not override it.
	Model string

	// MaxTokens caps the completion length. Zero leaves the provider default.
	MaxTokens int
}

// LoadLLMConfig loads LLM transport configuration from the environment.
func LoadLLMConfig() (*LLMConfig, error) {
	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 0)
	if err != nil {
		return nil, err
	}

	cfg := &LLMConfig{
		BaseURL:   os.Getenv("LLM_BASE_URL"),
		APIKey:    os.Getenv("LLM_API_KEY"),
		Model:     getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		MaxTokens: maxTokens,
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c *LLMConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("llm model must not be empty")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("llm max tokens must not be negative, got %d", c.MaxTokens)
	}
	return nil
}
