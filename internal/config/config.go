// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. Values come from environment
// variables, optionally seeded from a .env file before loading.
type Config struct {
	// Narration service settings.
	NarratorProvider string        `envconfig:"NARRATOR_PROVIDER" default:"openai"`
	NarratorModel    string        `envconfig:"NARRATOR_MODEL" default:"gpt-4"`
	NarratorBaseURL  string        `envconfig:"NARRATOR_BASE_URL"`
	NarratorTimeout  time.Duration `envconfig:"NARRATOR_TIMEOUT" default:"60s"`
	OpenAIAPIKey     string        `envconfig:"OPENAI_API_KEY"`
	OllamaServerURL  string        `envconfig:"OLLAMA_SERVER_URL" default:"http://localhost:11434"`

	// Chronicle archive location.
	ChroniclePath string `envconfig:"CHRONICLE_PATH" default:"althistory.db"`

	// The log goes to a file so the interactive screens stay clean.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogPath  string `envconfig:"LOG_PATH" default:"althistory.log"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// ValidateNarrator checks that the configured narration provider is usable.
// Commands that never talk to the service skip this.
func (c *Config) ValidateNarrator() error {
	switch strings.ToLower(c.NarratorProvider) {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when NARRATOR_PROVIDER is openai")
		}
	case "ollama":
	default:
		return fmt.Errorf("unknown NARRATOR_PROVIDER %q", c.NarratorProvider)
	}
	return nil
}
