package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"althistory/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.NarratorProvider)
	assert.Equal(t, "gpt-4", cfg.NarratorModel)
	assert.Empty(t, cfg.NarratorBaseURL)
	assert.Equal(t, 60*time.Second, cfg.NarratorTimeout)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaServerURL)
	assert.Equal(t, "althistory.db", cfg.ChroniclePath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "althistory.log", cfg.LogPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NARRATOR_PROVIDER", "ollama")
	t.Setenv("NARRATOR_MODEL", "llama3")
	t.Setenv("NARRATOR_TIMEOUT", "90s")
	t.Setenv("OLLAMA_SERVER_URL", "http://ollama.internal:11434")
	t.Setenv("CHRONICLE_PATH", "/var/lib/althistory/chronicles.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.NarratorProvider)
	assert.Equal(t, "llama3", cfg.NarratorModel)
	assert.Equal(t, 90*time.Second, cfg.NarratorTimeout)
	assert.Equal(t, "http://ollama.internal:11434", cfg.OllamaServerURL)
	assert.Equal(t, "/var/lib/althistory/chronicles.db", cfg.ChroniclePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidateNarrator(t *testing.T) {
	t.Run("openai requires an api key", func(t *testing.T) {
		cfg := config.Config{NarratorProvider: "openai"}

		err := cfg.ValidateNarrator()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("openai with a key", func(t *testing.T) {
		cfg := config.Config{NarratorProvider: "openai", OpenAIAPIKey: "test-key"}
		assert.NoError(t, cfg.ValidateNarrator())
	})

	t.Run("ollama does not require an api key", func(t *testing.T) {
		cfg := config.Config{NarratorProvider: "ollama"}
		assert.NoError(t, cfg.ValidateNarrator())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.Config{NarratorProvider: "gemini"}

		err := cfg.ValidateNarrator()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NARRATOR_PROVIDER")
	})
}
