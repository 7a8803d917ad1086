package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.Advisor.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Advisor.GeminiModel)
	assert.Equal(t, "test-key", cfg.Advisor.GeminiAPIKey)
	assert.Equal(t, 60*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoadConfigMissingKeyIsFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "file-key-not-needed")

	path := writeConfig(t, `
server:
  port: "9090"
advisor:
  provider: openai
  openai_model: gpt-4o
  timeout: 30s
session:
  ttl: 30m
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Advisor.Provider)
	assert.Equal(t, "gpt-4o", cfg.Advisor.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoadConfigUnknownProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	path := writeConfig(t, "advisor:\n  provider: vertex\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown advisor provider")
}
