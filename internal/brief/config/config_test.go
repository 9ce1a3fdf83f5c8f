package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang-daily-brief/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, common.DefaultFeedURLs, cfg.Feed.URLs)
	assert.Equal(t, 5, cfg.Feed.ItemsPerFeed)
	assert.Zero(t, cfg.Feed.Timeout)
	assert.Equal(t, common.DefaultGeminiModel, cfg.Gemini.Model)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "daily-news", cfg.Store.Key)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoadSecretsFromEnvironment(t *testing.T) {
	t.Setenv("CRON_SECRET", "cron-secret")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cron-secret", cfg.Cron.Secret)
	assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
	assert.Equal(t, "memory", cfg.Store.Driver)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config-brief.yaml")
	content := `feed:
  urls:
    - https://example.com/a.xml
    - https://example.com/b.xml
  items_per_feed: 3
  timeout: 5s
gemini:
  model: gemini-test
summary:
  language: English
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/a.xml", "https://example.com/b.xml"}, cfg.Feed.URLs)
	assert.Equal(t, 3, cfg.Feed.ItemsPerFeed)
	assert.Equal(t, 5*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, "gemini-test", cfg.Gemini.Model)
	assert.Equal(t, "English", cfg.Summary.Language)
}
