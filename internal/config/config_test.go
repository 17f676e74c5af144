package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackmichael/explore-feed/internal/responsive"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "EXPLORE_PORT", "EXPLORE_HOSTNAME", "EXPLORE_DEVICE_WIDTH",
		"EXPLORE_DEVICE_HEIGHT", "EXPLORE_PLATFORM", "EXPLORE_STORY_PAGE_SIZE",
		"EXPLORE_FIXTURES_DB", "EXPLORE_LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	s, err := cfg.Screen()
	require.NoError(t, err)
	assert.Equal(t, responsive.Baseline(), s)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 6, cfg.FeedService().StoryPageSize)
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Hostname = "127.0.0.1"
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())

	cfg.Server.Hostname = "::1"
	cfg.Server.Port = 8080
	assert.Equal(t, "[::1]:8080", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "explore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
device:
  width: 768
  height: 1024
  platform: android
feed:
  story_page_size: 4
fixtures:
  db: feed.db
`), 0o644))

	t.Setenv("EXPLORE_PORT", "9090")
	t.Setenv("EXPLORE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Feed.StoryPageSize)
	assert.Equal(t, "feed.db", cfg.Fixtures.DB)
	// fields absent from the file keep their defaults
	assert.Equal(t, "Let's Explore", cfg.Feed.Title)

	s, err := cfg.Screen()
	require.NoError(t, err)
	assert.True(t, s.IsTablet())
	assert.Equal(t, responsive.PlatformAndroid, s.Platform)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [1, 2"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("EXPLORE_DEVICE_WIDTH", "wide")
	_, err = Load("")
	assert.ErrorContains(t, err, "invalid EXPLORE_DEVICE_WIDTH")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"port":      func(c *Config) { c.Server.Port = 0 },
		"width":     func(c *Config) { c.Device.Width = 0 },
		"platform":  func(c *Config) { c.Device.Platform = "web" },
		"page size": func(c *Config) { c.Feed.StoryPageSize = -1 },
		"threshold": func(c *Config) { c.Feed.Threshold = -0.5 },
		"log level": func(c *Config) { c.Logging.Level = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	cfg.Device.Height = -1
	assert.True(t, errors.Is(cfg.Validate(), responsive.ErrInvalidDimensions))
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "explore.yaml")

	cfg := DefaultConfig()
	cfg.Feed.NotificationCount = 5
	cfg.Fixtures.DB = "/var/lib/explore/feed.db"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
