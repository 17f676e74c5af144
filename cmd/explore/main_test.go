package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/blackmichael/explore-feed/internal/config"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/httpserver"
	"github.com/blackmichael/explore-feed/internal/metrics"
	"github.com/blackmichael/explore-feed/internal/view"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("EXPLORE_FIXTURES_DB", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "explore.log")))
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestTokensCommand(t *testing.T) {
	out := execute(t, "tokens", "--width", "768", "--height", "1024", "--platform", "android")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	device := doc["device"].(map[string]any)
	assert.Equal(t, "tablet", device["category"])
	assert.Contains(t, out, "story_border_pink")
}

func TestStoriesCommand_Local(t *testing.T) {
	out := execute(t, "stories", "--remote", "", "--width", "375", "--height", "667")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], " 6/20 more"))
	assert.True(t, strings.HasPrefix(lines[3], "20/20 exhausted"))
}

func TestSeedThenFeedFromSqlite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "feed.db")
	out := execute(t, "seed", db)
	assert.Contains(t, out, "seeded 20 posts and 20 stories")

	t.Setenv("EXPLORE_FIXTURES_DB", db)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"feed", "--json", "--stories", "2", "--remote", "", "--log-file", filepath.Join(t.TempDir(), "explore.log")})
	require.NoError(t, rootCmd.Execute())

	var tree view.Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tree))
	assert.NotNil(t, view.Find(&tree, "story.12"))
	assert.Nil(t, view.Find(&tree, "story.13"))
	assert.Equal(t, "Allison Becker", view.Find(&tree, "post.1.header.name").Text)
}

func TestFeedCommand_Remote(t *testing.T) {
	m := metrics.New()
	svc, err := feed.NewService(context.Background(), feed.DefaultConfig(), fixtures.NewStatic(), zap.NewNop(), feed.WithObserver(m))
	require.NoError(t, err)
	srv := httptest.NewServer(httpserver.NewServer(config.DefaultConfig(), svc, m, zap.NewNop()).Handler())
	defer srv.Close()

	out := execute(t, "feed", "--remote", srv.URL, "--json=false", "--stories", "1", "--columns", "60")
	assert.Contains(t, out, "Let's Explore")
	assert.Contains(t, out, "Allison Becker")

	out = execute(t, "stories", "--remote", srv.URL)
	assert.Contains(t, out, "20/20 exhausted")
}
