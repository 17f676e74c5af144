package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/config"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/metrics"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type pressLog struct {
	mu       sync.Mutex
	notified int
	menus    []int
}

func (p *pressLog) NotificationPressed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notified++
}

func (p *pressLog) MenuPressed(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menus = append(p.menus, id)
}

func newTestServer(t *testing.T) (*Server, *pressLog) {
	t.Helper()
	presses := &pressLog{}
	m := metrics.New()
	svc, err := feed.NewService(context.Background(), feed.DefaultConfig(), fixtures.NewStatic(), zap.NewNop(),
		feed.WithPressHandler(presses), feed.WithObserver(m))
	require.NoError(t, err)
	return NewServer(config.DefaultConfig(), svc, m, zap.NewNop()), presses
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTokens(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/tokens?width=750&height=1000&platform=android", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tok theme.Tokens
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "tablet", string(tok.Device.Category))
	assert.Equal(t, 750.0, tok.Device.Screen.Width)
	assert.Equal(t, "#E91E63", tok.Colors.StoryBorderPink)

	// missing parameters fall back to the configured device
	rec = do(t, s, http.MethodGet, "/v1/tokens", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, 375.0, tok.Device.Screen.Width)
	assert.Equal(t, 16.0, tok.Spacing.MD)
}

func TestTokens_BadScreen(t *testing.T) {
	s, _ := newTestServer(t)
	for _, q := range []string{"width=abc", "width=0", "height=-3", "platform=web"} {
		rec := do(t, s, http.MethodGet, "/v1/tokens?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Contains(t, rec.Body.String(), `"error":"InvalidRequest"`, q)
	}
}

func TestFeed(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/feed?stories=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Stories.Visible)
	assert.Len(t, resp.Stories.Items, 12)
	assert.False(t, resp.Stories.Exhausted)
	assert.NotNil(t, view.Find(resp.Tree, "story.12"))
	assert.Nil(t, view.Find(resp.Tree, "story.13"))
	assert.Len(t, view.Find(resp.Tree, "feed.posts").Children, 20)

	rec = do(t, s, http.MethodGet, "/v1/feed?stories=50", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Stories.Exhausted)
	assert.Nil(t, view.Find(resp.Tree, "stories.more"))

	for _, q := range []string{"stories=0", "stories=x", "stories=101"} {
		assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/v1/feed?"+q, "").Code, q)
	}
}

func TestPress(t *testing.T) {
	s, presses := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/v1/press", `{"action":"notification"}`).Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/v1/press", `{"action":"menu:4"}`).Code)

	rec := do(t, s, http.MethodPost, "/v1/press", `{"action":"share"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UnknownAction")

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/v1/press", `not json`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodGet, "/v1/press", "").Code)

	assert.Equal(t, 1, presses.notified)
	assert.Equal(t, []int{4}, presses.menus)
}

func TestMetricsRoute(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodGet, "/health", "")
	do(t, s, http.MethodPost, "/v1/press", `{"action":"notification"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `explore_http_requests_total{code="200",route="GET /health"} 1`)
	assert.Contains(t, body, `explore_presses_total{target="notification"} 1`)
}
