package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/responsive"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

const defaultBaseURL = "http://localhost:3000"

// Client is a minimal client for the explore HTTP host.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client. If baseURL is empty, it defaults to
// http://localhost:3000.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the host.
type APIError struct {
	Status  int    `json:"-"`
	Type    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s: %s", e.Status, e.Type, e.Message)
}

// FeedResponse is a rendered feed with the stories window it shows.
type FeedResponse struct {
	Tree    *view.Node `json:"tree"`
	Stories feed.Page  `json:"stories"`
}

// GetTokens fetches the design tokens for screen.
func (c *Client) GetTokens(ctx context.Context, screen responsive.Screen) (*theme.Tokens, error) {
	var tok theme.Tokens
	if err := c.get(ctx, "/v1/tokens", screenQuery(screen), &tok); err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	return &tok, nil
}

// GetFeed fetches the feed rendered for screen with storyPages pages of
// stories loaded.
func (c *Client) GetFeed(ctx context.Context, screen responsive.Screen, storyPages int) (*FeedResponse, error) {
	q := screenQuery(screen)
	if storyPages > 0 {
		q.Set("stories", strconv.Itoa(storyPages))
	}

	var resp FeedResponse
	if err := c.get(ctx, "/v1/feed", q, &resp); err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &resp, nil
}

// Press dispatches a button action such as "notification" or "menu:3".
func (c *Client) Press(ctx context.Context, action string) error {
	if err := c.post(ctx, "/v1/press", map[string]string{"action": action}, nil); err != nil {
		return fmt.Errorf("press %s: %w", action, err)
	}
	return nil
}

// StreamURL is the websocket address of the story stream.
func (c *Client) StreamURL() string {
	u := c.baseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/v1/stories/stream"
}

func screenQuery(s responsive.Screen) url.Values {
	q := url.Values{}
	q.Set("width", strconv.FormatFloat(s.Width, 'f', -1, 64))
	q.Set("height", strconv.FormatFloat(s.Height, 'f', -1, 64))
	if s.Platform != "" {
		q.Set("platform", string(s.Platform))
	}
	return q
}

func (c *Client) get(ctx context.Context, path string, q url.Values, result any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(respBody, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
