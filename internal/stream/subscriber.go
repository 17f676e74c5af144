// Package stream speaks the story stream protocol: a websocket on which a
// client pages through the stories strip of a remote feed session.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/responsive"
)

// DefaultBackoff is the pause before reconnecting after a transient error.
const DefaultBackoff = 5 * time.Second

// Page is one page of stories as delivered to a PageHandler.
type Page struct {
	Items      []domain.StoryRecord
	Visible    int
	Total      int
	PageCursor int
	Exhausted  bool
}

// PageHandler receives pages in order. Returning an error stops the
// subscriber.
type PageHandler func(ctx context.Context, p Page) error

// Subscriber connects to a story stream and pages through it until the
// server reports the strip exhausted.
type Subscriber struct {
	url        string
	screen     responsive.Screen
	handler    PageHandler
	logger     *zap.Logger
	dialer     *websocket.Dialer
	backoff    time.Duration
	maxRetries int

	// delivered counts stories already handed to the handler, so pages
	// replayed after a reconnect are not delivered twice.
	delivered int
}

// NewSubscriber creates a subscriber for the stream at streamURL, rendering
// for screen.
func NewSubscriber(streamURL string, screen responsive.Screen, handler PageHandler, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		url:        streamURL,
		screen:     screen,
		handler:    handler,
		logger:     logger,
		dialer:     websocket.DefaultDialer,
		backoff:    DefaultBackoff,
		maxRetries: 3,
	}
}

// WithBackoff sets the reconnect pause and how many consecutive failures
// are tolerated before Start gives up. A connection that delivered new
// stories before dropping resets the count.
func (s *Subscriber) WithBackoff(backoff time.Duration, maxRetries int) *Subscriber {
	s.backoff = backoff
	s.maxRetries = maxRetries
	return s
}

// Start pages through the stream until it is exhausted, the context is
// cancelled or the handler fails. It reconnects on transient errors.
func (s *Subscriber) Start(ctx context.Context) error {
	failures := 0
	for {
		delivered := s.delivered
		done, err := s.subscribe(ctx)
		switch {
		case done:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, errHandler):
			return err
		}

		if s.delivered > delivered {
			failures = 0
		}
		failures++
		if failures > s.maxRetries {
			return fmt.Errorf("story stream failed %d times: %w", failures, err)
		}
		s.logger.Error("story stream error, reconnecting", zap.Error(err), zap.Int("attempt", failures))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff):
		}
	}
}

var errHandler = errors.New("page handler")

func (s *Subscriber) buildURL() (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("parse stream url: %w", err)
	}
	q := u.Query()
	q.Set("width", strconv.FormatFloat(s.screen.Width, 'f', -1, 64))
	q.Set("height", strconv.FormatFloat(s.screen.Height, 'f', -1, 64))
	q.Set("platform", string(s.screen.Platform))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// subscribe runs one connection. It reports done once the last page has
// been handled.
func (s *Subscriber) subscribe(ctx context.Context) (bool, error) {
	wsURL, err := s.buildURL()
	if err != nil {
		return false, err
	}
	s.logger.Info("connecting to story stream", zap.String("url", wsURL))

	conn, _, err := s.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return false, fmt.Errorf("dial story stream: %w", err)
	}
	defer conn.Close()

	// unblock ReadMessage when the context ends
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return false, fmt.Errorf("read message: %w", err)
		}

		msg, err := parseServerMessage(data)
		if err != nil {
			s.logger.Error("failed to parse message", zap.Error(err))
			continue
		}

		switch msg.Type {
		case TypeError:
			return false, fmt.Errorf("story stream: %s", msg.Message)
		case TypeAck:
			continue
		}

		if msg.SessionID != "" {
			s.logger.Info("story stream session started", zap.String("session_id", msg.SessionID))
		}
		if err := s.handlePage(ctx, msg); err != nil {
			return false, err
		}
		if msg.Exhausted {
			s.logger.Info("story stream exhausted", zap.Int("stories", s.delivered))
			return true, nil
		}

		if err := conn.WriteJSON(ClientMessage{Type: TypeAdvance}); err != nil {
			return false, fmt.Errorf("request next page: %w", err)
		}
	}
}

func (s *Subscriber) handlePage(ctx context.Context, msg *ServerMessage) error {
	fresh := msg.Visible - s.delivered
	if fresh <= 0 && !msg.Exhausted {
		return nil
	}
	items := msg.Items
	if fresh < len(items) {
		items = items[len(items)-max(fresh, 0):]
	}

	page := Page{
		Items:      items,
		Visible:    msg.Visible,
		Total:      msg.Total,
		PageCursor: msg.PageCursor,
		Exhausted:  msg.Exhausted,
	}
	if err := s.handler(ctx, page); err != nil {
		return fmt.Errorf("%w: %w", errHandler, err)
	}
	s.delivered = max(s.delivered, msg.Visible)
	return nil
}
