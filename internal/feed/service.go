// Package feed wires fixtures, design tokens and the stories loader into
// feed sessions that rendering hosts drive.
package feed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/components"
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/pager"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// DefaultStoryPageSize is how many stories each page of the strip adds.
const DefaultStoryPageSize = 6

// Config describes what a feed shows.
type Config struct {
	// Title is the header text. Empty means components.DefaultTitle.
	Title string

	// NotificationCount is the number drawn on the header badge.
	NotificationCount int

	// StoryPageSize is the stories loader's page size.
	StoryPageSize int

	// Threshold is the scroll proximity, in visible lengths, at which the
	// stories strip loads the next page.
	Threshold float64
}

// DefaultConfig returns the feed as designed.
func DefaultConfig() Config {
	return Config{
		Title:             components.DefaultTitle,
		NotificationCount: 2,
		StoryPageSize:     DefaultStoryPageSize,
		Threshold:         pager.DefaultThreshold,
	}
}

// Observer receives session events for metrics. All methods must be safe
// for concurrent use.
type Observer interface {
	PageLoaded(exhausted bool)
	Pressed(action string)
}

type nopObserver struct{}

func (nopObserver) PageLoaded(bool) {}
func (nopObserver) Pressed(string)  {}

// Service is the core feed service. It owns the fixtures, loaded once, and
// hands out independent sessions.
type Service struct {
	cfg      Config
	posts    []domain.PostRecord
	stories  []domain.StoryRecord
	press    domain.PressHandler
	observer Observer
	logger   *zap.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithPressHandler routes press events from every session to h.
func WithPressHandler(h domain.PressHandler) Option {
	return func(s *Service) { s.press = h }
}

// WithObserver reports session events to o.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// NewService loads and validates the fixtures from src.
func NewService(ctx context.Context, cfg Config, src domain.FixtureSource, logger *zap.Logger, opts ...Option) (*Service, error) {
	if cfg.StoryPageSize <= 0 {
		return nil, fmt.Errorf("story page size must be positive, got %d", cfg.StoryPageSize)
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = pager.DefaultThreshold
	}

	posts, err := src.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if err := domain.ValidatePosts(posts); err != nil {
		return nil, fmt.Errorf("validate posts: %w", err)
	}

	stories, err := src.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stories: %w", err)
	}
	if err := domain.ValidateStories(stories); err != nil {
		return nil, fmt.Errorf("validate stories: %w", err)
	}

	s := &Service{
		cfg:      cfg,
		posts:    posts,
		stories:  stories,
		press:    logPressHandler{logger: logger},
		observer: nopObserver{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	logger.Info("feed service ready",
		zap.Int("posts", len(posts)),
		zap.Int("stories", len(stories)),
		zap.Int("story_page_size", cfg.StoryPageSize),
	)
	return s, nil
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Posts returns the post fixtures.
func (s *Service) Posts() []domain.PostRecord {
	out := make([]domain.PostRecord, len(s.posts))
	copy(out, s.posts)
	return out
}

// Press dispatches a button action outside any session. The session-free
// HTTP route uses it.
func (s *Service) Press(action string) error {
	if err := components.HandlersFor(s.press).Dispatch(action); err != nil {
		return err
	}
	s.observer.Pressed(action)
	return nil
}

// NewSession starts a feed view with its own stories loader. Tokens are
// shared and read-only.
func (s *Service) NewSession(tokens *theme.Tokens) *Session {
	// page size was validated in NewService
	loader, _ := pager.New(s.stories, s.cfg.StoryPageSize)
	s.observer.PageLoaded(loader.Exhausted())

	return &Session{
		svc:    s,
		tokens: tokens,
		loader: loader,
	}
}

// logPressHandler is the default press handler: it logs and does nothing
// else.
type logPressHandler struct {
	logger *zap.Logger
}

func (h logPressHandler) NotificationPressed() {
	h.logger.Info("notification pressed")
}

func (h logPressHandler) MenuPressed(postID int) {
	h.logger.Info("post menu pressed", zap.Int("post_id", postID))
}

// Session is one mounted feed view. It is owned by a single goroutine.
type Session struct {
	svc    *Service
	tokens *theme.Tokens
	loader *pager.Loader[domain.StoryRecord]
}

// Tokens returns the design tokens the session renders with.
func (s *Session) Tokens() *theme.Tokens {
	return s.tokens
}

// Window describes every story materialized so far. Before any advance it
// is the first page.
func (s *Session) Window() Page {
	return pageOf(s.loader, 0)
}

// Stories returns the visible stories.
func (s *Session) Stories() []domain.StoryRecord {
	return s.loader.Items()
}

// Exhausted reports whether every story is visible.
func (s *Session) Exhausted() bool {
	return s.loader.Exhausted()
}

// Advance loads the next page of stories. The returned page is empty when
// nothing was appended.
func (s *Session) Advance() (Page, bool) {
	before := s.loader.Len()
	if !s.loader.Advance() {
		return pageOf(s.loader, before), false
	}
	s.svc.observer.PageLoaded(s.loader.Exhausted())
	s.svc.logger.Debug("stories page loaded",
		zap.Int("page_cursor", s.loader.PageCursor()),
		zap.Int("visible", s.loader.Len()),
		zap.Bool("exhausted", s.loader.Exhausted()),
	)
	return pageOf(s.loader, before), true
}

// Scroll applies the stories strip's scroll position and loads the next page
// when it is within the configured threshold of the end.
func (s *Session) Scroll(m pager.ScrollMetrics) (Page, bool) {
	if s.loader.Exhausted() || !pager.ShouldAdvance(m, s.svc.cfg.Threshold) {
		return pageOf(s.loader, s.loader.Len()), false
	}
	return s.Advance()
}

// Press dispatches a button action to the service's press handler.
func (s *Session) Press(action string) error {
	return s.svc.Press(action)
}

// Render builds the feed's view tree for the current stories window.
func (s *Session) Render() (*view.Node, error) {
	return components.Feed(s.tokens, components.FeedProps{
		Header: components.TitleProps{
			Title:             s.svc.cfg.Title,
			NotificationCount: s.svc.cfg.NotificationCount,
		},
		Stories: components.StoriesProps{
			Stories: s.loader.Items(),
			HasMore: !s.loader.Exhausted(),
		},
		Posts: s.svc.posts,
	})
}
