package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/components"
	"github.com/blackmichael/explore-feed/internal/config"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/metrics"
	"github.com/blackmichael/explore-feed/internal/responsive"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// maxStoryPages bounds the stories parameter of the feed route.
const maxStoryPages = 100

// Server is the HTTP host that serves design tokens, rendered feeds and the
// story stream.
type Server struct {
	cfg         *config.Config
	feedService *feed.Service
	metrics     *metrics.Metrics
	logger      *zap.Logger
	httpServer  *http.Server
}

// NewServer creates a new HTTP server with the given feed service.
func NewServer(cfg *config.Config, feedService *feed.Service, m *metrics.Metrics, logger *zap.Logger) *Server {
	s := &Server{
		cfg:         cfg,
		feedService: feedService,
		metrics:     m,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /v1/tokens", s.handleTokens)
	mux.HandleFunc("GET /v1/feed", s.handleFeed)
	mux.HandleFunc("POST /v1/press", s.handlePress)
	mux.HandleFunc("GET /v1/stories/stream", s.handleStream)
	mux.Handle("GET /metrics", m.Handler())

	// No write timeout: the story stream is long lived.
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           withLogging(logger, m, mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with logging and metrics applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. It blocks until the server is
// shut down or an error occurs.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	screen, err := s.screenFromQuery(r)
	if err != nil {
		s.logger.Warn("invalid screen parameters", zap.Error(err))
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, theme.New(screen))
}

// FeedResponse is the body of GET /v1/feed.
type FeedResponse struct {
	Tree    *view.Node `json:"tree"`
	Stories feed.Page  `json:"stories"`
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	screen, err := s.screenFromQuery(r)
	if err != nil {
		s.logger.Warn("invalid screen parameters", zap.Error(err))
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	pages := 1
	if p := r.URL.Query().Get("stories"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 1 || parsed > maxStoryPages {
			s.logger.Warn("invalid stories parameter", zap.String("stories", p), zap.Error(err))
			writeError(w, http.StatusBadRequest, "InvalidRequest",
				fmt.Sprintf("stories must be between 1 and %d", maxStoryPages))
			return
		}
		pages = parsed
	}

	session := s.feedService.NewSession(theme.New(screen))
	for i := 1; i < pages; i++ {
		if _, ok := session.Advance(); !ok {
			break
		}
	}

	tree, err := session.Render()
	if err != nil {
		s.logger.Error("failed to render feed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "InternalError", "failed to render feed")
		return
	}

	s.logger.Debug("feed rendered",
		zap.String("category", string(screen.Category())),
		zap.Int("stories_visible", len(session.Stories())),
	)

	writeJSON(w, http.StatusOK, FeedResponse{
		Tree:    tree,
		Stories: session.Window(),
	})
}

// PressRequest is the body of POST /v1/press.
type PressRequest struct {
	Action string `json:"action"`
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	var req PressRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "body must be a JSON object with an action")
		return
	}

	if err := s.feedService.Press(req.Action); err != nil {
		if errors.Is(err, components.ErrUnknownAction) {
			writeError(w, http.StatusBadRequest, "UnknownAction", err.Error())
			return
		}
		s.logger.Error("failed to dispatch press", zap.String("action", req.Action), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "InternalError", "failed to dispatch press")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "action": req.Action})
}

// screenFromQuery reads width, height and platform, falling back to the
// configured device for any that are missing.
func (s *Server) screenFromQuery(r *http.Request) (responsive.Screen, error) {
	def, err := s.cfg.Screen()
	if err != nil {
		return responsive.Screen{}, err
	}

	q := r.URL.Query()
	width, height, platform := def.Width, def.Height, def.Platform

	if v := q.Get("width"); v != "" {
		if width, err = strconv.ParseFloat(v, 64); err != nil {
			return responsive.Screen{}, fmt.Errorf("invalid width %q", v)
		}
	}
	if v := q.Get("height"); v != "" {
		if height, err = strconv.ParseFloat(v, 64); err != nil {
			return responsive.Screen{}, fmt.Errorf("invalid height %q", v)
		}
	}
	if v := q.Get("platform"); v != "" {
		if platform, err = responsive.ParsePlatform(v); err != nil {
			return responsive.Screen{}, err
		}
	}

	return responsive.NewScreen(width, height, platform)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errType,
		"message": message,
	})
}
