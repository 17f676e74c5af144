package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/components"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/pager"
	"github.com/blackmichael/explore-feed/internal/stream"
	"github.com/blackmichael/explore-feed/internal/theme"
)

const (
	streamReadLimit = 4 << 10
	streamIdle      = 2 * time.Minute
	streamWriteWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// handleStream serves one feed session over a websocket. The connection's
// goroutine owns the session, so its loader is never shared.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	screen, err := s.screenFromQuery(r)
	if err != nil {
		s.logger.Warn("invalid screen parameters", zap.Error(err))
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response.
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := s.logger.With(zap.String("session_id", id))
	s.metrics.StreamOpened()
	defer s.metrics.StreamClosed()

	session := s.feedService.NewSession(theme.New(screen))
	logger.Info("story stream opened", zap.String("category", string(screen.Category())))

	first := pageMessage(session.Window())
	first.SessionID = id
	if err := s.send(conn, first); err != nil {
		logger.Warn("failed to send first page", zap.Error(err))
		return
	}

	conn.SetReadLimit(streamReadLimit)
	for {
		conn.SetReadDeadline(time.Now().Add(streamIdle))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("story stream read failed", zap.Error(err))
			}
			logger.Info("story stream closed", zap.Int("stories_visible", len(session.Stories())))
			return
		}

		reply, ok := s.handleStreamMessage(session, data, logger)
		if !ok {
			continue
		}
		if err := s.send(conn, reply); err != nil {
			logger.Warn("failed to send reply", zap.Error(err))
			return
		}
	}
}

// handleStreamMessage applies one client frame to the session and returns
// the reply, if any.
func (s *Server) handleStreamMessage(session *feed.Session, data []byte, logger *zap.Logger) (stream.ServerMessage, bool) {
	msg, err := stream.ParseClientMessage(data)
	if err != nil {
		logger.Warn("invalid stream message", zap.Error(err))
		return stream.ServerMessage{Type: stream.TypeError, Message: err.Error()}, true
	}

	switch msg.Type {
	case stream.TypeAdvance:
		page, _ := session.Advance()
		return pageMessage(page), true

	case stream.TypeScroll:
		page, advanced := session.Scroll(pager.ScrollMetrics{
			Offset:        msg.Offset,
			ContentLength: msg.ContentLength,
			VisibleLength: msg.VisibleLength,
		})
		if !advanced {
			return stream.ServerMessage{}, false
		}
		return pageMessage(page), true

	case stream.TypePress:
		if err := session.Press(msg.Action); err != nil {
			if !errors.Is(err, components.ErrUnknownAction) {
				logger.Error("failed to dispatch press", zap.Error(err))
			}
			return stream.ServerMessage{Type: stream.TypeError, Message: err.Error()}, true
		}
		return stream.ServerMessage{Type: stream.TypeAck, Action: msg.Action}, true
	}

	return stream.ServerMessage{}, false
}

func (s *Server) send(conn *websocket.Conn, msg stream.ServerMessage) error {
	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(msg)
}

func pageMessage(p feed.Page) stream.ServerMessage {
	return stream.ServerMessage{
		Type:       stream.TypePage,
		Items:      p.Items,
		Visible:    p.Visible,
		Total:      p.Total,
		PageCursor: p.PageCursor,
		Exhausted:  p.Exhausted,
	}
}
