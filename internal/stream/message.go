package stream

import (
	"encoding/json"
	"fmt"

	"github.com/blackmichael/explore-feed/internal/domain"
)

// Message types exchanged on the story stream.
const (
	// TypeScroll reports the stories strip's scroll position. The server
	// answers with a page only when the position triggered an advance.
	TypeScroll = "scroll"

	// TypeAdvance explicitly requests the next page. The server always
	// answers with a page, empty once exhausted.
	TypeAdvance = "advance"

	// TypePress dispatches a button action. The server answers with an ack.
	TypePress = "press"

	TypePage  = "page"
	TypeAck   = "ack"
	TypeError = "error"
)

// ClientMessage is sent by a stream client.
type ClientMessage struct {
	Type string `json:"type"`

	Offset        float64 `json:"offset,omitempty"`
	ContentLength float64 `json:"content_length,omitempty"`
	VisibleLength float64 `json:"visible_length,omitempty"`

	Action string `json:"action,omitempty"`
}

// ServerMessage is sent by the stream server.
type ServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`

	// page; always written in full, see MarshalJSON
	Items      []domain.StoryRecord `json:"items,omitempty"`
	Visible    int                  `json:"visible,omitempty"`
	Total      int                  `json:"total,omitempty"`
	PageCursor int                  `json:"page_cursor,omitempty"`
	Exhausted  bool                 `json:"exhausted,omitempty"`

	// ack
	Action string `json:"action,omitempty"`

	// error
	Message string `json:"message,omitempty"`
}

// MarshalJSON writes every page field on page messages, zero values
// included, and leaves the page fields off acks and errors.
func (m ServerMessage) MarshalJSON() ([]byte, error) {
	type plain ServerMessage
	if m.Type != TypePage {
		return json.Marshal(plain(m))
	}

	items := m.Items
	if items == nil {
		items = []domain.StoryRecord{}
	}
	return json.Marshal(struct {
		Type       string               `json:"type"`
		SessionID  string               `json:"session_id,omitempty"`
		Items      []domain.StoryRecord `json:"items"`
		Visible    int                  `json:"visible"`
		Total      int                  `json:"total"`
		PageCursor int                  `json:"page_cursor"`
		Exhausted  bool                 `json:"exhausted"`
	}{
		Type:       m.Type,
		SessionID:  m.SessionID,
		Items:      items,
		Visible:    m.Visible,
		Total:      m.Total,
		PageCursor: m.PageCursor,
		Exhausted:  m.Exhausted,
	})
}

// ParseClientMessage decodes and checks a client frame.
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}

	switch msg.Type {
	case TypeAdvance:
	case TypeScroll:
		if msg.VisibleLength <= 0 || msg.ContentLength < 0 {
			return nil, fmt.Errorf("scroll message needs positive visible_length and non-negative content_length")
		}
	case TypePress:
		if msg.Action == "" {
			return nil, fmt.Errorf("press message needs an action")
		}
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
	return &msg, nil
}

func parseServerMessage(data []byte) (*ServerMessage, error) {
	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}

	switch msg.Type {
	case TypePage, TypeAck, TypeError:
		return &msg, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
}
