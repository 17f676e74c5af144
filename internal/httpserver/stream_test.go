package httpserver

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/responsive"
	"github.com/blackmichael/explore-feed/internal/stream"
)

func dialStream(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/stories/stream" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) stream.ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg stream.ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestStream_Protocol(t *testing.T) {
	s, presses := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialStream(t, srv, "?width=375&height=667")

	first := readMessage(t, conn)
	assert.Equal(t, stream.TypePage, first.Type)
	assert.NotEmpty(t, first.SessionID)
	assert.Len(t, first.Items, 6)
	assert.Equal(t, 1, first.PageCursor)

	// far from the end: no reply, so the next frame answers the advance
	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypeScroll, Offset: 0, ContentLength: 486, VisibleLength: 100}))
	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypeAdvance}))
	page := readMessage(t, conn)
	assert.Equal(t, 7, page.Items[0].ID)
	assert.Equal(t, 12, page.Visible)

	// near the end: the scroll itself advances
	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypeScroll, Offset: 900, ContentLength: 972, VisibleLength: 100}))
	page = readMessage(t, conn)
	assert.Equal(t, 18, page.Visible)

	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypeAdvance}))
	page = readMessage(t, conn)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.Exhausted)

	// advancing an exhausted strip answers with an empty page
	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypeAdvance}))
	page = readMessage(t, conn)
	assert.Empty(t, page.Items)
	assert.Equal(t, 20, page.Visible)

	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypePress, Action: "menu:2"}))
	ack := readMessage(t, conn)
	assert.Equal(t, stream.TypeAck, ack.Type)
	assert.Equal(t, "menu:2", ack.Action)

	require.NoError(t, conn.WriteJSON(stream.ClientMessage{Type: stream.TypePress, Action: "share"}))
	assert.Equal(t, stream.TypeError, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"dance"}`)))
	bad := readMessage(t, conn)
	assert.Equal(t, stream.TypeError, bad.Type)
	assert.Contains(t, bad.Message, "dance")

	presses.mu.Lock()
	assert.Equal(t, []int{2}, presses.menus)
	presses.mu.Unlock()
}

func TestStream_RejectsBadScreen(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/stories/stream?width=-1"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()
}

func TestStream_SubscriberPagesToExhaustion(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	var sizes []int
	var ids []int
	sub := stream.NewSubscriber(
		"ws"+strings.TrimPrefix(srv.URL, "http")+"/v1/stories/stream",
		responsive.Baseline(),
		func(_ context.Context, p stream.Page) error {
			sizes = append(sizes, len(p.Items))
			for _, it := range p.Items {
				ids = append(ids, it.ID)
			}
			return nil
		},
		zap.NewNop(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, sub.Start(ctx))

	assert.Equal(t, []int{6, 6, 6, 2}, sizes)
	require.Len(t, ids, 20)
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}
}
