package hub

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/notificationHub", h.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/notificationHub"
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d connected clients, have %d", want, h.ClientCount())
}

func TestBroadcastReachesAllClients(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, h, 2)

	h.Broadcast(SignalUpdate)

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		msgType, message, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, msgType)
		assert.Equal(t, SignalUpdate, string(message))
	}
}

func TestDisconnectedClientIsRemoved(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	conn := dial(t, srv)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)

	// Broadcasting with no clients is a no-op
	h.Broadcast(SignalUpdate)
}

func TestListenerReceivesUpdate(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	updates := make(chan struct{}, 8)
	listener := NewListener(wsURL(srv), func() {
		updates <- struct{}{}
	})

	require.NoError(t, listener.Start(context.Background()))
	defer listener.Close()
	waitForClients(t, h, 1)

	h.Broadcast(SignalUpdate)

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not receive the update signal")
	}
}

func TestListenerReconnects(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	updates := make(chan struct{}, 8)
	listener := NewListener(wsURL(srv), func() {
		updates <- struct{}{}
	})

	require.NoError(t, listener.Start(context.Background()))
	defer listener.Close()
	waitForClients(t, h, 1)

	// Drop the connection server-side and wait for the redial
	h.Close()
	waitForClients(t, h, 1)

	h.Broadcast(SignalUpdate)

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not receive an update after reconnecting")
	}
}
