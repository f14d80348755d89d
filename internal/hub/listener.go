package hub

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// Listener keeps a persistent connection to a notification hub and invokes a
// callback for every "Update" signal. Dropped connections are redialed with
// backoff until the listener is closed.
type Listener struct {
	url      string
	onUpdate func()

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
	closed bool
}

func NewListener(url string, onUpdate func()) *Listener {
	return &Listener{
		url:      url,
		onUpdate: onUpdate,
	}
}

// Start dials the hub. It returns once the connection is established, so
// callers can rely on notifications from that point on. The read loop and
// any reconnects run in the background.
func (l *Listener) Start(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}

	conn, _, err := dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to hub at %s: %w", l.url, err)
	}

	runCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		cancel()
		conn.Close()
		return fmt.Errorf("listener is closed")
	}
	l.conn = conn
	l.cancel = cancel
	l.mu.Unlock()

	go l.run(runCtx, conn)
	return nil
}

// Close stops the read loop and tears down the connection.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	if l.conn != nil {
		return l.conn.Close()
	}
	return nil
}

func (l *Listener) run(ctx context.Context, conn *websocket.Conn) {
	for {
		err := l.readLoop(conn)
		conn.Close()

		if ctx.Err() != nil {
			return
		}
		log.Printf("Hub connection lost (%v), reconnecting...", err)

		conn = l.reconnect(ctx)
		if conn == nil {
			return
		}

		l.mu.Lock()
		l.conn = conn
		l.mu.Unlock()
	}
}

func (l *Listener) readLoop(conn *websocket.Conn) error {
	for {
		msgType, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		if msgType == websocket.TextMessage && string(message) == SignalUpdate {
			l.onUpdate()
		}
	}
}

func (l *Listener) reconnect(ctx context.Context) *websocket.Conn {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	delay := reconnectBaseDelay

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		conn, _, err := dialer.DialContext(ctx, l.url, nil)
		if err == nil {
			log.Printf("Reconnected to hub at %s", l.url)
			return conn
		}

		log.Printf("Failed to reconnect to hub: %v", err)
		delay *= 2
		if delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}
