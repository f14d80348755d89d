package hub

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SignalUpdate is the only signal the hub sends. It carries no payload.
const SignalUpdate = "Update"

const writeTimeout = 10 * time.Second

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // guards writes to conn
}

// Hub tracks connected websocket clients and broadcasts signals to all of
// them. Connect and disconnect bookkeeping is concurrency-safe; broadcasts
// iterate a snapshot of the client set so a disconnect during a broadcast
// cannot corrupt the iteration.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The hub is unauthenticated; origin checks are left to CORS
			// on the API surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and registers the client until the
// connection drops.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade hub connection: %v", err)
		return
	}

	cl := &client{conn: conn}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	// Drain inbound frames so close frames and errors are noticed. Clients
	// never send application data.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(cl)
				return
			}
		}
	}()
}

// Broadcast sends the signal to every connected client. A failed write drops
// that client only; Broadcast itself never fails.
func (h *Hub) Broadcast(signal string) {
	h.mu.RLock()
	snapshot := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		snapshot = append(snapshot, cl)
	}
	h.mu.RUnlock()

	for _, cl := range snapshot {
		cl.mu.Lock()
		cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := cl.conn.WriteMessage(websocket.TextMessage, []byte(signal))
		cl.mu.Unlock()

		if err != nil {
			log.Printf("Failed to broadcast to client, dropping connection: %v", err)
			h.remove(cl)
		}
	}
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, cl := range clients {
		cl.conn.Close()
	}
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	_, ok := h.clients[cl]
	if ok {
		delete(h.clients, cl)
	}
	h.mu.Unlock()

	if ok {
		cl.conn.Close()
	}
}
