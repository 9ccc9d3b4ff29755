package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/server/internal/store"
)

const (
	// writeTimeout is the deadline for a single write to a client.
	writeTimeout = 10 * time.Second

	// pongWait is how long to wait for a pong before treating the
	// connection as dead.
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// sendBufSize is the per-client outgoing message buffer depth.
	sendBufSize = 8
)

// EventSession is the event name of every message the hub sends.
const EventSession = "session"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
	// The page that opens the socket is served from this same server.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the JSON envelope sent to clients.
type Message struct {
	Event string         `json:"event"`
	Data  types.Snapshot `json:"data"`
}

// Hub manages websocket clients and keeps them in sync with the session log.
// The log is checked on every tick and whenever Notify is called; clients only
// receive a message when the log grew since the previous broadcast.
type Hub struct {
	log      *store.Log
	interval time.Duration
	wake     chan struct{}

	mu      sync.RWMutex
	clients map[*client]struct{}
	sent    int // log length at the last broadcast
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a Hub that reads from log and checks for new records every
// interval.
func New(log *store.Log, interval time.Duration) *Hub {
	return &Hub{
		log:      log,
		interval: interval,
		wake:     make(chan struct{}, 1),
		clients:  make(map[*client]struct{}),
	}
}

// Run starts the broadcast loop. It blocks until ctx is cancelled, then
// closes all active connections.
func (h *Hub) Run(ctx context.Context) {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-t.C:
			h.tick()
		case <-h.wake:
			h.tick()
		}
	}
}

// Notify asks the broadcast loop to check the log now instead of waiting for
// the next tick. It never blocks; calls made while a check is already pending
// are merged.
func (h *Hub) Notify() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// ServeHTTP upgrades the request to a websocket, sends the current snapshot,
// and then serves broadcasts until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the error response.
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufSize)}
	if data, err := h.message(); err == nil {
		c.send <- data
	}
	h.register(c)
	defer h.unregister(c)

	go c.writePump()
	c.readPump()
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// --- internal ---------------------------------------------------------------

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) tick() {
	n := h.log.Len()
	h.mu.Lock()
	changed := n != h.sent
	h.sent = n
	h.mu.Unlock()
	if changed {
		h.broadcast()
	}
}

func (h *Hub) broadcast() {
	data, err := h.message()
	if err != nil {
		slog.Error("ws: build message failed", "err", err)
		return
	}

	// Sends happen under the read lock: unregister and closeAll close send
	// channels only while holding the write lock.
	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		slog.Debug("ws: dropping slow client")
		h.unregister(c)
	}
}

func (h *Hub) message() ([]byte, error) {
	return json.Marshal(Message{Event: EventSession, Data: h.log.Snapshot()})
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// writePump forwards queued messages to the connection and sends pings.
// One goroutine per client.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes control frames and detects disconnects. Clients never
// send data frames; anything they send is discarded.
func (c *client) readPump() {
	defer c.conn.Close()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
