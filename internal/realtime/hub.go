// Package realtime fans workout store changes out to websocket clients.
package realtime

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/logging"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// DefaultPingInterval keeps idle connections open through proxies.
	DefaultPingInterval = 25 * time.Second
	writeWait           = 10 * time.Second
	sendBuffer          = 16
)

// Client is one connected websocket. Only its writer goroutine writes to conn.
// send is never closed; done tells the writer to stop.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn, send: make(chan []byte, sendBuffer), done: make(chan struct{})}
}

func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

// Hub broadcasts workout events to every registered client.
type Hub struct {
	mu           sync.RWMutex
	clients      map[*Client]struct{}
	pingInterval time.Duration
	logger       logging.Logger
}

func NewHub(pingInterval time.Duration, logger logging.Logger) *Hub {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	return &Hub{
		clients:      make(map[*Client]struct{}),
		pingInterval: pingInterval,
		logger:       logger,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}

// Count is the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues the event for every client without blocking. A client whose
// buffer is full is too slow to keep up and gets disconnected.
func (h *Hub) Publish(event domain.WorkoutEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("realtime: marshal %s: %v", event.Type, err)
		return
	}

	var slow []*Client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warnf("realtime: dropping slow client %s", c.conn.RemoteAddr())
		h.unregister(c)
		// Unblocks a writer stuck on a full socket and ends the read loop.
		_ = c.conn.Close()
	}
}

// Serve owns conn until the peer goes away. It registers the client, runs
// the writer, and blocks in the read loop; any read error ends the session.
func (h *Hub) Serve(conn *websocket.Conn) {
	c := newClient(conn)
	h.register(c)
	h.logger.Debugf("realtime: client connected from %s (%d total)", conn.RemoteAddr(), h.Count())

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(c)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
	<-done
	_ = conn.Close()
	h.logger.Debugf("realtime: client %s disconnected", conn.RemoteAddr())
}

func (h *Hub) writeLoop(c *Client) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	stop := func() {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
		_ = c.conn.Close()
	}
	for {
		// Queued frames are abandoned once the client is unregistered.
		select {
		case <-c.done:
			stop()
			return
		default:
		}

		select {
		case <-c.done:
			stop()
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.unregister(c)
				_ = c.conn.Close() // unblocks the read loop
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				_ = c.conn.Close()
				return
			}
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}
