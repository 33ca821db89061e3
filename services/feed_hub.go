package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// FeedClient is one websocket subscriber to the community feed.
type FeedClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex
}

// Send writes one message to the client. The connection allows only a
// single concurrent writer, so every write goes through this lock; the
// broadcast path and the keepalive pinger share it.
func (c *FeedClient) Send(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// FeedHub fans community events (new posts, comments, likes) out to
// every connected client.
type FeedHub struct {
	mu      sync.RWMutex
	clients map[*FeedClient]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[*FeedClient]struct{})}
}

func (h *FeedHub) Register(c *FeedClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *FeedHub) Unregister(c *FeedClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends {kind, payload} to all subscribers. Write errors are
// ignored here; the read loop notices dead connections and unregisters.
func (h *FeedHub) Broadcast(kind string, payload any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
