package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	uuid "github.com/google/uuid"
	websocket "github.com/gorilla/websocket"

	constants "github.com/inference-gateway/coordpick/internal/constants"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// EventGallerySnapshot is sent once to every new connection
const EventGallerySnapshot domain.EventType = "gallery.snapshot"

const clientBufferSize = 64

// upgrader keeps gorilla's default origin check: the handshake is refused
// unless Origin is absent or names the host being dialed
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type client struct {
	id   string
	send chan []byte
}

// Hub broadcasts gallery and feedback events to every connected page
type Hub struct {
	logical  domain.Size
	snapshot func() GalleryView

	mu      sync.RWMutex
	clients map[string]*client
	closed  bool
}

// NewHub creates a hub. snapshot is rendered for each new connection.
func NewHub(logical domain.Size, snapshot func() GalleryView) *Hub {
	return &Hub{
		logical:  logical,
		snapshot: snapshot,
		clients:  make(map[string]*client),
	}
}

// Publish implements domain.EventPublisher
func (h *Hub) Publish(event domain.Event) {
	if entry, ok := event.Payload.(domain.GalleryEntry); ok {
		event.Payload = RenderCard(entry, h.logical)
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			logger.Warn("Client send buffer full, dropping event", "client_id", c.id, "type", event.Type)
		}
	}
}

// ClientCount returns the number of connected pages
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
	h.closed = true
}

// register adds a client whose queue already holds the gallery snapshot, so the
// snapshot is always the first message. An entry published between the
// snapshot render and its broadcast may arrive twice; the page skips ids it
// already shows.
func (h *Hub) register() (*client, bool) {
	c := &client{id: uuid.New().String(), send: make(chan []byte, clientBufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	if data := h.snapshotMessage(); data != nil {
		c.send <- data
	}
	h.clients[c.id] = c
	return c, true
}

func (h *Hub) snapshotMessage() []byte {
	if h.snapshot == nil {
		return nil
	}
	data, err := json.Marshal(domain.Event{Type: EventGallerySnapshot, Payload: h.snapshot()})
	if err != nil {
		logger.Error("Failed to marshal gallery snapshot", "error", err)
		return nil
	}
	return data
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		close(c.send)
		delete(h.clients, c.id)
	}
}

// HandleWebSocket upgrades the request and streams events until the page goes away
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket", "error", err)
		return
	}

	c, ok := h.register()
	if !ok {
		_ = conn.Close()
		return
	}
	logger.Info("WebSocket client connected", "client_id", c.id, "remote", r.RemoteAddr)

	go h.readLoop(conn, c)
	h.writeLoop(conn, c)

	logger.Info("WebSocket client disconnected", "client_id", c.id)
}

// readLoop only drains control frames; the page never sends data
func (h *Hub) readLoop(conn *websocket.Conn, c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, c *client) {
	ticker := time.NewTicker(constants.WSPingInterval)
	defer func() {
		ticker.Stop()
		if err := conn.Close(); err != nil {
			logger.Warn("Failed to close WebSocket connection", "error", err)
		}
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warn("Failed to write WebSocket message", "client_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
