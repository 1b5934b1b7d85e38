package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeSettings ReloadMessageType = "settings"
	ReloadTypeError    ReloadMessageType = "error"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type     ReloadMessageType `json:"type"`
	Defaults map[string]any    `json:"defaults,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// HubConfig configures a ReloadHub.
type HubConfig struct {
	// CheckOrigin validates upgrade requests. Nil allows every origin.
	CheckOrigin func(r *http.Request) bool

	// WriteTimeout bounds each message write. Default: 5s.
	WriteTimeout time.Duration

	// OnClients is called with the client count whenever it changes.
	OnClients func(n int)
}

// ReloadHub manages WebSocket connections of pages waiting for settings
// updates. It implements http.Handler.
type ReloadHub struct {
	config   HubConfig
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadHub creates a new reload hub.
func NewReloadHub(config HubConfig) *ReloadHub {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 5 * time.Second
	}
	checkOrigin := config.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &ReloadHub{
		config:  config,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: slog.Default().With("component", "reload"),
	}
}

// SetLogger sets the hub logger.
func (h *ReloadHub) SetLogger(logger *slog.Logger) {
	if logger != nil {
		h.logger = logger
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client disconnects.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.clientsChanged(n)

	// Clients never send; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// NotifySettings sends the new bootstrap payload to all clients.
func (h *ReloadHub) NotifySettings(defaults map[string]any) {
	if defaults == nil {
		defaults = map[string]any{}
	}
	h.Broadcast(ReloadMessage{Type: ReloadTypeSettings, Defaults: defaults})
}

// NotifyError sends an error message to all clients.
func (h *ReloadHub) NotifyError(errMsg string) {
	h.Broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// Broadcast sends msg to all connected clients. Clients that fail to
// receive it are dropped.
func (h *ReloadHub) Broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode reload message", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, client := range clients {
		client.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
	h.mu.Unlock()
	h.clientsChanged(0)
}

func (h *ReloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	if ok {
		h.clientsChanged(n)
	}
}

func (h *ReloadHub) clientsChanged(n int) {
	if h.config.OnClients != nil {
		h.config.OnClients(n)
	}
}
