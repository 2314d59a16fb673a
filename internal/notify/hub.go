package notify

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"property-engine/internal/models"
)

// Hub pushes notifications to connected websocket clients. Each user
// may hold several connections (tabs); a failed write drops just that
// connection.
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
	log   zerolog.Logger
}

// NewHub creates an empty websocket hub
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[string]map[*websocket.Conn]bool),
		log:   log.With().Str("component", "ws-hub").Logger(),
	}
}

// Register adds a connection for a user
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

// Unregister removes and closes a connection for a user
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	conn.Close()
}

// CloseUser tears down every connection held by a user
func (h *Hub) CloseUser(userID string) {
	h.mu.Lock()
	set := h.conns[userID]
	delete(h.conns, userID)
	h.mu.Unlock()

	for conn := range set {
		conn.Close()
	}
}

// Send pushes one notification to all of a user's connections
func (h *Hub) Send(userID string, n models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[userID] {
		if err := conn.WriteJSON(n); err != nil {
			h.log.Debug().Err(err).Str("user_id", userID).Msg("dropping websocket connection")
			delete(h.conns[userID], conn)
			conn.Close()
		}
	}
}
