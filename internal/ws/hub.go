package ws

import (
	"encoding/json"
	"sync"
)

// Event is the JSON envelope for every frame pushed to clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub tracks connected clients by user. A user may hold several
// connections (multiple tabs or devices); events go to all of them.
type Hub struct {
	mu     sync.RWMutex
	byUser map[uint]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	stopOnce   sync.Once
	stopCh     chan struct{}
}

// NewHub creates a Hub. Call Run in a goroutine before serving connections.
func NewHub() *Hub {
	return &Hub{
		byUser:     make(map[uint]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopCh:     make(chan struct{}),
	}
}

// Run processes client registration until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]struct{})
			}
			h.byUser[client.userID][client] = struct{}{}
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if conns := h.byUser[client.userID]; conns != nil {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.byUser, client.userID)
					}
				}
			}
			h.mu.Unlock()
		case <-h.stopCh:
			h.mu.Lock()
			for userID, conns := range h.byUser {
				for client := range conns {
					close(client.send)
				}
				delete(h.byUser, userID)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and drops every client.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
}

// addClient hands a client to Run. When the hub is stopped the send would
// block forever, so it bails out instead.
func (h *Hub) addClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopCh:
	}
}

// removeClient mirrors addClient for disconnecting clients.
func (h *Hub) removeClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stopCh:
	}
}

// SendToUser pushes an event to every connection of a user. Users with no
// open connection are skipped; delivery is best effort.
func (h *Hub) SendToUser(userID uint, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.byUser[userID] {
		select {
		case client.send <- payload:
		default:
			// slow consumer, drop the frame rather than block the hub
		}
	}
}

// IsOnline reports whether the user has at least one open connection.
func (h *Hub) IsOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser[userID]) > 0
}
