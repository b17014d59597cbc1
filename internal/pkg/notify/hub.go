// Package notify pushes attendance events to connected portal clients over
// WebSocket. There is a single campus-wide room: every watcher receives
// every event and filters client-side.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types pushed to watchers.
const (
	EventSessionStarted = "session_started"
	EventSessionClosed  = "session_closed"
	EventStudentPresent = "student_present"
)

// Event represents an attendance notification sent over WebSocket
type Event struct {
	// Type of event: session_started, session_closed, student_present
	Type string `json:"type"`

	// Attendance session the event belongs to
	SessionID string `json:"sessionId"`

	// Course the session was opened for
	CourseID string `json:"courseId,omitempty"`

	// Faculty member who opened the session
	FacultyID string `json:"facultyId,omitempty"`

	// Student who checked in, for student_present events
	StudentID string `json:"studentId,omitempty"`

	// Timestamp when the event occurred
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active watchers and broadcasts events to them
type Hub struct {
	// Registered watchers
	clients map[*Client]bool

	// Channel for events to fan out
	broadcast chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Attendance watcher registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("userID", client.userID).
			Str("addr", client.conn.RemoteAddr().String()).
			Msg("Attendance watcher unregistered")
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		h.logger.Debug().Str("type", event.Type).Msg("No watchers for attendance event")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal attendance event")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Watcher's send buffer is full, they might be slow or
			// disconnected. Drop them inline; routing through the
			// unregister channel would block the run loop on itself.
			delete(h.clients, client)
			close(client.send)
			h.logger.Info().Str("userID", client.userID).Msg("Attendance watcher dropped, send buffer full")
		}
	}

	h.logger.Debug().
		Str("type", event.Type).
		Int("clientCount", len(h.clients)).
		Msg("Attendance event broadcasted")
}

// Broadcast sends an event to all connected watchers
func (h *Hub) Broadcast(event *Event) {
	h.broadcast <- event
}

// ClientCount returns the number of connected watchers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
