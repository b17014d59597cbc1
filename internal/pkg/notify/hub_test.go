package notify

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// A watcher whose send buffer is full must be dropped inline. Pushing it
// through the unregister channel would block the run loop on itself and
// freeze every later broadcast.
func TestBroadcastDropsStalledWatcher(t *testing.T) {
	h := NewHub(zerolog.Nop())

	healthy := &Client{hub: h, send: make(chan []byte, 16), userID: "STU-001"}
	stalled := &Client{hub: h, send: make(chan []byte, 1), userID: "STU-002"}
	h.clients[healthy] = true
	h.clients[stalled] = true

	stalled.send <- []byte("backlog")

	done := make(chan struct{})
	go func() {
		h.broadcastEvent(&Event{Type: EventStudentPresent, SessionID: "ATT-1", StudentID: "STU-001", Timestamp: time.Now()})
		h.broadcastEvent(&Event{Type: EventSessionClosed, SessionID: "ATT-1", Timestamp: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a stalled watcher")
	}

	assert.Equal(t, 1, h.ClientCount())
	assert.Len(t, healthy.send, 2)

	<-stalled.send // drain the backlog message
	_, ok := <-stalled.send
	assert.False(t, ok, "dropped watcher's send channel should be closed")
}

func TestBroadcastWithoutWatchers(t *testing.T) {
	h := NewHub(zerolog.Nop())

	done := make(chan struct{})
	go func() {
		h.broadcastEvent(&Event{Type: EventSessionStarted, SessionID: "ATT-1", Timestamp: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked with no watchers")
	}

	assert.Zero(t, h.ClientCount())
}
