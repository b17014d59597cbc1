package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestReadMissingKeyReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	defaults := []record{{ID: "R-1", Name: "Alpha"}}
	var got []record
	degraded := s.Read("records", &got, defaults)

	assert.True(t, degraded)
	assert.Equal(t, defaults, got)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []record{{ID: "R-1", Name: "Alpha"}, {ID: "R-2", Name: "Beta"}}
	s.Write("records", want)

	var got []record
	degraded := s.Read("records", &got, []record{})

	assert.False(t, degraded)
	assert.Equal(t, want, got)
}

func TestReadCorruptFileDegradesToDefault(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Dir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	defaults := []record{{ID: "R-1", Name: "Alpha"}}
	var got []record
	degraded := s.Read("records", &got, defaults)

	assert.True(t, degraded)
	assert.Equal(t, defaults, got)
}

func TestReadVersionMismatchResetsToDefault(t *testing.T) {
	s := newTestStore(t)

	stale, err := json.Marshal(envelope{
		Version:   SchemaVersion + 1,
		UpdatedAt: time.Now().UTC(),
		Data:      json.RawMessage(`[{"id":"R-9","name":"Stale"}]`),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "records.json"), stale, 0o644))

	defaults := []record{{ID: "R-1", Name: "Alpha"}}
	var got []record
	degraded := s.Read("records", &got, defaults)

	assert.True(t, degraded)
	assert.Equal(t, defaults, got)
}

func TestWriteRejectsInvalidKey(t *testing.T) {
	s := newTestStore(t)

	s.Write("../escape", []record{{ID: "R-1"}})

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadRejectsInvalidKey(t *testing.T) {
	s := newTestStore(t)

	// A traversal key must degrade to the default, never touch the path
	defaults := []record{{ID: "R-1", Name: "Alpha"}}
	var got []record
	degraded := s.Read("../outside", &got, defaults)

	assert.True(t, degraded)
	assert.Equal(t, defaults, got)
}

func TestHasReportsPersistedSlices(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.Has("records"))
	s.Write("records", []record{})
	assert.True(t, s.Has("records"))
}

func TestDefaultIsDetachedCopy(t *testing.T) {
	s := newTestStore(t)

	defaults := []record{{ID: "R-1", Name: "Alpha"}}
	var got []record
	s.Read("records", &got, defaults)

	got[0].Name = "Changed"
	assert.Equal(t, "Alpha", defaults[0].Name)
}
