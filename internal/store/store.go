// Package store persists named application state slices as JSON files on
// local disk. Each slice is independent; there is no transactional grouping
// across keys and a single process is assumed to be the only writer.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SchemaVersion is embedded in every slice envelope. A stored slice whose
// version differs is treated the same as corrupt content: the reader gets
// the default value back (reset-on-mismatch policy).
const SchemaVersion = 1

var keyPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// envelope wraps a slice payload with its schema version.
type envelope struct {
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Data      json.RawMessage `json:"data"`
}

// Store reads and writes state slices under a single directory.
type Store struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// Read decodes the slice stored under key into dst (a pointer). On a missing
// file, malformed content, or schema version mismatch, dst receives
// defaultValue instead and Read reports degraded=true. Read never returns an
// error to the caller; corruption always degrades to the default.
func (s *Store) Read(key string, dst interface{}, defaultValue interface{}) (degraded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !keyPattern.MatchString(key) {
		s.logger.Error().Str("key", key).Msg("Refusing to read slice with invalid key")
		s.applyDefault(key, dst, defaultValue)
		return true
	}

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("key", key).Msg("Failed to read state slice, using default")
		}
		s.applyDefault(key, dst, defaultValue)
		return true
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("State slice is malformed, using default")
		s.applyDefault(key, dst, defaultValue)
		return true
	}

	if env.Version != SchemaVersion {
		s.logger.Warn().
			Int("storedVersion", env.Version).
			Int("schemaVersion", SchemaVersion).
			Str("key", key).
			Msg("State slice schema version mismatch, resetting to default")
		s.applyDefault(key, dst, defaultValue)
		return true
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("State slice payload does not decode, using default")
		s.applyDefault(key, dst, defaultValue)
		return true
	}

	return false
}

// Write serializes value under key. The write is best effort: any failure is
// logged and swallowed, matching the fire-and-forget persistence contract.
func (s *Store) Write(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !keyPattern.MatchString(key) {
		s.logger.Error().Str("key", key).Msg("Refusing to persist slice with invalid key")
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize state slice")
		return
	}

	raw, err := json.Marshal(envelope{
		Version:   SchemaVersion,
		UpdatedAt: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize state envelope")
		return
	}

	// Write through a temp file so a crash mid-write leaves the previous
	// content intact rather than a truncated file.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to write state slice")
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to replace state slice")
	}
}

// Has reports whether a slice file exists for key. Used by seeding to avoid
// overwriting state a previous run already persisted.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// applyDefault copies defaultValue into dst via a JSON round trip, which
// also guarantees dst ends up with a detached copy of any default slices.
func (s *Store) applyDefault(key string, dst interface{}, defaultValue interface{}) {
	data, err := json.Marshal(defaultValue)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize default value")
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to apply default value")
	}
}
