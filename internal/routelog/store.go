package routelog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// StorageKey is the app_state slot holding the serialized route history.
// The key name doubles as the schema version tag; changing the schema
// means changing the key.
const StorageKey = "vlc_routelog_v20_stable"

// StateStore persists one opaque blob per key. The interface is defined
// from the store's perspective; internal/storage provides the SQLite
// implementation.
type StateStore interface {
	// Get reads the value under key. The bool reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put overwrites the value under key.
	Put(ctx context.Context, key, value string) error
}

// Store holds the full route history in memory, newest record first, and
// rewrites it wholesale into a single StateStore slot on every Save.
// It is safe for concurrent use by HTTP handlers.
type Store struct {
	state  StateStore
	logger *slog.Logger

	mu      sync.Mutex
	records []Record
}

// NewStore creates a Store over the given persistence slot. Call Load
// before use.
func NewStore(state StateStore) *Store {
	return &Store{
		state:  state,
		logger: slog.Default(),
	}
}

// Load reads the persisted history into memory. A missing slot yields an
// empty history. A malformed blob is logged and discarded, never fatal:
// the driver keeps working with an empty log.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.state.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("load route history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil

	if !ok || raw == "" {
		return nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("discarding malformed route history", "key", StorageKey, "error", err)
		return nil
	}
	s.records = records
	return nil
}

// Save serializes the full collection and overwrites the persisted slot.
// Every mutation is followed by a Save; there is no partial write.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	records := s.records
	if records == nil {
		records = []Record{}
	}
	raw, err := json.Marshal(records)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal route history: %w", err)
	}

	if err := s.state.Put(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("save route history: %w", err)
	}
	return nil
}

// Find returns a copy of the first record (in store order) whose origin
// and destination both match case-insensitively, or nil.
func (s *Store) Find(origin, destination string) *Record {
	origin = strings.ToLower(strings.TrimSpace(origin))
	destination = strings.ToLower(strings.TrimSpace(destination))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if strings.ToLower(s.records[i].Origin) == origin &&
			strings.ToLower(s.records[i].Destination) == destination {
			rec := s.records[i]
			return &rec
		}
	}
	return nil
}

// InsertFront prepends a record; the history is kept newest-first.
func (s *Store) InsertFront(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record{rec}, s.records...)
}

// Remove deletes the record with the given id and reports whether
// anything changed. Removing an unknown id is a no-op.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// ByWeek returns the records belonging to the given week, in store order.
func (s *Store) ByWeek(weekKey string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, 0)
	for _, r := range s.records {
		if r.WeekKey == weekKey {
			out = append(out, r)
		}
	}
	return out
}

// All returns a copy of the full history, newest first.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
