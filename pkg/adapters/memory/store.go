package memory

import (
	"context"
	"sync"

	"github.com/aretw0/lexgap/pkg/domain"
)

// Store implements ports.HistoryStore in memory.
// Safe for concurrent use.
type Store struct {
	entries []domain.HistoryEntry
	mu      sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Read returns a copy of the stored list so callers cannot mutate store
// state through the returned slice.
func (s *Store) Read(ctx context.Context) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Write replaces the full list, copying to ensure isolation, similar to
// serialization.
func (s *Store) Write(ctx context.Context, entries []domain.HistoryEntry) error {
	copied := make([]domain.HistoryEntry, len(entries))
	copy(copied, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copied
	return nil
}
