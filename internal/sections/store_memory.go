package sections

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store used in development and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides map[uuid.UUID]map[string]bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: make(map[uuid.UUID]map[string]bool)}
}

func (s *MemoryStore) Overrides(_ context.Context, venueID uuid.UUID) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.overrides[venueID]))
	for code, enabled := range s.overrides[venueID] {
		out[code] = enabled
	}
	return out, nil
}

func (s *MemoryStore) SetOverride(_ context.Context, venueID uuid.UUID, sectionCode string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.overrides[venueID] == nil {
		s.overrides[venueID] = make(map[string]bool)
	}
	s.overrides[venueID][sectionCode] = enabled
	return nil
}

func (s *MemoryStore) ClearOverride(_ context.Context, venueID uuid.UUID, sectionCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.overrides[venueID], sectionCode)
	return nil
}
