package assessment

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"mise/internal/compliance/registry"
	"mise/pkg/platform/sentinel"
)

// MemoryStore keeps records in memory, bucketed by physical table the same way
// the SQL store is, so shared-table regimes behave identically in tests.
type MemoryStore struct {
	registry *registry.Registry

	mu     sync.RWMutex
	tables map[string][]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(reg *registry.Registry) *MemoryStore {
	return &MemoryStore{registry: reg, tables: make(map[string][]Record)}
}

func (s *MemoryStore) tableFor(framework string) (string, string) {
	cfg := s.registry.Get(framework)
	return cfg.Table("assessments"), cfg.AssessmentFrameworkFilter
}

func (s *MemoryStore) Create(_ context.Context, rec Record) error {
	table, _ := s.tableFor(rec.Framework)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], rec)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, framework string, id uuid.UUID) (Record, error) {
	table, filter := s.tableFor(framework)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.tables[table] {
		if rec.ID != id {
			continue
		}
		if filter != "" && rec.Framework != framework {
			continue
		}
		return rec, nil
	}
	return Record{}, sentinel.ErrNotFound
}

func (s *MemoryStore) ListByVenue(_ context.Context, framework string, venueID uuid.UUID) ([]Record, error) {
	table, filter := s.tableFor(framework)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, rec := range s.tables[table] {
		if rec.VenueID != venueID {
			continue
		}
		if filter != "" && rec.Framework != framework {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
