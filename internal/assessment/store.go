package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Store persists assessment records. The framework code accompanies every call
// because framework configuration decides the physical table and whether rows
// need a framework filter.
type Store interface {
	Create(ctx context.Context, rec Record) error
	// Get returns sentinel.ErrNotFound when no record exists.
	Get(ctx context.Context, framework string, id uuid.UUID) (Record, error)
	// ListByVenue returns the venue's records, newest first.
	ListByVenue(ctx context.Context, framework string, venueID uuid.UUID) ([]Record, error)
}
