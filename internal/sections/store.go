package sections

import (
	"context"

	"github.com/google/uuid"
)

// Store persists per-venue section toggle overrides. Only explicit overrides
// are stored; sections a venue never touched resolve from framework defaults.
type Store interface {
	// Overrides returns the venue's explicit toggles keyed by section code.
	Overrides(ctx context.Context, venueID uuid.UUID) (map[string]bool, error)
	// SetOverride records an explicit toggle for one section.
	SetOverride(ctx context.Context, venueID uuid.UUID, sectionCode string, enabled bool) error
	// ClearOverride removes an explicit toggle, reverting to the default.
	ClearOverride(ctx context.Context, venueID uuid.UUID, sectionCode string) error
}
