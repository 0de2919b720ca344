// Package sections resolves which operational-logging sections are live for a
// venue: framework defaults, adjusted for the operating mode, then any
// per-venue overrides on top.
package sections

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainerrors "mise/pkg/domain-errors"

	"mise/internal/compliance/registry"
)

// Toggle is the resolved state of one section for a venue.
type Toggle struct {
	Code       string `json:"code"`
	Title      string `json:"title"`
	Enabled    bool   `json:"enabled"`
	Overridden bool   `json:"overridden"`
}

// Service resolves and updates section toggles.
type Service struct {
	store    Store
	registry *registry.Registry
	liteMode bool
}

// NewService wires the toggle store against the framework registry.
func NewService(store Store, reg *registry.Registry, liteMode bool) *Service {
	return &Service{store: store, registry: reg, liteMode: liteMode}
}

// Resolve returns every section the venue's framework defines, with the
// effective enabled state. Defaults come from the framework definition; an
// explicit venue override wins.
func (s *Service) Resolve(ctx context.Context, venueID uuid.UUID, frameworkCode string) ([]Toggle, error) {
	cfg := s.registry.Get(frameworkCode)

	overrides, err := s.store.Overrides(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("resolve sections for venue %s: %w", venueID, err)
	}

	out := make([]Toggle, 0, len(cfg.Sections))
	for _, def := range cfg.Sections {
		t := Toggle{
			Code:    def.Code,
			Title:   def.Title,
			Enabled: def.EnabledByDefault(s.liteMode),
		}
		if enabled, ok := overrides[def.Code]; ok {
			t.Enabled = enabled
			t.Overridden = true
		}
		out = append(out, t)
	}
	return out, nil
}

// Set records a venue override for a section. The section must exist in the
// venue's framework.
func (s *Service) Set(ctx context.Context, venueID uuid.UUID, frameworkCode, sectionCode string, enabled bool) error {
	cfg := s.registry.Get(frameworkCode)

	known := false
	for _, def := range cfg.Sections {
		if def.Code == sectionCode {
			known = true
			break
		}
	}
	if !known {
		return domainerrors.New(domainerrors.CodeNotFound, fmt.Sprintf("unknown section %q", sectionCode))
	}

	return s.store.SetOverride(ctx, venueID, sectionCode, enabled)
}

// Reset removes a venue override, reverting the section to its default.
func (s *Service) Reset(ctx context.Context, venueID uuid.UUID, sectionCode string) error {
	return s.store.ClearOverride(ctx, venueID, sectionCode)
}
