// Package assessment records completed self-assessments and their scores.
package assessment

import (
	"time"

	"github.com/google/uuid"

	"mise/internal/compliance/models"
	"mise/internal/compliance/scoring"
)

// Record is one completed self-assessment for a venue.
type Record struct {
	ID        uuid.UUID        `json:"id"`
	VenueID   uuid.UUID        `json:"venue_id"`
	Framework string           `json:"framework"`
	Answers   models.AnswerSet `json:"answers"`
	Result    scoring.Result   `json:"result"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"created_at"`
}

// FrameworkLatest pairs a framework code with the venue's most recent record
// under it, for the overview endpoint.
type FrameworkLatest struct {
	Framework string  `json:"framework"`
	Latest    *Record `json:"latest"`
	Total     int     `json:"total"`
}
