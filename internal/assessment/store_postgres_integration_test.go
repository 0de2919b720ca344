//go:build integration

package assessment_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mise/internal/assessment"
	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
	"mise/internal/compliance/scoring"
	"mise/pkg/platform/sentinel"
	"mise/pkg/testutil/containers"
)

const assessmentTableDDL = `
CREATE TABLE IF NOT EXISTS %s (
	id         UUID PRIMARY KEY,
	venue_id   UUID NOT NULL,
	framework  TEXT NOT NULL,
	answers    JSONB NOT NULL,
	result     JSONB NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
)`

func newPostgresStore(t *testing.T) (*assessment.PostgresStore, *registry.Registry) {
	t.Helper()

	pc := containers.NewPostgresContainer(t)
	reg, err := registry.New()
	require.NoError(t, err)

	for _, table := range []string{"self_assessments", "uae_assessments"} {
		pc.Exec(t, fmt.Sprintf(assessmentTableDDL, table))
		pc.Exec(t, "TRUNCATE "+table)
	}

	return assessment.NewPostgresStore(pc.DB, reg), reg
}

func record(reg *registry.Registry, framework string, venueID uuid.UUID) assessment.Record {
	cfg := reg.Get(framework)
	items := cfg.Items()
	answers := models.AnswerSet{
		items[0].Code: {Status: models.StatusCompliant},
		items[1].Code: {Status: models.StatusNonCompliant, Severity: models.SeverityMinor},
	}
	return assessment.Record{
		ID:        uuid.New(),
		VenueID:   venueID,
		Framework: cfg.Code,
		Answers:   answers,
		Result:    scoring.Score(cfg, answers),
		Notes:     "integration test",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestPostgresStore_CreateGetList(t *testing.T) {
	store, reg := newPostgresStore(t)
	ctx := context.Background()
	venueID := uuid.New()

	rec := record(reg, "bcc", venueID)
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.Get(ctx, "bcc", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Answers, got.Answers)
	assert.Equal(t, rec.Result, got.Result)
	assert.Equal(t, rec.Notes, got.Notes)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Millisecond)

	recs, err := store.ListByVenue(ctx, "bcc", venueID)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	_, err = store.Get(ctx, "bcc", uuid.New())
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestPostgresStore_SharedTableFilter(t *testing.T) {
	store, reg := newPostgresStore(t)
	ctx := context.Background()
	venueID := uuid.New()

	dmRec := record(reg, "dm", venueID)
	adafsaRec := record(reg, "adafsa", venueID)
	require.NoError(t, store.Create(ctx, dmRec))
	require.NoError(t, store.Create(ctx, adafsaRec))

	// Both land in uae_assessments but list separately.
	dmRecs, err := store.ListByVenue(ctx, "dm", venueID)
	require.NoError(t, err)
	require.Len(t, dmRecs, 1)
	assert.Equal(t, "dm", dmRecs[0].Framework)

	// A framework-filtered Get does not see the other regime's rows.
	_, err = store.Get(ctx, "adafsa", dmRec.ID)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))

	got, err := store.Get(ctx, "adafsa", adafsaRec.ID)
	require.NoError(t, err)
	assert.Equal(t, adafsaRec.ID, got.ID)
}

func TestPostgresStore_ListOrdersNewestFirst(t *testing.T) {
	store, reg := newPostgresStore(t)
	ctx := context.Background()
	venueID := uuid.New()

	older := record(reg, "bcc", venueID)
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := record(reg, "bcc", venueID)

	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	recs, err := store.ListByVenue(ctx, "bcc", venueID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, newer.ID, recs[0].ID)
	assert.Equal(t, older.ID, recs[1].ID)
}
