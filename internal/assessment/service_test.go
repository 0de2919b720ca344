package assessment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mise/internal/assessment"
	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
	"mise/internal/platform/logger"
	domainerrors "mise/pkg/domain-errors"
)

func newService(t *testing.T) (*assessment.Service, *registry.Registry) {
	t.Helper()
	reg, err := registry.New()
	require.NoError(t, err)
	store := assessment.NewMemoryStore(reg)
	// nil metrics: the methods are nil-safe and tests should not register
	// collectors repeatedly.
	return assessment.NewService(store, reg, nil, logger.New()), reg
}

func compliantAnswers(cfg models.ComplianceFrameworkConfig, n int) models.AnswerSet {
	out := models.AnswerSet{}
	for i, item := range cfg.Items() {
		if i == n {
			break
		}
		out[item.Code] = models.Answer{Status: models.StatusCompliant}
	}
	return out
}

func TestSubmit_ScoresAndPersists(t *testing.T) {
	svc, reg := newService(t)
	venueID := uuid.New()
	cfg := reg.Get("bcc")

	rec, err := svc.Submit(context.Background(), assessment.SubmitInput{
		VenueID:   venueID,
		Framework: "bcc",
		Answers:   compliantAnswers(cfg, 10),
		Notes:     "quarterly self-check",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "bcc", rec.Framework)
	assert.Equal(t, 5, rec.Result.Stars)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := svc.Get(context.Background(), "bcc", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Result, got.Result)
}

func TestSubmit_ValidatesAnswers(t *testing.T) {
	svc, reg := newService(t)
	cfg := reg.Get("bcc")
	items := cfg.Items()

	tests := []struct {
		name    string
		answers models.AnswerSet
	}{
		{"empty answer set", models.AnswerSet{}},
		{"unknown item code", models.AnswerSet{
			"NOPE-1": {Status: models.StatusCompliant},
		}},
		{"non-compliant without severity", models.AnswerSet{
			items[0].Code: {Status: models.StatusNonCompliant},
		}},
		{"unknown status", models.AnswerSet{
			items[0].Code: {Status: "maybe"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), assessment.SubmitInput{
				VenueID:   uuid.New(),
				Framework: "bcc",
				Answers:   tt.answers,
			})
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.CodeBadRequest))
		})
	}
}

func TestSubmit_RejectsDisallowedSeverity(t *testing.T) {
	svc, reg := newService(t)
	cfg := reg.Get("bcc")

	// FR-4 only allows minor findings.
	item, ok := cfg.ItemByCode("FR-4")
	require.True(t, ok)
	require.False(t, item.AllowsSeverity(models.SeverityCritical))

	_, err := svc.Submit(context.Background(), assessment.SubmitInput{
		VenueID:   uuid.New(),
		Framework: "bcc",
		Answers: models.AnswerSet{
			"FR-4": {Status: models.StatusNonCompliant, Severity: models.SeverityCritical},
		},
	})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.CodeBadRequest))
}

func TestSubmit_UnknownFrameworkFallsBackToBaseline(t *testing.T) {
	svc, reg := newService(t)
	cfg := reg.Baseline()

	rec, err := svc.Submit(context.Background(), assessment.SubmitInput{
		VenueID:   uuid.New(),
		Framework: "does_not_exist",
		Answers:   compliantAnswers(cfg, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, "bcc", rec.Framework, "record carries the resolved framework code")
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "bcc", uuid.New())
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.CodeNotFound))
}

func TestListByVenue_NewestFirst(t *testing.T) {
	svc, reg := newService(t)
	venueID := uuid.New()
	cfg := reg.Get("bcc")
	ctx := context.Background()

	for range 3 {
		_, err := svc.Submit(ctx, assessment.SubmitInput{
			VenueID:   venueID,
			Framework: "bcc",
			Answers:   compliantAnswers(cfg, 5),
		})
		require.NoError(t, err)
	}

	recs, err := svc.ListByVenue(ctx, "bcc", venueID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i].CreatedAt.After(recs[i-1].CreatedAt))
	}

	other, err := svc.ListByVenue(ctx, "bcc", uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSharedTableKeepsFrameworksApart(t *testing.T) {
	svc, reg := newService(t)
	venueID := uuid.New()
	ctx := context.Background()

	// dm and adafsa share the uae_assessments table, discriminated by the
	// framework filter.
	dm := reg.Get("dm")
	adafsa := reg.Get("adafsa")
	require.Equal(t, dm.Table("assessments"), adafsa.Table("assessments"))

	_, err := svc.Submit(ctx, assessment.SubmitInput{
		VenueID: venueID, Framework: "dm", Answers: compliantAnswers(dm, 5),
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, assessment.SubmitInput{
		VenueID: venueID, Framework: "adafsa", Answers: compliantAnswers(adafsa, 5),
	})
	require.NoError(t, err)

	dmRecs, err := svc.ListByVenue(ctx, "dm", venueID)
	require.NoError(t, err)
	require.Len(t, dmRecs, 1)
	assert.Equal(t, "dm", dmRecs[0].Framework)

	adafsaRecs, err := svc.ListByVenue(ctx, "adafsa", venueID)
	require.NoError(t, err)
	require.Len(t, adafsaRecs, 1)
	assert.Equal(t, "adafsa", adafsaRecs[0].Framework)
}

func TestVenueOverview(t *testing.T) {
	svc, reg := newService(t)
	venueID := uuid.New()
	ctx := context.Background()

	cfg := reg.Get("dm")
	_, err := svc.Submit(ctx, assessment.SubmitInput{
		VenueID: venueID, Framework: "dm", Answers: compliantAnswers(cfg, 5),
	})
	require.NoError(t, err)

	overview, err := svc.VenueOverview(ctx, venueID, []string{"dm", "adafsa"})
	require.NoError(t, err)
	require.Len(t, overview, 2)

	assert.Equal(t, "dm", overview[0].Framework)
	assert.Equal(t, 1, overview[0].Total)
	require.NotNil(t, overview[0].Latest)

	assert.Equal(t, "adafsa", overview[1].Framework)
	assert.Zero(t, overview[1].Total)
	assert.Nil(t, overview[1].Latest)
}
