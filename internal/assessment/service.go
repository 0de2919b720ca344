package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mise/internal/assessment/metrics"
	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
	"mise/internal/compliance/scoring"
	domainerrors "mise/pkg/domain-errors"
	"mise/pkg/platform/sentinel"
)

// Service validates, scores and persists assessments.
type Service struct {
	store    Store
	registry *registry.Registry
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService wires the assessment service.
func NewService(store Store, reg *registry.Registry, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{store: store, registry: reg, metrics: m, log: log}
}

// SubmitInput is a completed checklist ready for scoring.
type SubmitInput struct {
	VenueID   uuid.UUID
	Framework string
	Answers   models.AnswerSet
	Notes     string
}

// Submit validates the answers against the framework's checklist, scores them
// and persists the record. Answer codes must exist in the framework and
// non-compliant severities must come from the item's allowed set.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Record, error) {
	if len(in.Answers) == 0 {
		return Record{}, domainerrors.New(domainerrors.CodeBadRequest, "no answers submitted")
	}

	cfg := s.registry.Get(in.Framework)
	if err := validateAnswers(cfg, in.Answers); err != nil {
		return Record{}, err
	}

	result := scoring.Score(cfg, in.Answers)
	rec := Record{
		ID:        uuid.New(),
		VenueID:   in.VenueID,
		Framework: cfg.Code,
		Answers:   in.Answers,
		Result:    result,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("persist assessment: %w", err)
	}

	s.metrics.RecordSubmission(cfg.Code, string(result.Model), result.Percentage)
	s.metrics.RecordCriticalFindings(cfg.Code, result.Counts.Critical)
	s.log.Info("assessment submitted",
		"assessment_id", rec.ID,
		"venue_id", rec.VenueID,
		"framework", rec.Framework,
		"percentage", result.Percentage,
		"critical", result.Counts.Critical,
	)
	return rec, nil
}

func validateAnswers(cfg models.ComplianceFrameworkConfig, answers models.AnswerSet) error {
	for code, a := range answers {
		item, ok := cfg.ItemByCode(code)
		if !ok {
			return domainerrors.New(domainerrors.CodeBadRequest,
				fmt.Sprintf("unknown assessment item %q", code))
		}
		switch a.Status {
		case models.StatusCompliant, models.StatusNotApplicable:
		case models.StatusNonCompliant:
			if a.Severity == "" {
				return domainerrors.New(domainerrors.CodeBadRequest,
					fmt.Sprintf("item %q: non-compliant answer needs a severity", code))
			}
			if cfg.Features.SeverityLevels && !item.AllowsSeverity(a.Severity) {
				return domainerrors.New(domainerrors.CodeBadRequest,
					fmt.Sprintf("item %q does not allow severity %q", code, a.Severity))
			}
		default:
			return domainerrors.New(domainerrors.CodeBadRequest,
				fmt.Sprintf("item %q: unknown status %q", code, a.Status))
		}
	}
	return nil
}

// Get fetches one record by ID within a framework's storage.
func (s *Service) Get(ctx context.Context, framework string, id uuid.UUID) (Record, error) {
	rec, err := s.store.Get(ctx, framework, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Record{}, domainerrors.New(domainerrors.CodeNotFound, "assessment not found")
	}
	if err != nil {
		return Record{}, fmt.Errorf("get assessment: %w", err)
	}
	return rec, nil
}

// ListByVenue returns a venue's records under one framework, newest first.
func (s *Service) ListByVenue(ctx context.Context, framework string, venueID uuid.UUID) ([]Record, error) {
	recs, err := s.store.ListByVenue(ctx, framework, venueID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return recs, nil
}

// VenueOverview fetches the venue's latest record under each framework in
// parallel; venues near jurisdiction boundaries can hold assessments under
// more than one regime.
func (s *Service) VenueOverview(ctx context.Context, venueID uuid.UUID, frameworkCodes []string) ([]FrameworkLatest, error) {
	out := make([]FrameworkLatest, len(frameworkCodes))

	g, ctx := errgroup.WithContext(ctx)
	for i, code := range frameworkCodes {
		g.Go(func() error {
			recs, err := s.store.ListByVenue(ctx, code, venueID)
			if err != nil {
				return fmt.Errorf("overview %s: %w", code, err)
			}
			out[i] = FrameworkLatest{Framework: code, Total: len(recs)}
			if len(recs) > 0 {
				out[i].Latest = &recs[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
