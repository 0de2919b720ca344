package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mise/internal/assessment"
	"mise/internal/compliance/models"
	domainerrors "mise/pkg/domain-errors"
)

// AssessmentHandler serves assessment submission and retrieval.
type AssessmentHandler struct {
	logger  *slog.Logger
	service *assessment.Service
}

// NewAssessmentHandler creates the assessment endpoints handler.
func NewAssessmentHandler(svc *assessment.Service, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, service: svc}
}

// Register registers the assessment routes with the chi router.
func (h *AssessmentHandler) Register(r chi.Router) {
	r.Post("/venues/{venueID}/assessments", h.handleSubmit)
	r.Get("/venues/{venueID}/assessments", h.handleList)
	r.Get("/venues/{venueID}/assessments/overview", h.handleOverview)
	r.Get("/assessments/{framework}/{id}", h.handleGet)
}

type submitRequest struct {
	Framework string           `json:"framework"`
	Answers   models.AnswerSet `json:"answers"`
	Notes     string           `json:"notes"`
}

func (h *AssessmentHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	rec, err := h.service.Submit(r.Context(), assessment.SubmitInput{
		VenueID:   venueID,
		Framework: req.Framework,
		Answers:   req.Answers,
		Notes:     req.Notes,
	})
	if err != nil {
		if !domainerrors.Is(err, domainerrors.CodeBadRequest) {
			h.logger.ErrorContext(r.Context(), "assessment submit failed",
				"venue_id", venueID, "error", err.Error())
		}
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rec)
}

func (h *AssessmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	recs, err := h.service.ListByVenue(r.Context(), r.URL.Query().Get("framework"), venueID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "assessment list failed",
			"venue_id", venueID, "error", err.Error())
		WriteError(w, err)
		return
	}
	if recs == nil {
		recs = []assessment.Record{}
	}
	WriteJSON(w, http.StatusOK, recs)
}

func (h *AssessmentHandler) handleOverview(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	raw := r.URL.Query().Get("frameworks")
	if raw == "" {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "frameworks query parameter required"))
		return
	}

	overview, err := h.service.VenueOverview(r.Context(), venueID, strings.Split(raw, ","))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "assessment overview failed",
			"venue_id", venueID, "error", err.Error())
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, overview)
}

func (h *AssessmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid assessment id"))
		return
	}

	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "framework"), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}
