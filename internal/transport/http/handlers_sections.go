package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mise/internal/sections"
	domainerrors "mise/pkg/domain-errors"
)

// SectionsHandler serves per-venue section toggle resolution and updates.
type SectionsHandler struct {
	logger  *slog.Logger
	service *sections.Service
}

// NewSectionsHandler creates the section toggle endpoints handler.
func NewSectionsHandler(svc *sections.Service, logger *slog.Logger) *SectionsHandler {
	return &SectionsHandler{logger: logger, service: svc}
}

// Register registers the section toggle routes with the chi router.
func (h *SectionsHandler) Register(r chi.Router) {
	r.Get("/venues/{venueID}/sections", h.handleResolve)
	r.Put("/venues/{venueID}/sections/{code}", h.handleSet)
	r.Delete("/venues/{venueID}/sections/{code}", h.handleReset)
}

func (h *SectionsHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	toggles, err := h.service.Resolve(r.Context(), venueID, r.URL.Query().Get("framework"))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "section resolve failed",
			"venue_id", venueID, "error", err.Error())
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toggles)
}

type setSectionRequest struct {
	Framework string `json:"framework"`
	Enabled   bool   `json:"enabled"`
}

func (h *SectionsHandler) handleSet(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	var req setSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.Set(r.Context(), venueID, req.Framework, chi.URLParam(r, "code"), req.Enabled); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SectionsHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid venue id"))
		return
	}

	if err := h.service.Reset(r.Context(), venueID, chi.URLParam(r, "code")); err != nil {
		h.logger.ErrorContext(r.Context(), "section reset failed",
			"venue_id", venueID, "error", err.Error())
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
