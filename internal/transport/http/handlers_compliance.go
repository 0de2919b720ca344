package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
	"mise/internal/compliance/scoring"
	"mise/internal/compliance/temperature"
	domainerrors "mise/pkg/domain-errors"
)

// ComplianceHandler serves framework configuration, ad-hoc scoring and
// temperature classification.
type ComplianceHandler struct {
	logger   *slog.Logger
	registry *registry.Registry
}

// NewComplianceHandler creates the compliance endpoints handler.
func NewComplianceHandler(reg *registry.Registry, logger *slog.Logger) *ComplianceHandler {
	return &ComplianceHandler{logger: logger, registry: reg}
}

// Register registers the compliance routes with the chi router.
func (h *ComplianceHandler) Register(r chi.Router) {
	r.Get("/compliance/frameworks", h.handleListFrameworks)
	r.Get("/compliance/frameworks/{code}", h.handleGetFramework)
	r.Post("/compliance/score", h.handleScore)
	r.Get("/compliance/temperature", h.handleThresholds)
	r.Post("/compliance/temperature/classify", h.handleClassify)
}

func (h *ComplianceHandler) handleListFrameworks(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"codes": h.registry.Codes()})
}

// handleGetFramework resolves a framework code to its full configuration.
// Unknown codes resolve to the baseline rather than 404, matching the
// registry's fallback contract; ?strict=true restores the 404 for admin UIs.
func (h *ComplianceHandler) handleGetFramework(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if r.URL.Query().Get("strict") == "true" {
		cfg, ok := h.registry.Lookup(code)
		if !ok {
			WriteError(w, domainerrors.New(domainerrors.CodeNotFound, "unknown framework"))
			return
		}
		WriteJSON(w, http.StatusOK, cfg)
		return
	}

	WriteJSON(w, http.StatusOK, h.registry.Get(code))
}

type scoreRequest struct {
	Framework string           `json:"framework"`
	Answers   models.AnswerSet `json:"answers"`
}

// handleScore grades an answer set without persisting it, for the live
// checklist preview.
func (h *ComplianceHandler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	cfg := h.registry.Get(req.Framework)
	WriteJSON(w, http.StatusOK, scoring.Score(cfg, req.Answers))
}

func (h *ComplianceHandler) handleThresholds(w http.ResponseWriter, r *http.Request) {
	family := temperature.Family(r.URL.Query().Get("family"))
	if family == "" {
		family = temperature.FamilyAU
	}
	WriteJSON(w, http.StatusOK, temperature.Thresholds(family))
}

type classifyRequest struct {
	Family  string  `json:"family"`
	LogType string  `json:"log_type"`
	Reading float64 `json:"reading"`
}

func (h *ComplianceHandler) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	status := temperature.StatusFor(temperature.Family(req.Family), req.LogType, req.Reading)
	WriteJSON(w, http.StatusOK, map[string]any{
		"log_type": req.LogType,
		"reading":  req.Reading,
		"status":   status,
	})
}
