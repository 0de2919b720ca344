package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mise/internal/geo"
	domainerrors "mise/pkg/domain-errors"
)

// GeoHandler serves jurisdiction detection for onboarding.
type GeoHandler struct{}

// NewGeoHandler creates the geo endpoints handler.
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// Register registers the geo routes with the chi router.
func (h *GeoHandler) Register(r chi.Router) {
	r.Post("/geo/detect", h.handleDetect)
}

type detectRequest struct {
	// Country selects the classifier: "au" for postcode ranges, "uae" for
	// emirate keywords.
	Country string `json:"country"`
	Text    string `json:"text"`
}

type detectResponse struct {
	Jurisdiction string `json:"jurisdiction"`
	Framework    string `json:"framework"`
}

func (h *GeoHandler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	switch req.Country {
	case "uae":
		emirate := geo.DetectEmirate(req.Text)
		WriteJSON(w, http.StatusOK, detectResponse{
			Jurisdiction: emirate,
			Framework:    geo.EmirateCompliance(emirate),
		})
	case "au", "":
		state := geo.DetectState(req.Text)
		WriteJSON(w, http.StatusOK, detectResponse{
			Jurisdiction: state,
			Framework:    geo.StateCompliance(state),
		})
	default:
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "unsupported country"))
	}
}
