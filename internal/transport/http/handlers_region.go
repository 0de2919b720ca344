package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mise/internal/region"
	"mise/internal/variant"
	domainerrors "mise/pkg/domain-errors"
)

// RegionHandler serves region metadata, currency formatting and variant
// resolution.
type RegionHandler struct{}

// NewRegionHandler creates the region endpoints handler.
func NewRegionHandler() *RegionHandler {
	return &RegionHandler{}
}

// Register registers the region and variant routes with the chi router.
func (h *RegionHandler) Register(r chi.Router) {
	r.Get("/regions", h.handleListRegions)
	r.Get("/regions/{code}", h.handleGetRegion)
	r.Get("/regions/{code}/format", h.handleFormatCurrency)
	r.Get("/variants", h.handleListVariants)
	r.Get("/variants/{code}", h.handleGetVariant)
}

func (h *RegionHandler) handleListRegions(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, region.All())
}

func (h *RegionHandler) handleGetRegion(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, region.Get(chi.URLParam(r, "code")))
}

func (h *RegionHandler) handleFormatCurrency(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid amount"))
		return
	}

	code := chi.URLParam(r, "code")
	WriteJSON(w, http.StatusOK, map[string]string{
		"formatted": region.FormatFor(code, amount),
	})
}

func (h *RegionHandler) handleListVariants(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"codes": variant.Codes()})
}

func (h *RegionHandler) handleGetVariant(w http.ResponseWriter, r *http.Request) {
	resolved, ok := variant.Lookup(chi.URLParam(r, "code"))
	if !ok {
		WriteError(w, domainerrors.New(domainerrors.CodeNotFound, "unknown variant"))
		return
	}
	WriteJSON(w, http.StatusOK, resolved)
}
