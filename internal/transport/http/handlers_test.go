package httptransport_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mise/internal/assessment"
	"mise/internal/compliance/models"
	"mise/internal/compliance/registry"
	"mise/internal/platform/logger"
	"mise/internal/sections"
	httptransport "mise/internal/transport/http"
	"mise/pkg/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	reg, err := registry.New()
	require.NoError(t, err)
	log := logger.New()

	// nil metrics keep the default prometheus registry clean across tests.
	assessmentSvc := assessment.NewService(assessment.NewMemoryStore(reg), reg, nil, log)
	sectionSvc := sections.NewService(sections.NewMemoryStore(), reg, false)

	return httptransport.NewRouter(log,
		httptransport.NewComplianceHandler(reg, log),
		httptransport.NewGeoHandler(),
		httptransport.NewRegionHandler(),
		httptransport.NewAssessmentHandler(assessmentSvc, log),
		httptransport.NewSectionsHandler(sectionSvc, log),
	)
}

func TestHealthz(t *testing.T) {
	rr := testutil.DoRequest(newRouter(t), testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetFramework(t *testing.T) {
	router := newRouter(t)

	var cfg models.ComplianceFrameworkConfig
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/compliance/frameworks/dm"))
	require.Equal(t, http.StatusOK, rr.Code)
	testutil.DecodeJSON(t, rr, &cfg)
	assert.Equal(t, "dm", cfg.Code)

	// Unknown codes resolve to the baseline.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/compliance/frameworks/nope"))
	require.Equal(t, http.StatusOK, rr.Code)
	testutil.DecodeJSON(t, rr, &cfg)
	assert.Equal(t, "bcc", cfg.Code)

	// Strict mode restores the 404.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/compliance/frameworks/nope?strict=true"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestScoreEndpoint(t *testing.T) {
	router := newRouter(t)

	body := map[string]any{
		"framework": "bcc",
		"answers": map[string]any{
			"FR-1": map[string]any{"status": "compliant"},
			"FR-2": map[string]any{"status": "non_compliant", "severity": "minor"},
		},
	}
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/compliance/score", body))
	require.Equal(t, http.StatusOK, rr.Code)

	var result struct {
		Stars int    `json:"stars"`
		Model string `json:"model"`
	}
	testutil.DecodeJSON(t, rr, &result)
	assert.Equal(t, "star_rating", result.Model)
	assert.Equal(t, 4, result.Stars)
}

func TestGeoDetect(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		body     map[string]any
		wantJur  string
		wantCode string
	}{
		{"au postcode", map[string]any{"country": "au", "text": "Brisbane 4000"}, "qld", "bcc"},
		{"country defaults to au", map[string]any{"text": "Sydney 2000"}, "nsw", "nsw_fa"},
		{"uae keyword", map[string]any{"country": "uae", "text": "Al Majaz, Sharjah"}, "sharjah", "sm_sharjah"},
		{"uae fallback", map[string]any{"country": "uae", "text": "somewhere"}, "dubai", "dm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/geo/detect", tt.body))
			require.Equal(t, http.StatusOK, rr.Code)

			var resp struct {
				Jurisdiction string `json:"jurisdiction"`
				Framework    string `json:"framework"`
			}
			testutil.DecodeJSON(t, rr, &resp)
			assert.Equal(t, tt.wantJur, resp.Jurisdiction)
			assert.Equal(t, tt.wantCode, resp.Framework)
		})
	}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/geo/detect",
		map[string]any{"country": "fr", "text": "Paris"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCurrencyFormatEndpoint(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/regions/uae/format?amount=1500"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "AED 1,500.00", resp["formatted"])

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/regions/uae/format?amount=abc"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVariantEndpoints(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/variants/sharjah_muni"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resolved struct {
		FrameworkCode string `json:"framework_code"`
	}
	testutil.DecodeJSON(t, rr, &resolved)
	assert.Equal(t, "sm_sharjah", resolved.FrameworkCode)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/variants/nope"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAssessmentSubmitAndList(t *testing.T) {
	router := newRouter(t)
	venueID := uuid.New()

	body := map[string]any{
		"framework": "bcc",
		"answers": map[string]any{
			"FR-1": map[string]any{"status": "compliant"},
		},
		"notes": "opening checks",
	}
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
		fmt.Sprintf("/venues/%s/assessments", venueID), body))
	require.Equal(t, http.StatusCreated, rr.Code)

	var rec assessment.Record
	testutil.DecodeJSON(t, rr, &rec)
	assert.Equal(t, venueID, rec.VenueID)
	assert.Equal(t, 5, rec.Result.Stars)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
		fmt.Sprintf("/venues/%s/assessments?framework=bcc", venueID)))
	require.Equal(t, http.StatusOK, rr.Code)

	var recs []assessment.Record
	testutil.DecodeJSON(t, rr, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.ID, recs[0].ID)

	// Invalid venue IDs are rejected before hitting the service.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
		"/venues/not-a-uuid/assessments", body))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Validation failures surface as 400s.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
		fmt.Sprintf("/venues/%s/assessments", venueID), map[string]any{
			"framework": "bcc",
			"answers":   map[string]any{"NOPE": map[string]any{"status": "compliant"}},
		}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSectionToggleEndpoints(t *testing.T) {
	router := newRouter(t)
	venueID := uuid.New()

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut,
		fmt.Sprintf("/venues/%s/sections/transport", venueID),
		map[string]any{"framework": "bcc", "enabled": true}))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
		fmt.Sprintf("/venues/%s/sections?framework=bcc", venueID)))
	require.Equal(t, http.StatusOK, rr.Code)

	var toggles []sections.Toggle
	testutil.DecodeJSON(t, rr, &toggles)
	found := false
	for _, tg := range toggles {
		if tg.Code == "transport" {
			found = true
			assert.True(t, tg.Enabled)
			assert.True(t, tg.Overridden)
		}
	}
	assert.True(t, found)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut,
		fmt.Sprintf("/venues/%s/sections/no_such_section", venueID),
		map[string]any{"framework": "bcc", "enabled": true}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
