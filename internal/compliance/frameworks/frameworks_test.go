package frameworks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mise/internal/compliance/derive"
	"mise/internal/compliance/frameworks"
	"mise/internal/compliance/models"
)

func TestBaselineIsFullySpecified(t *testing.T) {
	cfg := frameworks.Baseline()

	assert.Equal(t, frameworks.BaselineCode, cfg.Code)
	assert.Equal(t, "au", cfg.Region)
	assert.Equal(t, models.ModelStarRating, cfg.Scoring.Model)
	assert.NotEmpty(t, cfg.AssessmentSections)
	assert.NotEmpty(t, cfg.Scoring.StarBands)
	assert.NotEmpty(t, cfg.Scoring.Tiers)
	assert.NotEmpty(t, cfg.Sections)
	assert.NotEmpty(t, cfg.WizardSteps)
	assert.NotEmpty(t, cfg.Tables)
}

func TestBaselineReturnsFreshCopies(t *testing.T) {
	first := frameworks.Baseline()
	first.AssessmentSections[0].Title = "mutated"
	first.Labels.Name = "mutated"

	second := frameworks.Baseline()
	assert.NotEqual(t, "mutated", second.AssessmentSections[0].Title)
	assert.NotEqual(t, "mutated", second.Labels.Name)
}

func TestDefinitionsCoverEveryRegime(t *testing.T) {
	defs := frameworks.Definitions()

	want := []string{
		"nsw_fa", "vic_dh", "sa_health", "wa_doh", "tas_doh", "act_health", "nt_doh",
		"dm", "adafsa", "sm_sharjah",
		"uk_fsa", "sg_sfa", "us_fda", "fssai",
	}
	require.Len(t, defs, len(want))
	for _, code := range want {
		assert.Contains(t, defs, code)
	}

	// The baseline is served directly, never via an override entry.
	assert.NotContains(t, defs, frameworks.BaselineCode)
}

func TestEveryDefinitionAppliesCleanly(t *testing.T) {
	base := frameworks.Baseline()

	for code, overrides := range frameworks.Definitions() {
		t.Run(code, func(t *testing.T) {
			derived, err := derive.Derive(base, overrides)
			require.NoError(t, err)
			assert.Equal(t, code, derived.Code)
			assert.NotEmpty(t, derived.AssessmentSections)
		})
	}
}
