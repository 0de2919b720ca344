package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mise/internal/compliance/derive"
	"mise/internal/compliance/frameworks"
	"mise/internal/compliance/models"
	domainerrors "mise/pkg/domain-errors"
)

func TestDerive_EmptyOverridesYieldsBaseline(t *testing.T) {
	base := frameworks.Baseline()

	derived, err := derive.Derive(base, derive.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, base, derived)
}

func TestDerive_DoesNotMutateInputs(t *testing.T) {
	base := frameworks.Baseline()
	before := frameworks.Baseline()
	overrides := derive.Overrides{
		"labels": map[string]any{"name": "Renamed Scheme"},
	}

	_, err := derive.Derive(base, overrides)
	require.NoError(t, err)

	assert.Equal(t, before, base, "baseline must not change")
	assert.Equal(t, map[string]any{"name": "Renamed Scheme"}, overrides["labels"])
}

func TestDerive_IsIdempotent(t *testing.T) {
	overrides := derive.Overrides{
		"code":   "nsw_fa",
		"labels": map[string]any{"name": "Scores on Doors"},
	}

	first, err := derive.Derive(frameworks.Baseline(), overrides)
	require.NoError(t, err)
	second, err := derive.Derive(frameworks.Baseline(), overrides)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDerive_NestedObjectsMergeFieldByField(t *testing.T) {
	base := frameworks.Baseline()

	derived, err := derive.Derive(base, derive.Overrides{
		"labels": map[string]any{"name": "Scores on Doors"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Scores on Doors", derived.Labels.Name)
	// Untouched sibling fields inherit from the baseline.
	assert.Equal(t, base.Labels.Authority, derived.Labels.Authority)
	assert.Equal(t, base.Labels.SupervisorTitle, derived.Labels.SupervisorTitle)
}

func TestDerive_ArraysReplaceWholesale(t *testing.T) {
	base := frameworks.Baseline()
	require.Greater(t, len(base.AssessmentSections), 1)

	sections := []models.AssessmentSection{{
		Code:  "XX",
		Title: "Replacement",
		Items: []models.AssessmentItem{{
			Code:        "XX-1",
			Requirement: "Single item",
			Severities:  []models.Severity{models.SeverityMinor},
		}},
	}}

	derived, err := derive.Derive(base, derive.Overrides{
		"assessment_sections": sections,
	})
	require.NoError(t, err)

	require.Len(t, derived.AssessmentSections, 1)
	assert.Equal(t, "XX", derived.AssessmentSections[0].Code)
	assert.Len(t, derived.AssessmentSections[0].Items, 1)
}

func TestDerive_NilOverrideKeepsBaseValue(t *testing.T) {
	base := frameworks.Baseline()

	derived, err := derive.Derive(base, derive.Overrides{
		"labels": map[string]any{"name": nil},
	})
	require.NoError(t, err)

	assert.Equal(t, base.Labels.Name, derived.Labels.Name)
}

func TestDerive_RejectsMalformedOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides derive.Overrides
	}{
		{
			name:      "unknown top-level field",
			overrides: derive.Overrides{"no_such_field": "x"},
		},
		{
			name: "unknown nested field",
			overrides: derive.Overrides{
				"labels": map[string]any{"no_such_field": "x"},
			},
		},
		{
			name:      "scalar where baseline has object",
			overrides: derive.Overrides{"labels": "flat"},
		},
		{
			name: "type mismatch on scalar",
			overrides: derive.Overrides{
				"labels": map[string]any{"name": 42},
			},
		},
		{
			name:      "array where baseline has string",
			overrides: derive.Overrides{"code": []string{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := derive.Derive(frameworks.Baseline(), tt.overrides)
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.CodeInvariantViolation))
		})
	}
}
