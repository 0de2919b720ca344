package temperature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mise/internal/compliance/temperature"
)

func TestUAEStatus(t *testing.T) {
	tests := []struct {
		name    string
		logType string
		reading float64
		want    temperature.Status
	}{
		{"fridge in range", "fridge_temp", 4, temperature.StatusPass},
		{"fridge at pass boundary", "fridge_temp", 5, temperature.StatusPass},
		{"fridge in warning band", "fridge_temp", 7, temperature.StatusWarning},
		{"fridge at warning boundary", "fridge_temp", 8, temperature.StatusWarning},
		{"fridge too warm", "fridge_temp", 10, temperature.StatusFail},
		{"hot holding safe", "hot_holding", 65, temperature.StatusPass},
		{"hot holding at boundary", "hot_holding", 60, temperature.StatusPass},
		{"hot holding warning", "hot_holding", 58, temperature.StatusWarning},
		{"hot holding fail", "hot_holding", 50, temperature.StatusFail},
		{"freezer ok", "freezer_temp", -18, temperature.StatusPass},
		{"freezer drifting", "freezer_temp", -16, temperature.StatusWarning},
		{"freezer fail", "freezer_temp", -10, temperature.StatusFail},
		{"unknown log type passes", "unknown_type", 100, temperature.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temperature.UAEStatus(tt.logType, tt.reading))
		})
	}
}

func TestAUStatus(t *testing.T) {
	tests := []struct {
		name    string
		logType string
		reading float64
		want    temperature.Status
	}{
		{"fridge ok", "fridge_temp", 3, temperature.StatusPass},
		{"fridge warning", "fridge_temp", 6.5, temperature.StatusWarning},
		{"fridge fail", "fridge_temp", 9, temperature.StatusFail},
		{"cooking ok", "cooking_temp", 80, temperature.StatusPass},
		{"cooking warning", "cooking_temp", 72, temperature.StatusWarning},
		{"cooking fail", "cooking_temp", 60, temperature.StatusFail},
		{"au freezer limit is softer than uae", "freezer_temp", -15, temperature.StatusPass},
		{"unknown log type passes", "blast_chiller", -200, temperature.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temperature.AUStatus(tt.logType, tt.reading))
		})
	}
}

func TestStatusFor_UnknownFamilyFallsBackToAU(t *testing.T) {
	assert.Equal(t, temperature.StatusPass, temperature.StatusFor("mars", "fridge_temp", 4))
	assert.Equal(t, temperature.StatusFail, temperature.StatusFor("mars", "fridge_temp", 9))
}

func TestThresholds_ReturnsACopy(t *testing.T) {
	table := temperature.Thresholds(temperature.FamilyUAE)
	assert.NotEmpty(t, table)

	delete(table, "fridge_temp")
	again := temperature.Thresholds(temperature.FamilyUAE)
	assert.Contains(t, again, "fridge_temp")
}

func TestClassify_NoBoundsPasses(t *testing.T) {
	var th temperature.Threshold
	assert.Equal(t, temperature.StatusPass, th.Classify(999))
}
