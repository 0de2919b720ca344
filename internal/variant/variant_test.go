package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mise/internal/variant"
)

func TestResolve_ComposesStreamAndRegion(t *testing.T) {
	r := variant.Resolve("uae_safeserve")
	assert.Equal(t, "uae_safeserve", r.Variant.Code)
	assert.Equal(t, "compliance", r.Stream.Code)
	assert.Equal(t, "uae", r.Region.Code)
	assert.Equal(t, "dm", r.FrameworkCode)
}

func TestResolve_FrameworkOverrideWins(t *testing.T) {
	r := variant.Resolve("sharjah_muni")
	assert.Equal(t, "uae", r.Region.Code)
	assert.Equal(t, "sm_sharjah", r.FrameworkCode)
}

func TestResolve_UnknownFallsBackToDefault(t *testing.T) {
	r := variant.Resolve("does_not_exist")
	assert.Equal(t, variant.DefaultCode, r.Variant.Code)
	assert.Equal(t, "bcc", r.FrameworkCode)
}

func TestLookup(t *testing.T) {
	_, ok := variant.Lookup("does_not_exist")
	assert.False(t, ok)

	r, ok := variant.Lookup("au_lite")
	assert.True(t, ok)
	assert.Equal(t, "lite", r.Stream.Code)
}

func TestHasFeature(t *testing.T) {
	full := variant.Resolve("au_full")
	assert.True(t, full.HasFeature("anything"), "all-features stream exposes everything")

	lite := variant.Resolve("au_lite")
	assert.True(t, lite.HasFeature("temperature"))
	assert.False(t, lite.HasFeature("suppliers"))
}

func TestCodes_SortedAndResolvable(t *testing.T) {
	codes := variant.Codes()
	assert.NotEmpty(t, codes)
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
	for _, code := range codes {
		_, ok := variant.Lookup(code)
		assert.True(t, ok, code)
	}
}
