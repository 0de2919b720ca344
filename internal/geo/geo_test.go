package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mise/internal/geo"
)

func TestDetectState(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"brisbane postcode", "123 Queen St, Brisbane QLD 4000", geo.StateQLD},
		{"sydney postcode", "George St, Sydney 2000", geo.StateNSW},
		{"melbourne postcode", "Collins St 3000", geo.StateVIC},
		{"adelaide postcode", "5000", geo.StateSA},
		{"perth postcode", "6000", geo.StateWA},
		{"hobart postcode", "7000", geo.StateTAS},
		{"darwin postcode", "0800 Darwin", geo.StateNT},
		{"canberra city", "2600", geo.StateACT},
		{"act range inside nsw span", "2618", geo.StateACT},
		{"nsw just past act range", "2619", geo.StateNSW},
		{"act southern range", "2900", geo.StateACT},
		{"act southern range end", "2920", geo.StateACT},
		{"nsw after act southern range", "2921", geo.StateNSW},
		{"three digit act", "221 London Circuit ACT 299", geo.StateACT},
		{"no digits", "somewhere in australia", geo.StateQLD},
		{"empty", "", geo.StateQLD},
		{"unmatched range", "0100", geo.StateQLD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.DetectState(tt.text))
		})
	}
}

func TestStateCompliance(t *testing.T) {
	assert.Equal(t, "bcc", geo.StateCompliance(geo.StateQLD))
	assert.Equal(t, "nsw_fa", geo.StateCompliance(geo.StateNSW))
	assert.Equal(t, "act_health", geo.StateCompliance(geo.StateACT))
	assert.Equal(t, "bcc", geo.StateCompliance("unknown"))
}

func TestDetectEmirate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit dubai", "Shop 4, Al Wasl Rd, Dubai", geo.EmirateDubai},
		{"explicit sharjah", "Industrial Area 2, Sharjah", geo.EmirateSharjah},
		{"abu dhabi name", "Abu Dhabi Corniche", geo.EmirateAbuDhabi},
		{"district only marina", "Unit 7, Dubai Marina", geo.EmirateDubai},
		{"district only yas", "Yas Island retail unit", geo.EmirateAbuDhabi},
		{"district only majaz", "Al Majaz waterfront", geo.EmirateSharjah},
		{"al nahda defaults to dubai", "Al Nahda, street 12", geo.EmirateDubai},
		{"al nahda sharjah disambiguated", "Al Nahda Sharjah, street 12", geo.EmirateSharjah},
		{"postal prefix", "PO Box 1234 DXB", geo.EmirateDubai},
		{"case insensitive", "BUSINESS BAY", geo.EmirateDubai},
		{"rak variant spelling", "Ras Al-Khaimah old town", geo.EmirateRAK},
		{"nothing recognizable", "shop 12, somewhere", geo.EmirateDubai},
		{"empty", "", geo.EmirateDubai},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.DetectEmirate(tt.text))
		})
	}
}

func TestEmirateCompliance(t *testing.T) {
	assert.Equal(t, "dm", geo.EmirateCompliance(geo.EmirateDubai))
	assert.Equal(t, "adafsa", geo.EmirateCompliance(geo.EmirateAbuDhabi))
	assert.Equal(t, "sm_sharjah", geo.EmirateCompliance(geo.EmirateSharjah))
	// Northern emirates run the Dubai food code in-platform.
	assert.Equal(t, "dm", geo.EmirateCompliance(geo.EmirateAjman))
	assert.Equal(t, "dm", geo.EmirateCompliance("unknown"))
}
