// Package region holds the static region metadata registry and the currency
// presentation boundary. One record per supported geography, registered at
// build time and never mutated.
package region

import "sort"

// MeasurementSystem is the unit system a region's venues record in.
type MeasurementSystem string

const (
	Metric   MeasurementSystem = "metric"
	Imperial MeasurementSystem = "imperial"
)

// Config is the immutable metadata record for one supported geography.
type Config struct {
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	CurrencyCode     string            `json:"currency_code"`
	CurrencySymbol   string            `json:"currency_symbol"`
	Measurement      MeasurementSystem `json:"measurement"`
	DefaultFramework string            `json:"default_framework"`
	Locale           string            `json:"locale"`
	Greeting         string            `json:"greeting"`
}

// DefaultCode is the region used when a deployment does not specify one.
// Queensland was the platform's launch market.
const DefaultCode = "au"

var regions = map[string]Config{
	"au": {
		Code:             "au",
		Name:             "Australia",
		CurrencyCode:     "AUD",
		CurrencySymbol:   "$",
		Measurement:      Metric,
		DefaultFramework: "bcc",
		Locale:           "en-AU",
		Greeting:         "G'day! Ready to open for service?",
	},
	"uae": {
		Code:             "uae",
		Name:             "United Arab Emirates",
		CurrencyCode:     "AED",
		CurrencySymbol:   "AED ",
		Measurement:      Metric,
		DefaultFramework: "dm",
		Locale:           "en-AE",
		Greeting:         "Marhaba! Ready to open for service?",
	},
	"uk": {
		Code:             "uk",
		Name:             "United Kingdom",
		CurrencyCode:     "GBP",
		CurrencySymbol:   "£",
		Measurement:      Metric,
		DefaultFramework: "uk_fsa",
		Locale:           "en-GB",
		Greeting:         "Hello! Ready to open for service?",
	},
	"sg": {
		Code:             "sg",
		Name:             "Singapore",
		CurrencyCode:     "SGD",
		CurrencySymbol:   "S$",
		Measurement:      Metric,
		DefaultFramework: "sg_sfa",
		Locale:           "en-SG",
		Greeting:         "Hello! Ready to open for service?",
	},
	"us": {
		Code:             "us",
		Name:             "United States",
		CurrencyCode:     "USD",
		CurrencySymbol:   "$",
		Measurement:      Imperial,
		DefaultFramework: "us_fda",
		Locale:           "en-US",
		Greeting:         "Hi there! Ready to open for service?",
	},
	"in": {
		Code:             "in",
		Name:             "India",
		CurrencyCode:     "INR",
		CurrencySymbol:   "₹",
		Measurement:      Metric,
		DefaultFramework: "fssai",
		Locale:           "en-IN",
		Greeting:         "Namaste! Ready to open for service?",
	},
}

// Get returns the region record for the code, falling back to the default
// region for unknown or empty codes. Never errors: an unresolvable region
// must not block a venue from operating.
func Get(code string) Config {
	if cfg, ok := regions[code]; ok {
		return cfg
	}
	return regions[DefaultCode]
}

// Lookup returns the region record and whether the code is known.
func Lookup(code string) (Config, bool) {
	cfg, ok := regions[code]
	return cfg, ok
}

// All returns every registered region, ordered by code.
func All() []Config {
	out := make([]Config, 0, len(regions))
	for _, cfg := range regions {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
