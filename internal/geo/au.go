// Package geo maps free-text addresses and postcodes to jurisdiction codes.
// Two classifiers share the same contract: total, pure, never error, always
// return a valid jurisdiction.
package geo

import "regexp"

// State codes for the Australian range-based classifier.
const (
	StateQLD = "qld"
	StateNSW = "nsw"
	StateVIC = "vic"
	StateSA  = "sa"
	StateWA  = "wa"
	StateTAS = "tas"
	StateACT = "act"
	StateNT  = "nt"
)

// DefaultState is returned when no postcode can be classified. Queensland was
// the platform's launch state.
const DefaultState = StateQLD

type postcodeRange struct {
	state string
	min   int
	max   int
}

// postcodeRanges is checked in order. The ACT ranges are carved out of the
// NSW digit space (2600–2618 and 2900–2920 sit inside 2000–2999), so ACT must
// come before NSW.
var postcodeRanges = []postcodeRange{
	{StateACT, 200, 299},
	{StateACT, 2600, 2618},
	{StateACT, 2900, 2920},
	{StateNSW, 1000, 2599},
	{StateNSW, 2619, 2899},
	{StateNSW, 2921, 2999},
	{StateVIC, 3000, 3999},
	{StateVIC, 8000, 8999},
	{StateQLD, 4000, 4999},
	{StateQLD, 9000, 9999},
	{StateSA, 5000, 5999},
	{StateWA, 6000, 6999},
	{StateTAS, 7000, 7999},
	{StateNT, 800, 999},
}

var postcodePattern = regexp.MustCompile(`\d{3,4}`)

// DetectState extracts the first 3–4 digit run from the text and classifies it
// against the state postcode ranges, boundaries inclusive. No digits or no
// matching range falls back to the default state.
func DetectState(text string) string {
	digits := postcodePattern.FindString(text)
	if digits == "" {
		return DefaultState
	}

	postcode := 0
	for _, d := range digits {
		postcode = postcode*10 + int(d-'0')
	}

	for _, r := range postcodeRanges {
		if postcode >= r.min && postcode <= r.max {
			return r.state
		}
	}
	return DefaultState
}

// stateFrameworks maps each state to its compliance framework code.
var stateFrameworks = map[string]string{
	StateQLD: "bcc",
	StateNSW: "nsw_fa",
	StateVIC: "vic_dh",
	StateSA:  "sa_health",
	StateWA:  "wa_doh",
	StateTAS: "tas_doh",
	StateACT: "act_health",
	StateNT:  "nt_doh",
}

// StateCompliance returns the compliance framework code for a state, falling
// back to the baseline framework for unknown states.
func StateCompliance(state string) string {
	if code, ok := stateFrameworks[state]; ok {
		return code
	}
	return stateFrameworks[DefaultState]
}
