// Package temperature classifies logged temperature readings against the
// pass/warning/fail bounds of each check type. Static reference data, one
// threshold set per region family; the Australian and GCC limits differ by a
// few degrees.
package temperature

// Status is the classification of a single reading.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Family selects the regional threshold table.
type Family string

const (
	FamilyAU  Family = "au"
	FamilyUAE Family = "uae"
)

// Threshold bounds one logged-check type. Exactly one of PassMax/PassMin is
// set: PassMax marks a cold-chain check (lower is safer), PassMin a hot-chain
// check (higher is safer). The warning bound, when present, sits between pass
// and fail.
type Threshold struct {
	PassMax *float64 `json:"pass_max"`
	WarnMax *float64 `json:"warn_max"`
	PassMin *float64 `json:"pass_min"`
	WarnMin *float64 `json:"warn_min"`
	Unit    string   `json:"unit"`
}

func f(v float64) *float64 { return &v }

var auThresholds = map[string]Threshold{
	"fridge_temp":  {PassMax: f(5), WarnMax: f(8), Unit: "°C"},
	"freezer_temp": {PassMax: f(-15), WarnMax: f(-12), Unit: "°C"},
	"cold_display": {PassMax: f(5), WarnMax: f(8), Unit: "°C"},
	"cooking_temp": {PassMin: f(75), WarnMin: f(70), Unit: "°C"},
	"hot_holding":  {PassMin: f(60), WarnMin: f(55), Unit: "°C"},
	"reheating":    {PassMin: f(60), WarnMin: f(55), Unit: "°C"},
	"delivery":     {PassMax: f(5), WarnMax: f(8), Unit: "°C"},
}

var uaeThresholds = map[string]Threshold{
	"fridge_temp":  {PassMax: f(5), WarnMax: f(8), Unit: "°C"},
	"freezer_temp": {PassMax: f(-18), WarnMax: f(-15), Unit: "°C"},
	"cold_display": {PassMax: f(4), WarnMax: f(6), Unit: "°C"},
	"cooking_temp": {PassMin: f(75), WarnMin: f(72), Unit: "°C"},
	"hot_holding":  {PassMin: f(60), WarnMin: f(55), Unit: "°C"},
	"reheating":    {PassMin: f(70), WarnMin: f(65), Unit: "°C"},
	"delivery":     {PassMax: f(5), WarnMax: f(8), Unit: "°C"},
}

var families = map[Family]map[string]Threshold{
	FamilyAU:  auThresholds,
	FamilyUAE: uaeThresholds,
}

// StatusFor classifies a reading for the given family and check type. Unknown
// check types pass: there is no threshold to violate, and an unrecognized log
// must not penalize the venue.
func StatusFor(family Family, logType string, reading float64) Status {
	table, ok := families[family]
	if !ok {
		table = auThresholds
	}
	threshold, ok := table[logType]
	if !ok {
		return StatusPass
	}
	return threshold.Classify(reading)
}

// AUStatus classifies a reading against the Australian limits.
func AUStatus(logType string, reading float64) Status {
	return StatusFor(FamilyAU, logType, reading)
}

// UAEStatus classifies a reading against the GCC limits.
func UAEStatus(logType string, reading float64) Status {
	return StatusFor(FamilyUAE, logType, reading)
}

// Classify applies the threshold's bounds to a reading.
func (t Threshold) Classify(reading float64) Status {
	switch {
	case t.PassMax != nil:
		if reading <= *t.PassMax {
			return StatusPass
		}
		if t.WarnMax != nil && reading <= *t.WarnMax {
			return StatusWarning
		}
		return StatusFail
	case t.PassMin != nil:
		if reading >= *t.PassMin {
			return StatusPass
		}
		if t.WarnMin != nil && reading >= *t.WarnMin {
			return StatusWarning
		}
		return StatusFail
	default:
		return StatusPass
	}
}

// Thresholds returns the family's table for display purposes.
func Thresholds(family Family) map[string]Threshold {
	table, ok := families[family]
	if !ok {
		table = auThresholds
	}
	out := make(map[string]Threshold, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
