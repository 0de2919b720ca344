package frameworks

import "mise/internal/compliance/derive"

// Definitions returns the override table for every derived regime, keyed by
// framework code. The registry applies each entry to the baseline at startup.
func Definitions() map[string]derive.Overrides {
	return map[string]derive.Overrides{
		// Australia (Queensland is the baseline itself)
		"nsw_fa":     nswFoodAuthority,
		"vic_dh":     vicHealth,
		"sa_health":  saHealth,
		"wa_doh":     waHealth,
		"tas_doh":    tasHealth,
		"act_health": actHealth,
		"nt_doh":     ntHealth,

		// United Arab Emirates
		"dm":         dubaiMunicipality,
		"adafsa":     abuDhabiADAFSA,
		"sm_sharjah": sharjahMunicipality,

		// International
		"uk_fsa": ukFSA,
		"sg_sfa": singaporeSFA,
		"us_fda": usFDA,
		"fssai":  indiaFSSAI,
	}
}
