package geo

import "strings"

// Emirate codes for the keyword-based classifier.
const (
	EmirateDubai      = "dubai"
	EmirateAbuDhabi   = "abu_dhabi"
	EmirateSharjah    = "sharjah"
	EmirateAjman      = "ajman"
	EmirateRAK        = "ras_al_khaimah"
	EmirateFujairah   = "fujairah"
	EmirateUmmAlQuwain = "umm_al_quwain"
)

// DefaultEmirate is returned when nothing in the text matches.
const DefaultEmirate = EmirateDubai

// emirateOrder fixes the scan order across all three matching stages.
var emirateOrder = []string{
	EmirateDubai,
	EmirateAbuDhabi,
	EmirateSharjah,
	EmirateAjman,
	EmirateRAK,
	EmirateFujairah,
	EmirateUmmAlQuwain,
}

var emirateNames = map[string][]string{
	EmirateDubai:      {"dubai"},
	EmirateAbuDhabi:   {"abu dhabi"},
	EmirateSharjah:    {"sharjah"},
	EmirateAjman:      {"ajman"},
	EmirateRAK:        {"ras al khaimah", "ras al-khaimah"},
	EmirateFujairah:   {"fujairah"},
	EmirateUmmAlQuwain: {"umm al quwain", "umm al-quwain"},
}

// District keyword lists, longest token first within each emirate so that a
// short token cannot shadow a longer one it is a substring of. "Al Nahda"
// exists in both Dubai and Sharjah; the bare token stays under Dubai and the
// Sharjah list carries the disambiguated form.
var emirateDistricts = map[string][]string{
	EmirateDubai: {
		"international city", "dubai marina", "business bay", "jumeirah beach",
		"al barsha", "al karama", "bur dubai", "al nahda", "downtown",
		"jumeirah", "al quoz", "deira", "jlt",
	},
	EmirateAbuDhabi: {
		"khalifa city", "al maryah island", "yas island", "saadiyat",
		"mussafah", "al reem", "corniche", "al ain",
	},
	EmirateSharjah: {
		"al nahda sharjah", "industrial area", "al qasimia", "muwaileh",
		"al majaz", "al khan",
	},
	EmirateAjman: {
		"al nuaimiya", "al jurf", "al rashidiya",
	},
	EmirateRAK: {
		"al nakheel", "al hamra",
	},
	EmirateFujairah: {
		"dibba",
	},
	EmirateUmmAlQuwain: {
		"al salamah",
	},
}

var emiratePostalPrefixes = map[string][]string{
	EmirateDubai:      {"dxb"},
	EmirateAbuDhabi:   {"auh"},
	EmirateSharjah:    {"shj"},
	EmirateAjman:      {"ajm"},
	EmirateRAK:        {"rkt"},
	EmirateFujairah:   {"fjr"},
	EmirateUmmAlQuwain: {"uaq"},
}

// DetectEmirate classifies free text in priority order: explicit emirate name,
// then district keywords, then postal prefixes. First match wins; no match
// falls back to Dubai.
func DetectEmirate(text string) string {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return DefaultEmirate
	}

	for _, stage := range []map[string][]string{emirateNames, emirateDistricts, emiratePostalPrefixes} {
		for _, emirate := range emirateOrder {
			for _, token := range stage[emirate] {
				if strings.Contains(needle, token) {
					return emirate
				}
			}
		}
	}
	return DefaultEmirate
}

// emirateFrameworks maps each emirate to its compliance framework. The
// northern emirates run Dubai-style food codes in-platform, so they resolve
// to the Dubai Municipality framework.
var emirateFrameworks = map[string]string{
	EmirateDubai:      "dm",
	EmirateAbuDhabi:   "adafsa",
	EmirateSharjah:    "sm_sharjah",
	EmirateAjman:      "dm",
	EmirateRAK:        "dm",
	EmirateFujairah:   "dm",
	EmirateUmmAlQuwain: "dm",
}

// EmirateCompliance returns the compliance framework code for an emirate,
// falling back to the Dubai framework for unknown codes.
func EmirateCompliance(emirate string) string {
	if code, ok := emirateFrameworks[emirate]; ok {
		return code
	}
	return emirateFrameworks[DefaultEmirate]
}
