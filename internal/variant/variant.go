// Package variant resolves deployment variants: a product stream (feature
// bundle) composed with a region yields the concrete feature set, branding and
// compliance framework exposed to one deployment. Pure table joins over static
// data, no algorithm of its own.
package variant

import (
	"sort"

	"mise/internal/region"
)

// Stream is a product feature bundle. AllFeatures is the "everything enabled"
// sentinel used by the flagship product; when set, Features is ignored.
type Stream struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	BaseLayout  string   `json:"base_layout"`
	AllFeatures bool     `json:"all_features"`
	Features    []string `json:"features"`
	// Releasable modules can be switched on per deployment after launch.
	Releasable []string `json:"releasable"`
}

// Definition binds a stream to a region under a variant code.
type Definition struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Stream string `json:"stream"`
	Region string `json:"region"`
	Brand  string `json:"brand"`
	// FrameworkOverride pins a compliance framework other than the region's
	// default, e.g. a Sharjah-specific deployment inside the uae region.
	FrameworkOverride string `json:"framework_override"`
}

// Resolved is the concrete configuration for one deployment variant.
type Resolved struct {
	Variant       Definition    `json:"variant"`
	Stream        Stream        `json:"stream"`
	Region        region.Config `json:"region"`
	FrameworkCode string        `json:"framework_code"`
}

// DefaultCode is the variant assumed when a deployment does not specify one.
const DefaultCode = "au_full"

var streams = map[string]Stream{
	"full": {
		Code:        "full",
		Name:        "Hospitality Suite",
		BaseLayout:  "suite",
		AllFeatures: true,
		Releasable:  []string{"proposals", "crm", "reports_advanced"},
	},
	"compliance": {
		Code:       "compliance",
		Name:       "Compliance",
		BaseLayout: "compliance",
		Features:   []string{"assessments", "temperature", "suppliers", "training"},
		Releasable: []string{"reports_advanced"},
	},
	"lite": {
		Code:       "lite",
		Name:       "Compliance Lite",
		BaseLayout: "compliance",
		Features:   []string{"assessments", "temperature"},
	},
}

var variants = map[string]Definition{
	"au_full":       {Code: "au_full", Name: "Australia", Stream: "full", Region: "au", Brand: "mise"},
	"au_lite":       {Code: "au_lite", Name: "Australia Lite", Stream: "lite", Region: "au", Brand: "mise"},
	"uae_safeserve": {Code: "uae_safeserve", Name: "UAE SafeServe", Stream: "compliance", Region: "uae", Brand: "safeserve"},
	"sharjah_muni":  {Code: "sharjah_muni", Name: "Sharjah Municipal", Stream: "compliance", Region: "uae", Brand: "safeserve", FrameworkOverride: "sm_sharjah"},
	"uk_hygiene":    {Code: "uk_hygiene", Name: "UK Hygiene", Stream: "compliance", Region: "uk", Brand: "mise"},
	"sg_hawker":     {Code: "sg_hawker", Name: "Singapore", Stream: "lite", Region: "sg", Brand: "mise"},
	"us_full":       {Code: "us_full", Name: "United States", Stream: "full", Region: "us", Brand: "mise"},
	"in_fostac":     {Code: "in_fostac", Name: "India FoSTaC", Stream: "compliance", Region: "in", Brand: "safeserve"},
}

// Resolve composes a variant with its stream and region. Unknown variant codes
// fall back to the default variant; this never errors.
func Resolve(code string) Resolved {
	def, ok := variants[code]
	if !ok {
		def = variants[DefaultCode]
	}
	return resolve(def)
}

// Lookup is Resolve without the fallback, for callers that need to know
// whether the variant exists.
func Lookup(code string) (Resolved, bool) {
	def, ok := variants[code]
	if !ok {
		return Resolved{}, false
	}
	return resolve(def), true
}

func resolve(def Definition) Resolved {
	stream := streams[def.Stream]
	reg := region.Get(def.Region)

	framework := reg.DefaultFramework
	if def.FrameworkOverride != "" {
		framework = def.FrameworkOverride
	}

	return Resolved{
		Variant:       def,
		Stream:        stream,
		Region:        reg,
		FrameworkCode: framework,
	}
}

// Codes lists the registered variant codes, sorted.
func Codes() []string {
	out := make([]string, 0, len(variants))
	for code := range variants {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// HasFeature reports whether the resolved variant exposes a feature, honoring
// the all-features sentinel.
func (r Resolved) HasFeature(feature string) bool {
	if r.Stream.AllFeatures {
		return true
	}
	for _, f := range r.Stream.Features {
		if f == feature {
			return true
		}
	}
	return false
}
