// Package registry builds and serves the framework configuration table.
//
// The table is constructed once by deriving every regime from the baseline;
// after that it is read-only, so concurrent lookups need no coordination. Any
// derive failure is an authoring error and aborts construction; a registry is
// either complete or absent, never partial.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"mise/internal/compliance/derive"
	"mise/internal/compliance/frameworks"
	"mise/internal/compliance/models"
	"mise/internal/variant"
)

// Registry is the immutable framework lookup table.
type Registry struct {
	baseline models.ComplianceFrameworkConfig
	configs  map[string]models.ComplianceFrameworkConfig
}

// New derives every known regime against the baseline. Returns an error if any
// definition fails to derive; callers should treat that as fatal at startup.
func New() (*Registry, error) {
	baseline := frameworks.Baseline()

	configs := map[string]models.ComplianceFrameworkConfig{
		frameworks.BaselineCode: baseline,
	}
	for code, overrides := range frameworks.Definitions() {
		cfg, err := derive.Derive(frameworks.Baseline(), overrides)
		if err != nil {
			return nil, fmt.Errorf("derive framework %q: %w", code, err)
		}
		if cfg.Code != code {
			return nil, fmt.Errorf("framework %q declares code %q", code, cfg.Code)
		}
		configs[code] = cfg
	}

	return &Registry{baseline: baseline, configs: configs}, nil
}

// Get returns the fully-derived configuration for a framework code. Unknown,
// empty or "none" codes fall back to the baseline; this never errors and never
// returns a partial config, because an unavailable config would block a venue
// from recording safety checks.
func (r *Registry) Get(code string) models.ComplianceFrameworkConfig {
	if cfg, ok := r.configs[code]; ok {
		return cfg
	}
	return r.baseline
}

// Lookup returns the configuration and whether the code is registered.
func (r *Registry) Lookup(code string) (models.ComplianceFrameworkConfig, bool) {
	cfg, ok := r.configs[code]
	return cfg, ok
}

// GetForVariant resolves a deployment variant to its framework configuration:
// variant → region → framework code → lookup.
func (r *Registry) GetForVariant(variantCode string) models.ComplianceFrameworkConfig {
	return r.Get(variant.Resolve(variantCode).FrameworkCode)
}

// Baseline returns the baseline configuration.
func (r *Registry) Baseline() models.ComplianceFrameworkConfig {
	return r.baseline
}

// Codes lists every registered framework code, sorted.
func (r *Registry) Codes() []string {
	out := make([]string, 0, len(r.configs))
	for code := range r.configs {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

var defaultRegistry = sync.OnceValues(New)

// Default returns the process-wide registry, built on first use. The error is
// sticky: a failed build fails every subsequent call, which keeps a broken
// framework definition from going unnoticed.
func Default() (*Registry, error) {
	return defaultRegistry()
}
