// Package derive implements structural inheritance for compliance framework
// configurations: a partial override applied recursively over the immutable
// baseline.
//
// Merge semantics, deliberately asymmetric:
//   - object + object: merge recursively, field by field
//   - everything else (arrays included): the override replaces the base value
//     wholesale; checklists and wizard steps are regime-specific and must not
//     blend items from two regimes
//   - nil override values mean "not specified" and never clobber the base
//
// Both inputs are left untouched and the result is always structurally
// complete. Unknown keys and type-incompatible values are authoring errors and
// fail at registry construction, not at request time.
package derive

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mise/internal/compliance/models"
	domainerrors "mise/pkg/domain-errors"
)

// Overrides is a partial framework definition keyed by the config's JSON field
// names. Values may be nested Overrides, plain Go values, or typed structs and
// slices from the models package; typed values replace wholesale.
type Overrides map[string]any

// Derive overlays overrides onto base and returns the fully-populated result.
func Derive(base models.ComplianceFrameworkConfig, overrides Overrides) (models.ComplianceFrameworkConfig, error) {
	baseMap, err := toMap(base)
	if err != nil {
		return models.ComplianceFrameworkConfig{}, domainerrors.Wrap(domainerrors.CodeInvariantViolation, "encode baseline", err)
	}

	overrideMap, err := toMap(overrides)
	if err != nil {
		return models.ComplianceFrameworkConfig{}, domainerrors.Wrap(domainerrors.CodeInvariantViolation, "encode overrides", err)
	}

	merged, err := merge(baseMap, overrideMap, "")
	if err != nil {
		return models.ComplianceFrameworkConfig{}, domainerrors.Wrap(domainerrors.CodeInvariantViolation, "merge overrides", err)
	}

	out, err := decode(merged)
	if err != nil {
		return models.ComplianceFrameworkConfig{}, domainerrors.Wrap(domainerrors.CodeInvariantViolation, "decode merged config", err)
	}
	return out, nil
}

// toMap normalizes any value into JSON-shaped primitives (map[string]any,
// []any, string, float64, bool, nil) so the merge only ever compares one
// representation.
func toMap(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// merge returns a fresh map; neither input is mutated.
func merge(base, overrides map[string]any, path string) (map[string]any, error) {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}

	for key, ov := range overrides {
		fieldPath := key
		if path != "" {
			fieldPath = path + "." + key
		}

		bv, known := base[key]
		if !known {
			return nil, fmt.Errorf("override field %q does not exist in the baseline", fieldPath)
		}
		if ov == nil {
			// Not specified; keep the base value.
			continue
		}

		bMap, baseIsMap := bv.(map[string]any)
		oMap, overrideIsMap := ov.(map[string]any)

		switch {
		case baseIsMap && overrideIsMap:
			m, err := merge(bMap, oMap, fieldPath)
			if err != nil {
				return nil, err
			}
			out[key] = m
		case overrideIsMap != baseIsMap && bv != nil:
			return nil, fmt.Errorf("override field %q has incompatible shape", fieldPath)
		default:
			if err := checkKinds(bv, ov, fieldPath); err != nil {
				return nil, err
			}
			out[key] = ov
		}
	}
	return out, nil
}

// checkKinds rejects scalar/array overrides whose JSON kind differs from the
// base field. A nil base value (an unset optional) accepts anything.
func checkKinds(base, override any, path string) error {
	if base == nil {
		return nil
	}
	if jsonKind(base) != jsonKind(override) {
		return fmt.Errorf("override field %q has type %s, baseline has %s", path, jsonKind(override), jsonKind(base))
	}
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "null"
	}
}

func decode(m map[string]any) (models.ComplianceFrameworkConfig, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return models.ComplianceFrameworkConfig{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var cfg models.ComplianceFrameworkConfig
	if err := dec.Decode(&cfg); err != nil {
		return models.ComplianceFrameworkConfig{}, err
	}
	return cfg, nil
}
