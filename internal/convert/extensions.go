package convert

import (
	"encoding/json"
	"sort"
	"strings"

	"op3d/internal/textutil"
)

// Vendor extension buckets (x_prusaslicer, x_cura, x_orca) carry slicer
// settings the neutral schema has no field for. Each converter overlays its
// matching bucket onto the generated output: an entry whose key collides with
// a generated setting replaces that value in place, remaining entries are
// appended in sorted key order so output stays deterministic.

// overlayLines merges a vendor bucket into ordered INI/cfg value lines.
func overlayLines(lines []kv, bucket map[string]any, render func(any) string) []kv {
	if len(bucket) == 0 {
		return lines
	}
	replaced := make(map[string]bool, len(bucket))
	for i := range lines {
		if v, ok := bucket[lines[i].key]; ok {
			lines[i].value = render(v)
			replaced[lines[i].key] = true
		}
	}
	extra := make([]string, 0, len(bucket))
	for key := range bucket {
		if !replaced[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		lines = append(lines, kv{key, render(bucket[key])})
	}
	return lines
}

// iniOverrideValue renders a raw bucket value for PrusaSlicer INI output,
// which spells booleans 0/1.
func iniOverrideValue(v any) string {
	return overrideString(v, boolFlag)
}

// cfgOverrideValue renders a raw bucket value for Cura cfg output, which
// spells booleans True/False.
func cfgOverrideValue(v any) string {
	return overrideString(v, pyBool)
}

func overrideString(v any, boolText func(bool) string) string {
	switch t := v.(type) {
	case string:
		return textutil.EscapeNewlines(t)
	case float64:
		return num(t)
	case bool:
		return boolText(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, overrideString(e, boolText))
		}
		return strings.Join(parts, ",")
	case nil:
		return ""
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// overlayPreset merges a vendor bucket into an Orca preset map, wrapping
// scalar overrides in the dialect's single-element string arrays.
func overlayPreset(preset map[string]any, bucket map[string]any) {
	for key, v := range bucket {
		preset[key] = orcaOverrideValue(v)
	}
}

func orcaOverrideValue(v any) any {
	switch t := v.(type) {
	case string:
		return strArr(t)
	case float64:
		return numArr(t)
	case bool:
		return strArr(boolFlag(t))
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, overrideString(e, boolFlag))
		}
		return parts
	default:
		return v
	}
}
