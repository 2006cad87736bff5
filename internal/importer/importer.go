package importer

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"op3d/internal/profile"
)

// ErrNoProfiles indicates the input had no recognizable profile sections.
var ErrNoProfiles = errors.New("no printer, filament, or print sections found")

const schemaVersion = "0.1.0"

// Options adjusts how imported documents are stamped.
type Options struct {
	// Maintainer overrides the provenance recorded on imported profiles.
	Maintainer *profile.Maintainer
	// SourceName is the input file stem, used to derive fallback names.
	SourceName string
}

// Import parses a PrusaSlicer ini export and converts every recognized
// section into a neutral document.
func Import(data []byte, opts Options) ([]*profile.Document, error) {
	sections, err := parseINI(data)
	if err != nil {
		return nil, err
	}

	var docs []*profile.Document
	for _, section := range sections {
		switch section.name {
		case "printer":
			docs = append(docs, importPrinter(section, opts))
		case "filament":
			docs = append(docs, importFilament(section, opts))
		case "print":
			docs = append(docs, importProcess(section, opts))
		}
	}
	if len(docs) == 0 {
		return nil, ErrNoProfiles
	}
	return docs, nil
}

func maintainerFor(opts Options) *profile.Maintainer {
	if opts.Maintainer != nil && opts.Maintainer.Name != "" {
		m := *opts.Maintainer
		return &m
	}
	return &profile.Maintainer{Name: "Imported from PrusaSlicer", Type: "community"}
}

// makeID builds a "<group>/<name>" identifier with filesystem-hostile
// characters collapsed to dashes within each component.
func makeID(group, name string) string {
	return idComponent(group) + "/" + idComponent(name)
}

func idComponent(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Unknown"
	}
	value = strings.ReplaceAll(value, " ", "-")
	value = strings.ReplaceAll(value, "/", "-")
	return value
}

// fallbackName turns a file stem like "prusament-pla-vanilla" into
// "Prusament Pla Vanilla" for use when the export carries no preset name.
func fallbackName(opts Options, last string) string {
	stem := strings.TrimSpace(opts.SourceName)
	if stem == "" {
		return last
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return cases.Title(language.English).String(words)
}

func parseFloatValue(raw string) (float64, bool) {
	// PrusaSlicer writes per-extruder values as comma lists; the first entry
	// is the default tool.
	if idx := strings.Index(raw, ","); idx >= 0 {
		raw = raw[:idx]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntValue(raw string) (int, bool) {
	v, ok := parseFloatValue(raw)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func parseBoolValue(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// parsePercent reads "20%" or "0.2"-style density values and returns percent.
func parsePercent(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(raw, "%")), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v * 100, true
}

func extensionBucket(section *iniSection, consumed map[string]bool) map[string]any {
	bucket := make(map[string]any)
	for _, key := range section.keys {
		if consumed[key] {
			continue
		}
		bucket[key] = section.values[key]
	}
	if len(bucket) == 0 {
		return nil
	}
	return bucket
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
