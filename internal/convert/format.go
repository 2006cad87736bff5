package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"op3d/internal/profile"
	"op3d/internal/textutil"
)

// Format identifies a conversion target.
type Format string

const (
	FormatOrca  Format = "orcaslicer"
	FormatPrusa Format = "prusaslicer"
	FormatCura  Format = "cura"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat indicates an unrecognized target format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists all supported targets in display order.
func Formats() []Format {
	return []Format{FormatOrca, FormatPrusa, FormatCura, FormatYAML, FormatJSON}
}

// ParseFormat converts a string to a Format. A few common aliases are
// accepted ("orca", "prusa", "ini", "cfg").
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "orcaslicer", "orca", "bambustudio", "bambu":
		return FormatOrca, nil
	case "prusaslicer", "prusa", "superslicer", "ini":
		return FormatPrusa, nil
	case "cura", "cfg":
		return FormatCura, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// Extension returns the output file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatOrca, FormatJSON:
		return ".json"
	case FormatPrusa:
		return ".ini"
	case FormatCura:
		return ".cfg"
	case FormatYAML:
		return ".yaml"
	}
	return ".txt"
}

// Convert renders one profile document in the target format. It fails only
// for a nil document or unknown format; missing optional fields resolve to
// inline defaults and unmapped enumeration values fall back to table defaults.
// Entries in the profile's matching vendor extension bucket (x_orca,
// x_prusaslicer, x_cura) take precedence over generated values.
func Convert(doc *profile.Document, format Format) (string, error) {
	if doc == nil || doc.Value() == nil {
		return "", errors.New("nil profile document")
	}
	switch format {
	case FormatOrca:
		return convertOrca(doc)
	case FormatPrusa:
		return convertPrusa(doc), nil
	case FormatCura:
		return convertCura(doc), nil
	case FormatYAML:
		return dumpYAML(doc)
	case FormatJSON:
		return dumpJSON(doc)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName returns the conventional output file name for a converted
// document: <kind>-<id with slashes replaced by dashes><extension>.
func FileName(doc *profile.Document, format Format) string {
	id := textutil.SanitizeFileName(doc.ID())
	if id == "" {
		id = "profile"
	}
	return string(doc.Kind) + "-" + id + format.Extension()
}

// num formats a float the way slicer configs expect: no exponent, no
// trailing zeros, integers without a decimal point.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recommendedOr resolves the working value of a range: the recommended point
// when present, the rounded midpoint when both bounds are set, else the
// fallback.
func recommendedOr(r profile.TempRange, fallback float64) float64 {
	if r.Recommended != nil {
		return *r.Recommended
	}
	if r.Min != 0 || r.Max != 0 {
		return math.Round((r.Min + r.Max) / 2)
	}
	return fallback
}

// firstLayerOr resolves the first-layer value of a range: the explicit
// first-layer point when present, otherwise the working value plus five
// degrees.
func firstLayerOr(r profile.TempRange, fallback float64) float64 {
	if r.FirstLayer != nil {
		return *r.FirstLayer
	}
	return recommendedOr(r, fallback) + 5
}

// maxOr returns the range maximum, or the fallback when unset.
func maxOr(r profile.TempRange, fallback float64) float64 {
	if r.Max != 0 {
		return r.Max
	}
	return fallback
}

// minOr returns the range minimum, or the fallback when unset.
func minOr(r profile.TempRange, fallback float64) float64 {
	if r.Min != 0 {
		return r.Min
	}
	return fallback
}
