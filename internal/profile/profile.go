package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a profile document type.
type Kind string

const (
	KindFilament Kind = "filament"
	KindPrinter  Kind = "printer"
	KindProcess  Kind = "process"
)

// Kinds lists all profile kinds in library scan order.
func Kinds() []Kind {
	return []Kind{KindPrinter, KindFilament, KindProcess}
}

// ParseKind converts a string to a Kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindFilament:
		return KindFilament, nil
	case KindPrinter:
		return KindPrinter, nil
	case KindProcess:
		return KindProcess, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSchema, value)
	}
}

// Maintainer describes who maintains a profile.
type Maintainer struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Type    string `json:"maintainer_type,omitempty" yaml:"maintainer_type,omitempty"`
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// Meta carries identity and provenance fields shared by all profile kinds.
type Meta struct {
	Schema        string            `json:"op3d_schema" yaml:"op3d_schema"`
	SchemaVersion string            `json:"op3d_schema_version,omitempty" yaml:"op3d_schema_version,omitempty"`
	ID            string            `json:"id" yaml:"id"`
	Maintainer    *Maintainer       `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	License       string            `json:"license,omitempty" yaml:"license,omitempty"`
	ExternalIDs   map[string]string `json:"external_ids,omitempty" yaml:"external_ids,omitempty"`
	Links         map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
	Tags          []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Notes         string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Extensions holds opaque per-vendor override buckets. Values are carried
// through load and native dumps without interpretation.
type Extensions struct {
	XPrusaSlicer map[string]any `json:"x_prusaslicer,omitempty" yaml:"x_prusaslicer,omitempty"`
	XCura        map[string]any `json:"x_cura,omitempty" yaml:"x_cura,omitempty"`
	XOrca        map[string]any `json:"x_orca,omitempty" yaml:"x_orca,omitempty"`
	XBambu       map[string]any `json:"x_bambu,omitempty" yaml:"x_bambu,omitempty"`
}

// Range is a bounded numeric interval.
type Range struct {
	Min float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// TempRange is a temperature (or fan percentage) window with optional
// recommended and first-layer points.
type TempRange struct {
	Min         float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Recommended *float64 `json:"recommended,omitempty" yaml:"recommended,omitempty"`
	FirstLayer  *float64 `json:"first_layer,omitempty" yaml:"first_layer,omitempty"`
}

// Document is a tagged union over the three profile kinds. Exactly one of the
// pointer fields is non-nil, matching Kind.
type Document struct {
	Kind     Kind
	Filament *FilamentProfile
	Printer  *PrinterProfile
	Process  *ProcessProfile

	// Path is the library file the document was loaded from, when known.
	Path string
}

// Decode parses a profile document, dispatching on the op3d_schema field.
func Decode(data []byte) (*Document, error) {
	var head struct {
		Schema string `json:"op3d_schema"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	kind, err := ParseKind(head.Schema)
	if err != nil {
		return nil, err
	}

	doc := &Document{Kind: kind}
	switch kind {
	case KindFilament:
		var p FilamentProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		doc.Filament = &p
	case KindPrinter:
		var p PrinterProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		doc.Printer = &p
	case KindProcess:
		var p ProcessProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		doc.Process = &p
	}
	return doc, nil
}

// Meta returns the shared identity block of the underlying profile.
func (d *Document) Meta() *Meta {
	switch d.Kind {
	case KindFilament:
		return &d.Filament.Meta
	case KindPrinter:
		return &d.Printer.Meta
	case KindProcess:
		return &d.Process.Meta
	}
	return nil
}

// ID returns the profile identifier, unique within its kind.
func (d *Document) ID() string {
	if m := d.Meta(); m != nil {
		return m.ID
	}
	return ""
}

// DisplayName returns a human-readable name for listings.
func (d *Document) DisplayName() string {
	switch d.Kind {
	case KindFilament:
		if d.Filament.Name != "" {
			return d.Filament.Name
		}
	case KindPrinter:
		name := strings.TrimSpace(d.Printer.Manufacturer + " " + d.Printer.Model)
		if name != "" {
			return name
		}
	case KindProcess:
		if d.Process.Name != "" {
			return d.Process.Name
		}
	}
	return d.ID()
}

// VendorExtensions returns the profile's opaque x_* override buckets.
func (d *Document) VendorExtensions() *Extensions {
	switch d.Kind {
	case KindFilament:
		return &d.Filament.Extensions
	case KindPrinter:
		return &d.Printer.Extensions
	case KindProcess:
		return &d.Process.Extensions
	}
	return nil
}

// Value returns the underlying typed profile for native dumps.
func (d *Document) Value() any {
	switch d.Kind {
	case KindFilament:
		return d.Filament
	case KindPrinter:
		return d.Printer
	case KindProcess:
		return d.Process
	}
	return nil
}
