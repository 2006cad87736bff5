package profile

import (
	"fmt"
	"strings"
)

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding against a profile document.
type Issue struct {
	Path     string   `json:"path"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Check validates a document and returns all findings. Structural problems
// (missing identity fields, non-positive dimensions, unknown kinematics) are
// errors. Violations of the numeric range invariant min <= recommended <= max
// are reported as warnings only: source profiles violating them are tolerated
// and still convert.
func Check(doc *Document) []Issue {
	var issues []Issue
	meta := doc.Meta()

	if strings.TrimSpace(meta.ID) == "" {
		issues = append(issues, Issue{Path: "id", Severity: SeverityError, Message: "required field is empty"})
	}
	if strings.TrimSpace(meta.Schema) == "" {
		issues = append(issues, Issue{Path: "op3d_schema", Severity: SeverityError, Message: "required field is empty"})
	}

	switch doc.Kind {
	case KindFilament:
		issues = append(issues, checkFilament(doc.Filament)...)
	case KindPrinter:
		issues = append(issues, checkPrinter(doc.Printer)...)
	case KindProcess:
		issues = append(issues, checkProcess(doc.Process)...)
	}
	return issues
}

// HasErrors reports whether any finding is severity error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func checkFilament(p *FilamentProfile) []Issue {
	var issues []Issue
	if strings.TrimSpace(p.Material) == "" {
		issues = append(issues, Issue{Path: "material", Severity: SeverityError, Message: "required field is empty"})
	}
	if p.Diameter < 0 {
		issues = append(issues, Issue{Path: "diameter", Severity: SeverityError, Message: "must not be negative"})
	}
	issues = append(issues, checkTempRange("nozzle", p.Nozzle)...)
	issues = append(issues, checkTempRange("bed", p.Bed)...)
	issues = append(issues, checkTempRange("fan", p.Fan)...)
	return issues
}

func checkPrinter(p *PrinterProfile) []Issue {
	var issues []Issue
	if strings.TrimSpace(p.Manufacturer) == "" {
		issues = append(issues, Issue{Path: "manufacturer", Severity: SeverityError, Message: "required field is empty"})
	}
	if strings.TrimSpace(p.Model) == "" {
		issues = append(issues, Issue{Path: "model", Severity: SeverityError, Message: "required field is empty"})
	}
	if p.BuildVolume.X <= 0 || p.BuildVolume.Y <= 0 || p.BuildVolume.Z <= 0 {
		issues = append(issues, Issue{Path: "build_volume", Severity: SeverityError, Message: "dimensions must be positive"})
	}
	if p.Kinematics != "" && !p.Kinematics.Known() {
		issues = append(issues, Issue{Path: "kinematics", Severity: SeverityError,
			Message: fmt.Sprintf("unknown value %q", p.Kinematics)})
	}
	for i, ext := range p.Extruders {
		if ext.NozzleDiameter < 0 {
			issues = append(issues, Issue{
				Path:     fmt.Sprintf("extruders.%d.nozzle_diameter", i),
				Severity: SeverityError,
				Message:  "must not be negative",
			})
		}
	}
	return issues
}

func checkProcess(p *ProcessProfile) []Issue {
	var issues []Issue
	if strings.TrimSpace(p.Name) == "" {
		issues = append(issues, Issue{Path: "name", Severity: SeverityError, Message: "required field is empty"})
	}
	lh := p.LayerHeight
	if lh.Min > 0 && lh.Max > 0 && lh.Min > lh.Max {
		issues = append(issues, Issue{Path: "layer_height", Severity: SeverityWarning, Message: "min exceeds max"})
	}
	if lh.Default > 0 && lh.Max > 0 && (lh.Default < lh.Min || lh.Default > lh.Max) {
		issues = append(issues, Issue{Path: "layer_height.default", Severity: SeverityWarning,
			Message: "default outside [min, max]"})
	}
	if p.Infill != nil && (p.Infill.DensityDefault < 0 || p.Infill.DensityDefault > 100) {
		issues = append(issues, Issue{Path: "infill.density_default", Severity: SeverityError,
			Message: "must be a percentage between 0 and 100"})
	}
	return issues
}

func checkTempRange(path string, r TempRange) []Issue {
	var issues []Issue
	if r.Min != 0 && r.Max != 0 && r.Min > r.Max {
		issues = append(issues, Issue{Path: path, Severity: SeverityWarning, Message: "min exceeds max"})
	}
	if r.Recommended != nil && r.Max != 0 && (*r.Recommended < r.Min || *r.Recommended > r.Max) {
		issues = append(issues, Issue{Path: path + ".recommended", Severity: SeverityWarning,
			Message: "recommended outside [min, max]"})
	}
	return issues
}
