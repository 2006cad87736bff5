package importer

import (
	"regexp"
	"strings"

	"op3d/internal/profile"
)

var printerKeys = map[string]bool{
	"printer_model":              true,
	"printer_make":               true,
	"printer_variant":            true,
	"bed_shape":                  true,
	"max_print_height":           true,
	"nozzle_diameter":            true,
	"machine_max_speed_x":        true,
	"machine_max_speed_y":        true,
	"machine_max_speed_z":        true,
	"machine_max_acceleration_x": true,
	"machine_max_acceleration_y": true,
	"machine_max_acceleration_z": true,
	"printer_notes":              true,
}

// kinematicsHints is checked longest-first so "hybrid_corexy" wins over
// "corexy" in free-text printer notes.
var kinematicsHints = []profile.Kinematics{
	profile.KinematicsHybridCoreXY,
	profile.KinematicsHybridCoreXZ,
	profile.KinematicsCoreXY,
	profile.KinematicsCoreXZ,
	profile.KinematicsDelta,
	profile.KinematicsCartesian,
}

var bedCoordPattern = regexp.MustCompile(`[-\d.]+x[-\d.]+`)

func importPrinter(section *iniSection, opts Options) *profile.Document {
	p := &profile.PrinterProfile{
		Meta: profile.Meta{
			Schema:        string(profile.KindPrinter),
			SchemaVersion: schemaVersion,
			Maintainer:    maintainerFor(opts),
		},
		Manufacturer: "Unknown",
		Model:        "Unknown",
		Variant:      "Stock",
		BuildVolume: profile.BuildVolume{
			X: 200, Y: 200, Z: 200,
			Shape:  "rectangular",
			Origin: "front_left",
		},
		Kinematics: profile.KinematicsCartesian,
		Axes: &profile.Axes{
			X: profile.AxisLimits{MaxSpeed: 300, MaxAccel: 3000},
			Y: profile.AxisLimits{MaxSpeed: 300, MaxAccel: 3000},
			Z: profile.AxisLimits{MaxSpeed: 12, MaxAccel: 500},
		},
		Extruders: []profile.Extruder{{
			ID:                  "tool0",
			NozzleDiameter:      0.4,
			NozzleMaterial:      "brass",
			MaxTemp:             300,
			RetractionSupported: true,
		}},
		Bed:      &profile.HeatedZone{Heated: true, MaxTemp: 120},
		Chamber:  &profile.Chamber{},
		Firmware: &profile.Firmware{Flavor: "other"},
		Network:  &profile.Network{},
	}

	if v, ok := section.get("printer_model"); ok && strings.TrimSpace(v) != "" {
		p.Model = strings.TrimSpace(v)
	}
	if v, ok := section.get("printer_make"); ok && strings.TrimSpace(v) != "" {
		p.Manufacturer = strings.TrimSpace(v)
	}
	if v, ok := section.get("printer_variant"); ok && strings.TrimSpace(v) != "" {
		p.Variant = strings.TrimSpace(v)
	}
	if v, ok := section.get("max_print_height"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.BuildVolume.Z = f
		}
	}
	if v, ok := section.get("bed_shape"); ok {
		x, y, found := parseBedDimensions(v)
		if found {
			p.BuildVolume.X = x
			p.BuildVolume.Y = y
		}
	}
	if v, ok := section.get("nozzle_diameter"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Extruders[0].NozzleDiameter = f
		}
	}

	if v, ok := section.get("machine_max_speed_x"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.X.MaxSpeed = f
		}
	}
	if v, ok := section.get("machine_max_speed_y"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.Y.MaxSpeed = f
		}
	}
	if v, ok := section.get("machine_max_speed_z"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.Z.MaxSpeed = f
		}
	}
	if v, ok := section.get("machine_max_acceleration_x"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.X.MaxAccel = f
		}
	}
	if v, ok := section.get("machine_max_acceleration_y"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.Y.MaxAccel = f
		}
	}
	if v, ok := section.get("machine_max_acceleration_z"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Axes.Z.MaxAccel = f
		}
	}
	if v, ok := section.get("printer_notes"); ok {
		p.Notes = v
	}

	p.Kinematics = inferKinematics(section)
	p.ID = makeID(p.Manufacturer, p.Model)
	p.XPrusaSlicer = extensionBucket(section, printerKeys)

	return &profile.Document{Kind: profile.KindPrinter, Printer: p}
}

// inferKinematics guesses the motion system from printer_type and free-text
// notes. Cartesian is the safe default for unknown machines.
func inferKinematics(section *iniSection) profile.Kinematics {
	printerType, _ := section.get("printer_type")
	printerNotes, _ := section.get("printer_notes")
	haystack := strings.ToLower(printerType + " " + printerNotes)

	for _, candidate := range kinematicsHints {
		if strings.Contains(haystack, string(candidate)) {
			return candidate
		}
	}
	return profile.KinematicsCartesian
}

// parseBedDimensions extracts the bounding box of a PrusaSlicer bed_shape
// polygon ("0x0,250x0,250x210,0x210").
func parseBedDimensions(bedShape string) (x, y float64, ok bool) {
	coords := bedCoordPattern.FindAllString(bedShape, -1)
	if len(coords) == 0 {
		return 0, 0, false
	}

	var minX, maxX, minY, maxY float64
	for i, coord := range coords {
		parts := strings.SplitN(coord, "x", 2)
		cx, validX := parseFloatValue(parts[0])
		cy, validY := parseFloatValue(parts[1])
		if !validX || !validY {
			return 0, 0, false
		}
		if i == 0 {
			minX, maxX, minY, maxY = cx, cx, cy, cy
			continue
		}
		minX = min(minX, cx)
		maxX = max(maxX, cx)
		minY = min(minY, cy)
		maxY = max(maxY, cy)
	}
	return maxX - minX, maxY - minY, true
}
