package convert

import (
	"encoding/json"
	"fmt"

	"op3d/internal/profile"
)

// convertOrca renders an OrcaSlicer/Bambu Studio user preset. The preset
// dialect wraps every leaf value in a single-element string array and selects
// a system parent preset via the "inherits" field.
func convertOrca(doc *profile.Document) (string, error) {
	var preset map[string]any
	switch doc.Kind {
	case profile.KindFilament:
		preset = orcaFilament(doc.Filament)
	case profile.KindPrinter:
		preset = orcaPrinter(doc.Printer)
	case profile.KindProcess:
		preset = orcaProcess(doc.Process)
	}
	if ext := doc.VendorExtensions(); ext != nil {
		overlayPreset(preset, ext.XOrca)
	}

	// encoding/json sorts map keys, which keeps the output byte-identical
	// across runs.
	data, err := json.MarshalIndent(preset, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal orca preset: %w", err)
	}
	return string(data) + "\n", nil
}

func strArr(value string) []string {
	return []string{value}
}

func numArr(value float64) []string {
	return []string{num(value)}
}

func orcaFilament(p *profile.FilamentProfile) map[string]any {
	nozzle := recommendedOr(p.Nozzle, 200)
	bed := recommendedOr(p.Bed, 50)

	diameter := p.Diameter
	if diameter == 0 {
		diameter = 1.75
	}

	preset := map[string]any{
		"type":                             "filament",
		"name":                             orcaPresetName(p.Brand, p.Name, p.Material),
		"from":                             "User",
		"inherits":                         orcaFilamentParent(p.Material),
		"filament_type":                    strArr(orcaMaterial(p.Material)),
		"filament_diameter":                numArr(diameter),
		"nozzle_temperature":               numArr(nozzle),
		"nozzle_temperature_initial_layer": numArr(firstLayerOr(p.Nozzle, 200)),
		"hot_plate_temp":                   numArr(bed),
		"hot_plate_temp_initial_layer":     numArr(firstLayerOr(p.Bed, 50)),
		"fan_max_speed":                    numArr(maxOr(p.Fan, 100)),
		"fan_min_speed":                    numArr(minOr(p.Fan, 0)),
		"compatible_printers":              []string{},
	}
	if p.Density > 0 {
		preset["filament_density"] = numArr(p.Density)
	}
	if p.Cost > 0 {
		preset["filament_cost"] = numArr(p.Cost)
	}
	if p.VolumetricSpeed > 0 {
		preset["filament_max_volumetric_speed"] = numArr(p.VolumetricSpeed)
	}
	return preset
}

func orcaPrinter(p *profile.PrinterProfile) map[string]any {
	bv := p.BuildVolume
	extruder := p.PrimaryExtruder()

	nozzle := extruder.NozzleDiameter
	if nozzle == 0 {
		nozzle = 0.4
	}

	flavor := ""
	if p.Firmware != nil {
		flavor = p.Firmware.Flavor
	}

	preset := map[string]any{
		"type":             "machine",
		"name":             orcaPresetName(p.Manufacturer, p.Model, p.Variant),
		"from":             "User",
		"inherits":         defaultOrcaMachineParent,
		"printable_area":   orcaPrintableArea(bv),
		"printable_height": numArr(dimOr(bv.Z, 200)),
		"nozzle_diameter":  numArr(nozzle),
		"gcode_flavor":     strArr(orcaGcodeFlavor(flavor)),
	}
	if p.Axes != nil {
		preset["machine_max_speed_x"] = numArr(p.Axes.X.MaxSpeed)
		preset["machine_max_speed_y"] = numArr(p.Axes.Y.MaxSpeed)
		preset["machine_max_speed_z"] = numArr(p.Axes.Z.MaxSpeed)
		preset["machine_max_acceleration_x"] = numArr(p.Axes.X.MaxAccel)
		preset["machine_max_acceleration_y"] = numArr(p.Axes.Y.MaxAccel)
		preset["machine_max_acceleration_z"] = numArr(p.Axes.Z.MaxAccel)
	}
	return preset
}

func orcaProcess(p *profile.ProcessProfile) map[string]any {
	layerHeight := p.LayerHeight.Default
	if layerHeight == 0 {
		layerHeight = 0.2
	}

	preset := map[string]any{
		"type":                  "process",
		"name":                  orcaPresetName("", p.Name, p.Intent),
		"from":                  "User",
		"inherits":              defaultOrcaProcessParent,
		"layer_height":          numArr(layerHeight),
		"sparse_infill_density": strArr(num(infillDensityOr(p, 20)) + "%"),
		"sparse_infill_pattern": strArr(orcaInfillPattern(primaryInfillPattern(p))),
		"compatible_printers":   []string{},
	}
	if p.Walls != nil {
		preset["wall_loops"] = numArr(float64(p.Walls.WallCount))
		preset["top_shell_layers"] = numArr(float64(p.Walls.TopLayers))
		preset["bottom_shell_layers"] = numArr(float64(p.Walls.BottomLayers))
	}
	if p.Speed != nil {
		preset["outer_wall_speed"] = numArr(p.Speed.OuterWall)
		preset["inner_wall_speed"] = numArr(p.Speed.InnerWall)
		preset["sparse_infill_speed"] = numArr(p.Speed.Infill)
		preset["top_surface_speed"] = numArr(p.Speed.TopBottom)
		preset["travel_speed"] = numArr(p.Speed.Travel)
	}
	if p.Accel != nil && p.Accel.Default > 0 {
		preset["default_acceleration"] = numArr(p.Accel.Default)
	}
	if p.Retraction != nil {
		preset["retraction_length"] = numArr(p.Retraction.Distance)
		preset["retraction_speed"] = numArr(p.Retraction.Speed)
	}
	if p.Supports != nil {
		preset["enable_support"] = strArr(boolFlag(p.Supports.EnabledDefault))
	}
	return preset
}

// orcaPresetName joins the non-empty name parts with spaces.
func orcaPresetName(parts ...string) string {
	name := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	if name == "" {
		return "Untitled"
	}
	return name
}

// orcaMaterial passes the material name through unchanged; Orca accepts
// arbitrary filament_type strings, so unknown polymers survive conversion.
func orcaMaterial(material string) string {
	if material == "" {
		return "PLA"
	}
	return material
}

// orcaPrintableArea renders the bed outline as corner coordinates.
func orcaPrintableArea(bv profile.BuildVolume) []string {
	x := dimOr(bv.X, 200)
	y := dimOr(bv.Y, 200)
	return []string{
		"0x0",
		num(x) + "x0",
		num(x) + "x" + num(y),
		"0x" + num(y),
	}
}

func dimOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func infillDensityOr(p *profile.ProcessProfile, fallback float64) float64 {
	if p.Infill != nil && p.Infill.DensityDefault > 0 {
		return p.Infill.DensityDefault
	}
	return fallback
}

// primaryInfillPattern returns the first recommended pattern, or empty when
// none are declared so the table default applies.
func primaryInfillPattern(p *profile.ProcessProfile) string {
	if p.Infill != nil && len(p.Infill.RecommendedPatterns) > 0 {
		return p.Infill.RecommendedPatterns[0]
	}
	return ""
}
