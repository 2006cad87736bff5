package convert

import (
	"strings"

	"op3d/internal/profile"
	"op3d/internal/textutil"
)

// kv is one ordered key/value line in an INI section.
type kv struct {
	key   string
	value string
}

// convertPrusa renders a PrusaSlicer/SuperSlicer config bundle section.
// Lines are emitted in a fixed order so identical input yields byte-identical
// output; newlines in free text are escaped to a literal backslash-n.
func convertPrusa(doc *profile.Document) string {
	var section string
	var lines []kv
	switch doc.Kind {
	case profile.KindFilament:
		section = "filament"
		lines = prusaFilament(doc.Filament)
	case profile.KindPrinter:
		section = "printer"
		lines = prusaPrinter(doc.Printer)
	case profile.KindProcess:
		section = "print"
		lines = prusaProcess(doc.Process)
	}
	if ext := doc.VendorExtensions(); ext != nil {
		lines = overlayLines(lines, ext.XPrusaSlicer, iniOverrideValue)
	}

	var b strings.Builder
	b.WriteString("[" + section + ":" + prusaSectionName(doc) + "]\n")
	for _, line := range lines {
		b.WriteString(line.key)
		b.WriteString(" = ")
		b.WriteString(line.value)
		b.WriteString("\n")
	}
	return b.String()
}

func prusaSectionName(doc *profile.Document) string {
	name := strings.TrimSpace(doc.DisplayName())
	if name == "" {
		name = "Untitled"
	}
	return textutil.EscapeNewlines(name)
}

func prusaFilament(p *profile.FilamentProfile) []kv {
	material := p.Material
	if material == "" {
		material = "PLA"
	}
	diameter := p.Diameter
	if diameter == 0 {
		diameter = 1.75
	}

	lines := []kv{
		{"filament_type", material},
		{"filament_diameter", num(diameter)},
		{"temperature", num(recommendedOr(p.Nozzle, 200))},
		{"first_layer_temperature", num(firstLayerOr(p.Nozzle, 200))},
		{"bed_temperature", num(recommendedOr(p.Bed, 50))},
		{"first_layer_bed_temperature", num(firstLayerOr(p.Bed, 50))},
		{"min_fan_speed", num(minOr(p.Fan, 0))},
		{"max_fan_speed", num(maxOr(p.Fan, 100))},
	}
	if p.Brand != "" {
		lines = append(lines, kv{"filament_vendor", p.Brand})
	}
	if p.Color != "" {
		lines = append(lines, kv{"filament_colour", p.Color})
	}
	if p.Density > 0 {
		lines = append(lines, kv{"filament_density", num(p.Density)})
	}
	if p.Cost > 0 {
		lines = append(lines, kv{"filament_cost", num(p.Cost)})
	}
	if p.VolumetricSpeed > 0 {
		lines = append(lines, kv{"filament_max_volumetric_speed", num(p.VolumetricSpeed)})
	}
	if p.Notes != "" {
		lines = append(lines, kv{"filament_notes", textutil.EscapeNewlines(p.Notes)})
	}
	return lines
}

func prusaPrinter(p *profile.PrinterProfile) []kv {
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

	lines := []kv{
		{"printer_model", p.Model},
		{"printer_variant", variantOr(p.Variant)},
		{"printer_vendor", manufacturerOr(p.Manufacturer)},
		{"bed_shape", prusaBedShape(bv)},
		{"max_print_height", num(dimOr(bv.Z, 200))},
		{"nozzle_diameter", num(nozzle)},
		{"gcode_flavor", prusaGcodeFlavor(flavor)},
	}
	if p.Axes != nil {
		lines = append(lines,
			kv{"machine_max_feedrate_x", num(p.Axes.X.MaxSpeed)},
			kv{"machine_max_feedrate_y", num(p.Axes.Y.MaxSpeed)},
			kv{"machine_max_feedrate_z", num(p.Axes.Z.MaxSpeed)},
			kv{"machine_max_acceleration_x", num(p.Axes.X.MaxAccel)},
			kv{"machine_max_acceleration_y", num(p.Axes.Y.MaxAccel)},
			kv{"machine_max_acceleration_z", num(p.Axes.Z.MaxAccel)},
		)
	}
	if p.Notes != "" {
		lines = append(lines, kv{"printer_notes", textutil.EscapeNewlines(p.Notes)})
	}
	return lines
}

func prusaProcess(p *profile.ProcessProfile) []kv {
	layerHeight := p.LayerHeight.Default
	if layerHeight == 0 {
		layerHeight = 0.2
	}
	firstLayerHeight := layerHeight
	if p.LayerHeight.FirstLayer != nil {
		firstLayerHeight = *p.LayerHeight.FirstLayer
	}

	lines := []kv{
		{"layer_height", num(layerHeight)},
		{"first_layer_height", num(firstLayerHeight)},
		{"fill_density", num(infillDensityOr(p, 20)) + "%"},
		{"fill_pattern", prusaInfillPattern(primaryInfillPattern(p))},
	}
	if p.Walls != nil {
		lines = append(lines,
			kv{"perimeters", num(float64(p.Walls.WallCount))},
			kv{"top_solid_layers", num(float64(p.Walls.TopLayers))},
			kv{"bottom_solid_layers", num(float64(p.Walls.BottomLayers))},
		)
	}
	if p.Speed != nil {
		lines = append(lines,
			kv{"perimeter_speed", num(p.Speed.InnerWall)},
			kv{"external_perimeter_speed", num(p.Speed.OuterWall)},
			kv{"infill_speed", num(p.Speed.Infill)},
			kv{"top_solid_infill_speed", num(p.Speed.TopBottom)},
			kv{"travel_speed", num(p.Speed.Travel)},
		)
		if p.Speed.FirstLayer > 0 {
			lines = append(lines, kv{"first_layer_speed", num(p.Speed.FirstLayer)})
		}
		if p.Speed.Bridge > 0 {
			lines = append(lines, kv{"bridge_speed", num(p.Speed.Bridge)})
		}
	}
	if p.Retraction != nil {
		lines = append(lines,
			kv{"retract_length", num(p.Retraction.Distance)},
			kv{"retract_speed", num(p.Retraction.Speed)},
		)
		if p.Retraction.MinTravel > 0 {
			lines = append(lines, kv{"retract_before_travel", num(p.Retraction.MinTravel)})
		}
	}
	if p.Cooling != nil {
		lines = append(lines,
			kv{"min_fan_speed", num(p.Cooling.FanMin)},
			kv{"max_fan_speed", num(fanMaxOr(p.Cooling, 100))},
		)
		if p.Cooling.FanMinLayerTime > 0 {
			lines = append(lines, kv{"fan_below_layer_time", num(float64(p.Cooling.FanMinLayerTime))})
		}
	}
	if p.Supports != nil {
		lines = append(lines, kv{"support_material", boolFlag(p.Supports.EnabledDefault)})
		if p.Supports.OverhangThreshold > 0 {
			lines = append(lines, kv{"support_material_threshold", num(p.Supports.OverhangThreshold)})
		}
	}
	lines = append(lines, prusaAdhesion(p.Adhesion)...)
	if p.Notes != "" {
		lines = append(lines, kv{"notes", textutil.EscapeNewlines(p.Notes)})
	}
	return lines
}

// prusaAdhesion expresses the neutral adhesion choice through PrusaSlicer's
// three separate knobs. The selected type gets its knob; the others stay at
// zero so the slicer disables them.
func prusaAdhesion(a *profile.Adhesion) []kv {
	adhesionType := defaultAdhesionType
	if a != nil && a.DefaultType != "" {
		adhesionType = strings.ToLower(a.DefaultType)
	}

	skirts, brim, raft := 0.0, 0.0, 0.0
	switch adhesionType {
	case "brim":
		brim = 5
		if a != nil && a.BrimWidth > 0 {
			brim = a.BrimWidth
		}
	case "raft":
		raft = 3
		if a != nil && a.RaftLayers > 0 {
			raft = float64(a.RaftLayers)
		}
	case "none":
	default: // skirt
		skirts = 1
		if a != nil && a.SkirtCount > 0 {
			skirts = float64(a.SkirtCount)
		}
	}
	return []kv{
		{"skirts", num(skirts)},
		{"brim_width", num(brim)},
		{"raft_layers", num(raft)},
	}
}

// prusaBedShape renders the bed outline as the four-corner list PrusaSlicer
// expects for rectangular beds. Non-rectangular shapes keep the bounding box.
func prusaBedShape(bv profile.BuildVolume) string {
	x := dimOr(bv.X, 200)
	y := dimOr(bv.Y, 200)
	return "0x0," + num(x) + "x0," + num(x) + "x" + num(y) + ",0x" + num(y)
}

func variantOr(variant string) string {
	if variant == "" {
		return "Stock"
	}
	return variant
}

func manufacturerOr(manufacturer string) string {
	if manufacturer == "" {
		return "Unknown"
	}
	return manufacturer
}

func fanMaxOr(c *profile.Cooling, fallback float64) float64 {
	if c.FanMax > 0 {
		return c.FanMax
	}
	if c.FanDefault > 0 {
		return c.FanDefault
	}
	return fallback
}
