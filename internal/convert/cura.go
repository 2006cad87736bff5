package convert

import (
	"strings"

	"op3d/internal/profile"
	"op3d/internal/textutil"
)

const curaSettingVersion = "22"

// convertCura renders a Cura 5.x sectioned cfg: [general] identity,
// [metadata] typing, and [values] with Cura's own key vocabulary.
func convertCura(doc *profile.Document) string {
	var metaType string
	var values []kv
	switch doc.Kind {
	case profile.KindFilament:
		metaType = "material"
		values = curaFilament(doc.Filament)
	case profile.KindPrinter:
		metaType = "definition_changes"
		values = curaPrinter(doc.Printer)
	case profile.KindProcess:
		metaType = "quality_changes"
		values = curaProcess(doc.Process)
	}
	if ext := doc.VendorExtensions(); ext != nil {
		values = overlayLines(values, ext.XCura, cfgOverrideValue)
	}

	var b strings.Builder
	b.WriteString("[general]\n")
	b.WriteString("version = 4\n")
	b.WriteString("name = " + textutil.EscapeNewlines(doc.DisplayName()) + "\n")
	b.WriteString("definition = fdmprinter\n")
	b.WriteString("\n[metadata]\n")
	b.WriteString("setting_version = " + curaSettingVersion + "\n")
	b.WriteString("type = " + metaType + "\n")
	b.WriteString("\n[values]\n")
	for _, line := range values {
		b.WriteString(line.key)
		b.WriteString(" = ")
		b.WriteString(line.value)
		b.WriteString("\n")
	}
	return b.String()
}

func curaFilament(p *profile.FilamentProfile) []kv {
	diameter := p.Diameter
	if diameter == 0 {
		diameter = 1.75
	}

	lines := []kv{
		{"material_print_temperature", num(recommendedOr(p.Nozzle, 200))},
		{"material_print_temperature_layer_0", num(firstLayerOr(p.Nozzle, 200))},
		{"material_bed_temperature", num(recommendedOr(p.Bed, 50))},
		{"material_bed_temperature_layer_0", num(firstLayerOr(p.Bed, 50))},
		{"material_diameter", num(diameter)},
		{"cool_fan_speed", num(maxOr(p.Fan, 100))},
		{"cool_fan_speed_min", num(minOr(p.Fan, 0))},
		{"cool_fan_speed_0", "0"},
	}
	if p.Density > 0 {
		lines = append(lines, kv{"material_density", num(p.Density)})
	}
	return lines
}

func curaPrinter(p *profile.PrinterProfile) []kv {
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
	heatedBed := p.Bed != nil && p.Bed.Heated

	lines := []kv{
		{"machine_width", num(dimOr(bv.X, 200))},
		{"machine_depth", num(dimOr(bv.Y, 200))},
		{"machine_height", num(dimOr(bv.Z, 200))},
		{"machine_nozzle_size", num(nozzle)},
		{"machine_heated_bed", pyBool(heatedBed)},
		{"machine_gcode_flavor", curaGcodeFlavor(flavor)},
	}
	if strings.EqualFold(bv.Shape, "circular") || p.Kinematics == profile.KinematicsDelta {
		lines = append(lines, kv{"machine_shape", "elliptic"})
	}
	if p.Axes != nil {
		lines = append(lines,
			kv{"machine_max_feedrate_x", num(p.Axes.X.MaxSpeed)},
			kv{"machine_max_feedrate_y", num(p.Axes.Y.MaxSpeed)},
			kv{"machine_max_feedrate_z", num(p.Axes.Z.MaxSpeed)},
			kv{"machine_max_acceleration_x", num(p.Axes.X.MaxAccel)},
			kv{"machine_max_acceleration_y", num(p.Axes.Y.MaxAccel)},
		)
	}
	return lines
}

func curaProcess(p *profile.ProcessProfile) []kv {
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
		{"layer_height_0", num(firstLayerHeight)},
		{"infill_sparse_density", num(infillDensityOr(p, 20))},
		{"infill_pattern", curaInfillPattern(primaryInfillPattern(p))},
	}
	if p.Walls != nil {
		lines = append(lines,
			kv{"wall_line_count", num(float64(p.Walls.WallCount))},
			kv{"top_layers", num(float64(p.Walls.TopLayers))},
			kv{"bottom_layers", num(float64(p.Walls.BottomLayers))},
		)
	}
	if p.Speed != nil {
		lines = append(lines,
			kv{"speed_wall_0", num(p.Speed.OuterWall)},
			kv{"speed_wall_x", num(p.Speed.InnerWall)},
			kv{"speed_infill", num(p.Speed.Infill)},
			kv{"speed_topbottom", num(p.Speed.TopBottom)},
			kv{"speed_travel", num(p.Speed.Travel)},
		)
		if p.Speed.FirstLayer > 0 {
			lines = append(lines, kv{"speed_layer_0", num(p.Speed.FirstLayer)})
		}
	}
	if p.Retraction != nil {
		lines = append(lines,
			kv{"retraction_amount", num(p.Retraction.Distance)},
			kv{"retraction_speed", num(p.Retraction.Speed)},
		)
	}
	if p.Cooling != nil {
		enabled := p.Cooling.Enabled == nil || *p.Cooling.Enabled
		lines = append(lines, kv{"cool_fan_enabled", pyBool(enabled)})
	}
	if p.Supports != nil {
		lines = append(lines, kv{"support_enable", pyBool(p.Supports.EnabledDefault)})
		if p.Supports.OverhangThreshold > 0 {
			lines = append(lines, kv{"support_angle", num(p.Supports.OverhangThreshold)})
		}
	}
	adhesion := ""
	if p.Adhesion != nil {
		adhesion = p.Adhesion.DefaultType
	}
	lines = append(lines, kv{"adhesion_type", curaAdhesionType(adhesion)})
	if p.Adhesion != nil && p.Adhesion.BrimWidth > 0 {
		lines = append(lines, kv{"brim_width", num(p.Adhesion.BrimWidth)})
	}
	return lines
}

// pyBool renders booleans the way Cura cfg values spell them.
func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
