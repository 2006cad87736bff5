package importer

import (
	"strconv"
	"strings"

	"op3d/internal/profile"
)

var processKeys = map[string]bool{
	"layer_height":                true,
	"first_layer_height":          true,
	"perimeters":                  true,
	"top_solid_layers":            true,
	"bottom_solid_layers":         true,
	"fill_density":                true,
	"fill_pattern":                true,
	"perimeter_speed":             true,
	"external_perimeter_speed":    true,
	"infill_speed":                true,
	"solid_infill_speed":          true,
	"top_solid_infill_speed":      true,
	"travel_speed":                true,
	"first_layer_speed":           true,
	"bridge_speed":                true,
	"retract_length":              true,
	"retract_speed":               true,
	"retract_before_travel":       true,
	"cooling":                     true,
	"fan_below_layer_time":        true,
	"slow_down_layer_time":        true,
	"min_fan_speed":               true,
	"max_fan_speed":               true,
	"bridge_fan_speed":            true,
	"support_material":            true,
	"support_material_angle":      true,
	"support_material_threshold":  true,
	"support_material_pattern":    true,
	"raft_layers":                 true,
	"brim_width":                  true,
	"skirts":                      true,
	"skirt_distance":              true,
	"notes":                       true,
}

func importProcess(section *iniSection, opts Options) *profile.Document {
	p := &profile.ProcessProfile{
		Meta: profile.Meta{
			Schema:        string(profile.KindProcess),
			SchemaVersion: schemaVersion,
			Maintainer:    maintainerFor(opts),
		},
		Name:   "Imported Profile",
		Intent: "standard",
		LayerHeight: profile.LayerHeight{
			Min:     0.05,
			Max:     0.4,
			Default: 0.2,
		},
		Walls: &profile.Walls{WallCount: 2, TopLayers: 3, BottomLayers: 3},
		Infill: &profile.Infill{
			DensityDefault:      20,
			DensityRange:        &profile.Range{Min: 0, Max: 100},
			RecommendedPatterns: []string{"gyroid", "grid", "cubic"},
		},
		Speed: &profile.SpeedSet{
			OuterWall: 30,
			InnerWall: 60,
			Infill:    60,
			TopBottom: 30,
			Travel:    150,
		},
		Accel:      &profile.AccelSet{Default: 3000, OuterWall: 1000, Infill: 3000},
		Retraction: &profile.Retraction{Distance: 0.8, Speed: 35},
		Cooling:    &profile.Cooling{FanDefault: 100, FanMinLayerTime: 10},
		Supports:   &profile.Supports{OverhangThreshold: 45},
		Adhesion:   &profile.Adhesion{DefaultType: "skirt"},
		QualityBias: &profile.QualityBias{
			Priority: "balanced",
		},
	}

	// The working layer height anchors a plausible min/max window within
	// common FDM bounds.
	if v, ok := section.get("layer_height"); ok {
		if h, valid := parseFloatValue(v); valid {
			p.LayerHeight.Default = h
			p.LayerHeight.Min = clamp(h*0.25, 0.05, 0.4)
			p.LayerHeight.Max = clamp(h*2, 0.05, 0.4)
		}
	}
	if v, ok := section.get("first_layer_height"); ok {
		if h, valid := parseFloatValue(v); valid {
			p.LayerHeight.FirstLayer = floatPtr(h)
		}
	}

	if v, ok := section.get("perimeters"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Walls.WallCount = n
		}
	}
	if v, ok := section.get("top_solid_layers"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Walls.TopLayers = n
		}
	}
	if v, ok := section.get("bottom_solid_layers"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Walls.BottomLayers = n
		}
	}

	if v, ok := section.get("fill_density"); ok {
		if density, valid := parsePercent(v); valid {
			p.Infill.DensityDefault = density
		}
	}
	if v, ok := section.get("fill_pattern"); ok && strings.TrimSpace(v) != "" {
		p.Infill.RecommendedPatterns = []string{strings.ToLower(strings.TrimSpace(v))}
	}

	// PrusaSlicer's perimeter_speed governs inner walls; the outer wall has
	// its own external_perimeter_speed key.
	if v, ok := section.get("perimeter_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.InnerWall = f
		}
	}
	if v, ok := section.get("external_perimeter_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.OuterWall = f
		}
	}
	if v, ok := section.get("infill_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.Infill = f
		}
	}
	if v, ok := section.get("solid_infill_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.SolidInfill = f
		}
	}
	if v, ok := section.get("top_solid_infill_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.TopBottom = f
		}
	}
	if v, ok := section.get("travel_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.Travel = f
		}
	}
	if v, ok := section.get("first_layer_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.FirstLayer = f
		}
	}
	if v, ok := section.get("bridge_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Speed.Bridge = f
		}
	}

	if v, ok := section.get("retract_length"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Retraction.Distance = f
		}
	}
	if v, ok := section.get("retract_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Retraction.Speed = f
		}
	}
	if v, ok := section.get("retract_before_travel"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Retraction.MinTravel = f
		}
	}

	if v, ok := section.get("cooling"); ok {
		p.Cooling.Enabled = boolPtr(parseBoolValue(v))
	}
	if v, ok := section.get("fan_below_layer_time"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Cooling.FanMinLayerTime = n
		}
	}
	if v, ok := section.get("slow_down_layer_time"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Cooling.SlowDownLayerTime = n
		}
	}
	if v, ok := section.get("min_fan_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Cooling.FanMin = f
		}
	}
	if v, ok := section.get("max_fan_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Cooling.FanMax = f
		}
	}
	if v, ok := section.get("bridge_fan_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Cooling.FanBridge = f
		}
	}

	if v, ok := section.get("support_material"); ok {
		p.Supports.EnabledDefault = parseBoolValue(v)
	}
	if v, ok := section.get("support_material_angle"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Supports.Angle = f
		}
	}
	if v, ok := section.get("support_material_threshold"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Supports.OverhangThreshold = f
		}
	}
	if v, ok := section.get("support_material_pattern"); ok {
		p.Supports.Pattern = strings.TrimSpace(v)
	}

	if v, ok := section.get("raft_layers"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Adhesion.RaftLayers = n
		}
	}
	if v, ok := section.get("brim_width"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Adhesion.BrimWidth = f
		}
	}
	if v, ok := section.get("skirts"); ok {
		if n, valid := parseIntValue(v); valid {
			p.Adhesion.SkirtCount = n
		}
	}
	if v, ok := section.get("skirt_distance"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Adhesion.SkirtDistance = f
		}
	}
	if v, ok := section.get("notes"); ok {
		p.Notes = v
	}

	if section.label != "" {
		p.Name = section.label
	} else if stem := fallbackName(opts, ""); stem != "" {
		p.Name = stem
	}

	p.Intent = intentForLayerHeight(p.LayerHeight.Default)
	p.ID = makeID("Standard", formatLayerHeight(p.LayerHeight.Default)+"mm-"+p.Name)
	p.XPrusaSlicer = extensionBucket(section, processKeys)

	return &profile.Document{Kind: profile.KindProcess, Process: p}
}

// intentForLayerHeight buckets a layer height into the neutral intent
// enumeration.
func intentForLayerHeight(h float64) string {
	switch {
	case h <= 0.1:
		return "high_detail"
	case h <= 0.15:
		return "quality"
	case h <= 0.25:
		return "standard"
	default:
		return "draft"
	}
}

func formatLayerHeight(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
