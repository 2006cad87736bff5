package importer

import (
	"strings"

	"op3d/internal/profile"
)

// materialNames maps PrusaSlicer filament_type spellings to the neutral
// material enumeration. Unlisted materials keep their uppercased name.
var materialNames = map[string]string{
	"pla":   "PLA",
	"pet":   "PETG",
	"petg":  "PETG",
	"abs":   "ABS",
	"asa":   "ASA",
	"tpu":   "TPU",
	"tpe":   "TPE",
	"pa":    "PA6",
	"nylon": "PA6",
	"pc":    "PC",
	"pp":    "PP",
	"pva":   "PVA",
	"hips":  "HIPS",
	"pvb":   "PVB",
}

func normalizeMaterial(material string) string {
	if strings.TrimSpace(material) == "" {
		return "PLA"
	}
	key := strings.ToLower(material)
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if normalized, ok := materialNames[key]; ok {
		return normalized
	}
	return strings.ToUpper(material)
}

var filamentKeys = map[string]bool{
	"filament_type":                 true,
	"filament_vendor":               true,
	"filament_name":                 true,
	"filament_colour":               true,
	"filament_diameter":             true,
	"filament_density":              true,
	"temperature":                   true,
	"first_layer_temperature":       true,
	"bed_temperature":               true,
	"first_layer_bed_temperature":   true,
	"fan_min_speed":                 true,
	"fan_max_speed":                 true,
	"min_print_speed":               true,
	"max_print_speed":               true,
	"filament_max_volumetric_speed": true,
	"filament_notes":                true,
	"filament_cost":                 true,
	"filament_spool_weight":         true,
}

func importFilament(section *iniSection, opts Options) *profile.Document {
	p := &profile.FilamentProfile{
		Meta: profile.Meta{
			Schema:        string(profile.KindFilament),
			SchemaVersion: schemaVersion,
			Maintainer:    maintainerFor(opts),
		},
		Brand:           "Unknown",
		Name:            "Unknown",
		Material:        "PLA",
		Diameter:        1.75,
		Nozzle:          profile.TempRange{Min: 180, Max: 250, Recommended: floatPtr(200)},
		Bed:             profile.TempRange{Min: 0, Max: 100, Recommended: floatPtr(50)},
		Fan:             profile.TempRange{Min: 0, Max: 100, Recommended: floatPtr(100)},
		VolumetricSpeed: 8,
	}

	if v, ok := section.get("filament_type"); ok {
		p.Material = normalizeMaterial(v)
	}
	if v, ok := section.get("filament_vendor"); ok && strings.TrimSpace(v) != "" {
		p.Brand = strings.TrimSpace(v)
	}
	if v, ok := section.get("filament_colour"); ok {
		p.Color = strings.TrimSpace(v)
	}
	if v, ok := section.get("filament_diameter"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Diameter = f
		}
	}
	if v, ok := section.get("filament_density"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Density = f
		}
	}

	// A working temperature implies a plausible window around it; the
	// window is clamped to sane FDM limits.
	if v, ok := section.get("temperature"); ok {
		if t, valid := parseFloatValue(v); valid {
			p.Nozzle.Recommended = floatPtr(t)
			p.Nozzle.Min = clamp(t-20, 150, 300)
			p.Nozzle.Max = clamp(t+20, 150, 300)
		}
	}
	if v, ok := section.get("first_layer_temperature"); ok {
		if t, valid := parseFloatValue(v); valid {
			p.Nozzle.FirstLayer = floatPtr(t)
		}
	}
	if v, ok := section.get("bed_temperature"); ok {
		if t, valid := parseFloatValue(v); valid {
			p.Bed.Recommended = floatPtr(t)
			p.Bed.Min = clamp(t-10, 0, 150)
			p.Bed.Max = clamp(t+10, 0, 150)
		}
	}
	if v, ok := section.get("first_layer_bed_temperature"); ok {
		if t, valid := parseFloatValue(v); valid {
			p.Bed.FirstLayer = floatPtr(t)
		}
	}
	if v, ok := section.get("fan_min_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Fan.Min = f
		}
	}
	if v, ok := section.get("fan_max_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Fan.Max = f
			p.Fan.Recommended = floatPtr(f)
		}
	}

	if v, ok := section.get("min_print_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			if p.PrintingSpeed == nil {
				p.PrintingSpeed = &profile.Range{}
			}
			p.PrintingSpeed.Min = f
		}
	}
	if v, ok := section.get("max_print_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			if p.PrintingSpeed == nil {
				p.PrintingSpeed = &profile.Range{}
			}
			p.PrintingSpeed.Max = f
		}
	}
	if v, ok := section.get("filament_max_volumetric_speed"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.VolumetricSpeed = f
		}
	}
	if v, ok := section.get("filament_cost"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.Cost = f
		}
	}
	if v, ok := section.get("filament_spool_weight"); ok {
		if f, valid := parseFloatValue(v); valid {
			p.SpoolWeight = f
		}
	}
	if v, ok := section.get("filament_notes"); ok {
		p.Notes = v
	}

	// Preset name: explicit key, then section label, then the file stem.
	if v, ok := section.get("filament_name"); ok && strings.TrimSpace(v) != "" {
		p.Name = strings.TrimSpace(v)
	} else if section.label != "" {
		p.Name = section.label
	} else {
		p.Name = fallbackName(opts, p.Material)
	}

	p.ID = makeID(p.Brand, p.Name)
	p.XPrusaSlicer = extensionBucket(section, filamentKeys)

	return &profile.Document{Kind: profile.KindFilament, Filament: p}
}
