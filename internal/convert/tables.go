package convert

import "strings"

// Lookup tables translating the neutral vocabulary into each slicer's
// dialect. Each table is total over its closed input set plus an explicit
// default; unknown values either pass through unchanged (Orca material names)
// or take the named safe default.

const (
	defaultOrcaFilamentParent = "fdm_filament_common"
	defaultOrcaMachineParent  = "fdm_machine_common"
	defaultOrcaProcessParent  = "fdm_process_common"

	defaultNeutralGcodeFlavor = "marlin2"
	defaultCuraGcodeFlavor    = "Marlin"
	defaultInfillPattern      = "grid"
	defaultAdhesionType       = "skirt"
)

// orcaFilamentParents maps material names to the OrcaSlicer system preset a
// user filament inherits from.
var orcaFilamentParents = map[string]string{
	"pla":  "fdm_filament_pla",
	"petg": "fdm_filament_pet",
	"pet":  "fdm_filament_pet",
	"abs":  "fdm_filament_abs",
	"asa":  "fdm_filament_asa",
	"tpu":  "fdm_filament_tpu",
	"tpe":  "fdm_filament_tpu",
	"pc":   "fdm_filament_pc",
	"pa":   "fdm_filament_pa",
	"pa6":  "fdm_filament_pa",
	"pa12": "fdm_filament_pa",
	"pva":  "fdm_filament_pva",
	"hips": "fdm_filament_hips",
}

func orcaFilamentParent(material string) string {
	if parent, ok := orcaFilamentParents[strings.ToLower(strings.TrimSpace(material))]; ok {
		return parent
	}
	return defaultOrcaFilamentParent
}

// prusaGcodeFlavors maps neutral firmware flavors to PrusaSlicer gcode_flavor
// values.
var prusaGcodeFlavors = map[string]string{
	"marlin":   "marlin",
	"marlin2":  "marlin2",
	"klipper":  "klipper",
	"reprap":   "reprapfirmware",
	"reprapfw": "reprapfirmware",
	"smoothie": "smoothie",
	"sailfish": "sailfish",
}

func prusaGcodeFlavor(flavor string) string {
	if mapped, ok := prusaGcodeFlavors[strings.ToLower(strings.TrimSpace(flavor))]; ok {
		return mapped
	}
	return defaultNeutralGcodeFlavor
}

// orcaGcodeFlavors maps neutral firmware flavors to OrcaSlicer gcode_flavor
// values.
var orcaGcodeFlavors = map[string]string{
	"marlin":   "marlin",
	"marlin2":  "marlin2",
	"klipper":  "klipper",
	"reprap":   "reprapfirmware",
	"reprapfw": "reprapfirmware",
}

func orcaGcodeFlavor(flavor string) string {
	if mapped, ok := orcaGcodeFlavors[strings.ToLower(strings.TrimSpace(flavor))]; ok {
		return mapped
	}
	return defaultNeutralGcodeFlavor
}

// curaGcodeFlavors maps neutral firmware flavors to Cura machine_gcode_flavor
// values.
var curaGcodeFlavors = map[string]string{
	"marlin":   "Marlin",
	"marlin2":  "Marlin",
	"klipper":  "Marlin",
	"reprap":   "RepRap (RepRap)",
	"reprapfw": "RepRap (RepRap)",
	"griffin":  "Griffin",
	"makerbot": "Makerbot",
}

func curaGcodeFlavor(flavor string) string {
	if mapped, ok := curaGcodeFlavors[strings.ToLower(strings.TrimSpace(flavor))]; ok {
		return mapped
	}
	return defaultCuraGcodeFlavor
}

// prusaInfillPatterns maps neutral infill pattern names to PrusaSlicer
// fill_pattern values.
var prusaInfillPatterns = map[string]string{
	"grid":        "grid",
	"gyroid":      "gyroid",
	"cubic":       "cubic",
	"triangles":   "triangles",
	"honeycomb":   "honeycomb",
	"lines":       "alignedrectilinear",
	"rectilinear": "rectilinear",
	"concentric":  "concentric",
	"lightning":   "lightning",
}

func prusaInfillPattern(pattern string) string {
	if mapped, ok := prusaInfillPatterns[strings.ToLower(strings.TrimSpace(pattern))]; ok {
		return mapped
	}
	return defaultInfillPattern
}

// orcaInfillPatterns maps neutral infill pattern names to OrcaSlicer
// sparse_infill_pattern values.
var orcaInfillPatterns = map[string]string{
	"grid":        "grid",
	"gyroid":      "gyroid",
	"cubic":       "cubic",
	"triangles":   "triangles",
	"honeycomb":   "honeycomb",
	"lines":       "zig-zag",
	"rectilinear": "zig-zag",
	"concentric":  "concentric",
	"lightning":   "lightning",
}

func orcaInfillPattern(pattern string) string {
	if mapped, ok := orcaInfillPatterns[strings.ToLower(strings.TrimSpace(pattern))]; ok {
		return mapped
	}
	return defaultInfillPattern
}

// curaInfillPatterns maps neutral infill pattern names to Cura infill_pattern
// values.
var curaInfillPatterns = map[string]string{
	"grid":        "grid",
	"gyroid":      "gyroid",
	"cubic":       "cubic",
	"triangles":   "triangles",
	"honeycomb":   "tri_hexagon",
	"lines":       "lines",
	"rectilinear": "lines",
	"concentric":  "concentric",
	"lightning":   "lightning",
}

func curaInfillPattern(pattern string) string {
	if mapped, ok := curaInfillPatterns[strings.ToLower(strings.TrimSpace(pattern))]; ok {
		return mapped
	}
	return defaultInfillPattern
}

// curaAdhesionTypes maps neutral adhesion types to Cura adhesion_type values.
var curaAdhesionTypes = map[string]string{
	"skirt": "skirt",
	"brim":  "brim",
	"raft":  "raft",
	"none":  "none",
}

func curaAdhesionType(adhesion string) string {
	if mapped, ok := curaAdhesionTypes[strings.ToLower(strings.TrimSpace(adhesion))]; ok {
		return mapped
	}
	return defaultAdhesionType
}
