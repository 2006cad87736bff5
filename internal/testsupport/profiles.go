package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"op3d/internal/profile"
)

// FilamentJSON is a minimal valid filament document with a plausible PLA
// temperature window.
const FilamentJSON = `{
  "op3d_schema": "filament",
  "op3d_schema_version": "0.1.0",
  "id": "Prusament/PLA-Galaxy-Black",
  "brand": "Prusament",
  "name": "PLA Galaxy Black",
  "material": "PLA",
  "diameter": 1.75,
  "density": 1.24,
  "nozzle": {"min": 190, "max": 220, "recommended": 210},
  "bed": {"min": 50, "max": 60, "recommended": 55},
  "fan": {"min": 50, "max": 100}
}`

// PrinterJSON is a minimal valid printer document.
const PrinterJSON = `{
  "op3d_schema": "printer",
  "op3d_schema_version": "0.1.0",
  "id": "Prusa/MK4",
  "manufacturer": "Prusa",
  "model": "MK4",
  "build_volume": {"x": 220, "y": 220, "z": 250, "shape": "rectangular"},
  "kinematics": "cartesian",
  "extruders": [{"id": "tool0", "nozzle_diameter": 0.4, "max_temp": 290}],
  "bed": {"heated": true, "max_temp": 120},
  "firmware": {"flavor": "marlin2"}
}`

// ProcessJSON is a minimal valid process document.
const ProcessJSON = `{
  "op3d_schema": "process",
  "op3d_schema_version": "0.1.0",
  "id": "Standard/0.2mm-Quality",
  "name": "0.2mm Quality",
  "intent": "standard",
  "layer_height": {"min": 0.08, "max": 0.3, "default": 0.2},
  "wall_settings": {"wall_count": 3, "top_layers": 4, "bottom_layers": 3},
  "speed": {"outer_wall": 40, "inner_wall": 80, "infill": 100, "top_bottom": 40, "travel": 180}
}`

// WriteProfile places a profile document under the library layout
// (<root>/<kind>/<file>) and returns its path.
func WriteProfile(t testing.TB, root string, kind profile.Kind, name, content string) string {
	t.Helper()

	dir := filepath.Join(root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SeedLibrary writes one profile of each kind and returns the library root.
func SeedLibrary(t testing.TB, root string) {
	t.Helper()
	WriteProfile(t, root, profile.KindFilament, "pla-galaxy-black.json", FilamentJSON)
	WriteProfile(t, root, profile.KindPrinter, "mk4.json", PrinterJSON)
	WriteProfile(t, root, profile.KindProcess, "0.2mm-quality.json", ProcessJSON)
}
