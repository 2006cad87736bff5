package convert_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"op3d/internal/convert"
	"op3d/internal/profile"
	"op3d/internal/testsupport"
)

// withExtensions appends vendor override buckets to the filament fixture.
func withExtensions(t *testing.T, buckets string) *profile.Document {
	t.Helper()
	raw := strings.Replace(testsupport.FilamentJSON,
		`"fan": {"min": 50, "max": 100}`,
		`"fan": {"min": 50, "max": 100}, `+buckets, 1)
	return mustDecode(t, raw)
}

func mustDecode(t *testing.T, data string) *profile.Document {
	t.Helper()
	doc, err := profile.Decode([]byte(data))
	if err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	return doc
}

func requireLine(t *testing.T, output, line string) {
	t.Helper()
	if !strings.Contains(output, line+"\n") {
		t.Fatalf("expected line %q in output:\n%s", line, output)
	}
}

func TestParseFormatAcceptsAliases(t *testing.T) {
	cases := map[string]convert.Format{
		"orca":        convert.FormatOrca,
		"OrcaSlicer":  convert.FormatOrca,
		"bambu":       convert.FormatOrca,
		"prusa":       convert.FormatPrusa,
		"ini":         convert.FormatPrusa,
		"superslicer": convert.FormatPrusa,
		"cfg":         convert.FormatCura,
		"yml":         convert.FormatYAML,
		"json":        convert.FormatJSON,
	}
	for input, want := range cases {
		got, err := convert.ParseFormat(input)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", input, got, want)
		}
	}

	if _, err := convert.ParseFormat("slic3r"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConvertFilamentToPrusa(t *testing.T) {
	doc := mustDecode(t, testsupport.FilamentJSON)

	out, err := convert.Convert(doc, convert.FormatPrusa)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if !strings.HasPrefix(out, "[filament:PLA Galaxy Black]\n") {
		t.Fatalf("unexpected section header:\n%s", out)
	}
	requireLine(t, out, "filament_type = PLA")
	requireLine(t, out, "filament_diameter = 1.75")
	requireLine(t, out, "temperature = 210")
	requireLine(t, out, "first_layer_temperature = 215")
	requireLine(t, out, "bed_temperature = 55")
	requireLine(t, out, "first_layer_bed_temperature = 60")
	requireLine(t, out, "min_fan_speed = 50")
	requireLine(t, out, "max_fan_speed = 100")
	requireLine(t, out, "filament_vendor = Prusament")
}

func TestConvertFilamentToOrca(t *testing.T) {
	doc := mustDecode(t, testsupport.FilamentJSON)

	out, err := convert.Convert(doc, convert.FormatOrca)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var preset map[string]any
	if err := json.Unmarshal([]byte(out), &preset); err != nil {
		t.Fatalf("orca output is not valid JSON: %v\n%s", err, out)
	}
	if preset["type"] != "filament" {
		t.Fatalf("unexpected type: %v", preset["type"])
	}
	if preset["inherits"] != "fdm_filament_pla" {
		t.Fatalf("unexpected parent preset: %v", preset["inherits"])
	}
	if got := preset["nozzle_temperature"]; !equalStrArr(got, "210") {
		t.Fatalf("unexpected nozzle_temperature: %v", got)
	}
	if got := preset["nozzle_temperature_initial_layer"]; !equalStrArr(got, "215") {
		t.Fatalf("unexpected initial layer temperature: %v", got)
	}
	if got := preset["hot_plate_temp"]; !equalStrArr(got, "55") {
		t.Fatalf("unexpected hot_plate_temp: %v", got)
	}
}

func TestConvertUnknownMaterialPassesThrough(t *testing.T) {
	raw := strings.Replace(testsupport.FilamentJSON, `"material": "PLA"`, `"material": "UnknownPolymerX"`, 1)
	doc := mustDecode(t, raw)

	out, err := convert.Convert(doc, convert.FormatOrca)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var preset map[string]any
	if err := json.Unmarshal([]byte(out), &preset); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := preset["filament_type"]; !equalStrArr(got, "UnknownPolymerX") {
		t.Fatalf("material should pass through unchanged, got %v", got)
	}
	if preset["inherits"] != "fdm_filament_common" {
		t.Fatalf("unknown material should inherit the common parent, got %v", preset["inherits"])
	}

	ini, err := convert.Convert(doc, convert.FormatPrusa)
	if err != nil {
		t.Fatalf("Convert to prusa: %v", err)
	}
	requireLine(t, ini, "filament_type = UnknownPolymerX")
}

func TestConvertPrinterToCura(t *testing.T) {
	doc := mustDecode(t, testsupport.PrinterJSON)

	out, err := convert.Convert(doc, convert.FormatCura)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if !strings.HasPrefix(out, "[general]\n") {
		t.Fatalf("missing [general] section:\n%s", out)
	}
	requireLine(t, out, "name = Prusa MK4")
	requireLine(t, out, "type = definition_changes")
	requireLine(t, out, "machine_width = 220")
	requireLine(t, out, "machine_depth = 220")
	requireLine(t, out, "machine_height = 250")
	requireLine(t, out, "machine_nozzle_size = 0.4")
	requireLine(t, out, "machine_heated_bed = True")
	requireLine(t, out, "machine_gcode_flavor = Marlin")
}

func TestConvertPrinterToPrusa(t *testing.T) {
	doc := mustDecode(t, testsupport.PrinterJSON)

	out, err := convert.Convert(doc, convert.FormatPrusa)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	requireLine(t, out, "printer_model = MK4")
	requireLine(t, out, "printer_vendor = Prusa")
	requireLine(t, out, "bed_shape = 0x0,220x0,220x220,0x220")
	requireLine(t, out, "max_print_height = 250")
	requireLine(t, out, "gcode_flavor = marlin2")
}

func TestConvertProcessDefaultsMissingInfill(t *testing.T) {
	doc := mustDecode(t, testsupport.ProcessJSON)

	prusa, err := convert.Convert(doc, convert.FormatPrusa)
	if err != nil {
		t.Fatalf("Convert to prusa: %v", err)
	}
	requireLine(t, prusa, "fill_density = 20%")
	requireLine(t, prusa, "fill_pattern = grid")
	requireLine(t, prusa, "layer_height = 0.2")
	requireLine(t, prusa, "perimeters = 3")

	cura, err := convert.Convert(doc, convert.FormatCura)
	if err != nil {
		t.Fatalf("Convert to cura: %v", err)
	}
	requireLine(t, cura, "infill_sparse_density = 20")
	requireLine(t, cura, "infill_pattern = grid")
	requireLine(t, cura, "adhesion_type = skirt")
}

func TestConvertCuraPrefersVendorBucket(t *testing.T) {
	doc := withExtensions(t, `"x_cura": {"material_print_temperature": "999", "material_flow": 95}`)

	out, err := convert.Convert(doc, convert.FormatCura)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	requireLine(t, out, "material_print_temperature = 999")
	if strings.Contains(out, "material_print_temperature = 210") {
		t.Fatalf("generated value should be replaced by the x_cura override:\n%s", out)
	}
	requireLine(t, out, "material_flow = 95")
}

func TestConvertPrusaPrefersVendorBucket(t *testing.T) {
	doc := withExtensions(t, `"x_prusaslicer": {"temperature": 225, "filament_retract_length": "0.8", "filament_soluble": false}`)

	out, err := convert.Convert(doc, convert.FormatPrusa)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	requireLine(t, out, "temperature = 225")
	if strings.Contains(out, "temperature = 210\n") {
		t.Fatalf("generated value should be replaced by the x_prusaslicer override:\n%s", out)
	}
	requireLine(t, out, "filament_retract_length = 0.8")
	requireLine(t, out, "filament_soluble = 0")
	// Bucket entries without a generated counterpart land after it, sorted.
	if strings.Index(out, "filament_retract_length") > strings.Index(out, "filament_soluble") {
		t.Fatalf("appended overrides should be in sorted key order:\n%s", out)
	}
}

func TestConvertOrcaPrefersVendorBucket(t *testing.T) {
	doc := withExtensions(t, `"x_orca": {"nozzle_temperature": 230, "activate_air_filtration": true}`)

	out, err := convert.Convert(doc, convert.FormatOrca)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var preset map[string]any
	if err := json.Unmarshal([]byte(out), &preset); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := preset["nozzle_temperature"]; !equalStrArr(got, "230") {
		t.Fatalf("x_orca override should replace the generated value, got %v", got)
	}
	if got := preset["activate_air_filtration"]; !equalStrArr(got, "1") {
		t.Fatalf("scalar overrides should be wrapped in string arrays, got %v", got)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	doc := mustDecode(t, testsupport.FilamentJSON)
	for _, format := range convert.Formats() {
		first, err := convert.Convert(doc, format)
		if err != nil {
			t.Fatalf("Convert(%s): %v", format, err)
		}
		second, err := convert.Convert(doc, format)
		if err != nil {
			t.Fatalf("Convert(%s): %v", format, err)
		}
		if first != second {
			t.Fatalf("%s output differs between runs", format)
		}
	}
}

func TestConvertJSONRoundTrips(t *testing.T) {
	doc := mustDecode(t, testsupport.FilamentJSON)

	out, err := convert.Convert(doc, convert.FormatJSON)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	again, err := profile.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode dumped JSON: %v", err)
	}
	if again.ID() != doc.ID() {
		t.Fatalf("round trip changed id: %q != %q", again.ID(), doc.ID())
	}
	if again.Filament.Nozzle.Recommended == nil || *again.Filament.Nozzle.Recommended != 210 {
		t.Fatal("round trip lost recommended nozzle temperature")
	}
}

func TestConvertYAMLRoundTrips(t *testing.T) {
	doc := withExtensions(t, `"x_cura": {"material_flow": "95"}`)

	out, err := convert.Convert(doc, convert.FormatYAML)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var again profile.FilamentProfile
	if err := yaml.Unmarshal([]byte(out), &again); err != nil {
		t.Fatalf("decode dumped YAML: %v", err)
	}
	if !reflect.DeepEqual(&again, doc.Filament) {
		t.Fatalf("round trip changed profile:\nbefore: %+v\nafter:  %+v", doc.Filament, &again)
	}
}

func TestConvertYAML(t *testing.T) {
	doc := mustDecode(t, testsupport.PrinterJSON)

	out, err := convert.Convert(doc, convert.FormatYAML)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "op3d_schema: printer") {
		t.Fatalf("missing schema field in YAML:\n%s", out)
	}
	if !strings.Contains(out, "manufacturer: Prusa") {
		t.Fatalf("missing manufacturer in YAML:\n%s", out)
	}
}

func TestFileName(t *testing.T) {
	doc := mustDecode(t, testsupport.FilamentJSON)

	got := convert.FileName(doc, convert.FormatOrca)
	want := "filament-Prusament-PLA-Galaxy-Black.json"
	if got != want {
		t.Fatalf("FileName = %q, want %q", got, want)
	}

	if got := convert.FileName(doc, convert.FormatPrusa); !strings.HasSuffix(got, ".ini") {
		t.Fatalf("unexpected prusa file name %q", got)
	}
}

func equalStrArr(v any, want string) bool {
	arr, ok := v.([]any)
	if !ok || len(arr) != 1 {
		return false
	}
	s, ok := arr[0].(string)
	return ok && s == want
}
