package importer_test

import (
	"errors"
	"testing"

	"op3d/internal/importer"
	"op3d/internal/profile"
)

const sampleBundle = `# generated by PrusaSlicer
[printer:Original Prusa MK4]
printer_model = MK4
printer_make = Prusa Research
bed_shape = 0x0,250x0,250x210,0x210
max_print_height = 220
nozzle_diameter = 0.4
machine_max_speed_x = 200
machine_max_acceleration_x = 4000
printer_notes = CoreXY conversion notes do not apply here

[filament:Prusament PLA]
filament_type = PLA
filament_vendor = Prusament
temperature = 215
first_layer_temperature = 220
bed_temperature = 60
fan_max_speed = 90
filament_diameter = 1.75
filament_retract_length = 1.2

[print:0.15mm QUALITY]
layer_height = 0.15
first_layer_height = 0.2
perimeters = 3
fill_density = 15%
fill_pattern = Gyroid
perimeter_speed = 45
external_perimeter_speed = 25
travel_speed = 180
support_material = 1
elefant_foot_compensation = 0.2
`

func importBundle(t *testing.T) map[profile.Kind]*profile.Document {
	t.Helper()
	docs, err := importer.Import([]byte(sampleBundle), importer.Options{SourceName: "mk4_bundle"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	byKind := make(map[profile.Kind]*profile.Document, len(docs))
	for _, doc := range docs {
		byKind[doc.Kind] = doc
	}
	return byKind
}

func TestImportFilament(t *testing.T) {
	f := importBundle(t)[profile.KindFilament].Filament

	if f.Name != "Prusament PLA" {
		t.Fatalf("unexpected name %q", f.Name)
	}
	if f.Brand != "Prusament" {
		t.Fatalf("unexpected brand %q", f.Brand)
	}
	if f.ID != "Prusament/Prusament-PLA" {
		t.Fatalf("unexpected id %q", f.ID)
	}
	if f.Material != "PLA" {
		t.Fatalf("unexpected material %q", f.Material)
	}

	// The working temperature anchors a +-20 window.
	if f.Nozzle.Recommended == nil || *f.Nozzle.Recommended != 215 {
		t.Fatalf("unexpected recommended nozzle: %+v", f.Nozzle)
	}
	if f.Nozzle.Min != 195 || f.Nozzle.Max != 235 {
		t.Fatalf("unexpected nozzle window: %+v", f.Nozzle)
	}
	if f.Nozzle.FirstLayer == nil || *f.Nozzle.FirstLayer != 220 {
		t.Fatalf("unexpected first layer temperature: %+v", f.Nozzle)
	}
	if f.Bed.Min != 50 || f.Bed.Max != 70 {
		t.Fatalf("unexpected bed window: %+v", f.Bed)
	}
	if f.Fan.Max != 90 || f.Fan.Recommended == nil || *f.Fan.Recommended != 90 {
		t.Fatalf("unexpected fan settings: %+v", f.Fan)
	}

	// Keys without a neutral mapping land in the extension bucket.
	if f.XPrusaSlicer["filament_retract_length"] != "1.2" {
		t.Fatalf("unmapped key missing from x_prusaslicer: %v", f.XPrusaSlicer)
	}
	if _, mapped := f.XPrusaSlicer["temperature"]; mapped {
		t.Fatal("mapped key leaked into x_prusaslicer")
	}

	if f.Maintainer == nil || f.Maintainer.Name != "Imported from PrusaSlicer" {
		t.Fatalf("unexpected maintainer: %+v", f.Maintainer)
	}
}

func TestImportTemperatureWindowClamping(t *testing.T) {
	input := "[filament:Hot Stuff]\ntemperature = 290\nbed_temperature = 5\n"
	docs, err := importer.Import([]byte(input), importer.Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	f := docs[0].Filament
	if f.Nozzle.Max != 300 {
		t.Fatalf("nozzle max should clamp to 300, got %v", f.Nozzle.Max)
	}
	if f.Bed.Min != 0 {
		t.Fatalf("bed min should clamp to 0, got %v", f.Bed.Min)
	}
}

func TestImportMaterialNormalization(t *testing.T) {
	cases := map[string]string{
		"pla":    "PLA",
		"PET":    "PETG",
		"pet-g":  "PETG",
		"NYLON":  "PA6",
		"weirdo": "WEIRDO",
	}
	for input, want := range cases {
		ini := "[filament:x]\nfilament_type = " + input + "\n"
		docs, err := importer.Import([]byte(ini), importer.Options{})
		if err != nil {
			t.Fatalf("Import(%q): %v", input, err)
		}
		if got := docs[0].Filament.Material; got != want {
			t.Fatalf("material %q normalized to %q, want %q", input, got, want)
		}
	}
}

func TestImportPrinter(t *testing.T) {
	p := importBundle(t)[profile.KindPrinter].Printer

	if p.Model != "MK4" || p.Manufacturer != "Prusa Research" {
		t.Fatalf("unexpected identity: %q %q", p.Manufacturer, p.Model)
	}
	if p.ID != "Prusa-Research/MK4" {
		t.Fatalf("unexpected id %q", p.ID)
	}
	if p.BuildVolume.X != 250 || p.BuildVolume.Y != 210 || p.BuildVolume.Z != 220 {
		t.Fatalf("unexpected build volume: %+v", p.BuildVolume)
	}
	if p.Axes.X.MaxSpeed != 200 || p.Axes.X.MaxAccel != 4000 {
		t.Fatalf("unexpected x axis limits: %+v", p.Axes.X)
	}
	// Untouched axes keep their defaults.
	if p.Axes.Y.MaxSpeed != 300 {
		t.Fatalf("unexpected y axis default: %+v", p.Axes.Y)
	}
	if p.Kinematics != profile.KinematicsCoreXY {
		t.Fatalf("expected corexy inferred from notes, got %q", p.Kinematics)
	}
}

func TestImportKinematicsHintOrdering(t *testing.T) {
	ini := "[printer:hybrid]\nprinter_notes = this is a hybrid_corexy machine\n"
	docs, err := importer.Import([]byte(ini), importer.Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got := docs[0].Printer.Kinematics; got != profile.KinematicsHybridCoreXY {
		t.Fatalf("expected hybrid_corexy, got %q", got)
	}
}

func TestImportProcess(t *testing.T) {
	p := importBundle(t)[profile.KindProcess].Process

	if p.Name != "0.15mm QUALITY" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if p.LayerHeight.Default != 0.15 {
		t.Fatalf("unexpected layer height %v", p.LayerHeight.Default)
	}
	if p.LayerHeight.Min != 0.05 || p.LayerHeight.Max != 0.3 {
		t.Fatalf("unexpected layer height window: %+v", p.LayerHeight)
	}
	if p.Intent != "quality" {
		t.Fatalf("unexpected intent %q", p.Intent)
	}
	if p.ID != "Standard/0.15mm-0.15mm-QUALITY" {
		t.Fatalf("unexpected id %q", p.ID)
	}
	if p.Infill.DensityDefault != 15 {
		t.Fatalf("unexpected infill density %v", p.Infill.DensityDefault)
	}
	if len(p.Infill.RecommendedPatterns) != 1 || p.Infill.RecommendedPatterns[0] != "gyroid" {
		t.Fatalf("unexpected patterns: %v", p.Infill.RecommendedPatterns)
	}
	if p.Speed.InnerWall != 45 || p.Speed.OuterWall != 25 {
		t.Fatalf("perimeter speeds mapped wrong: %+v", p.Speed)
	}
	if !p.Supports.EnabledDefault {
		t.Fatal("support_material = 1 should enable supports")
	}
	if p.XPrusaSlicer["elefant_foot_compensation"] != "0.2" {
		t.Fatalf("unmapped process key missing: %v", p.XPrusaSlicer)
	}
}

func TestImportIntentBuckets(t *testing.T) {
	cases := map[string]string{
		"0.08": "high_detail",
		"0.12": "quality",
		"0.2":  "standard",
		"0.3":  "draft",
	}
	for height, want := range cases {
		ini := "[print:p]\nlayer_height = " + height + "\n"
		docs, err := importer.Import([]byte(ini), importer.Options{})
		if err != nil {
			t.Fatalf("Import: %v", err)
		}
		if got := docs[0].Process.Intent; got != want {
			t.Fatalf("layer height %s bucketed as %q, want %q", height, got, want)
		}
	}
}

func TestImportMaintainerOverride(t *testing.T) {
	docs, err := importer.Import([]byte("[filament:x]\nfilament_type = PLA\n"), importer.Options{
		Maintainer: &profile.Maintainer{Name: "Print Farm Ops", Type: "community"},
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	m := docs[0].Filament.Maintainer
	if m == nil || m.Name != "Print Farm Ops" || m.Type != "community" {
		t.Fatalf("unexpected maintainer: %+v", m)
	}
}

func TestImportNoProfiles(t *testing.T) {
	_, err := importer.Import([]byte("[presets]\nprinter = foo\n"), importer.Options{})
	if !errors.Is(err, importer.ErrNoProfiles) {
		t.Fatalf("expected ErrNoProfiles, got %v", err)
	}
}

func TestImportedDocumentsValidate(t *testing.T) {
	for kind, doc := range importBundle(t) {
		if issues := profile.Check(doc); profile.HasErrors(issues) {
			t.Fatalf("imported %s has validation errors: %v", kind, issues)
		}
	}
}
