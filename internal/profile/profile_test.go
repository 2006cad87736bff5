package profile_test

import (
	"errors"
	"strings"
	"testing"

	"op3d/internal/profile"
	"op3d/internal/testsupport"
)

func TestParseKind(t *testing.T) {
	for _, input := range []string{"filament", "Filament", " FILAMENT "} {
		kind, err := profile.ParseKind(input)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", input, err)
		}
		if kind != profile.KindFilament {
			t.Fatalf("ParseKind(%q) = %q", input, kind)
		}
	}

	if _, err := profile.ParseKind("sla_resin"); !errors.Is(err, profile.ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}

func TestDecodeDispatchesOnSchema(t *testing.T) {
	doc, err := profile.Decode([]byte(testsupport.FilamentJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Kind != profile.KindFilament {
		t.Fatalf("unexpected kind %q", doc.Kind)
	}
	if doc.Filament == nil || doc.Printer != nil || doc.Process != nil {
		t.Fatal("expected only the filament branch to be populated")
	}
	if doc.ID() != "Prusament/PLA-Galaxy-Black" {
		t.Fatalf("unexpected id %q", doc.ID())
	}
	if doc.DisplayName() != "PLA Galaxy Black" {
		t.Fatalf("unexpected display name %q", doc.DisplayName())
	}
	if doc.Filament.Nozzle.Min != 190 || doc.Filament.Nozzle.Max != 220 {
		t.Fatalf("unexpected nozzle window: %+v", doc.Filament.Nozzle)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	if _, err := profile.Decode([]byte("{not json")); !errors.Is(err, profile.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := profile.Decode([]byte(`{"op3d_schema": "resin"}`)); !errors.Is(err, profile.ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}

func TestDecodePreservesExtensionBuckets(t *testing.T) {
	raw := strings.Replace(testsupport.FilamentJSON,
		`"fan": {"min": 50, "max": 100}`,
		`"fan": {"min": 50, "max": 100},
  "x_prusaslicer": {"filament_retract_length": "1.2"}`, 1)

	doc, err := profile.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Filament.XPrusaSlicer["filament_retract_length"] != "1.2" {
		t.Fatalf("extension bucket lost: %v", doc.Filament.XPrusaSlicer)
	}
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	doc, err := profile.Decode([]byte(`{"op3d_schema": "filament", "id": "Generic/PLA"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.DisplayName() != "Generic/PLA" {
		t.Fatalf("unexpected display name %q", doc.DisplayName())
	}
}
