package profile_test

import (
	"strings"
	"testing"

	"op3d/internal/profile"
	"op3d/internal/testsupport"
)

func decode(t *testing.T, data string) *profile.Document {
	t.Helper()
	doc, err := profile.Decode([]byte(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func TestCheckValidProfilesHaveNoIssues(t *testing.T) {
	for _, raw := range []string{testsupport.FilamentJSON, testsupport.PrinterJSON, testsupport.ProcessJSON} {
		doc := decode(t, raw)
		if issues := profile.Check(doc); len(issues) != 0 {
			t.Fatalf("unexpected issues for %s: %v", doc.ID(), issues)
		}
	}
}

func TestCheckMissingIdentityIsError(t *testing.T) {
	doc := decode(t, `{"op3d_schema": "filament", "material": "PLA"}`)
	issues := profile.Check(doc)
	if !profile.HasErrors(issues) {
		t.Fatalf("expected errors, got %v", issues)
	}
	found := false
	for _, issue := range issues {
		if issue.Path == "id" && issue.Severity == profile.SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error on id, got %v", issues)
	}
}

func TestCheckInvertedRangeIsWarningOnly(t *testing.T) {
	raw := strings.Replace(testsupport.FilamentJSON,
		`"nozzle": {"min": 190, "max": 220, "recommended": 210}`,
		`"nozzle": {"min": 230, "max": 220, "recommended": 210}`, 1)
	doc := decode(t, raw)

	issues := profile.Check(doc)
	if len(issues) == 0 {
		t.Fatal("expected warnings for inverted range")
	}
	if profile.HasErrors(issues) {
		t.Fatalf("range violations must stay warnings, got %v", issues)
	}
}

func TestCheckUnknownKinematicsIsError(t *testing.T) {
	raw := strings.Replace(testsupport.PrinterJSON,
		`"kinematics": "cartesian"`, `"kinematics": "warp-drive"`, 1)
	doc := decode(t, raw)

	issues := profile.Check(doc)
	if !profile.HasErrors(issues) {
		t.Fatalf("expected error for unknown kinematics, got %v", issues)
	}
}

func TestCheckNonPositiveBuildVolumeIsError(t *testing.T) {
	raw := strings.Replace(testsupport.PrinterJSON,
		`"build_volume": {"x": 220, "y": 220, "z": 250, "shape": "rectangular"}`,
		`"build_volume": {"x": 220, "y": 0, "z": 250, "shape": "rectangular"}`, 1)
	doc := decode(t, raw)

	if !profile.HasErrors(profile.Check(doc)) {
		t.Fatal("expected error for zero build volume dimension")
	}
}

func TestCheckInfillDensityBounds(t *testing.T) {
	raw := strings.Replace(testsupport.ProcessJSON,
		`"layer_height": {"min": 0.08, "max": 0.3, "default": 0.2}`,
		`"layer_height": {"min": 0.08, "max": 0.3, "default": 0.2},
  "infill": {"density_default": 140}`, 1)
	doc := decode(t, raw)

	if !profile.HasErrors(profile.Check(doc)) {
		t.Fatal("expected error for infill density above 100")
	}
}
