package cli

import (
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
)

func TestParseSpacingMode(t *testing.T) {
	for _, valid := range []string{"full", "half"} {
		if _, err := parseSpacingMode(valid); err != nil {
			t.Errorf("parseSpacingMode(%q) returned error: %v", valid, err)
		}
	}
	if _, err := parseSpacingMode("quarter"); err == nil {
		t.Error("expected error for unknown spacing mode")
	}
}

func TestParseBoundaryTest(t *testing.T) {
	for _, valid := range []string{"corners", "arc"} {
		if _, err := parseBoundaryTest(valid); err != nil {
			t.Errorf("parseBoundaryTest(%q) returned error: %v", valid, err)
		}
	}
	if _, err := parseBoundaryTest("chord"); err == nil {
		t.Error("expected error for unknown boundary test")
	}
}

func TestWaferFlagsResolve(t *testing.T) {
	// Every flag set by the user overrides the config baseline.
	flags := waferFlags{
		dieWidth:        12,
		dieHeight:       9,
		scribe:          0.2,
		exclusion:       5.0,
		exclusionFactor: 1.10,
		spacing:         "half",
		boundary:        "arc",
		steps:           6,
		notch:           true,
		noSingleRows:    true,
	}

	die, wafer, settings, err := flags.resolve(model.DefaultAppConfig(), func(string) bool { return true })
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}

	if die.Width != 12 || die.Height != 9 {
		t.Errorf("die = %+v", die)
	}
	if wafer.EdgeExclusion != 5.0 || wafer.ExclusionFactor != 1.10 || !wafer.Notch {
		t.Errorf("wafer = %+v", wafer)
	}
	if settings.SpacingMode != model.SpacingHalf || settings.BoundaryTest != model.BoundaryArc {
		t.Errorf("settings = %+v", settings)
	}
	if settings.OffsetSteps != 6 || !settings.ForbidSingleDieRows || settings.ScribeWidth != 0.2 {
		t.Errorf("settings = %+v", settings)
	}
}

func TestWaferFlagsResolve_ConfigBaseline(t *testing.T) {
	// Saved preferences carry through when no flag is set, even though the
	// flag struct still holds the cobra registration defaults.
	cfg := model.AppConfig{
		DefaultScribeWidth:     0.3,
		DefaultEdgeExclusion:   4.0,
		DefaultExclusionFactor: 1.10,
		DefaultSpacingMode:     model.SpacingHalf,
		DefaultBoundaryTest:    model.BoundaryArc,
		DefaultOffsetSteps:     8,
		DefaultNotch:           true,
	}
	flags := waferFlags{
		dieWidth: 10, dieHeight: 10,
		scribe:    0.1,
		exclusion: 3.0,
		spacing:   "full",
		boundary:  "corners",
		steps:     10,
	}

	_, wafer, settings, err := flags.resolve(cfg, func(string) bool { return false })
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}

	if wafer.EdgeExclusion != 4.0 || wafer.ExclusionFactor != 1.10 || !wafer.Notch {
		t.Errorf("wafer = %+v", wafer)
	}
	if settings.ScribeWidth != 0.3 || settings.OffsetSteps != 8 {
		t.Errorf("settings = %+v", settings)
	}
	if settings.SpacingMode != model.SpacingHalf || settings.BoundaryTest != model.BoundaryArc {
		t.Errorf("settings = %+v", settings)
	}
}

func TestWaferFlagsResolve_BuiltInProfile(t *testing.T) {
	// A named profile replaces the config baseline wholesale; a flag the
	// user set still wins over the profile.
	flags := waferFlags{
		dieWidth: 10, dieHeight: 10,
		scribe:  0.25,
		profile: "Half-Scribe",
	}

	_, wafer, settings, err := flags.resolve(model.DefaultAppConfig(), func(name string) bool { return name == "scribe" })
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}

	if settings.SpacingMode != model.SpacingHalf {
		t.Errorf("SpacingMode = %q, want half from the profile", settings.SpacingMode)
	}
	if settings.ScribeWidth != 0.25 {
		t.Errorf("ScribeWidth = %v, want the flag override 0.25", settings.ScribeWidth)
	}
	if wafer.EdgeExclusion != 3.0 || wafer.ExclusionFactor != 1.0 {
		t.Errorf("wafer = %+v", wafer)
	}
}

func TestWaferFlagsResolve_BadSpacing(t *testing.T) {
	flags := waferFlags{
		dieWidth: 10, dieHeight: 10,
		spacing:  "diagonal",
		boundary: "corners",
	}
	if _, _, _, err := flags.resolve(model.DefaultAppConfig(), func(string) bool { return true }); err == nil {
		t.Error("expected error for invalid spacing mode")
	}
}

func TestWaferFlagsResolve_UnknownProfile(t *testing.T) {
	flags := waferFlags{
		dieWidth: 10, dieHeight: 10,
		spacing:  "full",
		boundary: "corners",
		profile:  "no such fab",
	}
	if _, _, _, err := flags.resolve(model.DefaultAppConfig(), func(string) bool { return false }); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad(ab, 5) = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc " {
		t.Errorf("pad(abcdef, 4) = %q", got)
	}
}
