package cli

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/piwi3910/WaferDice/internal/project"
)

// waferFlags holds the raw flag values shared by the plan and compare
// commands before they are parsed into model types.
type waferFlags struct {
	dieWidth        float64
	dieHeight       float64
	scribe          float64
	exclusion       float64
	exclusionFactor float64
	spacing         string
	boundary        string
	steps           int
	notch           bool
	noSingleRows    bool
	profile         string
}

// parseSpacingMode converts a flag value to a SpacingMode.
func parseSpacingMode(s string) (model.SpacingMode, error) {
	switch model.SpacingMode(s) {
	case model.SpacingFull, model.SpacingHalf:
		return model.SpacingMode(s), nil
	default:
		return "", fmt.Errorf("unknown spacing mode %q (use full or half)", s)
	}
}

// parseBoundaryTest converts a flag value to a BoundaryTest.
func parseBoundaryTest(s string) (model.BoundaryTest, error) {
	switch model.BoundaryTest(s) {
	case model.BoundaryCorners, model.BoundaryArc:
		return model.BoundaryTest(s), nil
	default:
		return "", fmt.Errorf("unknown boundary test %q (use corners or arc)", s)
	}
}

// resolve turns the raw flags into a die, wafer spec and layout settings.
// The saved app config supplies the baseline, a named profile overrides
// the baseline wholesale, and flags the user actually set override
// individual values on top.
func (f waferFlags) resolve(cfg model.AppConfig, changed func(name string) bool) (model.Die, model.WaferSpec, model.LayoutSettings, error) {
	die := model.Die{Width: f.dieWidth, Height: f.dieHeight}

	plan := model.NewPlan("")
	cfg.ApplyToPlan(&plan)

	if f.profile != "" {
		custom, err := project.LoadCustomProfiles(project.DefaultProfilesPath())
		if err != nil {
			return die, plan.Wafer, plan.Settings, fmt.Errorf("load profiles: %w", err)
		}
		p, ok := model.FindProfile(custom, f.profile)
		if !ok {
			return die, plan.Wafer, plan.Settings, fmt.Errorf("profile %q not found", f.profile)
		}
		p.ApplyToPlan(&plan)
	}

	wafer := plan.Wafer
	settings := plan.Settings

	if changed("exclusion") {
		wafer.EdgeExclusion = f.exclusion
	}
	if changed("exclusion-factor") {
		wafer.ExclusionFactor = f.exclusionFactor
	}
	if changed("notch") {
		wafer.Notch = f.notch
	}
	if changed("scribe") {
		settings.ScribeWidth = f.scribe
	}
	if changed("steps") {
		settings.OffsetSteps = f.steps
	}
	if changed("no-single-rows") {
		settings.ForbidSingleDieRows = f.noSingleRows
	}

	if changed("spacing") {
		mode, err := parseSpacingMode(f.spacing)
		if err != nil {
			return die, wafer, settings, err
		}
		settings.SpacingMode = mode
	}
	if changed("boundary") {
		test, err := parseBoundaryTest(f.boundary)
		if err != nil {
			return die, wafer, settings, err
		}
		settings.BoundaryTest = test
	}

	return die, wafer, settings, nil
}

// loadConfigOrDefaults loads the saved app config, falling back to the
// shipped defaults when the file is unreadable. A broken config file must
// not block a planning run.
func loadConfigOrDefaults(logger *charmlog.Logger) model.AppConfig {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Debug("cannot load app config, using defaults", "err", err)
		return model.DefaultAppConfig()
	}
	return cfg
}
