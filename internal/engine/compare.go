package engine

import (
	"fmt"

	"github.com/piwi3910/WaferDice/internal/model"
)

// ComparisonScenario defines a named wafer/settings combination to compare.
type ComparisonScenario struct {
	Name     string
	Wafer    model.WaferSpec
	Settings model.LayoutSettings
}

// ComparisonResult holds the planning outcome and headline numbers for a
// single scenario. Err is set when the scenario's inputs fail validation;
// the remaining fields are then zero.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Set            model.LayoutSet
	MaxCount       int
	SymmetricCount int
	CenteredCount  int
	BestBalance    float64
	Err            error
}

// CompareScenarios plans each scenario against the same die and returns the
// results in scenario order. This powers the side-by-side comparison of the
// boundary-test, spacing and exclusion-factor conventions, which produce
// materially different die counts for the same nominal inputs.
func CompareScenarios(scenarios []ComparisonScenario, die model.Die) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		res := ComparisonResult{Scenario: scenario}

		opt := New(scenario.Wafer, scenario.Settings)
		set, err := opt.Plan(die)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Set = set
		if lr, ok := set.Get(model.LabelMaxCount); ok {
			res.MaxCount = lr.Count
			res.BestBalance = lr.Balance
		}
		if lr, ok := set.Get(model.LabelSymmetric); ok {
			res.SymmetricCount = lr.Count
		}
		if lr, ok := set.Get(model.LabelCentered); ok {
			res.CenteredCount = lr.Count
		}
		results = append(results, res)
	}

	return results
}

// BuildDefaultScenarios generates what-if scenarios from a base
// configuration, varying the conventions that differ between tools in the
// field: the boundary test, the spacing mode, the exclusion factor, and the
// single-die-row policy.
func BuildDefaultScenarios(wafer model.WaferSpec, settings model.LayoutSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Wafer: wafer, Settings: settings},
	}

	// Scenario: the other boundary test
	altBoundary := settings
	if settings.BoundaryTest == model.BoundaryCorners {
		altBoundary.BoundaryTest = model.BoundaryArc
		scenarios = append(scenarios, ComparisonScenario{
			Name: "Bounding-Arc Test", Wafer: wafer, Settings: altBoundary,
		})
	} else {
		altBoundary.BoundaryTest = model.BoundaryCorners
		scenarios = append(scenarios, ComparisonScenario{
			Name: "Corner Test", Wafer: wafer, Settings: altBoundary,
		})
	}

	// Scenario: half-scribe lattice period
	if settings.SpacingMode == model.SpacingFull {
		halfScribe := settings
		halfScribe.SpacingMode = model.SpacingHalf
		scenarios = append(scenarios, ComparisonScenario{
			Name: "Half-Scribe Period", Wafer: wafer, Settings: halfScribe,
		})
	}

	// Scenario: widened exclusion factor
	if wafer.ExclusionFactor != 1.10 {
		widened := wafer
		widened.ExclusionFactor = 1.10
		scenarios = append(scenarios, ComparisonScenario{
			Name: fmt.Sprintf("Exclusion x%.2f", widened.ExclusionFactor), Wafer: widened, Settings: settings,
		})
	}

	// Scenario: forbid single-die rows
	if !settings.ForbidSingleDieRows {
		noSingles := settings
		noSingles.ForbidSingleDieRows = true
		scenarios = append(scenarios, ComparisonScenario{
			Name: "No Single-Die Rows", Wafer: wafer, Settings: noSingles,
		})
	}

	return scenarios
}
