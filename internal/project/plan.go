// Package project handles persistence of plans, profiles and application
// configuration as JSON files on disk.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/WaferDice/internal/model"
)

// PlanFileExt is the file extension used for saved plans.
const PlanFileExt = ".wdplan.json"

// SavePlan writes a plan to the given path as indented JSON, creating
// missing parent directories.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// LoadPlan reads a plan from the given path.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if plan.Name == "" {
		return model.Plan{}, errors.New("invalid plan file: missing name field")
	}
	return plan, nil
}
