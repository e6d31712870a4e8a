package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
)

func TestSaveAndLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lot42"+PlanFileExt)

	plan := model.NewPlan("lot 42")
	plan.Die = model.Die{Width: 12.5, Height: 9.5}
	plan.Wafer.Notch = true
	plan.Result = &model.LayoutSet{
		Die:   plan.Die,
		Wafer: plan.Wafer,
		Layouts: []model.LayoutResult{
			{Label: model.LabelCentered, Count: 3, Positions: model.PositionSet{{X: 0, Y: 0}, {X: 12.6, Y: 0}, {X: -12.6, Y: 0}}},
		},
	}

	if err := SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}

	loaded, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}

	if loaded.ID != plan.ID {
		t.Errorf("expected ID %s, got %s", plan.ID, loaded.ID)
	}
	if loaded.Die != plan.Die {
		t.Errorf("expected die %+v, got %+v", plan.Die, loaded.Die)
	}
	if !loaded.Wafer.Notch {
		t.Error("notch flag was lost in the round trip")
	}
	if loaded.Result == nil || len(loaded.Result.Layouts) != 1 {
		t.Fatal("layout result was lost in the round trip")
	}
	if loaded.Result.Layouts[0].Count != 3 {
		t.Errorf("expected 3 dies, got %d", loaded.Result.Layouts[0].Count)
	}
}

func TestSavePlanCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "plan"+PlanFileExt)

	if err := SavePlan(path, model.NewPlan("nested")); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("plan file was not created: %v", err)
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope"+PlanFileExt))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadPlanInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad"+PlanFileExt)
	if err := os.WriteFile(path, []byte("not a plan"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPlan(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadPlanMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon"+PlanFileExt)
	if err := os.WriteFile(path, []byte(`{"id": "abc123"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPlan(path); err == nil {
		t.Fatal("expected error for plan without a name, got nil")
	}
}
