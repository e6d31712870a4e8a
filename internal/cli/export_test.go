package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/piwi3910/WaferDice/internal/project"
)

// savedPlanFixture writes a plan with a stored result to disk and returns
// its path.
func savedPlanFixture(t *testing.T, dir string) string {
	t.Helper()

	plan := model.NewPlan("lot 7")
	plan.Die = model.Die{Width: 40, Height: 40}
	plan.Result = &model.LayoutSet{
		Die:      plan.Die,
		Wafer:    plan.Wafer,
		Settings: plan.Settings,
		Layouts: []model.LayoutResult{
			{
				Label: model.LabelMaxCount,
				Positions: model.PositionSet{
					{X: -40.1, Y: 0}, {X: 0, Y: 0}, {X: 40.1, Y: 0},
					{X: 0, Y: -40.1}, {X: 0, Y: 40.1},
				},
				Count:     5,
				Balance:   1,
				Symmetric: true,
				Buffers:   model.EdgeBuffers{Left: 86.8, Right: 86.8, Top: 86.8, Bottom: 86.8},
			},
		},
	}

	path := filepath.Join(dir, "lot7"+project.PlanFileExt)
	if err := project.SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan returned error: %v", err)
	}
	return path
}

func TestExportCommand_WritesFilesFromSavedPlan(t *testing.T) {
	dir := t.TempDir()
	planPath := savedPlanFixture(t, dir)

	pdfPath := filepath.Join(dir, "map.pdf")
	dxfPath := filepath.Join(dir, "map.dxf")
	xlsxPath := filepath.Join(dir, "positions.xlsx")

	cmd := newExportCmd()
	cmd.SetArgs([]string{planPath, "--pdf", pdfPath, "--dxf", dxfPath, "--xlsx", xlsxPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export command returned error: %v", err)
	}

	for _, path := range []string{pdfPath, dxfPath, xlsxPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected output file %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("output file %s is empty", path)
		}
	}
}

func TestExportCommand_PlanWithoutResult(t *testing.T) {
	dir := t.TempDir()
	plan := model.NewPlan("inputs only")
	plan.Die = model.Die{Width: 40, Height: 40}

	path := filepath.Join(dir, "inputs"+project.PlanFileExt)
	if err := project.SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan returned error: %v", err)
	}

	cmd := newExportCmd()
	cmd.SetArgs([]string{path})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for a plan without a stored result")
	}
}

func TestExportCommand_MissingPlanFile(t *testing.T) {
	cmd := newExportCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing"+project.PlanFileExt)})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for a missing plan file")
	}
}
