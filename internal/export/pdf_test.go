package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
)

// buildTestSet creates a realistic layout set for testing.
func buildTestSet() model.LayoutSet {
	wafer := model.NewWaferSpec(3.0)
	return model.LayoutSet{
		Die:      model.Die{Width: 50, Height: 50},
		Wafer:    wafer,
		Settings: model.DefaultSettings(),
		Layouts: []model.LayoutResult{
			{
				Label:  model.LabelMaxCount,
				Offset: model.LatticeOffset{DX: 12.525, DY: 0},
				Positions: model.PositionSet{
					{X: -37.575, Y: 0}, {X: 12.525, Y: 0}, {X: 62.625, Y: 0},
					{X: -37.575, Y: 50.1}, {X: 12.525, Y: 50.1},
					{X: -37.575, Y: -50.1}, {X: 12.525, Y: -50.1},
				},
				Count:   7,
				Balance: 0.91,
				Buffers: model.EdgeBuffers{Left: 84.4, Right: 59.4, Top: 71.9, Bottom: 71.9},
			},
			{
				Label: model.LabelSymmetric,
				Positions: model.PositionSet{
					{X: -25.05, Y: 25.05}, {X: 25.05, Y: 25.05},
					{X: -25.05, Y: -25.05}, {X: 25.05, Y: -25.05},
				},
				Count:     4,
				Balance:   1.0,
				Symmetric: true,
				Buffers:   model.EdgeBuffers{Left: 96.9, Right: 96.9, Top: 96.9, Bottom: 96.9},
			},
			{
				Label:     model.LabelCentered,
				Positions: model.PositionSet{{X: 0, Y: 0}},
				Count:     1,
				Balance:   1.0,
				Symmetric: true,
				Buffers:   model.EdgeBuffers{Left: 122, Right: 122, Top: 122, Bottom: 122},
			},
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.pdf")

	err := ExportPDF(path, buildTestSet())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 4 pages (3 layouts + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptySet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.LayoutSet{})
	if err == nil {
		t.Fatal("expected error for empty set, got nil")
	}
}

func TestExportPDF_WithNotch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notch.pdf")

	set := buildTestSet()
	set.Wafer.Notch = true

	err := ExportPDF(path, set)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_EmptyLayoutRenders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "degenerate.pdf")

	// A degenerate zero-count layout still gets a page.
	set := buildTestSet()
	set.Layouts[1].Positions = nil
	set.Layouts[1].Count = 0
	set.Layouts[1].Buffers = model.EdgeBuffers{}

	err := ExportPDF(path, set)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Error("yesNo formatting is wrong")
	}
}
