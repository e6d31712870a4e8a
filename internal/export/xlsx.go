package export

import (
	"fmt"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the layout set to an Excel workbook: a summary sheet
// comparing the objectives, plus one sheet per layout listing every die
// position for inspection or downstream tooling.
func ExportXLSX(path string, set model.LayoutSet) error {
	if len(set.Layouts) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	idx, err := f.NewSheet(summary)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummarySheet(f, summary, headerStyle, set); err != nil {
		return err
	}

	for _, lr := range set.Layouts {
		if err := writePositionSheet(f, lr, headerStyle); err != nil {
			return err
		}
	}

	// Drop the default sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sheet string, headerStyle int, set model.LayoutSet) error {
	inputs := [][]interface{}{
		{"Die Width (mm)", set.Die.Width},
		{"Die Height (mm)", set.Die.Height},
		{"Wafer Radius (mm)", set.Wafer.Radius},
		{"Edge Exclusion (mm)", set.Wafer.EdgeExclusion},
		{"Exclusion Factor", set.Wafer.ExclusionFactor},
		{"Effective Radius (mm)", set.Wafer.EffectiveRadius()},
		{"Scribe Width (mm)", set.Settings.ScribeWidth},
		{"Spacing Mode", string(set.Settings.SpacingMode)},
		{"Boundary Test", string(set.Settings.BoundaryTest)},
		{"Notch", set.Wafer.Notch},
	}
	for i, row := range inputs {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	headerRow := len(inputs) + 2
	headers := []interface{}{
		"Layout", "Offset DX (mm)", "Offset DY (mm)", "Dies", "Balance (%)",
		"Symmetric", "Utilization (%)",
		"Buffer Left (mm)", "Buffer Right (mm)", "Buffer Top (mm)", "Buffer Bottom (mm)",
	}
	start, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &headers); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(headers), headerRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, start, end, headerStyle); err != nil {
		return err
	}

	for i, lr := range set.Layouts {
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return err
		}
		row := []interface{}{
			lr.Label, lr.Offset.DX, lr.Offset.DY, lr.Count, lr.BalancePercent(),
			lr.Symmetric, lr.Utilization(set.Die, set.Wafer),
			lr.Buffers.Left, lr.Buffers.Right, lr.Buffers.Top, lr.Buffers.Bottom,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "K", 16)
}

func writePositionSheet(f *excelize.File, lr model.LayoutResult, headerStyle int) error {
	if _, err := f.NewSheet(lr.Label); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", lr.Label, err)
	}

	headers := []interface{}{"Die", "X (mm)", "Y (mm)"}
	if err := f.SetSheetRow(lr.Label, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(lr.Label, "A1", "C1", headerStyle); err != nil {
		return err
	}

	for i, p := range lr.Positions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, p.X, p.Y}
		if err := f.SetSheetRow(lr.Label, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
