// Package export provides functionality for exporting wafer layout results
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/WaferDice/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the wafer layout results.
// Each layout in the set is rendered on its own page as a wafer map,
// followed by a summary page comparing the objectives.
func ExportPDF(path string, set model.LayoutSet) error {
	if len(set.Layouts) == 0 {
		return fmt.Errorf("no layouts to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, lr := range set.Layouts {
		pdf.AddPage()
		renderLayoutPage(pdf, lr, set)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, set)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws one wafer map on the current PDF page.
func renderLayoutPage(pdf *fpdf.Fpdf, lr model.LayoutResult, set model.LayoutSet) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Layout: %s (%.2f x %.2f mm die)", lr.Label, set.Die.Width, set.Die.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Dies: %d | Balance: %.1f%% | Utilization: %.1f%% | Symmetric: %s | Offset: (%.3f, %.3f)",
		lr.Count, lr.BalancePercent(), lr.Utilization(set.Die, set.Wafer),
		yesNo(lr.Symmetric), lr.Offset.DX, lr.Offset.DY)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the wafer to fit the drawing area; the wafer map stays square.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth, drawHeight) / (2 * set.Wafer.Radius)

	// Wafer center on the page
	cx := marginLeft + drawWidth/2
	cy := drawAreaTop + drawHeight/2

	// Wafer outline
	pdf.SetFillColor(235, 235, 240)
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.4)
	pdf.Circle(cx, cy, set.Wafer.Radius*scale, "FD")

	// Effective boundary (dashed)
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.25)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Circle(cx, cy, set.Wafer.EffectiveRadius()*scale, "D")
	pdf.SetDashPattern([]float64{}, 0)

	// Notch line across the bottom, clipped to the physical circle
	if set.Wafer.Notch {
		notchY := set.Wafer.NotchY()
		half := math.Sqrt(set.Wafer.Radius*set.Wafer.Radius - notchY*notchY)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.4)
		pdf.Line(cx-half*scale, cy-notchY*scale, cx+half*scale, cy-notchY*scale)
	}

	// Die rectangles. Wafer y grows upward, page y grows downward.
	hw := set.Die.Width / 2
	hh := set.Die.Height / 2
	pdf.SetFillColor(76, 175, 80)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.15)
	for _, p := range lr.Positions {
		px := cx + (p.X-hw)*scale
		py := cy - (p.Y+hh)*scale
		pdf.Rect(px, py, set.Die.Width*scale, set.Die.Height*scale, "FD")
	}

	// Crosshair through the wafer center
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.1)
	pdf.Line(cx-3, cy, cx+3, cy)
	pdf.Line(cx, cy-3, cx, cy+3)

	drawBufferAnnotations(pdf, lr.Buffers, cx, cy, set.Wafer.Radius*scale)
}

// drawBufferAnnotations prints the per-side edge clearances beside the wafer.
func drawBufferAnnotations(pdf *fpdf.Fpdf, b model.EdgeBuffers, cx, cy, r float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	put := func(x, y float64, text string) {
		w := pdf.GetStringWidth(text)
		pdf.SetXY(x-w/2, y)
		pdf.CellFormat(w, 4, text, "", 0, "C", false, 0, "")
	}
	put(cx, cy-r-6, fmt.Sprintf("top %.2f mm", b.Top))
	put(cx, cy+r+2, fmt.Sprintf("bottom %.2f mm", b.Bottom))
	put(cx-r-14, cy-2, fmt.Sprintf("left %.2f", b.Left))
	put(cx+r+14, cy-2, fmt.Sprintf("right %.2f", b.Right))

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final page comparing the objectives.
func renderSummaryPage(pdf *fpdf.Fpdf, set model.LayoutSet) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Wafer Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Inputs", "", 0, "L", false, 0, "")
	y += 9

	inputItems := []struct {
		label string
		value string
	}{
		{"Die Size", fmt.Sprintf("%.2f x %.2f mm", set.Die.Width, set.Die.Height)},
		{"Wafer Radius", fmt.Sprintf("%.1f mm", set.Wafer.Radius)},
		{"Edge Exclusion", fmt.Sprintf("%.2f mm (factor %.2f)", set.Wafer.EdgeExclusion, set.Wafer.ExclusionFactor)},
		{"Effective Radius", fmt.Sprintf("%.2f mm", set.Wafer.EffectiveRadius())},
		{"Scribe Width", fmt.Sprintf("%.2f mm (%s spacing)", set.Settings.ScribeWidth, set.Settings.SpacingMode)},
		{"Boundary Test", string(set.Settings.BoundaryTest)},
		{"Notch", yesNo(set.Wafer.Notch)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inputItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-layout breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Layout Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{40, 40, 25, 30, 30, 35, 60}
	headers := []string{"Layout", "Offset (mm)", "Dies", "Balance", "Symmetric", "Utilization", "Buffers L/R/T/B (mm)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, lr := range set.Layouts {
		xPos = marginLeft
		rowData := []string{
			lr.Label,
			fmt.Sprintf("%.3f, %.3f", lr.Offset.DX, lr.Offset.DY),
			fmt.Sprintf("%d", lr.Count),
			fmt.Sprintf("%.1f%%", lr.BalancePercent()),
			yesNo(lr.Symmetric),
			fmt.Sprintf("%.1f%%", lr.Utilization(set.Die, set.Wafer)),
			fmt.Sprintf("%.2f / %.2f / %.2f / %.2f", lr.Buffers.Left, lr.Buffers.Right, lr.Buffers.Top, lr.Buffers.Bottom),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WaferDice - Wafer Die Placement Planner", "", 0, "C", false, 0, "")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
