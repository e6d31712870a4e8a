// Package export provides functionality for exporting wafer layout results
// to various file formats including QR-coded wafer traveler labels.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/WaferDice/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each wafer traveler label's QR code.
type LabelInfo struct {
	PlanName      string  `json:"plan"`
	Layout        string  `json:"layout"`
	WaferIndex    int     `json:"wafer"`
	DieWidth      float64 `json:"die_width_mm"`
	DieHeight     float64 `json:"die_height_mm"`
	ScribeWidth   float64 `json:"scribe_mm"`
	EdgeExclusion float64 `json:"edge_exclusion_mm"`
	GrossDies     int     `json:"gross_dies"`
	OffsetDX      float64 `json:"offset_dx_mm"`
	OffsetDY      float64 `json:"offset_dy_mm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded traveler labels for a wafer lot.
// One label is produced per wafer, each encoding the plan name, the chosen
// layout and its placement parameters as JSON. Labels are laid out on a
// standard label sheet format (Avery 5160 / 3 columns x 10 rows on US
// Letter).
func ExportLabels(path, planName string, set model.LayoutSet, layoutLabel string, wafers int) error {
	labels, err := CollectLabelInfos(planName, set, layoutLabel, wafers)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for wafer %d: %w", label.WaferIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single traveler label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s_%d", info.PlanName, info.Layout, info.WaferIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Plan name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	planName := info.PlanName
	if pdf.GetStringWidth(planName) > textW {
		for len(planName) > 0 && pdf.GetStringWidth(planName+"...") > textW {
			planName = planName[:len(planName)-1]
		}
		planName += "..."
	}
	pdf.CellFormat(textW, 4.5, planName, "", 1, "L", false, 0, "")

	// Die dimensions and layout
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f mm, %d dies", info.DieWidth, info.DieHeight, info.GrossDies)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Wafer index and layout objective
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	waferInfo := fmt.Sprintf("Wafer %d | %s layout", info.WaferIndex, info.Layout)
	pdf.CellFormat(textW, 3, waferInfo, "", 1, "L", false, 0, "")

	// Scribe and exclusion
	pdf.SetXY(textX, y+labelPadding+12.5)
	procInfo := fmt.Sprintf("scribe %.2f | excl %.2f", info.ScribeWidth, info.EdgeExclusion)
	pdf.CellFormat(textW, 3, procInfo, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos builds the traveler label data for a wafer lot without
// rendering, for use in testing or alternative export formats.
func CollectLabelInfos(planName string, set model.LayoutSet, layoutLabel string, wafers int) ([]LabelInfo, error) {
	lr, ok := set.Get(layoutLabel)
	if !ok {
		return nil, fmt.Errorf("layout %q not found in result set", layoutLabel)
	}
	if wafers < 1 {
		wafers = 1
	}

	labels := make([]LabelInfo, 0, wafers)
	for i := 1; i <= wafers; i++ {
		labels = append(labels, LabelInfo{
			PlanName:      planName,
			Layout:        lr.Label,
			WaferIndex:    i,
			DieWidth:      set.Die.Width,
			DieHeight:     set.Die.Height,
			ScribeWidth:   set.Settings.ScribeWidth,
			EdgeExclusion: set.Wafer.EdgeExclusion,
			GrossDies:     lr.Count,
			OffsetDX:      lr.Offset.DX,
			OffsetDY:      lr.Offset.DY,
		})
	}
	return labels, nil
}
