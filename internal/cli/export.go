package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WaferDice/internal/export"
	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/piwi3910/WaferDice/internal/project"
)

// exportFlags holds the output destinations shared by the plan and export
// commands.
type exportFlags struct {
	pdfPath   string
	dxfPath   string
	xlsxPath  string
	labelPath string
	layout    string
	wafers    int
}

// addExportFlags registers the output flags shared by the plan and export
// commands.
func addExportFlags(cmd *cobra.Command, flags *exportFlags) {
	cmd.Flags().StringVar(&flags.pdfPath, "pdf", "", "write a PDF wafer map report to this path")
	cmd.Flags().StringVar(&flags.dxfPath, "dxf", "", "write a DXF wafer map to this path")
	cmd.Flags().StringVar(&flags.layout, "layout", model.LabelMaxCount, "layout to export: max-count, symmetric or centered")
	cmd.Flags().StringVar(&flags.xlsxPath, "xlsx", "", "write an XLSX workbook to this path")
	cmd.Flags().StringVar(&flags.labelPath, "labels", "", "write QR traveler labels to this path")
	cmd.Flags().IntVar(&flags.wafers, "wafers", 1, "number of wafers in the lot for traveler labels")
}

// write produces every requested output file for the layout set.
func (f exportFlags) write(planName string, set model.LayoutSet) error {
	if f.pdfPath != "" {
		if err := export.ExportPDF(f.pdfPath, set); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		printFile(f.pdfPath)
	}
	if f.dxfPath != "" {
		if err := export.ExportDXF(f.dxfPath, set, f.layout); err != nil {
			return fmt.Errorf("export dxf: %w", err)
		}
		printFile(f.dxfPath)
	}
	if f.xlsxPath != "" {
		if err := export.ExportXLSX(f.xlsxPath, set); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		printFile(f.xlsxPath)
	}
	if f.labelPath != "" {
		if err := export.ExportLabels(f.labelPath, planName, set, f.layout, f.wafers); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
		printFile(f.labelPath)
	}
	return nil
}

// newExportCmd creates the export command: it reloads a saved plan and
// writes output files from the stored result without re-running the search.
func newExportCmd() *cobra.Command {
	var outputs exportFlags

	cmd := &cobra.Command{
		Use:   "export <plan-file>",
		Short: "Export a saved plan without re-running the search",
		Long: `Export a saved plan without re-running the search.

The export command loads a plan saved with 'plan --save' and writes the
stored layouts as a PDF report, a DXF wafer map, an XLSX workbook, or
QR-coded wafer traveler labels. Without output flags it only prints the
stored result table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			plan, err := project.LoadPlan(args[0])
			if err != nil {
				return fmt.Errorf("load plan: %w", err)
			}
			if plan.Result == nil {
				return fmt.Errorf("plan %q has no stored result", plan.Name)
			}

			logger.Debug("loaded plan", "id", plan.ID, "name", plan.Name)

			printLayoutSet(*plan.Result)
			return outputs.write(plan.Name, *plan.Result)
		},
	}

	addExportFlags(cmd, &outputs)

	return cmd
}
