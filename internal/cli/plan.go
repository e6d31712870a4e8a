package cli

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WaferDice/internal/engine"
	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/piwi3910/WaferDice/internal/project"
)

// newPlanCmd creates the plan command, the main entry point: it searches
// grid offsets for the given die and reports the best layout per objective.
func newPlanCmd() *cobra.Command {
	var (
		flags    waferFlags
		outputs  exportFlags
		name     string
		savePath string

		targetDies   int
		yieldPercent float64
		waferPrice   float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan die placements for one die size",
		Long: `Plan die placements for one die size.

The plan command places a rectangular die on the wafer grid, sweeps the
grid offset over one lattice period, and reports three layouts: the
maximum die count, the best symmetric layout, and the centered baseline.

Results can be exported as a PDF report, a DXF wafer map, an XLSX
workbook, or QR-coded wafer traveler labels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			die, wafer, settings, err := flags.resolve(loadConfigOrDefaults(logger), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			logger.Debug("planning layout",
				"die_width", die.Width, "die_height", die.Height,
				"effective_radius", wafer.EffectiveRadius())

			set, err := engine.New(wafer, settings).Plan(die)
			if err != nil {
				return err
			}

			printLayoutSet(set)

			if targetDies > 0 || waferPrice > 0 {
				printYield(set, targetDies, yieldPercent, waferPrice)
			}

			if err := outputs.write(name, set); err != nil {
				return err
			}

			if savePath != "" {
				plan := model.NewPlan(name)
				plan.Die = die
				plan.Wafer = wafer
				plan.Settings = settings
				plan.Result = &set
				if err := project.SavePlan(savePath, plan); err != nil {
					return fmt.Errorf("save plan: %w", err)
				}
				printSuccess("saved plan %s", plan.ID)
				printFile(savePath)
				rememberPlan(logger, savePath)
			}

			return nil
		},
	}

	addWaferFlags(cmd, &flags)
	addExportFlags(cmd, &outputs)
	cmd.Flags().StringVar(&name, "name", "wafer plan", "plan name used in labels and saved files")
	cmd.Flags().StringVar(&savePath, "save", "", "save the plan as JSON to this path")

	cmd.Flags().IntVar(&targetDies, "target-dies", 0, "target quantity of good dies for the yield estimate")
	cmd.Flags().Float64Var(&yieldPercent, "yield", 90.0, "expected line yield in percent")
	cmd.Flags().Float64Var(&waferPrice, "wafer-price", 0, "price per wafer for the cost estimate")

	_ = cmd.MarkFlagRequired("die-width")
	_ = cmd.MarkFlagRequired("die-height")

	return cmd
}

// addWaferFlags registers the die, wafer and settings flags shared by the
// plan and compare commands.
func addWaferFlags(cmd *cobra.Command, flags *waferFlags) {
	defaults := model.DefaultSettings()
	cmd.Flags().Float64VarP(&flags.dieWidth, "die-width", "W", 0, "die width in mm")
	cmd.Flags().Float64VarP(&flags.dieHeight, "die-height", "H", 0, "die height in mm")
	cmd.Flags().Float64Var(&flags.scribe, "scribe", defaults.ScribeWidth, "scribe width in mm")
	cmd.Flags().Float64Var(&flags.exclusion, "exclusion", 3.0, "edge exclusion in mm")
	cmd.Flags().Float64Var(&flags.exclusionFactor, "exclusion-factor", 1.0, "multiplier applied to the edge exclusion")
	cmd.Flags().StringVar(&flags.spacing, "spacing", string(defaults.SpacingMode), "spacing mode: full or half")
	cmd.Flags().StringVar(&flags.boundary, "boundary", string(defaults.BoundaryTest), "boundary test: corners or arc")
	cmd.Flags().IntVar(&flags.steps, "steps", defaults.OffsetSteps, "offset sweep subdivisions per axis")
	cmd.Flags().BoolVar(&flags.notch, "notch", false, "block placements in the bottom notch zone")
	cmd.Flags().BoolVar(&flags.noSingleRows, "no-single-rows", false, "reject searched offsets that leave a lone die in a row")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "process profile supplying wafer and settings defaults")
}

// printLayoutSet renders the per-objective results as a table.
func printLayoutSet(set model.LayoutSet) {
	printHeader(fmt.Sprintf("Die %.2f x %.2f mm on a %.0f mm wafer (effective radius %.2f mm)",
		set.Die.Width, set.Die.Height, set.Wafer.Radius*2, set.Wafer.EffectiveRadius()))

	widths := []int{12, 8, 10, 11, 13, 20}
	printRow(widths, []string{"Layout", "Dies", "Balance", "Symmetric", "Utilization", "Offset (mm)"}, true)
	for _, lr := range set.Layouts {
		sym := "no"
		if lr.Symmetric {
			sym = "yes"
		}
		printRow(widths, []string{
			lr.Label,
			fmt.Sprintf("%d", lr.Count),
			fmt.Sprintf("%.1f%%", lr.BalancePercent()),
			sym,
			fmt.Sprintf("%.1f%%", lr.Utilization(set.Die, set.Wafer)),
			fmt.Sprintf("%.3f, %.3f", lr.Offset.DX, lr.Offset.DY),
		}, false)
	}

	if best, ok := set.Get(model.LabelMaxCount); ok && best.Count == 0 {
		printWarning("the die does not fit anywhere on the wafer at these settings")
	}
}

// printYield renders the wafer-count and cost estimate for the best layout.
func printYield(set model.LayoutSet, targetDies int, yieldPercent, waferPrice float64) {
	est := model.CalculateYieldEstimate(set.MaxCount(), targetDies, yieldPercent, waferPrice)

	fmt.Println()
	printHeader("Yield Estimate")
	printKeyValue("Gross dies", fmt.Sprintf("%d", est.GrossDies))
	printKeyValue("Good dies", fmt.Sprintf("%d (at %.1f%%)", est.GoodDies, est.YieldPercent))
	if est.TargetDies > 0 {
		printKeyValue("Wafers needed", fmt.Sprintf("%d for %d dies", est.WafersNeeded, est.TargetDies))
	}
	if est.PricePerWafer > 0 {
		printKeyValue("Cost per die", fmt.Sprintf("%.4f", est.CostPerDie))
		if est.EstimatedCost > 0 {
			printKeyValue("Estimated cost", fmt.Sprintf("%.2f", est.EstimatedCost))
		}
	}
}

// rememberPlan records a saved plan in the recent list. Failures only log;
// the plan itself is already on disk.
func rememberPlan(logger *charmlog.Logger, path string) {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Debug("cannot load app config", "err", err)
		return
	}
	project.AddRecentPlan(&cfg, path, 10)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
		logger.Debug("cannot update recent plans", "err", err)
	}
}
