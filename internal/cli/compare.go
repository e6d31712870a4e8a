package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WaferDice/internal/engine"
)

// newCompareCmd creates the compare command: it plans the same die under
// the placement conventions that differ between tools in the field and
// prints the outcomes side by side.
func newCompareCmd() *cobra.Command {
	var flags waferFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare placement conventions for one die size",
		Long: `Compare placement conventions for one die size.

The compare command plans the die under the current settings and under
variations of the conventions that differ between tools: the boundary
test, the spacing mode, the exclusion factor, and the single-die-row
policy. The resulting die counts are printed side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			die, wafer, settings, err := flags.resolve(loadConfigOrDefaults(logger), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(wafer, settings)
			logger.Debug("comparing scenarios", "count", len(scenarios))

			results := engine.CompareScenarios(scenarios, die)

			printHeader(fmt.Sprintf("Die %.2f x %.2f mm across %d scenarios", die.Width, die.Height, len(results)))
			widths := []int{24, 10, 12, 10, 10}
			printRow(widths, []string{"Scenario", "Max", "Symmetric", "Centered", "Balance"}, true)
			for _, res := range results {
				if res.Err != nil {
					printError("%s: %v", res.Scenario.Name, res.Err)
					continue
				}
				printRow(widths, []string{
					res.Scenario.Name,
					fmt.Sprintf("%d", res.MaxCount),
					fmt.Sprintf("%d", res.SymmetricCount),
					fmt.Sprintf("%d", res.CenteredCount),
					fmt.Sprintf("%.1f%%", res.BestBalance*100),
				}, false)
			}

			return nil
		},
	}

	addWaferFlags(cmd, &flags)
	_ = cmd.MarkFlagRequired("die-width")
	_ = cmd.MarkFlagRequired("die-height")

	return cmd
}
