package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected via ldflags at
// build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the waferdice CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (plan, compare,
// export, profiles, config), configures logging based on the --verbose flag,
// and executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "waferdice",
		Short:        "WaferDice plans rectangular die placements on a wafer",
		Long:         `WaferDice computes how many rectangular dies fit on a 300 mm wafer under a given scribe width and edge exclusion, searching grid offsets for the best count, balance and symmetry.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("waferdice %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newConfigCmd())

	return root.ExecuteContext(ctx)
}
