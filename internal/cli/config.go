package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WaferDice/internal/project"
)

// newConfigCmd creates the config command group for inspecting and backing
// up the application configuration.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and back up the application configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigBackupCmd())
	cmd.AddCommand(newConfigRestoreCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			printHeader("Defaults")
			printKeyValue("Scribe width", fmt.Sprintf("%.2f mm", cfg.DefaultScribeWidth))
			printKeyValue("Edge exclusion", fmt.Sprintf("%.2f mm (factor %.2f)", cfg.DefaultEdgeExclusion, cfg.DefaultExclusionFactor))
			printKeyValue("Spacing mode", string(cfg.DefaultSpacingMode))
			printKeyValue("Boundary test", string(cfg.DefaultBoundaryTest))
			printKeyValue("Offset steps", fmt.Sprintf("%d", cfg.DefaultOffsetSteps))
			printKeyValue("Notch", fmt.Sprintf("%t", cfg.DefaultNotch))
			if len(cfg.RecentPlans) > 0 {
				printHeader("Recent plans")
				for _, p := range cfg.RecentPlans {
					printFile(p)
				}
			}
			return nil
		},
	}
}

func newConfigBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Export the configuration and custom profiles to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			profiles, err := project.LoadCustomProfiles(project.DefaultProfilesPath())
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}
			if err := project.ExportAllData(args[0], cfg, profiles); err != nil {
				return err
			}
			printSuccess("backup written")
			printFile(args[0])
			return nil
		},
	}
}

func newConfigRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the configuration and custom profiles from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := project.SaveCustomProfiles(project.DefaultProfilesPath(), backup.Profiles); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}
			printSuccess("restored backup from %s (created %s)", args[0], backup.CreatedAt)
			return nil
		},
	}
}
