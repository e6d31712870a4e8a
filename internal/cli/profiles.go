package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/piwi3910/WaferDice/internal/project"
)

// newProfilesCmd creates the profiles command group for listing, sharing
// and importing process profiles.
func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage process profiles",
		Long: `Manage process profiles.

A process profile bundles a wafer spec and layout settings under a name,
so the conventions of a fab or process line can be applied with
--profile on the plan and compare commands.`,
	}

	cmd.AddCommand(newProfilesListCmd())
	cmd.AddCommand(newProfilesExportCmd())
	cmd.AddCommand(newProfilesImportCmd())

	return cmd
}

func newProfilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomProfiles(project.DefaultProfilesPath())
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}

			widths := []int{20, 8, 12, 10, 9, 7}
			printRow(widths, []string{"Name", "Source", "Exclusion", "Spacing", "Boundary", "Notch"}, true)
			for _, p := range append(model.BuiltInProfiles(), custom...) {
				source := "custom"
				if p.IsBuiltIn {
					source = "built-in"
				}
				notch := "no"
				if p.Wafer.Notch {
					notch = "yes"
				}
				printRow(widths, []string{
					p.Name,
					source,
					fmt.Sprintf("%.1f x%.2f", p.Wafer.EdgeExclusion, p.Wafer.ExclusionFactor),
					string(p.Settings.SpacingMode),
					string(p.Settings.BoundaryTest),
					notch,
				}, false)
			}
			return nil
		},
	}
}

func newProfilesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Export a profile to a JSON file for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomProfiles(project.DefaultProfilesPath())
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}
			profile, ok := model.FindProfile(custom, args[0])
			if !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			if err := project.ExportProfile(args[1], profile); err != nil {
				return fmt.Errorf("export profile: %w", err)
			}
			printSuccess("exported profile %q", profile.Name)
			printFile(args[1])
			return nil
		},
	}
}

func newProfilesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a profile from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := project.ImportProfile(args[0])
			if err != nil {
				return fmt.Errorf("import profile: %w", err)
			}

			path := project.DefaultProfilesPath()
			custom, err := project.LoadCustomProfiles(path)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}

			replaced := false
			for i, p := range custom {
				if p.Name == profile.Name {
					custom[i] = profile
					replaced = true
					break
				}
			}
			if !replaced {
				custom = append(custom, profile)
			}

			if err := project.SaveCustomProfiles(path, custom); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}
			if replaced {
				printSuccess("updated profile %q", profile.Name)
			} else {
				printSuccess("imported profile %q", profile.Name)
			}
			return nil
		},
	}
}
