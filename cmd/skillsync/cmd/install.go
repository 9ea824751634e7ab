package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillstack/skillsync/internal/syncer"
)

var (
	installAll    bool
	installDryRun bool
)

var installCmd = &cobra.Command{
	Use:   "install [skill-name]",
	Short: "Install or update (overwrite) skills",
	Long: `Install one skill, or all available skills, into the target's skills
directory. Installing a skill that is already present replaces it
entirely with the current source version.

Examples:
  skillsync install git-formatter --target opencode
  skillsync install --all --target antigravity --scope workspace
  skillsync install git-formatter --target opencode --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installAll, "all", "a", false, "install ALL available skills")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show what would be installed without installing")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !installAll {
		return fmt.Errorf("please specify a skill name or use --all")
	}

	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	rc.syncer.DryRun = installDryRun
	out := cmd.OutOrStdout()

	names := args
	if installAll {
		names, err = rc.syncer.AvailableSkills()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Found %d skills to install.\n", len(names))
	}

	outcomes := rc.syncer.Install(names)

	rc.printSeparator(out)
	fmt.Fprintf(out, "Done. Installed %d/%d skills.\n", syncer.Succeeded(outcomes), len(outcomes))
	return nil
}
