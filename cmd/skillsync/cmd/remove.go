package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillstack/skillsync/internal/cli"
	"github.com/skillstack/skillsync/internal/syncer"
)

var (
	removeAll bool
	removeYes bool
)

var removeCmd = &cobra.Command{
	Use:   "remove [skill-name]",
	Short: "Remove installed skills",
	Long: `Remove one skill, or all installed skills, from the target's skills
directory.

Examples:
  skillsync remove git-formatter --target opencode
  skillsync remove --all --target antigravity --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeAll, "all", "a", false, "remove ALL installed skills")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !removeAll {
		return fmt.Errorf("please specify a skill name or use --all")
	}

	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	names := args
	if removeAll {
		if _, err := os.Stat(rc.res.DestRoot); os.IsNotExist(err) {
			fmt.Fprintln(out, "No skills to remove.")
			return nil
		}

		entries, err := rc.syncer.InstalledSkills()
		if err != nil {
			return err
		}
		names = names[:0]
		for _, e := range entries {
			names = append(names, e.Name)
		}
		fmt.Fprintf(out, "Found %d skills to remove.\n", len(names))

		if len(names) > 0 && !removeYes {
			prompt := fmt.Sprintf("Remove %d skills from %s?", len(names), rc.res.DestRoot)
			ok, err := cli.Confirm(out, cmd.InOrStdin(), prompt, false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}
	}

	outcomes := rc.syncer.Remove(names)

	rc.printSeparator(out)
	fmt.Fprintf(out, "Done. Removed %d/%d skills.\n", syncer.Succeeded(outcomes), len(outcomes))
	return nil
}
