package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillstack/skillsync/internal/config"
	"github.com/skillstack/skillsync/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List known target assistants",
	Long: `List the assistants skillsync can install skills for, with their
global destination directories and workspace support.

Additional targets can be defined in the config file under [targets.<name>].`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath(home)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg.RegisterTargets()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tNAME\tGLOBAL PATH\tWORKSPACE")
	for _, name := range target.ListKnownTargets() {
		tc := target.KnownTargets[name]
		workspace := "-"
		if tc.WorkspaceMarker != "" {
			workspace = fmt.Sprintf("<%s>/%s", tc.WorkspaceMarker, tc.WorkspaceSubpath)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, tc.Name, tc.GlobalPath, workspace)
	}
	return w.Flush()
}
