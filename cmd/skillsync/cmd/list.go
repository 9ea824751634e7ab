package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List the skills installed in the target's skills directory.

When a skill ships a SKILL.md with YAML frontmatter, its description is
shown next to the name. Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(rc.res.DestRoot); os.IsNotExist(err) {
		if listJSON {
			fmt.Fprintln(out, "[]")
			return nil
		}
		fmt.Fprintln(out, "No skills installed yet (destination directory does not exist).")
		return nil
	}

	entries, err := rc.syncer.InstalledSkills()
	if err != nil {
		return err
	}

	if listJSON {
		if len(entries) == 0 {
			fmt.Fprintln(out, "[]")
			return nil
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No skills installed.")
		return nil
	}

	fmt.Fprintf(out, "Installed Skills (%d):\n", len(entries))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "  - %s\t%s\n", e.Name, e.Description)
	}
	return w.Flush()
}
