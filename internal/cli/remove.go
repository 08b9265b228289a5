package cli

import (
	"fmt"

	"github.com/fastgen-labs/fastgen/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <service> [project-path]",
	Short: "Remove a service from a project",
	Long: `Remove a previously added service integration from a project.

Deletes the service's files, removes its dependency lines from
requirements.txt, and strips its wiring snippet from src/index.py.
Environment variables in .env are left in place.

Example:
  fastgen remove redis .`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	projectDir := "."
	if len(args) == 2 {
		projectDir = args[1]
	}

	def, err := service.Lookup(name)
	if err != nil {
		return err
	}

	result, err := service.Remove(def, projectDir)
	if err != nil {
		return fmt.Errorf("removing %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Removed %s from %s\n", name, projectDir)
	for _, f := range result.Removed {
		fmt.Fprintf(out, "  deleted %s\n", f)
	}
	for _, f := range result.Missing {
		fmt.Fprintf(out, "  %s was already gone\n", f)
	}
	for _, r := range result.Requirements {
		fmt.Fprintf(out, "  requirements.txt: removed %s\n", r)
	}

	if def.Env != "" {
		fmt.Fprintln(out, "\nNote: environment variables in .env were not removed; clean them up manually if needed.")
	}
	return nil
}
