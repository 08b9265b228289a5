package cli

import (
	"fmt"

	"github.com/fastgen-labs/fastgen/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <service> [project-path]",
	Short: "Add a service to an existing project",
	Long: `Add a service integration to a generated project.

Copies the service's template files into the project, appends its dependency
lines to requirements.txt, inserts its wiring snippet into src/index.py, and
appends its configuration block to .env. Adding a service twice is a no-op.

Examples:
  fastgen add redis .
  fastgen add google-oauth ~/projects/order-api`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	projectDir := "."
	if len(args) == 2 {
		projectDir = args[1]
	}

	def, err := service.Lookup(name)
	if err != nil {
		return err
	}

	result, err := service.Add(def, projectDir)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added %s to %s\n", name, projectDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, r := range result.Requirements {
		fmt.Fprintf(out, "  requirements.txt: %s\n", r)
	}
	if result.EnvAppended {
		fmt.Fprintln(out, "  .env: configuration block appended")
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	if len(def.Notes) > 0 {
		fmt.Fprintln(out, "\nNext steps:")
		for i, note := range def.Notes {
			fmt.Fprintf(out, "  %d. %s\n", i+1, note)
		}
	}
	return nil
}
