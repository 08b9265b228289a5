package cli

import (
	"fmt"

	"github.com/fastgen-labs/fastgen/internal/pyruntime"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for generated projects",
	Long: `Run diagnostic checks on the tools a generated project depends on:
python3, pip3, uvicorn, and git.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reports := pyruntime.RunAll(pyruntime.DefaultProbes())

	missingRequired := false
	for _, r := range reports {
		switch {
		case !r.Found:
			fmt.Fprintf(out, "  [missing] %s (%s not on PATH)\n", r.Probe.Name, r.Probe.Command)
			if r.Probe.Required {
				missingRequired = true
			}
		case !r.Satisfied:
			fmt.Fprintf(out, "  [outdated] %s %s (need >= %s)\n", r.Probe.Name, r.Version, r.Probe.MinVersion)
		case r.Version != "":
			fmt.Fprintf(out, "  [ok] %s %s (%s)\n", r.Probe.Name, r.Version, r.Path)
		default:
			fmt.Fprintf(out, "  [ok] %s (%s)\n", r.Probe.Name, r.Path)
		}
	}

	if missingRequired {
		return fmt.Errorf("required tools are missing; install them before running generated projects")
	}

	fmt.Fprintln(out, "\nEnvironment looks good.")
	return nil
}
