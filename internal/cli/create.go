package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/fastgen-labs/fastgen/internal/config"
	"github.com/fastgen-labs/fastgen/internal/scaffold"
	"github.com/spf13/cobra"
)

// Project names must be usable as a Python identifier after normalization.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

var createOutputDir string

func init() {
	createCmd.Flags().StringVarP(&createOutputDir, "output", "o", "", "Directory to create the project in (default: current directory)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new FastAPI project",
	Long: `Create a new FastAPI project from the built-in template tree.

The project name is substituted into every templated file. The target
directory must not already contain files.

Examples:
  fastgen create order-api
  fastgen create order-api --output ~/projects`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a letter and contain only letters, numbers, underscores, or hyphens", name)
	}

	outputRoot := createOutputDir
	if outputRoot == "" {
		config.Load()
		outputRoot = config.Get("create.output_dir")
	}
	if outputRoot == "" {
		outputRoot = "."
	}
	target := filepath.Join(outputRoot, name)

	data := scaffold.NewProjectData(name)
	result, err := scaffold.Generate(data, target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created project %s at %s/\n", name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", result.OutputDir)
	fmt.Fprintln(out, "  pip install -r requirements.txt")
	fmt.Fprintln(out, "  uvicorn src.index:app --reload")
	return nil
}
