package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fastgen-labs/fastgen/internal/service"
	"github.com/spf13/cobra"
)

var listServicesJSON bool

func init() {
	listServicesCmd.Flags().BoolVar(&listServicesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listServicesCmd)
}

var listServicesCmd = &cobra.Command{
	Use:   "list-services",
	Short: "List available services",
	Long:  `List the services that can be added to a project with "fastgen add".`,
	Args:  cobra.NoArgs,
	RunE:  runListServices,
}

// serviceEntry represents a registered service for display.
type serviceEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func runListServices(cmd *cobra.Command, args []string) error {
	defs, err := service.List()
	if err != nil {
		return fmt.Errorf("loading service registry: %w", err)
	}

	entries := make([]serviceEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, serviceEntry{Name: def.Name, Description: def.Description})
	}

	if listServicesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
	}
	return w.Flush()
}
