// ABOUTME: CLI command listing the destination catalog
// ABOUTME: Shows budget level, daily cost and categories per destination
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewDestinationsCmd creates the destinations command.
func NewDestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List the destination catalog",
		RunE:  runDestinations,
	}
}

func runDestinations(cmd *cobra.Command, args []string) error {
	_, cat, _, err := buildService()
	if err != nil {
		return err
	}

	destinations := cat.All()

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(destinations, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBUDGET\tCOST/DAY\tCATEGORIES")
	for _, d := range destinations {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.0f\t%s\n",
			d.ID, d.Name, d.BudgetLevel, d.AvgCostPerDay, truncate(strings.Join(d.Categories, ", "), 40))
	}
	return w.Flush()
}
