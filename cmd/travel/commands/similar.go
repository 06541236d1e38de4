// ABOUTME: CLI command finding destinations similar to a named one
// ABOUTME: Embedding-based when OpenAI is configured, category overlap otherwise
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSimilarCmd creates the similar command.
func NewSimilarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similar <destination>",
		Short: "Find similar destinations",
		Long: `Find catalog destinations similar to the named one.

The name matches case-insensitively as a substring, so "bali" finds
"Bali, Indonesia". An unknown name yields an empty result.

Examples:
  travel similar Bali
  travel similar "New York" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSimilar,
	}
}

func runSimilar(cmd *cobra.Command, args []string) error {
	svc, _, _, err := buildService()
	if err != nil {
		return err
	}

	result := svc.GetSimilarDestinations(cmd.Context(), args[0])

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	if result.Count == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No destinations similar to %q found.\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SIMILARITY\tNAME\tCATEGORIES")
	for _, dest := range result.SimilarDestinations {
		fmt.Fprintf(w, "%.2f\t%s\t%s\n",
			dest.SimilarityScore, dest.Name, truncate(strings.Join(dest.Categories, ", "), 40))
	}
	return w.Flush()
}
