// ABOUTME: CLI command producing ranked destination recommendations
// ABOUTME: Text table or JSON output of the travel service envelope
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	recommendInterests []string
	recommendBudget    float64
	recommendVisited   []string
)

// NewRecommendCmd creates the recommend command.
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend travel destinations",
		Long: `Recommend destinations matching your interests and daily budget.

Previously visited destinations are excluded by exact name. With no
interests the most popular destinations are returned.

Examples:
  travel recommend --interests beach,food --budget 80
  travel recommend --interests culture --budget 120 --visited "Paris, France"
  travel recommend --budget 50 --format json`,
		RunE: runRecommend,
	}

	cmd.Flags().StringSliceVar(&recommendInterests, "interests", nil, "Travel interests (comma separated)")
	cmd.Flags().Float64Var(&recommendBudget, "budget", 0, "Daily budget in USD (required)")
	cmd.Flags().StringSliceVar(&recommendVisited, "visited", nil, "Previously visited destination names")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	svc, _, _, err := buildService()
	if err != nil {
		return err
	}

	result := svc.GetRecommendations(cmd.Context(), recommendInterests, recommendBudget, recommendVisited)

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
		fmt.Fprintln(cmd.OutOrStdout(), "No destinations matched your preferences.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tNAME\tCOST/DAY\tCATEGORIES")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "%.2f\t%s\t$%.0f\t%s\n",
			rec.Score, rec.Name, rec.AvgCostPerDay, truncate(strings.Join(rec.Categories, ", "), 40))
	}
	return w.Flush()
}
