// ABOUTME: Cobra root command and shared initialization for the travel CLI
// ABOUTME: Loads .env, configuration and logging before subcommands run
package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/creative-h/agentQ-Travel-Planner/internal/config"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
)

var (
	cfg          *config.Config
	outputFormat string
	quiet        bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "travel",
		Short: "Travel destination recommendations",
		Long: `Recommends travel destinations for a set of interests and a daily
budget, and finds destinations similar to a named one using semantic
embeddings (with a category-overlap fallback when OpenAI is not
configured).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env for API keys; absence is fine.
			_ = godotenv.Load()

			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			logCfg := logging.DefaultConfig()
			logCfg.Level = cfg.Logging.Level
			logCfg.Format = cfg.Logging.Format
			if quiet {
				logCfg.Level = "error"
			}
			logging.Init(logCfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress log output")

	root.AddCommand(NewRecommendCmd())
	root.AddCommand(NewSimilarCmd())
	root.AddCommand(NewDestinationsCmd())
	root.AddCommand(NewServeCmd())
	root.AddCommand(NewMCPCmd())
	root.AddCommand(NewVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
