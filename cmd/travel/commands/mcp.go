// ABOUTME: CLI command running the MCP tool server on stdio
// ABOUTME: Exposes recommend/similar/list tools to MCP clients
package commands

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	travelmcp "github.com/creative-h/agentQ-Travel-Planner/internal/mcp"
	"github.com/creative-h/agentQ-Travel-Planner/internal/logging"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP tool server on stdio",
		Long: `Run a Model Context Protocol server exposing the recommendation
core as tools over stdio:

  recommend_destinations     ranked recommendations for interests and budget
  find_similar_destinations  destinations similar to a named one
  list_destinations          the full catalog`,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	svc, cat, cache, err := buildService()
	if err != nil {
		return err
	}
	go cache.Populate(cmd.Context())

	server := mcpserver.NewMCPServer(
		"agentQ Travel Planner",
		versionInfo.Version,
	)
	travelmcp.RegisterTools(server, svc, cat)

	mcpLog := logging.Component("mcp")
	mcpLog.Info().Msg("MCP server starting on stdio")
	return mcpserver.ServeStdio(server)
}
