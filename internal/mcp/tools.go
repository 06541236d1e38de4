// ABOUTME: MCP tool definitions and registration for the travel planner
// ABOUTME: Tools mirror the travel service facade envelopes verbatim
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/service"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, svc *service.TravelService, cat *catalog.Catalog) *Handlers {
	handlers := &Handlers{
		svc:     svc,
		catalog: cat,
	}

	// 1. recommend_destinations - ranked recommendations for a user profile
	server.AddTool(mcp.Tool{
		Name:        "recommend_destinations",
		Description: "Recommend travel destinations matching the user's interests and daily budget, excluding previously visited places.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"interests": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Travel interests (e.g. 'beach', 'food', 'history'). With no interests, the most popular destinations are returned.",
				},
				"daily_budget": map[string]interface{}{
					"type":        "number",
					"description": "Daily budget in USD. Must be positive.",
				},
				"previously_visited": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Destination names already visited, excluded from results.",
				},
			},
			Required: []string{"daily_budget"},
		},
	}, handlers.RecommendDestinations)

	// 2. find_similar_destinations - nearest destinations to a named one
	server.AddTool(mcp.Tool{
		Name:        "find_similar_destinations",
		Description: "Find catalog destinations similar to a named destination, using semantic embeddings when available and category overlap otherwise.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"destination_name": map[string]interface{}{
					"type":        "string",
					"description": "Destination name to match (case-insensitive substring, e.g. 'Bali').",
				},
			},
			Required: []string{"destination_name"},
		},
	}, handlers.FindSimilarDestinations)

	// 3. list_destinations - the full catalog
	server.AddTool(mcp.Tool{
		Name:        "list_destinations",
		Description: "List every destination in the catalog with its categories, budget level and average daily cost.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListDestinations)

	return handlers
}
