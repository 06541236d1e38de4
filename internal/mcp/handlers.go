// ABOUTME: MCP tool handler implementations for the travel planner
// ABOUTME: Thin adapters from tool arguments to the travel service facade
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/creative-h/agentQ-Travel-Planner/internal/catalog"
	"github.com/creative-h/agentQ-Travel-Planner/internal/service"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	svc     *service.TravelService
	catalog *catalog.Catalog
}

// RecommendDestinations handles the recommend_destinations tool.
func (h *Handlers) RecommendDestinations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	budget, ok := extractNumber(args, "daily_budget")
	if !ok {
		return mcp.NewToolResultError("daily_budget argument is required and must be a number"), nil
	}

	interests := extractStringArray(args, "interests")
	visited := extractStringArray(args, "previously_visited")

	result := h.svc.GetRecommendations(ctx, interests, budget, visited)

	responseJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// FindSimilarDestinations handles the find_similar_destinations tool.
func (h *Handlers) FindSimilarDestinations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("destination_name")
	if err != nil {
		return mcp.NewToolResultError("destination_name argument is required and must be a string"), nil
	}

	result := h.svc.GetSimilarDestinations(ctx, name)

	responseJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListDestinations handles the list_destinations tool.
func (h *Handlers) ListDestinations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	destinations := h.catalog.All()

	response := map[string]interface{}{
		"success":      true,
		"count":        len(destinations),
		"destinations": destinations,
	}

	responseJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// extractNumber pulls a float argument out of the raw arguments map.
func extractNumber(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// extractStringArray pulls a string-array argument out of the raw
// arguments map, tolerating a missing key.
func extractStringArray(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
