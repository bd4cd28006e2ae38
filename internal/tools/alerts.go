package tools

import (
	"context"
	"strings"

	"github.com/HendryAvila/memdoc/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
)

// AlertsTool handles the get-alerts MCP tool.
type AlertsTool struct {
	weather Forecaster
}

// NewAlertsTool creates an AlertsTool.
func NewAlertsTool(weather Forecaster) *AlertsTool {
	return &AlertsTool{weather: weather}
}

// Definition returns the MCP tool definition for get-alerts.
func (t *AlertsTool) Definition() mcp.Tool {
	return mcp.NewTool("get-alerts",
		mcp.WithDescription("Get weather alerts for a state"),
		mcp.WithString("state",
			mcp.Required(),
			mcp.Description("Two-letter state code (e.g. CA, NY)"),
		),
	)
}

// Handle processes the get-alerts tool call.
func (t *AlertsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := req.RequireString("state")
	if err != nil || state == "" {
		return nil, registry.InvalidArguments("Missing state parameter")
	}

	state = strings.ToUpper(state)
	if !isStateCode(state) {
		return nil, registry.InvalidArguments("State must be a two-letter code (e.g. CA, NY)")
	}

	return mcp.NewToolResultText(t.weather.Alerts(ctx, state)), nil
}
