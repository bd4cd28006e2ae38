package tools

import (
	"context"

	"github.com/HendryAvila/memdoc/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
)

// ForecastTool handles the get-forecast MCP tool.
type ForecastTool struct {
	weather Forecaster
}

// NewForecastTool creates a ForecastTool.
func NewForecastTool(weather Forecaster) *ForecastTool {
	return &ForecastTool{weather: weather}
}

// Definition returns the MCP tool definition for get-forecast.
func (t *ForecastTool) Definition() mcp.Tool {
	return mcp.NewTool("get-forecast",
		mcp.WithDescription("Get weather forecast for a location"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
		),
	)
}

// Handle processes the get-forecast tool call. Numeric strings are
// accepted; anything else is rejected before the weather API is touched.
func (t *ForecastTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, latErr := req.RequireFloat("latitude")
	lon, lonErr := req.RequireFloat("longitude")
	if latErr != nil || lonErr != nil {
		return nil, registry.InvalidArguments("Invalid coordinates. Please provide valid numbers for latitude and longitude.")
	}

	// Negated form so NaN is rejected too.
	if !(lat >= -90 && lat <= 90) || !(lon >= -180 && lon <= 180) {
		return nil, registry.InvalidArguments("Invalid coordinates. Latitude must be between -90 and 90, longitude between -180 and 180.")
	}

	return mcp.NewToolResultText(t.weather.Forecast(ctx, lat, lon)), nil
}
