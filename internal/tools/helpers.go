// Package tools implements the weather MCP tool handlers.
//
// Each tool is a struct that receives its dependencies via the constructor
// and exposes:
// - Definition() returning the mcp.Tool schema
// - Handle() validating arguments and delegating to the weather client
//
// Invalid arguments are returned as registry.ErrInvalidArguments errors
// before any network call is made.
package tools

import (
	"context"
)

// Forecaster is the weather client as seen by the tools.
type Forecaster interface {
	Alerts(ctx context.Context, state string) string
	Forecast(ctx context.Context, lat, lon float64) string
}

// isStateCode reports whether s is exactly two ASCII letters.
func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
