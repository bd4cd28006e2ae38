package registry

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ArgumentErrors turns handler errors that match ErrInvalidArguments into
// error results, so the assistant sees the message as tool output instead
// of a protocol failure. Other errors pass through untouched.
func ArgumentErrors() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			res, err := next(ctx, req)
			if err != nil && errors.Is(err, ErrInvalidArguments) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return res, err
		}
	}
}
