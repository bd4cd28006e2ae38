package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ToolMiddleware tags every tool call with a request ID, makes the entry
// available to handlers through the context and logs the outcome.
func ToolMiddleware(logger *logrus.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			entry := logger.WithFields(logrus.Fields{
				"request_id": uuid.NewString(),
				"tool":       req.Params.Name,
			})
			ctx = WithEntry(ctx, entry)

			start := time.Now()
			entry.Debug("tool call started")

			res, err := next(ctx, req)

			entry = entry.WithField("duration", time.Since(start))
			switch {
			case err != nil:
				entry.WithError(err).Warn("tool call failed")
			case res != nil && res.IsError:
				entry.Info("tool call returned an error result")
			default:
				entry.Debug("tool call finished")
			}
			return res, err
		}
	}
}
