// Package memtools provides MCP tool handlers for the memory document.
//
// Each tool handler follows the same pattern as internal/tools:
// - A struct with dependencies (Memory) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Document service failures never escape as errors: they are logged once
// and returned as text so the assistant always gets a reply.
package memtools

import (
	"context"
)

// Memory is the document adapter as seen by the tools.
type Memory interface {
	AppendEntry(ctx context.Context, text string) error
	ReadAll(ctx context.Context) (string, error)
}
