// Package resources implements MCP resource handlers for the memory document.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (memory://...) following MCP conventions.
package resources

import (
	"context"

	"github.com/HendryAvila/memdoc/internal/logging"
	"github.com/mark3labs/mcp-go/mcp"
)

// DocumentURI addresses the full memory document text.
const DocumentURI = "memory://document"

// Reader is the part of the document adapter resources need.
type Reader interface {
	ReadAll(ctx context.Context) (string, error)
}

// Handler manages memory resource endpoints.
type Handler struct {
	memory Reader
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(memory Reader) *Handler {
	return &Handler{memory: memory}
}

// DocumentResource returns the MCP resource definition for the memory document.
func (h *Handler) DocumentResource() mcp.Resource {
	return mcp.NewResource(
		DocumentURI,
		"Memory Document",
		mcp.WithResourceDescription("Every stored conversation summary, newest first"),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleDocument returns the document text. Read failures are reported in
// the resource body.
func (h *Handler) HandleDocument(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := h.memory.ReadAll(ctx)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("reading memory document for resource")
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return textResource(req.Params.URI, text), nil
}
