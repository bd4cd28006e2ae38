// Package registry holds the tool descriptors advertised to the host and
// routes tool calls to their handlers by name.
//
// Argument validation is left to each handler; the registry only routes.
package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool is implemented by every tool handler: a static definition plus the
// function that serves calls to it.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type entry struct {
	def  mcp.Tool
	tool Tool
}

// Registry maps tool names to handlers, remembering registration order.
// It is built once at startup and read-only afterwards.
type Registry struct {
	order   []string
	entries map[string]entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a tool. Registering the same name twice replaces the
// handler but keeps the original position.
func (r *Registry) Register(t Tool) {
	def := t.Definition()
	if _, ok := r.entries[def.Name]; !ok {
		r.order = append(r.order, def.Name)
	}
	r.entries[def.Name] = entry{def: def, tool: t}
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Select returns a new Registry holding only the named tools, in this
// registry's order. An empty list selects everything.
func (r *Registry) Select(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.entries[n]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTool, n)
		}
		want[n] = true
	}

	out := New()
	for _, n := range r.order {
		if want[n] {
			out.Register(r.entries[n].tool)
		}
	}
	return out, nil
}

// ListTools returns every descriptor in registration order.
func (r *Registry) ListTools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.entries[n].def)
	}
	return out
}

// CallTool routes a call to the named handler. Unknown names fail with
// ErrUnknownTool and reach no handler.
func (r *Registry) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return e.tool.Handle(ctx, req)
}

// Install adds every tool to the MCP server.
func (r *Registry) Install(s *server.MCPServer) {
	for _, n := range r.order {
		e := r.entries[n]
		s.AddTool(e.def, e.tool.Handle)
	}
}
