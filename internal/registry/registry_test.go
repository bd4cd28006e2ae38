package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

// stubTool counts calls and echoes its name.
type stubTool struct {
	name  string
	calls int
	err   error
}

func (s *stubTool) Definition() mcp.Tool {
	return mcp.NewTool(s.name, mcp.WithDescription("stub "+s.name))
}

func (s *stubTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return mcp.NewToolResultText(s.name + ":" + req.GetString("arg", "")), nil
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func newStubRegistry() (*Registry, map[string]*stubTool) {
	r := New()
	stubs := map[string]*stubTool{}
	for _, n := range []string{"get-alerts", "get-forecast", "remember_this", "suggest_topic"} {
		s := &stubTool{name: n}
		stubs[n] = s
		r.Register(s)
	}
	return r, stubs
}

// ─── ListTools ───────────────────────────────────────────────────────────────

func TestListTools_RegistrationOrder(t *testing.T) {
	r, _ := newStubRegistry()

	tools := r.ListTools()
	want := []string{"get-alerts", "get-forecast", "remember_this", "suggest_topic"}
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}
	for i, tool := range tools {
		if tool.Name != want[i] {
			t.Errorf("tools[%d] = %q, want %q", i, tool.Name, want[i])
		}
	}
}

func TestRegister_ReplaceKeepsPosition(t *testing.T) {
	r, _ := newStubRegistry()
	replacement := &stubTool{name: "get-alerts"}
	r.Register(replacement)

	if names := r.Names(); len(names) != 4 || names[0] != "get-alerts" {
		t.Errorf("Names() = %v", names)
	}
	if _, err := r.CallTool(context.Background(), "get-alerts", nil); err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if replacement.calls != 1 {
		t.Error("replacement handler should serve the call")
	}
}

// ─── CallTool ────────────────────────────────────────────────────────────────

func TestCallTool_RoutesByName(t *testing.T) {
	r, stubs := newStubRegistry()

	res, err := r.CallTool(context.Background(), "remember_this", map[string]any{"arg": "x"})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if got := resultText(res); got != "remember_this:x" {
		t.Errorf("result = %q", got)
	}
	if stubs["remember_this"].calls != 1 {
		t.Error("remember_this should have been called once")
	}
	for name, s := range stubs {
		if name != "remember_this" && s.calls != 0 {
			t.Errorf("%s called %d times, want 0", name, s.calls)
		}
	}
}

func TestCallTool_UnknownToolHasNoSideEffects(t *testing.T) {
	r, stubs := newStubRegistry()

	_, err := r.CallTool(context.Background(), "get-weather", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("error = %v, want ErrUnknownTool", err)
	}
	for name, s := range stubs {
		if s.calls != 0 {
			t.Errorf("%s called %d times, want 0", name, s.calls)
		}
	}
}

func TestCallTool_PropagatesHandlerError(t *testing.T) {
	r := New()
	r.Register(&stubTool{name: "bad", err: InvalidArguments("Summary cannot be empty")})

	_, err := r.CallTool(context.Background(), "bad", nil)
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("error = %v, want ErrInvalidArguments", err)
	}
	if err.Error() != "Summary cannot be empty" {
		t.Errorf("message = %q", err.Error())
	}
}

// ─── Select ──────────────────────────────────────────────────────────────────

func TestSelect_ReducedToolSet(t *testing.T) {
	r, _ := newStubRegistry()

	sub, err := r.Select([]string{"remember_this"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if names := sub.Names(); len(names) != 1 || names[0] != "remember_this" {
		t.Errorf("Names() = %v, want [remember_this]", names)
	}
	if _, err := sub.CallTool(context.Background(), "get-alerts", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("deselected tool should be unknown, got %v", err)
	}
}

func TestSelect_KeepsRegistryOrder(t *testing.T) {
	r, _ := newStubRegistry()

	sub, err := r.Select([]string{"suggest_topic", "get-alerts"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	names := sub.Names()
	if len(names) != 2 || names[0] != "get-alerts" || names[1] != "suggest_topic" {
		t.Errorf("Names() = %v, want [get-alerts suggest_topic]", names)
	}
}

func TestSelect_EmptyMeansAll(t *testing.T) {
	r, _ := newStubRegistry()
	sub, err := r.Select(nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(sub.Names()) != 4 {
		t.Errorf("got %d tools, want 4", len(sub.Names()))
	}
}

func TestSelect_UnknownName(t *testing.T) {
	r, _ := newStubRegistry()
	if _, err := r.Select([]string{"remember_this", "nope"}); !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("error = %v, want ErrUnknownTool", err)
	}
}

// ─── ArgumentErrors middleware ───────────────────────────────────────────────

func TestArgumentErrors_MapsToErrorResult(t *testing.T) {
	h := ArgumentErrors()(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, InvalidArguments("State must be a two-letter code (e.g. CA, NY)")
	})

	res, err := h(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("middleware should absorb argument errors, got %v", err)
	}
	if !res.IsError {
		t.Error("result should be flagged as error")
	}
	if got := resultText(res); got != "State must be a two-letter code (e.g. CA, NY)" {
		t.Errorf("text = %q", got)
	}
}

func TestArgumentErrors_PassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	h := ArgumentErrors()(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, boom
	})

	if _, err := h(context.Background(), mcp.CallToolRequest{}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}
