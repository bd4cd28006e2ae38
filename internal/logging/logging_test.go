package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		level   logrus.Level
		wantErr bool
	}{
		{"defaults", Options{}, logrus.InfoLevel, false},
		{"debug json", Options{Level: "debug", Format: "json"}, logrus.DebugLevel, false},
		{"bad level", Options{Level: "loud"}, 0, true},
		{"bad format", Options{Format: "xml"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if logger.GetLevel() != tt.level {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.level)
			}
		})
	}
}

// syncBuffer guards a bytes.Buffer written from logrus's pipe goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStdLogger(t *testing.T) {
	buf := &syncBuffer{}
	logger, err := New(Options{Format: "json", Out: buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	StdLogger(logger).Print("stdio broke")

	// WriterLevel delivers through a pipe read by another goroutine.
	for i := 0; i < 100 && !strings.Contains(buf.String(), "stdio broke"); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("output = %q, want an error-level entry", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}

	logger, _ := logtest.NewNullLogger()
	entry := logger.WithField("k", "v")
	if got := FromContext(WithEntry(context.Background(), entry)); got != entry {
		t.Error("FromContext did not return the stored entry")
	}
}

func TestToolMiddleware(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var seen *logrus.Entry
	handler := ToolMiddleware(logger)(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		seen = FromContext(ctx)
		return mcp.NewToolResultText("ok"), nil
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = "get-alerts"
	if _, err := handler(context.Background(), req); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if seen == nil || seen.Data["tool"] != "get-alerts" {
		t.Fatalf("handler entry = %+v, want tool field", seen)
	}
	id, _ := seen.Data["request_id"].(string)
	if len(id) != 36 {
		t.Errorf("request_id = %q, want a uuid", id)
	}

	last := hook.LastEntry()
	if last == nil || last.Message != "tool call finished" || last.Data["request_id"] != id {
		t.Errorf("last entry = %+v", last)
	}
	if _, ok := last.Data["duration"]; !ok {
		t.Error("duration not logged")
	}
}

func TestToolMiddleware_Levels(t *testing.T) {
	tests := []struct {
		name  string
		res   *mcp.CallToolResult
		err   error
		level logrus.Level
	}{
		{"protocol error", nil, errors.New("boom"), logrus.WarnLevel},
		{"error result", mcp.NewToolResultError("bad input"), nil, logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			handler := ToolMiddleware(logger)(func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return tt.res, tt.err
			})
			_, _ = handler(context.Background(), mcp.CallToolRequest{})

			last := hook.LastEntry()
			if last == nil || last.Level != tt.level {
				t.Errorf("last entry = %+v, want level %v", last, tt.level)
			}
		})
	}
}
