// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on
// abstractions. No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"io"

	"github.com/HendryAvila/memdoc/internal/config"
	"github.com/HendryAvila/memdoc/internal/docs"
	"github.com/HendryAvila/memdoc/internal/logging"
	"github.com/HendryAvila/memdoc/internal/memtools"
	"github.com/HendryAvila/memdoc/internal/prompts"
	"github.com/HendryAvila/memdoc/internal/registry"
	"github.com/HendryAvila/memdoc/internal/resources"
	"github.com/HendryAvila/memdoc/internal/tools"
	"github.com/HendryAvila/memdoc/internal/weather"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// Name is the server name advertised during initialization.
const Name = "memory"

// Version is set at build time via ldflags.
var Version = "dev"

// Deps are the external collaborators of the tools. Memory may be nil when
// no memory tool is configured.
type Deps struct {
	Weather tools.Forecaster
	Memory  memtools.Memory
}

// New resolves every dependency from cfg and builds the MCP server.
//
// The returned cleanup function releases the document backend and must be
// called on shutdown (typically via defer). It is always non-nil.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*server.MCPServer, func(), error) {
	deps := Deps{
		Weather: weather.NewClient(weather.Config{
			BaseURL:   cfg.Weather.BaseURL,
			UserAgent: cfg.Weather.UserAgent,
			Timeout:   cfg.Weather.Timeout,
			RateLimit: cfg.Weather.RateLimit,
		}),
	}

	cleanup := noop
	if cfg.MemoryEnabled() {
		adapter, closeFn, err := OpenMemory(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		deps.Memory = adapter
		cleanup = func() {
			if err := closeFn(); err != nil {
				logger.WithError(err).Warn("closing document backend")
			}
		}
	}

	s, err := Build(cfg, logger, deps)
	if err != nil {
		cleanup()
		return nil, noop, err
	}
	return s, cleanup, nil
}

// OpenMemory connects to the configured document backend and returns the
// adapter over it together with a close function.
func OpenMemory(ctx context.Context, cfg *config.Config) (*docs.Adapter, func() error, error) {
	var (
		svc    docs.Service
		closer io.Closer
	)
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := docs.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite backend: %w", err)
		}
		svc, closer = s, s
	default:
		g, err := docs.NewGoogleService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening google docs backend: %w", err)
		}
		svc, closer = g, g
	}
	return docs.NewAdapter(svc, cfg.DocumentID), closer.Close, nil
}

// Build creates the MCP server around already constructed dependencies.
// Only the tools named in cfg.Tools are advertised.
func Build(cfg *config.Config, logger *logrus.Logger, deps Deps) (*server.MCPServer, error) {
	all := registry.New()
	all.Register(tools.NewAlertsTool(deps.Weather))
	all.Register(tools.NewForecastTool(deps.Weather))
	if deps.Memory != nil {
		all.Register(memtools.NewRememberTool(deps.Memory))
		all.Register(memtools.NewSuggestTopicTool(deps.Memory))
	}

	selected, err := all.Select(cfg.Tools)
	if err != nil {
		return nil, fmt.Errorf("selecting tools: %w", err)
	}

	// Middlewares run outermost first: logging sees the final result,
	// including recovered panics and argument errors.
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithToolHandlerMiddleware(logging.ToolMiddleware(logger)),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(registry.ArgumentErrors()),
		server.WithInstructions(serverInstructions),
	)

	selected.Install(s)

	if selected.Has(config.ToolRememberThis) {
		p := prompts.NewRememberPrompt()
		s.AddPrompt(p.Definition(), p.Handle)
	}
	if selected.Has(config.ToolSuggestTopic) {
		p := prompts.NewSuggestTopicPrompt()
		s.AddPrompt(p.Definition(), p.Handle)
	}

	if deps.Memory != nil && cfg.MemoryEnabled() {
		h := resources.NewHandler(deps.Memory)
		s.AddResource(h.DocumentResource(), h.HandleDocument)
	}

	logger.WithField("tools", selected.Names()).Info("tools registered")
	return s, nil
}

// Serve runs s on the stdio transport until ctx is cancelled or in closes.
func Serve(ctx context.Context, s *server.MCPServer, cfg *config.Config, logger *logrus.Logger, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	server.WithWorkerPoolSize(cfg.WorkerPoolSize)(stdio)
	stdio.SetErrorLogger(logging.StdLogger(logger))

	logger.WithFields(logrus.Fields{
		"version":     Version,
		"backend":     cfg.Backend,
		"worker_pool": cfg.WorkerPoolSize,
	}).Info("serving MCP on stdio")
	return stdio.Listen(ctx, in, out)
}

// noop is the cleanup used when no document backend was opened.
func noop() {}

var serverInstructions = heredoc.Doc(`
	You have access to a small memory server with two kinds of tools.

	Weather (United States only):
	- get-alerts takes a two-letter state code and lists active alerts.
	- get-forecast takes latitude and longitude and returns the forecast periods.

	Memory:
	- remember_this appends a narrative summary of the conversation to the memory document.
	  Use it when the user asks you to remember something or when a long conversation is winding down.
	- suggest_topic returns every stored summary with instructions for proposing what to talk about next.
	  Use it at the start of a conversation or when the user asks what to discuss.

	Memories are stored newest first and are never edited or deleted.
`)
