// Package mcp exposes the projection engine over the Model Context
// Protocol, for downstream presentation layers that consume the engine as
// pure functions.
package mcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
)

// Server wraps the MCP SDK server around the engine.
type Server struct {
	server *sdk.Server
	solver engine.SolverConfig
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "ailabor")
	Version string // Server version
	Solver  engine.SolverConfig
}

// NewServer creates a new MCP server with the engine tools registered.
func NewServer(cfg *Config) (*Server, error) {
	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		solver: cfg.Solver,
	}
	s.registerTools()

	return s, nil
}

// registerTools registers the three engine tools. The tool surface mirrors
// the engine boundary exactly: a projection run, a sensitivity scan, and
// the parameter schema.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "labor_run",
		Description: "Project the AI/human division of cognitive work year by year for a set of model parameters",
	}, s.handleRun)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "labor_sensitivity",
		Description: "Rank model parameters by the elasticity of target-year human hours to each one",
	}, s.handleSensitivity)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "labor_parameters",
		Description: "List the parameter schema: ids, labels, ranges, and default values",
	}, s.handleParameters)
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
