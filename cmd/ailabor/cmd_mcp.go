package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/config"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/logging"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/mcp"
)

// newMCPServerCmd creates the 'mcp-server' command.
func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve the engine over the Model Context Protocol (stdio)",
		Long: `Starts an MCP server on stdio exposing three tools: labor_run,
labor_sensitivity, and labor_parameters. Presentation layers consume the
engine through these; they never mutate engine state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(appCfg.Logging.Level, os.Stderr)

			server, err := mcp.NewServer(&mcp.Config{
				Name:    "ailabor",
				Version: version,
				Solver:  solverFromConfig(appCfg),
			})
			if err != nil {
				return fmt.Errorf("creating MCP server: %w", err)
			}

			logger.Info("MCP server starting", "transport", "stdio")
			return server.Run(context.Background())
		},
	}
}
