package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/config"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/graph"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/mcp"
)

// serverOptions holds options for the server command.
type serverOptions struct {
	transport string
	envPath   string
}

// newServerCmd creates the server command.
func (a *App) newServerCmd() *cobra.Command {
	opts := &serverOptions{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the medical graph MCP server",
		Long: `Start the MCP server exposing the GraphDB tool and the domain prompt
resources. A transport must be selected explicitly; the server never
guesses.

Examples:
  # Serve over stdio (for subprocess clients)
  assistant server --transport stdio

  # Serve over SSE on the configured host/port
  assistant server --transport sse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServer(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", "", "Transport binding: stdio or sse (required)")
	cmd.Flags().StringVar(&opts.envPath, "env", config.DefaultEnvPath, "Path to the .env file")

	return cmd
}

// runServer starts the server on the selected transport.
func (a *App) runServer(ctx context.Context, opts *serverOptions) error {
	transport, err := parseTransportFlag(opts.transport)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.envPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateGraph(); err != nil {
		return err
	}

	logCfg := logging.ServerConfig()
	logCfg.Level = cfg.Log.Level
	logging.Init(logCfg)

	executor, err := graph.NewExecutor(ctx, cfg.Neo4j)
	if err != nil {
		return fmt.Errorf("connect to neo4j: %w", err)
	}
	defer func() { _ = executor.Close(ctx) }()

	srv := mcp.NewMedicalServer(mcp.MedicalServerConfig{
		Version:  Version,
		Executor: executor,
	})
	srv.Use(mcp.Recover(), mcp.RequestID())

	switch transport {
	case mcp.TransportStdio:
		return srv.ServeStdio(ctx)
	case mcp.TransportSSE:
		return srv.ServeHTTP(ctx, cfg.MCP.Addr())
	}
	return nil
}

// parseTransportFlag validates the shared --transport flag. An empty
// or unrecognized value is a startup error; nothing gets a default.
func parseTransportFlag(value string) (mcp.Transport, error) {
	if value == "" {
		return "", fmt.Errorf("--transport is required: one of [%s, %s]",
			mcp.TransportStdio, mcp.TransportSSE)
	}
	transport, err := mcp.ParseTransport(value)
	if err != nil {
		return "", fmt.Errorf("%w: one of [%s, %s]",
			err, mcp.TransportStdio, mcp.TransportSSE)
	}
	return transport, nil
}
