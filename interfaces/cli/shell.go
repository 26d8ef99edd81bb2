package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/medgraph-assistant/application"
	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/config"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/llm"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/mcp"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/storage/memory"
)

// shellOptions holds options for the shell command.
type shellOptions struct {
	domain       string
	transport    string
	envPath      string
	settingsPath string
}

// newShellCmd creates the shell command.
func (a *App) newShellCmd() *cobra.Command {
	opts := &shellOptions{}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive question-answering shell",
		Long: `Open a read-evaluate-print loop against the medical graph. Each line
is answered by the agent using the selected domain prompt slice.

The shell exits on "exit", "quit", end-of-input, or an interrupt.

Examples:
  # Ask vitals questions over a spawned stdio server
  assistant shell --domain vitals --transport stdio

  # Connect to a running SSE server
  assistant shell --domain labs --transport sse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.domain, "domain", "schema", "Domain prompt slice")
	cmd.Flags().StringVar(&opts.transport, "transport", "", "Transport binding: stdio or sse (required)")
	cmd.Flags().StringVar(&opts.envPath, "env", config.DefaultEnvPath, "Path to the .env file")
	cmd.Flags().StringVar(&opts.settingsPath, "settings", "", "Optional YAML settings file")

	return cmd
}

// runShell wires the agent and drives the REPL.
func (a *App) runShell(ctx context.Context, opts *shellOptions) error {
	transport, err := parseTransportFlag(opts.transport)
	if err != nil {
		return err
	}

	key, err := prompt.ParseKey(opts.domain)
	if err != nil {
		return fmt.Errorf("%w: one of %v", err, prompt.Keys())
	}

	cfg, err := config.Load(opts.envPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateModel(); err != nil {
		return err
	}

	var settings *config.Settings
	if opts.settingsPath != "" {
		settings, err = config.LoadSettings(opts.settingsPath)
		if err != nil {
			return err
		}
		settings.Apply(cfg)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logging.Init(logCfg)

	client, offline := a.connectClient(ctx, transport, cfg, opts.envPath)
	defer func() {
		if client != nil {
			_ = client.Close()
		}
	}()

	var reader application.ResourceReader
	if !offline {
		reader = client
	}
	catalog := application.NewCatalog(reader)
	sliceText := catalog.Slice(ctx, key)

	registry := memory.NewToolRegistry()
	if err := registry.Register(mcp.GraphDBTool(client)); err != nil {
		return err
	}

	provider, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
	})
	if err != nil {
		return err
	}

	agentCfg := application.AgentConfig{
		Provider:  provider,
		Registry:  registry,
		SliceText: sliceText,
	}
	if settings != nil {
		agentCfg.MaxSteps = settings.MaxSteps
		if settings.ParseRetries != nil {
			agentCfg.ParseRetries = *settings.ParseRetries
			if agentCfg.ParseRetries == 0 {
				agentCfg.ParseRetries = -1
			}
		}
		agentCfg.ModelTimeout = settings.Timeouts.Model.Std()
		agentCfg.ToolTimeout = settings.Timeouts.Tool.Std()
	}
	agent, err := application.NewAgent(agentCfg)
	if err != nil {
		return err
	}

	return a.repl(ctx, agent, key)
}

// connectClient opens the MCP session. Connection failure is not fatal:
// the shell starts in offline mode on fallback prompts, and tool calls
// surface the transport error as observations.
func (a *App) connectClient(ctx context.Context, transport mcp.Transport, cfg *config.Config, envPath string) (*mcp.Client, bool) {
	var client *mcp.Client
	switch transport {
	case mcp.TransportStdio:
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}
		client = mcp.NewClient(
			mcp.WithClientName("medgraph-shell"),
			mcp.WithClientVersion(Version),
			mcp.WithServerCommand(exe, "server", "--transport", "stdio", "--env", envPath),
		)
	case mcp.TransportSSE:
		client = mcp.NewClient(
			mcp.WithClientName("medgraph-shell"),
			mcp.WithClientVersion(Version),
			mcp.WithSSEURL(cfg.MCP.BaseURL()),
		)
	}

	if err := client.Connect(ctx); err != nil {
		fmt.Fprintf(a.stderr, "warning: server unreachable, running on offline prompts: %v\n", err)
		logging.Warn().
			Add(logging.Transport(string(transport))).
			Add(logging.ErrorField(err)).
			Msg("connect failed, offline mode")
		return client, true
	}
	return client, false
}

// repl reads questions until quit, EOF, or interrupt.
func (a *App) repl(ctx context.Context, agent *application.Agent, key prompt.Key) error {
	fmt.Fprintf(a.stdout, "medgraph assistant (domain: %s). Type \"exit\" or \"quit\" to leave.\n", key)

	scanner := bufio.NewScanner(a.stdin)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.stdout, "interrupted")
			return nil
		default:
		}

		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout, "")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		answer, err := agent.Answer(ctx, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(a.stdout, "interrupted")
				return nil
			}
			fmt.Fprintf(a.stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(a.stdout, answer)
	}
}
