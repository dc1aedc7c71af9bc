package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rspecmcp/internal/config"
	"rspecmcp/internal/mcpserver"
	"rspecmcp/internal/runner"
	"rspecmcp/pkg/logging"
)

var (
	serveHost       string
	servePort       int
	serveRunnerCmd  string
	serveConfigFile string
	serveDebug      bool
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Starts the MCP server and serves the run_test tool over HTTP with SSE.

The test runner is launched per invocation from the configured base
command (default "bundle exec rspec"), with the requested test file
appended as the final argument. The runner's exit code, stdout and
stderr are returned to the caller as a formatted report.

Configuration is resolved from defaults, then an optional YAML config
file, then environment variables (MCP_RSPEC_HOSTNAME, MCP_RSPEC_PORT,
RSPEC_RUNNER_CMD), then flags.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&serveHost, "host", "H", config.DefaultHost, "Hostname to bind the SSE listener to")
	cmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to bind the SSE listener to")
	cmd.Flags().StringVarP(&serveRunnerCmd, "rspec-cmd", "c", config.DefaultRunnerCommand, "Base command used to launch the test runner")
	cmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable verbose logging")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment.
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("rspec-cmd") {
		cfg.RunnerCommand = serveRunnerCmd
	}
	if serveDebug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logging.LevelInfo
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	spec, err := config.SplitCommand(cfg.RunnerCommand)
	if err != nil {
		return err
	}

	engine := runner.NewEngine(spec, runner.NewExecExecutor())
	srv := mcpserver.New(mcpserver.Config{Host: cfg.Host, Port: cfg.Port}, engine)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := srv.Start(ctx); err != nil {
		return err
	}

	logging.Info("Serve", "SSE endpoint: %s/sse", srv.BaseURL())
	logging.Info("Serve", "Message endpoint: %s/message", srv.BaseURL())
	logging.Info("Serve", "Press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
		logging.Info("Serve", "Shutdown signal received")
	case <-ctx.Done():
	}

	return srv.Stop(context.Background())
}
