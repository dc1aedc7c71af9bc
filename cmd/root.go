package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rspecmcp",
	Short: "Configurable RSpec runner MCP server",
	Long: `rspecmcp exposes a single MCP tool, run_test, that runs an RSpec
test file through a configurable runner command and returns the
captured output as a structured report. Clients connect over HTTP
using the SSE transport.`,
	// SilenceUsage prevents printing the usage message on errors we
	// handle ourselves (invalid flags, failed startup).
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rspecmcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
