// Package commands provides the CLI commands for codexcli.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/codexcli/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "codexcli",
	Short: "Codex CLI provider - stream completions from a local codex binary",
	Long: `codexcli adapts a locally-installed codex binary into a streaming
completion provider. Credentials are read from ~/.codex/config.toml;
provider settings (binary path, MCP servers) from codex.json.

Run 'codexcli run "your prompt"' for a one-shot completion.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for local development.
		_ = godotenv.Load()

		out := io.Writer(os.Stderr)
		if !printLogs {
			out = io.Discard
		}
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Output: out,
			Pretty: true,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("codexcli %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(authCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
