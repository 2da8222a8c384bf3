// connect4 is a two-player Connect 4 game for the terminal.
//
// Usage:
//
//	connect4 play            - Play on this terminal (hot seat)
//	connect4 serve           - Start SSH server, one game per connection
//	connect4 check [file]    - Evaluate a board read from a file or stdin
//	connect4 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.connect4, ./configs)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
//
// Every flag can also be set through the environment with the CONNECT4_
// prefix, e.g. CONNECT4_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect 4 - Drop tokens, line up four",
	Long: `Connect 4 for two players sharing a keyboard.

Players take turns dropping tokens into a 7-column, 6-row board. The first
to line up four tokens horizontally, vertically or diagonally wins. A full
board without a line is a draw.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  check    - Evaluate a saved board
  config   - Print the effective configuration

Examples:
  connect4 play
  connect4 play --plain
  connect4 serve --ssh :2222
  connect4 check board.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "Path to config YAML")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}
