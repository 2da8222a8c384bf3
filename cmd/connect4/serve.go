package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the connect4 SSH server",
	Long: `Start an SSH server that lets people connect and play.

Each SSH connection gets its own hot-seat game: the two players share the
connecting terminal. Games on different connections never interact, and
scores last only as long as the connection.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.connect4/host_key

Examples:
  connect4 serve                           # Listen on :23235 with auto-generated key
  connect4 serve --ssh :2222               # Listen on port 2222
  connect4 serve --host-key ./my_host_key  # Use specific host key
  CONNECT4_SSH=:2222 connect4 serve        # Address from the environment

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().Int("idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	cfg := tui.SSHServerConfig{
		Address:     s.v.GetString("ssh"),
		HostKeyPath: s.v.GetString("host-key"),
		IdleTimeout: time.Duration(s.v.GetInt("idle-timeout")) * time.Minute,
		Draw:        s.cfg.DrawOptions(),
		ScorePolicy: s.cfg.ScorePolicy(),
		Logger:      s.logger.WithPrefix("connect4-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting connect4 SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
