package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/cli"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a hot-seat game: both players share this keyboard.

Controls:
  Left/Right, h/l, a/d  - Move the cursor
  Enter/Space/Down      - Drop at the cursor
  1-7                   - Drop in that column
  R                     - New game (scores are kept unless the config clears them)
  X                     - Clear scores
  S                     - Show scoreboard
  ?                     - Toggle help
  Q/Ctrl+C              - Quit

Without a terminal, or with --plain, the game reads one command per line:
a column number 1-7, reset, scores, clear-scores, help or quit.

Examples:
  connect4 play
  connect4 play --plain
  printf '1\n1\n2\n2\n3\n3\n4\n' | connect4 play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Bool("plain", false, "Use line mode even on a terminal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	interactive := !v.GetBool("plain") &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	// Logging to stderr would tear the alternate screen.
	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	s, err := loadSettings(cmd, fallback)
	if err != nil {
		return err
	}
	defer s.close()

	session := connect4.New(connect4.WithScorePolicy(s.cfg.ScorePolicy()))
	s.logger.Debug("starting game", "interactive", interactive, "scores", session.Policy())

	if interactive {
		screen := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			screen.ScreenW = w
			screen.ScreenH = h
		}
		return tui.Run(session, tui.Options{
			Draw:   s.cfg.DrawOptions(),
			Logger: s.logger,
			Screen: screen,
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &cli.Runner{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Session: session,
		Names:   s.cfg.Names(),
		Logger:  s.logger,
	}
	return runner.Run(ctx)
}
