package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Runner plays one session over a pair of streams.
type Runner struct {
	In      io.Reader
	Out     io.Writer
	Session *connect4.Session
	// Renderer draws the board after every change. Defaults to a
	// connect4.TextRenderer using Names.
	Renderer connect4.Renderer
	Names    connect4.Names
	Logger   *log.Logger
}

// Run reads commands until quit, end of input or ctx is cancelled.
// Cancellation stops Run even while it waits for a line.
func (r *Runner) Run(ctx context.Context) error {
	if r.Renderer == nil {
		r.Renderer = connect4.TextRenderer{Names: r.Names}
	}
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}

	r.printBoard()
	r.prompt()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errCh := readLines(ctx, r.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.Out)
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-errCh; err != nil {
					return fmt.Errorf("cli: read input: %w", err)
				}
				fmt.Fprintln(r.Out)
				return nil
			}
			if quit := r.Execute(line); quit {
				return nil
			}
			r.prompt()
		}
	}
}

// readLines scans in on its own goroutine. The line channel is closed at end
// of input, then the scanner error (or nil) is sent on the error channel.
// The goroutine exits after its next line once ctx is done; a read that
// never returns keeps it blocked.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				close(lines)
				return
			}
		}
		close(lines)
		errCh <- scanner.Err()
	}()

	return lines, errCh
}

// Execute runs one line of input and reports whether the player quit.
func (r *Runner) Execute(line string) (quit bool) {
	in, err := Parse(line)
	if err != nil {
		r.Logger.Debug("bad input", "line", line, "error", err)
		fmt.Fprintln(r.Out, err)
		return false
	}

	switch in.Action {
	case core.ActionColumn:
		r.drop(in.Column)

	case core.ActionReset:
		r.Session.Reset()
		r.Logger.Debug("new game")
		r.printBoard()

	case core.ActionScores:
		fmt.Fprintln(r.Out, connect4.ScoreLine(r.Session.Snapshot(), r.Names))

	case core.ActionResetScores:
		r.Session.ResetScores()
		r.Logger.Debug("scores cleared")
		fmt.Fprintln(r.Out, "Scores cleared.")
		fmt.Fprintln(r.Out, connect4.ScoreLine(r.Session.Snapshot(), r.Names))

	case core.ActionHelp:
		fmt.Fprint(r.Out, helpText())

	case core.ActionQuit:
		fmt.Fprintln(r.Out, "Bye!")
		return true
	}
	return false
}

func (r *Runner) drop(col int) {
	res, err := r.Session.Drop(col)
	if err != nil {
		r.Logger.Debug("drop rejected", "column", col+1, "error", err)
		fmt.Fprintln(r.Out, connect4.RejectionMessage(err, col))
		return
	}

	r.Logger.Debug("drop", "player", res.Player, "row", res.Row, "column", res.Column+1, "status", res.Status)
	r.printBoard()
	if res.Status.IsTerminal() {
		red, yellow := r.Session.Scores()
		r.Logger.Info("game over", "status", res.Status, "red", red, "yellow", yellow)
		fmt.Fprintln(r.Out, "Type reset for a new game.")
	}
}

func (r *Runner) printBoard() {
	fmt.Fprint(r.Out, r.Renderer.Render(r.Session.Snapshot()))
}

func (r *Runner) prompt() {
	snap := r.Session.Snapshot()
	if snap.Status.IsTerminal() {
		fmt.Fprint(r.Out, "> ")
		return
	}
	fmt.Fprintf(r.Out, "%s (1-%d)> ", r.Names.Of(snap.Current), connect4.Columns)
}
