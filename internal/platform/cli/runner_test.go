package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		expected core.Input
	}{
		{"", core.Input{Action: core.ActionNone}},
		{"   ", core.Input{Action: core.ActionNone}},
		{"1", core.DropIn(0)},
		{" 7 ", core.DropIn(6)},
		{"drop 4", core.DropIn(3)},
		{"0", core.DropIn(-1)},
		{"12", core.DropIn(11)},
		{"reset", core.Input{Action: core.ActionReset}},
		{"R", core.Input{Action: core.ActionReset}},
		{"scores", core.Input{Action: core.ActionScores}},
		{"clear-scores", core.Input{Action: core.ActionResetScores}},
		{"x", core.Input{Action: core.ActionResetScores}},
		{"help", core.Input{Action: core.ActionHelp}},
		{"?", core.Input{Action: core.ActionHelp}},
		{"quit", core.Input{Action: core.ActionQuit}},
		{"exit", core.Input{Action: core.ActionQuit}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, err := Parse(tc.line)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.line, err)
			}
			if got != tc.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tc.line, got, tc.expected)
			}
		})
	}
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		line       string
		suggestion string
	}{
		{"rest", "reset"},
		{"scroes", "scores"},
		{"quti", "quit"},
		{"hlep", "help"},
		{"banana", ""},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			_, err := Parse(tc.line)
			var unknown *UnknownCommandError
			if !errors.As(err, &unknown) {
				t.Fatalf("Parse(%q) error = %v, expected UnknownCommandError", tc.line, err)
			}
			if unknown.Suggestion != tc.suggestion {
				t.Errorf("Suggestion = %q, expected %q", unknown.Suggestion, tc.suggestion)
			}
		})
	}

	if _, err := Parse("drop"); err == nil {
		t.Error("drop without a column should fail")
	}
}

func run(t *testing.T, session *connect4.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := &Runner{
		In:      strings.NewReader(input),
		Out:     &out,
		Session: session,
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return out.String()
}

func TestRunnerPlaysToWin(t *testing.T) {
	session := connect4.New()
	out := run(t, session, "1\n1\n2\n2\n3\n3\n4\n")

	if session.Status() != connect4.Won(connect4.Red) {
		t.Errorf("Status() = %v, expected won(Red)", session.Status())
	}
	for _, want := range []string{"Red Goes First!", "Red (1-7)> ", "Yellow (1-7)> ", "|r r r r . . .|", "Winner: Red", "Red 1 : 0 Yellow", "Type reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunnerRejectedMoves(t *testing.T) {
	session := connect4.New()
	out := run(t, session, "9\n1\n1\n1\n1\n1\n1\n1\n")

	if !strings.Contains(out, "Column 9 does not exist") {
		t.Errorf("invalid column not reported:\n%s", out)
	}
	if !strings.Contains(out, "Column 1 is full") {
		t.Errorf("full column not reported:\n%s", out)
	}
	if session.Moves() != 6 {
		t.Errorf("Moves() = %d, expected 6", session.Moves())
	}
}

func TestRunnerResetAndScores(t *testing.T) {
	session := connect4.New()
	out := run(t, session, "1\n1\n2\n2\n3\n3\n4\n5\nreset\nscores\nclear-scores\n")

	if !strings.Contains(out, "Game over, press r for a new game") {
		t.Errorf("drop after win not rejected:\n%s", out)
	}
	if session.Moves() != 0 || session.Status() != connect4.InProgress() {
		t.Error("reset should start a new game")
	}
	if !strings.Contains(out, "Red 1 : 0 Yellow") || !strings.Contains(out, "Scores cleared.") {
		t.Errorf("score commands missing from output:\n%s", out)
	}
	if red, yellow := session.Scores(); red != 0 || yellow != 0 {
		t.Errorf("Scores() = %d, %d after clear-scores", red, yellow)
	}
}

func TestRunnerQuitStopsReading(t *testing.T) {
	session := connect4.New()
	out := run(t, session, "help\nquit\n4\n")

	if !strings.Contains(out, "Commands:") || !strings.Contains(out, "clear-scores") {
		t.Errorf("help not printed:\n%s", out)
	}
	if !strings.Contains(out, "Bye!") {
		t.Error("quit should say goodbye")
	}
	if session.Moves() != 0 {
		t.Error("input after quit must be ignored")
	}
}

func TestRunnerUnknownCommand(t *testing.T) {
	out := run(t, connect4.New(), "rset\n")

	if !strings.Contains(out, `did you mean "reset"?`) {
		t.Errorf("suggestion missing:\n%s", out)
	}
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := connect4.New()
	r := &Runner{
		In:      strings.NewReader("1\n2\n"),
		Out:     &bytes.Buffer{},
		Session: session,
	}
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if session.Moves() != 0 {
		t.Error("no lines should run after cancellation")
	}
}

func TestRunnerCancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		In:      pr,
		Out:     &bytes.Buffer{},
		Session: connect4.New(),
	}

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() still blocked after cancellation")
	}
}

func TestRunnerCustomNames(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		In:      strings.NewReader("4\n"),
		Out:     &out,
		Session: connect4.New(),
		Names:   connect4.Names{Red: "Alice", Yellow: "Bob"},
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Alice Goes First!") || !strings.Contains(out.String(), "Bob's Turn") {
		t.Errorf("names not used:\n%s", out.String())
	}
}
