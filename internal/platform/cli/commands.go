// Package cli provides the line-oriented front end: one command per line on
// an input stream, a text board on the output stream. It is used when no
// terminal is attached or when plain output is requested.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 2

type command struct {
	name    string
	aliases []string
	action  core.Action
	help    string
}

var commands = []command{
	{"reset", []string{"r", "new"}, core.ActionReset, "start a new game"},
	{"scores", []string{"s"}, core.ActionScores, "show the win counters"},
	{"clear-scores", []string{"x"}, core.ActionResetScores, "zero the win counters"},
	{"help", []string{"h", "?"}, core.ActionHelp, "show this help"},
	{"quit", []string{"q", "exit"}, core.ActionQuit, "leave the game"},
}

// UnknownCommandError is returned by Parse for input that is neither a
// column number nor a known command.
type UnknownCommandError struct {
	Input string
	// Suggestion is the closest known command, or empty.
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q, did you mean %q?", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q, type help for a list", e.Input)
}

// Parse decodes one line of input. Columns are typed 1-based, optionally
// after "drop", and returned zero-based; their range is left to the session.
// Blank lines parse to ActionNone.
func Parse(line string) (core.Input, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return core.Input{Action: core.ActionNone}, nil
	}

	word := fields[0]
	if word == "drop" || word == "d" {
		if len(fields) < 2 {
			return core.Input{}, errors.New("drop needs a column number")
		}
		word = fields[1]
	}

	if n, err := strconv.Atoi(word); err == nil {
		return core.DropIn(n - 1), nil
	}

	for _, c := range commands {
		if word == c.name {
			return core.Input{Action: c.action}, nil
		}
		for _, a := range c.aliases {
			if word == a {
				return core.Input{Action: c.action}, nil
			}
		}
	}

	return core.Input{}, &UnknownCommandError{Input: word, Suggestion: suggest(word)}
}

// suggest returns the command name closest to word, if close enough.
func suggest(word string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range commands {
		if d := levenshtein.ComputeDistance(word, c.name); d < bestDist {
			best, bestDist = c.name, d
		}
	}
	return best
}

// helpText lists the commands.
func helpText() string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	fmt.Fprintf(&sb, "  %-14s %s\n", "1-7", "drop a token in that column")
	for _, c := range commands {
		name := c.name
		if len(c.aliases) > 0 {
			name += ", " + c.aliases[0]
		}
		fmt.Fprintf(&sb, "  %-14s %s\n", name, c.help)
	}
	return sb.String()
}
