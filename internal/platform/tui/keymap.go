package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Drop        key.Binding
	Column      key.Binding
	Reset       key.Binding
	ResetScores key.Binding
	Scores      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Column},
		{k.Reset, k.ResetScores, k.Scores},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " ", "down", "j"),
			key.WithHelp("enter/space", "drop"),
		),
		Column: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "drop in column"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		ResetScores: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear scores"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scoreboard"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Input translates a key message to a game input.
// Unbound keys map to ActionNone.
func (k KeyMap) Input(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Left):
		return core.Input{Action: core.ActionLeft}
	case key.Matches(msg, k.Right):
		return core.Input{Action: core.ActionRight}
	case key.Matches(msg, k.Drop):
		return core.Input{Action: core.ActionDrop}
	case key.Matches(msg, k.Column):
		return core.DropIn(int(msg.String()[0] - '1'))
	case key.Matches(msg, k.Reset):
		return core.Input{Action: core.ActionReset}
	case key.Matches(msg, k.ResetScores):
		return core.Input{Action: core.ActionResetScores}
	case key.Matches(msg, k.Scores):
		return core.Input{Action: core.ActionScores}
	case key.Matches(msg, k.Help):
		return core.Input{Action: core.ActionHelp}
	}
	return core.Input{Action: core.ActionNone}
}
