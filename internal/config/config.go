// Package config provides YAML-based configuration loading for connect4:
// player names and colours, the score reset policy and the board theme.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Config contains everything a front end needs to set up a session.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Scores  ScoresConfig  `yaml:"scores"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// PlayersConfig names and colours the two players.
type PlayersConfig struct {
	Red    PlayerConfig `yaml:"red"`
	Yellow PlayerConfig `yaml:"yellow"`
}

// PlayerConfig defines how a player is displayed.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// ScoresConfig controls the session win counters.
type ScoresConfig struct {
	ResetPolicy string `yaml:"reset_policy"` // "preserve" or "clear"
}

// ThemeConfig colours the board frame, empty cells and the cursor.
type ThemeConfig struct {
	Board     string `yaml:"board"`
	Empty     string `yaml:"empty"`
	Highlight string `yaml:"highlight"`
}

// Validate checks names, colours and the reset policy.
func (c Config) Validate() error {
	var errs []error

	switch connect4.ScorePolicy(c.Scores.ResetPolicy) {
	case connect4.ScorePreserve, connect4.ScoreClear:
	default:
		errs = append(errs, fmt.Errorf("scores.reset_policy: unknown policy %q", c.Scores.ResetPolicy))
	}

	if c.Players.Red.Name == "" {
		errs = append(errs, errors.New("players.red.name: must not be empty"))
	}
	if c.Players.Yellow.Name == "" {
		errs = append(errs, errors.New("players.yellow.name: must not be empty"))
	}

	colors := []struct {
		field string
		value string
	}{
		{"players.red.color", c.Players.Red.Color},
		{"players.yellow.color", c.Players.Yellow.Color},
		{"theme.board", c.Theme.Board},
		{"theme.empty", c.Theme.Empty},
		{"theme.highlight", c.Theme.Highlight},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.field, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ScorePolicy returns the reset policy as a session option value.
// Unknown values fall back to preserving scores.
func (c Config) ScorePolicy() connect4.ScorePolicy {
	if connect4.ScorePolicy(c.Scores.ResetPolicy) == connect4.ScoreClear {
		return connect4.ScoreClear
	}
	return connect4.ScorePreserve
}

// Names returns the display names of both players.
func (c Config) Names() connect4.Names {
	return connect4.Names{Red: c.Players.Red.Name, Yellow: c.Players.Yellow.Name}
}

// DrawOptions maps the configured colours onto board drawing options.
// Colours that fail to parse keep their default.
func (c Config) DrawOptions() connect4.DrawOptions {
	opts := connect4.DefaultDrawOptions()
	opts.Names = c.Names()
	setColor(&opts.RedColor, c.Players.Red.Color)
	setColor(&opts.YellowColor, c.Players.Yellow.Color)
	setColor(&opts.BoardColor, c.Theme.Board)
	setColor(&opts.EmptyColor, c.Theme.Empty)
	setColor(&opts.HighlightColor, c.Theme.Highlight)
	return opts
}

func setColor(dst *core.Color, name string) {
	if c, err := core.ParseColor(name); err == nil {
		*dst = c
	}
}
