package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			Red:    PlayerConfig{Name: "Red", Color: "bright-red"},
			Yellow: PlayerConfig{Name: "Yellow", Color: "bright-yellow"},
		},
		Scores: ScoresConfig{
			ResetPolicy: string(connect4.ScorePreserve),
		},
		Theme: ThemeConfig{
			Board:     "blue",
			Empty:     "gray",
			Highlight: "bright-white",
		},
	}
}
