package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration connect4 would use, as YAML.

Search order:
  --config <path> (or CONNECT4_CONFIG)
  ~/.connect4/config.yaml
  ./configs/connect4.yaml
  built-in defaults

Redirect the output to a file to start customising:
  mkdir -p ~/.connect4 && connect4 config > ~/.connect4/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.close()
		return writeConfig(cmd.OutOrStdout(), s.cfg)
	},
}

func writeConfig(w io.Writer, cfg config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
