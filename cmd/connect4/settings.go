package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

// envPrefix prefixes environment overrides, e.g. CONNECT4_LOG_LEVEL.
const envPrefix = "CONNECT4"

// settings holds everything a command needs once flags, environment and the
// config file have been merged.
type settings struct {
	v      *viper.Viper
	cfg    config.Config
	logger *log.Logger
	close  func()
}

// newViper binds the command's flags with environment overrides.
// Flags set on the command line win over the environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// loadSettings resolves flags, loads the config file and opens the logger.
// Logs go to --log-file when set and to fallback otherwise.
func loadSettings(cmd *cobra.Command, fallback io.Writer) (*settings, error) {
	v, err := newViper(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(v.GetString("log-level"), v.GetString("log-file"), fallback)
	if err != nil {
		return nil, err
	}

	return &settings{v: v, cfg: cfg, logger: logger, close: closeLog}, nil
}

// newLogger creates the process logger.
func newLogger(level, path string, fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w, closeFn := fallback, func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
