// bowling is a ten-pin bowling score keeper for the terminal.
//
// Usage:
//
//	bowling play             - Play a game interactively
//	bowling score <roll>...  - Score a sequence of rolls
//	bowling config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.bowling/config.yaml)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bowling/internal/config"
	"github.com/vovakirdan/tui-bowling/internal/core"
	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bowling",
	Short: "Bowling - Keep score of a ten-pin game in your terminal",
	Long: `Bowling records the rolls of a single ten-pin bowling game, checks
them against the rules and keeps the score, strikes and spares included.

Available commands:
  play     - Play a game, one roll at a time
  score    - Score a list of rolls
  config   - Print the effective configuration

Examples:
  bowling play
  bowling play --plain
  bowling score X 7 / 9 0
  bowling config --config ./bowling.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	return cfg, source, nil
}

// newLogger builds the logger described by cfg. Logs go to cfg.File when
// set, otherwise to fallback. The returned close func is never nil.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	w, closeFn := fallback, func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(config.ExpandHome(cfg.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bowling",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newGame creates a game with the configured rules.
func newGame(cfg config.Config) *bowling.Game {
	return bowling.NewWithRules(bowling.Rules{
		StrictTenthFrame: cfg.Rules.StrictTenthFrame,
	})
}

// themeFor returns the scoreboard colors for the display config.
// Names were checked by config.Validate.
func themeFor(d config.DisplayConfig) bowling.Theme {
	if !d.Colors {
		return bowling.PlainTheme()
	}
	theme := bowling.DefaultTheme()
	if c, ok := core.ParseColor(d.StrikeColor); ok {
		theme.Strike = c
	}
	if c, ok := core.ParseColor(d.SpareColor); ok {
		theme.Spare = c
	}
	return theme
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
