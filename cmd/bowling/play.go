package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
	"github.com/vovakirdan/tui-bowling/internal/platform/prompt"
	"github.com/vovakirdan/tui-bowling/internal/platform/tui"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of bowling and enter each roll as it is thrown.

Rolls:
  0-10       - Pins knocked down
  X          - Strike (first roll of a rack)
  /          - Spare (clears the pins left standing)

Controls:
  Enter      - Record the roll
  Tab        - Show/hide the frame table
  Ctrl+R     - New game
  ?          - More help
  Esc/Ctrl+C - Quit

Without a terminal, or with --plain, rolls are read one per line.

Examples:
  bowling play
  bowling play --plain
  printf 'X\nX\nX\n' | bowling play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line prompt instead of the full-screen UI")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	interactive := !flagPlain &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	// The UI owns the terminal, so its logs only go to a file
	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(cfg.Log, fallback)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game := newGame(cfg)
	logger.Info("starting game", "player", cfg.Player.Name, "interactive", interactive, "strict_tenth", cfg.Rules.StrictTenthFrame)

	if !interactive {
		res, err := prompt.Run(os.Stdin, os.Stdout, game, prompt.Options{
			Player: cfg.Player.Name,
			Logger: logger,
		})
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		logger.Info("session ended", "score", res.Score, "complete", res.Complete)
		return
	}

	if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w < bowling.BoardWidth {
		logger.Warn("terminal narrower than the scoreboard", "width", w, "need", bowling.BoardWidth)
	}

	runErr := tui.Run(game, tui.Options{
		Player:    cfg.Player.Name,
		Theme:     themeFor(cfg.Display),
		ShowTable: cfg.Display.ShowTable,
		Flash:     cfg.Display.FlashDuration(),
		Logger:    logger,
	})
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
	logger.Info("session ended", "score", game.Score(), "complete", game.IsComplete())
}
