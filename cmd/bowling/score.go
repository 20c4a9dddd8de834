package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bowling/internal/core"
	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
	"github.com/vovakirdan/tui-bowling/internal/platform/prompt"
)

var scoreCmd = &cobra.Command{
	Use:   "score <roll>...",
	Short: "Score a sequence of rolls",
	Long: `Record each roll in order, then print the scoreboard and the score.
A partial game is scored as far as it goes.

Examples:
  bowling score 10 7 3 9 0
  bowling score X X X X X X X X X X X X
  bowling score 3 / 4 5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScore,
}

func runScore(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if err := scoreRolls(os.Stdout, newGame(cfg), args, logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}

// scoreRolls records tokens into game and writes the board and score to out.
// It stops at the first rejected token.
func scoreRolls(out io.Writer, game *bowling.Game, tokens []string, logger *log.Logger) error {
	for i, token := range tokens {
		if err := game.RollToken(token); err != nil {
			return fmt.Errorf("roll %d (%q): %w", i+1, token, err)
		}
		logger.Debug("roll", "input", token, "frame", game.Frame(), "score", game.Score())
	}

	screen := core.NewScreen(bowling.BoardWidth, bowling.BoardHeight)
	if err := prompt.WriteBoard(out, game, screen); err != nil {
		return err
	}

	if game.IsComplete() {
		_, err := fmt.Fprintf(out, "Final Score: %d\n", game.Score())
		return err
	}
	_, err := fmt.Fprintf(out, "Score: %d (next: frame %d, roll %d)\n", game.Score(), game.Frame(), game.SubRoll())
	return err
}
