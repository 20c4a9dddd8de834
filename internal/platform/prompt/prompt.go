// Package prompt runs a game of bowling over plain line-oriented I/O,
// for pipes and terminals without full-screen support.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bowling/internal/core"
	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
)

// Options configures the prompt loop.
type Options struct {
	Player string
	Logger *log.Logger // Nil discards logs
}

// Result summarizes a prompt session.
type Result struct {
	Score    int
	Complete bool // False when input ended before the last frame
}

// Run reads one roll per line from in and writes prompts and the scoreboard
// to out, until the game is complete or in is exhausted.
func Run(in io.Reader, out io.Writer, game *bowling.Game, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(bowling.BoardWidth, bowling.BoardHeight)
	var writeErr error
	game.OnFrameComplete(func(ev bowling.FrameEvent) {
		logger.Info("frame complete", "frame", ev.Frame, "score", ev.Score)
		if writeErr == nil {
			writeErr = WriteBoard(out, game, screen)
		}
	})

	if opts.Player != "" {
		fmt.Fprintf(out, "Bowling: %s\n", opts.Player)
	}

	scanner := bufio.NewScanner(in)
	for !game.IsComplete() {
		if _, err := fmt.Fprintf(out, "Frame %d, Roll %d: ", game.Frame(), game.SubRoll()); err != nil {
			return Result{Score: game.Score()}, fmt.Errorf("prompt: write: %w", err)
		}
		if !scanner.Scan() {
			break
		}

		token := strings.TrimSpace(scanner.Text())
		pos := game.Position()
		if err := game.RollToken(token); err != nil {
			logger.Warn("rejected roll", "input", token, "frame", pos.Frame, "roll", pos.Roll, "err", err)
			fmt.Fprintf(out, "Invalid input: %v. Try again.\n", err)
			continue
		}
		logger.Debug("roll", "input", token, "frame", pos.Frame, "roll", pos.Roll)

		if writeErr != nil {
			return Result{Score: game.Score()}, fmt.Errorf("prompt: write: %w", writeErr)
		}
		fmt.Fprintf(out, "Current Score: %d\n", game.Score())
	}

	if err := scanner.Err(); err != nil {
		return Result{Score: game.Score()}, fmt.Errorf("prompt: read: %w", err)
	}

	res := Result{Score: game.Score(), Complete: game.IsComplete()}
	if res.Complete {
		fmt.Fprintf(out, "Game Over! Final Score is: %d\n", res.Score)
	} else {
		fmt.Fprintf(out, "\nInput ended. Score so far: %d\n", res.Score)
	}
	return res, nil
}

// WriteBoard renders the scoreboard of game without colors and writes it
// to out, trailing blanks trimmed. screen must be at least BoardWidth wide.
func WriteBoard(out io.Writer, game *bowling.Game, screen *core.Screen) error {
	game.Render(screen, bowling.PlainTheme())

	var b strings.Builder
	for y := range screen.Height() {
		b.WriteString(strings.TrimRight(screen.Row(y), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())
	return err
}
