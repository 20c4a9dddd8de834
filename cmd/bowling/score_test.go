package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bowling/internal/config"
	"github.com/vovakirdan/tui-bowling/internal/core"
	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
)

func TestScoreRolls(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{"partial game", []string{"10", "7", "3", "9", "0"}, "Score: 48 (next: frame 4, roll 1)\n"},
		{"perfect game", strings.Fields("X X X X X X X X X X X X"), "Final Score: 300\n"},
		{"symbols", []string{"3", "/", "4", "5"}, "Score: 23 (next: frame 3, roll 1)\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			if err := scoreRolls(&out, bowling.New(), tc.tokens, log.New(io.Discard)); err != nil {
				t.Fatalf("scoreRolls() failed: %v", err)
			}
			if !strings.HasSuffix(out.String(), tc.expected) {
				t.Errorf("output ends with %q, want %q", lastLine(out.String()), tc.expected)
			}
		})
	}
}

func TestScoreRollsStopsAtFirstError(t *testing.T) {
	var out strings.Builder
	err := scoreRolls(&out, bowling.New(), []string{"5", "6", "1"}, log.New(io.Discard))
	if !errors.Is(err, bowling.ErrFrameSumExceeded) {
		t.Fatalf("error = %v, want ErrFrameSumExceeded", err)
	}
	if !strings.HasPrefix(err.Error(), `roll 2 ("6")`) {
		t.Errorf("error = %q, want roll position", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, io.Discard); err == nil {
		t.Error("expected error for unknown level")
	}

	path := t.TempDir() + "/bowling.log"
	logger, closeLog, err := newLogger(config.LogConfig{Level: "debug", File: path}, io.Discard)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestThemeFor(t *testing.T) {
	plain := themeFor(config.DisplayConfig{Colors: false, StrikeColor: "red"})
	if plain != bowling.PlainTheme() {
		t.Errorf("colors off gave %+v", plain)
	}

	theme := themeFor(config.DisplayConfig{Colors: true, StrikeColor: "red", SpareColor: "blue"})
	if theme.Strike != core.ColorRed || theme.Spare != core.ColorBlue {
		t.Errorf("theme = %+v, want red strikes and blue spares", theme)
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	return lines[len(lines)-1]
}
