package bowling

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bowling/internal/core"
)

func TestRenderPerfectGame(t *testing.T) {
	g := New()
	rollMany(t, g, 12, 10)

	theme := DefaultTheme()
	screen := core.NewScreen(BoardWidth, BoardHeight)
	g.Render(screen, theme)

	status := screen.Row(0)
	if !strings.HasPrefix(status, "Game over") {
		t.Errorf("status line = %q, want prefix %q", status, "Game over")
	}
	if !strings.HasSuffix(status, "Score: 300") {
		t.Errorf("status line = %q, want suffix %q", status, "Score: 300")
	}

	// Box-drawing characters are multibyte, index by rune.
	top := []rune(screen.Row(1))
	if top[0] != '┌' || top[BoardWidth-1] != '┐' || top[frameCellW] != '┬' {
		t.Errorf("top border = %q", string(top))
	}

	marks := []rune(screen.Row(3))
	if marks[2] != 'X' {
		t.Errorf("first mark = %q, want 'X'", marks[2])
	}
	if c := screen.GetCell(2, 3); c.Color != theme.Strike {
		t.Errorf("strike color = %v, want %v", c.Color, theme.Strike)
	}
	if got := string(marks[56:61]); got != "X X X" {
		t.Errorf("tenth frame marks = %q, want %q", got, "X X X")
	}

	totals := []rune(screen.Row(4))
	if got := string(totals[3:5]); got != "30" {
		t.Errorf("first frame total = %q, want %q", got, "30")
	}
	if got := string(totals[58:61]); got != "300" {
		t.Errorf("tenth frame total = %q, want %q", got, "300")
	}
}

func TestRenderHighlightsCurrentFrame(t *testing.T) {
	g := New()
	rollAll(t, g, 3, 4)

	theme := DefaultTheme()
	screen := core.NewScreen(BoardWidth, BoardHeight)
	g.Render(screen, theme)

	// Frame 2 number sits two columns into its box.
	x := frameCellW + 2
	if c := screen.GetCell(x, 2); c.Rune != '2' || c.Color != theme.Current {
		t.Errorf("frame 2 number = %+v, want '2' in %v", c, theme.Current)
	}
	if c := screen.GetCell(2, 2); c.Color != core.ColorDefault {
		t.Errorf("frame 1 number color = %v, want default", c.Color)
	}

	if status := screen.Row(0); !strings.HasPrefix(status, "Frame 2, Roll 1") {
		t.Errorf("status line = %q", status)
	}
}

func TestRenderPlainTheme(t *testing.T) {
	g := New()
	rollAll(t, g, 10, 6, 4)

	screen := core.NewScreen(BoardWidth, BoardHeight)
	g.Render(screen, PlainTheme())

	for x := range BoardWidth {
		if c := screen.GetCell(x, 3); c.Color != core.ColorDefault {
			t.Fatalf("cell %d of the marks row is colored %v", x, c.Color)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	rollAll(t, g, 4, 5)

	screen := core.NewScreen(30, 4)
	g.Render(screen, DefaultTheme())

	out := screen.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", out)
	}
	if !strings.Contains(out, "Score: 9") {
		t.Errorf("expected score in too-small view, got:\n%s", out)
	}
}
