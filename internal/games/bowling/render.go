package bowling

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-bowling/internal/core"
)

const (
	frameCellW = 6 // Inner width of frames 1-9 plus one border
	finalCellW = 8 // Inner width of the tenth frame plus one border
	boxHeight  = 5 // Top border, numbers, marks, totals, bottom border

	// BoardWidth and BoardHeight are the minimum screen size for Render.
	BoardWidth  = (Frames-1)*frameCellW + finalCellW + 1
	BoardHeight = boxHeight + 1 // Plus the status line
)

// Theme picks the colors used by Render.
type Theme struct {
	Strike  core.Color
	Spare   core.Color
	Current core.Color // Number of the frame being bowled
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Strike:  core.ColorBrightYellow,
		Spare:   core.ColorBrightCyan,
		Current: core.ColorBrightGreen,
	}
}

// PlainTheme returns a theme without colors.
func PlainTheme() Theme {
	return Theme{}
}

// Render draws the status line and the boxed scoreboard, centered horizontally.
func (g *Game) Render(dst *core.Screen, theme Theme) {
	dst.Clear()

	if dst.Width() < BoardWidth || dst.Height() < BoardHeight {
		g.renderTooSmall(dst)
		return
	}

	x0 := (dst.Width() - BoardWidth) / 2
	g.renderStatus(dst, x0)
	renderGrid(dst, x0, 1)

	for _, v := range g.Scoreboard() {
		r := frameRect(x0, 1, v.Frame)

		numColor := core.ColorDefault
		if v.Frame == g.pos.Frame {
			numColor = theme.Current
		}
		dst.DrawTextColored(r.X+2, r.Y+1, strconv.Itoa(v.Frame), numColor)

		for i, m := range v.Marks {
			color := core.ColorDefault
			switch m {
			case MarkStrike:
				color = theme.Strike
			case MarkSpare:
				color = theme.Spare
			}
			dst.DrawTextColored(r.X+2+2*i, r.Y+2, m, color)
		}

		if v.Scored {
			total := strconv.Itoa(v.Total)
			dst.DrawText(r.Right()-2-len(total), r.Y+3, total)
		}
	}
}

// renderStatus draws the position on the left and the score on the right.
func (g *Game) renderStatus(dst *core.Screen, x0 int) {
	status := fmt.Sprintf("Frame %d, Roll %d", g.pos.Frame, g.pos.Roll)
	if g.IsComplete() {
		status = "Game over"
	}
	dst.DrawText(x0, 0, status)

	score := fmt.Sprintf("Score: %d", g.Score())
	dst.DrawText(x0+BoardWidth-len(score), 0, score)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d", g.Score()))
}

// frameRect returns the box of a frame, borders included. Neighbouring
// boxes share their border column.
func frameRect(x0, y0, frame int) core.Rect {
	w := frameCellW + 1
	if frame == Frames {
		w = finalCellW + 1
	}
	return core.NewRect(x0+(frame-1)*frameCellW, y0, w, boxHeight)
}

// renderGrid draws the frame boxes with box-drawing characters.
func renderGrid(dst *core.Screen, x0, y0 int) {
	first := frameRect(x0, y0, 1)
	top, bottom := first.Y, first.Bottom()-1

	dst.DrawHLine(x0, top, BoardWidth, '─')
	dst.DrawHLine(x0, bottom, BoardWidth, '─')

	for f := 1; f <= Frames; f++ {
		r := frameRect(x0, y0, f)
		dst.DrawVLine(r.X, top+1, boxHeight-2, '│')

		if f == 1 {
			dst.Set(r.X, top, '┌')
			dst.Set(r.X, bottom, '└')
		} else {
			dst.Set(r.X, top, '┬')
			dst.Set(r.X, bottom, '┴')
		}
	}

	right := x0 + BoardWidth - 1
	dst.DrawVLine(right, top+1, boxHeight-2, '│')
	dst.Set(right, top, '┐')
	dst.Set(right, bottom, '┘')
}
