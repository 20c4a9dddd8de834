package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bowling/internal/games/bowling"
)

// Frame table column widths
const (
	colFrameW  = 5
	colRollsW  = 7
	colPointsW = 7
	colTotalW  = 7
)

// pendingMark follows the points of a frame still waiting for bonus rolls.
const pendingMark = "+"

// newFrameTable creates the per-frame breakdown table.
func newFrameTable() table.Model {
	columns := []table.Column{
		{Title: "Frame", Width: colFrameW},
		{Title: "Rolls", Width: colRollsW},
		{Title: "Points", Width: colPointsW},
		{Title: "Total", Width: colTotalW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(bowling.Frames),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// frameRows builds one table row per frame of g.
func frameRows(g *bowling.Game) []table.Row {
	points := make(map[int]bowling.FrameScore, bowling.Frames)
	for _, fs := range bowling.FrameScores(g.Rolls(), g.Frame()) {
		points[fs.Frame] = fs
	}

	board := g.Scoreboard()
	rows := make([]table.Row, len(board))
	for i, v := range board {
		row := table.Row{strconv.Itoa(v.Frame), rollsCell(v.Marks), "", ""}

		if fs, ok := points[v.Frame]; ok {
			row[2] = strconv.Itoa(fs.Points)
			if !fs.Resolved {
				row[2] += pendingMark
			}
		}
		if v.Scored {
			row[3] = strconv.Itoa(v.Total)
		}
		rows[i] = row
	}
	return rows
}

// rollsCell joins the thrown marks of a frame.
func rollsCell(marks []string) string {
	thrown := make([]string, 0, len(marks))
	for _, m := range marks {
		if m != "" {
			thrown = append(thrown, m)
		}
	}
	return strings.Join(thrown, " ")
}
