package bowling

import "strconv"

// Mark tokens used on the scoreboard.
const (
	MarkStrike = "X"
	MarkSpare  = "/"
)

// FrameView is one frame of the scoreboard, ready for display.
type FrameView struct {
	Frame  int      // Frame number (1-based)
	Marks  []string // One token per roll slot; "" when not thrown yet
	Total  int      // Running total through this frame, valid when Scored
	Scored bool     // Whether the frame's score is final
}

// Scoreboard returns a read-only view of all ten frames.
// Running totals are filled in up to the last frame whose bonus is known.
func (g *Game) Scoreboard() []FrameView {
	views := make([]FrameView, Frames)
	for f := 1; f <= Frames; f++ {
		slots := 2
		if f == Frames {
			slots = 3
		}
		views[f-1] = FrameView{
			Frame: f,
			Marks: Marks(g.frameRolls(f), slots),
		}
	}

	running := 0
	for _, fs := range FrameScores(g.Rolls(), g.pos.Frame) {
		if !fs.Resolved {
			break
		}
		running += fs.Points
		views[fs.Frame-1].Total = running
		views[fs.Frame-1].Scored = true
	}
	return views
}

// Marks renders the rolls of one frame as display tokens: pin counts,
// X for a strike and / for a spare. The result has at least slots entries.
func Marks(pins []int, slots int) []string {
	marks := make([]string, max(slots, len(pins)))

	standing, fresh := Pins, true
	for i, p := range pins {
		switch {
		case p == standing && fresh:
			marks[i] = MarkStrike
		case p == standing:
			marks[i] = MarkSpare
		default:
			marks[i] = strconv.Itoa(p)
		}

		standing -= p
		fresh = false
		if standing <= 0 {
			standing, fresh = Pins, true
		}
	}
	return marks
}
