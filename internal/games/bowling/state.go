package bowling

// Position is the place in the game where the next roll lands.
// Frame runs 1-10; a Frame past Frames means the game is over.
type Position struct {
	Frame int // Current frame (1-based)
	Roll  int // Roll within the frame (1-based)
}

// Complete reports whether the position is past the last frame.
func (p Position) Complete() bool {
	return p.Frame > Frames
}

var (
	startPosition = Position{Frame: 1, Roll: 1}
	gameOver      = Position{Frame: Frames + 1, Roll: 1}
)

// phase names the states of the frame machine.
type phase int

const (
	phaseOpenFirst   phase = iota // Frames 1-9, first roll
	phaseOpenSecond               // Frames 1-9, second roll
	phaseFinalFirst               // Frame 10, first roll
	phaseFinalSecond              // Frame 10, second roll
	phaseFinalBonus               // Frame 10, bonus roll
	phaseComplete                 // No more rolls
)

// phaseOf maps a position onto its phase.
func phaseOf(p Position) phase {
	switch {
	case p.Complete():
		return phaseComplete
	case p.Frame < Frames && p.Roll == 1:
		return phaseOpenFirst
	case p.Frame < Frames:
		return phaseOpenSecond
	case p.Roll == 1:
		return phaseFinalFirst
	case p.Roll == 2:
		return phaseFinalSecond
	default:
		return phaseFinalBonus
	}
}

// step describes the log right after a roll was appended.
type step struct {
	pins  int   // Pins of the roll just recorded
	frame []int // Rolls of the current frame, including this one
	total int   // Rolls recorded in the game
}

// transitions is the frame machine: the next position for each phase.
var transitions = [...]func(Position, step) Position{
	phaseOpenFirst: func(p Position, s step) Position {
		if s.pins == Pins {
			return Position{Frame: p.Frame + 1, Roll: 1}
		}
		return Position{Frame: p.Frame, Roll: 2}
	},
	phaseOpenSecond: func(p Position, _ step) Position {
		return Position{Frame: p.Frame + 1, Roll: 1}
	},
	phaseFinalFirst: func(p Position, s step) Position {
		if s.total >= MaxRolls {
			return gameOver
		}
		return Position{Frame: p.Frame, Roll: 2}
	},
	phaseFinalSecond: func(p Position, s step) Position {
		// The bonus roll is earned only by a strike or spare
		if s.frame[0]+s.frame[1] < Pins || s.total >= MaxRolls {
			return gameOver
		}
		return Position{Frame: p.Frame, Roll: 3}
	},
	phaseFinalBonus: func(Position, step) Position {
		return gameOver
	},
	phaseComplete: func(p Position, _ step) Position {
		return p
	},
}

// advance returns the position after a roll described by s.
func advance(p Position, s step) Position {
	return transitions[phaseOf(p)](p, s)
}
