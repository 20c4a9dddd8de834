// Package bowling implements a single game of ten-pin bowling: roll
// validation, frame advancement and scoring. It holds no I/O; the platform
// layer prompts for rolls and renders the scoreboard.
package bowling

import (
	"fmt"
)

const (
	Pins     = 10 // Pins in a full rack
	Frames   = 10 // Frames in a game
	MaxRolls = 21 // Nine two-roll frames plus three rolls in the tenth
)

// Roll is one recorded delivery, tagged with where it was thrown.
type Roll struct {
	Pins  int // Pins knocked down
	Frame int // Frame the roll belongs to (1-based)
	Index int // Roll within the frame (1-based)
}

// Rules holds the optional rule switches of a game.
type Rules struct {
	// StrictTenthFrame rejects tenth-frame rolls that knock down more pins
	// than are standing (e.g. 2 then 9). Frames 1-9 are always checked.
	// Without it a tenth frame such as 5, 6 sums past 10 and earns a bonus
	// roll, but is neither a strike nor a spare, so the bonus scores nothing.
	StrictTenthFrame bool
}

// DefaultRules returns the rules used by New.
func DefaultRules() Rules {
	return Rules{StrictTenthFrame: true}
}

// FrameEvent is delivered to frame listeners whenever a frame completes.
type FrameEvent struct {
	Frame    int  // The frame that just completed
	Score    int  // Game score after the frame
	Complete bool // Whether this frame ended the game
}

// Game is a single game of bowling. It is not safe for concurrent use.
type Game struct {
	rules     Rules
	rolls     []Roll
	pos       Position
	listeners []func(FrameEvent)
}

// New creates a game at frame 1 with the default rules.
func New() *Game {
	return NewWithRules(DefaultRules())
}

// NewWithRules creates a game at frame 1 with the given rules.
func NewWithRules(rules Rules) *Game {
	g := &Game{rules: rules}
	g.Reset()
	return g
}

// Reset clears the roll log and returns to frame 1.
// Frame listeners stay registered.
func (g *Game) Reset() {
	g.rolls = make([]Roll, 0, MaxRolls)
	g.pos = startPosition
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// OnFrameComplete registers fn to be called after each completed frame.
func (g *Game) OnFrameComplete(fn func(FrameEvent)) {
	g.listeners = append(g.listeners, fn)
}

// RecordRoll validates a roll and appends it to the log.
// On error nothing changes; the error wraps one of the package's Err values.
func (g *Game) RecordRoll(in Input) error {
	pins, err := g.resolve(in)
	if err != nil {
		return err
	}

	if pins < 0 || pins > Pins {
		return fmt.Errorf("%w: pins must be between 0 and %d, got %d", ErrPinCountOutOfRange, Pins, pins)
	}

	if len(g.rolls) >= MaxRolls {
		return fmt.Errorf("%w: cannot have more than %d rolls", ErrRollLimitExceeded, MaxRolls)
	}
	if g.pos.Complete() {
		return fmt.Errorf("%w: game is complete after %d rolls", ErrRollLimitExceeded, len(g.rolls))
	}

	if err := g.checkStanding(pins); err != nil {
		return err
	}

	g.rolls = append(g.rolls, Roll{Pins: pins, Frame: g.pos.Frame, Index: g.pos.Roll})

	prev := g.pos
	g.pos = advance(prev, step{
		pins:  pins,
		frame: g.frameRolls(prev.Frame),
		total: len(g.rolls),
	})

	if g.pos.Frame != prev.Frame {
		g.notify(FrameEvent{
			Frame:    prev.Frame,
			Score:    g.Score(),
			Complete: g.pos.Complete(),
		})
	}
	return nil
}

// Roll records a numeric roll.
func (g *Game) Roll(pins int) error {
	return g.RecordRoll(PinCount(pins))
}

// RollToken parses and records a roll typed by a player.
func (g *Game) RollToken(token string) error {
	in, err := ParseInput(token)
	if err != nil {
		return err
	}
	return g.RecordRoll(in)
}

// resolve turns an input into a pin count relative to the current frame.
func (g *Game) resolve(in Input) (int, error) {
	switch in.Kind {
	case InputPins:
		return in.Pins, nil
	case InputStrike:
		return Pins, nil
	case InputSpare:
		if g.standing() == Pins {
			return 0, fmt.Errorf("%w: spare not eligible on a fresh rack (frame %d, roll %d)", ErrIllegalSpare, g.pos.Frame, g.pos.Roll)
		}
		frame := g.frameRolls(g.pos.Frame)
		return Pins - frame[len(frame)-1], nil
	default:
		return 0, fmt.Errorf("%w: unknown input kind %d", ErrInvalidInput, in.Kind)
	}
}

// checkStanding rejects a roll that knocks down more pins than are standing.
func (g *Game) checkStanding(pins int) error {
	frame := g.frameRolls(g.pos.Frame)
	if len(frame) == 0 {
		return nil
	}
	if g.pos.Frame == Frames && !g.rules.StrictTenthFrame {
		return nil
	}

	if standing := g.standing(); pins > standing {
		return fmt.Errorf("%w: frame %d has %d pins standing, got %d", ErrFrameSumExceeded, g.pos.Frame, standing, pins)
	}
	return nil
}

// standing returns the pins left on the deck for the next roll.
// The tenth frame racks a fresh set after every strike or spare.
func (g *Game) standing() int {
	knocked := 0
	for _, p := range g.frameRolls(g.pos.Frame) {
		knocked += p
		if knocked >= Pins {
			knocked = 0
		}
	}
	return Pins - knocked
}

// frameRolls returns the pins recorded in the given frame.
func (g *Game) frameRolls(frame int) []int {
	var pins []int
	for i := len(g.rolls) - 1; i >= 0 && g.rolls[i].Frame >= frame; i-- {
		if g.rolls[i].Frame == frame {
			pins = append([]int{g.rolls[i].Pins}, pins...)
		}
	}
	return pins
}

func (g *Game) notify(ev FrameEvent) {
	for _, fn := range g.listeners {
		fn(ev)
	}
}

// Score returns the current score. It is the final score once the game is complete.
func (g *Game) Score() int {
	return Score(g.Rolls(), g.pos.Frame)
}

// Frame returns the current frame number; Frames+1 once the game is over.
func (g *Game) Frame() int {
	return g.pos.Frame
}

// SubRoll returns the 1-based roll within the current frame.
func (g *Game) SubRoll() int {
	return g.pos.Roll
}

// Position returns the current frame and roll.
func (g *Game) Position() Position {
	return g.pos
}

// IsComplete reports whether the game is over.
func (g *Game) IsComplete() bool {
	return g.pos.Complete()
}

// Len returns the number of recorded rolls.
func (g *Game) Len() int {
	return len(g.rolls)
}

// Rolls returns a copy of the recorded pin counts in order.
func (g *Game) Rolls() []int {
	pins := make([]int, len(g.rolls))
	for i, r := range g.rolls {
		pins[i] = r.Pins
	}
	return pins
}

// Log returns a copy of the tagged roll log.
func (g *Game) Log() []Roll {
	log := make([]Roll, len(g.rolls))
	copy(log, g.rolls)
	return log
}
