package bowling

import (
	"fmt"
	"strconv"
	"strings"
)

// InputKind tags the variant held by an Input.
type InputKind int

const (
	InputPins   InputKind = iota + 1 // A plain pin count
	InputStrike                      // X: all ten pins on a fresh rack
	InputSpare                       // /: the pins left standing
)

// Input is one delivery as entered by the player, before it is resolved
// against the game. The zero value is not a valid input.
type Input struct {
	Kind InputKind
	Pins int // Only meaningful for InputPins
}

// PinCount returns a numeric input.
func PinCount(n int) Input {
	return Input{Kind: InputPins, Pins: n}
}

// Strike returns the strike symbol input.
func Strike() Input {
	return Input{Kind: InputStrike}
}

// Spare returns the spare symbol input.
func Spare() Input {
	return Input{Kind: InputSpare}
}

// ParseInput converts user text into an Input.
// Accepts an integer, "x"/"X" for a strike or "/" for a spare.
// Out-of-range integers parse fine; RecordRoll rejects them.
func ParseInput(s string) (Input, error) {
	token := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(token, "x"):
		return Strike(), nil
	case token == "/":
		return Spare(), nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q (enter a number between 0 and 10, / for a spare, or X for a strike)", ErrInvalidInput, token)
	}
	return PinCount(n), nil
}

// String returns the input the way a player would type it.
func (in Input) String() string {
	switch in.Kind {
	case InputPins:
		return strconv.Itoa(in.Pins)
	case InputStrike:
		return "X"
	case InputSpare:
		return "/"
	default:
		return "?"
	}
}
