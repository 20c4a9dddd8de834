package bowling

import "errors"

// Roll validation errors. RecordRoll wraps one of these with details, so
// callers should match with errors.Is. None of them is fatal: the game is
// left untouched and the caller may simply try another roll.
var (
	// ErrInvalidInput means the input is neither a pin count nor a strike or spare symbol.
	ErrInvalidInput = errors.New("bowling: invalid input")

	// ErrIllegalSpare means a spare was entered on a fresh rack. That covers
	// the first roll of any frame and also the tenth-frame roll right after a
	// strike or a spare, where "/" is rejected rather than resolved to the
	// pins of the previous roll.
	ErrIllegalSpare = errors.New("bowling: illegal spare")

	// ErrPinCountOutOfRange means the pin count is outside 0..10.
	ErrPinCountOutOfRange = errors.New("bowling: pin count out of range")

	// ErrRollLimitExceeded means the game cannot take another roll, either
	// because 21 rolls are recorded or because the game is already complete.
	ErrRollLimitExceeded = errors.New("bowling: roll limit exceeded")

	// ErrFrameSumExceeded means the roll knocks down more pins than are standing.
	ErrFrameSumExceeded = errors.New("bowling: frame sum exceeded")
)
