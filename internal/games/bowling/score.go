package bowling

// FrameScore is the contribution of one frame to the total.
type FrameScore struct {
	Frame    int  // Frame number (1-based)
	Points   int  // Pins plus any bonus available so far
	Resolved bool // Points are final: bonus rolls are in, or none are owed
}

// Score computes the score of a roll log with the current frame pointer.
// It works mid-game (a partial score) and on a finished game alike.
func Score(rolls []int, frame int) int {
	total := 0
	for _, f := range FrameScores(rolls, frame) {
		total += f.Points
	}
	return total
}

// FrameScores walks the log frame by frame, up to frame (capped at Frames),
// and returns what each frame scores so far. The walk stops early at a
// frame with only one roll recorded.
func FrameScores(rolls []int, frame int) []FrameScore {
	frames := min(frame, Frames)
	scores := make([]FrameScore, 0, frames)

	i := 0
	for f := 1; f <= frames && i < len(rolls); f++ {
		switch {
		case IsStrike(rolls, i):
			scores = append(scores, FrameScore{
				Frame:    f,
				Points:   Pins + rolls[i+1] + rolls[i+2],
				Resolved: true,
			})
			i++
		case IsSpare(rolls, i):
			scores = append(scores, FrameScore{
				Frame:    f,
				Points:   Pins + rolls[i+2],
				Resolved: true,
			})
			i += 2
		case i+1 < len(rolls):
			// An open frame, or a strike/spare still waiting for its bonus
			sum := rolls[i] + rolls[i+1]
			scores = append(scores, FrameScore{
				Frame:    f,
				Points:   sum,
				Resolved: rolls[i] < Pins && sum < Pins,
			})
			i += 2
		default:
			scores = append(scores, FrameScore{Frame: f, Points: rolls[i]})
			return scores
		}
	}
	return scores
}

// IsStrike reports whether the frame starting at index i is a strike whose
// two bonus rolls are recorded. A strike bonus needs rolls i+1 and i+2.
func IsStrike(rolls []int, i int) bool {
	if i < 0 || i+2 >= len(rolls) {
		return false
	}
	return rolls[i] == Pins
}

// IsSpare reports whether the frame starting at index i is a spare whose
// bonus roll is recorded. A spare bonus needs roll i+2.
func IsSpare(rolls []int, i int) bool {
	if i < 0 || i+2 >= len(rolls) {
		return false
	}
	return rolls[i] != Pins && rolls[i]+rolls[i+1] == Pins
}
