package bowling

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateComplete GameStateType = "complete"
)

// Snapshot captures the complete game state for tests and display.
type Snapshot struct {
	Frame int   // Current frame, Frames+1 when complete
	Roll  int   // Roll within the current frame
	Rolls []int // Recorded pins in order
	Score int
	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.IsComplete() {
		state = StateComplete
	}

	return Snapshot{
		Frame: g.pos.Frame,
		Roll:  g.pos.Roll,
		Rolls: g.Rolls(),
		Score: g.Score(),
		State: state,
	}
}
