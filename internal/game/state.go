// Package game provides the tick driver and the main game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal mode where creatures act every tick.
	StatePlaying State = iota
	// StatePaused stops ticking until the player resumes.
	StatePaused
	// StateOver is entered once the digger is gone.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
