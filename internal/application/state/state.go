package state

// GameState is the phase the playing screen is in
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateWaveClear
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWaveClear:
		return "WaveClear"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating returns true for states in which the game world advances.
// The wave banner is shown over a running game.
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateWaveClear
}
