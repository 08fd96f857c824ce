package system

// InputState holds the player's controls for one tick
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// InputSource supplies the controls at the start of each tick
type InputSource interface {
	Poll() InputState
}

// InputFunc adapts a function to InputSource
type InputFunc func() InputState

// Poll calls f
func (f InputFunc) Poll() InputState {
	return f()
}
