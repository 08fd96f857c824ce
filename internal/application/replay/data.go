package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F    int  `json:"f"`              // Tick number
	U    bool `json:"u,omitempty"`    // Up
	D    bool `json:"d,omitempty"`    // Down
	L    bool `json:"l,omitempty"`    // Left
	R    bool `json:"r,omitempty"`    // Right
	Fire bool `json:"fire,omitempty"` // Fire
}

// ReplayData contains all data needed to replay a game session.
// Config names the game file the session was played with, if any.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
