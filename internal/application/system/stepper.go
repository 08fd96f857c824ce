package system

// FixedStep turns variable frame time into a whole number of fixed ticks
type FixedStep struct {
	Step     float64 // seconds per tick
	MaxSteps int     // ticks per Advance before time is dropped

	acc float64
}

// NewFixedStep creates a stepper running rate ticks per second
func NewFixedStep(rate int, maxSteps int) *FixedStep {
	return &FixedStep{
		Step:     1 / float64(rate),
		MaxSteps: maxSteps,
	}
}

// Advance adds elapsed seconds and returns how many ticks to run now.
// Time beyond MaxSteps ticks is discarded so a long stall can't snowball.
func (f *FixedStep) Advance(elapsed float64) int {
	f.acc += elapsed

	n := 0
	for f.acc >= f.Step-timerEpsilon && n < f.MaxSteps {
		f.acc -= f.Step
		n++
	}
	if n == f.MaxSteps && f.acc >= f.Step {
		f.acc = 0
	}
	if f.acc < 0 {
		f.acc = 0
	}
	return n
}

// Reset drops any accumulated time
func (f *FixedStep) Reset() {
	f.acc = 0
}
