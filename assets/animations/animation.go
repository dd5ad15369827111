package animations

// Cycle is a looping strip of equally timed frames.
type Cycle struct {
	Frames int   // columns in the strip
	StepMs int64 // how long each column is held
}

func NewCycle(frames, stepMs int) Cycle {
	return Cycle{Frames: frames, StepMs: int64(stepMs)}
}

// Frame returns the column shown elapsedMs after the cycle started.
// Negative elapsed time is treated as the first frame.
func (c Cycle) Frame(elapsedMs int64) int {
	if elapsedMs <= 0 || c.Frames <= 1 || c.StepMs <= 0 {
		return 0
	}
	return int((elapsedMs / c.StepMs) % int64(c.Frames))
}
