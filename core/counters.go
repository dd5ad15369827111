package core

import "time"

// Counters tracks the achieved frame rate. It is observability only and never
// feeds back into the simulation.
type Counters struct {
	FramesInCurrentSecond uint32
	LastSecondBoundary    time.Time
	ReportedFPS           uint32
}

// frameDone records one finished frame at now. Once a full second has passed
// since the boundary, the running count is latched into ReportedFPS before
// this frame is counted. It reports whether a latch happened.
func (c *Counters) frameDone(now time.Time) (latched bool) {
	if now.Sub(c.LastSecondBoundary) >= time.Second {
		c.ReportedFPS = c.FramesInCurrentSecond
		c.FramesInCurrentSecond = 0
		c.LastSecondBoundary = now
		latched = true
	}
	c.FramesInCurrentSecond++
	return latched
}
