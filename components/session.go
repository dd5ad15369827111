package components

import "github.com/yohamta/donburi"

// SessionData is the singleton carrying loop-level state between systems.
type SessionData struct {
	Quit        bool
	TickMs      int64   // monotonic milliseconds since the session started
	Frame       uint64  // frames simulated so far
	Delta       float64 // seconds simulated by the current step
	ReportedFPS uint32
}

var Session = donburi.NewComponentType[SessionData]()
