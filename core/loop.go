// Package core runs the fixed-rate frame loop.
package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/alice/logging"
)

// Session is the per-frame work the Pacer drives, in call order.
type Session interface {
	// HandleInput drains pending device events. It returns false once a
	// quit has been requested.
	HandleInput() bool
	// Advance steps the simulation by dt seconds.
	Advance(dt float64)
	// Animate recomputes animation from the loop's monotonic clock.
	Animate(tickMs int64)
	// Render emits one draw request. An error ends the loop.
	Render() error
}

// Clock abstracts wall time so the loop can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

var ErrInvalidRate = errors.New("target rate must be positive")

// Pacer caps the loop at a target rate. A frame that finishes early sleeps
// for the rest of its period; a late frame starts the next one immediately
// and the lost time is never made up.
type Pacer struct {
	session Session
	clock   Clock

	period     time.Duration
	fixedDelta float64
	origin     time.Time

	counters Counters
	frames   uint64
}

func NewPacer(session Session, rate int, clock Clock) (*Pacer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()
	return &Pacer{
		session:    session,
		clock:      clock,
		period:     time.Second / time.Duration(rate),
		fixedDelta: 1.0 / float64(rate),
		origin:     now,
		counters:   Counters{LastSecondBoundary: now},
	}, nil
}

// Tick runs one frame. quit is true when the session asked to stop, in which
// case nothing after input handling ran.
func (p *Pacer) Tick() (quit bool, err error) {
	start := p.clock.Now()

	if !p.session.HandleInput() {
		return true, nil
	}
	p.session.Advance(p.fixedDelta)
	p.session.Animate(start.Sub(p.origin).Milliseconds())
	if err := p.session.Render(); err != nil {
		return false, fmt.Errorf("render frame %d: %w", p.frames, err)
	}
	p.frames++

	now := p.clock.Now()
	if p.counters.frameDone(now) {
		logging.L.Debug("frame rate", "fps", p.counters.ReportedFPS)
	}

	if elapsed := now.Sub(start); elapsed < p.period {
		p.clock.Sleep(p.period - elapsed)
	}
	return false, nil
}

// Run ticks until the session quits or a frame fails.
func (p *Pacer) Run() error {
	for {
		quit, err := p.Tick()
		if err != nil {
			return err
		}
		if quit {
			logging.L.Info("session ended", "frames", p.frames)
			return nil
		}
	}
}

// Counters returns a copy of the frame-rate counters.
func (p *Pacer) Counters() Counters {
	return p.counters
}

// Frames is the number of frames fully rendered so far.
func (p *Pacer) Frames() uint64 {
	return p.frames
}

func (p *Pacer) Period() time.Duration {
	return p.period
}
