package core

import (
	"errors"
	"testing"
	"time"
)

// fakeClock advances only when told to, or when slept on.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// fakeSession records calls and burns a configurable amount of clock time
// per frame inside Render.
type fakeSession struct {
	clock     *fakeClock
	work      time.Duration
	quitAfter int
	renderErr error

	calls  []string
	frames int
	dts    []float64
	ticks  []int64
}

func (s *fakeSession) HandleInput() bool {
	s.calls = append(s.calls, "input")
	return s.quitAfter == 0 || s.frames < s.quitAfter
}

func (s *fakeSession) Advance(dt float64) {
	s.calls = append(s.calls, "advance")
	s.dts = append(s.dts, dt)
}

func (s *fakeSession) Animate(tickMs int64) {
	s.calls = append(s.calls, "animate")
	s.ticks = append(s.ticks, tickMs)
}

func (s *fakeSession) Render() error {
	s.calls = append(s.calls, "render")
	s.clock.now = s.clock.now.Add(s.work)
	s.frames++
	return s.renderErr
}

func TestTickOrderAndSleep(t *testing.T) {
	clock := newFakeClock()
	s := &fakeSession{clock: clock, work: 4 * time.Millisecond}
	p, err := NewPacer(s, 60, clock)
	if err != nil {
		t.Fatal(err)
	}

	if quit, err := p.Tick(); quit || err != nil {
		t.Fatalf("Tick = %v, %v", quit, err)
	}

	want := []string{"input", "advance", "animate", "render"}
	for i, c := range want {
		if s.calls[i] != c {
			t.Errorf("call %d = %s, want %s", i, s.calls[i], c)
		}
	}
	if s.dts[0] != 1.0/60 {
		t.Errorf("dt = %v, want 1/60", s.dts[0])
	}
	if len(clock.sleeps) != 1 || clock.sleeps[0] != p.Period()-4*time.Millisecond {
		t.Errorf("sleeps = %v, want [%v]", clock.sleeps, p.Period()-4*time.Millisecond)
	}
	if p.Period() != 16666666*time.Nanosecond {
		t.Errorf("period = %v", p.Period())
	}
}

func TestSlowFrameNoDebt(t *testing.T) {
	clock := newFakeClock()
	s := &fakeSession{clock: clock, work: 40 * time.Millisecond}
	p, _ := NewPacer(s, 60, clock)

	for i := 0; i < 3; i++ {
		if _, err := p.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("slow frames slept %v", clock.sleeps)
	}

	// Once frames are fast again, each sleeps only its own remainder.
	s.work = time.Millisecond
	p.Tick()
	if len(clock.sleeps) != 1 || clock.sleeps[0] != p.Period()-time.Millisecond {
		t.Errorf("sleeps = %v", clock.sleeps)
	}
	for _, dt := range s.dts {
		if dt != 1.0/60 {
			t.Errorf("dt = %v; the step must not follow wall time", dt)
		}
	}
}

func TestTickMsIsMonotonic(t *testing.T) {
	clock := newFakeClock()
	s := &fakeSession{clock: clock, work: time.Millisecond}
	p, _ := NewPacer(s, 60, clock)

	for i := 0; i < 10; i++ {
		p.Tick()
	}
	if s.ticks[0] != 0 {
		t.Errorf("first tick = %d, want 0", s.ticks[0])
	}
	for i := 1; i < len(s.ticks); i++ {
		if s.ticks[i] <= s.ticks[i-1] {
			t.Fatalf("ticks not increasing: %v", s.ticks)
		}
	}
	if s.ticks[9] != 149 {
		t.Errorf("tick at frame 9 = %d, want 149", s.ticks[9])
	}
}

func TestCountersLatchEverySecond(t *testing.T) {
	clock := newFakeClock()
	s := &fakeSession{clock: clock, work: time.Millisecond}
	p, _ := NewPacer(s, 60, clock)

	for i := 0; i < 59; i++ {
		p.Tick()
	}
	if got := p.Counters().ReportedFPS; got != 0 {
		t.Errorf("reported %d before a full second", got)
	}

	// 60 periods is just under a second in whole nanoseconds; two more
	// frames cross the boundary.
	p.Tick()
	p.Tick()
	c := p.Counters()
	if c.ReportedFPS != 60 {
		t.Errorf("ReportedFPS = %d, want 60", c.ReportedFPS)
	}
	if c.FramesInCurrentSecond != 1 {
		t.Errorf("FramesInCurrentSecond = %d, want 1", c.FramesInCurrentSecond)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	clock := newFakeClock()
	s := &fakeSession{clock: clock, quitAfter: 5}
	p, _ := NewPacer(s, 60, clock)

	if err := p.Run(); err != nil {
		t.Fatal(err)
	}
	if s.frames != 5 || p.Frames() != 5 {
		t.Errorf("frames = %d (pacer %d), want 5", s.frames, p.Frames())
	}
	if last := s.calls[len(s.calls)-1]; last != "input" {
		t.Errorf("last call = %s; nothing should run after a quit", last)
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	clock := newFakeClock()
	boom := errors.New("surface lost")
	s := &fakeSession{clock: clock, renderErr: boom}
	p, _ := NewPacer(s, 60, clock)

	if err := p.Run(); !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want %v", err, boom)
	}
	if s.frames != 1 {
		t.Errorf("frames = %d, want 1", s.frames)
	}
}

func TestNewPacerRejectsRate(t *testing.T) {
	if _, err := NewPacer(&fakeSession{}, 0, newFakeClock()); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("err = %v, want ErrInvalidRate", err)
	}
}
