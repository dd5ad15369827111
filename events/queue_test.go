package events

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestQueueDrainPreservesOrder(t *testing.T) {
	q := NewQueue(KeyDown(ebiten.KeyRight), AxisMotion(0, AxisVertical, -32768))
	q.Push(KeyUp(ebiten.KeyRight))

	got := q.Drain(nil)
	want := []Kind{KindKeyDown, KindAxisMotion, KindKeyUp}
	if len(got) != len(want) {
		t.Fatalf("drained %d events, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}
	if again := q.Drain(nil); len(again) != 0 {
		t.Errorf("second drain returned %d events", len(again))
	}
}

func TestScriptReleasesOnFrame(t *testing.T) {
	s := NewScript(ScriptStep{Frame: 2, Events: []Event{Quit()}}).
		At(0, KeyDown(ebiten.KeyD)).
		At(2, KeyDown(ebiten.KeyS))

	var counts []int
	for i := 0; i < 4; i++ {
		counts = append(counts, len(s.Drain(nil)))
	}
	if counts[0] != 1 || counts[1] != 0 || counts[2] != 2 || counts[3] != 0 {
		t.Errorf("per-drain counts = %v, want [1 0 2 0]", counts)
	}
	if !s.Done() {
		t.Error("script should be done")
	}
}

func TestScriptSameFrameOrder(t *testing.T) {
	s := NewScript().At(0, Quit()).At(0, KeyDown(ebiten.KeyA))
	got := s.Drain(nil)
	if len(got) != 2 || got[0].Kind != KindQuit || got[1].Kind != KindKeyDown {
		t.Errorf("got %v, want quit then key down", got)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{-1, math.MinInt16},
		{-1.5, math.MinInt16},
		{1, math.MaxInt16},
		{2, math.MaxInt16},
		{0.5, 16384},
		{-0.5, -16384},
		{0.01, 328},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
