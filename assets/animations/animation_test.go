package animations

import "testing"

func TestCycleFrame(t *testing.T) {
	c := NewCycle(8, 100)
	tests := []struct {
		elapsed int64
		want    int
	}{
		{-50, 0},
		{0, 0},
		{100, 1},
		{701, 7},
		{800, 0},
		{12345, 3},
	}
	for _, tt := range tests {
		if got := c.Frame(tt.elapsed); got != tt.want {
			t.Errorf("Frame(%d) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestCycleDegenerate(t *testing.T) {
	for _, c := range []Cycle{NewCycle(1, 100), NewCycle(8, 0), NewCycle(0, 100)} {
		if got := c.Frame(5000); got != 0 {
			t.Errorf("%+v.Frame(5000) = %d, want 0", c, got)
		}
	}
}
