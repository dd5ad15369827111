package systems

import (
	"errors"
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/alice/config"
)

func TestSampleTargetRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	s := cfg.Surface{Width: 960, Height: 540}
	const margin = 64

	minX, maxX, minY, maxY := s.Width, 0, s.Height, 0
	for i := 0; i < 100000; i++ {
		x, y, err := SampleTarget(rng, s, margin)
		if err != nil {
			t.Fatal(err)
		}
		if x < margin || x >= s.Width-margin || y < margin || y >= s.Height-margin {
			t.Fatalf("sample %d: (%d, %d) outside margin", i, x, y)
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	// With this many samples both ends of each range are hit.
	if minX != 64 || maxX != 895 || minY != 64 || maxY != 475 {
		t.Errorf("observed x [%d, %d] y [%d, %d], want x [64, 895] y [64, 475]", minX, maxX, minY, maxY)
	}
}

func TestSampleTargetUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	s := cfg.Surface{Width: 960, Height: 540}

	const buckets, samples = 8, 80000
	var counts [buckets]int
	span := s.Width - 2*64
	for i := 0; i < samples; i++ {
		x, _, _ := SampleTarget(rng, s, 64)
		counts[(x-64)*buckets/span]++
	}
	for i, c := range counts {
		if c < samples/buckets*9/10 || c > samples/buckets*11/10 {
			t.Errorf("bucket %d has %d samples, want about %d", i, c, samples/buckets)
		}
	}
}

func TestSampleTargetSmallSurface(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	_, _, err := SampleTarget(rng, cfg.Surface{Width: 128, Height: 540}, 64)
	if !errors.Is(err, ErrSurfaceTooSmall) {
		t.Errorf("err = %v, want ErrSurfaceTooSmall", err)
	}

	x, _, err := SampleTarget(rng, cfg.Surface{Width: 129, Height: 540}, 64)
	if err != nil {
		t.Fatalf("129 wide: %v", err)
	}
	if x != 64 {
		t.Errorf("x = %d, want 64, the only valid column", x)
	}
}

func TestSampleTargetDeterministic(t *testing.T) {
	s := cfg.Surface{Width: 960, Height: 540}
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 10; i++ {
		ax, ay, _ := SampleTarget(a, s, 64)
		bx, by, _ := SampleTarget(b, s, 64)
		if ax != bx || ay != by {
			t.Fatalf("sample %d differs: (%d, %d) vs (%d, %d)", i, ax, ay, bx, by)
		}
	}
}
