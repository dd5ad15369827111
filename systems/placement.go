package systems

import (
	"errors"
	"fmt"
	"math/rand/v2"

	cfg "github.com/automoto/alice/config"
)

var ErrSurfaceTooSmall = errors.New("surface too small for target margin")

// SampleTarget draws a uniform position in [margin, dim-margin) on each axis,
// independently. Every axis must be at least 2*margin+1 long.
func SampleTarget(rng *rand.Rand, s cfg.Surface, margin int) (x, y int, err error) {
	if margin < 0 {
		return 0, 0, fmt.Errorf("negative margin %d", margin)
	}
	if s.Width < 2*margin+1 || s.Height < 2*margin+1 {
		return 0, 0, fmt.Errorf("%w: %dx%d with margin %d", ErrSurfaceTooSmall, s.Width, s.Height, margin)
	}
	x = margin + rng.IntN(s.Width-2*margin)
	y = margin + rng.IntN(s.Height-2*margin)
	return x, y, nil
}
