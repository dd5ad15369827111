package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// AnimationData is derived each frame from the actor's kinematics and the
// session clock; nothing reads it back into the simulation.
type AnimationData struct {
	Row     int
	Column  int
	Src     image.Rectangle // source rectangle in the sprite sheet
	Walking bool

	// EpochMs is the tick at which the current walk cycle started.
	// Columns count from here, so resetting it restarts the cycle at 0.
	EpochMs int64
	// Restart forces the next animation update to begin a new cycle.
	Restart bool
}

var Animation = donburi.NewComponentType[AnimationData]()
