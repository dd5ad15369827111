package components

import (
	cfg "github.com/automoto/alice/config"
	"github.com/yohamta/donburi"
)

// KinematicData is the actor's authoritative movement state.
// X and Y are the actor's centre in surface coordinates (origin top-left).
// Each velocity component is exactly -speed, 0 or +speed.
type KinematicData struct {
	X, Y      float64
	VelocityX float64
	VelocityY float64
	Facing    cfg.Facing
}

// Moving reports whether either axis has a non-zero velocity.
func (k *KinematicData) Moving() bool {
	return k.VelocityX != 0 || k.VelocityY != 0
}

var Kinematic = donburi.NewComponentType[KinematicData]()
