package tags

import "github.com/yohamta/donburi"

var (
	Actor   = donburi.NewTag().SetName("Actor")
	Target  = donburi.NewTag().SetName("Target")
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for the broadphase
const (
	ResolvActor  = "actor"
	ResolvTarget = "target"
)
