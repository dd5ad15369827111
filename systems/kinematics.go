package systems

import (
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Bounds is the range the actor's centre may occupy on each axis.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ClampBounds returns the valid centre range for an actor with the given
// half extents on surface s.
func ClampBounds(s cfg.Surface, halfX, halfY float64) Bounds {
	return Bounds{
		MinX: halfX,
		MaxX: float64(s.Width) - halfX,
		MinY: halfY,
		MaxY: float64(s.Height) - halfY,
	}
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Integrate advances k by one fixed step of dt seconds. An axis whose
// candidate position falls outside b keeps its old position and has its
// velocity zeroed: leaving the surface is the only collision response, and
// doubles as a stop. It reports whether any axis was rejected.
func Integrate(k *components.KinematicData, b Bounds, dt float64) (blocked bool) {
	if k.VelocityX != 0 {
		x := k.X + k.VelocityX*dt
		if x < b.MinX || x > b.MaxX {
			k.VelocityX = 0
			blocked = true
		} else {
			k.X = x
		}
	}
	if k.VelocityY != 0 {
		y := k.Y + k.VelocityY*dt
		if y < b.MinY || y > b.MaxY {
			k.VelocityY = 0
			blocked = true
		} else {
			k.Y = y
		}
	}
	return blocked
}

// UpdateKinematics integrates the actor for one fixed step and keeps its
// collision box in sync. Must run AFTER the input system.
func UpdateKinematics(e *ecs.ECS) {
	b := ClampBounds(cfg.C.Surface, cfg.Actor.HalfExtentX, cfg.Actor.HalfExtentY)
	dt := StepDelta(e)

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		kin := components.Kinematic.Get(entry)
		if Integrate(kin, b, dt) {
			components.Animation.Get(entry).Restart = true
		}
		syncObject(entry, kin.X, kin.Y)
	})
}

// syncObject moves the entry's resolv object so it stays centred on (x, y).
func syncObject(entry *donburi.Entry, x, y float64) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

// StepDelta is the step size handed to the session by the loop. Before the
// first step it falls back to the configured rate.
func StepDelta(e *ecs.ECS) float64 {
	if sessionEntry, ok := tags.Session.First(e.World); ok {
		if dt := components.Session.Get(sessionEntry).Delta; dt > 0 {
			return dt
		}
	}
	return cfg.Tuning.FixedDelta()
}
