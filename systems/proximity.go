package systems

import (
	"math"

	"github.com/automoto/alice/components"
	"github.com/automoto/alice/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateProximity measures how close the actor is to the target. The result
// is informational only; reaching the target has no consequence.
func UpdateProximity(e *ecs.ECS) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	actor, ok := tags.Actor.First(e.World)
	if !ok {
		return
	}
	target, ok := tags.Target.First(e.World)
	if !ok {
		return
	}

	kin := components.Kinematic.Get(actor)
	td := components.Target.Get(target)

	prox := components.Proximity.Get(sessionEntry)
	prox.Distance = Distance(
		dmath.Vec2{X: kin.X, Y: kin.Y},
		dmath.Vec2{X: float64(td.X), Y: float64(td.Y)},
	)
	prox.Overlapping = overlapsTarget(components.Object.Get(actor).Object)
}

// Distance is the straight-line distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// overlapsTarget narrows the broadphase result to an exact box overlap.
func overlapsTarget(obj *resolv.Object) bool {
	if obj == nil {
		return false
	}
	check := obj.Check(0, 0, tags.ResolvTarget)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tags.ResolvTarget) {
		if boxesOverlap(obj, other) {
			return true
		}
	}
	return false
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
