package systems

import (
	"testing"

	"github.com/automoto/alice/archetypes"
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a minimal session: a 960x540 surface with the actor at the
// centre and the target at (tx, ty).
type testWorld struct {
	ecs     *ecs.ECS
	actor   *donburi.Entry
	target  *donburi.Entry
	session *donburi.Entry
}

func newTestWorld(t *testing.T, tx, ty int) *testWorld {
	t.Helper()

	prevSurface, prevDebug := cfg.C.Surface, cfg.Debug
	cfg.C.Surface = cfg.Surface{Width: 960, Height: 540}
	t.Cleanup(func() {
		cfg.C.Surface = prevSurface
		cfg.Debug = prevDebug
	})

	e := ecs.NewECS(donburi.NewWorld())
	w := &testWorld{ecs: e}

	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(960, 540, 16, 16)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	w.session = archetypes.Session.Spawn(e)

	w.actor = archetypes.Actor.Spawn(e)
	components.Kinematic.SetValue(w.actor, components.KinematicData{X: 480, Y: 270, Facing: cfg.South})
	actorObj := resolv.NewObject(464, 252, 32, 36, tags.ResolvActor)
	space.Add(actorObj)
	components.Object.SetValue(w.actor, components.ObjectData{Object: actorObj})

	w.target = archetypes.Target.Spawn(e)
	components.Target.SetValue(w.target, components.TargetData{X: tx, Y: ty, Size: 32})
	targetObj := resolv.NewObject(float64(tx-16), float64(ty-16), 32, 32, tags.ResolvTarget)
	space.Add(targetObj)
	components.Object.SetValue(w.target, components.ObjectData{Object: targetObj})

	return w
}

func (w *testWorld) kin() *components.KinematicData {
	return components.Kinematic.Get(w.actor)
}

func (w *testWorld) anim() *components.AnimationData {
	return components.Animation.Get(w.actor)
}

func (w *testWorld) sessionData() *components.SessionData {
	return components.Session.Get(w.session)
}
