package factory

import (
	"github.com/automoto/alice/archetypes"
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/systems"
	"github.com/automoto/alice/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns the actor at rest in the centre of the surface, facing
// the configured default direction.
func CreateActor(ecs *ecs.ECS) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)

	cx, cy := cfg.C.Surface.Center()
	components.Kinematic.SetValue(actor, components.KinematicData{
		X:      cx,
		Y:      cy,
		Facing: cfg.Actor.DefaultFacing,
	})

	row := cfg.Sheet.IdleRow(cfg.Actor.DefaultFacing)
	components.Animation.SetValue(actor, components.AnimationData{
		Row: row,
		Src: systems.SheetRect(row, 0, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight),
	})

	w, h := cfg.Actor.HalfExtentX*2, cfg.Actor.HalfExtentY*2
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h, tags.ResolvActor)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = actor
	components.Object.SetValue(actor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return actor
}
