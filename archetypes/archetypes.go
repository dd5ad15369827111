package archetypes

import (
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Kinematic,
		components.Animation,
		components.Object,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Controller,
		components.Proximity,
		components.Toast,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
