package factory

import (
	"github.com/automoto/alice/archetypes"
	"github.com/automoto/alice/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{})
	components.Controller.SetValue(session, components.ControllerData{})
	components.Proximity.SetValue(session, components.ProximityData{})
	components.Toast.SetValue(session, components.ToastData{})
	return session
}
