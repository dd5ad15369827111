package config

import "github.com/yohamta/donburi/ecs"

// Render layers for entities created through archetypes.
const (
	Default ecs.LayerID = iota
)
