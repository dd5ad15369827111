package systems

import (
	"image"

	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/render"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi/ecs"
)

// AppendDebug outlines every collision object and the actor's clamp range.
func AppendDebug(e *ecs.ECS, req *render.Request) {
	if !cfg.Debug.Enabled {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Debug.ActorOutline
		if obj.HasTags(tags.ResolvTarget) {
			c = cfg.Debug.TargetOutline
		}
		req.Outlines = append(req.Outlines, render.Outline{
			Rect:  image.Rect(int(obj.X), int(obj.Y), int(obj.X+obj.W), int(obj.Y+obj.H)),
			Color: c,
		})
	}

	b := ClampBounds(cfg.C.Surface, cfg.Actor.HalfExtentX, cfg.Actor.HalfExtentY)
	req.Outlines = append(req.Outlines, render.Outline{
		Rect:  image.Rect(int(b.MinX), int(b.MinY), int(b.MaxX), int(b.MaxY)),
		Color: cfg.Debug.ClampOutline,
	})
}
