package systems

import (
	"image"

	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/render"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi/ecs"
)

// BuildRequest fills req with the frame's draw list: the backdrop, the
// target, the actor on top, then HUD text and debug outlines.
func BuildRequest(e *ecs.ECS, req *render.Request) {
	req.Reset()
	req.Background = true

	if sessionEntry, ok := tags.Session.First(e.World); ok {
		req.Frame = components.Session.Get(sessionEntry).Frame
	}

	if target, ok := tags.Target.First(e.World); ok {
		td := components.Target.Get(target)
		half := td.Size / 2
		req.Blits = append(req.Blits, render.Blit{
			Sheet: render.SheetTarget,
			Layer: render.LayerTarget,
			Src:   image.Rect(0, 0, td.Size, td.Size),
			Dst:   image.Rect(td.X-half, td.Y-half, td.X-half+td.Size, td.Y-half+td.Size),
		})
	}

	if actor, ok := tags.Actor.First(e.World); ok {
		kin := components.Kinematic.Get(actor)
		anim := components.Animation.Get(actor)
		req.Blits = append(req.Blits, render.Blit{
			Sheet: render.SheetActor,
			Layer: render.LayerActor,
			Src:   anim.Src,
			Dst:   ActorDst(kin.X, kin.Y, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight),
		})
	}

	AppendHUD(e, req)
	AppendDebug(e, req)
}

// ActorDst returns the screen rectangle of a frame centred on (x, y).
func ActorDst(x, y float64, frameWidth, frameHeight int) image.Rectangle {
	left := int(x) - frameWidth/2
	top := int(y) - frameHeight/2
	return image.Rect(left, top, left+frameWidth, top+frameHeight)
}
