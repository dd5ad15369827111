package systems

import (
	"fmt"

	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/render"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi/ecs"
)

// AppendHUD adds the FPS counter and the controller toast. With debug on it
// also lists the actor's state and its distance to the target.
func AppendHUD(e *ecs.ECS, req *render.Request) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin)
	line := func(s string) {
		req.Texts = append(req.Texts, render.Text{X: x, Y: y, Value: s, Color: cfg.HUD.TextColor})
		y += int(cfg.HUD.LineHeight)
	}

	if cfg.Debug.ShowFPS {
		line(fmt.Sprintf("FPS: %d", session.ReportedFPS))
	}

	if cfg.Debug.Enabled {
		if actor, ok := tags.Actor.First(e.World); ok {
			kin := components.Kinematic.Get(actor)
			anim := components.Animation.Get(actor)
			line(fmt.Sprintf("pos: %.1f, %.1f", kin.X, kin.Y))
			line(fmt.Sprintf("vel: %.0f, %.0f", kin.VelocityX, kin.VelocityY))
			line(fmt.Sprintf("facing: %s  cell: %d,%d", kin.Facing, anim.Row, anim.Column))
		}
		prox := components.Proximity.Get(sessionEntry)
		line(fmt.Sprintf("target: %.1f px  overlap: %t", prox.Distance, prox.Overlapping))
		if ctrl := components.Controller.Get(sessionEntry); ctrl.Device != nil {
			line(fmt.Sprintf("controller: %s", ctrl.Device.Name))
		}
	}

	toast := components.Toast.Get(sessionEntry)
	if toast.Text != "" && toast.Alpha > 0 {
		c := cfg.HUD.ToastColor
		c.A = uint8(float32(c.A) * clamp01(toast.Alpha))
		req.Texts = append(req.Texts, render.Text{
			X:     int(cfg.HUD.Margin),
			Y:     int(cfg.HUD.ToastY),
			Value: toast.Text,
			Color: c,
		})
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
