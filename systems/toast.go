package systems

import (
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowToast replaces the current status message and restarts its fade.
func ShowToast(e *ecs.ECS, msg string) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	toast := components.Toast.Get(sessionEntry)
	toast.Text = msg
	toast.Alpha = 1
	toast.Fade = gween.New(1, 0, cfg.HUD.ToastDuration, ease.InQuad)
}

// UpdateToast advances the fade by one fixed step and clears the message
// once it has fully faded.
func UpdateToast(e *ecs.ECS) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	toast := components.Toast.Get(sessionEntry)
	if toast.Fade == nil {
		return
	}

	alpha, finished := toast.Fade.Update(float32(StepDelta(e)))
	toast.Alpha = alpha
	if finished {
		toast.Text = ""
		toast.Alpha = 0
		toast.Fade = nil
	}
}
