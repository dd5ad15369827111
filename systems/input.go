package systems

import (
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/events"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi/ecs"
)

// InputSystem drains the event source once per frame and applies the
// resulting intents to the actor. It must run before UpdateKinematics.
type InputSystem struct {
	Source     events.Source
	Normalizer *Normalizer

	// Reusable slice to avoid allocations
	buf []events.Event
}

func NewInputSystem(src events.Source, n *Normalizer) *InputSystem {
	return &InputSystem{Source: src, Normalizer: n}
}

// Update drains every pending event in arrival order. Processing stops at
// the first quit or cancel; the session is flagged and the rest of the
// batch is dropped.
func (s *InputSystem) Update(e *ecs.ECS) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	ctrl := components.Controller.Get(sessionEntry)

	var kin *components.KinematicData
	if actor, ok := tags.Actor.First(e.World); ok {
		kin = components.Kinematic.Get(actor)
	}

	s.buf = s.Source.Drain(s.buf[:0])
	for _, ev := range s.buf {
		intent, ok := s.Normalizer.Normalize(ev, ctrl)
		if !ok {
			continue
		}

		switch intent {
		case cfg.IntentQuit, cfg.IntentCancel:
			session.Quit = true
			return
		case cfg.IntentDeviceConnected:
			name := "controller"
			if ctrl.Device != nil && ctrl.Device.Name != "" {
				name = ctrl.Device.Name
			}
			ShowToast(e, name+" connected")
		case cfg.IntentDeviceDisconnected:
			ShowToast(e, "controller disconnected")
		}

		if kin != nil {
			ApplyIntent(kin, intent, cfg.Tuning.MovementSpeed)
		}
	}
}

// ApplyIntent runs the per-axis movement state machine. Each axis is
// independently Idle or Moving(dir); a move sets the axis velocity to exactly
// +/-speed and turns the actor that way, a release stops the axis and keeps
// the facing. Losing the controller stops both axes so a stick held at the
// moment of unplugging cannot leave the actor running.
func ApplyIntent(k *components.KinematicData, intent cfg.Intent, speed float64) {
	switch intent {
	case cfg.IntentMoveNorth, cfg.IntentMoveSouth, cfg.IntentMoveEast, cfg.IntentMoveWest:
		f, _ := intent.Facing()
		if f.Horizontal() {
			k.VelocityX = f.Sign() * speed
		} else {
			k.VelocityY = f.Sign() * speed
		}
		k.Facing = f
	case cfg.IntentReleaseHorizontal:
		k.VelocityX = 0
	case cfg.IntentReleaseVertical:
		k.VelocityY = 0
	case cfg.IntentDeviceDisconnected:
		k.VelocityX = 0
		k.VelocityY = 0
	}
}
