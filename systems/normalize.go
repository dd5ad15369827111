package systems

import (
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/events"
	"github.com/automoto/alice/logging"
)

// Normalizer classifies raw device events into intents.
type Normalizer struct {
	Opener events.Opener
	Input  *cfg.InputConfig
}

func NewNormalizer(opener events.Opener) *Normalizer {
	return &Normalizer{Opener: opener, Input: &cfg.Input}
}

// Normalize returns the intent carried by ev, if any. Device attach and
// detach events update ctrl, the session's single controller slot.
func (n *Normalizer) Normalize(ev events.Event, ctrl *components.ControllerData) (cfg.Intent, bool) {
	switch ev.Kind {
	case events.KindQuit:
		return cfg.IntentQuit, true

	case events.KindKeyDown:
		if ev.Repeat {
			return cfg.IntentNone, false
		}
		return cfg.IntentForKey(ev.Key)

	case events.KindKeyUp:
		if !n.Input.ReleaseOnKeyUp {
			return cfg.IntentNone, false
		}
		intent, ok := cfg.IntentForKey(ev.Key)
		if !ok {
			return cfg.IntentNone, false
		}
		release := intent.Release()
		return release, release != cfg.IntentNone

	case events.KindAxisMotion:
		// Only the opened controller drives the actor.
		if !current(ctrl, ev) {
			return cfg.IntentNone, false
		}
		return n.classifyAxis(ev.Axis, ev.Value)

	case events.KindButtonDown:
		logging.L.Debug("button down", "device", ev.Device, "button", ev.Button)
		return cfg.IntentNone, false

	case events.KindDeviceAdded:
		return n.open(ev, ctrl)

	case events.KindDeviceRemoved:
		if !current(ctrl, ev) {
			logging.L.Debug("ignoring removal of unused controller", "device", ev.Device)
			return cfg.IntentNone, false
		}
		logging.L.Info("controller disconnected", "device", ev.Device)
		ctrl.Device = nil
		return cfg.IntentDeviceDisconnected, true
	}
	return cfg.IntentNone, false
}

// current reports whether ev comes from the controller held in ctrl.
func current(ctrl *components.ControllerData, ev events.Event) bool {
	return ctrl != nil && ctrl.Device != nil && ctrl.Device.ID == ev.Device
}

func (n *Normalizer) open(ev events.Event, ctrl *components.ControllerData) (cfg.Intent, bool) {
	logging.L.Info("controller connected", "device", ev.Device)
	if n.Opener == nil {
		logging.L.Warn("no controller support, continuing with keyboard", "device", ev.Device)
		return cfg.IntentNone, false
	}
	dev, err := n.Opener.Open(ev.Device)
	if err != nil {
		logging.L.Warn("could not open controller, continuing with keyboard", "device", ev.Device, "err", err)
		return cfg.IntentNone, false
	}
	logging.L.Info("opened controller", "device", dev.ID, "name", dev.Name)
	ctrl.Device = dev
	return cfg.IntentDeviceConnected, true
}

// classifyAxis buckets a signed 16-bit axis value. Only the two extremes arm
// the axis; the dead zone releases it; anything in between is ignored.
func (n *Normalizer) classifyAxis(axis int, v int32) (cfg.Intent, bool) {
	var neg, pos, release cfg.Intent
	switch axis {
	case events.AxisHorizontal:
		neg, pos, release = cfg.IntentMoveWest, cfg.IntentMoveEast, cfg.IntentReleaseHorizontal
	case events.AxisVertical:
		neg, pos, release = cfg.IntentMoveNorth, cfg.IntentMoveSouth, cfg.IntentReleaseVertical
	default:
		return cfg.IntentNone, false
	}

	dz, extreme := n.Input.DeadZone, n.Input.AxisExtreme
	switch {
	case v <= -extreme:
		return neg, true
	case v >= extreme:
		return pos, true
	case v > -dz && v < dz:
		return release, true
	}
	return cfg.IntentNone, false
}
