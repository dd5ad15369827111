package components

import (
	"github.com/automoto/alice/events"
	"github.com/yohamta/donburi"
)

// ControllerData holds the single controller the session listens to.
// Device is nil when input is keyboard only.
type ControllerData struct {
	Device *events.Device
}

var Controller = donburi.NewComponentType[ControllerData]()
