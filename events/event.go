// Package events models raw device input as a drainable, ordered stream.
package events

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies what a raw event carries.
type Kind int

const (
	KindNone Kind = iota
	KindKeyDown
	KindKeyUp
	KindAxisMotion
	KindButtonDown
	KindDeviceAdded
	KindDeviceRemoved
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindAxisMotion:
		return "axis-motion"
	case KindButtonDown:
		return "button-down"
	case KindDeviceAdded:
		return "device-added"
	case KindDeviceRemoved:
		return "device-removed"
	case KindQuit:
		return "quit"
	}
	return "none"
}

// Axis indices carried by KindAxisMotion.
const (
	AxisHorizontal = 0
	AxisVertical   = 1
)

// Event is a single raw device event. Only the fields relevant to Kind are set.
type Event struct {
	Kind   Kind
	Key    ebiten.Key
	Repeat bool // key-down generated by auto-repeat rather than a press
	Axis   int
	Value  int32 // signed 16-bit range
	Button int
	Device ebiten.GamepadID
}

func (e Event) String() string {
	switch e.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s %s repeat=%t", e.Kind, e.Key, e.Repeat)
	case KindAxisMotion:
		return fmt.Sprintf("%s device=%d axis=%d value=%d", e.Kind, e.Device, e.Axis, e.Value)
	case KindButtonDown:
		return fmt.Sprintf("%s device=%d button=%d", e.Kind, e.Device, e.Button)
	case KindDeviceAdded, KindDeviceRemoved:
		return fmt.Sprintf("%s device=%d", e.Kind, e.Device)
	}
	return e.Kind.String()
}

// Constructors for the common cases.

func KeyDown(key ebiten.Key) Event { return Event{Kind: KindKeyDown, Key: key} }

func KeyRepeat(key ebiten.Key) Event { return Event{Kind: KindKeyDown, Key: key, Repeat: true} }

func KeyUp(key ebiten.Key) Event { return Event{Kind: KindKeyUp, Key: key} }

func AxisMotion(id ebiten.GamepadID, axis int, value int32) Event {
	return Event{Kind: KindAxisMotion, Device: id, Axis: axis, Value: value}
}

func DeviceAdded(id ebiten.GamepadID) Event { return Event{Kind: KindDeviceAdded, Device: id} }

func DeviceRemoved(id ebiten.GamepadID) Event { return Event{Kind: KindDeviceRemoved, Device: id} }

func Quit() Event { return Event{Kind: KindQuit} }

// Source supplies the events that arrived since the previous drain.
// Drain appends them to dst in arrival order and never blocks; an event is
// delivered at most once.
type Source interface {
	Drain(dst []Event) []Event
}

// Device is an opened controller.
type Device struct {
	ID   ebiten.GamepadID
	Name string
}

// Opener opens a controller announced by KindDeviceAdded.
type Opener interface {
	Open(id ebiten.GamepadID) (*Device, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(id ebiten.GamepadID) (*Device, error)

func (f OpenerFunc) Open(id ebiten.GamepadID) (*Device, error) { return f(id) }
