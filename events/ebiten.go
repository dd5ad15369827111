package events

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ErrUnsupportedDevice = errors.New("unsupported controller")

// EbitenSource turns ebiten's per-frame input polling into edge events.
// It must be drained from the ebiten update goroutine.
type EbitenSource struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	known    map[ebiten.GamepadID]*padState
}

type padState struct {
	axes [2]int32
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{
		known: make(map[ebiten.GamepadID]*padState),
	}
}

func (s *EbitenSource) Drain(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Quit())
	}

	dst = s.drainGamepadChanges(dst)

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		dst = append(dst, KeyDown(k))
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		dst = append(dst, KeyUp(k))
	}

	for id, st := range s.known {
		dst = drainButtons(dst, id)
		for axis := range st.axes {
			v := readAxis(id, axis)
			if v != st.axes[axis] {
				st.axes[axis] = v
				dst = append(dst, AxisMotion(id, axis, v))
			}
		}
	}
	return dst
}

// drainGamepadChanges emits add/remove events. Removals come first so a
// replug within one frame ends with the device attached.
func (s *EbitenSource) drainGamepadChanges(dst []Event) []Event {
	for id := range s.known {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(s.known, id)
			dst = append(dst, DeviceRemoved(id))
		}
	}

	s.gamepads = inpututil.AppendJustConnectedGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		s.known[id] = &padState{}
		dst = append(dst, DeviceAdded(id))
	}
	return dst
}

func drainButtons(dst []Event, id ebiten.GamepadID) []Event {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return dst
	}
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			dst = append(dst, Event{Kind: KindButtonDown, Device: id, Button: int(b)})
		}
	}
	return dst
}

// readAxis returns the left stick / d-pad position on one axis in the
// signed 16-bit range. A held d-pad direction reads as the axis extreme.
func readAxis(id ebiten.GamepadID, axis int) int32 {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		if axis >= ebiten.GamepadAxisCount(id) {
			return 0
		}
		return Quantize(ebiten.GamepadAxisValue(id, axis))
	}

	neg, pos := ebiten.StandardGamepadButtonLeftLeft, ebiten.StandardGamepadButtonLeftRight
	stick := ebiten.StandardGamepadAxisLeftStickHorizontal
	if axis == AxisVertical {
		neg, pos = ebiten.StandardGamepadButtonLeftTop, ebiten.StandardGamepadButtonLeftBottom
		stick = ebiten.StandardGamepadAxisLeftStickVertical
	}

	switch {
	case ebiten.IsStandardGamepadButtonPressed(id, neg):
		return math.MinInt16
	case ebiten.IsStandardGamepadButtonPressed(id, pos):
		return math.MaxInt16
	}
	return Quantize(ebiten.StandardGamepadAxisValue(id, stick))
}

// Quantize maps an axis value in [-1, 1] onto the signed 16-bit range.
func Quantize(v float64) int32 {
	switch {
	case v <= -1:
		return math.MinInt16
	case v >= 1:
		return math.MaxInt16
	}
	return int32(math.Round(v * math.MaxInt16))
}

// EbitenOpener accepts controllers ebiten can read a directional input from.
type EbitenOpener struct{}

func (EbitenOpener) Open(id ebiten.GamepadID) (*Device, error) {
	name := ebiten.GamepadName(id)
	if !ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.GamepadAxisCount(id) < 2 {
		return nil, fmt.Errorf("open controller %d (%q): %w", id, name, ErrUnsupportedDevice)
	}
	return &Device{ID: id, Name: name}, nil
}
