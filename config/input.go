package config

import "github.com/hajimehoshi/ebiten/v2"

// Intent is a discrete request derived from a raw device event.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveNorth
	IntentMoveSouth
	IntentMoveEast
	IntentMoveWest
	IntentReleaseHorizontal
	IntentReleaseVertical
	IntentConfirm
	IntentCancel
	IntentDeviceConnected
	IntentDeviceDisconnected
	IntentQuit
	IntentCount // Must be last - used for array sizing
)

var intentNames = [IntentCount]string{
	IntentNone:               "none",
	IntentMoveNorth:          "move-north",
	IntentMoveSouth:          "move-south",
	IntentMoveEast:           "move-east",
	IntentMoveWest:           "move-west",
	IntentReleaseHorizontal:  "release-horizontal",
	IntentReleaseVertical:    "release-vertical",
	IntentConfirm:            "confirm",
	IntentCancel:             "cancel",
	IntentDeviceConnected:    "device-connected",
	IntentDeviceDisconnected: "device-disconnected",
	IntentQuit:               "quit",
}

func (i Intent) String() string {
	if i < 0 || i >= IntentCount {
		return "unknown"
	}
	return intentNames[i]
}

// Facing returns the direction a move intent points to.
func (i Intent) Facing() (Facing, bool) {
	switch i {
	case IntentMoveNorth:
		return North, true
	case IntentMoveSouth:
		return South, true
	case IntentMoveEast:
		return East, true
	case IntentMoveWest:
		return West, true
	}
	return 0, false
}

// Release returns the axis release matching a move intent.
func (i Intent) Release() Intent {
	switch i {
	case IntentMoveEast, IntentMoveWest:
		return IntentReleaseHorizontal
	case IntentMoveNorth, IntentMoveSouth:
		return IntentReleaseVertical
	}
	return IntentNone
}

// InputBinding represents the keys bound to a single intent
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[Intent]InputBinding

	// Analog axes report values in the signed 16-bit range. Values strictly
	// inside +/-DeadZone release the axis; values at or beyond +/-AxisExtreme
	// arm it. Anything in between leaves the axis unchanged.
	DeadZone    int32 `yaml:"deadZone"`
	AxisExtreme int32 `yaml:"axisExtreme"`

	// ReleaseOnKeyUp makes key-up on a movement key stop that axis. Off by
	// default: keyboard movement is edge-triggered and only stops on the
	// surface boundary or an opposing key.
	ReleaseOnKeyUp bool `yaml:"releaseOnKeyUp"`
}

// AxisMax is the largest value an analog axis reports.
const AxisMax int32 = 32767

// Input is the global input configuration
var Input InputConfig

// keyIntents is the reverse lookup built from Input.Bindings.
var keyIntents map[ebiten.Key]Intent

func init() {
	Input = InputConfig{
		DeadZone:    500,
		AxisExtreme: AxisMax,
		Bindings: map[Intent]InputBinding{
			IntentMoveNorth: {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			IntentMoveSouth: {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			IntentMoveWest:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			IntentMoveEast:  {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			IntentConfirm:   {Keys: []ebiten.Key{ebiten.KeyEnter}},
			IntentCancel:    {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
	RebuildKeyIntents()
}

// RebuildKeyIntents refreshes the key lookup after Input.Bindings changes.
func RebuildKeyIntents() {
	keyIntents = make(map[ebiten.Key]Intent)
	for intent, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			keyIntents[key] = intent
		}
	}
}

// IntentForKey returns the intent bound to key, if any.
func IntentForKey(key ebiten.Key) (Intent, bool) {
	intent, ok := keyIntents[key]
	return intent, ok
}
