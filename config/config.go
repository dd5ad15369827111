package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Surface is the logical play area in pixels. It is fixed for the lifetime of the process.
type Surface struct {
	Width  int
	Height int
}

// Center returns the middle of the surface in logical pixels.
func (s Surface) Center() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}

// TuningConfig holds the loop and movement parameters.
type TuningConfig struct {
	TargetRate      int     `yaml:"targetRate"`      // frames per second
	MovementSpeed   float64 `yaml:"movementSpeed"`   // units per second
	AnimationStepMs int     `yaml:"animationStepMs"` // how long each walk frame is held
	FramesPerCycle  int     `yaml:"framesPerCycle"`  // walk columns in the sprite sheet
}

// FixedDelta is the simulated time of one frame in seconds.
func (t TuningConfig) FixedDelta() float64 {
	return 1.0 / float64(t.TargetRate)
}

// ActorConfig contains the controllable actor's sprite and footprint values
type ActorConfig struct {
	// Dimensions
	FrameWidth  int
	FrameHeight int

	// Clamp footprint, measured from the centre. Slightly different per axis
	// because the sprite is taller than it is wide.
	HalfExtentX float64
	HalfExtentY float64

	DefaultFacing Facing

	// Placeholder sheet colours
	BodyColor    color.RGBA
	OutlineColor color.RGBA
	AccentColor  color.RGBA
}

// TargetConfig contains the static target entity configuration
type TargetConfig struct {
	Size   int `yaml:"size"`
	Margin int `yaml:"margin"` // keep-out distance from each surface edge

	Color     color.RGBA
	RingColor color.RGBA
}

// BackgroundConfig describes the generated backdrop.
type BackgroundConfig struct {
	TopColor    color.RGBA
	BottomColor color.RGBA
	ClearColor  color.RGBA
	AlphaMod    uint8 // 0-255, applied when the backdrop is drawn
}

// HUDConfig contains on-screen text configuration
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	ToastColor    color.RGBA
	ToastDuration float32 // seconds for the controller message to fade out
	ToastY        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool `yaml:"enabled"` // verbose logging and collision overlay
	ShowFPS bool `yaml:"showFPS"`

	ActorOutline  color.RGBA
	TargetOutline color.RGBA
	ClampOutline  color.RGBA
}

// Config holds general window configuration
type Config struct {
	Surface
	Fullscreen bool
	Title      string
}

// Global configuration instances
var C *Config
var Tuning TuningConfig
var Actor ActorConfig
var Target TargetConfig
var Background BackgroundConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 110, G: 170, B: 230, A: 255}
	DuskBlue     = color.RGBA{R: 30, G: 50, B: 110, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Window defaults when no usable size is given on the command line.
const (
	DefaultWidth            = 960
	DefaultHeight           = 540
	DefaultFullscreenWidth  = 1920
	DefaultFullscreenHeight = 1080
)

var ErrInvalidTuning = errors.New("invalid tuning")

func init() {
	C = &Config{
		Surface: Surface{Width: DefaultWidth, Height: DefaultHeight},
		Title:   "A.L.I.C.E.",
	}

	Tuning = TuningConfig{
		TargetRate:      60,
		MovementSpeed:   150.0,
		AnimationStepMs: 100,
		FramesPerCycle:  8,
	}

	Actor = ActorConfig{
		FrameWidth:    32,
		FrameHeight:   36,
		HalfExtentX:   16,
		HalfExtentY:   18,
		DefaultFacing: South,

		BodyColor:    color.RGBA{R: 0, G: 200, B: 120, A: 255},
		OutlineColor: color.RGBA{R: 10, G: 40, B: 30, A: 255},
		AccentColor:  BrightOrange,
	}

	Target = TargetConfig{
		Size:      32,
		Margin:    64,
		Color:     color.RGBA{R: 255, G: 215, B: 0, A: 255},
		RingColor: Orange,
	}

	Background = BackgroundConfig{
		TopColor:    SkyBlue,
		BottomColor: DuskBlue,
		ClearColor:  Grey,
		AlphaMod:    100,
	}

	HUD = HUDConfig{
		Margin:        8,
		LineHeight:    14,
		TextColor:     White,
		ToastColor:    LightBlue,
		ToastDuration: 2.0,
		ToastY:        40,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled: false,
		ShowFPS: true,

		ActorOutline:  color.RGBA{R: 0, G: 0, B: 255, A: 255},
		TargetOutline: Red,
		ClampOutline:  Cyan,
	}
}

// Validate reports tuning values the loop cannot run with.
func Validate() error {
	switch {
	case Tuning.TargetRate <= 0:
		return fmt.Errorf("%w: target rate %d", ErrInvalidTuning, Tuning.TargetRate)
	case Tuning.MovementSpeed <= 0:
		return fmt.Errorf("%w: movement speed %v", ErrInvalidTuning, Tuning.MovementSpeed)
	case Tuning.AnimationStepMs <= 0:
		return fmt.Errorf("%w: animation step %dms", ErrInvalidTuning, Tuning.AnimationStepMs)
	case Tuning.FramesPerCycle <= 0:
		return fmt.Errorf("%w: frames per cycle %d", ErrInvalidTuning, Tuning.FramesPerCycle)
	case Target.Margin < 0:
		return fmt.Errorf("%w: target margin %d", ErrInvalidTuning, Target.Margin)
	}
	return nil
}
