package config

import "strconv"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
}

// DisplayConfig contains the default window sizes per display mode
type DisplayConfig struct {
	Windowed   Resolution
	Fullscreen Resolution
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Windowed:   Resolution{Width: DefaultWidth, Height: DefaultHeight},
		Fullscreen: Resolution{Width: DefaultFullscreenWidth, Height: DefaultFullscreenHeight},
	}
}

// DefaultResolution returns the size used for the given display mode.
func DefaultResolution(fullscreen bool) Resolution {
	if fullscreen {
		return Display.Fullscreen
	}
	return Display.Windowed
}

// ParseDimensions resolves the optional WIDTH and HEIGHT positional
// arguments. A missing or unparsable value silently falls back to the
// default for the display mode; it is never reported as an error.
func ParseDimensions(args []string, fullscreen bool) Surface {
	def := DefaultResolution(fullscreen)
	s := Surface{Width: def.Width, Height: def.Height}

	if len(args) > 0 {
		if w, err := strconv.ParseUint(args[0], 10, 31); err == nil && w > 0 {
			s.Width = int(w)
		}
	}
	if len(args) > 1 {
		if h, err := strconv.ParseUint(args[1], 10, 31); err == nil && h > 0 {
			s.Height = int(h)
		}
	}
	return s
}
