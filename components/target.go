package components

import "github.com/yohamta/donburi"

// TargetData is the static target. It is sampled once and never moves.
type TargetData struct {
	X, Y int // centre
	Size int
}

var Target = donburi.NewComponentType[TargetData]()

// ProximityData is the latest actor-to-target evaluation. Nothing acts on it
// yet; it is surfaced in the debug HUD.
type ProximityData struct {
	Distance    float64
	Overlapping bool
}

var Proximity = donburi.NewComponentType[ProximityData]()
