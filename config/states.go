package config

// Facing is the cardinal direction the actor is oriented toward.
type Facing int

const (
	North Facing = iota
	West
	South
	East
)

var facingNames = [...]string{
	North: "north",
	West:  "west",
	South: "south",
	East:  "east",
}

func (f Facing) String() string {
	if f < North || f > East {
		return "unknown"
	}
	return facingNames[f]
}

// Sign returns the unit step of this facing on its own axis:
// -1 for North/West, +1 for South/East.
func (f Facing) Sign() float64 {
	if f == North || f == West {
		return -1
	}
	return 1
}

// Horizontal reports whether the facing lies on the x axis.
func (f Facing) Horizontal() bool {
	return f == West || f == East
}
