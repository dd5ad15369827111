package systems

import (
	"testing"

	"github.com/automoto/alice/components"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateProximity(t *testing.T) {
	w := newTestWorld(t, 480, 270)
	UpdateProximity(w.ecs)

	prox := components.Proximity.Get(w.session)
	if prox.Distance != 0 || !prox.Overlapping {
		t.Errorf("on target: %+v, want distance 0 and overlapping", *prox)
	}

	far := newTestWorld(t, 100, 100)
	UpdateProximity(far.ecs)
	prox = components.Proximity.Get(far.session)
	if prox.Overlapping {
		t.Error("distant target should not overlap")
	}
	if want := Distance(dmath.Vec2{X: 480, Y: 270}, dmath.Vec2{X: 100, Y: 100}); prox.Distance != want {
		t.Errorf("distance = %v, want %v", prox.Distance, want)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 3, Y: 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
