package factory

import (
	"math/rand/v2"

	"github.com/automoto/alice/archetypes"
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/logging"
	"github.com/automoto/alice/systems"
	"github.com/automoto/alice/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget places the target once, at a uniformly sampled position away
// from the surface edges. It never moves afterwards.
func CreateTarget(ecs *ecs.ECS, rng *rand.Rand) (*donburi.Entry, error) {
	x, y, err := systems.SampleTarget(rng, cfg.C.Surface, cfg.Target.Margin)
	if err != nil {
		return nil, err
	}

	target := archetypes.Target.Spawn(ecs)
	size := cfg.Target.Size
	components.Target.SetValue(target, components.TargetData{X: x, Y: y, Size: size})

	s := float64(size)
	obj := resolv.NewObject(float64(x)-s/2, float64(y)-s/2, s, s, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, s, s))
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	logging.L.Debug("target placed", "x", x, "y", y)
	return target, nil
}
