package scenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/core"
	"github.com/automoto/alice/events"
	"github.com/automoto/alice/logging"
	"github.com/automoto/alice/render"
	"github.com/automoto/alice/systems"
	"github.com/automoto/alice/systems/factory"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCell is the resolv grid cell size in pixels.
const collisionCell = 16

// SessionScene owns the world for one run: the actor, the target and the
// loop-level state. It implements core.Session.
type SessionScene struct {
	ecs       *ecs.ECS
	input     *systems.InputSystem
	presenter render.Presenter
	pacer     *core.Pacer

	session *components.SessionData
	req     render.Request
}

var _ core.Session = (*SessionScene)(nil)

// NewSessionScene builds the world. The target is placed here, once, from
// rng; a surface too small for the target margin is an error.
func NewSessionScene(src events.Source, opener events.Opener, presenter render.Presenter, rng *rand.Rand) (*SessionScene, error) {
	s := &SessionScene{
		presenter: presenter,
		input:     systems.NewInputSystem(src, systems.NewNormalizer(opener)),
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Fixed step, in order
	e.AddSystem(systems.UpdateKinematics)
	e.AddSystem(systems.UpdateProximity)
	e.AddSystem(systems.UpdateToast)

	s.ecs = e

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, collisionCell, collisionCell)
	sessionEntry := factory.CreateSession(e)
	factory.CreateActor(e)
	if _, err := factory.CreateTarget(e, rng); err != nil {
		return nil, fmt.Errorf("place target: %w", err)
	}

	s.session = components.Session.Get(sessionEntry)

	logging.L.Info("session started",
		"width", cfg.C.Width,
		"height", cfg.C.Height,
		"rate", cfg.Tuning.TargetRate)
	return s, nil
}

// NewPacer creates the loop driving s. The scene reads its frame rate back
// from the returned pacer.
func (s *SessionScene) NewPacer(clock core.Clock) (*core.Pacer, error) {
	p, err := core.NewPacer(s, cfg.Tuning.TargetRate, clock)
	if err != nil {
		return nil, err
	}
	s.pacer = p
	return p, nil
}

func (s *SessionScene) HandleInput() bool {
	s.input.Update(s.ecs)
	return !s.session.Quit
}

// Advance runs the fixed-step systems for one step of dt seconds.
func (s *SessionScene) Advance(dt float64) {
	s.session.Delta = dt
	s.ecs.Update()
	s.session.Frame++
}

func (s *SessionScene) Animate(tickMs int64) {
	s.session.TickMs = tickMs
	systems.UpdateAnimation(s.ecs)
}

func (s *SessionScene) Render() error {
	if s.pacer != nil {
		s.session.ReportedFPS = s.pacer.Counters().ReportedFPS
	}
	systems.BuildRequest(s.ecs, &s.req)
	return s.presenter.Present(&s.req)
}

// ECS exposes the world for inspection.
func (s *SessionScene) ECS() *ecs.ECS {
	return s.ecs
}

// Actor returns a copy of the actor's kinematic state.
func (s *SessionScene) Actor() components.KinematicData {
	if actor, ok := tags.Actor.First(s.ecs.World); ok {
		return *components.Kinematic.Get(actor)
	}
	return components.KinematicData{}
}

// Target returns the target's placement.
func (s *SessionScene) Target() components.TargetData {
	if target, ok := tags.Target.First(s.ecs.World); ok {
		return *components.Target.Get(target)
	}
	return components.TargetData{}
}
