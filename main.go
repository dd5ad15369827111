// alice opens a window with one controllable actor and a static target.
//
// Usage:
//
//	alice [WIDTH] [HEIGHT] [flags]
//
// WIDTH and HEIGHT default to 960x540 windowed or 1920x1080 fullscreen.
// Unusable values fall back to the default without an error.
//
// Flags:
//
//	-f, --fullscreen    - Open fullscreen
//	--config <path>     - YAML overlay for the tuning values
//	--seed <value>      - RNG seed for target placement (0 = time based)
//	--headless <frames> - Run that many frames without a window and exit
//	--debug             - Debug logging and collision outlines
package main

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"time"

	"github.com/automoto/alice/assets"
	"github.com/automoto/alice/config"
	"github.com/automoto/alice/core"
	"github.com/automoto/alice/events"
	"github.com/automoto/alice/fonts"
	"github.com/automoto/alice/logging"
	"github.com/automoto/alice/render"
	"github.com/automoto/alice/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagFullscreen bool
	flagConfig     string
	flagSeed       uint64
	flagHeadless   int
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alice [WIDTH] [HEIGHT]",
	Short: "Walk an actor around a surface",
	Long: `Opens a window with one actor you can walk around with the arrow keys,
WASD or a gamepad stick. A target is placed at random, away from the edges.

Controls:
  Arrows/WASD  - Move
  Stick/D-pad  - Move; centre the stick to stop
  Esc          - Quit

Examples:
  alice
  alice 1280 720
  alice -f
  alice --seed 42 --debug
  alice --headless 600`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagFullscreen, "fullscreen", "f", false, "Open fullscreen")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML overlay")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagHeadless, "headless", 0, "Run N frames without a window, then exit")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision overlay")
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(os.Stderr, flagDebug)
	config.Debug.Enabled = flagDebug

	if path, err := config.LoadFile(flagConfig); err != nil {
		if flagConfig != "" {
			return err
		}
		logging.L.Warn("ignoring config", "err", err)
	} else if path != "" {
		logging.L.Info("config loaded", "path", path)
	}

	config.C.Surface = config.ParseDimensions(args, flagFullscreen)
	config.C.Fullscreen = flagFullscreen

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logging.L.Debug("placement seed", "seed", seed)
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	if flagHeadless > 0 {
		return runHeadless(flagHeadless, rng)
	}
	return runWindow(rng)
}

// runHeadless drives the loop for a fixed number of frames with no input and
// no window, then reports where things ended up.
func runHeadless(frames int, rng *rand.Rand) error {
	script := events.NewScript().At(frames, events.Quit())
	recorder := &render.Recorder{Limit: 1}

	scene, err := scenes.NewSessionScene(script, events.EbitenOpener{}, recorder, rng)
	if err != nil {
		return err
	}
	pacer, err := scene.NewPacer(core.SystemClock{})
	if err != nil {
		return err
	}
	if err := pacer.Run(); err != nil {
		return err
	}

	actor, target := scene.Actor(), scene.Target()
	logging.L.Info("headless run finished",
		"frames", pacer.Frames(),
		"fps", pacer.Counters().ReportedFPS,
		"actor_x", actor.X,
		"actor_y", actor.Y,
		"target_x", target.X,
		"target_y", target.Y)
	return nil
}

type Game struct {
	bounds    image.Rectangle
	pacer     *core.Pacer
	presenter *render.EbitenPresenter
}

func (g *Game) Update() error {
	quit, err := g.pacer.Tick()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runWindow(rng *rand.Rand) error {
	if err := fonts.Load(); err != nil {
		return err
	}
	sheets, background := assets.LoadSheets()
	presenter := render.NewEbitenPresenter(sheets, background, fonts.HUD.Get())
	presenter.ClearColor = config.Background.ClearColor
	presenter.AlphaMod = config.Background.AlphaMod

	scene, err := scenes.NewSessionScene(events.NewEbitenSource(), events.EbitenOpener{}, presenter, rng)
	if err != nil {
		return err
	}
	pacer, err := scene.NewPacer(core.SystemClock{})
	if err != nil {
		return err
	}

	// The pacer sleeps out each frame itself, so ebiten must not add its own
	// pacing on top.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(config.C.Fullscreen)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	err = ebiten.RunGame(&Game{pacer: pacer, presenter: presenter})
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logging.L.Info("session ended", "frames", pacer.Frames())
	return nil
}
