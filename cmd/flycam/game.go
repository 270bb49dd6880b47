package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/flycam/config"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/ecs/system"
	"github.com/milk9111/flycam/input"
	"github.com/milk9111/flycam/window"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	actionPause        = "pause"
	actionSwitchCamera = "switch_camera"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *input.Handler[string]
	scene     *scene
	pauseUI   *ebitenui.UI
	watcher   *config.Watcher
	logger    *zap.Logger

	paused        bool
	captureCursor bool
	quitting      bool
}

// pausableAxes reads as idle while the game is paused.
type pausableAxes struct {
	g *Game
}

func (p pausableAxes) Axis(label string) float32 {
	if p.g.paused {
		return 0
	}
	return p.g.input.Axis(label)
}

func NewGame(controls *config.Controls, watcher *config.Watcher, logger *zap.Logger) (*Game, error) {
	bindings, err := controls.InputBindings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:         ecs.NewWorld(),
		scheduler:     ecs.NewScheduler(),
		input:         input.NewHandler(input.EbitenKeys{}, bindings),
		watcher:       watcher,
		logger:        logger,
		captureCursor: controls.Cursor.Hide,
	}
	ecs.SetResource(g.world, &component.Time{})
	ecs.SetResource(g.world, &component.HideCursor{Hide: controls.Cursor.Hide})

	g.scene, err = buildScene(g.world, controls.ArcBall.Distance)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	orbitSrc := []byte(system.DefaultOrbitScript)
	if controls.ArcBall.Script != "" {
		orbitSrc, err = os.ReadFile(controls.ArcBall.Script)
		if err != nil {
			return nil, fmt.Errorf("read orbit script: %w", err)
		}
	}
	orbit, err := system.NewOrbitScriptSystem(orbitSrc, logger.Named("orbit"))
	if err != nil {
		return nil, err
	}

	g.scheduler.Add(window.NewPoller())
	g.scheduler.Add(g.input)

	horizontal, vertical, longitudinal := controls.Movement.Axes()
	fly := system.FlyControlBundle[string]{
		Speed:        controls.Movement.Speed,
		SensitivityX: controls.Rotation.SensitivityX,
		SensitivityY: controls.Rotation.SensitivityY,
		Horizontal:   horizontal,
		Vertical:     vertical,
		Longitudinal: longitudinal,
		Input:        pausableAxes{g: g},
		Window:       window.NewEbiten(),
		Logger:       logger,
	}
	if err := fly.Register(g.world, g.scheduler); err != nil {
		return nil, err
	}

	g.scheduler.Add(wanderSystem{})
	g.scheduler.Add(orbit)
	if err := (system.ArcBallControlBundle{}).Register(g.world, g.scheduler); err != nil {
		return nil, err
	}
	g.scheduler.Add(system.NewCameraSwitchSystem[string](g.input, actionSwitchCamera, logger.Named("camera"), g.scene.cameraSet...))

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.applyReloads()

	clock, _ := ecs.Resource[component.Time](g.world)
	clock.Advance(time.Second / time.Duration(ebiten.TPS()))

	g.scheduler.Update(g.world)

	if g.input.JustPressed(actionPause) {
		if g.paused {
			g.resume()
		} else {
			g.pause()
		}
	}
	if g.paused {
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.world)

	focus, _ := ecs.Resource[component.WindowFocus](g.world)
	active := "fly"
	if cam, ok := ecs.First(g.world, component.CameraTagComponent); ok && cam == g.scene.orbitCam {
		active = "orbit"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.1f  camera: %s  focused: %v  capture: %v\nWASD/QE move, mouse look, Tab switch camera, Esc pause",
		ebiten.ActualTPS(), active, focus != nil && focus.IsFocused, g.captureCursor,
	))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) pause() {
	g.paused = true
	g.setHideCursor(false)
}

func (g *Game) resume() {
	g.paused = false
	g.setHideCursor(g.captureCursor)
}

func (g *Game) toggleCursorCapture() {
	g.captureCursor = !g.captureCursor
	g.logger.Info("cursor capture toggled", zap.Bool("capture", g.captureCursor))
}

func (g *Game) quit() {
	g.quitting = true
}

func (g *Game) setHideCursor(hide bool) {
	if h, ok := ecs.Resource[component.HideCursor](g.world); ok {
		h.Hide = hide
	}
}

// applyReloads picks up controls changed on disk. Only bindings and the
// cursor preference apply live; speed and sensitivity need a restart.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("controls reload failed", zap.Error(err))
		}
	default:
	}
	controls, ok := g.watcher.Latest()
	if !ok {
		return
	}
	bindings, err := controls.InputBindings()
	if err != nil {
		g.logger.Warn("controls reload failed", zap.Error(err))
		return
	}
	g.input.SetBindings(bindings)
	g.captureCursor = controls.Cursor.Hide
	if !g.paused {
		g.setHideCursor(g.captureCursor)
	}
	g.logger.Info("controls reloaded")
}
