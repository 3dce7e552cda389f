// Package app wires the viewer together: window, renderer, camera, the
// assembled scene, and the main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/frostpine/evergreen/internal/config"
	"github.com/frostpine/evergreen/internal/engine/animation"
	"github.com/frostpine/evergreen/internal/engine/camera"
	"github.com/frostpine/evergreen/internal/engine/compose"
	"github.com/frostpine/evergreen/internal/engine/input"
	"github.com/frostpine/evergreen/internal/engine/renderer"
	"github.com/frostpine/evergreen/internal/engine/scene"
	"github.com/frostpine/evergreen/internal/engine/window"
	"github.com/frostpine/evergreen/internal/logger"
	"github.com/frostpine/evergreen/pkg/math"
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera

	scene  *scene.Scene
	sched  animation.Scheduler
	reveal *animation.Reveal
	snow   *renderer.Snow

	dragging     bool
	dragX, dragY int
	idleOrbit    bool
}

// New builds the scene from configuration and creates all subsystems.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("layers", len(cfg.Tree.Layers)),
		zap.Uint64("seed", cfg.Tree.Seed),
	)

	a := &App{
		cfg:       cfg,
		idleOrbit: cfg.Camera.AutoOrbit,
	}

	s, err := compose.Assemble(layerSpecs(cfg.Tree.Layers), topperSpec(cfg.Tree.Topper), baseSpec(cfg.Tree.Base), cfg.Tree.Seed)
	if err != nil {
		return nil, fmt.Errorf("assemble scene: %w", err)
	}
	a.scene = s
	logger.Info("scene assembled", zap.Int("nodes", s.NodeCount()))

	// Window first; the OpenGL context must exist before the renderer.
	a.window, err = window.New(window.Config{
		Title:      "Evergreen",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if cfg.Snow.Enabled {
		a.snow, err = renderer.NewSnow(renderer.SnowConfig{
			Count:     cfg.Snow.Count,
			Area:      cfg.Snow.Area,
			FallSpeed: cfg.Snow.FallSpeed,
			Seed:      cfg.Snow.Seed,
		})
		if err != nil {
			a.renderer.Close()
			a.window.Close()
			return nil, fmt.Errorf("create snow: %w", err)
		}
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	a.camera.Distance = cfg.Camera.Distance
	a.camera.RotationX = cfg.Camera.Pitch
	a.camera.AutoOrbitSpeed = cfg.Camera.AutoOrbitSpeed
	a.camera.SetCenter(math.Vec3{Y: sceneCenterY(cfg.Tree)})

	if cfg.Reveal.Enabled {
		a.reveal = animation.NewReveal(revealTargets(a.scene, len(cfg.Tree.Layers)), cfg.Reveal.Duration, cfg.Reveal.Stagger)
	}

	logger.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents(float32(dt))

		a.update(dt)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("frame_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up all subsystems.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.snow != nil {
		a.snow.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents(dt float32) {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
				a.running = false
			case sdl.SCANCODE_SPACE:
				if a.reveal != nil && !a.reveal.Done() {
					a.reveal.Skip()
				}
			case sdl.SCANCODE_O:
				a.idleOrbit = !a.idleOrbit
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.dragX, a.dragY = event.MouseX, event.MouseY
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(event.MouseX-a.dragX), float32(event.MouseY-a.dragY))
				a.dragX, a.dragY = event.MouseX, event.MouseY
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(event.WheelY)
		}
	}

	if a.idleOrbit && !a.dragging {
		a.camera.AutoOrbit(dt)
	}
}

func (a *App) update(dt float64) {
	if !a.sched.Tick(a.scene, dt) {
		logger.Warn("frame skipped", zap.Float64("dt", dt))
	}
	// The reveal runs after the rule pass so its tween scale wins over
	// rule-driven scale (the topper's pulse) until the grow-in finishes.
	// World matrices are refreshed afterwards so the tween reaches the
	// rendered transforms this frame, not next.
	if a.reveal != nil && !a.reveal.Done() {
		a.reveal.Update(float32(dt))
		a.scene.Root.UpdateWorld(math.Identity())
	}
	if a.snow != nil {
		a.snow.Update(float32(dt))
	}
}

func (a *App) render() {
	view := a.camera.ViewMatrix()
	a.renderer.Draw(a.scene, view)
	if a.snow != nil {
		a.snow.Draw(a.renderer.ViewProj(view))
	}
}

// revealTargets returns the nodes the startup reveal scales in: the layer
// nodes bottom-up, then the topper.
func revealTargets(s *scene.Scene, layerCount int) []*scene.Node {
	var nodes []*scene.Node
	for i := 0; i < layerCount; i++ {
		if n := s.Find(fmt.Sprintf("layer-%d", i)); n != nil {
			nodes = append(nodes, n)
		}
	}
	if n := s.Find("topper"); n != nil {
		nodes = append(nodes, n)
	}
	return nodes
}

// sceneCenterY picks a vertical orbit center halfway up the layer stack.
func sceneCenterY(tree config.TreeConfig) float32 {
	if len(tree.Layers) == 0 {
		return 0
	}
	return (tree.Layers[0].OffsetY + tree.Topper.OffsetY) / 2
}

func layerSpecs(layers []config.LayerConfig) []compose.LayerSpec {
	specs := make([]compose.LayerSpec, len(layers))
	for i, l := range layers {
		specs[i] = compose.LayerSpec{
			RadiusBottom: l.RadiusBottom,
			RadiusTop:    l.RadiusTop,
			Height:       l.Height,
			Ornaments:    l.Ornaments,
			OffsetY:      l.OffsetY,
			Scale:        l.Scale,
			SpinSpeed:    l.SpinSpeed,
		}
	}
	return specs
}

func topperSpec(t config.TopperConfig) compose.TopperSpec {
	return compose.TopperSpec{
		Points:         t.Points,
		OuterRadius:    t.OuterRadius,
		InnerRadius:    t.InnerRadius,
		Depth:          t.Depth,
		OffsetY:        t.OffsetY,
		SpinSpeed:      t.SpinSpeed,
		PulseAmplitude: t.PulseAmplitude,
		PulseFrequency: t.PulseFrequency,
	}
}

func baseSpec(b config.BaseConfig) compose.BaseSpec {
	return compose.BaseSpec{
		Radius:  b.Radius,
		Height:  b.Height,
		OffsetY: b.OffsetY,
	}
}
