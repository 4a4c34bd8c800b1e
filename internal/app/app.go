// Package app implements the main loop: it owns the window, the renderer and
// the scene and moves input, time and assets between them.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/planetfolio/internal/config"
	"github.com/Faultbox/planetfolio/internal/engine/camera"
	"github.com/Faultbox/planetfolio/internal/engine/input"
	"github.com/Faultbox/planetfolio/internal/engine/renderer"
	"github.com/Faultbox/planetfolio/internal/engine/screenshot"
	"github.com/Faultbox/planetfolio/internal/engine/texture"
	"github.com/Faultbox/planetfolio/internal/engine/window"
	"github.com/Faultbox/planetfolio/internal/logger"
	"github.com/Faultbox/planetfolio/internal/scene"
)

// Options are the runtime switches that do not live in the config file.
type Options struct {
	// ConfigPath is the file to watch when Watch is set.
	ConfigPath string
	Watch      bool
	// ScreenshotDir receives F12 captures.
	ScreenshotDir string
}

// App is the application instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	orbit    *camera.OrbitControl
	scene    *scene.Scene
	shots    *screenshot.Capture
	watcher  *config.Watcher

	cancelLoad context.CancelFunc
	loading    <-chan texture.Batch
}

// New creates the window, the renderer and the scene, and starts loading
// textures in the background.
func New(cfg *config.Config, opts Options) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config: cfg,
		input:  input.New(),
		orbit:  camera.NewOrbitControl(),
		shots:  screenshot.New(opts.ScreenshotDir, "planetfolio"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// renderer after window, the GL context must exist
	a.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		FOV:        cfg.Graphics.FOV,
		Background: cfg.Scene.Background,
		Stars:      scene.Stars(cfg.Scene.Stars),
		StarSize:   cfg.Scene.Stars.Size,
		Light:      cfg.Scene.Light,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene = scene.New(cfg, a.orbit.Enable)
	a.resize()

	if opts.Watch {
		if opts.ConfigPath == "" {
			logger.Warn("--watch given without a config file, ignoring")
		} else if a.watcher, err = config.Watch(opts.ConfigPath); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			logger.Info("watching config", zap.String("path", opts.ConfigPath))
		}
	}

	names := a.scene.TextureNames()
	if cfg.Assets.Sky != "" {
		names = append([]string{cfg.Assets.Sky}, names...)
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoad = cancel
	a.loading = texture.LoadAsync(ctx, cfg.Assets.Dir, names)

	if cfg.Scene.SkipIntro {
		a.scene.SkipIntro()
	}

	logger.Info("app initialized")
	return a, nil
}

// Run runs the main loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.pollAssets()
		a.pollConfig()

		st := a.scene.Frame(now.Sub(start).Seconds(), dt)
		if st.Entered {
			logger.Debug("interaction enabled", zap.Float64("elapsed", now.Sub(start).Seconds()))
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
				zap.Stringer("phase", a.scene.Phase()),
				zap.Bool("orbit", a.orbit.Enabled()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	step := a.config.Page.ScrollStep
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			a.resize()
		case input.EventScroll:
			a.scene.Scroll(ev.Scroll * step)
		case input.EventDrag:
			a.orbit.HandleDrag(ev.DragX, ev.DragY)
		case input.EventKeyDown:
			switch ev.Key {
			case sdl.K_ESCAPE:
				a.running = false
			case sdl.K_F12:
				a.screenshot()
			case sdl.K_SPACE:
				a.scene.SkipIntro()
			case sdl.K_DOWN, sdl.K_PAGEDOWN:
				a.scene.Scroll(-step)
			case sdl.K_UP, sdl.K_PAGEUP:
				a.scene.Scroll(step)
			case sdl.K_HOME:
				a.scene.ScrollTo(0)
			case sdl.K_END:
				a.scene.ScrollTo(a.scene.Page().MinOffset())
			}
		}
	}
}

func (a *App) resize() {
	w, h := a.window.Size()
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(w, h, dw, dh)
	a.scene.Resize(float32(h))
}

// pollAssets uploads textures once the background load finishes.
func (a *App) pollAssets() {
	if a.loading == nil {
		return
	}
	var batch texture.Batch
	select {
	case batch = <-a.loading:
	default:
		return
	}
	a.loading = nil
	if batch.Err != nil {
		logger.Warn("some textures failed to load", zap.Error(batch.Err))
	}

	loaded := make(map[string]uint32, len(batch.Images))
	for _, img := range batch.Images {
		loaded[img.Name] = a.renderer.UploadTexture(img.RGBA)
	}
	a.renderer.SetSky(loaded[a.config.Assets.Sky])
	a.scene.AttachTextures(loaded)
	logger.Info("textures loaded", zap.Int("count", len(batch.Images)))
}

func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Updates():
		a.scene.SetScroll(cfg.Scene.Scroll)
		logger.Info("scroll coefficients updated")
	default:
	}
}

func (a *App) render() {
	cam := *a.scene.Rig().Camera()
	view := a.orbit.ViewMatrix(cam)

	a.renderer.Begin()
	a.renderer.DrawSky()
	a.renderer.DrawStars(view)
	a.renderer.DrawBodies(view, a.scene.Rig().Bodies())

	w, _ := a.window.Size()
	src := a.scene.Panels(float32(w))
	panels := make([]renderer.Panel, len(src))
	for i, p := range src {
		panels[i] = renderer.Panel{X: p.X, Y: p.Y, W: p.W, H: p.H, Scale: p.Scale, Color: p.Color}
	}
	a.renderer.DrawPanels(panels)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Save(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource.
func (a *App) Close() {
	logger.Info("closing app")

	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
