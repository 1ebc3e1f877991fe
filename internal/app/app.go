// Package app wires the window, shader, renderer and overlay into a
// running preview.
package app

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/marchview/internal/capture"
	"github.com/Faultbox/marchview/internal/config"
	"github.com/Faultbox/marchview/internal/engine/renderer"
	"github.com/Faultbox/marchview/internal/engine/sdlinput"
	"github.com/Faultbox/marchview/internal/engine/shader"
	"github.com/Faultbox/marchview/internal/engine/window"
	"github.com/Faultbox/marchview/internal/logger"
	"github.com/Faultbox/marchview/internal/overlay"
	"github.com/Faultbox/marchview/internal/preview"
	"github.com/Faultbox/marchview/internal/watch"
)

// Title is the window title.
const Title = "marchview"

// App is the preview instance.
type App struct {
	config   *config.Config
	window   *window.Window
	program  *shader.RayProgram
	renderer *renderer.Renderer
	watcher  *watch.Watcher
	loop     *preview.Orchestrator
}

// New creates the window and compiles the shader. Any error here is fatal.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing preview",
		zap.String("input", cfg.Shader.Input),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	src, err := shader.ReadSource(cfg.Shader.Input)
	if err != nil {
		return nil, err
	}

	a := &App{config: cfg}

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Title:     Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		VSync:     cfg.Window.VSync,
		FrameRate: cfg.Window.FrameRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	version, err := shader.Init()
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("OpenGL initialized", zap.String("glsl", version))

	a.program, err = shader.NewRayProgram(cfg.Shader.Input, src)
	if err != nil {
		a.Close()
		return nil, err
	}

	// Renderer needs the context and the program
	a.renderer, err = renderer.New(a.window, a.program)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var reloader preview.Reloader
	var detector preview.ChangeDetector
	if cfg.Shader.Watch {
		a.watcher, err = watch.New(cfg.Shader.Input, watch.DefaultSettle, logger.Log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", cfg.Shader.Input, err)
		}
		reloader, detector = a.program, a.watcher
		logger.Info("watching shader for changes")
	}

	a.loop = preview.New(preview.Options{
		Input:    sdlinput.New(a.window),
		Surface:  a.renderer,
		Shading:  a.program,
		Overlay:  overlay.NewPainter(loadFace(cfg.Overlay), a.renderer),
		Capturer: capture.New(cfg.Capture.Dir),
		Watcher:  detector,
		Reloader: reloader,
		Settings: preview.Settings{
			FOV:         cfg.Camera.FOV,
			Speed:       cfg.Camera.Speed,
			Sensitivity: cfg.Camera.Sensitivity,
		},
		Logger: logger.Log,
	})

	logger.Info("preview initialized successfully")
	return a, nil
}

// loadFace returns nil when the font cannot be loaded; the preview then
// runs without text.
func loadFace(cfg config.OverlayConfig) font.Face {
	face, err := overlay.LoadFace(cfg.Font, cfg.FontSize)
	if err != nil {
		logger.Warn("overlay font unavailable, text disabled",
			zap.String("font", cfg.Font),
			zap.Error(err),
		)
		return nil
	}
	return face
}

// Run blocks until the window is closed.
func (a *App) Run() {
	a.loop.Run()
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("closing preview")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.window != nil {
		a.window.Close()
	}
}
