// Package config handles preview configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned by Load when usage was requested.
	ErrHelp = errors.New("help requested")
	// ErrNoInput is returned by Load when no shader file was given.
	ErrNoInput = errors.New("no input file specified")
	// ErrFlags is returned by Load when the command line could not be
	// parsed. The parser has already written the message and usage.
	ErrFlags = errors.New("invalid command line")
)

// Config holds all preview settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Shader  ShaderConfig  `yaml:"shader"`
	Overlay OverlayConfig `yaml:"overlay"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`

	// SavePath, when set, receives the effective configuration before startup.
	SavePath string `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	FrameRate int  `yaml:"frame_rate"` // frames per second cap, 0 = uncapped
	VSync     bool `yaml:"vsync"`
}

// CameraConfig holds free-fly camera tuning.
type CameraConfig struct {
	FOV         float64 `yaml:"fov"`   // horizontal, degrees
	Speed       float32 `yaml:"speed"` // units per second
	Sensitivity float64 `yaml:"sensitivity"`
}

// ShaderConfig holds the ray-marching program source settings.
type ShaderConfig struct {
	Input string `yaml:"input"`
	Watch bool   `yaml:"watch"` // recompile when the file changes
}

// OverlayConfig holds text overlay settings.
type OverlayConfig struct {
	Font     string  `yaml:"font"` // empty selects the bundled face
	FontSize float64 `yaml:"font_size"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock preview settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			FrameRate: 240,
			VSync:     false,
		},
		Camera: CameraConfig{
			FOV:         75,
			Speed:       1.5,
			Sensitivity: 1.3,
		},
		Overlay: OverlayConfig{
			FontSize: 16,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the settings the preview cannot start without.
func (c *Config) Validate() error {
	switch {
	case c.Shader.Input == "":
		return ErrNoInput
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FrameRate < 0:
		return fmt.Errorf("invalid frame rate %d", c.Window.FrameRate)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("field of view %g outside (0, 180)", c.Camera.FOV)
	case c.Overlay.FontSize <= 0:
		return fmt.Errorf("invalid font size %g", c.Overlay.FontSize)
	}
	return nil
}
