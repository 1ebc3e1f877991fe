package config

import (
	"io"

	"github.com/spf13/pflag"
)

const usageHeader = `Preview a GLSL ray-marching shader. The shader must implement
  vec3 rayColor(vec3 position, vec3 direction)
and may read the uniform "time" (seconds since start).

Usage: marchview [options] <input.glsl>
`

// flags holds parsed command-line values. Only flags that were explicitly
// set override file values.
type flags struct {
	set *pflag.FlagSet

	config     string
	saveConfig string
	debug      bool
	logFile    string

	width     int
	height    int
	frameRate int

	fov         float64
	speed       float32
	sensitivity float64

	font       string
	watch      bool
	captureDir string
}

func newFlags(out io.Writer) *flags {
	d := Default()
	f := &flags{set: pflag.NewFlagSet("marchview", pflag.ContinueOnError)}
	fs := f.set
	fs.SetOutput(out)
	fs.SortFlags = false

	fs.IntVarP(&f.width, "width", "W", d.Window.Width, "width of window (in pixels)")
	fs.IntVarP(&f.height, "height", "H", d.Window.Height, "height of window (in pixels)")
	fs.IntVarP(&f.frameRate, "frame-rate", "f", d.Window.FrameRate, "frame rate limit (in frames per second, 0 = none)")
	fs.Float64VarP(&f.fov, "fov", "v", d.Camera.FOV, "horizontal field of view (in degrees)")
	fs.Float32VarP(&f.speed, "speed", "s", d.Camera.Speed, "speed of camera (in units per second)")
	fs.Float64VarP(&f.sensitivity, "sensitivity", "S", d.Camera.Sensitivity, "mouse sensitivity")
	fs.StringVarP(&f.font, "font", "F", d.Overlay.Font, "overlay font file (default: bundled sans-serif)")
	fs.BoolVar(&f.watch, "watch", false, "recompile the shader when the input file changes")
	fs.StringVar(&f.captureDir, "capture-dir", "", "directory for screenshots (default: working directory)")
	fs.StringVar(&f.config, "config", "", "path to config file")
	fs.StringVar(&f.saveConfig, "save-config", "", "write the effective config to this path")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "also write logs to this file")

	fs.Usage = func() {
		io.WriteString(out, usageHeader+"\nOptions:\n")
		io.WriteString(out, fs.FlagUsages())
	}
	return f
}

func (f *flags) parse(args []string) error {
	return f.set.Parse(args)
}

// input returns the positional shader path.
func (f *flags) input() string {
	return f.set.Arg(0)
}

// apply applies explicitly set flags to the config.
func (f *flags) apply(cfg *Config) {
	changed := f.set.Changed

	if changed("width") {
		cfg.Window.Width = f.width
	}
	if changed("height") {
		cfg.Window.Height = f.height
	}
	if changed("frame-rate") {
		cfg.Window.FrameRate = f.frameRate
	}
	if changed("fov") {
		cfg.Camera.FOV = f.fov
	}
	if changed("speed") {
		cfg.Camera.Speed = f.speed
	}
	if changed("sensitivity") {
		cfg.Camera.Sensitivity = f.sensitivity
	}
	if changed("font") {
		cfg.Overlay.Font = f.font
	}
	if changed("watch") {
		cfg.Shader.Watch = f.watch
	}
	if changed("capture-dir") {
		cfg.Capture.Dir = f.captureDir
	}
	if changed("debug") {
		cfg.Logging.Level = Default().Logging.Level
		if f.debug {
			cfg.Logging.Level = "debug"
		}
	}
	if changed("log-file") {
		cfg.Logging.LogFile = f.logFile
	}
	if in := f.input(); in != "" {
		cfg.Shader.Input = in
	}
	cfg.SavePath = f.saveConfig
}
