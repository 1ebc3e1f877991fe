// Package preview runs the frame loop: it samples input, moves the camera,
// rebuilds the ray transform and drives the shading backend, overlay and
// screen capture once per iteration.
package preview

import (
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/marchview/internal/camera"
	"github.com/Faultbox/marchview/internal/input"
	"github.com/Faultbox/marchview/internal/overlay"
	"github.com/Faultbox/marchview/pkg/math"
)

// Shading receives the per-frame uniforms.
type Shading interface {
	SetUniforms(position math.Vec3, fragCoordToRayDir math.Mat4, time float32)
}

// Surface is the render target the frame is drawn to and presented from.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	DrawFullscreen()
	Snapshot() (image.Image, error)
	Present()
}

// OverlayRenderer draws text on top of the shaded frame.
type OverlayRenderer interface {
	DrawControls()
	DrawFrameRate(fps float64)
}

// Capturer exports a frame and returns where it was written.
type Capturer interface {
	Capture(img image.Image) (string, error)
}

// ChangeDetector reports whether the shader source changed since the last call.
type ChangeDetector interface {
	Changed() bool
}

// Reloader recompiles the shader.
type Reloader interface {
	Reload() error
}

// Settings are the camera tuning values.
type Settings struct {
	FOV         float64 // horizontal, degrees
	Speed       float32
	Sensitivity float64
}

// State is the loop state.
type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "running"
}

// Options wires the loop to its collaborators. Watcher and Reloader are
// optional; Logger and Clock default to a no-op logger and time.Now.
type Options struct {
	Input    input.Source
	Surface  Surface
	Shading  Shading
	Overlay  OverlayRenderer
	Capturer Capturer
	Watcher  ChangeDetector
	Reloader Reloader
	Settings Settings
	Logger   *zap.Logger
	Clock    func() time.Time
}

// Orchestrator owns the camera and overlay state across iterations.
type Orchestrator struct {
	opts Options
	log  *zap.Logger
	now  func() time.Time

	state   State
	camera  camera.State
	toggles overlay.State

	start time.Time
	last  time.Time
}

// New creates a loop with the camera at the origin looking along +X.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		opts:    opts,
		log:     opts.Logger,
		now:     opts.Clock,
		state:   Running,
		toggles: overlay.Default(),
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}
	o.start = o.now()
	o.last = o.start
	return o
}

// State returns the loop state.
func (o *Orchestrator) State() State { return o.state }

// Camera returns the current camera pose.
func (o *Orchestrator) Camera() camera.State { return o.camera }

// Toggles returns the current overlay and mouse-lock state.
func (o *Orchestrator) Toggles() overlay.State { return o.toggles }

// Run centers the cursor and iterates until the window is closed.
func (o *Orchestrator) Run() {
	o.log.Info("starting preview loop")
	o.opts.Input.Recenter()
	for o.Step() == Running {
	}
	o.log.Info("preview loop closed")
}

// Step runs one iteration and returns the resulting state. Every iteration
// that does not close presents exactly one frame.
func (o *Orchestrator) Step() State {
	if o.state == Closed {
		return Closed
	}
	in := o.opts.Input

	// 1. Drain discrete events
	events := in.PollEvents()
	if input.Contains(events, input.EventClose) {
		o.state = Closed
		return Closed
	}
	for _, e := range events {
		if e.Type == input.EventResize {
			o.opts.Surface.Resize(e.Width, e.Height)
		}
	}
	o.reloadIfChanged()

	// 2. Overlay and mouse-lock toggles
	o.toggles = overlay.Reduce(o.toggles, events)
	captureFrame := input.Contains(events, input.EventScreenshot)

	// 3. Frame timing
	now := o.now()
	frame := input.Frame{
		DeltaTime: now.Sub(o.last).Seconds(),
		Events:    events,
	}
	o.last = now

	in.SetCursorVisible(!o.toggles.MouseLocked)
	width, height := o.opts.Surface.Size()
	width, height = max(width, 1), max(height, 1)

	// 4. Mouse look
	if o.toggles.MouseLocked {
		frame.MouseDX, frame.MouseDY = in.CursorOffset()
		in.Recenter()
	}

	// 5. Movement
	frame.Held = input.HeldKeys(in)
	o.camera = camera.Update(o.camera, frame, o.toggles.MouseLocked, camera.Params{
		Speed:         o.opts.Settings.Speed,
		Sensitivity:   o.opts.Settings.Sensitivity,
		ViewportWidth: width,
	})

	// 6. Ray basis
	_, rays := camera.Build(o.camera.Yaw, o.camera.Pitch, o.opts.Settings.FOV, width, height)

	// 7-8. Shade the viewport
	elapsed := float32(now.Sub(o.start).Seconds())
	o.opts.Shading.SetUniforms(o.camera.Position, rays.Matrix, elapsed)
	o.opts.Surface.DrawFullscreen()

	// 9. Screenshot of the shaded frame, before text is drawn
	if captureFrame {
		o.capture()
	}

	// 10-11. Overlay
	if o.toggles.ControlsVisible {
		o.opts.Overlay.DrawControls()
	}
	if o.toggles.FrameRateVisible {
		o.opts.Overlay.DrawFrameRate(overlay.FrameRate(frame.DeltaTime))
	}

	// 12. Present
	o.opts.Surface.Present()
	return Running
}

func (o *Orchestrator) capture() {
	img, err := o.opts.Surface.Snapshot()
	if err != nil {
		o.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := o.opts.Capturer.Capture(img)
	if err != nil {
		o.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	o.log.Info("screenshot saved", zap.String("file", name))
}

func (o *Orchestrator) reloadIfChanged() {
	if o.opts.Watcher == nil || o.opts.Reloader == nil || !o.opts.Watcher.Changed() {
		return
	}
	if err := o.opts.Reloader.Reload(); err != nil {
		o.log.Warn("shader reload failed, keeping previous program", zap.Error(err))
		return
	}
	o.log.Info("shader reloaded")
}
