// Package camera provides the free-fly camera used to preview ray-marched
// scenes: orientation and position integration plus the per-frame mapping
// from fragment coordinates to world-space ray directions.
package camera

import (
	gomath "math"

	"github.com/Faultbox/marchview/internal/input"
	"github.com/Faultbox/marchview/pkg/math"
)

// State is the camera pose. Yaw is kept in (-Pi, Pi], pitch in [-Pi/2, Pi/2].
type State struct {
	Position math.Vec3
	Yaw      float64 // azimuth (radians)
	Pitch    float64 // elevation (radians)
}

// Params holds the tuning values for one update.
type Params struct {
	Speed         float32 // world units per second
	Sensitivity   float64
	ViewportWidth int
}

// Update applies one frame of input. Orientation only changes while the
// mouse is locked; position always integrates the held movement keys.
func Update(s State, in input.Frame, locked bool, p Params) State {
	if locked {
		s = Rotate(s, in.MouseDX, in.MouseDY, p.Sensitivity, p.ViewportWidth)
	}
	return Move(s, in.Held, in.DeltaTime, p.Speed)
}

// Rotate turns the camera by a mouse displacement in pixels. Both axes are
// scaled by the viewport width so that looking feels the same horizontally
// and vertically.
func Rotate(s State, dx, dy int, sensitivity float64, viewportWidth int) State {
	if viewportWidth <= 0 {
		return s
	}
	ax := sensitivity * float64(dx) / float64(viewportWidth)
	ay := sensitivity * float64(dy) / float64(viewportWidth)

	s.Yaw = WrapAngle(s.Yaw - ax)
	s.Pitch = clamp(s.Pitch-ay, -gomath.Pi/2, gomath.Pi/2)
	return s
}

// Move translates the camera along forward (W/S), left (A/D) and world up
// (E/Q). Axes are independent, so diagonal motion is not re-normalized.
func Move(s State, held input.KeySet, dt float64, speed float32) State {
	step := speed * float32(dt)
	if step == 0 || held == 0 {
		return s
	}
	b := NewBasis(s.Yaw, s.Pitch)

	s.Position = s.Position.
		AddScaled(b.Forward, step*held.Axis(input.KeyW, input.KeyS)).
		AddScaled(b.Left, step*held.Axis(input.KeyA, input.KeyD)).
		AddScaled(b.Up, step*held.Axis(input.KeyE, input.KeyQ))
	return s
}

// WrapAngle maps a into (-Pi, Pi] by subtracting the nearest multiple of 2*Pi.
func WrapAngle(a float64) float64 {
	a -= gomath.Round(a/(2*gomath.Pi)) * 2 * gomath.Pi
	if a <= -gomath.Pi {
		a += 2 * gomath.Pi
	} else if a > gomath.Pi {
		a -= 2 * gomath.Pi
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
