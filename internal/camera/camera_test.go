package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/marchview/internal/input"
	"github.com/Faultbox/marchview/pkg/math"
)

func near(a, b, eps float64) bool {
	return gomath.Abs(a-b) <= eps
}

func nearVec(a, b math.Vec3, eps float64) bool {
	return near(float64(a.X), float64(b.X), eps) &&
		near(float64(a.Y), float64(b.Y), eps) &&
		near(float64(a.Z), float64(b.Z), eps)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{gomath.Pi, gomath.Pi},
		{-gomath.Pi, gomath.Pi},
		{3 * gomath.Pi, gomath.Pi},
		{-3 * gomath.Pi, gomath.Pi},
		{2*gomath.Pi + 0.25, 0.25},
		{-2*gomath.Pi - 0.25, -0.25},
		{100.0, 100 - 32*gomath.Pi},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if !near(got, tt.want, 1e-9) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got <= -gomath.Pi || got > gomath.Pi {
			t.Errorf("WrapAngle(%v) = %v, outside (-Pi, Pi]", tt.in, got)
		}
	}
}

func TestRotateYawWrapPreservesDirection(t *testing.T) {
	const width = 1000
	// Displacement that would push yaw from 0 to 3*Pi.
	dx := -int(gomath.Round(3 * gomath.Pi * width))
	s := Rotate(State{}, dx, 0, 1.0, width)

	if s.Yaw <= -gomath.Pi || s.Yaw > gomath.Pi {
		t.Fatalf("yaw %v outside (-Pi, Pi]", s.Yaw)
	}
	raw := -1.0 * float64(dx) / width
	if !near(gomath.Cos(s.Yaw), gomath.Cos(raw), 1e-9) || !near(gomath.Sin(s.Yaw), gomath.Sin(raw), 1e-9) {
		t.Errorf("wrapped yaw %v does not match direction of %v", s.Yaw, raw)
	}
}

func TestRotateManyUpdatesStayWrapped(t *testing.T) {
	s := State{}
	for i := 0; i < 500; i++ {
		s = Rotate(s, 977, -53*(i%7-3), 1.3, 640)
		if s.Yaw <= -gomath.Pi || s.Yaw > gomath.Pi {
			t.Fatalf("step %d: yaw %v outside (-Pi, Pi]", i, s.Yaw)
		}
		if s.Pitch < -gomath.Pi/2 || s.Pitch > gomath.Pi/2 {
			t.Fatalf("step %d: pitch %v outside [-Pi/2, Pi/2]", i, s.Pitch)
		}
	}
}

func TestRotatePitchClamp(t *testing.T) {
	tests := []struct {
		name string
		dy   int
		want float64
	}{
		{"look up saturates", -1 << 30, gomath.Pi / 2},
		{"look down saturates", 1 << 30, -gomath.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Rotate(State{}, 0, tt.dy, 1.3, 1280)
			if s.Pitch != tt.want {
				t.Errorf("pitch = %v, want %v", s.Pitch, tt.want)
			}
			b := NewBasis(s.Yaw, s.Pitch)
			if b.CameraUp.Z < 0 {
				t.Errorf("cameraUp.z = %v, want >= 0", b.CameraUp.Z)
			}
		})
	}
}

func TestRotateZeroWidthIsNoop(t *testing.T) {
	s := State{Yaw: 0.3, Pitch: 0.1}
	if got := Rotate(s, 100, 100, 1, 0); got != s {
		t.Errorf("Rotate with zero width changed state: %+v", got)
	}
}

func TestMoveForwardThenLook(t *testing.T) {
	s := State{}
	in := input.Frame{DeltaTime: 1.0, Held: input.KeySet(0).With(input.KeyW)}
	s = Update(s, in, false, Params{Speed: 2.0, Sensitivity: 1.0, ViewportWidth: 1280})

	if !nearVec(s.Position, math.Vec3{X: 2}, 1e-6) {
		t.Fatalf("position = %v, want (2, 0, 0)", s.Position)
	}

	look := input.Frame{MouseDX: 640}
	s = Update(s, look, true, Params{Speed: 2.0, Sensitivity: 1.0, ViewportWidth: 1280})
	if !near(s.Yaw, -0.5, 1e-12) {
		t.Errorf("yaw = %v, want -0.5", s.Yaw)
	}
	if !nearVec(s.Position, math.Vec3{X: 2}, 1e-6) {
		t.Errorf("position moved without held keys: %v", s.Position)
	}
}

func TestUpdateIgnoresMouseWhenUnlocked(t *testing.T) {
	in := input.Frame{MouseDX: 300, MouseDY: -200}
	s := Update(State{}, in, false, Params{Sensitivity: 1.3, ViewportWidth: 1280})
	if s.Yaw != 0 || s.Pitch != 0 {
		t.Errorf("orientation changed while unlocked: %+v", s)
	}
}

func TestMoveAxes(t *testing.T) {
	tests := []struct {
		name string
		keys []input.Key
		want math.Vec3
	}{
		{"backward", []input.Key{input.KeyS}, math.Vec3{X: -1}},
		{"left", []input.Key{input.KeyA}, math.Vec3{Y: 1}},
		{"right", []input.Key{input.KeyD}, math.Vec3{Y: -1}},
		{"up", []input.Key{input.KeyE}, math.Vec3{Z: 1}},
		{"down", []input.Key{input.KeyQ}, math.Vec3{Z: -1}},
		{"opposing cancel", []input.Key{input.KeyW, input.KeyS}, math.Vec3{}},
		{"diagonal not normalized", []input.Key{input.KeyW, input.KeyA}, math.Vec3{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var held input.KeySet
			for _, k := range tt.keys {
				held = held.With(k)
			}
			s := Move(State{}, held, 0.5, 2)
			if !nearVec(s.Position, tt.want, 1e-6) {
				t.Errorf("position = %v, want %v", s.Position, tt.want)
			}
		})
	}
}

func TestMoveUpIgnoresPitch(t *testing.T) {
	s := State{Pitch: 1.2, Yaw: 0.7}
	s = Move(s, input.KeySet(0).With(input.KeyE), 1, 1)
	if !nearVec(s.Position, math.Vec3{Z: 1}, 1e-6) {
		t.Errorf("vertical move should follow world up, got %v", s.Position)
	}
}
