package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/marchview/pkg/math"
)

func TestBasisOrthonormal(t *testing.T) {
	const eps = 1e-5
	for yaw := -gomath.Pi + 0.01; yaw <= gomath.Pi; yaw += 0.37 {
		for pitch := -gomath.Pi / 2; pitch <= gomath.Pi/2; pitch += 0.19 {
			b := NewBasis(yaw, pitch)
			for name, v := range map[string]math.Vec3{"forward": b.Forward, "left": b.Left, "cameraUp": b.CameraUp, "up": b.Up} {
				if !near(float64(v.Length()), 1, eps) {
					t.Errorf("yaw=%.2f pitch=%.2f: |%s| = %v", yaw, pitch, name, v.Length())
				}
			}
			if d := b.Forward.Dot(b.Left); !near(float64(d), 0, eps) {
				t.Errorf("yaw=%.2f pitch=%.2f: forward.left = %v", yaw, pitch, d)
			}
			if d := b.Forward.Dot(b.CameraUp); !near(float64(d), 0, eps) {
				t.Errorf("yaw=%.2f pitch=%.2f: forward.cameraUp = %v", yaw, pitch, d)
			}
			if d := b.Left.Dot(b.CameraUp); !near(float64(d), 0, eps) {
				t.Errorf("yaw=%.2f pitch=%.2f: left.cameraUp = %v", yaw, pitch, d)
			}
		}
	}
}

func TestBasisDependencies(t *testing.T) {
	a := NewBasis(0.4, -0.9)
	b := NewBasis(0.4, 0.6)
	if a.Left != b.Left {
		t.Errorf("left should not depend on pitch: %v vs %v", a.Left, b.Left)
	}
	if a.Up != math.Up || b.Up != math.Up {
		t.Errorf("up should be the world vertical")
	}
	if a.Forward == b.Forward || a.CameraUp == b.CameraUp {
		t.Errorf("forward and cameraUp should vary with pitch")
	}
}

func TestPixelStep(t *testing.T) {
	got := PixelStep(90, 1280)
	if !near(float64(got), 1.0/640, 1e-9) {
		t.Errorf("PixelStep(90, 1280) = %v, want %v", got, 1.0/640)
	}
}

func TestCenterRayIsForward(t *testing.T) {
	sizes := [][2]int{{1280, 720}, {800, 600}, {1, 1}, {1921, 1081}}
	for _, fov := range []float64{30, 75, 90, 120} {
		for _, sz := range sizes {
			b, rt := Build(1.1, -0.4, fov, sz[0], sz[1])
			d := rt.Direction(float32(sz[0])/2, float32(sz[1])/2)
			if !nearVec(d.Normalize(), b.Forward, 1e-5) {
				t.Errorf("fov=%v size=%v: center ray %v, forward %v", fov, sz, d.Normalize(), b.Forward)
			}
		}
	}
}

func TestRayTransformCorners(t *testing.T) {
	const w, h = 1280, 720
	b, rt := Build(0, 0, 90, w, h)

	if got := rt.Direction(0, 0); !nearVec(got, rt.TopLeft, 1e-6) {
		t.Errorf("origin fragment = %v, want top-left %v", got, rt.TopLeft)
	}

	// With fov 90 the top-left ray is forward + left + cameraUp*(h/w).
	want := b.Forward.Add(b.Left).Add(b.CameraUp.Scale(float32(h) / w))
	if !nearVec(rt.TopLeft, want, 1e-5) {
		t.Errorf("top-left = %v, want %v", rt.TopLeft, want)
	}

	right := rt.Direction(1, 0).Sub(rt.Direction(0, 0))
	if !nearVec(right, b.Left.Scale(-rt.PixelStep), 1e-6) {
		t.Errorf("step right = %v, want %v", right, b.Left.Scale(-rt.PixelStep))
	}
	down := rt.Direction(0, 1).Sub(rt.Direction(0, 0))
	if !nearVec(down, b.CameraUp.Scale(-rt.PixelStep), 1e-6) {
		t.Errorf("step down = %v, want %v", down, b.CameraUp.Scale(-rt.PixelStep))
	}
}

func TestRayTransformMatrixLayout(t *testing.T) {
	_, rt := Build(0.3, 0.2, 75, 640, 480)
	m := rt.Matrix
	if m[8] != 0 || m[9] != 0 || m[10] != 0 || m[11] != 0 {
		t.Errorf("z column should be zero, got %v", m[8:12])
	}
	if (math.Vec3{X: m[12], Y: m[13], Z: m[14]}) != rt.TopLeft || m[15] != 1 {
		t.Errorf("last column should carry top-left ray with w=1")
	}
}
