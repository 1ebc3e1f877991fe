package camera

import (
	gomath "math"

	"github.com/Faultbox/marchview/pkg/math"
)

// Basis is the camera's direction frame. Forward and CameraUp tilt with
// pitch, Left depends on yaw only and Up is the fixed world vertical.
type Basis struct {
	Forward  math.Vec3
	Left     math.Vec3
	Up       math.Vec3
	CameraUp math.Vec3
}

// NewBasis derives the direction frame from spherical angles (Z up).
func NewBasis(yaw, pitch float64) Basis {
	sy, cy := gomath.Sincos(yaw)
	sp, cp := gomath.Sincos(pitch)

	return Basis{
		Forward:  math.Vec3{X: float32(cp * cy), Y: float32(cp * sy), Z: float32(sp)},
		Left:     math.Vec3{X: float32(-sy), Y: float32(cy), Z: 0},
		Up:       math.Up,
		CameraUp: math.Vec3{X: float32(-sp * cy), Y: float32(-sp * sy), Z: float32(cp)},
	}
}

// PixelStep returns the change in (un-normalized) ray direction per pixel
// for a horizontal field of view in degrees. The vertical field of view
// follows from the aspect ratio.
func PixelStep(fovDegrees float64, viewportWidth int) float32 {
	half := fovDegrees * gomath.Pi / 360
	return float32(2 * gomath.Tan(half) / float64(viewportWidth))
}

// RayTransform maps homogeneous fragment coordinates (x, y, 0, 1), origin
// top-left, to world-space ray directions. Directions are not normalized.
type RayTransform struct {
	Matrix    math.Mat4
	TopLeft   math.Vec3
	PixelStep float32
}

// Direction returns the ray direction for fragment coordinate (px, py).
func (t RayTransform) Direction(px, py float32) math.Vec3 {
	return t.Matrix.MulVec4(math.Vec4{px, py, 0, 1}).XYZ()
}

// Build computes the basis and ray transform for one frame. viewportWidth
// must be positive.
func Build(yaw, pitch, fovDegrees float64, viewportWidth, viewportHeight int) (Basis, RayTransform) {
	b := NewBasis(yaw, pitch)
	step := PixelStep(fovDegrees, viewportWidth)

	halfW := float32(viewportWidth) / 2
	halfH := float32(viewportHeight) / 2
	topLeft := b.Forward.Add(b.Left.Scale(halfW).Add(b.CameraUp.Scale(halfH)).Scale(step))

	// Column 0 advances right, column 1 advances down, the fragment z is
	// ignored and column 3 carries the top-left ray.
	m := math.FromColumns(
		b.Left.Scale(-step),
		b.CameraUp.Scale(-step),
		math.Vec3{},
		topLeft,
	)

	return b, RayTransform{Matrix: m, TopLeft: topLeft, PixelStep: step}
}
