package gfx

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Animation maps time since the loop started to the model transform.
type Animation func(elapsed time.Duration) mgl32.Mat4

// ScaleFactor oscillates in [0.5, 1.0].
func ScaleFactor(t float32) float32 {
	return math32.Sin(t)*0.25 + 0.75
}

// PulseSpin halves the quad, spins it t radians about Z and pulses it by
// ScaleFactor(t). Every step right-multiplies the running matrix, so the
// order is scale, rotate, scale.
func PulseSpin(elapsed time.Duration) mgl32.Mat4 {
	t := float32(elapsed.Seconds())
	scale := ScaleFactor(t)

	transform := mgl32.Ident4()
	transform = transform.Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
	transform = transform.Mul4(mgl32.HomogRotate3DZ(t))
	transform = transform.Mul4(mgl32.Scale3D(scale, scale, scale))
	return transform
}
