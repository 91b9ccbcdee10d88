package gfx

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestScaleFactorStaysInRange(t *testing.T) {
	for i := 0; i <= 100000; i++ {
		s := ScaleFactor(float32(i) * 0.001)
		assert.GreaterOrEqual(t, s, float32(0.5))
		assert.LessOrEqual(t, s, float32(1.0))
	}
}

func TestPulseSpinAtZero(t *testing.T) {
	got := PulseSpin(0)
	want := mgl32.Diag4(mgl32.Vec4{0.375, 0.375, 0.375, 1})
	assert.True(t, got.ApproxEqualThreshold(want, 1e-6), "got %v", got)
}

func TestPulseSpinQuarterTurn(t *testing.T) {
	quarter := math.Pi / 2 * float64(time.Second)
	elapsed := time.Duration(quarter)
	got := PulseSpin(elapsed).Mul4x1(mgl32.Vec4{1, 0, 0, 1})

	// sin(pi/2) = 1, so the pulse is at its maximum of 1.0.
	want := mgl32.Vec4{0, 0.5, 0, 1}
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5), "got %v", got)
}

func TestPulseSpinComposesScaleRotateScale(t *testing.T) {
	elapsed := 1700 * time.Millisecond
	tt := float32(elapsed.Seconds())
	s := ScaleFactor(tt)
	want := mgl32.Scale3D(0.5, 0.5, 0.5).
		Mul4(mgl32.HomogRotate3DZ(tt)).
		Mul4(mgl32.Scale3D(s, s, s))
	assert.True(t, PulseSpin(elapsed).ApproxEqualThreshold(want, 1e-6))
}
