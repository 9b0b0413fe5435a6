package mathutil

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAngle(t *testing.T) {
	for _, c := range []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{359.9999, 359.9999},
		{360, 0},
		{-1, 359},
		{-90, 270},
		{-359.9999, 0.0001},
		{-0.0001, 359.9999},
		{720, 0},
		{-720.5, 359.5},
		{1e6 + 0.25, 280.25},
		{-1e-14, 0},
		{-5e-15, 0},
		{-1e-20, 0},
	} {
		got := NormalizeAngle(c.in)
		assert.InDelta(t, c.want, got, 1e-5, "NormalizeAngle(%v)", c.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestNormalizeAngleExactBoundary(t *testing.T) {
	// Exact, not merely within tolerance.
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.Equal(t, 0.0, NormalizeAngle(-360))
	assert.Equal(t, 359.9999, NormalizeAngle(-0.0001))
	assert.Equal(t, 0.0001, NormalizeAngle(-359.9999))
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for a := -1000.0; a <= 1000; a += 13.37 {
		n := NormalizeAngle(a)
		assert.Equal(t, n, NormalizeAngle(n), "angle %v", a)
	}
	for _, a := range []float64{-1e-14, -5e-15, -1e-20, 360 - 1e-14} {
		n := NormalizeAngle(a)
		assert.Less(t, n, 360.0, "angle %v", a)
		assert.Equal(t, n, NormalizeAngle(n), "angle %v", a)
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(NormalizeAngle(math.NaN())))
	assert.True(t, math.IsNaN(NormalizeAngle(math.Inf(1))))
	assert.True(t, math.IsNaN(NormalizeAngle(math.Inf(-1))))
}

func TestAngleDist(t *testing.T) {
	assert.InDelta(t, 20.0, AngleDist(350, 10), 1e-9)
	assert.InDelta(t, 20.0, AngleDist(10, 350), 1e-9)
	assert.InDelta(t, 180.0, AngleDist(0, 180), 1e-9)
	assert.InDelta(t, 0.0, AngleDist(-90, 270), 1e-9)
	assert.InDelta(t, 45.0, AngleDist(270, 315), 1e-9)
}

func TestDeg2Rad(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Deg2Rad(90), 1e-15)
	assert.InDelta(t, -math.Pi, Deg2Rad(-180), 1e-15)
	assert.InDelta(t, 123.456, Rad2Deg(Deg2Rad(123.456)), 1e-12)

	e := Euler{30, 15, 20}.Rad()
	assert.InDelta(t, math.Pi/6, e.Pitch(), 1e-15)
	assert.InDelta(t, math.Pi/12, e.Yaw(), 1e-15)
	assert.InDelta(t, math.Pi/9, e.Roll(), 1e-15)
}

func TestCheckFinite(t *testing.T) {
	require.NoError(t, CheckFinite(0, -1, 1e300))

	err := CheckFinite(1, math.NaN())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Contains(t, err.Error(), "value 1")

	assert.ErrorIs(t, CheckFinite(math.Inf(-1)), ErrNonFinite)
}
