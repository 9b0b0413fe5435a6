package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotconv/internal/mathutil"
)

func TestParseList(t *testing.T) {
	vals, err := parseList("30, 15,20", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 15, 20}, vals)

	_, err = parseList("1,2", 3)
	assert.ErrorContains(t, err, "want 3")

	_, err = parseList("1,x,3", 3)
	assert.Error(t, err)

	_, err = parseList("1,NaN,3", 3)
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0x1a, 0x2b, 0x3c}, c)

	c, err = parseHexColor("ffffff")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{255, 255, 255}, c)

	_, err = parseHexColor("fff")
	assert.ErrorContains(t, err, "RRGGBB")

	_, err = parseHexColor("zz0000")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "359.9999", fmtFloat(mathutil.NormalizeAngle(-0.0001)))
	assert.Equal(t, "pitch=90.0000 yaw=0.0000 roll=-45.5000", fmtEuler(mathutil.Euler{90, 0, -45.5}))
	assert.Equal(t, "x=0.000000 y=0.000000 z=0.000000 w=1.000000", fmtQuat(mathutil.QuatIdentity()))
}
