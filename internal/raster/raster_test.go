package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotconv/internal/mathutil"
)

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	lc := DefaultLightConfig()
	n := mathutil.Vec3{0, 0, 1}

	far := [3]mathutil.Vec3{{0, 0, -1}, {32, 0, -1}, {0, 32, -1}}
	near := [3]mathutil.Vec3{{0, 0, 1}, {32, 0, 1}, {0, 32, 1}}

	RasterizeTriangle(fb, near, n, [3]uint8{0, 0, 255}, &lc)
	RasterizeTriangle(fb, far, n, [3]uint8{255, 0, 0}, &lc)

	img := fb.Image()
	c := img.NRGBAAt(4, 4)
	assert.Equal(t, uint8(255), c.A)
	assert.Greater(t, c.B, c.R, "near blue face must win over far red face")
	assert.InDelta(t, 1.0, fb.ZBuf[4*32+4], 1e-12)

	// Outside the triangle stays transparent.
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(30, 30))
}

func TestRasterizeTriangleDegenerateAndOffscreen(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	n := mathutil.Vec3{0, 0, 1}

	RasterizeTriangle(fb, [3]mathutil.Vec3{{1, 1, 0}, {2, 2, 0}, {3, 3, 0}}, n, [3]uint8{255, 255, 255}, &lc)
	RasterizeTriangle(fb, [3]mathutil.Vec3{{-20, -20, 0}, {-10, -20, 0}, {-20, -10, 0}}, n, [3]uint8{255, 255, 255}, &lc)

	for _, v := range fb.Color {
		require.Zero(t, v)
	}
}

func TestFillImageAndSample(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	bg.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	bg.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	r, _, b, a := SampleBilinear(bg, 0, 0.5)
	assert.Equal(t, [3]uint8{255, 0, 255}, [3]uint8{r, b, a})
	r, _, b, _ = SampleBilinear(bg, 2, 0.5)
	assert.Equal(t, [2]uint8{0, 255}, [2]uint8{r, b})
	r, _, b, _ = SampleBilinear(bg, 0.5, 0.5)
	assert.InDelta(t, 128, int(r), 1)
	assert.InDelta(t, 128, int(b), 1)

	fb := NewFrameBuffer(4, 4)
	fb.FillImage(bg)
	img := fb.Image()
	assert.Greater(t, img.NRGBAAt(0, 0).R, img.NRGBAAt(0, 0).B)
	assert.Greater(t, img.NRGBAAt(3, 3).B, img.NRGBAAt(3, 3).R)
	assert.Equal(t, uint8(255), img.NRGBAAt(2, 2).A)

	fb.Fill(10, 20, 30)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, fb.Image().NRGBAAt(1, 1))
}

func TestShadeStaysInRange(t *testing.T) {
	lc := DefaultLightConfig()
	for _, n := range []mathutil.Vec3{{0, 0, 1}, {1, 0, 0}, lc.LightDir, lc.HalfMain} {
		s := lc.ComputeShade(n)
		assert.Greater(t, s, 0.0)
		out := lc.Shade([3]uint8{200, 100, 50}, s)
		assert.GreaterOrEqual(t, out[0], out[1])
		assert.GreaterOrEqual(t, out[1], out[2])
	}
}
