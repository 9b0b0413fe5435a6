package preview

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotconv/internal/mathutil"
)

const testSize = 128

// pixelAt returns the rendered color where the world point p lands.
func pixelAt(img *image.NRGBA, p mathutil.Vec3) color.NRGBA {
	s := newCamera(mathutil.Mat3{}, testSize, 1).project(p)
	return img.NRGBAAt(int(s[0]), int(s[1]))
}

func dominant(c color.NRGBA) int {
	switch {
	case c.R > c.G && c.R > c.B:
		return 0
	case c.G > c.R && c.G > c.B:
		return 1
	case c.B > c.R && c.B > c.G:
		return 2
	}
	return -1
}

func TestRenderIdentityAxes(t *testing.T) {
	img := Render(mathutil.QuatIdentity(), Options{Size: testSize, Supersample: 1})
	require.Equal(t, image.Rect(0, 0, testSize, testSize), img.Bounds())

	assert.Equal(t, 0, dominant(pixelAt(img, mathutil.Vec3{0.7, 0, 0})), "X bar is red")
	assert.Equal(t, 1, dominant(pixelAt(img, mathutil.Vec3{0, 0.7, 0})), "Y bar is green")
	assert.Equal(t, 2, dominant(pixelAt(img, mathutil.Vec3{0, 0, 0.7})), "Z bar is blue")

	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A, "no background means transparent")
	assert.Equal(t, uint8(255), pixelAt(img, mathutil.Vec3{}).A)
}

func TestRenderFollowsRotation(t *testing.T) {
	// Roll a quarter turn about Z: the X bar now points along +Y.
	q := mathutil.EulerToQuat(0, 0, math.Pi/2)
	img := Render(q, Options{Size: testSize, Supersample: 1})
	assert.Equal(t, 0, dominant(pixelAt(img, mathutil.Vec3{0, 0.7, 0})))
	assert.Equal(t, uint8(0), pixelAt(img, mathutil.Vec3{0.7, 0, 0}).A)

	// Pitch a quarter turn about X: the Y bar now points along +Z.
	q = mathutil.EulerToQuat(math.Pi/2, 0, 0)
	img = Render(q, Options{Size: testSize, Supersample: 1})
	assert.Equal(t, 1, dominant(pixelAt(img, mathutil.Vec3{0, 0, 0.7})))
}

func TestRenderBackgroundAndSupersample(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(bg.Pix); i += 4 {
		copy(bg.Pix[i:i+4], []uint8{10, 20, 30, 255})
	}

	img := Render(mathutil.QuatIdentity(), Options{Size: testSize, Supersample: 1, Background: bg})
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(0, 0))

	// An image background wins over a solid color.
	img = Render(mathutil.QuatIdentity(), Options{Size: testSize, Supersample: 1, Background: bg, Color: &[3]uint8{200, 0, 0}})
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(0, 0))

	img = Render(mathutil.QuatIdentity(), Options{Size: testSize, Supersample: 1, Color: &[3]uint8{40, 50, 60}})
	assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, 0, dominant(pixelAt(img, mathutil.Vec3{0.7, 0, 0})), "axes drawn over the fill")

	img = Render(mathutil.QuatIdentity(), Options{Size: 64, Supersample: 3})
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	img = Render(mathutil.QuatIdentity(), Options{})
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
}

func TestEncodeWebP(t *testing.T) {
	img := Render(mathutil.QuatIdentity(), Options{Size: 32, Supersample: 1})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	b := buf.Bytes()
	require.Greater(t, len(b), 12)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WEBP", string(b[8:12]))

	path := filepath.Join(t.TempDir(), "nested", "dir", "p.webp")
	require.NoError(t, WriteFile(path, img))
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b, onDisk)
}
