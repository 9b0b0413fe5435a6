package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"rotconv/internal/mathutil"
	"rotconv/internal/postprocess"
	"rotconv/internal/raster"
)

// DefaultView looks at the origin from slightly above and to the right,
// with +Y up and +Z toward the viewer before the tilt.
var DefaultView = mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(20)), mathutil.RotY(mathutil.Deg2Rad(-30)))

// Options controls a preview render.
type Options struct {
	Size        int           // output edge in pixels
	Supersample int           // render at Size*Supersample, then downsample
	Background  *image.NRGBA  // nil = Color, or transparent
	Color       *[3]uint8     // opaque solid background when Background is nil
	View        mathutil.Mat3 // zero value = DefaultView
}

type camera struct {
	view  mathutil.Mat3
	scale float64
	half  float64
}

func newCamera(view mathutil.Mat3, renderSize, supersample int) camera {
	if view == (mathutil.Mat3{}) {
		view = DefaultView
	}
	half := float64(renderSize) / 2
	margin := float64(8 * supersample)
	extent := axisLen + 2*axisHalfT
	return camera{view: view, scale: (half - margin) / extent, half: half}
}

// project maps a world-space point to screen pixels (y down) and depth
// (larger = closer).
func (c camera) project(p mathutil.Vec3) mathutil.Vec3 {
	t := c.view.MulVec3(p)
	return mathutil.Vec3{
		t[0]*c.scale + c.half,
		-t[1]*c.scale + c.half,
		t[2],
	}
}

// Render draws the axis gizmo rotated by q.
func Render(q mathutil.Quat, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 256
	}
	ss := max(opts.Supersample, 1)
	renderSize := size * ss

	rot := mathutil.Mat4FromQuat(q)
	cam := newCamera(opts.View, renderSize, ss)
	normalXform := mathutil.Mat3Mul(cam.view, rot.Mat3())

	fb := raster.NewFrameBuffer(renderSize, renderSize)
	if opts.Background == nil && opts.Color != nil {
		fb.Fill(opts.Color[0], opts.Color[1], opts.Color[2])
	} else {
		fb.FillImage(opts.Background)
	}
	lc := raster.DefaultLightConfig()

	for _, f := range gizmo() {
		var p [3]mathutil.Vec3
		for i, v := range f.v {
			p[i] = cam.project(rot.MulPoint(v))
		}
		raster.RasterizeTriangle(fb, p, normalXform.MulVec3(f.normal), f.color, &lc)
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, size)
	}
	return img
}

// Encode writes img as lossless WebP.
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("preview: webp encode: %w", err)
	}
	return nil
}

// WriteFile encodes img to path as WebP, creating parent directories as needed.
func WriteFile(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
