package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a transparent color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill paints every pixel with an opaque color without touching depth.
func (fb *FrameBuffer) Fill(r, g, b uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
	}
}

// FillImage stretches bg over the whole buffer with bilinear sampling.
func (fb *FrameBuffer) FillImage(bg *image.NRGBA) {
	if bg == nil || bg.Rect.Empty() {
		return
	}
	for y := 0; y < fb.Height; y++ {
		v := (float64(y) + 0.5) / float64(fb.Height)
		for x := 0; x < fb.Width; x++ {
			u := (float64(x) + 0.5) / float64(fb.Width)
			r, g, b, a := SampleBilinear(bg, u, v)
			i := (y*fb.Width + x) * 4
			fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, a
		}
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
