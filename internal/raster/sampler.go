package raster

import "image"

// SampleBilinear reads tex at normalized (u, v) with bilinear filtering.
// Coordinates outside [0, 1] clamp to the edge texels.
func SampleBilinear(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := clampf(u, 0, 1) * float64(w-1)
	fy := clampf(v, 0, 1) * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	i00 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y0)
	i10 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y0)
	i01 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y1)
	i11 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for k := 0; k < 4; k++ {
		pix := tex.Pix
		f := float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 +
			float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11
		out[k] = clamp255(f)
	}
	return out[0], out[1], out[2], out[3]
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
