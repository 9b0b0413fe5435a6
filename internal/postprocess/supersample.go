package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img to targetSize×targetSize with Catmull-Rom filtering.
//
// Filtering happens on premultiplied RGBA (draw converts NRGBA on the way in)
// so transparent texels do not bleed dark halos into the edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	draw.Draw(result, result.Bounds(), dst, image.Point{}, draw.Src)
	return result
}
