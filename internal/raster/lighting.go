package raster

import (
	"math"

	"rotconv/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir mathutil.Vec3
	HalfMain mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Direct   float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right front.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{0.5, 0.7, 0.6}.Normalize()
	viewDir := mathutil.Vec3{0, 0, -1}

	return LightConfig{
		LightDir: lightDir,
		HalfMain: lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.45,
		Direct:   0.85,
		SpecInt:  0.35,
		SpecPow:  16.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian, abs for double-sided faces
	ndl := math.Abs(normal.Dot(lc.LightDir))

	ndh := math.Abs(normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndl*lc.Direct + spec
}

// Shade applies a shade factor to an sRGB color in linear space with ACES tone mapping.
func (lc *LightConfig) Shade(c [3]uint8, shade float64) [3]uint8 {
	var out [3]uint8
	for k := 0; k < 3; k++ {
		lin := srgbToLinear[c[k]] * shade * lc.Exposure
		out[k] = clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
	}
	return out
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
