package mathutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNonFinite is returned by CheckFinite for NaN or infinite input.
var ErrNonFinite = errors.New("non-finite value")

var full = decimal.NewFromInt(360)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeAngle reduces an angle in degrees to [0, 360).
//
// The remainder is taken on the shortest decimal form of deg, so values such
// as 360 or -0.0001 reduce exactly instead of carrying binary rounding.
// NaN and ±Inf have no meaningful reduction; NaN is returned for them.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return math.NaN()
	}
	d := decimal.NewFromFloat(deg)
	r := d.Mod(full).Add(full).Mod(full).InexactFloat64()
	// Remainders within half an ulp of 360 round up to it.
	if r >= 360 {
		return 0
	}
	return r
}

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > 180 {
		return 360 - d
	}
	return d
}

// CheckFinite returns ErrNonFinite naming the first NaN or infinite value.
func CheckFinite(vals ...float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %d (%v): %w", i, v, ErrNonFinite)
		}
	}
	return nil
}
