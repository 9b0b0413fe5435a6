package fixture

import "rotconv/internal/mathutil"

type row struct {
	yaw, pitch, roll float64
	want             mathutil.Quat
}

type table struct {
	name    string
	enabled bool
	rows    []row
}

// Reference conversions collected from external rotation converters. Angles are
// degrees; expected quaternions are (x, y, z, w).
var defaultTables = []table{
	{"normal", true, []row{
		{0, 0, 0, mathutil.Quat{0, 0, 0, 1}},
		{90, 0, 0, mathutil.Quat{0, 0.7071, 0, 0.7071}},
		{0, 90, 0, mathutil.Quat{0.7071, 0, 0, 0.7071}},
		{0, 0, 90, mathutil.Quat{0, 0, 0.7071, 0.7071}},
		{45, 45, 45, mathutil.Quat{0.4619, 0.1913, 0.1913, 0.8446}},
		{180, 0, 0, mathutil.Quat{0, 1, 0, 0}},
		{0, 180, 0, mathutil.Quat{1, 0, 0, 0}},
		{0, 0, 180, mathutil.Quat{0, 0, 1, 0}},
		{90, 90, 0, mathutil.Quat{0.5, 0.5, -0.5, 0.5}},
		{90, 0, 90, mathutil.Quat{0.5, 0.5, 0.5, 0.5}},
		{0, 90, 90, mathutil.Quat{0.5, -0.5, 0.5, 0.5}},
		{45, 0, 0, mathutil.Quat{0, 0.3827, 0, 0.9239}},
		{0, 45, 0, mathutil.Quat{0.3827, 0, 0, 0.9239}},
		{0, 0, 45, mathutil.Quat{0, 0, 0.3827, 0.9239}},
		{30, 60, 90, mathutil.Quat{0.5, -0.1830, 0.5, 0.6830}},
		{60, 30, 90, mathutil.Quat{0.5, 0.1830, 0.5, 0.6830}},
		{90, 30, 60, mathutil.Quat{0.5, 0.5, 0.1830, 0.6830}},
		{60, 90, 30, mathutil.Quat{0.6830, 0.1830, -0.1830, 0.6830}},
		{30, 90, 60, mathutil.Quat{0.6830, -0.1830, 0.1830, 0.6830}},
		{90, 60, 30, mathutil.Quat{0.5, 0.5, -0.1830, 0.6830}},
	}},
	{"reference", true, []row{
		{30, 15, 20, mathutil.Quat{0.1687, 0.2308, 0.1330, 0.9490}},
		{67, 48, 21, mathutil.Quat{0.4253, 0.4340, -0.0819, 0.7900}},
		{0, 0, 0, mathutil.Quat{0, 0, 0, 1}},
		{45, 0, 0, mathutil.Quat{0, 0.3826, 0, 0.9238}},
	}},
	{"periodic", true, []row{
		{0, 90, 0, mathutil.Quat{0.7071, 0, 0, 0.7071}},
		{0, -270, 0, mathutil.Quat{-0.7071, 0, 0, -0.7071}},
		{0, -90, 0, mathutil.Quat{-0.7071, 0, 0, 0.7071}},
		{0, 270, 0, mathutil.Quat{0.7071, 0, 0, -0.7071}},
		{-60, 0, 0, mathutil.Quat{0, -0.5, 0, 0.8660}},
		{300, 0, 0, mathutil.Quat{0, 0.5, 0, -0.8660}},
		{-300, 0, 0, mathutil.Quat{0, -0.5, 0, -0.8660}},
		{60, 0, 0, mathutil.Quat{0, 0.5, 0, 0.8660}},
		{0, 0, 180, mathutil.Quat{0, 0, 1, 0}},
		{0, 0, -180, mathutil.Quat{0, 0, -1, 0}},
		{0, 0, 45, mathutil.Quat{0, 0, 0.3826, 0.9238}},
		{0, 0, -315, mathutil.Quat{0, 0, -0.3826, -0.9238}},
	}},
	// Values from a converter using a different composition order. Kept to
	// report the disagreement; not expected to match.
	{"gimbal", false, []row{
		{90, 90, 90, mathutil.Quat{0.7071, 0, 0.7071, 0}},
		{-90, 90, 90, mathutil.Quat{0, 0, 0, 0}},
		{90, -90, 90, mathutil.Quat{0.7071, -0.7071, 0.7071, 0.7071}},
		{90, 90, -90, mathutil.Quat{0.7071, 0.7071, -0.7071, 0.7071}},
		{-90, -90, 90, mathutil.Quat{-0.7071, -0.7071, 0.7071, 0.7071}},
		{90, -90, -90, mathutil.Quat{0.7071, -0.7071, -0.7071, 0.7071}},
		{-90, 90, -90, mathutil.Quat{-0.7071, 0.7071, -0.7071, 0.7071}},
		{-90, -90, -90, mathutil.Quat{-0.7071, -0.7071, -0.7071, 0.7071}},
		{180, 90, 90, mathutil.Quat{0.7071, 0.7071, 0, 0}},
		{90, 180, 90, mathutil.Quat{0.7071, 0, 0.7071, 0}},
	}},
	// X-Y-Z composition with the first angle about X.
	{"xyz", false, []row{
		{0, 0, 0, mathutil.Quat{0, 0, 0, 1}},
		{0, 90, 0, mathutil.Quat{0.7071, 0, 0, 0.7071}},
		{15, 30, 20, mathutil.Quat{0.2745, 0.0796, 0.1330, 0.9489}},
		{48, 67, 21, mathutil.Quat{0.5575, 0.2416, -0.0819, 0.7899}},
		{90, 0, 0, mathutil.Quat{0, 0.7071, 0, 0.7071}},
	}},
}

// Default returns the built-in fixture tables.
func Default() []Case {
	var cases []Case
	for _, t := range defaultTables {
		for i, r := range t.rows {
			want := r.want
			cases = append(cases, Case{
				Table:   t.name,
				Index:   i,
				Degrees: mathutil.Euler{r.pitch, r.yaw, r.roll},
				Want:    &want,
				Enabled: t.enabled,
			})
		}
	}
	return cases
}
