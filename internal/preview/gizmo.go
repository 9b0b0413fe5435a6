package preview

import "rotconv/internal/mathutil"

const (
	axisLen   = 1.0
	axisHalfT = 0.07 // half thickness of an axis bar
	hubHalf   = 0.12
)

// Axis colors: X red, Y green, Z blue.
var (
	ColorX   = [3]uint8{225, 45, 45}
	ColorY   = [3]uint8{55, 185, 70}
	ColorZ   = [3]uint8{45, 95, 230}
	colorHub = [3]uint8{170, 170, 175}
)

// face is one triangle in object space with its outward normal.
type face struct {
	v      [3]mathutil.Vec3
	normal mathutil.Vec3
	color  [3]uint8
}

// box returns the 12 triangles of an axis-aligned box.
func box(lo, hi mathutil.Vec3, color [3]uint8) []face {
	c := func(x, y, z int) mathutil.Vec3 {
		pick := func(i, s int) float64 {
			if s == 0 {
				return lo[i]
			}
			return hi[i]
		}
		return mathutil.Vec3{pick(0, x), pick(1, y), pick(2, z)}
	}

	quads := []struct {
		corners [4]mathutil.Vec3
		normal  mathutil.Vec3
	}{
		{[4]mathutil.Vec3{c(1, 0, 0), c(1, 1, 0), c(1, 1, 1), c(1, 0, 1)}, mathutil.Vec3{1, 0, 0}},
		{[4]mathutil.Vec3{c(0, 0, 0), c(0, 0, 1), c(0, 1, 1), c(0, 1, 0)}, mathutil.Vec3{-1, 0, 0}},
		{[4]mathutil.Vec3{c(0, 1, 0), c(0, 1, 1), c(1, 1, 1), c(1, 1, 0)}, mathutil.Vec3{0, 1, 0}},
		{[4]mathutil.Vec3{c(0, 0, 0), c(1, 0, 0), c(1, 0, 1), c(0, 0, 1)}, mathutil.Vec3{0, -1, 0}},
		{[4]mathutil.Vec3{c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1)}, mathutil.Vec3{0, 0, 1}},
		{[4]mathutil.Vec3{c(0, 0, 0), c(0, 1, 0), c(1, 1, 0), c(1, 0, 0)}, mathutil.Vec3{0, 0, -1}},
	}

	faces := make([]face, 0, 12)
	for _, q := range quads {
		faces = append(faces,
			face{[3]mathutil.Vec3{q.corners[0], q.corners[1], q.corners[2]}, q.normal, color},
			face{[3]mathutil.Vec3{q.corners[0], q.corners[2], q.corners[3]}, q.normal, color},
		)
	}
	return faces
}

func cube(center mathutil.Vec3, half float64, color [3]uint8) []face {
	d := mathutil.Vec3{half, half, half}
	return box(center.Sub(d), center.Add(d), color)
}

// gizmo builds the three axis bars and a hub at the origin.
func gizmo() []face {
	t := axisHalfT
	var faces []face
	faces = append(faces, box(mathutil.Vec3{0, -t, -t}, mathutil.Vec3{axisLen, t, t}, ColorX)...)
	faces = append(faces, box(mathutil.Vec3{-t, 0, -t}, mathutil.Vec3{t, axisLen, t}, ColorY)...)
	faces = append(faces, box(mathutil.Vec3{-t, -t, 0}, mathutil.Vec3{t, t, axisLen}, ColorZ)...)
	faces = append(faces, cube(mathutil.Vec3{}, hubHalf, colorHub)...)
	return faces
}
