package mathutil

import "math"

// GimbalEpsilon is how close |sin(pitch)| may get to 1 before yaw and roll
// stop being separable.
const GimbalEpsilon = 1e-7

// Euler is a rotation triple (pitch about X, yaw about Y, roll about Z).
// Units depend on context; the conversion functions take radians.
type Euler [3]float64

func (e Euler) Pitch() float64 { return e[0] }
func (e Euler) Yaw() float64   { return e[1] }
func (e Euler) Roll() float64  { return e[2] }

// Rad converts a triple in degrees to radians.
func (e Euler) Rad() Euler {
	return Euler{Deg2Rad(e[0]), Deg2Rad(e[1]), Deg2Rad(e[2])}
}

// Deg converts a triple in radians to degrees.
func (e Euler) Deg() Euler {
	return Euler{Rad2Deg(e[0]), Rad2Deg(e[1]), Rad2Deg(e[2])}
}

// Quat converts a triple in radians with EulerToQuat.
func (e Euler) Quat() Quat {
	return EulerToQuat(e[0], e[1], e[2])
}

// Mat3 returns Ry(yaw) · Rx(pitch) · Rz(roll), the matrix form of EulerToQuat.
func (e Euler) Mat3() Mat3 {
	return Mat3Mul(Mat3Mul(RotY(e[1]), RotX(e[0])), RotZ(e[2]))
}

// GimbalLocked reports whether m has pitch at ±90°, where only yaw - roll
// (or yaw + roll) is recoverable.
func GimbalLocked(m Mat3) bool {
	return math.Abs(m.At(1, 2)) >= 1-GimbalEpsilon
}

// Mat3ToEuler extracts the Y-X-Z triple (radians) from a rotation matrix.
//
// For M = Ry(yaw)·Rx(pitch)·Rz(roll):
//
//	M[1][2] = -sin(pitch)
//	M[0][2] =  sin(yaw)·cos(pitch),  M[2][2] = cos(yaw)·cos(pitch)
//	M[1][0] =  sin(roll)·cos(pitch), M[1][1] = cos(roll)·cos(pitch)
//
// When cos(pitch) vanishes roll is fixed to zero and the whole remaining
// rotation is attributed to yaw.
func Mat3ToEuler(m Mat3) Euler {
	m12 := m.At(1, 2)
	pitch := math.Asin(-clamp(m12, -1, 1))

	if !GimbalLocked(m) {
		yaw := math.Atan2(m.At(0, 2), m.At(2, 2))
		roll := math.Atan2(m.At(1, 0), m.At(1, 1))
		return Euler{pitch, yaw, roll}
	}

	yaw := math.Atan2(-m.At(2, 0), m.At(0, 0))
	return Euler{pitch, yaw, 0}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
