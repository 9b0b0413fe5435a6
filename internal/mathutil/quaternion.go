package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w) with w the scalar part.
type Quat [4]float64

func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

func (q Quat) X() float64 { return q[0] }
func (q Quat) Y() float64 { return q[1] }
func (q Quat) Z() float64 { return q[2] }
func (q Quat) W() float64 { return q[3] }

// Norm returns the Euclidean length of q over all four components.
func (q Quat) Norm() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

// ApproxEqual compares q and p component-wise.
func (q Quat) ApproxEqual(p Quat, tol float64) bool {
	for i := range q {
		if math.Abs(q[i]-p[i]) > tol {
			return false
		}
	}
	return true
}

// SameRotation reports whether q and p describe the same rotation,
// accepting either sign of p.
func (q Quat) SameRotation(p Quat, tol float64) bool {
	return q.ApproxEqual(p, tol) || q.ApproxEqual(p.Neg(), tol)
}

// EulerToQuat converts pitch (about X), yaw (about Y) and roll (about Z),
// all in radians, to a unit quaternion.
//
// The rotations are intrinsic in Y-X-Z order: yaw first, then pitch about the
// rotated X axis, then roll about the twice-rotated Z axis. The result equals
// the Hamilton product qY(yaw) · qX(pitch) · qZ(roll).
func EulerToQuat(pitch, yaw, roll float64) Quat {
	sp, cp := math.Sincos(pitch * 0.5)
	sy, cy := math.Sincos(yaw * 0.5)
	sr, cr := math.Sincos(roll * 0.5)

	return Quat{
		cy*sp*cr + sy*cp*sr, // x
		sy*cp*cr - cy*sp*sr, // y
		cy*cp*sr - sy*sp*cr, // z
		cy*cp*cr + sy*sp*sr, // w
	}
}

// QuatToMat3 converts a unit quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// QuatToEuler recovers the Y-X-Z Euler triple of a unit quaternion.
// Behavior for non-unit input is unspecified.
func QuatToEuler(q Quat) Euler {
	return Mat3ToEuler(QuatToMat3(q))
}
