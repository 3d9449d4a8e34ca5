package math

import "github.com/chewxy/math32"

// Quat represents a rotation as a quaternion. Rotations that are actually
// applied to vectors must have a squared magnitude of 1; repeated
// composition drifts away from that, and correcting the drift is the
// caller's job (see Normalize).
type Quat struct {
	R, I, J, K float32
}

// QuatIdentity is the no-op rotation.
var QuatIdentity = Quat{R: 1}

// NewQuat creates a quaternion from its four components
func NewQuat(r, i, j, k float32) Quat {
	return Quat{R: r, I: i, J: j, K: k}
}

// Rotation builds the unit quaternion rotating by angle (radians) around
// axis. The result is renormalized before returning, so a non-unit axis
// cannot smuggle a non-unit rotation into the algebra.
func Rotation(axis Vec3, angle float32) Quat {
	half := angle / 2
	sin := math32.Sin(half)
	q := Quat{
		R: math32.Cos(half),
		I: axis.X * sin,
		J: axis.Y * sin,
		K: axis.Z * sin,
	}
	return q.Normalize()
}

// Multiply returns the Hamilton product q*other, which composes the two
// rotations (other applied first).
func (q Quat) Multiply(other Quat) Quat {
	return Quat{
		R: q.R*other.R - q.I*other.I - q.J*other.J - q.K*other.K,
		I: q.R*other.I + q.I*other.R + q.J*other.K - q.K*other.J,
		J: q.R*other.J - q.I*other.K + q.J*other.R + q.K*other.I,
		K: q.R*other.K + q.I*other.J - q.J*other.I + q.K*other.R,
	}
}

// Conjugate returns the quaternion with the vector part negated. For a
// unit quaternion this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{R: q.R, I: -q.I, J: -q.J, K: -q.K}
}

// LengthSquared returns the squared magnitude of the quaternion
func (q Quat) LengthSquared() float32 {
	return q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
}

// Length returns the magnitude of the quaternion
func (q Quat) Length() float32 {
	return math32.Sqrt(q.LengthSquared())
}

// Normalize returns the quaternion scaled back to unit magnitude
func (q Quat) Normalize() Quat {
	mag := q.Length()
	return Quat{R: q.R / mag, I: q.I / mag, J: q.J / mag, K: q.K / mag}
}

// Vec3 returns the vector part of the quaternion
func (q Quat) Vec3() Vec3 {
	return Vec3{X: q.I, Y: q.J, Z: q.K}
}

// quatFromVec3 embeds a vector as a pure quaternion
func quatFromVec3(v Vec3) Quat {
	return Quat{I: v.X, J: v.Y, K: v.Z}
}
