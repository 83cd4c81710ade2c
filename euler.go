package gomath3d

import (
	"fmt"
	"math"
)

// Euler holds rotations in degrees about X (pitch), Y (yaw) and Z (roll).
// The composite rotation is Rz * Ry * Rx: X is applied first.
//
// At Y = +/-90 the X and Z axes line up (gimbal lock). Converting such a
// rotation back reports Z = 0 and puts the whole remaining turn in X.
type Euler struct {
	X float64
	Y float64
	Z float64
}

func NewEuler(x, y, z float64) Euler {
	return Euler{X: x, Y: y, Z: z}
}

func (e Euler) Quaternion() Quaternion {
	sx, cx := math.Sincos(Radians(e.X) / 2)
	sy, cy := math.Sincos(Radians(e.Y) / 2)
	sz, cz := math.Sincos(Radians(e.Z) / 2)

	return Quaternion{
		W: cx*cy*cz + sx*sy*sz,
		V: Vec3{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
		},
	}
}

func (e Euler) Matrix3() Matrix3 {
	rx := Rotate3(e.X, Vec3{1, 0, 0})
	ry := Rotate3(e.Y, Vec3{0, 1, 0})
	rz := Rotate3(e.Z, Vec3{0, 0, 1})
	return rz.Mul(ry).Mul(rx)
}

func (e Euler) Matrix4() Matrix4 {
	return e.Matrix3().Matrix4()
}

func (e Euler) ApproxEqual(o Euler, epsilon float64) bool {
	return math.Abs(e.X-o.X) <= epsilon &&
		math.Abs(e.Y-o.Y) <= epsilon &&
		math.Abs(e.Z-o.Z) <= epsilon
}

func (e Euler) String() string {
	return fmt.Sprintf("%1.4f %1.4f %1.4f", e.X, e.Y, e.Z)
}

// ToQuaternion converts Euler angles to a unit quaternion.
func ToQuaternion(e Euler) Quaternion {
	return e.Quaternion()
}

// ToEuler converts a rotation quaternion back to Euler angles.
func ToEuler(q Quaternion) Euler {
	return EulerFromQuaternion(q)
}

// EulerFromQuaternion normalizes q before reading the angles. Angles come
// back in [-180, 180] for X and Z and [-90, 90] for Y. The zero quaternion
// has no rotation to read and returns the zero Euler.
func EulerFromQuaternion(q Quaternion) Euler {
	n, err := q.Normalize()
	if err != nil {
		return Euler{}
	}
	w, x, y, z := n.W, n.V.X, n.V.Y, n.V.Z

	r20 := 2 * (x*z - w*y)
	r21 := 2 * (y*z + w*x)
	r22 := 1 - 2*(x*x+y*y)
	r10 := 2 * (x*y + w*z)
	r00 := 1 - 2*(y*y+z*z)
	r01 := 2 * (x*y - w*z)
	r11 := 1 - 2*(x*x+z*z)

	return eulerFromRotation(r00, r01, r10, r11, r20, r21, r22)
}

func EulerFromMatrix3(m Matrix3) Euler {
	return eulerFromRotation(m[0], m[3], m[1], m[4], m[2], m[5], m[8])
}

func EulerFromMatrix4(m Matrix4) Euler {
	return EulerFromMatrix3(m.Matrix3())
}

// eulerFromRotation reads the angles of R = Rz*Ry*Rx from the entries it
// needs; rRC is row R, column C. cos(Y) is recovered as hypot(r00, r10) so
// Y stays accurate right up to +/-90; only when it underflows VerySmall is
// the rotation treated as gimbal locked.
func eulerFromRotation(r00, r01, r10, r11, r20, r21, r22 float64) Euler {
	cosY := math.Hypot(r00, r10)
	y := Degrees(math.Atan2(-r20, cosY))
	if cosY < VerySmall {
		sign := math.Copysign(1, -r20)
		return Euler{
			X: Degrees(math.Atan2(sign*r01, r11)),
			Y: y,
			Z: 0,
		}
	}
	return Euler{
		X: Degrees(math.Atan2(r21, r22)),
		Y: y,
		Z: Degrees(math.Atan2(r10, r00)),
	}
}
