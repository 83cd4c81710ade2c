package gomath3d

import "math"

// AxisAngle is a rotation of Angle degrees counter-clockwise about Axis.
type AxisAngle struct {
	Angle float64
	Axis  Vec3
}

func NewAxisAngle(degrees float64, axis Vec3) AxisAngle {
	return AxisAngle{Angle: degrees, Axis: axis}
}

func (a AxisAngle) Quaternion() Quaternion {
	return QuaternionFromAngleAxis(a.Angle, a.Axis)
}

func (a AxisAngle) Matrix3() Matrix3 {
	return Rotate3(a.Angle, a.Axis)
}

func (a AxisAngle) Matrix4() Matrix4 {
	return Rotate(a.Angle, a.Axis)
}

// AxisAngleFromQuaternion returns an angle in [0, 360) and a unit axis. A
// rotation with no angle has no axis; it comes back as 0 degrees about +X.
func AxisAngleFromQuaternion(q Quaternion) AxisAngle {
	n, err := q.Normalize()
	if err != nil {
		return AxisAngle{Axis: Vec3{1, 0, 0}}
	}
	w := clamp(n.W, -1, 1)
	s := math.Sqrt(1 - w*w)
	if s < VerySmall {
		return AxisAngle{Axis: Vec3{1, 0, 0}}
	}
	return AxisAngle{
		Angle: Degrees(2 * math.Acos(w)),
		Axis:  n.V.Div(s),
	}
}
