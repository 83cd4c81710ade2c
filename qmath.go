package gomath3d

import "math"

// Cosine above which Slerp interpolates linearly: sin(theta) is too close
// to zero to divide by.
const slerpLinearThreshold = 0.9995

// RotateVector is q * v * conjugate(q) expanded for a unit q:
// v + 2w(qv x v) + 2 qv x (qv x v).
func RotateVector(v Vec3, q Quaternion) Vec3 {
	cross := q.V.Cross(v)
	return v.Add(cross.Scale(2 * q.W)).Add(q.V.Cross(cross).Scale(2))
}

// Nlerp interpolates linearly between q1 and q2 and renormalizes. When the
// blend passes through zero (q2 == -q1 at t = 0.5) there is nothing to
// normalize and the identity is returned.
func Nlerp(q1, q2 Quaternion, t float64) Quaternion {
	q := q1.Add(q2.Sub(q1).Scale(t))
	n, err := q.Normalize()
	if err != nil {
		return IdentityQuaternion()
	}
	return n
}

// Slerp interpolates along the shorter great arc from q1 (t=0) to q2 (t=1)
// at constant angular velocity. Both inputs are normalized first and t is
// clamped to [0, 1]. When q1 and q2 point into opposite hemispheres the
// path runs toward -q2, the same rotation; the endpoints are still returned
// as q1 and q2 exactly.
//
// A zero quaternion input is treated as the identity, and a NaN t as 0.
func Slerp(q1, q2 Quaternion, t float64) Quaternion {
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp(t, 0, 1)
	a, err := q1.Normalize()
	if err != nil {
		a = IdentityQuaternion()
	}
	b, err := q2.Normalize()
	if err != nil {
		b = IdentityQuaternion()
	}
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	cos := a.Dot(b)
	if cos < 0 {
		b = b.Neg()
		cos = -cos
	}
	if cos > slerpLinearThreshold {
		return Nlerp(a, b, t)
	}

	theta := math.Acos(cos)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb))
}

// Pow raises q to a real exponent through its polar form
// |q|^e (cos(e*theta) + n sin(e*theta)). For a unit quaternion this scales
// the rotation angle by e, so Pow(q, 0.5) rotates half as far.
func Pow(q Quaternion, exponent float64) Quaternion {
	mag := q.Magnitude()
	if mag < VerySmall {
		return Quaternion{}
	}
	vmag := q.V.Magnitude()

	var theta float64
	var n Vec3
	if vmag < VerySmall {
		if q.W > 0 {
			return Quaternion{W: math.Pow(q.W, exponent)}
		}
		// -1 is a half turn about any axis; pick X.
		theta, n = math.Pi, Vec3{1, 0, 0}
	} else {
		theta = math.Atan2(vmag, q.W)
		n = q.V.Div(vmag)
	}

	scale := math.Pow(mag, exponent)
	s, c := math.Sincos(exponent * theta)
	return Quaternion{W: scale * c, V: n.Scale(scale * s)}
}

// Matrix3 returns the rotation matrix of a unit quaternion.
func (q Quaternion) Matrix3() Matrix3 {
	w, x, y, z := q.W, q.V.X, q.V.Y, q.V.Z
	return Matrix3{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*w*z, 2*x*z - 2*w*y,
		2*x*y - 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z + 2*w*x,
		2*x*z + 2*w*y, 2*y*z - 2*w*x, 1 - 2*x*x - 2*y*y,
	}
}

func (q Quaternion) Matrix4() Matrix4 {
	return q.Matrix3().Matrix4()
}

// QuaternionFromMatrix3 extracts the unit quaternion of a pure rotation
// matrix (Shepperd's method: branch on the largest diagonal term to keep
// the square root away from zero).
func QuaternionFromMatrix3(m Matrix3) Quaternion {
	r00, r11, r22 := m[0], m[4], m[8]
	r10, r20 := m[1], m[2]
	r01, r21 := m[3], m[5]
	r02, r12 := m[6], m[7]

	if tr := r00 + r11 + r22; tr > 0 {
		s := 0.5 / math.Sqrt(tr+1)
		return Quaternion{
			W: 0.25 / s,
			V: Vec3{(r21 - r12) * s, (r02 - r20) * s, (r10 - r01) * s},
		}
	}
	if r00 > r11 && r00 > r22 {
		s := 2 * math.Sqrt(1+r00-r11-r22)
		return Quaternion{
			W: (r21 - r12) / s,
			V: Vec3{0.25 * s, (r01 + r10) / s, (r02 + r20) / s},
		}
	}
	if r11 > r22 {
		s := 2 * math.Sqrt(1+r11-r00-r22)
		return Quaternion{
			W: (r02 - r20) / s,
			V: Vec3{(r01 + r10) / s, 0.25 * s, (r12 + r21) / s},
		}
	}
	s := 2 * math.Sqrt(1+r22-r00-r11)
	return Quaternion{
		W: (r10 - r01) / s,
		V: Vec3{(r02 + r20) / s, (r12 + r21) / s, 0.25 * s},
	}
}

// QuaternionFromMatrix4 uses the rotation block of m; translation is
// ignored.
func QuaternionFromMatrix4(m Matrix4) Quaternion {
	return QuaternionFromMatrix3(m.Matrix3())
}
