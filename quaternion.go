package gomath3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is W + V.X i + V.Y j + V.Z k. Build one with a named
// constructor: QuaternionFromParts takes raw components, while
// QuaternionFromAngleAxis takes a rotation in degrees.
type Quaternion struct {
	W float64
	V Vec3
}

func QuaternionFromParts(w float64, v Vec3) Quaternion {
	return Quaternion{W: w, V: v}
}

func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// PureQuaternion lifts v into a quaternion with no scalar part.
func PureQuaternion(v Vec3) Quaternion {
	return Quaternion{V: v}
}

// QuaternionFromAngleAxis builds the unit quaternion rotating degrees
// counter-clockwise about axis. The axis is normalized here; a zero axis
// yields the identity.
func QuaternionFromAngleAxis(degrees float64, axis Vec3) Quaternion {
	n, err := axis.Normalize()
	if err != nil {
		return IdentityQuaternion()
	}
	s, c := math.Sincos(Radians(degrees) / 2)
	return Quaternion{W: c, V: n.Scale(s)}
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.W + o.W, q.V.Add(o.V)}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.W - o.W, q.V.Sub(o.V)}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.V.Scale(s)}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, q.V.Neg()}
}

// Mul returns the Hamilton product q * o. It is not commutative: as a
// rotation, o is applied first.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.V.Dot(o.V),
		V: o.V.Scale(q.W).Add(q.V.Scale(o.W)).Add(q.V.Cross(o.V)),
	}
}

func (q Quaternion) Dot(o Quaternion) float64 {
	return q.W*o.W + q.V.Dot(o.V)
}

func (q Quaternion) MagnitudeSquared() float64 {
	return q.Dot(q)
}

func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.MagnitudeSquared())
}

// Normalize returns q at unit length, or the zero quaternion and
// ErrDegenerateInput when q has no magnitude.
func (q Quaternion) Normalize() (Quaternion, error) {
	mag := q.Magnitude()
	if mag < VerySmall {
		return Quaternion{}, fmt.Errorf("normalize quaternion %v: %w", q, ErrDegenerateInput)
	}
	return q.Scale(1 / mag), nil
}

// Conjugate negates the vector part. For a unit quaternion this is the
// inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, q.V.Neg()}
}

// Inverse is the conjugate divided by the squared magnitude. A zero
// quaternion has no inverse: the zero quaternion comes back with
// ErrDegenerateInput.
func (q Quaternion) Inverse() (Quaternion, error) {
	magSq := q.MagnitudeSquared()
	if magSq < VerySmall*VerySmall {
		return Quaternion{}, fmt.Errorf("inverse of quaternion %v: %w", q, ErrDegenerateInput)
	}
	return q.Conjugate().Scale(1 / magSq), nil
}

// RotateVec rotates v by the long route, q * v * conjugate(q), and keeps
// the vector part. RotateVector gives the same answer with fewer operations.
func (q Quaternion) RotateVec(v Vec3) Vec3 {
	return q.Mul(PureQuaternion(v)).Mul(q.Conjugate()).V
}

// Index reads the components in w, x, y, z order.
func (q Quaternion) Index(i int) float64 {
	if i == 0 {
		return q.W
	}
	return q.V.Index(i - 1)
}

func (q Quaternion) ApproxEqual(o Quaternion, epsilon float64) bool {
	return math.Abs(q.W-o.W) <= epsilon && q.V.ApproxEqual(o.V, epsilon)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("%1.4f %1.4f %1.4f %1.4f", q.W, q.V.X, q.V.Y, q.V.Z)
}

func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: q.V.Mgl()}
}

func QuaternionFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{W: q.W, V: Vec3FromMgl(q.V)}
}
