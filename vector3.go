package gomath3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3 component vector or point. Equality is exact.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. Dividing by zero follows IEEE rules.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize returns v scaled to unit length. A vector shorter than
// VerySmall has no direction: the zero vector is returned with
// ErrDegenerateInput.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Magnitude()
	if length < VerySmall {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateInput)
	}
	return v.Div(length), nil
}

// DistanceTo
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Magnitude()
}

// Lerp interpolates linearly from v (t=0) to o (t=1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Reflect mirrors v about the plane with unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Index returns component i (0=X, 1=Y, 2=Z). It panics for any other i,
// like an out of range array index.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("gomath3d: Vec3 index %d out of range", i))
}

func (v Vec3) ApproxEqual(o Vec3, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon &&
		math.Abs(v.Y-o.Y) <= epsilon &&
		math.Abs(v.Z-o.Z) <= epsilon
}

func (v Vec3) String() string {
	return fmt.Sprintf("%1.4f %1.4f %1.4f", v.X, v.Y, v.Z)
}

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Dot computes the dot product of two vectors.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

// Cross calculates the cross product of two 3-element vectors.
func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}
