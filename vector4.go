package gomath3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec4 is a homogeneous vector.
type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewVec4FromVec3 extends v with an explicit w: 1 for points, 0 for
// directions.
func NewVec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec3 drops W without dividing by it.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) MagnitudeSquared() float64 {
	return v.Dot(v)
}

func (v Vec4) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize scales all four components to unit length, returning the zero
// vector and ErrDegenerateInput for a zero-length input.
func (v Vec4) Normalize() (Vec4, error) {
	length := v.Magnitude()
	if length < VerySmall {
		return Vec4{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateInput)
	}
	return v.Scale(1 / length), nil
}

func (v Vec4) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("gomath3d: Vec4 index %d out of range", i))
}

func (v Vec4) ApproxEqual(o Vec4, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon &&
		math.Abs(v.Y-o.Y) <= epsilon &&
		math.Abs(v.Z-o.Z) <= epsilon &&
		math.Abs(v.W-o.W) <= epsilon
}

func (v Vec4) String() string {
	return fmt.Sprintf("%1.4f %1.4f %1.4f %1.4f", v.X, v.Y, v.Z, v.W)
}

func (v Vec4) Mgl() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec4FromMgl(v mgl64.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}
