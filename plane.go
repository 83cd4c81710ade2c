package gomath3d

import (
	"fmt"
	"math"
)

// Plane is the set of points where A*x + B*y + C*z + D = 0. Constructors
// keep (A, B, C) at unit length, so Distance is a true signed distance,
// positive on the side the normal points to.
type Plane struct {
	A, B, C, D float64
}

// NewPlane builds the plane through point with the given normal.
func NewPlane(normal, point Vec3) (Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return Plane{}, fmt.Errorf("plane normal: %w", err)
	}
	return Plane{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(point)}, nil
}

// PlaneFromPoints builds the plane through three points. The normal is
// (p1-p0) x (p2-p0): counter-clockwise points face the viewer. Only points
// whose cross product is shorter than VerySmall count as collinear.
func PlaneFromPoints(p0, p1, p2 Vec3) (Plane, error) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	p, err := NewPlane(normal, p0)
	if err != nil {
		return Plane{}, fmt.Errorf("plane through collinear points %v, %v, %v: %w", p0, p1, p2, ErrDegenerateInput)
	}
	return p, nil
}

func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

func (p Plane) Vec4() Vec4 {
	return Vec4{p.A, p.B, p.C, p.D}
}

func (p Plane) Distance(v Vec3) float64 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// Side reports 1 in front of the plane, -1 behind it and 0 for points
// within thickness of it.
func (p Plane) Side(v Vec3, thickness float64) int {
	d := p.Distance(v)
	switch {
	case math.Abs(d) <= thickness:
		return 0
	case d > 0:
		return 1
	}
	return -1
}

// Crosses reports whether a and b lie strictly on opposite sides. A point
// within thickness of the plane does not count as crossing.
func (p Plane) Crosses(a, b Vec3, thickness float64) bool {
	return p.Side(a, thickness)*p.Side(b, thickness) < 0
}

// LineIntersect returns where the line through a and b meets the plane.
// It reports false when the line is parallel to the plane.
func (p Plane) LineIntersect(a, b Vec3) (Vec3, bool) {
	dir := b.Sub(a)
	denom := p.Normal().Dot(dir)
	if math.Abs(denom) < VerySmall {
		return Vec3{}, false
	}
	t := -p.Distance(a) / denom
	return a.Add(dir.Scale(t)), true
}

// Transform maps the plane by m. Planes transform by the inverse transpose
// of the point transform, so m must be invertible.
func (p Plane) Transform(m Matrix4) (Plane, error) {
	inv, err := m.Inverse()
	if err != nil {
		return p, fmt.Errorf("transform plane: %w", err)
	}
	v := inv.Transpose().MulVec4(p.Vec4())
	mag := v.Vec3().Magnitude()
	if mag < VerySmall {
		return p, fmt.Errorf("transform plane: %w", ErrDegenerateInput)
	}
	return Plane{A: v.X / mag, B: v.Y / mag, C: v.Z / mag, D: v.W / mag}, nil
}

func (p Plane) String() string {
	return fmt.Sprintf("%1.4f %1.4f %1.4f %1.4f", p.A, p.B, p.C, p.D)
}
