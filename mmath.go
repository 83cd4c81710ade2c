package gomath3d

import (
	"fmt"
	"math"
)

// Transform builders. Every builder returns a column-major Matrix4 meant to
// be applied to column vectors, matching glm and mgl64.

func Translate(x, y, z float64) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

func Scale(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Rotate builds a counter-clockwise rotation of degrees about axis using
// Rodrigues' formula. The axis is normalized here; a zero axis has no
// direction to rotate about and yields the identity.
func Rotate(degrees float64, axis Vec3) Matrix4 {
	return Rotate3(degrees, axis).Matrix4()
}

// RotateAxis is Rotate with the axis given as components.
func RotateAxis(degrees, x, y, z float64) Matrix4 {
	return Rotate(degrees, Vec3{x, y, z})
}

// Rotate3 is the 3x3 form of Rotate.
func Rotate3(degrees float64, axis Vec3) Matrix3 {
	n, err := axis.Normalize()
	if err != nil {
		return Identity3()
	}
	s, c := math.Sincos(Radians(degrees))
	t := 1 - c
	x, y, z := n.X, n.Y, n.Z

	return Matrix3{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	}
}

// LookAt creates a right-handed view matrix for a camera at eye looking at
// center. The camera looks down its -Z axis, with +Y as close to up as the
// view direction allows.
//
// eye == center, or up parallel to the view direction, returns the identity
// and ErrDegenerateInput.
func LookAt(eye, center, up Vec3) (Matrix4, error) {
	f, err := center.Sub(eye).Normalize()
	if err != nil {
		return Identity4(), fmt.Errorf("look-at view direction: %w", err)
	}
	s, err := f.Cross(up).Normalize()
	if err != nil {
		return Identity4(), fmt.Errorf("look-at up %v parallel to view direction: %w", up, err)
	}
	u := s.Cross(f)

	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}, nil
}

// Orthographic maps the box [l,r]x[b,t]x[-n,-f] onto the NDC cube.
func Orthographic(l, r, b, t, n, f float64) (Matrix4, error) {
	if l == r || b == t || n == f {
		return Identity4(), fmt.Errorf("orthographic box (%g,%g,%g,%g,%g,%g) has no volume: %w",
			l, r, b, t, n, f, ErrDegenerateInput)
	}
	rml, tmb, fmn := r-l, t-b, f-n

	return Matrix4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(r + l) / rml, -(t + b) / tmb, -(f + n) / fmn, 1,
	}, nil
}

// Perspective builds a right-handed projection with a vertical field of view
// of fovYDegrees.
func Perspective(fovYDegrees, aspect, n, f float64) (Matrix4, error) {
	tan := math.Tan(Radians(fovYDegrees) / 2)
	if aspect == 0 || n == f || tan == 0 {
		return Identity4(), fmt.Errorf("perspective fov %g aspect %g near %g far %g: %w",
			fovYDegrees, aspect, n, f, ErrDegenerateInput)
	}
	cot := 1 / tan
	nmf := n - f

	return Matrix4{
		cot / aspect, 0, 0, 0,
		0, cot, 0, 0,
		0, 0, (n + f) / nmf, -1,
		0, 0, 2 * f * n / nmf, 0,
	}, nil
}

// ViewportNDC maps normalized device coordinates onto a width x height pixel
// grid with its origin at the top-left corner. NDC (-1, 1) lands on pixel
// (0, 0), y grows downward and z passes through unchanged.
func ViewportNDC(width, height int) Matrix4 {
	w, h := float64(width)/2, float64(height)/2
	flipY := Scale(1, -1, 1)
	toPixels := Scale(w, h, 1)
	toCorner := Translate(w, h, 0)
	return toCorner.Mul(toPixels).Mul(flipY)
}

// UnOrtho inverts an axis-aligned scale+translate matrix (an orthographic
// projection, a viewport, or any product of them) analytically. Such a
// matrix is T(t)*S(s), so its inverse is S(1/s)*T(-t).
//
// A matrix with rotation, shear or projective terms returns the identity
// and ErrPrecondition; a zero scale returns the identity and
// ErrSingularMatrix.
func UnOrtho(m Matrix4) (Matrix4, error) {
	for _, i := range [...]int{1, 2, 3, 4, 6, 7, 8, 9, 11} {
		if math.Abs(m[i]) > VerySmall {
			return Identity4(), fmt.Errorf("un-ortho of a matrix that is not scale+translate: %w", ErrPrecondition)
		}
	}
	if math.Abs(m[15]-1) > VerySmall {
		return Identity4(), fmt.Errorf("un-ortho of a projective matrix (w=%g): %w", m[15], ErrPrecondition)
	}
	sx, sy, sz := m[0], m[5], m[10]
	if math.Abs(sx) < SingularEpsilon || math.Abs(sy) < SingularEpsilon || math.Abs(sz) < SingularEpsilon {
		return Identity4(), fmt.Errorf("un-ortho with scale (%g,%g,%g): %w", sx, sy, sz, ErrSingularMatrix)
	}

	unScale := Scale(1/sx, 1/sy, 1/sz)
	unTranslate := Translate(-m[12], -m[13], -m[14])
	return unScale.Mul(unTranslate), nil
}
