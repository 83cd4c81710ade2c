package gomath3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaneFromPoints(t *testing.T) {
	p, err := PlaneFromPoints(NewVec3(0, 0, 1), NewVec3(1, 0, 1), NewVec3(0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, Plane{A: 0, B: 0, C: 1, D: -1}, p)
	require.Equal(t, 2.0, p.Distance(NewVec3(5, -3, 3)))
	require.Equal(t, "0.0000 0.0000 1.0000 -1.0000", p.String())

	// A tiny triangle still spans a plane.
	small, err := PlaneFromPoints(NewVec3(0, 0, 0), NewVec3(1e-4, 0, 0), NewVec3(0, 1e-4, 0))
	require.NoError(t, err)
	requireVec3Near(t, NewVec3(0, 0, 1), small.Normal())
	require.True(t, almostEqual(0, small.D))

	_, err = PlaneFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1), NewVec3(2, 2, 2))
	require.ErrorIs(t, err, ErrDegenerateInput)

	_, err = NewPlane(Vec3{}, NewVec3(1, 2, 3))
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestPlaneSides(t *testing.T) {
	p, err := NewPlane(NewVec3(0, 0, 10), NewVec3(0, 0, 1))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		point    Vec3
		expected int
	}{
		{"in front", NewVec3(0, 0, 2), 1},
		{"behind", NewVec3(3, 4, 0), -1},
		{"within thickness", NewVec3(7, 7, 1.05), 0},
		{"on the plane", NewVec3(-1, 2, 1), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, p.Side(tc.point, 0.1))
		})
	}

	require.True(t, p.Crosses(NewVec3(0, 0, 0), NewVec3(0, 0, 2), 0.1))
	require.False(t, p.Crosses(NewVec3(0, 0, 1), NewVec3(0, 0, 2), 0.1))
	require.False(t, p.Crosses(NewVec3(0, 0, 3), NewVec3(0, 0, 2), 0.1))
}

func TestPlaneLineIntersect(t *testing.T) {
	p, err := NewPlane(NewVec3(0, 0, 1), NewVec3(0, 0, 1))
	require.NoError(t, err)

	hit, ok := p.LineIntersect(NewVec3(0, 0, 0), NewVec3(2, 2, 2))
	require.True(t, ok)
	requireVec3Near(t, NewVec3(1, 1, 1), hit)

	// The line extends past the segment.
	hit, ok = p.LineIntersect(NewVec3(0, 0, 3), NewVec3(0, 1, 2))
	require.True(t, ok)
	requireVec3Near(t, NewVec3(0, 2, 1), hit)

	_, ok = p.LineIntersect(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	require.False(t, ok)
}

func TestPlaneTransform(t *testing.T) {
	p, err := NewPlane(NewVec3(0, 0, 1), NewVec3(0, 0, 1))
	require.NoError(t, err)

	moved, err := p.Transform(Translate(0, 0, 5))
	require.NoError(t, err)
	require.True(t, moved.Vec4().ApproxEqual(NewVec4(0, 0, 1, -6), float64EqualityThreshold), "got %v", moved)

	turned, err := p.Transform(Rotate(90, NewVec3(1, 0, 0)))
	require.NoError(t, err)
	require.True(t, turned.Vec4().ApproxEqual(NewVec4(0, -1, 0, -1), float64EqualityThreshold), "got %v", turned)

	// Points on the plane stay on it under a general affine transform,
	// including non-uniform scale.
	m := Translate(1, -2, 3).Mul(Scale(2, 1, 0.5)).Mul(Rotate(30, NewVec3(1, 1, 0)))
	got, err := p.Transform(m)
	require.NoError(t, err)
	require.True(t, almostEqual(1, got.Normal().Magnitude()))
	for _, v := range []Vec3{{0, 0, 1}, {4, -1, 1}, {-3, 7, 1}} {
		require.True(t, almostEqual(0, got.Distance(m.MulPoint(v))), "point %v", v)
	}

	same, err := p.Transform(Scale(1, 1, 0))
	require.ErrorIs(t, err, ErrSingularMatrix)
	require.Equal(t, p, same)
}
