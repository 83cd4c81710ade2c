package gomath3d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestHamiltonProduct(t *testing.T) {
	j := QuaternionFromParts(0, NewVec3(0, 1, 0))
	k := QuaternionFromParts(0, NewVec3(0, 0, 1))
	require.Equal(t, QuaternionFromParts(0, NewVec3(1, 0, 0)), j.Mul(k))
	require.Equal(t, QuaternionFromParts(0, NewVec3(-1, 0, 0)), k.Mul(j))

	a := QuaternionFromParts(1, NewVec3(2, 3, 4))
	b := QuaternionFromParts(-0.5, NewVec3(0.25, 7, -1))
	want := a.Mgl().Mul(b.Mgl())
	require.True(t, a.Mul(b).ApproxEqual(QuaternionFromMgl(want), float64EqualityThreshold))
}

func TestQuaternionBasics(t *testing.T) {
	q := QuaternionFromParts(1, NewVec3(2, 2, 4))
	require.Equal(t, 5.0, q.Magnitude())
	require.Equal(t, 25.0, q.MagnitudeSquared())
	require.Equal(t, QuaternionFromParts(1, NewVec3(-2, -2, -4)), q.Conjugate())

	for i, want := range []float64{1, 2, 2, 4} {
		require.Equal(t, want, q.Index(i))
	}

	inv, err := q.Inverse()
	require.NoError(t, err)
	require.True(t, q.Mul(inv).ApproxEqual(IdentityQuaternion(), float64EqualityThreshold))
	require.True(t, inv.Mul(q).ApproxEqual(IdentityQuaternion(), float64EqualityThreshold))
	require.True(t, inv.ApproxEqual(QuaternionFromMgl(q.Mgl().Inverse()), float64EqualityThreshold))

	n, err := q.Normalize()
	require.NoError(t, err)
	require.True(t, almostEqual(1, n.Magnitude()))

	require.Equal(t, "1.0000 2.0000 2.0000 4.0000", q.String())
}

func TestQuaternionZeroMagnitude(t *testing.T) {
	inv, err := Quaternion{}.Inverse()
	require.True(t, errors.Is(err, ErrDegenerateInput))
	require.Equal(t, Quaternion{}, inv)

	_, err = Quaternion{}.Normalize()
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestAngleAxisMatchesReference(t *testing.T) {
	axis := NewVec3(1, -2, 0.5)
	n, err := axis.Normalize()
	require.NoError(t, err)

	q := QuaternionFromAngleAxis(-90, axis)
	want := mgl64.QuatRotate(mgl64.DegToRad(-90), n.Mgl())
	require.True(t, q.ApproxEqual(QuaternionFromMgl(want), float64EqualityThreshold))
	require.True(t, almostEqual(1, q.Magnitude()))

	require.Equal(t, IdentityQuaternion(), QuaternionFromAngleAxis(45, Vec3{}))
}

func TestRotatePathsAgree(t *testing.T) {
	testCases := []struct {
		name     string
		q        Quaternion
		v        Vec3
		expected Vec3
	}{
		{"90 about y", QuaternionFromAngleAxis(90, NewVec3(0, 1, 0)), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"45 about z", QuaternionFromAngleAxis(45, NewVec3(0, 0, 1)), NewVec3(1, 0, 0), NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"euler roll 45", ToQuaternion(NewEuler(0, 0, 45)), NewVec3(1, 0, 0), NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"120 about diagonal", QuaternionFromAngleAxis(120, NewVec3(1, 1, 1)), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireVec3Near(t, tc.expected, tc.q.RotateVec(tc.v))
			requireVec3Near(t, tc.expected, RotateVector(tc.v, tc.q))
			requireVec3Near(t, tc.expected, tc.q.Matrix3().MulVec3(tc.v))
			requireVec3Near(t, tc.expected, tc.q.Matrix4().MulPoint(tc.v))
			requireVec3Near(t, Vec3FromMgl(tc.q.Mgl().Rotate(tc.v.Mgl())), RotateVector(tc.v, tc.q))
		})
	}
}

func TestQuaternionMatrixMatchesReference(t *testing.T) {
	q := ToQuaternion(NewEuler(10, -40, 75))
	requireMatrix4Near(t, q.Mgl().Mat4(), q.Matrix4())
	require.True(t, q.Matrix4().ApproxEqual(Rotate(AxisAngleFromQuaternion(q).Angle, AxisAngleFromQuaternion(q).Axis), float64EqualityThreshold))
}

func TestQuaternionFromMatrix(t *testing.T) {
	rotations := []Quaternion{
		IdentityQuaternion(),
		QuaternionFromAngleAxis(30, NewVec3(1, 2, 3)),
		QuaternionFromAngleAxis(180, NewVec3(1, 0, 0)),
		QuaternionFromAngleAxis(180, NewVec3(0, 1, 0)),
		QuaternionFromAngleAxis(180, NewVec3(0, 0, 1)),
		QuaternionFromAngleAxis(-270, NewVec3(1, 0, 0)),
		QuaternionFromAngleAxis(170, NewVec3(-1, 1, 0.2)),
	}
	for _, q := range rotations {
		got := QuaternionFromMatrix3(q.Matrix3())
		require.True(t, sameRotation(q, got), "want %v, got %v", q, got)
		require.True(t, almostEqual(1, got.Magnitude()))

		ref := QuaternionFromMgl(mgl64.Mat4ToQuat(q.Mgl().Mat4()))
		require.True(t, sameRotation(ref, QuaternionFromMatrix4(Translate(5, 6, 7).Mul(q.Matrix4()))))
	}
}

func TestSlerpEndpoints(t *testing.T) {
	pairs := []struct {
		name   string
		q1, q2 Quaternion
	}{
		{"euler pitch to yaw", ToQuaternion(NewEuler(90, 0, 0)), ToQuaternion(NewEuler(0, 90, 0))},
		{"small arc", QuaternionFromAngleAxis(10, NewVec3(0, 0, 1)), QuaternionFromAngleAxis(25, NewVec3(0, 0, 1))},
		{"nearly parallel", QuaternionFromAngleAxis(1, NewVec3(1, 0, 0)), QuaternionFromAngleAxis(1.5, NewVec3(1, 0, 0))},
		{"identity to half turn", IdentityQuaternion(), QuaternionFromAngleAxis(179, NewVec3(0, 1, 1))},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			require.GreaterOrEqual(t, p.q1.Dot(p.q2), 0.0)
			require.True(t, Slerp(p.q1, p.q2, 0).ApproxEqual(p.q1, float64EqualityThreshold))
			require.True(t, Slerp(p.q1, p.q2, 1).ApproxEqual(p.q2, float64EqualityThreshold))

			for _, tt := range []float64{0.1, 0.3, 0.5, 0.9} {
				got := Slerp(p.q1, p.q2, tt)
				require.True(t, almostEqual(1, got.Magnitude()))
				want := QuaternionFromMgl(mgl64.QuatSlerp(p.q1.Mgl(), p.q2.Mgl(), tt))
				require.True(t, got.ApproxEqual(want, 1e-4), "t=%v: want %v, got %v", tt, want, got)
			}
		})
	}
}

func TestSlerpConstantAngularVelocity(t *testing.T) {
	q1 := IdentityQuaternion()
	q2 := QuaternionFromAngleAxis(120, NewVec3(0, 0, 1))
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		got := Slerp(q1, q2, tt)
		want := QuaternionFromAngleAxis(120*tt, NewVec3(0, 0, 1))
		require.True(t, got.ApproxEqual(want, float64EqualityThreshold))
	}
}

func TestSlerpTakesShortestArc(t *testing.T) {
	q1 := QuaternionFromAngleAxis(10, NewVec3(0, 1, 0))
	q2 := QuaternionFromAngleAxis(50, NewVec3(0, 1, 0)).Neg()
	require.Less(t, q1.Dot(q2), 0.0)

	require.True(t, Slerp(q1, q2, 1).ApproxEqual(q2, float64EqualityThreshold))
	require.True(t, Slerp(q1, q2, 0).ApproxEqual(q1, float64EqualityThreshold))

	// Just short of the end the path is already on the -q2 side.
	near := Slerp(q1, q2, 0.999)
	require.Greater(t, near.Dot(q2.Neg()), 0.99)

	mid := Slerp(q1, q2, 0.5)
	require.True(t, mid.ApproxEqual(QuaternionFromAngleAxis(30, NewVec3(0, 1, 0)), float64EqualityThreshold))
}

func TestSlerpOutsideUnitInterval(t *testing.T) {
	q1 := QuaternionFromAngleAxis(0, NewVec3(1, 0, 0))
	q2 := QuaternionFromAngleAxis(90, NewVec3(1, 0, 0))
	require.True(t, Slerp(q1, q2, -3).ApproxEqual(q1, float64EqualityThreshold))
	require.True(t, Slerp(q1, q2, 7).ApproxEqual(q2, float64EqualityThreshold))

	nan := Slerp(q1, q2, math.NaN())
	require.False(t, math.IsNaN(nan.W) || math.IsNaN(nan.V.X))
	require.True(t, nan.ApproxEqual(q1, float64EqualityThreshold))

	// A zero input is treated as the identity rather than producing NaN.
	got := Slerp(Quaternion{}, q2, 0.5)
	require.False(t, math.IsNaN(got.W))
	require.True(t, got.ApproxEqual(QuaternionFromAngleAxis(45, NewVec3(1, 0, 0)), float64EqualityThreshold))
}

func TestNlerp(t *testing.T) {
	q1 := IdentityQuaternion()
	q2 := QuaternionFromAngleAxis(90, NewVec3(0, 0, 1))
	mid := Nlerp(q1, q2, 0.5)
	require.True(t, almostEqual(1, mid.Magnitude()))
	require.True(t, mid.ApproxEqual(QuaternionFromAngleAxis(45, NewVec3(0, 0, 1)), float64EqualityThreshold))

	// Opposite quaternions cancel halfway; the blend falls back to the identity.
	require.Equal(t, IdentityQuaternion(), Nlerp(q2, q2.Neg(), 0.5))
}

func TestPow(t *testing.T) {
	q := QuaternionFromAngleAxis(90, NewVec3(0, 0, 1))
	half := Pow(q, 0.5)
	requireVec3Near(t, NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0), RotateVector(NewVec3(1, 0, 0), half))
	require.True(t, half.Mul(half).ApproxEqual(q, float64EqualityThreshold))

	require.True(t, Pow(q, 2).ApproxEqual(q.Mul(q), float64EqualityThreshold))
	require.True(t, Pow(q, -1).ApproxEqual(q.Conjugate(), float64EqualityThreshold))
	require.True(t, Pow(q, 0).ApproxEqual(IdentityQuaternion(), float64EqualityThreshold))

	scaled := q.Scale(4)
	require.True(t, Pow(scaled, 0.5).ApproxEqual(half.Scale(2), float64EqualityThreshold))

	require.Equal(t, Quaternion{W: 8}, Pow(QuaternionFromParts(2, Vec3{}), 3))
	require.Equal(t, Quaternion{}, Pow(Quaternion{}, 0.5))

	// -1 is a half turn; its square root is a quarter turn.
	root := Pow(QuaternionFromParts(-1, Vec3{}), 0.5)
	require.True(t, root.Mul(root).ApproxEqual(QuaternionFromParts(-1, Vec3{}), float64EqualityThreshold))
}
