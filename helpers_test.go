package gomath3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func requireMatrix4Near(t *testing.T, want mgl64.Mat4, got Matrix4) {
	t.Helper()
	for i := range want {
		require.True(t, almostEqual(want[i], got[i]),
			"element %d: want %f, got %f\nwant:\n%v\ngot:\n%v", i, want[i], got[i], Matrix4(want), got)
	}
}

func requireVec3Near(t *testing.T, want, got Vec3) {
	t.Helper()
	require.True(t, want.ApproxEqual(got, float64EqualityThreshold), "want %v, got %v", want, got)
}

// sameRotation treats q and -q as equal.
func sameRotation(a, b Quaternion) bool {
	return a.ApproxEqual(b, float64EqualityThreshold) || a.ApproxEqual(b.Neg(), float64EqualityThreshold)
}
