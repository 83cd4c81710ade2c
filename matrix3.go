package gomath3d

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix3 is a 3x3 column-major matrix, element (row r, column c) at index
// c*3+r, laid out like mgl64.Mat3. The zero value is the zero matrix.
type Matrix3 [9]float64

func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMatrix3 returns the identity matrix.
func NewMatrix3() Matrix3 {
	return Identity3()
}

func NewMatrix3FromColumns(c0, c1, c2 Vec3) Matrix3 {
	var m Matrix3
	m.SetColumn(Col0, c0)
	m.SetColumn(Col1, c1)
	m.SetColumn(Col2, c2)
	return m
}

func (m Matrix3) At(row, col int) float64 {
	return m[col*3+row]
}

func (m *Matrix3) Set(row, col int, v float64) {
	m[col*3+row] = v
}

// Column panics for Col3, which a Matrix3 does not have.
func (m Matrix3) Column(c Column) Vec3 {
	i := int(c) * 3
	return Vec3{m[i], m[i+1], m[i+2]}
}

func (m *Matrix3) SetColumn(c Column, v Vec3) {
	i := int(c) * 3
	m[i], m[i+1], m[i+2] = v.X, v.Y, v.Z
}

func (m Matrix3) Row(r int) Vec3 {
	return Vec3{m[r], m[3+r], m[6+r]}
}

// Mul returns m * o; o is applied first.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var res Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			res[c*3+r] = m[r]*o[c*3] + m[3+r]*o[c*3+1] + m[6+r]*o[c*3+2]
		}
	}
	return res
}

func (m Matrix3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// adjugate works on the flat array directly: inverting the transpose gives
// the transposed inverse, so the row-major cofactor layout is also correct
// for column-major storage.
func (m Matrix3) adjugate() Matrix3 {
	return Matrix3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
}

func (m Matrix3) Determinant() float64 {
	adj := m.adjugate()
	return m[0]*adj[0] + m[1]*adj[3] + m[2]*adj[6]
}

// Inverse follows the same convention as Matrix4.Inverse: identity plus
// ErrSingularMatrix when the determinant is within SingularEpsilon of zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	adj := m.adjugate()
	det := m[0]*adj[0] + m[1]*adj[3] + m[2]*adj[6]
	if math.Abs(det) < SingularEpsilon {
		return Identity3(), fmt.Errorf("inverse of 3x3 with determinant %g: %w", det, ErrSingularMatrix)
	}
	invDet := 1 / det
	for i := range adj {
		adj[i] *= invDet
	}
	return adj, nil
}

// Matrix4 embeds m in the upper-left block of an identity Matrix4.
func (m Matrix3) Matrix4() Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

func (m Matrix3) ApproxEqual(o Matrix3, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > epsilon {
			return false
		}
	}
	return true
}

func (m Matrix3) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%1.4f", m[c*3+r]))
		}
	}
	return sb.String()
}

func (m Matrix3) Mgl() mgl64.Mat3 {
	return mgl64.Mat3(m)
}

func Matrix3FromMgl(m mgl64.Mat3) Matrix3 {
	return Matrix3(m)
}
