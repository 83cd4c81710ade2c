package gomath3d

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is a 4x4 matrix stored column-major: element (row r, column c)
// lives at index c*4+r. The layout matches mgl64.Mat4 and OpenGL.
//
// The zero value is the zero matrix; use NewMatrix4 or Identity4 for the
// identity.
type Matrix4 [16]float64

// Column selects one column of a Matrix3 or Matrix4.
type Column int

const (
	Col0 Column = iota
	Col1
	Col2
	Col3
)

func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 returns the identity matrix.
func NewMatrix4() Matrix4 {
	return Identity4()
}

// NewMatrix4FromColumns builds a matrix from its four columns.
func NewMatrix4FromColumns(c0, c1, c2, c3 Vec4) Matrix4 {
	var m Matrix4
	m.SetColumn(Col0, c0)
	m.SetColumn(Col1, c1)
	m.SetColumn(Col2, c2)
	m.SetColumn(Col3, c3)
	return m
}

func (m Matrix4) At(row, col int) float64 {
	return m[col*4+row]
}

func (m *Matrix4) Set(row, col int, v float64) {
	m[col*4+row] = v
}

func (m Matrix4) Column(c Column) Vec4 {
	i := int(c) * 4
	return Vec4{m[i], m[i+1], m[i+2], m[i+3]}
}

func (m *Matrix4) SetColumn(c Column, v Vec4) {
	i := int(c) * 4
	m[i], m[i+1], m[i+2], m[i+3] = v.X, v.Y, v.Z, v.W
}

func (m Matrix4) Row(r int) Vec4 {
	return Vec4{m[r], m[4+r], m[8+r], m[12+r]}
}

// Mul returns m * o. Applied to a vector, o acts first.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var res Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			res[c*4+r] = m[r]*o[c*4] +
				m[4+r]*o[c*4+1] +
				m[8+r]*o[c*4+2] +
				m[12+r]*o[c*4+3]
		}
	}
	return res
}

func (m Matrix4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms p as a point (w = 1). The resulting w is dropped, no
// perspective divide is performed.
func (m Matrix4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// MulDirection rotates and scales d (w = 0). It does not apply
// translation, making it suitable for direction vectors.
func (m Matrix4) MulDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// adjugate returns the transposed cofactor matrix of m.
func (m Matrix4) adjugate() Matrix4 {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return inv
}

// Determinant expands m along its first column.
func (m Matrix4) Determinant() float64 {
	adj := m.adjugate()
	return m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
}

// Inverse returns the adjugate of m divided by its determinant. If the
// determinant is within SingularEpsilon of zero the identity is returned
// together with ErrSingularMatrix.
func (m Matrix4) Inverse() (Matrix4, error) {
	adj := m.adjugate()
	det := m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
	if math.Abs(det) < SingularEpsilon {
		return Identity4(), fmt.Errorf("inverse of 4x4 with determinant %g: %w", det, ErrSingularMatrix)
	}
	invDet := 1 / det
	for i := range adj {
		adj[i] *= invDet
	}
	return adj, nil
}

// Matrix3 returns the upper-left 3x3 block of m.
func (m Matrix4) Matrix3() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Matrix4) ApproxEqual(o Matrix4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > epsilon {
			return false
		}
	}
	return true
}

// String prints m row by row.
func (m Matrix4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		for c := 0; c < 4; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%1.4f", m[c*4+r]))
		}
	}
	return sb.String()
}

func (m Matrix4) Mgl() mgl64.Mat4 {
	return mgl64.Mat4(m)
}

func Matrix4FromMgl(m mgl64.Mat4) Matrix4 {
	return Matrix4(m)
}

// Float32 narrows m for upload to a float32 graphics API.
func (m Matrix4) Float32() mgl32.Mat4 {
	var f mgl32.Mat4
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}
