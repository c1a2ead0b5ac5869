// SPDX-License-Identifier: MIT

// Package matrix: value types and index layout.
// Both matrix types are fixed-size arrays in row-major order, so they copy by
// value, compare with ==, and expose their storage contiguously.
package matrix

// Float is the element constraint for Matrix3.
type Float interface {
	~float32 | ~float64
}

// Matrix3 is a 3x3 matrix stored row-major: element (row, col) lives at 3*row+col.
// The zero value is the zero matrix.
type Matrix3[T Float] [9]T

// Common Matrix3 instantiations.
type (
	Matrix3f = Matrix3[float32]
	Matrix3d = Matrix3[float64]
)

// Matrix4 is a 4x4 float32 matrix stored row-major: element (row, col) lives
// at 4*row+col. Vectors are treated as rows and multiplied on the left
// (v' = v·M), so the translation of an affine transform occupies M41, M42, M43.
//
// The memory layout is identical to a column-major OpenGL matrix describing
// the same transform, which makes GetPointer suitable for direct upload.
// The zero value is the zero matrix.
type Matrix4 [16]float32

// Matrix is the default matrix type.
type Matrix = Matrix4

// Named field labels of Matrix4, usable as indices: m[M41] is row 4, column 1.
const (
	M11 = iota
	M12
	M13
	M14
	M21
	M22
	M23
	M24
	M31
	M32
	M33
	M34
	M41
	M42
	M43
	M44
)

// Matrix sizes.
const (
	dim3 = 3
	dim4 = 4
)
