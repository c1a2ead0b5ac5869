// Package matrix provides fixed-size 3x3 and 4x4 matrices for transform and
// small linear-algebra work.
//
// The matrix package provides:
//
//   - Matrix3[T]: a generic 3x3 matrix (float32 or float64) with scalar and
//     element-wise arithmetic, row-by-column multiplication, determinant,
//     transpose, a truncating identity test, a closed-form inverse and a
//     Gauss-Jordan inverse with partial pivoting.
//   - Matrix4: a 4x4 float32 matrix laid out for row vectors (translation in
//     M41..M43), with arithmetic, multiplication, transpose, an exact identity
//     test, Gauss-Jordan inversion and raw pointer access for rendering APIs.
//   - Converters to and from gonum's *mat.Dense and mathgl's mgl32.Mat4.
//
// Both types are plain arrays: they copy by value and compare with ==.
// Value methods (Add, MulScalar, Transposed, ...) return new matrices;
// pointer methods ending in Assign, plus Transpose, SetIdentity, Inverse and
// InverseGaussian, mutate the receiver and return it for chaining.
//
// Only one multiplication convention exists in this package:
// (A·B)[i][j] = Σk A[i][k]·B[k][j], and vectors are rows multiplied on the
// left. A transform that translates and then rotates is therefore
// translation.Mul(rotation).
//
// See the examples in this package and in transform for usage patterns.
package matrix
