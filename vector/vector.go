// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathlib/matrix"
)

// New returns the vector (x, y, z).
func New[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat returns a vector with every component set to s.
func Splat[T Number](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// ---------- value arithmetic ----------

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div returns the component-wise quotient.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// AddScalar adds s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v.X + s, v.Y + s, v.Z + s} }

// SubScalar subtracts s from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return Vec3[T]{v.X - s, v.Y - s, v.Z - s} }

// MulScalar scales the vector by s. Scalar-on-the-left products use the same method.
func (v Vec3[T]) MulScalar(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// ---------- compound (in-place) arithmetic ----------

// AddAssign performs v += o.
func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// SubAssign performs v -= o.
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// MulAssign performs a component-wise v *= o.
func (v *Vec3[T]) MulAssign(o Vec3[T]) *Vec3[T] {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	return v
}

// DivAssign performs a component-wise v /= o.
func (v *Vec3[T]) DivAssign(o Vec3[T]) *Vec3[T] {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
	return v
}

// AddScalarAssign adds s to every component in place.
func (v *Vec3[T]) AddScalarAssign(s T) *Vec3[T] {
	v.X += s
	v.Y += s
	v.Z += s
	return v
}

// SubScalarAssign subtracts s from every component in place.
func (v *Vec3[T]) SubScalarAssign(s T) *Vec3[T] {
	v.X -= s
	v.Y -= s
	v.Z -= s
	return v
}

// MulScalarAssign scales the vector in place.
func (v *Vec3[T]) MulScalarAssign(s T) *Vec3[T] {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// DivScalarAssign divides every component by s in place.
func (v *Vec3[T]) DivScalarAssign(s T) *Vec3[T] {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Fill sets every component to s.
func (v *Vec3[T]) Fill(s T) *Vec3[T] {
	v.X, v.Y, v.Z = s, s, s
	return v
}

// Negate flips the sign of every component in place.
func (v *Vec3[T]) Negate() *Vec3[T] {
	*v = v.Neg()
	return v
}

// ---------- comparisons ----------

// Equal reports exact component equality (same as ==).
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return v == o
}

// Equals reports whether the squared distance between v and o is at most
// DefaultTolerance.
func (v Vec3[T]) Equals(o Vec3[T]) bool {
	return float64(v.DistanceSquared(o)) <= DefaultTolerance
}

// EqualsTol reports whether the squared distance between v and o is at most tol.
// Note that tol bounds the SQUARED distance: EqualsTol(o, 1e-4) accepts vectors
// up to 1e-2 apart.
func (v Vec3[T]) EqualsTol(o Vec3[T], tol T) bool {
	return v.DistanceSquared(o) <= tol
}

// WithinDistance reports whether the Euclidean distance between v and o is at
// most tol.
func (v Vec3[T]) WithinDistance(o Vec3[T], tol float64) bool {
	return math.Sqrt(float64(v.DistanceSquared(o))) <= tol
}

// ---------- metrics & products ----------

// DistanceSquared returns |v - o|².
func (v Vec3[T]) DistanceSquared(o Vec3[T]) T {
	return v.Sub(o).LengthSquared()
}

// LengthSquared returns |v|².
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean norm, converted back to T.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Dot returns v · o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize scales v to unit length in place. Zero-length vectors are left as is.
// The division runs in float64, so integer vectors truncate per component.
func (v *Vec3[T]) Normalize() *Vec3[T] {
	mag := math.Sqrt(float64(v.LengthSquared()))
	if mag <= 0 {
		return v
	}
	v.X = T(float64(v.X) / mag)
	v.Y = T(float64(v.Y) / mag)
	v.Z = T(float64(v.Z) / mag)
	return v
}

// Normalized returns a unit-length copy of v (v itself if its length is zero).
func (v Vec3[T]) Normalized() Vec3[T] {
	out := v
	out.Normalize()
	return out
}

// ProjectOn returns the projection of v onto o: (v·o / |o|²) · o.
// o must be non-zero.
func (v Vec3[T]) ProjectOn(o Vec3[T]) Vec3[T] {
	return o.MulScalar(v.Dot(o) / o.LengthSquared())
}

// Transform applies m to v in place, treating v as the row vector [x y z 1]:
//
//	x' = x·M11 + y·M21 + z·M31 + M41
//	y' = x·M12 + y·M22 + z·M32 + M42
//	z' = x·M13 + y·M23 + z·M33 + M43
//
// The fourth column is ignored (affine transform, no perspective divide).
func (v *Vec3[T]) Transform(m matrix.Matrix4) *Vec3[T] {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	f := func(i int) float64 { return float64(m[i]) }

	v.X = T(x*f(matrix.M11) + y*f(matrix.M21) + z*f(matrix.M31) + f(matrix.M41))
	v.Y = T(x*f(matrix.M12) + y*f(matrix.M22) + z*f(matrix.M32) + f(matrix.M42))
	v.Z = T(x*f(matrix.M13) + y*f(matrix.M23) + z*f(matrix.M33) + f(matrix.M43))
	return v
}

// Transformed returns a transformed copy of v.
func (v Vec3[T]) Transformed(m matrix.Matrix4) Vec3[T] {
	out := v
	out.Transform(m)
	return out
}

// String renders "x, y, z".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v, %v, %v", v.X, v.Y, v.Z)
}
