// SPDX-License-Identifier: MIT

// Package vector provides a small generic 3D vector plus the point and color
// tuples built on the same shape.
//
// What & Why:
//
//	Vec3[T] is a plain value (no pointers, no hidden state) carrying X, Y, Z of
//	any signed integer or floating-point type. Arithmetic comes in two flavors:
//	value methods (Add, MulScalar, ...) return a new vector, while the *Assign
//	methods mutate the receiver in place and return it for chaining:
//
//	  v := vector.Vec3f{X: 1, Y: 2, Z: 3}
//	  w := v.Add(vector.Vec3f{X: 1}).MulScalar(2) // v unchanged
//	  v.AddAssign(w).Normalize()                   // v mutated
//
// Equality:
//
//   - == (struct equality) is exact.
//   - Equals / EqualsTol compare the SQUARED distance against the tolerance.
//   - WithinDistance compares the true Euclidean distance against the tolerance.
//
// Transform applies a matrix.Matrix4 using the row-vector convention shared
// by the whole module: v' = [x y z 1] · M, with translation in M41..M43.
//
// Division by zero (vector or scalar) is not guarded: floats follow IEEE-754
// (±Inf / NaN) and integer instantiations panic in the Go runtime.
package vector
