// Package mathlib is a small set of linear-algebra primitives for graphics
// and simulation code: 3D vectors, 3x3 and 4x4 matrices, affine transform
// builders and interpolation curves.
//
// What is inside?
//
//	• vector/    : generic Vec3[T] plus Point2f, Color3f and Color4f
//	• matrix/    : Matrix3[T] and Matrix4 with Gauss-Jordan and closed-form
//	               inverses, gonum and mathgl interop
//	• transform/ : translation, rotation about X/Y/Z, scaling, degrees to radians
//	• curve/     : circular navigator, Catmull-Rom / Bezier / Linear evaluators,
//	               polyline sampling and DTW alignment of sampled curves
//	• cmd/       : mathdemo (console walk-through) and curveplot (renders a
//	               sampled curve with gonum/plot)
//
// One convention everywhere:
//
//	Vectors are rows and multiply matrices from the left, v' = v·M.
//	Matrices are stored row-major, the translation of an affine Matrix4 lives
//	in M41, M42, M43, and A.Mul(B) applies A first, then B.
//
// Quick example:
//
//	var t, r matrix.Matrix4
//	transform.MatrixTranslation(&t, 1, 0, 0)
//	transform.MatrixRotationZ(&r, transform.DegreesToRadians(90))
//
//	p := vector.New[float32](2, 0, 0).Transformed(transform.Compose(t, r))
//	// p ≈ (0, 3, 0)
//
// All types are plain values with no shared state; they are safe to copy
// between goroutines. Library packages never log; errors are package
// sentinels wrapped once with the failing operation's name.
package mathlib
