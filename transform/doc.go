// Package transform builds matrix.Matrix4 values for affine transforms:
// translation, rotation about the X, Y and Z axes, and scaling.
//
// Every builder overwrites the caller's matrix and returns the same pointer,
// so a matrix can be built and consumed in one expression:
//
//	var t, r matrix.Matrix4
//	m := transform.MatrixTranslation(&t, 1, 0, 0).Mul(
//		*transform.MatrixRotationZ(&r, transform.DegreesToRadians(90)))
//
// Matrices follow the row-vector convention of package matrix (v' = v·M), so
// rotations are counter-clockwise when looking down the positive axis toward
// the origin, and A.Mul(B) applies A first.
//
// Pi is the 5-decimal constant 3.14159; DegreesToRadians uses it as is, so
// results differ from math.Pi-based conversions in the sixth decimal.
package transform
