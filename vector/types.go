// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/mathlib/matrix"

// Number is the element constraint for Vec3: signed integers and floats.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts Number to floating-point element types.
type Float = matrix.Float

// DefaultTolerance is the default bound used by Equals.
// It is compared against the squared distance between two vectors.
const DefaultTolerance = 1e-5

// Vec3 is a 3-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Common instantiations.
type (
	Vec3f = Vec3[float32] // 3D vector of float32
	Vec3d = Vec3[float64] // 3D vector of float64
	Vec3i = Vec3[int]     // 3D vector of int

	Vector  = Vec3f // default vector type
	Point3f = Vec3f // geometric point
)

// Point2f is a 2D point.
type Point2f struct {
	X, Y float32
}

// Color3f is an RGB color with float channels.
type Color3f struct {
	R, G, B float32
}

// Color4f is an RGBA color with float channels.
type Color4f struct {
	R, G, B, A float32
}
