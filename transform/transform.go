// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/mathlib/matrix"
)

// Pi is the angle constant used by DegreesToRadians.
const Pi float32 = 3.14159

// DegreesToRadians converts degrees to radians using Pi.
func DegreesToRadians(degrees float32) float32 {
	return degrees * (Pi / 180.0)
}

// MatrixTranslation sets m to the identity and writes (x, y, z) into the
// translation row M41, M42, M43.
func MatrixTranslation(m *matrix.Matrix4, x, y, z float32) *matrix.Matrix4 {
	m.SetIdentity()
	m[matrix.M41] = x
	m[matrix.M42] = y
	m[matrix.M43] = z
	return m
}

// MatrixRotationX sets m to a rotation of radians about the X axis.
func MatrixRotationX(m *matrix.Matrix4, radians float32) *matrix.Matrix4 {
	s, c := math32.Sin(radians), math32.Cos(radians)
	*m = matrix.NewMatrix4(
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	)
	return m
}

// MatrixRotationY sets m to a rotation of radians about the Y axis.
func MatrixRotationY(m *matrix.Matrix4, radians float32) *matrix.Matrix4 {
	s, c := math32.Sin(radians), math32.Cos(radians)
	*m = matrix.NewMatrix4(
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	)
	return m
}

// MatrixRotationZ sets m to a rotation of radians about the Z axis.
func MatrixRotationZ(m *matrix.Matrix4, radians float32) *matrix.Matrix4 {
	s, c := math32.Sin(radians), math32.Cos(radians)
	*m = matrix.NewMatrix4(
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	return m
}

// MatrixScaling sets m to a scale by (x, y, z): diagonal (x, y, z, 1), zeros
// elsewhere.
func MatrixScaling(m *matrix.Matrix4, x, y, z float32) *matrix.Matrix4 {
	*m = matrix.NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
	return m
}

// Compose multiplies ms left to right starting from the identity, so the
// result applies ms[0] first and ms[len(ms)-1] last.
func Compose(ms ...matrix.Matrix4) matrix.Matrix4 {
	out := matrix.Identity4()
	for _, m := range ms {
		out.MulAssign(m)
	}
	return out
}
