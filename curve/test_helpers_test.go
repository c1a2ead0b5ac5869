// SPDX-License-Identifier: MIT
// Package curve_test contains test helpers
//
// Purpose:
//   • Deterministic control polygons shared by the evaluator and Sample tests.

package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathlib/vector"
)

const tol = 1e-5

// diamond is a closed 4-point loop on the unit circle, counter-clockwise
// from (0,1).
func diamond() []vector.Vec3f {
	return []vector.Vec3f{
		vector.New[float32](0, 1, 0),
		vector.New[float32](1, 0, 0),
		vector.New[float32](0, -1, 0),
		vector.New[float32](-1, 0, 0),
	}
}

// arc is a single cubic Bezier span.
func arc() []vector.Vec3d {
	return []vector.Vec3d{
		vector.New(0.0, 0, 0),
		vector.New(1.0, 2, 0),
		vector.New(3.0, 2, 0),
		vector.New(4.0, 0, 0),
	}
}

// line returns n points evenly spaced along X.
func line(n int) []vector.Vec3f {
	pts := make([]vector.Vec3f, n)
	for i := range pts {
		pts[i] = vector.New(float32(i), 0, 0)
	}
	return pts
}

// RequireVecClose asserts component-wise |want-got| <= tol.
func RequireVecClose[T vector.Float](t *testing.T, want, got vector.Vec3[T]) {
	t.Helper()
	require.Truef(t, want.WithinDistance(got, tol), "want (%v) got (%v)", want, got)
}
