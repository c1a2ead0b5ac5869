// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Matrix3/Matrix4 tests.
//   • Keep tolerance checks in one place so float32 and float64 tests agree.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mathlib/matrix"
)

// Tolerances for float32 and float64 comparisons.
const (
	tol32 = 1e-5
	tol64 = 1e-9
)

// sample3 is a well-conditioned 3x3 matrix with det = 135.
func sample3[T matrix.Float]() matrix.Matrix3[T] {
	return matrix.NewMatrix3[T](2, 3, 8, 6, 0, -3, -1, 3, 2)
}

// RandomMatrix4 FILLS a Matrix4 with deterministic U(-1,1) values by seed and
// adds 4 on the diagonal, which keeps it strictly diagonally dominant and so
// invertible.
func RandomMatrix4(seed int64) matrix.Matrix4 {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Matrix4
	for i := range m {
		m[i] = float32(rng.Float64()*2 - 1)
	}
	for _, i := range []int{matrix.M11, matrix.M22, matrix.M33, matrix.M44} {
		m[i] += 4
	}
	return m
}

// RequireClose3 asserts element-wise |a-b| <= tol.
func RequireClose3[T matrix.Float](t *testing.T, want, got matrix.Matrix3[T], tol float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, float64(want[i]), float64(got[i]), tol, "element %d\nwant:\n%sgot:\n%s", i, want, got)
	}
}

// RequireClose4 asserts element-wise |a-b| <= tol.
func RequireClose4(t *testing.T, want, got matrix.Matrix4, tol float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, float64(want[i]), float64(got[i]), tol, "element %d\nwant:\n%sgot:\n%s", i, want, got)
	}
}

// RequireDenseClose asserts that a Matrix-sized gonum matrix matches data
// element-wise.
func RequireDenseClose(t *testing.T, want mat.Matrix, got []float64, n int, tol float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, n, r)
	require.Equal(t, n, c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDeltaf(t, want.At(i, j), got[n*i+j], tol, "(%d,%d)", i, j)
		}
	}
}
