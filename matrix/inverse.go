// SPDX-License-Identifier: MIT

package matrix

// ZeroPivot is the sentinel for detecting a singular pivot column.
// The comparison is exact: only a column whose candidates are all exactly
// zero is reported as singular.
const ZeroPivot = 0.0

// gaussJordan inverts the n×n row-major matrix src by Gauss-Jordan elimination
// with partial pivoting on the augmented matrix [src | I].
//
// Implementation:
//   - Stage 1: Build the n×2n augmented matrix [src | I].
//   - Stage 2: For each pivot column j = 0..n-1:
//     select the row p ≥ j with the largest |aug[p][j]|;
//     fail if that magnitude is exactly ZeroPivot;
//     swap row p into position j;
//     scale row j so the pivot becomes 1;
//     subtract factor·row j from every other row to clear column j.
//   - Stage 3: Copy the right half of the augmented matrix out as the inverse.
//
// Behavior highlights:
//   - src is never written; on failure nothing is returned.
//   - Ties in the pivot search keep the lowest row index (deterministic).
//
// Inputs:
//   - src: n*n elements, row-major.
//   - n:   matrix order (3 or 4 in this package).
//
// Returns:
//   - []T : n*n row-major inverse when ok.
//   - bool: false when a pivot column has no non-zero candidate.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func gaussJordan[T Float](src []T, n int) ([]T, bool) {
	// Stage 1: [src | I]
	w := 2 * n
	aug := make([]T, n*w)
	var i, j, c int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	// Stage 2: eliminate column by column
	var (
		p            int
		best, v      T
		pivot, scale T
	)
	for j = 0; j < n; j++ {
		// partial pivoting among rows j..n-1
		p, best = j, abs(aug[j*w+j])
		for i = j + 1; i < n; i++ {
			if v = abs(aug[i*w+j]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, false
		}
		if p != j {
			for c = 0; c < w; c++ {
				aug[j*w+c], aug[p*w+c] = aug[p*w+c], aug[j*w+c]
			}
		}

		// normalize the pivot row
		pivot = aug[j*w+j]
		for c = 0; c < w; c++ {
			aug[j*w+c] /= pivot
		}

		// clear column j in every other row
		for i = 0; i < n; i++ {
			if i == j {
				continue
			}
			scale = aug[i*w+j]
			if scale == 0 {
				continue
			}
			for c = 0; c < w; c++ {
				aug[i*w+c] -= scale * aug[j*w+c]
			}
		}
	}

	// Stage 3: right half is the inverse
	out := make([]T, n*n)
	for i = 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return out, true
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Inverse replaces m with its inverse computed in closed form as
// adj(m) / det(m), and returns m for chaining.
//
// There is no failure signal: a singular matrix (det == 0) yields ±Inf/NaN
// entries. Use InverseGaussian when singularity must be detected.
func (m *Matrix3[T]) Inverse() *Matrix3[T] {
	f := *m
	invDet := 1 / f.Determinant()

	*m = Matrix3[T]{
		(f[4]*f[8] - f[5]*f[7]) * invDet,
		(f[2]*f[7] - f[1]*f[8]) * invDet,
		(f[1]*f[5] - f[2]*f[4]) * invDet,

		(f[5]*f[6] - f[3]*f[8]) * invDet,
		(f[0]*f[8] - f[2]*f[6]) * invDet,
		(f[2]*f[3] - f[0]*f[5]) * invDet,

		(f[3]*f[7] - f[4]*f[6]) * invDet,
		(f[1]*f[6] - f[0]*f[7]) * invDet,
		(f[0]*f[4] - f[1]*f[3]) * invDet,
	}
	return m
}

// InverseGaussian replaces m with its inverse using Gauss-Jordan elimination
// with partial pivoting. It reports false, leaving m untouched, when m is
// singular (some pivot column has only exact zeros at or below the diagonal).
// Callers must check the result before trusting m.
func (m *Matrix3[T]) InverseGaussian() bool {
	inv, ok := gaussJordan(m[:], dim3)
	if !ok {
		return false
	}
	copy(m[:], inv)
	return true
}

// Inverted returns the Gauss-Jordan inverse of m and whether it exists.
func (m Matrix3[T]) Inverted() (Matrix3[T], bool) {
	ok := m.InverseGaussian()
	return m, ok
}

// InverseGaussian replaces m with its inverse using Gauss-Jordan elimination
// with partial pivoting on the augmented 4x8 matrix. It reports false,
// leaving m untouched, when m is singular.
func (m *Matrix4) InverseGaussian() bool {
	inv, ok := gaussJordan(m[:], dim4)
	if !ok {
		return false
	}
	copy(m[:], inv)
	return true
}

// Inverted returns the Gauss-Jordan inverse of m and whether it exists.
func (m Matrix4) Inverted() (Matrix4, bool) {
	ok := m.InverseGaussian()
	return m, ok
}
