// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for index and shape guards used by the checked
//    accessors and the gonum converters.
//  - Return plain sentinels; callers wrap them once with matrixErrorf.
//
// Determinism & Performance:
//  - Pure, allocation-free O(1) checks.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validateIndex ensures 0 ≤ row < n and 0 ≤ col < n.
// Complexity: O(1).
func validateIndex(row, col, n int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("(%d,%d) of %dx%d: %w", row, col, n, n, ErrOutOfRange)
	}

	return nil
}

// validateSource ensures src is non-nil and exactly n×n.
// Complexity: O(1).
func validateSource(src mat.Matrix, n int) error {
	if src == nil {
		return ErrNilMatrix
	}
	r, c := src.Dims()
	if r != n || c != n {
		return fmt.Errorf("got %dx%d, want %dx%d: %w", r, c, n, n, ErrDimensionMismatch)
	}

	return nil
}
