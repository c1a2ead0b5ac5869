// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All checked accessors and converters return these sentinels (optionally
// wrapped once with an operation tag); tests match them via errors.Is.
// Arithmetic on fixed-size values cannot fail and therefore returns no error.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Checked indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a source matrix does not have the
	// shape required by the destination (3x3 or 4x4).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil source matrix was passed to a converter.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags for uniform error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opFromDense = "FromDense"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
