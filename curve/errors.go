// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints indicates that the sequence is shorter than the
	// evaluator's window (4 for CatmullRom and Bezier, 2 for Linear).
	ErrTooFewPoints = errors.New("curve: not enough control points")

	// ErrCursorOutOfRange indicates a cursor outside [0, len(points)), or a
	// Linear cursor on the last point (Linear does not wrap).
	ErrCursorOutOfRange = errors.New("curve: cursor out of range")

	// ErrUnknownKind indicates an unrecognized curve kind name.
	ErrUnknownKind = errors.New("curve: unknown curve kind")
)

// Operation tags for uniform error wrapping.
const (
	opCatmullRom = "CatmullRom"
	opBezier     = "Bezier"
	opLinear     = "Linear"
	opSample     = "Sample"
	opParseKind  = "ParseKind"
	opAlign      = "Align"
)

func curveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateWindow checks the point count and cursor range for an evaluator
// reading a window of need points.
func validateWindow(n, pos, need int) error {
	if n < need {
		return fmt.Errorf("have %d, need %d: %w", n, need, ErrTooFewPoints)
	}
	if pos < 0 || pos >= n {
		return fmt.Errorf("cursor %d of %d: %w", pos, n, ErrCursorOutOfRange)
	}
	return nil
}
