// SPDX-License-Identifier: MIT

package curve

import "github.com/katalvlaran/mathlib/vector"

// Minimum sequence lengths per evaluator.
const (
	MinCubicPoints  = 4
	MinLinearPoints = 2
)

// CatmullRom evaluates the uniform Catmull-Rom spline segment between
// points[pos] and its successor:
//
//	p0 = Advance(-1), p1 = pos, p2 = Advance(+1), p3 = Advance(+2)
//	C(t) = 0.5·[2p1 + (p2−p0)t + (2p0−5p1+4p2−p3)t² + (−p0+3p1−3p2+p3)t³]
//
// C(0) = p1 and C(1) = p2.
//
// Errors:
//   - ErrTooFewPoints     when len(points) < 4.
//   - ErrCursorOutOfRange when pos is outside [0, len(points)).
func CatmullRom[T vector.Float](points []vector.Vec3[T], pos int, t T) (vector.Vec3[T], error) {
	if err := validateWindow(len(points), pos, MinCubicPoints); err != nil {
		return vector.Vec3[T]{}, curveErrorf(opCatmullRom, err)
	}

	p0 := points[Advance(points, pos, -1)]
	p1 := points[pos]
	p2 := points[Advance(points, pos, 1)]
	p3 := points[Advance(points, pos, 2)]

	t2 := t * t
	t3 := t2 * t

	a := p1.MulScalar(2)
	b := p2.Sub(p0).MulScalar(t)
	c := p0.MulScalar(2).Sub(p1.MulScalar(5)).Add(p2.MulScalar(4)).Sub(p3).MulScalar(t2)
	d := p0.Neg().Add(p1.MulScalar(3)).Sub(p2.MulScalar(3)).Add(p3).MulScalar(t3)

	return a.Add(b).Add(c).Add(d).MulScalar(0.5), nil
}

// Bezier evaluates the cubic Bezier curve on the four consecutive points
// starting at the cursor (p0 = pos, p1..p3 = Advance(+1..+3)) with the
// Bernstein basis:
//
//	B(t) = (1−t)³p0 + 3t(1−t)²p1 + 3t²(1−t)p2 + t³p3
//
// B(0) = p0 and B(1) = p3.
//
// Errors:
//   - ErrTooFewPoints     when len(points) < 4.
//   - ErrCursorOutOfRange when pos is outside [0, len(points)).
func Bezier[T vector.Float](points []vector.Vec3[T], pos int, t T) (vector.Vec3[T], error) {
	if err := validateWindow(len(points), pos, MinCubicPoints); err != nil {
		return vector.Vec3[T]{}, curveErrorf(opBezier, err)
	}

	p0 := points[pos]
	p1 := points[Advance(points, pos, 1)]
	p2 := points[Advance(points, pos, 2)]
	p3 := points[Advance(points, pos, 3)]

	u := 1 - t
	b0 := u * u * u
	b1 := 3 * t * u * u
	b2 := 3 * t * t * u
	b3 := t * t * t

	return p0.MulScalar(b0).
		Add(p1.MulScalar(b1)).
		Add(p2.MulScalar(b2)).
		Add(p3.MulScalar(b3)), nil
}

// Linear interpolates between points[pos] and points[pos+1]:
// L(t) = p0(1−t) + p1·t. Unlike the cubic evaluators it does not wrap, so the
// cursor must not sit on the last point.
//
// Errors:
//   - ErrTooFewPoints     when len(points) < 2.
//   - ErrCursorOutOfRange when pos is outside [0, len(points)-1).
func Linear[T vector.Float](points []vector.Vec3[T], pos int, t T) (vector.Vec3[T], error) {
	if err := validateWindow(len(points), pos, MinLinearPoints); err != nil {
		return vector.Vec3[T]{}, curveErrorf(opLinear, err)
	}
	if pos == len(points)-1 {
		return vector.Vec3[T]{}, curveErrorf(opLinear, ErrCursorOutOfRange)
	}

	p0, p1 := points[pos], points[pos+1]
	return p0.MulScalar(1 - t).Add(p1.MulScalar(t)), nil
}

// Evaluate dispatches to the evaluator selected by kind.
func Evaluate[T vector.Float](kind Kind, points []vector.Vec3[T], pos int, t T) (vector.Vec3[T], error) {
	switch kind {
	case KindBezier:
		return Bezier(points, pos, t)
	case KindLinear:
		return Linear(points, pos, t)
	case KindCatmullRom:
		return CatmullRom(points, pos, t)
	default:
		return vector.Vec3[T]{}, curveErrorf(kind.String(), ErrUnknownKind)
	}
}
