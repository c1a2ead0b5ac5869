// Package curve evaluates interpolation curves over a circular sequence of
// control points.
//
// 🚀 What is in here?
//
//	A control-point sequence is an ordinary slice of vector.Vec3[T] plus an
//	int cursor. The sequence is treated as circular: stepping forward past
//	the last point continues at the first and vice versa (see Advance).
//	Three evaluators read a window of points around the cursor:
//	  • CatmullRom : p[-1], p[0], p[+1], p[+2]; passes through p[0] at t=0
//	    and p[+1] at t=1.
//	  • Bezier     : p[0], p[+1], p[+2], p[+3]; cubic Bernstein blend,
//	    passes through p[0] at t=0 and p[+3] at t=1.
//	  • Linear     : p[0], p[+1] without wraparound.
//
// ✨ Guarantees:
//   - Curve code never mutates the caller's slice.
//   - Preconditions (point count, cursor range) are checked before any
//     arithmetic; failures return sentinel errors matched with errors.Is.
//   - t is not clamped: values outside [0,1] extrapolate along the same
//     polynomial.
//
// ⚙️ Usage:
//
//	pts := []vector.Vec3d{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
//	p, err := curve.CatmullRom(pts, 1, 0.5)
//
//	// whole closed loop, 32 samples per span
//	poly, err := curve.Sample(pts, curve.WithSteps(32))
//
//	// how far the loop strays from the control polygon
//	ref, err := curve.Sample(pts, curve.WithKind(curve.KindLinear))
//	dist, _, err := curve.Align(poly, ref, nil)
//
// Complexity: every evaluator is O(1); Sample is O(len(points)·steps);
// Align is O(n·m) for polylines of n and m points.
package curve
