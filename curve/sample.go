// SPDX-License-Identifier: MIT

package curve

import "github.com/katalvlaran/mathlib/vector"

// bezierStride is how far the cursor moves between consecutive Bezier spans:
// the end point of one span is the start point of the next.
const bezierStride = 3

// Sample evaluates a whole control-point sequence into a polyline.
//
// Implementation:
//   - Stage 1: resolve options (DefaultKind, DefaultSteps).
//   - Stage 2: validate the point count for the chosen kind.
//   - Stage 3: walk the spans, taking steps samples at t = s/steps for each,
//     then append the end point of the final span.
//
// Spans per kind:
//   - KindCatmullRom: one span per point, closing back on points[0];
//     len(out) = len(points)·steps + 1.
//   - KindBezier: cursors 0, 3, 6, ... below len(points)-1, so 3k+1 points
//     give k chained spans; a trailing partial span wraps to the start.
//   - KindLinear: cursors 0 .. len(points)-2, open polyline ending on the
//     last point; len(out) = (len(points)-1)·steps + 1.
//
// Errors:
//   - ErrTooFewPoints when the sequence is shorter than the kind's window.
//
// Complexity: O(len(points)·steps) time and space.
func Sample[T vector.Float](points []vector.Vec3[T], opts ...Option) ([]vector.Vec3[T], error) {
	o := gatherOptions(opts...)

	need, stride, last := MinCubicPoints, 1, len(points)
	switch o.kind {
	case KindBezier:
		stride, last = bezierStride, len(points)-1
	case KindLinear:
		need, last = MinLinearPoints, len(points)-1
	}
	if err := validateWindow(len(points), 0, need); err != nil {
		return nil, curveErrorf(opSample, err)
	}

	out := make([]vector.Vec3[T], 0, (last/stride+1)*o.steps+1)
	var (
		pos, s int
		p      vector.Vec3[T]
		err    error
	)
	for pos = 0; pos < last; pos += stride {
		for s = 0; s < o.steps; s++ {
			p, err = Evaluate(o.kind, points, pos, T(s)/T(o.steps))
			if err != nil {
				return nil, curveErrorf(opSample, err)
			}
			out = append(out, p)
		}
	}

	// close with t = 1 on the final span
	p, err = Evaluate(o.kind, points, pos-stride, 1)
	if err != nil {
		return nil, curveErrorf(opSample, err)
	}
	out = append(out, p)

	return out, nil
}
