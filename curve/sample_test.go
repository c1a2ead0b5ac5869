// SPDX-License-Identifier: MIT
// Package curve_test contains unit tests for Sample.
package curve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathlib/curve"
	"github.com/katalvlaran/mathlib/vector"
)

func TestSample_CatmullRomLoop(t *testing.T) {
	t.Parallel()

	pts := diamond()
	out, err := curve.Sample(pts, curve.WithSteps(4))
	require.NoError(t, err)
	require.Len(t, out, len(pts)*4+1)

	// every control point is visited, and the loop closes
	for i, p := range pts {
		assert.Equal(t, p, out[4*i], "control point %d", i)
	}
	RequireVecClose(t, pts[0], out[len(out)-1])
}

func TestSample_Defaults(t *testing.T) {
	t.Parallel()

	pts := diamond()
	out, err := curve.Sample(pts)
	require.NoError(t, err)
	assert.Len(t, out, len(pts)*curve.DefaultSteps+1)

	// nil options are ignored
	same, err := curve.Sample(pts, nil)
	require.NoError(t, err)
	assert.Equal(t, out, same)
}

func TestSample_Bezier(t *testing.T) {
	t.Parallel()

	// two chained spans sharing pts[3]
	pts := []vector.Vec3d{
		vector.New(0.0, 0, 0), vector.New(1.0, 2, 0), vector.New(3.0, 2, 0),
		vector.New(4.0, 0, 0),
		vector.New(5.0, -2, 0), vector.New(7.0, -2, 0), vector.New(8.0, 0, 0),
	}
	out, err := curve.Sample(pts, curve.WithKind(curve.KindBezier), curve.WithSteps(4))
	require.NoError(t, err)
	require.Len(t, out, 2*4+1)

	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[3], out[4])
	assert.Equal(t, pts[6], out[8])
	RequireVecClose(t, vector.New(2.0, 1.5, 0), out[2])
}

func TestSample_Linear(t *testing.T) {
	t.Parallel()

	pts := line(3)
	out, err := curve.Sample(pts, curve.WithKind(curve.KindLinear), curve.WithSteps(2))
	require.NoError(t, err)

	want := []vector.Vec3f{
		vector.New[float32](0, 0, 0),
		vector.New[float32](0.5, 0, 0),
		vector.New[float32](1, 0, 0),
		vector.New[float32](1.5, 0, 0),
		vector.New[float32](2, 0, 0),
	}
	assert.Equal(t, want, out)

	// two points are enough for a polyline
	out, err = curve.Sample(line(2), curve.WithKind(curve.KindLinear), curve.WithSteps(1))
	require.NoError(t, err)
	assert.Equal(t, line(2), out)
}

func TestSample_TooFewPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind curve.Kind
		n    int
	}{
		{"catmullrom", curve.KindCatmullRom, 3},
		{"bezier", curve.KindBezier, 3},
		{"linear", curve.KindLinear, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := curve.Sample(line(tc.n), curve.WithKind(tc.kind))
			require.Truef(t, errors.Is(err, curve.ErrTooFewPoints), "got %v", err)
			assert.Nil(t, out)
		})
	}
}
