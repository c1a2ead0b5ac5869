// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vec3.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathlib/matrix"
	"github.com/katalvlaran/mathlib/vector"
)

const tol = 1e-5

func requireVecClose(t *testing.T, want, got vector.Vec3f, delta float64) {
	t.Helper()
	require.InDeltaf(t, want.X, got.X, delta, "X: want (%v) got (%v)", want, got)
	require.InDeltaf(t, want.Y, got.Y, delta, "Y: want (%v) got (%v)", want, got)
	require.InDeltaf(t, want.Z, got.Z, delta, "Z: want (%v) got (%v)", want, got)
}

func TestVec3_Constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Vec3f{X: 1, Y: 2, Z: 3}, vector.New[float32](1, 2, 3))
	assert.Equal(t, vector.Vec3i{X: 7, Y: 7, Z: 7}, vector.Splat(7))
	assert.Equal(t, vector.Vec3d{}, vector.Vec3d{X: 0, Y: 0, Z: 0})
}

func TestVec3_Arithmetic(t *testing.T) {
	t.Parallel()

	u := vector.New[float32](1, 2, 3)
	v := vector.New[float32](4, -5, 6)

	assert.Equal(t, vector.New[float32](5, -3, 9), u.Add(v))
	assert.Equal(t, vector.New[float32](-3, 7, -3), u.Sub(v))
	assert.Equal(t, vector.New[float32](4, -10, 18), u.Mul(v))
	assert.Equal(t, vector.New[float32](0.25, -0.4, 0.5), u.Div(v))
	assert.Equal(t, vector.New[float32](3, 4, 5), u.AddScalar(2))
	assert.Equal(t, vector.New[float32](0, 1, 2), u.SubScalar(1))
	assert.Equal(t, vector.New[float32](2, 4, 6), u.MulScalar(2))
	assert.Equal(t, vector.New[float32](0.5, 1, 1.5), u.DivScalar(2))
	assert.Equal(t, vector.New[float32](-1, -2, -3), u.Neg())

	// value forms do not mutate
	assert.Equal(t, vector.New[float32](1, 2, 3), u)
}

func TestVec3_AssignForms(t *testing.T) {
	t.Parallel()

	v := vector.New[float32](1, 2, 3)
	got := v.AddAssign(vector.Splat[float32](1)).
		MulScalarAssign(2).
		SubScalarAssign(2).
		DivScalarAssign(2)
	require.Same(t, &v, got)
	assert.Equal(t, vector.New[float32](1, 2, 3), v)

	v.SubAssign(vector.New[float32](1, 1, 1)).MulAssign(vector.New[float32](2, 3, 4))
	assert.Equal(t, vector.New[float32](0, 3, 8), v)

	v.AddScalarAssign(2).DivAssign(vector.New[float32](2, 5, 10))
	assert.Equal(t, vector.New[float32](1, 1, 1), v)

	v.Fill(4).Negate()
	assert.Equal(t, vector.Splat[float32](-4), v)
}

func TestVec3_Properties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		u, v vector.Vec3d
		s    float64
	}{
		{"axes", vector.New(1.0, 0, 0), vector.New(0, 1.0, 0), 3},
		{"mixed", vector.New(1.5, -2, 3.25), vector.New(-4, 0.5, 7), -0.75},
		{"large", vector.New(1e3, 2e3, -3e3), vector.New(7.0, 11, 13), 1e-3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tc.u.Add(tc.v).Sub(tc.v).Equals(tc.u))
			assert.True(t, tc.u.MulScalar(tc.s).DivScalar(tc.s).Equals(tc.u))
			assert.Equal(t, tc.u.Dot(tc.v), tc.v.Dot(tc.u))
			assert.Equal(t, tc.u.Cross(tc.v), tc.v.Cross(tc.u).Neg())

			// u × v is orthogonal to both
			c := tc.u.Cross(tc.v)
			assert.InDelta(t, 0, c.Dot(tc.u), 1e-6)
			assert.InDelta(t, 0, c.Dot(tc.v), 1e-6)
		})
	}
}

func TestVec3_Cross_RightHanded(t *testing.T) {
	t.Parallel()

	x, y, z := vector.New(1, 0, 0), vector.New(0, 1, 0), vector.New(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
}

func TestVec3_Metrics(t *testing.T) {
	t.Parallel()

	v := vector.New[float32](3, 4, 12)
	assert.Equal(t, float32(169), v.LengthSquared())
	assert.Equal(t, float32(13), v.Length())
	assert.Equal(t, float32(169), v.DistanceSquared(vector.Vec3f{}))
	assert.Equal(t, float32(145), v.Dot(vector.New[float32](3, 4, 10)))

	// integer instantiation
	i := vector.New(2, 3, 6)
	assert.Equal(t, 7, i.Length())
}

func TestVec3_Equality(t *testing.T) {
	t.Parallel()

	a := vector.New[float32](1, 1, 1)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(a.AddScalar(1e-6)))

	tests := []struct {
		name           string
		off            float32
		equals, within bool
	}{
		{"identical", 0, true, true},
		// squared distance 3e-6 <= 1e-5, distance ~1.7e-3 > 1e-5
		{"1e-3 per axis", 1e-3, true, false},
		// squared distance 3e-4 > 1e-5
		{"1e-2 per axis", 1e-2, false, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := a.AddScalar(tc.off)
			assert.Equal(t, tc.equals, a.Equals(b))
			assert.Equal(t, tc.within, a.WithinDistance(b, vector.DefaultTolerance))
		})
	}

	// EqualsTol bounds the squared distance
	b := a.AddScalar(1e-2)
	assert.True(t, a.EqualsTol(b, 1e-3))
	assert.False(t, a.EqualsTol(b, 1e-4))
	assert.True(t, a.WithinDistance(b, 2e-2))
}

func TestVec3_Normalize(t *testing.T) {
	t.Parallel()

	v := vector.New[float32](0, 3, 4)
	got := v.Normalize()
	require.Same(t, &v, got)
	requireVecClose(t, vector.New[float32](0, 0.6, 0.8), v, tol)
	assert.InDelta(t, 1, v.Length(), tol)

	// zero vector is left alone
	var z vector.Vec3f
	z.Normalize()
	assert.Equal(t, vector.Vec3f{}, z)
	for _, c := range []float32{z.X, z.Y, z.Z} {
		assert.False(t, math.IsNaN(float64(c)))
	}

	w := vector.New[float32](10, 0, 0)
	assert.Equal(t, vector.New[float32](1, 0, 0), w.Normalized())
	assert.Equal(t, vector.New[float32](10, 0, 0), w)
}

func TestVec3_ProjectOn(t *testing.T) {
	t.Parallel()

	v := vector.New(3.0, 4, 5)
	assert.Equal(t, vector.New(3.0, 0, 0), v.ProjectOn(vector.New(2.0, 0, 0)))
	assert.Equal(t, vector.New(0, 4.0, 0), v.ProjectOn(vector.New(0, -1.0, 0)))

	d := vector.New(1.0, 1, 0)
	assert.Equal(t, vector.New(3.5, 3.5, 0), v.ProjectOn(d))
}

func TestVec3_Transform(t *testing.T) {
	t.Parallel()

	v := vector.New[float32](1, 2, 3)

	// identity leaves v unchanged
	assert.Equal(t, v, v.Transformed(matrix.Identity4()))

	// translation row
	tr := matrix.Identity4()
	tr[matrix.M41], tr[matrix.M42], tr[matrix.M43] = 10, 20, 30
	assert.Equal(t, vector.New[float32](11, 22, 33), v.Transformed(tr))

	// row-vector convention: x' reads column 1
	m := matrix.NewMatrix4(
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	assert.Equal(t, vector.New[float32](-2, 1, 3), v.Transformed(m))

	// the fourth column is ignored
	m[matrix.M14], m[matrix.M24], m[matrix.M34] = 5, 5, 5
	assert.Equal(t, vector.New[float32](-2, 1, 3), v.Transformed(m))

	// in place
	got := v.Transform(tr)
	require.Same(t, &v, got)
	assert.Equal(t, vector.New[float32](11, 22, 33), v)
}

func TestVec3_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1, 2.5, -3", vector.New[float32](1, 2.5, -3).String())
	assert.Equal(t, "4, 5, 6", vector.New(4, 5, 6).String())
}
