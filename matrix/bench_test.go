// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the fixed-size matrix kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathlib/matrix"
)

// sinks to defeat dead-code elimination
var (
	sink3 matrix.Matrix3f
	sink4 matrix.Matrix4
	sinkB bool
)

func BenchmarkMatrix3_InverseGaussian(b *testing.B) {
	b.ReportAllocs()
	src := sample3[float32]()
	for i := 0; i < b.N; i++ {
		m := src
		sinkB = m.InverseGaussian()
		sink3 = m
	}
}

func BenchmarkMatrix3_Inverse(b *testing.B) {
	b.ReportAllocs()
	src := sample3[float32]()
	for i := 0; i < b.N; i++ {
		m := src
		sink3 = *m.Inverse()
	}
}

func BenchmarkMatrix4_Mul(b *testing.B) {
	b.ReportAllocs()
	x, y := RandomMatrix4(1), RandomMatrix4(2)
	for i := 0; i < b.N; i++ {
		sink4 = x.Mul(y)
	}
}

func BenchmarkMatrix4_InverseGaussian(b *testing.B) {
	b.ReportAllocs()
	src := RandomMatrix4(3)
	for i := 0; i < b.N; i++ {
		m := src
		sinkB = m.InverseGaussian()
		sink4 = m
	}
}
