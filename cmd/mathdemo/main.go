// SPDX-License-Identifier: MIT

// Package main demonstrates the mathlib primitives end to end.
//
// Scenario:
//
//	1. Invert a 3x3 matrix twice, once with Gauss-Jordan elimination and
//	   once in closed form, and print both results with the determinant.
//	2. Build a translation and a Z rotation, compose them (translate first,
//	   rotate second) and apply the result to a vector.
//
// With the defaults, (2,0,0) is translated to (3,0,0) and rotated 90° about
// Z, which lands at ≈ (0,3,0).
//
//	go run ./cmd/mathdemo -angle 90 -x 2
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/mathlib/matrix"
	"github.com/katalvlaran/mathlib/transform"
	"github.com/katalvlaran/mathlib/vector"
)

func main() {
	var (
		angle = flag.Float64("angle", 90, "Rotation about Z, in degrees.")
		tx    = flag.Float64("tx", 1, "Translation along X.")
		x     = flag.Float64("x", 2, "Input vector X.")
		y     = flag.Float64("y", 0, "Input vector Y.")
		z     = flag.Float64("z", 0, "Input vector Z.")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("mathdemo: ")

	// 1) Matrix3 inversion
	a := matrix.NewMatrix3[float32](2, 3, 8, 6, 0, -3, -1, 3, 2)
	b := a
	fmt.Println("det:", a.Determinant())
	if !a.InverseGaussian() {
		log.Fatalf("matrix is singular:\n%s", b)
	}
	b.Inverse()
	fmt.Printf("gauss-jordan:\n%s", a)
	fmt.Printf("closed form:\n%s", b)

	// 2) translate, then rotate
	var t, r matrix.Matrix4
	transform.MatrixTranslation(&t, float32(*tx), 0, 0)
	transform.MatrixRotationZ(&r, transform.DegreesToRadians(float32(*angle)))
	m := transform.Compose(t, r)

	v := vector.New(float32(*x), float32(*y), float32(*z))
	fmt.Printf("transform:\n%s", m)
	fmt.Printf("(%v) -> (%v)\n", v, v.Transformed(m))
}
