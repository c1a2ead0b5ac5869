// SPDX-License-Identifier: MIT

// Package matrix: interoperability with gonum's dense matrices.
// Conversions always copy; the fixed-size values never alias a *mat.Dense.
package matrix

import "gonum.org/v1/gonum/mat"

// ToDense returns a 3x3 *mat.Dense copy of m.
// Complexity: O(9) time, one allocation.
func (m Matrix3[T]) ToDense() *mat.Dense {
	data := make([]float64, len(m))
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(dim3, dim3, data)
}

// Matrix3FromDense copies a 3x3 gonum matrix into a Matrix3.
//
// Errors:
//   - ErrNilMatrix          when src is nil.
//   - ErrDimensionMismatch  when src is not 3x3.
func Matrix3FromDense[T Float](src mat.Matrix) (Matrix3[T], error) {
	var m Matrix3[T]
	if err := validateSource(src, dim3); err != nil {
		return m, matrixErrorf(opFromDense, err)
	}
	for i := 0; i < dim3; i++ {
		for j := 0; j < dim3; j++ {
			m[dim3*i+j] = T(src.At(i, j))
		}
	}
	return m, nil
}

// ToDense returns a 4x4 *mat.Dense copy of m.
// Complexity: O(16) time, one allocation.
func (m Matrix4) ToDense() *mat.Dense {
	data := make([]float64, len(m))
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(dim4, dim4, data)
}

// Matrix4FromDense copies a 4x4 gonum matrix into a Matrix4, narrowing each
// element to float32.
//
// Errors:
//   - ErrNilMatrix          when src is nil.
//   - ErrDimensionMismatch  when src is not 4x4.
func Matrix4FromDense(src mat.Matrix) (Matrix4, error) {
	var m Matrix4
	if err := validateSource(src, dim4); err != nil {
		return m, matrixErrorf(opFromDense, err)
	}
	for i := 0; i < dim4; i++ {
		for j := 0; j < dim4; j++ {
			m[dim4*i+j] = float32(src.At(i, j))
		}
	}
	return m, nil
}

// Determinant returns det(m), computed in float64 through gonum's LU
// factorization.
func (m Matrix4) Determinant() float64 {
	return mat.Det(m.ToDense())
}
