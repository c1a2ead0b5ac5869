// SPDX-License-Identifier: MIT

package matrix

// NewMatrix3 returns the matrix with the given fields in row-major order.
func NewMatrix3[T Float](f0, f1, f2, f3, f4, f5, f6, f7, f8 T) Matrix3[T] {
	return Matrix3[T]{f0, f1, f2, f3, f4, f5, f6, f7, f8}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Matrix3[T] {
	return Matrix3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// ---------- scalar arithmetic ----------

// AddScalar adds s to every element.
func (m Matrix3[T]) AddScalar(s T) Matrix3[T] {
	m.AddScalarAssign(s)
	return m
}

// SubScalar subtracts s from every element.
func (m Matrix3[T]) SubScalar(s T) Matrix3[T] {
	m.SubScalarAssign(s)
	return m
}

// MulScalar multiplies every element by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	m.MulScalarAssign(s)
	return m
}

// DivScalar divides every element by s.
func (m Matrix3[T]) DivScalar(s T) Matrix3[T] {
	m.DivScalarAssign(s)
	return m
}

// AddScalarAssign adds s to every element in place.
func (m *Matrix3[T]) AddScalarAssign(s T) *Matrix3[T] {
	for i := range m {
		m[i] += s
	}
	return m
}

// SubScalarAssign subtracts s from every element in place.
func (m *Matrix3[T]) SubScalarAssign(s T) *Matrix3[T] {
	for i := range m {
		m[i] -= s
	}
	return m
}

// MulScalarAssign multiplies every element by s in place.
func (m *Matrix3[T]) MulScalarAssign(s T) *Matrix3[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalarAssign divides every element by s in place.
func (m *Matrix3[T]) DivScalarAssign(s T) *Matrix3[T] {
	for i := range m {
		m[i] /= s
	}
	return m
}

// ---------- matrix arithmetic ----------

// Add returns the element-wise sum m + o.
func (m Matrix3[T]) Add(o Matrix3[T]) Matrix3[T] {
	m.AddAssign(o)
	return m
}

// Sub returns the element-wise difference m - o.
func (m Matrix3[T]) Sub(o Matrix3[T]) Matrix3[T] {
	m.SubAssign(o)
	return m
}

// AddAssign performs m += o element-wise.
func (m *Matrix3[T]) AddAssign(o Matrix3[T]) *Matrix3[T] {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// SubAssign performs m -= o element-wise.
func (m *Matrix3[T]) SubAssign(o Matrix3[T]) *Matrix3[T] {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// Mul returns the matrix product m·o (row-by-column):
// r[i][j] = Σk m[i][k]·o[k][j].
// Complexity: O(27) multiply-adds.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	var r Matrix3[T]
	var i, j, k int
	for i = 0; i < dim3; i++ {
		for j = 0; j < dim3; j++ {
			var sum T
			for k = 0; k < dim3; k++ {
				sum += m[dim3*i+k] * o[dim3*k+j]
			}
			r[dim3*i+j] = sum
		}
	}
	return r
}

// ---------- structure ----------

// Determinant returns det(m) by cofactor expansion along the first row.
func (m Matrix3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Transpose transposes m in place and returns it.
func (m *Matrix3[T]) Transpose() *Matrix3[T] {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Transposed returns the transpose of m.
func (m Matrix3[T]) Transposed() Matrix3[T] {
	m.Transpose()
	return m
}

// IsIdentity reports whether m is the identity under an integer-truncating
// test: the diagonal must sum to exactly 3, every diagonal element must
// truncate to 1 and every off-diagonal element must truncate to 0.
// This is deliberately looser than Matrix4.IsIdentity: an off-diagonal 0.5
// still passes.
func (m Matrix3[T]) IsIdentity() bool {
	if m[0]+m[4]+m[8] != 3 {
		return false
	}
	for i := range m {
		want := int64(0)
		if i%(dim3+1) == 0 {
			want = 1
		}
		if int64(m[i]) != want {
			return false
		}
	}
	return true
}

// SetIdentity overwrites m with the identity.
func (m *Matrix3[T]) SetIdentity() *Matrix3[T] {
	*m = Identity3[T]()
	return m
}

// ---------- access ----------

// GetValue returns element (row, col) without bounds checking beyond the
// runtime's own array check.
func (m Matrix3[T]) GetValue(row, col int) T {
	return m[dim3*row+col]
}

// At returns element (row, col) or ErrOutOfRange.
func (m Matrix3[T]) At(row, col int) (T, error) {
	if err := validateIndex(row, col, dim3); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	return m[dim3*row+col], nil
}

// Set assigns element (row, col) or returns ErrOutOfRange.
func (m *Matrix3[T]) Set(row, col int, v T) error {
	if err := validateIndex(row, col, dim3); err != nil {
		return matrixErrorf(opSet, err)
	}
	m[dim3*row+col] = v
	return nil
}

// Row returns row i as a 3-array.
func (m Matrix3[T]) Row(i int) [3]T {
	return [3]T{m[dim3*i], m[dim3*i+1], m[dim3*i+2]}
}

// String renders one line per row, each field followed by ", ".
func (m Matrix3[T]) String() string {
	return formatRows(m[:], dim3)
}
