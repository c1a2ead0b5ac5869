// SPDX-License-Identifier: MIT

package matrix

// NewMatrix4 returns the matrix with the given fields, named by row and column.
func NewMatrix4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Matrix4 {
	return Matrix4{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromGrid builds a matrix from a 4x4 grid.
func FromGrid(g [4][4]float32) Matrix4 {
	var m Matrix4
	for i := 0; i < dim4; i++ {
		copy(m[dim4*i:dim4*i+dim4], g[i][:])
	}
	return m
}

// ---------- scalar arithmetic ----------

// AddScalar adds s to every element.
func (m Matrix4) AddScalar(s float32) Matrix4 {
	m.AddScalarAssign(s)
	return m
}

// SubScalar subtracts s from every element.
func (m Matrix4) SubScalar(s float32) Matrix4 {
	m.SubScalarAssign(s)
	return m
}

// MulScalar multiplies every element by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	m.MulScalarAssign(s)
	return m
}

// DivScalar divides every element by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	m.DivScalarAssign(s)
	return m
}

// AddScalarAssign adds s to every element in place.
func (m *Matrix4) AddScalarAssign(s float32) *Matrix4 {
	for i := range m {
		m[i] += s
	}
	return m
}

// SubScalarAssign subtracts s from every element in place.
func (m *Matrix4) SubScalarAssign(s float32) *Matrix4 {
	for i := range m {
		m[i] -= s
	}
	return m
}

// MulScalarAssign multiplies every element by s in place.
func (m *Matrix4) MulScalarAssign(s float32) *Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalarAssign divides every element by s in place.
func (m *Matrix4) DivScalarAssign(s float32) *Matrix4 {
	for i := range m {
		m[i] /= s
	}
	return m
}

// ---------- matrix arithmetic ----------

// Add returns the element-wise sum m + o.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	m.AddAssign(o)
	return m
}

// Sub returns the element-wise difference m - o.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	m.SubAssign(o)
	return m
}

// AddAssign performs m += o element-wise.
func (m *Matrix4) AddAssign(o Matrix4) *Matrix4 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// SubAssign performs m -= o element-wise.
func (m *Matrix4) SubAssign(o Matrix4) *Matrix4 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// Mul returns the product m·o with r[i][j] = Σk m[i][k]·o[k][j].
//
// With row vectors, v·(A·B) applies A first and B second, so
// translation.Mul(rotation) translates and then rotates.
//
// Complexity: O(64) multiply-adds, no allocation.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	var i, j, k int
	var sum float32
	for i = 0; i < dim4; i++ {
		for j = 0; j < dim4; j++ {
			sum = 0
			for k = 0; k < dim4; k++ {
				sum += m[dim4*i+k] * o[dim4*k+j]
			}
			r[dim4*i+j] = sum
		}
	}
	return r
}

// MulAssign performs m = m·o.
func (m *Matrix4) MulAssign(o Matrix4) *Matrix4 {
	*m = m.Mul(o)
	return m
}

// ---------- structure ----------

// Transposed returns the transpose of m.
func (m Matrix4) Transposed() Matrix4 {
	var r Matrix4
	for i := 0; i < dim4; i++ {
		for j := 0; j < dim4; j++ {
			r[dim4*i+j] = m[dim4*j+i]
		}
	}
	return r
}

// IsIdentity reports whether every element equals the identity pattern
// exactly (1 on the diagonal, 0 elsewhere). No tolerance is applied.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// SetIdentity overwrites m with the identity.
func (m *Matrix4) SetIdentity() *Matrix4 {
	*m = Identity4()
	return m
}

// ---------- access ----------

// GetValue returns element (row, col), 0-based. Out-of-range indices panic
// like any array access; use At for a checked read.
func (m Matrix4) GetValue(row, col int) float32 {
	return m[dim4*row+col]
}

// At returns element (row, col) or ErrOutOfRange.
func (m Matrix4) At(row, col int) (float32, error) {
	if err := validateIndex(row, col, dim4); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	return m[dim4*row+col], nil
}

// Set assigns element (row, col) or returns ErrOutOfRange.
func (m *Matrix4) Set(row, col int, v float32) error {
	if err := validateIndex(row, col, dim4); err != nil {
		return matrixErrorf(opSet, err)
	}
	m[dim4*row+col] = v
	return nil
}

// Grid returns a 4x4 copy of m indexed [row][col].
func (m Matrix4) Grid() [4][4]float32 {
	var g [4][4]float32
	for i := 0; i < dim4; i++ {
		copy(g[i][:], m[dim4*i:dim4*i+dim4])
	}
	return g
}

// GetPointer returns the address of M11. The 16 floats starting there are
// contiguous and row-major, matching the named-field order M11, M12, ..., M44.
func (m *Matrix4) GetPointer() *float32 {
	return &m[0]
}

// Slice returns the backing storage of m as a slice (no copy).
func (m *Matrix4) Slice() []float32 {
	return m[:]
}

// Translation returns (M41, M42, M43).
func (m Matrix4) Translation() (x, y, z float32) {
	return m[M41], m[M42], m[M43]
}

// String renders one line per row, each field followed by ", ".
func (m Matrix4) String() string {
	return formatRows(m[:], dim4)
}
