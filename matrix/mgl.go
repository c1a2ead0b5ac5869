// SPDX-License-Identifier: MIT

package matrix

import "github.com/go-gl/mathgl/mgl32"

// MGL returns m as an mgl32.Mat4.
//
// mgl32 stores column-major matrices for column vectors (v' = M·v); Matrix4
// stores row-major matrices for row vectors (v' = v·M). The two conventions
// are transposes of each other, so the same transform has the same 16 floats
// in the same order and the conversion is a plain copy.
func (m Matrix4) MGL() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// Matrix4FromMGL converts an mgl32.Mat4 into a Matrix4 describing the same
// transform. See MGL for the layout argument.
func Matrix4FromMGL(g mgl32.Mat4) Matrix4 {
	return Matrix4(g)
}
