// SPDX-License-Identifier: MIT

package vector

import "fmt"

// NewPoint2f returns the point (x, y).
func NewPoint2f(x, y float32) Point2f { return Point2f{X: x, Y: y} }

// NewColor3f returns the color (r, g, b).
func NewColor3f(r, g, b float32) Color3f { return Color3f{R: r, G: g, B: b} }

// Gray3f returns a color with every channel set to s.
func Gray3f(s float32) Color3f { return Color3f{R: s, G: s, B: s} }

// Color3fFromPoint reinterprets a point as a color: x->r, y->g, z->b.
func Color3fFromPoint(p Point3f) Color3f {
	return Color3f{R: p.X, G: p.Y, B: p.Z}
}

// Fill sets every channel to s.
func (c *Color3f) Fill(s float32) *Color3f {
	c.R, c.G, c.B = s, s, s
	return c
}

// AddAssign adds o channel-wise in place.
func (c *Color3f) AddAssign(o Color3f) *Color3f {
	c.R += o.R
	c.G += o.G
	c.B += o.B
	return c
}

// AddScalarAssign adds s to every channel in place.
func (c *Color3f) AddScalarAssign(s float32) *Color3f {
	c.R += s
	c.G += s
	c.B += s
	return c
}

// Point returns the color reinterpreted as a point: r->x, g->y, b->z.
func (c Color3f) Point() Point3f {
	return Point3f{X: c.R, Y: c.G, Z: c.B}
}

// String renders "r, g, b".
func (c Color3f) String() string {
	return fmt.Sprintf("%v, %v, %v", c.R, c.G, c.B)
}

// NewColor4f returns the color (r, g, b, a).
func NewColor4f(r, g, b, a float32) Color4f { return Color4f{R: r, G: g, B: b, A: a} }

// RGB drops the alpha channel.
func (c Color4f) RGB() Color3f {
	return Color3f{R: c.R, G: c.G, B: c.B}
}

// String renders "r, g, b, a".
func (c Color4f) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", c.R, c.G, c.B, c.A)
}
