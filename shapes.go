package lottie

// Parametric shape constructors for the document's primitive shape
// kinds ("rc" rectangle, "el" ellipse), compiled into a Path at the
// sampled frame's size/position/roundness rather than stored as
// PathCommand vertex arrays.

// circleBezierConstant is the standard 4-point cubic approximation
// factor for a quarter-circle arc (4/3 * (sqrt(2) - 1)).
const circleBezierConstant = 0.5522847498307936

// Rectangle builds a (possibly rounded) rectangle path centered at
// the origin with the given size and corner radius.
func Rectangle(size Vec2, radius float32) *Path {
	p := NewPath()
	hw, hh := size.X/2, size.Y/2
	r := radius
	if r > hw {
		r = hw
	}
	if r > hh {
		r = hh
	}
	if r <= 0 {
		p.MoveTo(Vec2{X: -hw, Y: -hh})
		p.LineTo(Vec2{X: hw, Y: -hh})
		p.LineTo(Vec2{X: hw, Y: hh})
		p.LineTo(Vec2{X: -hw, Y: hh})
		p.Close()
		return p
	}

	k := r * circleBezierConstant
	p.MoveTo(Vec2{X: -hw + r, Y: -hh})
	p.LineTo(Vec2{X: hw - r, Y: -hh})
	p.CubicTo(Vec2{X: hw - r + k, Y: -hh}, Vec2{X: hw, Y: -hh + r - k}, Vec2{X: hw, Y: -hh + r})
	p.LineTo(Vec2{X: hw, Y: hh - r})
	p.CubicTo(Vec2{X: hw, Y: hh - r + k}, Vec2{X: hw - r + k, Y: hh}, Vec2{X: hw - r, Y: hh})
	p.LineTo(Vec2{X: -hw + r, Y: hh})
	p.CubicTo(Vec2{X: -hw + r - k, Y: hh}, Vec2{X: -hw, Y: hh - r + k}, Vec2{X: -hw, Y: hh - r})
	p.LineTo(Vec2{X: -hw, Y: -hh + r})
	p.CubicTo(Vec2{X: -hw, Y: -hh + r - k}, Vec2{X: -hw + r - k, Y: -hh}, Vec2{X: -hw + r, Y: -hh})
	p.Close()
	return p
}

// Ellipse builds an ellipse path centered at the origin with the given
// full size (diameter on each axis).
func Ellipse(size Vec2) *Path {
	rx, ry := size.X/2, size.Y/2
	ox, oy := rx*circleBezierConstant, ry*circleBezierConstant

	p := NewPath()
	p.MoveTo(Vec2{X: rx, Y: 0})
	p.CubicTo(Vec2{X: rx, Y: oy}, Vec2{X: ox, Y: ry}, Vec2{X: 0, Y: ry})
	p.CubicTo(Vec2{X: -ox, Y: ry}, Vec2{X: -rx, Y: oy}, Vec2{X: -rx, Y: 0})
	p.CubicTo(Vec2{X: -rx, Y: -oy}, Vec2{X: -ox, Y: -ry}, Vec2{X: 0, Y: -ry})
	p.CubicTo(Vec2{X: ox, Y: -ry}, Vec2{X: rx, Y: -oy}, Vec2{X: rx, Y: 0})
	p.Close()
	return p
}
