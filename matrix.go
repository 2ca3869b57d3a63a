package lottie

import "github.com/chewxy/math32"

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f. Layer transforms
// compose anchor, position, scale, and rotation into one of these per
// frame before the geometry kernel flattens a shape's path.
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation transform.
func Translate(x, y float32) Matrix {
	return Matrix{A: 1, E: 1, C: x, F: y}
}

// Scale returns a scaling transform about the origin.
func Scale(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation transform about the origin (angle in
// radians).
func Rotate(angle float32) Matrix {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Multiply returns m composed with other, applying other first (m *
// other in matrix-multiplication order).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y + m.C, Y: m.D*v.X + m.E*v.Y + m.F}
}

// TransformVector applies the transform's linear part only, ignoring
// translation.
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y, Y: m.D*v.X + m.E*v.Y}
}

// Invert returns the inverse transform, or the identity if m is
// singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math32.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 0 && m.E == 1 && m.F == 0
}
