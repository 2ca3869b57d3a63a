package lottie

// FillRule names how a filled shape's self-overlaps are resolved into
// a single coverage mask. The renderer does not read it: every fill is
// tessellated as a triangle fan whatever its FillRule.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PaintKind discriminates Paint's fill source.
type PaintKind int

const (
	PaintSolid PaintKind = iota
	PaintLinearGradient
	PaintRadialGradient
)

// Paint is the sampled (per-frame) fill or stroke source for one
// shape: either a flat color, or a gradient evaluated in the shape's
// local coordinate space.
type Paint struct {
	Kind     PaintKind
	Solid    Color
	Linear   LinearGradient
	Radial   RadialGradient
	FillRule FillRule
	Opacity  float32 // [0,1], composed from the shape's own opacity property
}

// SampleAt returns the paint's color at local-space point p, with
// Opacity folded into the alpha channel.
func (p Paint) SampleAt(pt Vec2) Color {
	var c Color
	switch p.Kind {
	case PaintLinearGradient:
		c = p.Linear.ColorAt(pt)
	case PaintRadialGradient:
		c = p.Radial.ColorAt(pt)
	default:
		c = p.Solid
	}
	if p.Opacity != 1 {
		c.A = clampByte(float32(c.A) * p.Opacity)
	}
	return c
}

// StrokeStyle is a shape's stroke parameters: the rasterizer
// polygonizes the flattened centerline into quads of this width, with
// joins implicit in the quads' shared vertices (no explicit caps).
type StrokeStyle struct {
	Width      float32
	MiterLimit float32
	Paint      Paint
}
