package lottie

import "github.com/chewxy/math32"

// RadialGradient samples a color that varies with distance from
// Center out to Radius, optionally focused off-center (a "highlight")
// the way the document's gradient-fill "h"/"a" highlight properties
// describe a spotlight offset.
type RadialGradient struct {
	Center, Focus Vec2
	Radius        float32
	Stops         []GradientStop
	Extend        GradientExtend
}

// ColorAt samples the gradient at point p.
func (g RadialGradient) ColorAt(p Vec2) Color {
	if g.Radius == 0 {
		return firstStopColor(g.Stops)
	}
	t := g.computeT(p)
	return colorAtOffset(g.Stops, t, g.Extend)
}

func (g RadialGradient) computeT(p Vec2) float32 {
	if g.Focus == g.Center {
		return p.Sub(g.Center).Length() / g.Radius
	}
	return g.computeTFocal(p)
}

func (g RadialGradient) computeTFocal(p Vec2) float32 {
	d := p.Sub(g.Focus)
	f := g.Center.Sub(g.Focus)

	a := d.LengthSq()
	b := -2 * d.Dot(f)
	c := f.LengthSq() - g.Radius*g.Radius

	if a == 0 {
		return 0
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}

	sqrtD := math32.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float32
	switch {
	case t1 > 0 && t2 > 0:
		t = math32.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math32.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}
