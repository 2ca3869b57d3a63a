// Package geom implements the path-flattening, arc-length, trim, and
// triangle-fan tessellation primitives the composition renderer needs
// to turn a keyframed path into pixels.
package geom

import "github.com/chewxy/math32"

// Point is a 2D point, copied locally (rather than imported from the
// module root) to keep this package free of an import cycle back into
// the root package it serves.
type Point struct {
	X, Y float32
}

func (p Point) Add(q Point) Point        { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point        { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float32) Point      { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) Dot(q Point) float32      { return p.X*q.X + p.Y*q.Y }
func (p Point) Length() float32          { return math32.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) Distance(q Point) float32 { return p.Sub(q).Length() }

func (p Point) Lerp(q Point, t float32) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// SegKind discriminates a PathSeg's geometric operation.
type SegKind uint8

const (
	SegMoveTo SegKind = iota
	SegLineTo
	SegCubicTo
	SegClose
)

// PathSeg is one instruction of a path: a move, a line, a cubic
// bezier (with two control points), or a subpath close.
type PathSeg struct {
	Kind     SegKind
	Control1 Point
	Control2 Point
	Point    Point
}

// FlattenTolerance is the default maximum deviation, in pixels,
// allowed between a flattened polyline and the curve it approximates.
const FlattenTolerance float32 = 0.25

// Flatten reduces a sequence of path segments to a polyline per
// subpath, using adaptive midpoint (de Casteljau) subdivision for
// cubic segments until each subdivided chord is within tolerance of
// its source curve. The return value is one slice of points per
// subpath in source order; a Close segment repeats the subpath's
// first point so the polyline is explicitly closed.
func Flatten(segs []PathSeg, tolerance float32) [][]Point {
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}

	var subpaths [][]Point
	var current []Point
	var cur, start Point

	flushSubpath := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for _, seg := range segs {
		switch seg.Kind {
		case SegMoveTo:
			flushSubpath()
			cur = seg.Point
			start = cur
			current = append(current, cur)
		case SegLineTo:
			cur = seg.Point
			current = append(current, cur)
		case SegCubicTo:
			pts := flattenCubic(cur, seg.Control1, seg.Control2, seg.Point, tolerance)
			current = append(current, pts...)
			cur = seg.Point
		case SegClose:
			current = append(current, start)
			cur = start
		}
	}
	flushSubpath()
	return subpaths
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float32) []Point {
	var out []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, &out, 0)
	return out
}

// maxSubdivisionDepth bounds recursion against pathological control
// points (near-coincident points driving distanceToLine toward zero
// without the chord ever shortening below tolerance).
const maxSubdivisionDepth = 24

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float32, out *[]Point, depth int) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := d1
	if d2 > dist {
		dist = d2
	}

	if dist < tolerance || depth >= maxSubdivisionDepth {
		*out = append(*out, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, out, depth+1)
	flattenCubicRec(s, r1, q2, p3, tolerance, out, depth+1)
}

func distanceToLine(p, a, b Point) float32 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
