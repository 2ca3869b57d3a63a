package lottie

import "github.com/SoftOboros/rlottie-go/internal/geom"

// PathCommand is the wire-format verb of one path instruction, as
// found in a shape's "ks" property: a move, a line, a cubic bezier
// (given as two relative control-point offsets, matching the document
// grammar's m/l/c/o tokens), or a close.
type PathCommand struct {
	Verb       byte // 'm', 'l', 'c', or 'o' (close)
	Point      Vec2
	ControlIn  Vec2 // incoming tangent handle, relative to Point
	ControlOut Vec2 // outgoing tangent handle, relative to Point
}

// PathSeg is one kernel-level path instruction: a move, a line, a
// cubic bezier with absolute control points, or a subpath close.
// Shapes are compiled from PathCommand (relative handles) to PathSeg
// (absolute control points) once per frame, after the shape's
// keyframed point positions are sampled.
type PathSeg struct {
	Kind     geom.SegKind
	Control1 Vec2
	Control2 Vec2
	Point    Vec2
}

const (
	SegMoveTo  = geom.SegMoveTo
	SegLineTo  = geom.SegLineTo
	SegCubicTo = geom.SegCubicTo
	SegClose   = geom.SegClose
)

// Path is a sequence of kernel-level path segments: the output of
// compiling a shape's keyframed vertex/tangent arrays for one frame.
type Path struct {
	Segs []PathSeg
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Vec2) {
	p.Segs = append(p.Segs, PathSeg{Kind: SegMoveTo, Point: pt})
}

// LineTo appends a straight segment to pt.
func (p *Path) LineTo(pt Vec2) {
	p.Segs = append(p.Segs, PathSeg{Kind: SegLineTo, Point: pt})
}

// CubicTo appends a cubic bezier segment with absolute control points.
func (p *Path) CubicTo(c1, c2, pt Vec2) {
	p.Segs = append(p.Segs, PathSeg{Kind: SegCubicTo, Control1: c1, Control2: c2, Point: pt})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Segs = append(p.Segs, PathSeg{Kind: SegClose})
}

// Transform returns a new path with m applied to every point and
// control point.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	out.Segs = make([]PathSeg, len(p.Segs))
	for i, s := range p.Segs {
		out.Segs[i] = PathSeg{
			Kind:     s.Kind,
			Control1: m.TransformPoint(s.Control1),
			Control2: m.TransformPoint(s.Control2),
			Point:    m.TransformPoint(s.Point),
		}
	}
	return out
}

func (p *Path) toGeom() []geom.PathSeg {
	segs := make([]geom.PathSeg, len(p.Segs))
	for i, s := range p.Segs {
		segs[i] = geom.PathSeg{
			Kind:     s.Kind,
			Control1: geom.Point{X: s.Control1.X, Y: s.Control1.Y},
			Control2: geom.Point{X: s.Control2.X, Y: s.Control2.Y},
			Point:    geom.Point{X: s.Point.X, Y: s.Point.Y},
		}
	}
	return segs
}

// Flatten reduces the path to one polyline per subpath, adaptively
// subdividing cubic segments to within tolerance pixels of the true
// curve. A non-positive tolerance uses the kernel's default.
func (p *Path) Flatten(tolerance float32) [][]Vec2 {
	subs := geom.Flatten(p.toGeom(), tolerance)
	out := make([][]Vec2, len(subs))
	for i, sub := range subs {
		pts := make([]Vec2, len(sub))
		for j, pt := range sub {
			pts[j] = Vec2{X: pt.X, Y: pt.Y}
		}
		out[i] = pts
	}
	return out
}

// Length returns the total flattened arc length of the path, summed
// across every subpath (a compound path's trim target is its whole
// outline, not just its first contour).
func (p *Path) Length(tolerance float32) float32 {
	subs := p.Flatten(tolerance)
	var total float32
	for _, sub := range subs {
		total += geom.TotalLength(toGeomPoints(sub))
	}
	return total
}

// Trim extracts the sub-range [start,end] (plus offset), all
// fractions of the path's total flattened arc length across every
// subpath, wrapping around the whole path's seam when start > end.
func (p *Path) Trim(start, end, offset, tolerance float32) []Vec2 {
	subs := p.Flatten(tolerance)
	if len(subs) == 0 {
		return nil
	}
	var all []geom.Point
	for _, sub := range subs {
		all = append(all, toGeomPoints(sub)...)
	}
	trimmed := geom.Trim(all, start, end, offset)
	return fromGeomPoints(trimmed)
}

// Tessellate flattens the path and triangle-fans each subpath of three
// or more points into a fillable mesh.
func (p *Path) Tessellate(tolerance float32) geom.Mesh {
	segs := p.toGeom()
	subs := geom.Flatten(segs, tolerance)
	return geom.Tessellate(subs)
}

func toGeomPoints(pts []Vec2) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromGeomPoints(pts []geom.Point) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = Vec2{X: p.X, Y: p.Y}
	}
	return out
}
