// Package strokepoly polygonizes a flattened stroke centerline into a
// triangle mesh the rasterizer can fill: one quad per segment, with
// implicit joins formed by the quads' shared endpoints (a miter where
// consecutive segments are near-colinear, a visible notch otherwise —
// there is no explicit cap or join geometry beyond the quads
// themselves).
package strokepoly

import "github.com/chewxy/math32"

// Point is a 2D point, copied locally to avoid an import cycle with
// the module root.
type Point struct {
	X, Y float32
}

func (p Point) sub(q Point) Point     { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) add(q Point) Point     { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) scale(s float32) Point { return Point{X: p.X * s, Y: p.Y * s} }

func length(p Point) float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

func perp(p Point) Point {
	return Point{X: -p.Y, Y: p.X}
}

// Quad is the four corners of one stroked segment's polygon, in
// winding order suitable for a two-triangle fan (0,1,2) (0,2,3).
type Quad [4]Point

// Polygonize offsets a polyline's consecutive point pairs by half of
// width along each segment's perpendicular normal, emitting one Quad
// per segment. Degenerate (zero-length) segments are skipped.
func Polygonize(poly []Point, width float32) []Quad {
	if len(poly) < 2 || width <= 0 {
		return nil
	}
	half := width / 2
	quads := make([]Quad, 0, len(poly)-1)
	for i := 1; i < len(poly); i++ {
		p0, p1 := poly[i-1], poly[i]
		dir := p1.sub(p0)
		l := length(dir)
		if l < 1e-8 {
			continue
		}
		n := perp(dir).scale(half / l)
		quads = append(quads, Quad{
			p0.sub(n), p1.sub(n), p1.add(n), p0.add(n),
		})
	}
	return quads
}

// Triangulate flattens a set of quads into a vertex buffer and
// triangle index list (two triangles per quad), ready for the
// rasterizer's per-triangle coverage test.
func Triangulate(quads []Quad) (vertices []Point, indices []uint32) {
	for _, q := range quads {
		base := uint32(len(vertices))
		vertices = append(vertices, q[0], q[1], q[2], q[3])
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return vertices, indices
}
