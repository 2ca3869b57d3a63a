package strokepoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonizeSingleSegment(t *testing.T) {
	poly := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	quads := Polygonize(poly, 2)
	assert.Len(t, quads, 1)
	q := quads[0]
	assert.InDelta(t, 1, float64(q[3].Y), 1e-5)
	assert.InDelta(t, -1, float64(q[1].Y), 1e-5)
}

func TestPolygonizeSkipsDegenerateSegment(t *testing.T) {
	poly := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 0}}
	quads := Polygonize(poly, 2)
	assert.Len(t, quads, 1)
}

func TestTriangulateProducesTwoTrianglesPerQuad(t *testing.T) {
	poly := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	quads := Polygonize(poly, 2)
	verts, idx := Triangulate(quads)
	assert.Len(t, verts, len(quads)*4)
	assert.Len(t, idx, len(quads)*6)
}
