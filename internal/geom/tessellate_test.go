package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTessellateTriangle(t *testing.T) {
	poly := [][]Point{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}}
	mesh := Tessellate(poly)
	assert.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
}

func TestTessellateSquareFan(t *testing.T) {
	poly := [][]Point{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	mesh := Tessellate(poly)
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Indices, 6)
}

func TestTessellateSkipsDegenerate(t *testing.T) {
	poly := [][]Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	mesh := Tessellate(poly)
	assert.Empty(t, mesh.Indices)
}
