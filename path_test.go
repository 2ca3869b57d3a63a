package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(size float32) *Path {
	p := NewPath()
	p.MoveTo(Vec2{})
	p.LineTo(Vec2{X: size})
	p.LineTo(Vec2{X: size, Y: size})
	p.LineTo(Vec2{Y: size})
	p.Close()
	return p
}

func TestPathFlattenClosedSquare(t *testing.T) {
	p := square(10)
	subs := p.Flatten(0.25)
	assert.Len(t, subs, 1)
	assert.Equal(t, Vec2{}, subs[0][0])
	assert.Equal(t, Vec2{}, subs[0][len(subs[0])-1])
}

func TestPathLength(t *testing.T) {
	p := square(10)
	l := p.Length(0.25)
	assert.InDelta(t, 40, float64(l), 0.5)
}

func TestPathTessellate(t *testing.T) {
	p := square(10)
	mesh := p.Tessellate(0.25)
	assert.NotEmpty(t, mesh.Vertices)
	assert.NotEmpty(t, mesh.Indices)
}

func TestPathTransform(t *testing.T) {
	p := square(10)
	out := p.Transform(Translate(5, 5))
	assert.Equal(t, Vec2{X: 5, Y: 5}, out.Segs[0].Point)
}

func TestPathTrim(t *testing.T) {
	p := square(10)
	trimmed := p.Trim(0, 0.5, 0, 0.25)
	assert.NotEmpty(t, trimmed)
}
