package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Stride: w * 4, Pix: make([]byte, w*h*4)}
}

func TestFillTriangleSolidColor(t *testing.T) {
	buf := newBuffer(10, 10)
	red := Color{R: 255, A: 255}
	FillTriangle(buf,
		Point{X: 1, Y: 1}, Point{X: 9, Y: 1}, Point{X: 1, Y: 9},
		func(x, y float32) Color { return red },
		nil,
	)
	assert.Equal(t, red, buf.At(2, 2))
	assert.Equal(t, Color{}, buf.At(8, 8))
}

func TestBlendPixelSourceOver(t *testing.T) {
	buf := newBuffer(1, 1)
	buf.Set(0, 0, Color{R: 0, G: 0, B: 255, A: 255})
	buf.BlendPixel(0, 0, Color{R: 255, G: 0, B: 0, A: 128})
	c := buf.At(0, 0)
	assert.InDelta(t, 128, int(c.R), 2)
	assert.InDelta(t, 127, int(c.B), 2)
	assert.Equal(t, uint8(255), c.A)
}

func TestBlendPixelFullyTransparentNoop(t *testing.T) {
	buf := newBuffer(1, 1)
	orig := Color{R: 10, G: 20, B: 30, A: 40}
	buf.Set(0, 0, orig)
	buf.BlendPixel(0, 0, Color{R: 255, A: 0})
	assert.Equal(t, orig, buf.At(0, 0))
}

func TestFillMeshWithMask(t *testing.T) {
	buf := newBuffer(10, 10)
	verts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	idx := []uint32{0, 1, 2, 0, 2, 3}
	white := Color{R: 255, G: 255, B: 255, A: 255}
	FillMesh(buf, verts, idx, func(x, y float32) Color { return white }, func(x, y int) uint8 {
		if x < 5 {
			return 0
		}
		return 255
	})
	assert.Equal(t, Color{}, buf.At(2, 2))
	assert.Equal(t, white, buf.At(7, 7))
}

func TestBlitGlyphAppliesCoverage(t *testing.T) {
	buf := newBuffer(4, 4)
	cov := []uint8{0, 255, 255, 0}
	BlitGlyph(buf, 0, 0, 2, 2, cov, Color{R: 10, G: 20, B: 30, A: 255}, nil)
	assert.Equal(t, Color{}, buf.At(0, 0))
	assert.Equal(t, Color{R: 10, G: 20, B: 30, A: 255}, buf.At(1, 0))
}
