package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	assert.True(t, m.IsIdentity())
	p := m.TransformPoint(Vec2{X: 3, Y: 4})
	assert.Equal(t, Vec2{X: 3, Y: 4}, p)
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, -5)
	p := m.TransformPoint(Vec2{X: 1, Y: 1})
	assert.Equal(t, Vec2{X: 11, Y: -4}, p)
}

func TestMatrixScaleRotateCompose(t *testing.T) {
	s := Scale(2, 2)
	r := Rotate(0)
	m := s.Multiply(r)
	p := m.TransformPoint(Vec2{X: 1, Y: 1})
	assert.InDelta(t, 2, float64(p.X), 1e-5)
	assert.InDelta(t, 2, float64(p.Y), 1e-5)
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 2))
	inv := m.Invert()
	p := Vec2{X: 3, Y: 4}
	roundTrip := inv.TransformPoint(m.TransformPoint(p))
	assert.InDelta(t, float64(p.X), float64(roundTrip.X), 1e-4)
	assert.InDelta(t, float64(p.Y), float64(roundTrip.Y), 1e-4)
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Matrix{}
	assert.True(t, m.Invert().IsIdentity())
}
