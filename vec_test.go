package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	assert.Equal(t, Vec2{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, Vec2{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, float32(1), a.Dot(Vec2{X: 1, Y: 0}))
	assert.Equal(t, float32(-2), a.Cross(Vec2{X: 1, Y: 0}))
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalize()
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-6)

	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 20}
	assert.Equal(t, Vec2{X: 5, Y: 10}, a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestVec2FxRoundTrip(t *testing.T) {
	v := Vec2{X: 12.5, Y: -7.25}
	fx := FromVec2(v)
	got := fx.ToVec2()
	assert.InDelta(t, float64(v.X), float64(got.X), 1e-4)
	assert.InDelta(t, float64(v.Y), float64(got.Y), 1e-4)
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	assert.Equal(t, Vec2{X: 0, Y: 1}, v.Perp())
}
