package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicBezierKnownValue(t *testing.T) {
	cb := NewCubicBezier(Vec2{X: 0.42, Y: 0}, Vec2{X: 0.58, Y: 1})
	got := cb.Value(0.25)
	assert.InDelta(t, 0.129162, float64(got), 1e-4)
}

func TestCubicBezierEndpoints(t *testing.T) {
	cb := NewCubicBezier(Vec2{X: 0.25, Y: 0.1}, Vec2{X: 0.25, Y: 1})
	assert.Equal(t, float32(0), cb.Value(0))
	assert.Equal(t, float32(1), cb.Value(1))
}

func TestCubicBezierLinearIsIdentity(t *testing.T) {
	cb := NewCubicBezier(Vec2{X: 0.3333, Y: 0.3333}, Vec2{X: 0.6667, Y: 0.6667})
	for _, x := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.Equal(t, x, cb.Value(x))
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	cb := NewCubicBezier(Vec2{X: 0.42, Y: 0}, Vec2{X: 0.58, Y: 1})
	prev := float32(-1)
	for i := 0; i <= 20; i++ {
		x := float32(i) / 20
		v := cb.Value(x)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
