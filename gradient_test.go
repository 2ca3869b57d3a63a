package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearGradientEndpoints(t *testing.T) {
	g := LinearGradient{
		Start: Vec2{X: 0, Y: 0}, End: Vec2{X: 100, Y: 0},
		Stops: []GradientStop{{Offset: 0, Color: Black}, {Offset: 1, Color: White}},
	}
	assertColorClose(t, Black, g.ColorAt(Vec2{X: 0, Y: 0}), 1)
	assertColorClose(t, White, g.ColorAt(Vec2{X: 100, Y: 0}), 1)
	mid := g.ColorAt(Vec2{X: 50, Y: 0})
	assertColorClose(t, Color{R: 128, G: 128, B: 128, A: 255}, mid, 2)
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := LinearGradient{
		Start: Vec2{X: 5, Y: 5}, End: Vec2{X: 5, Y: 5},
		Stops: []GradientStop{{Offset: 0, Color: White}},
	}
	assert.Equal(t, White, g.ColorAt(Vec2{X: 50, Y: 50}))
}

func TestLinearGradientExtendRepeat(t *testing.T) {
	g := LinearGradient{
		Start: Vec2{X: 0, Y: 0}, End: Vec2{X: 10, Y: 0},
		Stops:  []GradientStop{{Offset: 0, Color: Black}, {Offset: 1, Color: White}},
		Extend: ExtendRepeat,
	}
	a := g.ColorAt(Vec2{X: 0, Y: 0})
	b := g.ColorAt(Vec2{X: 10, Y: 0})
	assertColorClose(t, a, b, 1)
}

func TestRadialGradientCentered(t *testing.T) {
	g := RadialGradient{
		Center: Vec2{X: 0, Y: 0}, Focus: Vec2{X: 0, Y: 0}, Radius: 10,
		Stops: []GradientStop{{Offset: 0, Color: White}, {Offset: 1, Color: Black}},
	}
	assertColorClose(t, White, g.ColorAt(Vec2{X: 0, Y: 0}), 1)
	assertColorClose(t, Black, g.ColorAt(Vec2{X: 10, Y: 0}), 1)
}

func TestRadialGradientZeroRadius(t *testing.T) {
	red := RGB(1, 0, 0)
	g := RadialGradient{Stops: []GradientStop{{Offset: 0, Color: red}}}
	assert.Equal(t, red, g.ColorAt(Vec2{X: 1, Y: 1}))
}
