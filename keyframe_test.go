package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyframeSampleLinear(t *testing.T) {
	kf := Keyframe[Scalar]{
		Start: 0, End: 10,
		StartV: 0, EndV: 100,
		Ease: NewCubicBezier(Vec2{X: 0.3333, Y: 0.3333}, Vec2{X: 0.6667, Y: 0.6667}),
	}
	assert.InDelta(t, 50, float64(kf.Sample(5)), 1)
}

func TestKeyframeHoldAtStart(t *testing.T) {
	kf := Keyframe[Scalar]{Start: 0, End: 10, StartV: 5, EndV: 20, HoldAtStart: true}
	assert.Equal(t, Scalar(5), kf.Sample(9))
}

func TestAnimatorConstant(t *testing.T) {
	a := NewConstantAnimator(Vec2{X: 1, Y: 2})
	assert.Equal(t, Vec2{X: 1, Y: 2}, a.Value(0))
	assert.Equal(t, Vec2{X: 1, Y: 2}, a.Value(500))
}

func TestAnimatorMultiSegment(t *testing.T) {
	ease := NewCubicBezier(Vec2{X: 0.3333, Y: 0.3333}, Vec2{X: 0.6667, Y: 0.6667})
	a := Animator[Scalar]{Frames: []Keyframe[Scalar]{
		{Start: 0, End: 10, StartV: 0, EndV: 10, Ease: ease},
		{Start: 10, End: 20, StartV: 10, EndV: 0, Ease: ease},
	}}
	assert.InDelta(t, 5, float64(a.Value(5)), 1)
	assert.InDelta(t, 10, float64(a.Value(10)), 1)
	assert.Equal(t, Scalar(0), a.Value(100))
	assert.Equal(t, Scalar(0), a.Value(-5))
}
