package lottie

import "github.com/chewxy/math32"

// Timeline easing constants. These mirror the fixed sample/iteration
// counts of the original composition format's cubic-bezier inversion
// so that a document's easing curve samples identically regardless of
// host.
const (
	easingLUTSize              = 256
	easingSampleStep           = 1.0 / float32(easingLUTSize-1)
	easingNewtonIterations     = 4
	easingNewtonMinSlope       = 0.02
	easingSubdivisionPrecision = 1e-7
	easingSubdivisionMaxIter   = 10

	// epsilon mirrors Rust's f32::EPSILON, the smallest step between
	// 1.0 and the next representable f32.
	epsilon = 1.1920929e-7
)

// CubicBezier is a unit-square cubic-bezier easing curve, defined by
// its two interior control points (the endpoints are pinned at (0,0)
// and (1,1)). It answers "what y corresponds to progress x" via a
// precomputed lookup table plus Newton-Raphson refinement, falling
// back to bisection where the curve's slope is too shallow for Newton
// to converge.
type CubicBezier struct {
	c1, c2  Vec2
	samples [easingLUTSize]float32
}

// NewCubicBezier builds a CubicBezier from its two control points and
// precomputes the x-sample lookup table.
func NewCubicBezier(c1, c2 Vec2) CubicBezier {
	cb := CubicBezier{c1: c1, c2: c2}
	for i := 0; i < easingLUTSize; i++ {
		cb.samples[i] = cb.calcBezier(float32(i)*easingSampleStep, c1.X, c2.X)
	}
	return cb
}

func coeffA(a1, a2 float32) float32 { return 1 - 3*a2 + 3*a1 }
func coeffB(a1, a2 float32) float32 { return 3*a2 - 6*a1 }
func coeffC(a1 float32) float32     { return 3 * a1 }

func (cb CubicBezier) calcBezier(t, a1, a2 float32) float32 {
	return ((coeffA(a1, a2)*t+coeffB(a1, a2))*t + coeffC(a1)) * t
}

func (cb CubicBezier) getSlope(t, a1, a2 float32) float32 {
	return 3*coeffA(a1, a2)*t*t + 2*coeffB(a1, a2)*t + coeffC(a1)
}

func (cb CubicBezier) binarySubdivide(x, a, b float32) float32 {
	var t float32
	for i := 0; i < easingSubdivisionMaxIter; i++ {
		t = a + (b-a)/2
		current := cb.calcBezier(t, cb.c1.X, cb.c2.X) - x
		if current > 0 {
			b = t
		} else {
			a = t
		}
		if math32.Abs(current) <= easingSubdivisionPrecision {
			break
		}
	}
	return t
}

// getTForX finds the curve parameter t such that calcBezier(t, c1.X,
// c2.X) == x, starting from the LUT sample nearest x.
func (cb CubicBezier) getTForX(x float32) float32 {
	intervalStep := easingSampleStep
	currentSample := 0
	lastSample := easingLUTSize - 1
	for currentSample != lastSample && cb.samples[currentSample] <= x {
		currentSample++
	}
	currentSample--
	if currentSample < 0 {
		currentSample = 0
	}

	distInInterval := (x - cb.samples[currentSample]) /
		(cb.samples[currentSample+1] - cb.samples[currentSample])
	guessT := float32(currentSample)*intervalStep + distInInterval*intervalStep

	slope := cb.getSlope(guessT, cb.c1.X, cb.c2.X)
	if slope >= easingNewtonMinSlope {
		for i := 0; i < easingNewtonIterations; i++ {
			currentSlope := cb.getSlope(guessT, cb.c1.X, cb.c2.X)
			if currentSlope == 0 {
				break
			}
			currentX := cb.calcBezier(guessT, cb.c1.X, cb.c2.X) - x
			guessT -= currentX / currentSlope
		}
		return guessT
	}
	if slope == 0 {
		return guessT
	}
	lo := float32(currentSample) * intervalStep
	hi := float32(currentSample+1) * intervalStep
	return cb.binarySubdivide(x, lo, hi)
}

// Value returns the eased output for progress x in [0,1]. A curve
// whose control points satisfy c1.X==c1.Y and c2.X==c2.Y is the
// identity line y=x exactly, independent of the LUT/Newton path's
// numerical approximation, so it short-circuits straight to x.
func (cb CubicBezier) Value(x float32) float32 {
	if math32.Abs(cb.c1.X-cb.c1.Y) < epsilon && math32.Abs(cb.c2.X-cb.c2.Y) < epsilon {
		return x
	}
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	t := cb.getTForX(x)
	return cb.calcBezier(t, cb.c1.Y, cb.c2.Y)
}
