package lottie

import (
	"sort"

	"github.com/chewxy/math32"
)

// GradientExtend defines how a gradient samples beyond its stop
// range, for gradient paints that extend past their defined axis.
type GradientExtend int

const (
	// ExtendPad clamps to the nearest edge stop (the document default).
	ExtendPad GradientExtend = iota
	// ExtendRepeat tiles the gradient.
	ExtendRepeat
	// ExtendReflect mirrors the gradient on each tile.
	ExtendReflect
)

func sortStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return sorted
}

func applyExtendMode(t float32, mode GradientExtend) float32 {
	switch mode {
	case ExtendRepeat:
		t -= math32.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math32.Abs(t)
		period := math32.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset samples a gradient's sorted stop list at normalized
// position t, linearly interpolating between the two bracketing
// stops in straight color space.
func colorAtOffset(stops []GradientStop, t float32, mode GradientExtend) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Offset >= t })
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s0, s1 := sorted[idx-1], sorted[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	localT := (t - s0.Offset) / (s1.Offset - s0.Offset)
	return s0.Color.Lerp(s1.Color, localT)
}
