package loader

import (
	"encoding/json"

	lottie "github.com/SoftOboros/rlottie-go"
)

type rawKeyframeScalar struct {
	T  float64    `json:"t"`
	V  float64    `json:"v"`
	H  bool       `json:"h"`
	CO [2]float64 `json:"co"`
	CI [2]float64 `json:"ci"`
}

type rawKeyframeVec2 struct {
	T  float64    `json:"t"`
	V  [2]float64 `json:"v"`
	H  bool       `json:"h"`
	CO [2]float64 `json:"co"`
	CI [2]float64 `json:"ci"`
}

type rawKeyframeColor struct {
	T  float64    `json:"t"`
	V  [4]float64 `json:"v"`
	H  bool       `json:"h"`
	CO [2]float64 `json:"co"`
	CI [2]float64 `json:"ci"`
}

func easingFromHandles(co, ci [2]float64) lottie.CubicBezier {
	if co == [2]float64{} && ci == [2]float64{} {
		return lottie.NewCubicBezier(lottie.Vec2{}, lottie.Vec2{X: 1, Y: 1})
	}
	return lottie.NewCubicBezier(
		lottie.Vec2{X: float32(co[0]), Y: float32(co[1])},
		lottie.Vec2{X: float32(ci[0]), Y: float32(ci[1])},
	)
}

func quantizeColor(v [4]float64) lottie.Color {
	clamp := func(x float64) uint8 {
		if x < 0 {
			x = 0
		}
		if x > 1 {
			x = 1
		}
		return uint8(x * 255)
	}
	return lottie.Color{R: clamp(v[0]), G: clamp(v[1]), B: clamp(v[2]), A: clamp(v[3])}
}

func parseScalarAnimatorOr(raw json.RawMessage, fallback float32) lottie.Animator[lottie.Scalar] {
	if raw == nil {
		return lottie.NewConstantAnimator(lottie.Scalar(fallback))
	}
	return parseScalarAnimator(raw)
}

func parseScalarAnimator(raw json.RawMessage) lottie.Animator[lottie.Scalar] {
	if raw == nil {
		return lottie.NewConstantAnimator(lottie.Scalar(0))
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return lottie.NewConstantAnimator(lottie.Scalar(n))
	}
	var kfs []rawKeyframeScalar
	if err := json.Unmarshal(raw, &kfs); err != nil || len(kfs) == 0 {
		return lottie.NewConstantAnimator(lottie.Scalar(0))
	}
	if len(kfs) == 1 {
		return lottie.NewConstantAnimator(lottie.Scalar(kfs[0].V))
	}
	frames := make([]lottie.Keyframe[lottie.Scalar], 0, len(kfs)-1)
	for i := 0; i < len(kfs)-1; i++ {
		frames = append(frames, lottie.Keyframe[lottie.Scalar]{
			Start: float32(kfs[i].T), End: float32(kfs[i+1].T),
			StartV: lottie.Scalar(kfs[i].V), EndV: lottie.Scalar(kfs[i+1].V),
			Ease: easingFromHandles(kfs[i].CO, kfs[i].CI), HoldAtStart: kfs[i].H,
		})
	}
	return lottie.Animator[lottie.Scalar]{Frames: frames}
}

func parseVec2AnimatorOr(raw json.RawMessage, fallback lottie.Vec2) lottie.Animator[lottie.Vec2] {
	if raw == nil {
		return lottie.NewConstantAnimator(fallback)
	}
	return parseVec2Animator(raw)
}

func parseVec2Animator(raw json.RawMessage) lottie.Animator[lottie.Vec2] {
	if raw == nil {
		return lottie.NewConstantAnimator(lottie.Vec2{})
	}
	var arr [2]float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		return lottie.NewConstantAnimator(lottie.Vec2{X: float32(arr[0]), Y: float32(arr[1])})
	}
	var kfs []rawKeyframeVec2
	if err := json.Unmarshal(raw, &kfs); err != nil || len(kfs) == 0 {
		return lottie.NewConstantAnimator(lottie.Vec2{})
	}
	if len(kfs) == 1 {
		return lottie.NewConstantAnimator(lottie.Vec2{X: float32(kfs[0].V[0]), Y: float32(kfs[0].V[1])})
	}
	frames := make([]lottie.Keyframe[lottie.Vec2], 0, len(kfs)-1)
	for i := 0; i < len(kfs)-1; i++ {
		sv := lottie.Vec2{X: float32(kfs[i].V[0]), Y: float32(kfs[i].V[1])}
		ev := lottie.Vec2{X: float32(kfs[i+1].V[0]), Y: float32(kfs[i+1].V[1])}
		frames = append(frames, lottie.Keyframe[lottie.Vec2]{
			Start: float32(kfs[i].T), End: float32(kfs[i+1].T),
			StartV: sv, EndV: ev,
			Ease: easingFromHandles(kfs[i].CO, kfs[i].CI), HoldAtStart: kfs[i].H,
		})
	}
	return lottie.Animator[lottie.Vec2]{Frames: frames}
}

func parseColorAnimator(raw json.RawMessage) lottie.Animator[lottie.Color] {
	if raw == nil {
		return lottie.NewConstantAnimator(lottie.Black)
	}
	var arr [4]float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		return lottie.NewConstantAnimator(quantizeColor(arr))
	}
	var kfs []rawKeyframeColor
	if err := json.Unmarshal(raw, &kfs); err != nil || len(kfs) == 0 {
		return lottie.NewConstantAnimator(lottie.Black)
	}
	if len(kfs) == 1 {
		return lottie.NewConstantAnimator(quantizeColor(kfs[0].V))
	}
	frames := make([]lottie.Keyframe[lottie.Color], 0, len(kfs)-1)
	for i := 0; i < len(kfs)-1; i++ {
		frames = append(frames, lottie.Keyframe[lottie.Color]{
			Start: float32(kfs[i].T), End: float32(kfs[i+1].T),
			StartV: quantizeColor(kfs[i].V), EndV: quantizeColor(kfs[i+1].V),
			Ease: easingFromHandles(kfs[i].CO, kfs[i].CI), HoldAtStart: kfs[i].H,
		})
	}
	return lottie.Animator[lottie.Color]{Frames: frames}
}

func parseStaticColor(raw json.RawMessage) lottie.Color {
	if raw == nil {
		return lottie.Black
	}
	var arr [4]float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		return quantizeColor(arr)
	}
	return parseColorAnimator(raw).Value(0)
}

func parseVec2Static(raw json.RawMessage) lottie.Vec2 {
	if raw == nil {
		return lottie.Vec2{}
	}
	var arr [2]float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		return lottie.Vec2{X: float32(arr[0]), Y: float32(arr[1])}
	}
	return parseVec2Animator(raw).Value(0)
}

func parseFirstNumber(raw json.RawMessage, fallback float64) float64 {
	if raw == nil {
		return fallback
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	return fallback
}
