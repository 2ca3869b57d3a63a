package lottie

// Lerpable is the constraint the timeline kernel requires of any value
// type it animates: it must know how to interpolate toward another
// value of the same type by a float32 fraction in [0,1].
type Lerpable[T any] interface {
	Lerp(T, float32) T
}

// Scalar is a plain animatable float32, wrapped so it can satisfy
// Lerpable the same way Vec2 and Color already do.
type Scalar float32

// Lerp linearly interpolates between two scalars.
func (s Scalar) Lerp(o Scalar, t float32) Scalar {
	return s + Scalar(float32(o-s)*t)
}

// Keyframe holds one segment of an animated value: it is in effect for
// frames in the half-open range [Start, End), holding StartV at the
// segment's beginning and easing toward EndV by End.
type Keyframe[T Lerpable[T]] struct {
	Start, End   float32
	StartV, EndV T
	Ease         CubicBezier
	HoldAtStart  bool
}

// Sample evaluates the keyframe at frame, clamping progress to [0,1]
// and easing it through Ease before interpolating between StartV and
// EndV.
func (k Keyframe[T]) Sample(frame float32) T {
	if k.HoldAtStart {
		return k.StartV
	}
	span := k.End - k.Start
	var progress float32
	if span <= 0 {
		progress = 1
	} else {
		progress = (frame - k.Start) / span
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	eased := k.Ease.Value(progress)
	return k.StartV.Lerp(k.EndV, eased)
}

// Animator is an ordered sequence of keyframes describing one
// animated property across the whole composition's frame range.
type Animator[T Lerpable[T]] struct {
	Frames []Keyframe[T]
}

// NewConstantAnimator returns an Animator that always yields v,
// regardless of frame — the common case for properties with no
// keyframes in the source document.
func NewConstantAnimator[T Lerpable[T]](v T) Animator[T] {
	return Animator[T]{Frames: []Keyframe[T]{{
		Start: 0, End: 0, StartV: v, EndV: v, HoldAtStart: true,
	}}}
}

// Value samples the animator at frame. Frames before the first
// keyframe hold its start value; frames at or after the last
// keyframe's end hold its end value.
func (a Animator[T]) Value(frame float32) T {
	if len(a.Frames) == 0 {
		var zero T
		return zero
	}
	if frame < a.Frames[0].Start {
		return a.Frames[0].StartV
	}
	for _, kf := range a.Frames {
		if frame < kf.End || kf.Start == kf.End {
			return kf.Sample(frame)
		}
	}
	last := a.Frames[len(a.Frames)-1]
	return last.EndV
}
