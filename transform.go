package lottie

// Transform is a layer's animated spatial transform: an anchor point
// that scale and rotation pivot around, a position offset, a 2D
// scale in percent (100 is unscaled), a rotation in degrees, and an
// opacity in [0,100].
// Each component is independently keyframed.
type Transform struct {
	Anchor   Animator[Vec2]
	Position Animator[Vec2]
	Scale    Animator[Vec2]
	Rotation Animator[Scalar]
	Opacity  Animator[Scalar]
}

// NewStaticTransform builds a non-animated Transform, the common case
// for a layer with no transform keyframes.
func NewStaticTransform(anchor, position, scale Vec2, rotationDeg, opacity float32) Transform {
	return Transform{
		Anchor:   NewConstantAnimator(anchor),
		Position: NewConstantAnimator(position),
		Scale:    NewConstantAnimator(scale),
		Rotation: NewConstantAnimator(Scalar(rotationDeg)),
		Opacity:  NewConstantAnimator(Scalar(opacity)),
	}
}

// MatrixAt composes the transform's components at frame into a single
// affine Matrix: translate to position, rotate and scale about the
// anchor.
func (tr Transform) MatrixAt(frame float32) Matrix {
	anchor := tr.Anchor.Value(frame)
	position := tr.Position.Value(frame)
	sc := tr.Scale.Value(frame)
	rotation := tr.Rotation.Value(frame)

	m := Translate(position.X, position.Y)
	m = m.Multiply(Rotate(degToRad(float32(rotation))))
	m = m.Multiply(Scale(sc.X/100, sc.Y/100))
	m = m.Multiply(Translate(-anchor.X, -anchor.Y))
	return m
}

// OpacityAt returns the transform's opacity at frame, normalized to
// [0,1] from the document's [0,100] scale.
func (tr Transform) OpacityAt(frame float32) float32 {
	return float32(tr.Opacity.Value(frame)) / 100
}

func degToRad(deg float32) float32 {
	const piOver180 = 3.14159265358979323846 / 180
	return deg * piOver180
}
