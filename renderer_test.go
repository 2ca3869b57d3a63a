package lottie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidFill(c Color) ShapeFill {
	return ShapeFill{
		Enabled:     true,
		Paint:       Paint{Kind: PaintSolid, Solid: c, Opacity: 1},
		OpacityAnim: NewConstantAnimator(Scalar(100)),
	}
}

func solidStroke(c Color, width float32) ShapeStroke {
	return ShapeStroke{
		Enabled:     true,
		Paint:       Paint{Kind: PaintSolid, Solid: c, Opacity: 1},
		OpacityAnim: NewConstantAnimator(Scalar(100)),
		WidthAnim:   NewConstantAnimator(Scalar(width)),
	}
}

func squareVertices() Animator[ShapeVertices] {
	v := ShapeVertices{
		Commands: []PathCommand{
			{Verb: 'm', Point: Vec2{X: 1, Y: 1}},
			{Verb: 'l', Point: Vec2{X: 5, Y: 1}},
			{Verb: 'l', Point: Vec2{X: 5, Y: 5}},
			{Verb: 'l', Point: Vec2{X: 1, Y: 5}},
		},
		Closed: true,
	}
	return NewConstantAnimator(v)
}

func baseLayer(shapes []ShapeGroup) Layer {
	return Layer{
		Kind:      LayerShape,
		Transform: NewStaticTransform(Vec2{}, Vec2{}, Vec2{X: 100, Y: 100}, 0, 100),
		InPoint:   0,
		OutPoint:  1,
		Shapes:    shapes,
	}
}

func pixelAt(buf *Buffer, x, y int) Color {
	i := y*buf.Stride + x*4
	return Color{R: buf.Pix[i], G: buf.Pix[i+1], B: buf.Pix[i+2], A: buf.Pix[i+3]}
}

func TestRenderSyncFilledSquare(t *testing.T) {
	group := ShapeGroup{
		Kind:           ShapePath,
		PathAnim:       squareVertices(),
		Fill:           solidFill(Black),
		TrimStart:      NewConstantAnimator(Scalar(0)),
		TrimEnd:        NewConstantAnimator(Scalar(100)),
		TrimOffset:     NewConstantAnimator(Scalar(0)),
		GroupTransform: NewStaticTransform(Vec2{}, Vec2{}, Vec2{X: 100, Y: 100}, 0, 100),
	}
	comp := &Composition{
		Width: 8, Height: 8, FrameRate: 30,
		InPoint: 0, OutPoint: 0,
		Layers: []Layer{baseLayer([]ShapeGroup{group})},
	}
	buf := NewBuffer(8, 8)
	comp.RenderSync(0, buf)

	got := pixelAt(buf, 3, 3)
	assert.Equal(t, Color{R: 0, G: 0, B: 0, A: 255}, got)

	outside := pixelAt(buf, 0, 0)
	assert.Equal(t, uint8(0), outside.A)
}

func TestRenderSyncStrokedSquare(t *testing.T) {
	group := ShapeGroup{
		Kind:           ShapePath,
		PathAnim:       squareVertices(),
		Stroke:         solidStroke(RGB(1, 0, 0), 1),
		TrimStart:      NewConstantAnimator(Scalar(0)),
		TrimEnd:        NewConstantAnimator(Scalar(100)),
		TrimOffset:     NewConstantAnimator(Scalar(0)),
		GroupTransform: NewStaticTransform(Vec2{}, Vec2{}, Vec2{X: 100, Y: 100}, 0, 100),
	}
	comp := &Composition{
		Width: 8, Height: 8, FrameRate: 30,
		InPoint: 0, OutPoint: 0,
		Layers: []Layer{baseLayer([]ShapeGroup{group})},
	}
	buf := NewBuffer(8, 8)
	comp.RenderSync(0, buf)

	got := pixelAt(buf, 1, 1)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A)

	center := pixelAt(buf, 3, 3)
	assert.Equal(t, uint8(0), center.A)
}

func TestRenderSyncMaskedDraw(t *testing.T) {
	outerVerts := ShapeVertices{
		Commands: []PathCommand{
			{Verb: 'm', Point: Vec2{X: 1, Y: 1}},
			{Verb: 'l', Point: Vec2{X: 7, Y: 1}},
			{Verb: 'l', Point: Vec2{X: 7, Y: 7}},
			{Verb: 'l', Point: Vec2{X: 1, Y: 7}},
		},
		Closed: true,
	}
	maskPath := NewPath()
	maskPath.MoveTo(Vec2{X: 3, Y: 3})
	maskPath.LineTo(Vec2{X: 5, Y: 3})
	maskPath.LineTo(Vec2{X: 5, Y: 5})
	maskPath.LineTo(Vec2{X: 3, Y: 5})
	maskPath.Close()

	group := ShapeGroup{
		Kind:           ShapePath,
		PathAnim:       NewConstantAnimator(outerVerts),
		Fill:           solidFill(RGB(0, 1, 0)),
		LocalMask:      maskPath,
		TrimStart:      NewConstantAnimator(Scalar(0)),
		TrimEnd:        NewConstantAnimator(Scalar(100)),
		TrimOffset:     NewConstantAnimator(Scalar(0)),
		GroupTransform: NewStaticTransform(Vec2{}, Vec2{}, Vec2{X: 100, Y: 100}, 0, 100),
	}
	comp := &Composition{
		Width: 8, Height: 8, FrameRate: 30,
		InPoint: 0, OutPoint: 0,
		Layers: []Layer{baseLayer([]ShapeGroup{group})},
	}
	buf := NewBuffer(8, 8)
	comp.RenderSync(0, buf)

	outsideMask := pixelAt(buf, 2, 2)
	assert.Equal(t, uint8(0), outsideMask.A)

	insideMask := pixelAt(buf, 4, 4)
	assert.Equal(t, Color{R: 0, G: 255, B: 0, A: 255}, insideMask)
}

func TestRenderSyncLinearGradientRectangle(t *testing.T) {
	verts := ShapeVertices{
		Commands: []PathCommand{
			{Verb: 'm', Point: Vec2{X: 0, Y: 0}},
			{Verb: 'l', Point: Vec2{X: 8, Y: 0}},
			{Verb: 'l', Point: Vec2{X: 8, Y: 8}},
			{Verb: 'l', Point: Vec2{X: 0, Y: 8}},
		},
		Closed: true,
	}
	paint := Paint{
		Kind: PaintLinearGradient,
		Linear: LinearGradient{
			Start: Vec2{X: 0, Y: 0},
			End:   Vec2{X: 8, Y: 0},
			Stops: []GradientStop{
				{Offset: 0, Color: RGB(1, 0, 0)},
				{Offset: 1, Color: RGB(0, 0, 1)},
			},
			Extend: ExtendPad,
		},
		Opacity: 1,
	}
	group := ShapeGroup{
		Kind:     ShapePath,
		PathAnim: NewConstantAnimator(verts),
		Fill: ShapeFill{
			Enabled:     true,
			Paint:       paint,
			OpacityAnim: NewConstantAnimator(Scalar(100)),
		},
		TrimStart:      NewConstantAnimator(Scalar(0)),
		TrimEnd:        NewConstantAnimator(Scalar(100)),
		TrimOffset:     NewConstantAnimator(Scalar(0)),
		GroupTransform: NewStaticTransform(Vec2{}, Vec2{}, Vec2{X: 100, Y: 100}, 0, 100),
	}
	comp := &Composition{
		Width: 8, Height: 8, FrameRate: 30,
		InPoint: 0, OutPoint: 0,
		Layers: []Layer{baseLayer([]ShapeGroup{group})},
	}
	buf := NewBuffer(8, 8)
	comp.RenderSync(0, buf)

	left := pixelAt(buf, 0, 4)
	right := pixelAt(buf, 7, 4)

	assert.Greater(t, left.R, left.B)
	assert.Greater(t, right.B, right.R)
}

func TestCompositionFrameAtLoops(t *testing.T) {
	comp := &Composition{InPoint: 0, OutPoint: 10, FrameRate: 30}
	assert.Equal(t, float32(1), comp.FrameAt(12))
	assert.Equal(t, float32(0), comp.FrameAt(0))
	assert.Equal(t, float32(10), comp.FrameAt(10))
	assert.Equal(t, float32(0), comp.FrameAt(11))
}
