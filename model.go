package lottie

// LayerKind discriminates a Layer's variant.
type LayerKind int

const (
	LayerShape LayerKind = iota
	LayerImage
	LayerPreComp
	LayerText
)

// Layer is one entry of a Composition's layer list. Exactly one of
// the kind-specific fields (Shapes, Image*, PreComp*, Text*) is
// meaningful, selected by Kind.
type Layer struct {
	Kind      LayerKind
	Name      string
	Transform Transform

	// InPoint/OutPoint bound the frame range (in the composition's own
	// frame numbering) during which the layer is visible.
	InPoint, OutPoint float32
	// StartTime shifts the layer's own local time base ("st" in the
	// document), so a precomp instance can be offset independent of
	// its asset's own in/out points.
	StartTime float32

	// Matte describes how this layer's alpha is narrowed by the
	// *previous* layer in the list, which must have IsMatteSource set.
	Matte         MatteMode
	IsMatteSource bool

	Shapes []ShapeGroup

	ImagePix    []byte // decoded RGBA8888, nil for a no-op image layer
	ImageWidth  int
	ImageHeight int

	PreCompRef string // asset id into Composition.Assets

	TextLayer *TextLayer
}

// TextLayer holds a text layer's static string and animated styling.
// The document format keyframes per-character styling in principle;
// this renderer samples one style for the whole string per frame,
// matching spec's text-blit contract (width/height/bearing/advance
// per glyph from the font collaborator, nothing fancier).
type TextLayer struct {
	Text      string
	FontName  string
	SizeAnim  Animator[Scalar]
	ColorAnim Animator[Color]
	Tracking  float32 // extra advance between glyphs, in document units
}

// ShapeKind discriminates a ShapeGroup's geometry source.
type ShapeKind int

const (
	ShapePath ShapeKind = iota
	ShapeRectangle
	ShapeEllipse
)

// ShapeVertices is one animatable snapshot of a freeform path's
// vertex/tangent-handle array, used as the value type of a ShapeGroup's
// PathAnim when Kind is ShapePath.
type ShapeVertices struct {
	Commands []PathCommand
	Closed   bool
}

// Lerp interpolates two vertex sets command-by-command. When the two
// keyframes don't share a vertex count — a malformed or hand-edited
// document — the animator snaps to whichever endpoint t is closer to
// rather than interpolating, the same "skip gracefully, never crash"
// posture the core applies elsewhere.
func (v ShapeVertices) Lerp(o ShapeVertices, t float32) ShapeVertices {
	if len(v.Commands) != len(o.Commands) {
		if t < 0.5 {
			return v
		}
		return o
	}
	out := ShapeVertices{Commands: make([]PathCommand, len(v.Commands)), Closed: v.Closed}
	for i := range v.Commands {
		a, b := v.Commands[i], o.Commands[i]
		out.Commands[i] = PathCommand{
			Verb:       a.Verb,
			Point:      a.Point.Lerp(b.Point, t),
			ControlIn:  a.ControlIn.Lerp(b.ControlIn, t),
			ControlOut: a.ControlOut.Lerp(b.ControlOut, t),
		}
	}
	return out
}

// Compile turns a ShapeVertices snapshot into an absolute-control-point
// Path, converting each command's relative tangent handles to the
// kernel's absolute-control-point CubicTo form.
func (v ShapeVertices) Compile() *Path {
	p := NewPath()
	for i, c := range v.Commands {
		switch c.Verb {
		case 'm':
			p.MoveTo(c.Point)
		case 'l':
			p.LineTo(c.Point)
		case 'c':
			if i == 0 {
				// no preceding command to hang an outgoing handle off
				// of: a malformed document, skip rather than panic.
				continue
			}
			prev := v.Commands[i-1]
			p.CubicTo(prev.Point.Add(prev.ControlOut), c.Point.Add(c.ControlIn), c.Point)
		case 'o':
			p.Close()
		}
	}
	if v.Closed {
		p.Close()
	}
	return p
}

// Repeater duplicates a shape group's assembled path Copies times,
// each instance transformed by Transform raised to the instance
// index's power (approximated by applying Transform's matrix that
// many times), matching the document's "rp" shape-group feature.
type Repeater struct {
	Copies    int
	Offset    float32
	Transform Transform
}

// ShapeFill is a shape group's solid/gradient fill style.
type ShapeFill struct {
	Enabled     bool
	Paint       Paint
	OpacityAnim Animator[Scalar] // [0,100]
}

// ShapeStroke is a shape group's stroke style.
type ShapeStroke struct {
	Enabled     bool
	Paint       Paint
	OpacityAnim Animator[Scalar] // [0,100]
	WidthAnim   Animator[Scalar]
}

// ShapeGroup is one paintable shape within a ShapeLayer: a geometry
// source (freeform path, rectangle, or ellipse), an optional trim
// range, a fill and/or stroke, an optional repeater, and the group's
// own nested transform.
type ShapeGroup struct {
	Kind ShapeKind

	PathAnim Animator[ShapeVertices] // ShapePath
	Size     Animator[Vec2]          // ShapeRectangle / ShapeEllipse
	Position Animator[Vec2]          // ShapeRectangle / ShapeEllipse center
	Radius   Animator[Scalar]        // ShapeRectangle corner radius

	TrimStart  Animator[Scalar] // [0,100]
	TrimEnd    Animator[Scalar] // [0,100]
	TrimOffset Animator[Scalar] // degrees/360ths, document convention

	Fill   ShapeFill
	Stroke ShapeStroke

	Repeater *Repeater

	// LocalMask, if set, clips this group's own fill and stroke to the
	// mask path's coverage — distinct from a layer-level track matte,
	// which narrows a *different* layer below a matte-source layer.
	LocalMask *Path

	GroupTransform Transform
}

// PathAt compiles the shape group's geometry for frame, in the
// group's own local coordinate space (before GroupTransform and the
// enclosing layer's transform are applied).
func (g ShapeGroup) PathAt(frame float32) *Path {
	switch g.Kind {
	case ShapeRectangle:
		size := g.Size.Value(frame)
		pos := g.Position.Value(frame)
		r := float32(g.Radius.Value(frame))
		p := Rectangle(size, r)
		return p.Transform(Translate(pos.X, pos.Y))
	case ShapeEllipse:
		size := g.Size.Value(frame)
		pos := g.Position.Value(frame)
		p := Ellipse(size)
		return p.Transform(Translate(pos.X, pos.Y))
	default:
		return g.PathAnim.Value(frame).Compile()
	}
}

// Asset is a reusable referenced resource: either a precomp's own
// layer list or a decoded bitmap, keyed by Composition.Assets.
type Asset struct {
	ID     string
	Layers []Layer // precomp asset

	ImagePix    []byte // bitmap asset, decoded RGBA8888
	ImageWidth  int
	ImageHeight int
}

// Composition is a fully decoded animation document: canvas size,
// frame rate, the composition's own playable frame range, its layer
// list, and any precomp/image assets the layers reference.
type Composition struct {
	Width, Height int
	FrameRate     float32
	InPoint       float32
	OutPoint      float32
	Layers        []Layer
	Assets        map[string]*Asset

	HasTimeRemap bool
	TimeRemap    Animator[Scalar]
}

// FrameAt maps a playback frame number to the composition's own
// internal frame numbering: applying time remap (if present) and then
// wrapping the result into [InPoint, OutPoint+1) by looping, so
// OutPoint itself is a playable frame.
func (c *Composition) FrameAt(frame float32) float32 {
	f := frame
	if c.HasTimeRemap {
		f = float32(c.TimeRemap.Value(frame)) * c.FrameRate
	}
	// Inclusive end boundary, matching frame_at(frame) = start +
	// (frame mod (end - start + 1)): a composition with InPoint=0,
	// OutPoint=10 has an 11-frame period, so FrameAt(12) == 1.
	span := c.OutPoint - c.InPoint + 1
	if span <= 0 {
		return c.InPoint
	}
	offset := f - c.InPoint
	offset = wrapFloat(offset, span)
	return c.InPoint + offset
}

func wrapFloat(v, span float32) float32 {
	if span <= 0 {
		return 0
	}
	r := v
	for r < 0 {
		r += span
	}
	for r >= span {
		r -= span
	}
	return r
}
