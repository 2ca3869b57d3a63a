// Package loader decodes a composition document's JSON wire form
// into the in-memory model the core operates on. The wire grammar is
// not part of the core's contract; only the keys this package reads
// are an implementation detail it owns.
package loader

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	lottie "github.com/SoftOboros/rlottie-go"
)

// ImageResolver resolves an embedded image asset's reference (its
// document-local id, or an embedded data URI / path, depending on how
// the caller's document stores it) to decoded RGBA8888 pixels.
// imageloader.Loader satisfies this interface.
type ImageResolver interface {
	Resolve(ref string) (pix []byte, width, height int, err error)
}

// Options configures one Load call.
type Options struct {
	Images ImageResolver
}

// LoadOption mutates Options.
type LoadOption func(*Options)

// WithImageResolver supplies the collaborator used to decode image
// assets referenced by image layers.
func WithImageResolver(r ImageResolver) LoadOption {
	return func(o *Options) { o.Images = r }
}

type rawDoc struct {
	W      int        `json:"w"`
	H      int        `json:"h"`
	FR     float64    `json:"fr"`
	IP     float64    `json:"ip"`
	OP     float64    `json:"op"`
	Layers []rawLayer `json:"layers"`
	Assets []rawAsset `json:"assets"`
}

type rawAsset struct {
	ID     string     `json:"id"`
	Layers []rawLayer `json:"layers"` // present for a precomp asset
	Ref    string     `json:"p"`      // present for an image asset: resolver ref
	W      int        `json:"w"`
	H      int        `json:"h"`
}

type rawLayer struct {
	Ty   int          `json:"ty"` // 0 precomp, 2 image, 4 shape, 5 text
	Nm   string       `json:"nm"`
	IP   float64      `json:"ip"`
	OP   float64      `json:"op"`
	ST   float64      `json:"st"`
	TD   int          `json:"td"` // 1: this layer is a matte source
	TT   int          `json:"tt"` // 1: Alpha, 2: AlphaInv, consumed by this layer
	KS   *rawTransform `json:"ks"`
	Shapes []rawShapeItem `json:"shapes"`
	RefID  string       `json:"refId"` // precomp asset id or image asset id
	Text   *rawText     `json:"t"`
}

type rawText struct {
	Str      string  `json:"str"`
	Font     string  `json:"font"`
	Size     json.RawMessage `json:"sz"`
	Color    json.RawMessage `json:"fc"`
	Tracking float64 `json:"tr"`
}

type rawTransform struct {
	Anchor   json.RawMessage `json:"a"`
	Position json.RawMessage `json:"p"`
	Scale    json.RawMessage `json:"s"`
	Rotation json.RawMessage `json:"r"`
	Opacity  json.RawMessage `json:"o"`
}

type rawShapeItem struct {
	Ty string `json:"ty"`

	// "sh": freeform path
	D json.RawMessage `json:"d"`

	// "fl"/"st": paint
	Color   json.RawMessage `json:"c"`
	Opacity json.RawMessage `json:"o"`
	Width   json.RawMessage `json:"w"` // stroke width

	// "gf"/"gr": gradient fill/stroke
	GradType int             `json:"gt"` // 1 linear, 2 radial
	Start    json.RawMessage `json:"s"`
	End      json.RawMessage `json:"e"`
	Stops    []rawStop       `json:"g"`

	// "rc": rectangle / "el": ellipse
	Size     json.RawMessage `json:"sz"`
	Position json.RawMessage `json:"p"`
	Radius   json.RawMessage `json:"r"`

	// "tm": trim
	TrimStart  json.RawMessage `json:"ts"`
	TrimEnd    json.RawMessage `json:"te"`
	TrimOffset json.RawMessage `json:"to"`

	// "rp": repeater
	Copies    json.RawMessage `json:"cp"`
	Offset    json.RawMessage `json:"of"`
	RepeaterT *rawTransform   `json:"tr"`

	// "tf": group-level transform; decoded but not applied (every
	// ShapeGroup's GroupTransform is the identity)
	Transform *rawTransform `json:"tf"`

	// "mk": local mask path, parallel to "d"
	MaskPath json.RawMessage `json:"mk"`
}

type rawStop struct {
	Offset float64         `json:"of"`
	Color  json.RawMessage `json:"c"`
}

// Load decodes a document's JSON bytes into a *lottie.Composition.
func Load(data []byte, opts ...LoadOption) (*lottie.Composition, error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	var doc rawDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lottie/loader: decode document: %w", err)
	}

	comp := &lottie.Composition{
		Width:    doc.W,
		Height:   doc.H,
		FrameRate: float32(doc.FR),
		InPoint:  float32(doc.IP),
		OutPoint: float32(doc.OP),
		Assets:   map[string]*lottie.Asset{},
	}

	if len(doc.Layers) == 0 && len(doc.Assets) == 0 {
		return nil, lottie.ErrEmptyDocument
	}

	for _, a := range doc.Assets {
		asset := &lottie.Asset{ID: a.ID}
		if len(a.Layers) > 0 {
			layers, err := convertLayers(a.Layers, &o)
			if err != nil {
				return nil, err
			}
			asset.Layers = layers
		} else if a.Ref != "" && o.Images != nil {
			pix, w, h, err := o.Images.Resolve(a.Ref)
			if err == nil {
				asset.ImagePix, asset.ImageWidth, asset.ImageHeight = pix, w, h
			}
		} else {
			asset.ImageWidth, asset.ImageHeight = a.W, a.H
		}
		comp.Assets[a.ID] = asset
	}

	if err := checkPreCompCycles(comp.Assets); err != nil {
		return nil, err
	}

	layers, err := convertLayers(doc.Layers, &o)
	if err != nil {
		return nil, err
	}
	comp.Layers = layers

	return comp, nil
}

func checkPreCompCycles(assets map[string]*lottie.Asset) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(assets))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case visiting:
			return lottie.ErrCyclicPreComp
		}
		state[id] = visiting
		asset := assets[id]
		if asset != nil {
			for _, l := range asset.Layers {
				if l.Kind == lottie.LayerPreComp && l.PreCompRef != "" {
					if _, ok := assets[l.PreCompRef]; ok {
						if err := visit(l.PreCompRef); err != nil {
							return err
						}
					}
				}
			}
		}
		state[id] = done
		return nil
	}

	for id := range assets {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

func convertLayers(raw []rawLayer, o *Options) ([]lottie.Layer, error) {
	out := make([]lottie.Layer, 0, len(raw))
	for _, rl := range raw {
		l := lottie.Layer{
			Name:     rl.Nm,
			InPoint:  float32(rl.IP),
			OutPoint: float32(rl.OP),
			StartTime: float32(rl.ST),
			IsMatteSource: rl.TD == 1,
		}
		switch rl.TT {
		case 1:
			l.Matte = lottie.MatteAlpha
		case 2:
			l.Matte = lottie.MatteAlphaInv
		default:
			l.Matte = lottie.MatteNone
		}
		if rl.KS != nil {
			l.Transform = convertTransform(rl.KS)
		} else {
			l.Transform = lottie.NewStaticTransform(lottie.Vec2{}, lottie.Vec2{}, lottie.Vec2{X: 100, Y: 100}, 0, 100)
		}

		switch rl.Ty {
		case 0:
			l.Kind = lottie.LayerPreComp
			l.PreCompRef = rl.RefID
		case 2:
			l.Kind = lottie.LayerImage
			if o.Images != nil && rl.RefID != "" {
				pix, w, h, err := o.Images.Resolve(rl.RefID)
				if err == nil {
					l.ImagePix, l.ImageWidth, l.ImageHeight = pix, w, h
				}
			}
		case 5:
			l.Kind = lottie.LayerText
			l.TextLayer = convertText(rl.Text)
		default:
			l.Kind = lottie.LayerShape
			groups, err := convertShapeItems(rl.Shapes)
			if err != nil {
				return nil, err
			}
			l.Shapes = groups
		}
		out = append(out, l)
	}
	return out, nil
}

func convertText(rt *rawText) *lottie.TextLayer {
	if rt == nil {
		return &lottie.TextLayer{}
	}
	tl := &lottie.TextLayer{
		Text:     rt.Str,
		FontName: rt.Font,
		Tracking: float32(rt.Tracking),
	}
	if rt.Size != nil {
		tl.SizeAnim = parseScalarAnimator(rt.Size)
	} else {
		tl.SizeAnim = lottie.NewConstantAnimator(lottie.Scalar(12))
	}
	if rt.Color != nil {
		tl.ColorAnim = parseColorAnimator(rt.Color)
	} else {
		tl.ColorAnim = lottie.NewConstantAnimator(lottie.Black)
	}
	return tl
}

func newShapeGroup() lottie.ShapeGroup {
	return lottie.ShapeGroup{
		GroupTransform: lottie.NewStaticTransform(lottie.Vec2{}, lottie.Vec2{}, lottie.Vec2{X: 100, Y: 100}, 0, 100),
		TrimStart:      lottie.NewConstantAnimator(lottie.Scalar(0)),
		TrimEnd:        lottie.NewConstantAnimator(lottie.Scalar(100)),
		TrimOffset:     lottie.NewConstantAnimator(lottie.Scalar(0)),
	}
}

// convertShapeItems walks one shape layer's flat item list. Lottie's
// grammar interleaves one geometry item (sh/rc/el) with the style and
// modifier items (fl/st/gf/gr/tm/rp) that paint and adjust it; all of
// them accumulate onto the same ShapeGroup until the next geometry
// item starts a new one.
func convertShapeItems(raw []rawShapeItem) ([]lottie.ShapeGroup, error) {
	var out []lottie.ShapeGroup
	var current *lottie.ShapeGroup

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, item := range raw {
		switch item.Ty {
		case "sh", "rc", "el":
			flush()
			g := newShapeGroup()
			if err := applyGeometry(&g, item); err != nil {
				return nil, err
			}
			current = &g
		case "fl", "st", "gf", "gr", "tm", "rp":
			if current == nil {
				g := newShapeGroup()
				current = &g
			}
			applyStyle(current, item)
		default:
			// unknown item type: skip rather than abort the layer
		}
	}
	flush()
	return out, nil
}

func applyGeometry(g *lottie.ShapeGroup, item rawShapeItem) error {
	switch item.Ty {
	case "sh":
		g.Kind = lottie.ShapePath
		verts, err := parsePathString(item.D)
		if err != nil {
			return err
		}
		g.PathAnim = lottie.NewConstantAnimator(verts)
	case "rc":
		g.Kind = lottie.ShapeRectangle
		g.Size = parseVec2Animator(item.Size)
		g.Position = parseVec2Animator(item.Position)
		g.Radius = parseScalarAnimator(item.Radius)
	case "el":
		g.Kind = lottie.ShapeEllipse
		g.Size = parseVec2Animator(item.Size)
		g.Position = parseVec2Animator(item.Position)
	}
	if item.MaskPath != nil {
		verts, err := parsePathString(item.MaskPath)
		if err == nil {
			g.LocalMask = verts.Compile()
		}
	}
	return nil
}

func applyStyle(g *lottie.ShapeGroup, item rawShapeItem) {
	switch item.Ty {
	case "fl":
		g.Fill.Enabled = true
		g.Fill.Paint = lottie.Paint{Kind: lottie.PaintSolid, Solid: parseStaticColor(item.Color), Opacity: 1}
		g.Fill.OpacityAnim = parseScalarAnimatorOr(item.Opacity, 100)
	case "st":
		g.Stroke.Enabled = true
		g.Stroke.Paint = lottie.Paint{Kind: lottie.PaintSolid, Solid: parseStaticColor(item.Color), Opacity: 1}
		g.Stroke.OpacityAnim = parseScalarAnimatorOr(item.Opacity, 100)
		g.Stroke.WidthAnim = parseScalarAnimator(item.Width)
	case "gf":
		g.Fill.Enabled = true
		g.Fill.Paint = convertGradientPaint(item)
		g.Fill.OpacityAnim = parseScalarAnimatorOr(item.Opacity, 100)
	case "gr":
		g.Stroke.Enabled = true
		g.Stroke.Paint = convertGradientPaint(item)
		g.Stroke.OpacityAnim = parseScalarAnimatorOr(item.Opacity, 100)
		g.Stroke.WidthAnim = parseScalarAnimator(item.Width)
	case "tm":
		g.TrimStart = parseScalarAnimatorOr(item.TrimStart, 0)
		g.TrimEnd = parseScalarAnimatorOr(item.TrimEnd, 100)
		g.TrimOffset = parseScalarAnimatorOr(item.TrimOffset, 0)
	case "rp":
		g.Repeater = &lottie.Repeater{
			Copies: int(parseFirstNumber(item.Copies, 0)),
			Offset: float32(parseFirstNumber(item.Offset, 0)),
		}
		if item.RepeaterT != nil {
			g.Repeater.Transform = convertTransform(item.RepeaterT)
		}
	}
}

func convertGradientPaint(item rawShapeItem) lottie.Paint {
	stops := make([]lottie.GradientStop, 0, len(item.Stops))
	for _, s := range item.Stops {
		stops = append(stops, lottie.GradientStop{Offset: float32(s.Offset), Color: parseStaticColor(s.Color)})
	}
	start := parseVec2Static(item.Start)
	end := parseVec2Static(item.End)
	if item.GradType == 2 {
		return lottie.Paint{
			Kind:   lottie.PaintRadialGradient,
			Radial: lottie.RadialGradient{Center: start, Focus: start, Radius: start.Sub(end).Length(), Stops: stops},
			Opacity: 1,
		}
	}
	return lottie.Paint{
		Kind:   lottie.PaintLinearGradient,
		Linear: lottie.LinearGradient{Start: start, End: end, Stops: stops},
		Opacity: 1,
	}
}

func convertTransform(ks *rawTransform) lottie.Transform {
	tr := lottie.Transform{
		Anchor:   parseVec2AnimatorOr(ks.Anchor, lottie.Vec2{}),
		Position: parseVec2AnimatorOr(ks.Position, lottie.Vec2{}),
		Scale:    parseVec2AnimatorOr(ks.Scale, lottie.Vec2{X: 100, Y: 100}),
		Rotation: parseScalarAnimatorOr(ks.Rotation, 0),
		Opacity:  parseScalarAnimatorOr(ks.Opacity, 100),
	}
	return tr
}

// parsePathString tokenizes the document's path-command grammar
// ("m x y", "l x y", "c x1 y1 x2 y2 x y", "o"); unrecognized tokens
// are skipped rather than aborting the parse.
func parsePathString(raw json.RawMessage) (lottie.ShapeVertices, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return lottie.ShapeVertices{}, nil
	}
	fields := strings.Fields(s)
	var out lottie.ShapeVertices
	i := 0
	next := func() (float32, bool) {
		if i >= len(fields) {
			return 0, false
		}
		v, err := strconv.ParseFloat(fields[i], 32)
		i++
		if err != nil {
			return 0, false
		}
		return float32(v), true
	}
	for i < len(fields) {
		verb := fields[i]
		i++
		switch verb {
		case "m":
			x, ok1 := next()
			y, ok2 := next()
			if ok1 && ok2 {
				out.Commands = append(out.Commands, lottie.PathCommand{Verb: 'm', Point: lottie.Vec2{X: x, Y: y}})
			}
		case "l":
			x, ok1 := next()
			y, ok2 := next()
			if ok1 && ok2 {
				out.Commands = append(out.Commands, lottie.PathCommand{Verb: 'l', Point: lottie.Vec2{X: x, Y: y}})
			}
		case "c":
			x1, a1 := next()
			y1, a2 := next()
			x2, a3 := next()
			y2, a4 := next()
			x, a5 := next()
			y, a6 := next()
			n := len(out.Commands)
			if a1 && a2 && a3 && a4 && a5 && a6 && n > 0 {
				// Absolute control points from the path string are
				// stored as tangent handles relative to the endpoint
				// they hang off: the outgoing handle on the previous
				// command, the incoming handle on this one — matching
				// ShapeVertices.Compile's lookup. A "c" with no
				// preceding command (a malformed document) has no
				// endpoint to hang an outgoing handle off of, so the
				// token is skipped rather than kept.
				prevPoint := out.Commands[n-1].Point
				out.Commands[n-1].ControlOut = lottie.Vec2{X: x1, Y: y1}.Sub(prevPoint)
				end := lottie.Vec2{X: x, Y: y}
				out.Commands = append(out.Commands, lottie.PathCommand{
					Verb:      'c',
					ControlIn: lottie.Vec2{X: x2, Y: y2}.Sub(end),
					Point:     end,
				})
			}
		case "o":
			out.Closed = true
		default:
			// skip unknown token
		}
	}
	return out, nil
}
