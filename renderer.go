package lottie

import (
	"github.com/SoftOboros/rlottie-go/internal/geom"
	"github.com/SoftOboros/rlottie-go/internal/raster"
	"github.com/SoftOboros/rlottie-go/internal/strokepoly"
)

// Buffer is a caller-owned RGBA8888 destination, the public surface
// over internal/raster.Buffer: Pix holds Height rows of Stride bytes,
// each row holding Width*4 meaningful bytes.
type Buffer struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// NewBuffer allocates a tightly packed Buffer of the given size,
// cleared to fully transparent.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Stride: width * 4, Pix: make([]byte, width*height*4)}
}

func (b *Buffer) toRaster() *raster.Buffer {
	return &raster.Buffer{Width: b.Width, Height: b.Height, Stride: b.Stride, Pix: b.Pix}
}

func newScratchBuffer(width, height int) *raster.Buffer {
	return &raster.Buffer{Width: width, Height: height, Stride: width * 4, Pix: make([]byte, width*height*4)}
}

func clearBuffer(b *raster.Buffer) {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
}

func toRasterColor(c Color) raster.Color {
	return raster.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func scaleAlpha(a uint8, factor float32) uint8 {
	if factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return a
	}
	return uint8(float32(a) * factor)
}

// RenderSync renders one frame of the composition into buf, which
// must already be sized to (c.Width, c.Height). The buffer is cleared
// to transparent at the start of every call, so repeated calls for the
// same frame produce identical bytes.
func (c *Composition) RenderSync(frame float32, buf *Buffer, opts ...Option) {
	o := resolveOptions(opts)
	rbuf := buf.toRaster()
	clearBuffer(rbuf)
	internalFrame := c.FrameAt(frame)
	c.renderLayers(c.Layers, internalFrame, rbuf, o, 0)
}

// renderLayers walks one layer list (the top composition's, or a
// precomp asset's) front-to-back, applying track-matte narrowing
// between consecutive layers. depth guards against runaway precomp
// recursion from a reference cycle the loader failed to catch.
func (c *Composition) renderLayers(layers []Layer, frame float32, target *raster.Buffer, o RenderOptions, depth int) {
	const maxPreCompDepth = 32
	if depth > maxPreCompDepth {
		return
	}

	var matteBuf *raster.Buffer
	var matteLayer *Layer

	for i := range layers {
		layer := &layers[i]
		localFrame := frame - layer.StartTime
		if frame < layer.InPoint || frame >= layer.OutPoint {
			matteBuf, matteLayer = nil, nil
			continue
		}

		if layer.IsMatteSource {
			// A matte source is never itself composited onto target;
			// it only contributes a binary coverage buffer for the
			// layer below, independent of its own paint and opacity.
			matteBuf = c.renderMatteCoverage(layer, localFrame, target.Width, target.Height, o, depth)
			matteLayer = layer
			continue
		}

		var mask raster.CoverageMask
		if matteBuf != nil && matteLayer != nil {
			mask = c.matteCoverage(matteBuf, matteLayer.Matte, o)
		}

		c.renderLayer(layer, localFrame, target, mask, o, depth)
		matteBuf, matteLayer = nil, nil
	}
}

// renderMatteCoverage renders layer's own geometry into a fresh buffer
// at full, paint- and opacity-agnostic coverage (alpha 0 or 255): the
// binary mask a track matte must be derived from regardless of the
// source layer's own fill/stroke paint or opacity, matching
// draw_mask's "rasterizes the path at coverage==255" contract.
func (c *Composition) renderMatteCoverage(layer *Layer, frame float32, width, height int, o RenderOptions, depth int) *raster.Buffer {
	scratch := newScratchBuffer(width, height)

	if layer.Kind != LayerShape {
		// Non-vector matte sources (image/precomp/text) have no
		// separate path to binarize; render them normally and read
		// the result's own alpha as an approximation of coverage.
		c.renderLayer(layer, frame, scratch, nil, o, depth)
		return scratch
	}

	white := func(x, y float32) raster.Color { return raster.Color{R: 255, G: 255, B: 255, A: 255} }
	layerM := layer.Transform.MatrixAt(frame)
	for gi := range layer.Shapes {
		g := &layer.Shapes[gi]
		groupM := layerM.Multiply(g.GroupTransform.MatrixAt(frame))
		for _, rm := range repeaterMatrices(g, frame) {
			combined := groupM.Multiply(rm)
			path := g.PathAt(frame).Transform(combined)
			mesh := path.Tessellate(o.FlattenTolerance)
			raster.FillMesh(scratch, toRasterPoints(mesh.Vertices), mesh.Indices, white, nil)
		}
	}
	return scratch
}

// matteCoverage turns a rendered matte-source buffer's alpha channel
// into a CoverageMask for the layer immediately below it, via Mask's
// own Apply rule for each MatteMode.
func (c *Composition) matteCoverage(src *raster.Buffer, mode MatteMode, o RenderOptions) raster.CoverageMask {
	switch mode {
	case MatteAlpha, MatteAlphaInv:
		m := maskFromBuffer(src)
		return func(x, y int) uint8 { return m.Apply(mode, 255, x, y) }
	case MatteNone:
		return nil
	default:
		if o.UnknownMatte == UnknownMatteHide {
			return func(x, y int) uint8 { return 0 }
		}
		return nil
	}
}

// maskFromBuffer copies a rendered buffer's alpha channel into a Mask.
func maskFromBuffer(src *raster.Buffer) *Mask {
	m := NewMask(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			m.Set(x, y, src.At(x, y).A)
		}
	}
	return m
}

func (c *Composition) renderLayer(layer *Layer, frame float32, dst *raster.Buffer, mask raster.CoverageMask, o RenderOptions, depth int) {
	m := layer.Transform.MatrixAt(frame)
	opacity := layer.Transform.OpacityAt(frame)
	if opacity <= 0 {
		return
	}

	switch layer.Kind {
	case LayerShape:
		c.renderShapeLayer(layer, frame, m, opacity, dst, mask, o)
	case LayerImage:
		c.renderImageLayer(layer, m, opacity, dst, mask)
	case LayerPreComp:
		c.renderPreCompLayer(layer, frame, m, opacity, dst, mask, o, depth)
	case LayerText:
		c.renderTextLayer(layer, frame, m, opacity, dst, mask, o)
	}
}

func (c *Composition) renderShapeLayer(layer *Layer, frame float32, layerM Matrix, layerOpacity float32, dst *raster.Buffer, mask raster.CoverageMask, o RenderOptions) {
	for gi := range layer.Shapes {
		g := &layer.Shapes[gi]
		groupM := layerM.Multiply(g.GroupTransform.MatrixAt(frame))
		instances := repeaterMatrices(g, frame)

		for _, rm := range instances {
			combined := groupM.Multiply(rm)
			c.renderShapeGroupInstance(g, frame, combined, layerOpacity, dst, mask, o)
		}
	}
}

func repeaterMatrices(g *ShapeGroup, frame float32) []Matrix {
	if g.Repeater == nil || g.Repeater.Copies <= 1 {
		return []Matrix{Identity()}
	}
	step := g.Repeater.Transform.MatrixAt(frame)
	out := make([]Matrix, g.Repeater.Copies)
	acc := Identity()
	for i := 0; i < g.Repeater.Copies; i++ {
		out[i] = acc
		acc = acc.Multiply(step)
	}
	return out
}

func (c *Composition) renderShapeGroupInstance(g *ShapeGroup, frame float32, combined Matrix, layerOpacity float32, dst *raster.Buffer, mask raster.CoverageMask, o RenderOptions) {
	path := g.PathAt(frame)
	inv := combined.Invert()

	if g.LocalMask != nil {
		mask = intersectMask(mask, localMaskCoverage(g.LocalMask, combined, dst.Width, dst.Height, o.FlattenTolerance))
	}

	if g.Fill.Enabled {
		transformed := path.Transform(combined)
		mesh := transformed.Tessellate(o.FlattenTolerance)
		alphaScale := layerOpacity * clamp01(float32(g.Fill.OpacityAnim.Value(frame))/100)
		paint := g.Fill.Paint
		colorAt := func(x, y float32) raster.Color {
			local := inv.TransformPoint(Vec2{X: x, Y: y})
			col := paint.SampleAt(local)
			col.A = scaleAlpha(col.A, alphaScale)
			return toRasterColor(col)
		}
		raster.FillMesh(dst, toRasterPoints(mesh.Vertices), mesh.Indices, colorAt, mask)
	}

	if g.Stroke.Enabled {
		width := float32(g.Stroke.WidthAnim.Value(frame))
		if width > 0 {
			alphaScale := layerOpacity * clamp01(float32(g.Stroke.OpacityAnim.Value(frame))/100)
			paint := g.Stroke.Paint
			colorAt := func(x, y float32) raster.Color {
				local := inv.TransformPoint(Vec2{X: x, Y: y})
				col := paint.SampleAt(local)
				col.A = scaleAlpha(col.A, alphaScale)
				return toRasterColor(col)
			}
			trimStart := float32(g.TrimStart.Value(frame))
			trimEnd := float32(g.TrimEnd.Value(frame))
			trimOffset := float32(g.TrimOffset.Value(frame))

			var polylines [][]Vec2
			if trimStart != 0 || trimEnd != 100 {
				polylines = [][]Vec2{path.Trim(trimStart/100, trimEnd/100, trimOffset/360, o.FlattenTolerance)}
			} else {
				polylines = path.Flatten(o.FlattenTolerance)
			}

			for _, poly := range polylines {
				screenPoly := make([]strokepoly.Point, len(poly))
				for i, v := range poly {
					sp := combined.TransformPoint(v)
					screenPoly[i] = strokepoly.Point{X: sp.X, Y: sp.Y}
				}
				quads := strokepoly.Polygonize(screenPoly, width)
				verts, indices := strokepoly.Triangulate(quads)
				raster.FillMesh(dst, toRasterPointsStroke(verts), indices, colorAt, mask)
			}
		}
	}
}

func (c *Composition) renderImageLayer(layer *Layer, m Matrix, opacity float32, dst *raster.Buffer, mask raster.CoverageMask) {
	if layer.ImagePix == nil || layer.ImageWidth == 0 || layer.ImageHeight == 0 {
		return
	}
	topLeft := m.TransformPoint(Vec2{})
	right := m.TransformVector(Vec2{X: float32(layer.ImageWidth)})
	down := m.TransformVector(Vec2{Y: float32(layer.ImageHeight)})
	destW := int(right.Length())
	destH := int(down.Length())
	if destW <= 0 || destH <= 0 {
		return
	}
	combinedMask := combineOpacityMask(mask, opacity)
	raster.BlitImage(dst, int(topLeft.X), int(topLeft.Y), destW, destH, layer.ImagePix, layer.ImageWidth, layer.ImageHeight, combinedMask)
}

func (c *Composition) renderPreCompLayer(layer *Layer, frame float32, m Matrix, opacity float32, dst *raster.Buffer, mask raster.CoverageMask, o RenderOptions, depth int) {
	asset, ok := c.Assets[layer.PreCompRef]
	if !ok || asset == nil {
		return
	}
	scratch := newScratchBuffer(dst.Width, dst.Height)
	c.renderLayers(asset.Layers, frame, scratch, o, depth+1)

	combinedMask := combineOpacityMask(mask, opacity)
	origin := m.TransformPoint(Vec2{})
	ox, oy := int(origin.X), int(origin.Y)
	for y := 0; y < scratch.Height; y++ {
		dy := oy + y
		if dy < 0 || dy >= dst.Height {
			continue
		}
		for x := 0; x < scratch.Width; x++ {
			dx := ox + x
			if dx < 0 || dx >= dst.Width {
				continue
			}
			src := scratch.At(x, y)
			if src.A == 0 {
				continue
			}
			if combinedMask != nil {
				cov := combinedMask(dx, dy)
				if cov == 0 {
					continue
				}
				if cov != 255 {
					src.A = uint8(uint32(src.A) * uint32(cov) / 255)
				}
			}
			dst.BlendPixel(dx, dy, src)
		}
	}
}

func (c *Composition) renderTextLayer(layer *Layer, frame float32, m Matrix, opacity float32, dst *raster.Buffer, mask raster.CoverageMask, o RenderOptions) {
	tl := layer.TextLayer
	if tl == nil || o.Fonts == nil {
		return
	}
	font, ok := o.Fonts.Font(tl.FontName)
	if !ok {
		return
	}

	size := float32(tl.SizeAnim.Value(frame))
	col := tl.ColorAnim.Value(frame)
	alphaScale := opacity
	col.A = scaleAlpha(col.A, alphaScale)
	rc := toRasterColor(col)

	scale := m.TransformVector(Vec2{X: 1}).Length()
	pen := m.TransformPoint(Vec2{})

	runes := []rune(tl.Text)
	for i, r := range runes {
		glyph, ok := font.Glyph(r, size*scale)
		if !ok {
			continue
		}
		originX := int(pen.X + glyph.BearingX)
		originY := int(pen.Y - glyph.BearingY)
		raster.BlitGlyph(dst, originX, originY, glyph.Width, glyph.Height, glyph.Coverage, rc, mask)
		advance := glyph.Advance + tl.Tracking
		if i+1 < len(runes) {
			advance += font.Kern(r, runes[i+1], size*scale)
		}
		pen.X += advance
	}
}

func combineOpacityMask(mask raster.CoverageMask, opacity float32) raster.CoverageMask {
	if opacity >= 1 && mask == nil {
		return nil
	}
	factor := clamp01(opacity)
	return func(x, y int) uint8 {
		base := uint8(255)
		if mask != nil {
			base = mask(x, y)
			if base == 0 {
				return 0
			}
		}
		return uint8(float32(base) * factor)
	}
}

// localMaskCoverage rasterizes a shape group's local mask path, in
// destination space, into a fresh coverage buffer: 255 inside the
// mask, 0 outside.
func localMaskCoverage(maskPath *Path, combined Matrix, width, height int, tolerance float32) raster.CoverageMask {
	scratch := newScratchBuffer(width, height)
	transformed := maskPath.Transform(combined)
	mesh := transformed.Tessellate(tolerance)
	white := func(x, y float32) raster.Color { return raster.Color{R: 255, G: 255, B: 255, A: 255} }
	raster.FillMesh(scratch, toRasterPoints(mesh.Vertices), mesh.Indices, white, nil)
	return maskFromBuffer(scratch).At
}

// intersectMask combines two coverage masks by multiplication; a nil
// mask is treated as full coverage.
func intersectMask(a, b raster.CoverageMask) raster.CoverageMask {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(x, y int) uint8 {
		ca := a(x, y)
		if ca == 0 {
			return 0
		}
		cb := b(x, y)
		if cb == 0 {
			return 0
		}
		return uint8(uint32(ca) * uint32(cb) / 255)
	}
}

func toRasterPoints(pts []geom.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

func toRasterPointsStroke(pts []strokepoly.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
