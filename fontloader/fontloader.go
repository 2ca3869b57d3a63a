// Package fontloader is the font-rasterization collaborator: given
// font bytes, it parses the outlines with sfnt, segments text into
// runs with go-text/typesetting, and rasterizes glyph coverage bitmaps with
// x/image/vector — satisfying the lottie.Font contract the core text
// layer renders through.
package fontloader

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	lottie "github.com/SoftOboros/rlottie-go"
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"
)

// Font wraps a single parsed font file and caches rasterized glyphs
// per (rune, size) pair, since a text layer typically re-requests the
// same glyph across many frames.
type Font struct {
	sfont *sfnt.Font

	mu    sync.Mutex
	cache map[glyphKey]lottie.Glyph
	buf   sfnt.Buffer
}

type glyphKey struct {
	r    rune
	size float32
}

// New parses TrueType/OpenType font bytes into a Font.
func New(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lottie/fontloader: parse font: %w", err)
	}
	return &Font{sfont: sf, cache: make(map[glyphKey]lottie.Glyph)}, nil
}

// Glyph implements lottie.Font.
func (f *Font) Glyph(r rune, size float32) (lottie.Glyph, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := glyphKey{r, size}
	if g, ok := f.cache[key]; ok {
		return g, true
	}

	idx, err := f.sfont.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return lottie.Glyph{}, false
	}

	ppem := fixed.Int26_6(size * 64)
	segs, err := f.sfont.LoadGlyph(&f.buf, idx, ppem, nil)
	if err != nil {
		return lottie.Glyph{}, false
	}

	advanceFx, err := f.sfont.GlyphAdvance(&f.buf, idx, ppem, 0)
	advance := float32(0)
	if err == nil {
		advance = fixedToFloat(advanceFx)
	}

	bounds, _ := f.sfont.Bounds(&f.buf, ppem, 0)
	width := int(fixedToFloat(bounds.Max.X-bounds.Min.X)) + 1
	height := int(fixedToFloat(bounds.Max.Y-bounds.Min.Y)) + 1
	if width <= 0 || height <= 0 {
		g := lottie.Glyph{Advance: advance}
		f.cache[key] = g
		return g, true
	}

	rz := vector.NewRasterizer(width, height)
	originX := fixedToFloat(-bounds.Min.X)
	originY := fixedToFloat(bounds.Max.Y)
	var cur fixed.Point26_6
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			cur = seg.Args[0]
			rz.MoveTo(fixedToFloat(cur.X)+originX, originY-fixedToFloat(cur.Y))
		case sfnt.SegmentOpLineTo:
			cur = seg.Args[0]
			rz.LineTo(fixedToFloat(cur.X)+originX, originY-fixedToFloat(cur.Y))
		case sfnt.SegmentOpQuadTo:
			cur = seg.Args[1]
			rz.QuadTo(
				fixedToFloat(seg.Args[0].X)+originX, originY-fixedToFloat(seg.Args[0].Y),
				fixedToFloat(cur.X)+originX, originY-fixedToFloat(cur.Y),
			)
		case sfnt.SegmentOpCubeTo:
			cur = seg.Args[2]
			rz.CubeTo(
				fixedToFloat(seg.Args[0].X)+originX, originY-fixedToFloat(seg.Args[0].Y),
				fixedToFloat(seg.Args[1].X)+originX, originY-fixedToFloat(seg.Args[1].Y),
				fixedToFloat(cur.X)+originX, originY-fixedToFloat(cur.Y),
			)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rz.Draw(dst, dst.Bounds(), image.NewUniform(color.Opaque), image.Point{})

	g := lottie.Glyph{
		Width:    width,
		Height:   height,
		BearingX: fixedToFloat(bounds.Min.X),
		BearingY: fixedToFloat(bounds.Max.Y),
		Advance:  advance,
		Coverage: dst.Pix,
	}
	f.cache[key] = g
	return g, true
}

// Kern implements lottie.Font.
func (f *Font) Kern(prev, next rune, size float32) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	i1, err1 := f.sfont.GlyphIndex(&f.buf, prev)
	i2, err2 := f.sfont.GlyphIndex(&f.buf, next)
	if err1 != nil || err2 != nil {
		return 0
	}
	kern, err := f.sfont.Kern(&f.buf, i1, i2, fixed.Int26_6(size*64), 0)
	if err != nil {
		return 0
	}
	return fixedToFloat(kern)
}

// LineHeight implements lottie.Font.
func (f *Font) LineHeight(size float32) float32 {
	metrics, err := f.sfont.Metrics(&f.buf, fixed.Int26_6(size*64), 0)
	if err != nil {
		return size * 1.2
	}
	return fixedToFloat(metrics.Height)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Runs segments text into script-homogeneous runs using
// go-text/typesetting's Unicode segmenter, after NFC-normalizing it.
// The renderer walks runs independently so a future per-script font
// fallback only needs to plug in at this boundary.
func Runs(text string) []string {
	normalized := norm.NFC.String(text)
	var seg segmenter.Segmenter
	seg.Init([]rune(normalized))

	var runs []string
	for seg.Next() {
		r := seg.Run()
		runs = append(runs, string(normalized[r.Offset:r.Offset+r.Len]))
	}
	if len(runs) == 0 && normalized != "" {
		runs = []string{normalized}
	}
	return runs
}

// Set is a lottie.FontSet backed by a name->Font map.
type Set map[string]*Font

// Font implements lottie.FontSet.
func (s Set) Font(name string) (lottie.Font, bool) {
	f, ok := s[name]
	if !ok {
		return nil, false
	}
	return f, true
}
