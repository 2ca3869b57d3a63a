package lottie

// Glyph is one rasterized glyph, ready for compositing: an 8-bit
// coverage bitmap plus the metrics needed to place and advance it.
type Glyph struct {
	Width, Height int
	BearingX      float32
	BearingY      float32
	Advance       float32
	Coverage      []uint8 // Width*Height bytes, row-major
}

// Font is the external collaborator contract a text layer renders
// through: given a rune at a pixel size, produce its rasterized
// coverage bitmap and metrics. The core never opens a font file or
// shapes text itself; fontloader implements this interface on top of
// an actual font parser and is supplied by the caller via
// [RenderOptions].
type Font interface {
	// Glyph rasterizes r at the given pixel size.
	Glyph(r rune, size float32) (Glyph, bool)
	// Kern returns the extra advance between two consecutive runes at
	// the given pixel size (0 if the font has no kerning table or the
	// pair isn't in it).
	Kern(prev, next rune, size float32) float32
	// LineHeight returns the recommended line-to-line distance at the
	// given pixel size.
	LineHeight(size float32) float32
}

// FontSet resolves a document's named font references (e.g. the
// "fFamily" field of a text layer) to a concrete [Font].
type FontSet interface {
	Font(name string) (Font, bool)
}

// MapFontSet is the trivial FontSet backed by a map, sufficient for
// callers that pre-resolve the handful of fonts a document uses.
type MapFontSet map[string]Font

// Font implements FontSet.
func (m MapFontSet) Font(name string) (Font, bool) {
	f, ok := m[name]
	return f, ok
}
