package lottie

// Mask is a byte-per-pixel alpha buffer used both for a layer's own
// mask shapes and as the scratch buffer a track matte reads from.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width, height int
	data          []uint8
}

// NewMask creates a mask of the given size, fully transparent.
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, data: make([]uint8, width*height)}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), or 0 outside bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y). Coordinates outside bounds are
// ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets every pixel to value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert replaces every value v with 255-v.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clear zeros the mask.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Data returns the underlying buffer for direct rasterizer access.
func (m *Mask) Data() []uint8 {
	return m.data
}

// MatteMode is how a layer with a track-matte source combines with
// the matte layer's rendered alpha.
type MatteMode int

const (
	// MatteNone applies no track matte.
	MatteNone MatteMode = iota
	// MatteAlpha keeps pixels where the matte layer's alpha is opaque.
	MatteAlpha
	// MatteAlphaInv keeps pixels where the matte layer's alpha is
	// transparent.
	MatteAlphaInv
)

// Apply scales alpha by the mask value at (x, y) according to mode
// (by 255-value for MatteAlphaInv) and returns the result; any other
// mode returns alpha unchanged.
func (m *Mask) Apply(mode MatteMode, alpha uint8, x, y int) uint8 {
	switch mode {
	case MatteAlpha:
		mv := uint32(m.At(x, y))
		return uint8(uint32(alpha) * mv / 255)
	case MatteAlphaInv:
		mv := uint32(255 - m.At(x, y))
		return uint8(uint32(alpha) * mv / 255)
	default:
		return alpha
	}
}
