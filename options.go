package lottie

import (
	"log/slog"

	"github.com/SoftOboros/rlottie-go/internal/geom"
)

// UnknownMatteBehavior controls how RenderSync handles a matte-type
// value it doesn't recognize (a future document feature, or a
// hand-edited field).
type UnknownMatteBehavior int

const (
	// UnknownMatteIgnore treats the matte as MatteNone: the layer
	// renders unmasked. This is the default.
	UnknownMatteIgnore UnknownMatteBehavior = iota
	// UnknownMatteHide skips the layer entirely rather than guess.
	UnknownMatteHide
)

// RenderOptions configures one render pass. The zero value is usable:
// it matches the document's own flatten tolerance default and ignores
// unknown matte types.
type RenderOptions struct {
	// FlattenTolerance bounds the distance-to-chord error allowed when
	// flattening cubic curves to line segments. Zero selects
	// geom.FlattenTolerance.
	FlattenTolerance float32
	// UnknownMatte selects the policy for unrecognized matte types.
	UnknownMatte UnknownMatteBehavior
	// Fonts resolves text-layer font references. Required only if the
	// document has text layers.
	Fonts FontSet
	// Logger overrides the package-level logger for this render pass.
	Logger *slog.Logger
}

// Option mutates a RenderOptions; functional-options constructor
// pattern so RenderSync's signature doesn't grow a parameter per knob.
type Option func(*RenderOptions)

// WithFlattenTolerance overrides the curve-flattening tolerance.
func WithFlattenTolerance(tol float32) Option {
	return func(o *RenderOptions) { o.FlattenTolerance = tol }
}

// WithUnknownMatteBehavior overrides the unknown-matte-type policy.
func WithUnknownMatteBehavior(b UnknownMatteBehavior) Option {
	return func(o *RenderOptions) { o.UnknownMatte = b }
}

// WithFonts supplies the FontSet used to resolve text-layer font
// references.
func WithFonts(fonts FontSet) Option {
	return func(o *RenderOptions) { o.Fonts = fonts }
}

// WithLogger overrides the logger for this render pass only.
func WithLogger(l *slog.Logger) Option {
	return func(o *RenderOptions) { o.Logger = l }
}

func resolveOptions(opts []Option) RenderOptions {
	var o RenderOptions
	for _, apply := range opts {
		apply(&o)
	}
	if o.FlattenTolerance <= 0 {
		o.FlattenTolerance = geom.FlattenTolerance
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	return o
}
