package lottie

import "errors"

// Sentinel errors for loader-level failures. The loader package returns
// ErrEmptyDocument and ErrCyclicPreComp; the other two are declared but
// not returned by any package in this module. The rendering core itself
// never returns an error: a malformed or unsupported element is skipped
// for that frame rather than aborting (see doc.go, "Determinism").
var (
	// ErrEmptyDocument is returned when a document has no layers and no
	// assets.
	ErrEmptyDocument = errors.New("lottie: document has no layers")
	// ErrCyclicPreComp is returned when a precomp asset reference forms
	// a cycle (an asset that, directly or transitively, references
	// itself).
	ErrCyclicPreComp = errors.New("lottie: cyclic precomp reference")
	// ErrUnknownAsset names a layer reference to an asset id missing
	// from the asset table. The loader does not check for this: such a
	// layer is kept and renders nothing.
	ErrUnknownAsset = errors.New("lottie: unknown asset reference")
	// ErrUnsupportedVersion names a document format version the loader
	// cannot read. The loader does not read a version field.
	ErrUnsupportedVersion = errors.New("lottie: unsupported document version")
)
