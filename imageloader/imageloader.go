// Package imageloader is the bitmap-decoding collaborator: it decodes
// PNG/JPEG asset bytes with the standard library, converts them to
// RGBA8888 with x/image/draw, and can resize to a target footprint
// with disintegration/imaging — satisfying loader.ImageResolver.
package imageloader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Loader resolves asset references (as registered via Register) to
// decoded RGBA8888 pixels, implementing loader.ImageResolver without
// this package depending on the loader package.
type Loader struct {
	assets map[string][]byte
}

// New creates an empty Loader.
func New() *Loader {
	return &Loader{assets: make(map[string][]byte)}
}

// Register associates a reference string with the raw encoded image
// bytes. The loader resolves an image asset by its "p" field and an
// image layer by its "refId" field.
func (l *Loader) Register(ref string, data []byte) {
	l.assets[ref] = data
}

// Resolve implements loader.ImageResolver.
func (l *Loader) Resolve(ref string) (pix []byte, width, height int, err error) {
	data, ok := l.assets[ref]
	if !ok {
		return nil, 0, 0, fmt.Errorf("lottie/imageloader: no registered asset %q", ref)
	}
	return Decode(data)
}

// Decode decodes PNG or JPEG bytes into tightly packed RGBA8888.
func Decode(data []byte) (pix []byte, width, height int, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("lottie/imageloader: decode: %w", err)
	}
	return toRGBA(img)
}

func toRGBA(img image.Image) ([]byte, int, int, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba.Pix, w, h, nil
}

// Resize scales decoded RGBA8888 pixels to the given footprint using
// a Lanczos resampler, for callers that want the image pre-fit to a
// layer's declared size instead of nearest-neighbor blitting it at
// render time.
func Resize(pix []byte, width, height, newWidth, newHeight int) []byte {
	src := &image.RGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	dst := imaging.Resize(src, newWidth, newHeight, imaging.Lanczos)
	return dst.Pix
}
