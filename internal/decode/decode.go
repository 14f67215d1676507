// Package decode turns an opaque raster byte blob into a
// rasterimg.Image, trying native codecs first and a broader fallback
// path second.
package decode

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/deepteams/webp"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// ErrUnsupported is returned when neither the native nor the fallback
// decode path could interpret the input bytes.
var ErrUnsupported = errors.New("decode: no codec accepted the image data")

// nativeDecoders are tried in order; each is a format whose container
// reliably signals its own presence (magic bytes), so trying them in
// sequence is safe and cheap on a failed match.
var nativeDecoders = []func([]byte) (image.Image, error){
	decodeWith(jpeg.Decode),
	decodeWith(png.Decode),
	decodeWith(bmp.Decode),
	decodeWith(tiff.Decode),
}

func decodeWith(fn func(r io.Reader) (image.Image, error)) func([]byte) (image.Image, error) {
	return func(data []byte) (image.Image, error) {
		return fn(bytes.NewReader(data))
	}
}

// Decode converts raw image bytes into a BGRA rasterimg.Image.
//
// It first tries the native decoders (JPEG, PNG, BMP, TIFF). If all of
// them fail, it falls back to WebP and then to animated GIF, using only
// the first frame of the GIF's multi-frame container.
func Decode(data []byte) (*rasterimg.Image, error) {
	for _, dec := range nativeDecoders {
		if img, err := dec(data); err == nil {
			return rasterimg.FromStdImage(img), nil
		}
	}

	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return rasterimg.FromStdImage(img), nil
	}

	if g, err := gif.DecodeAll(bytes.NewReader(data)); err == nil && len(g.Image) > 0 {
		return rasterimg.FromStdImage(g.Image[0]), nil
	}

	return nil, ErrUnsupported
}
