package rasterimg

import (
	stdimage "image"
	"image/draw"

	ximagedraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel used by Resize.
type Interpolation uint8

const (
	// InterpNearest is nearest-neighbor sampling, used for pixel_art mode
	// so that hard pixel edges survive upscaling.
	InterpNearest Interpolation = iota
	// InterpHighQuality is the CatmullRom kernel, the closest analogue
	// golang.org/x/image/draw offers to Lanczos resampling.
	InterpHighQuality
)

// Resize scales img to newW×newH using the given interpolation mode.
// It round-trips through golang.org/x/image/draw, which only operates on
// the standard library's image.Image/draw.Image interfaces.
func Resize(img *Image, newW, newH int, interp Interpolation) *Image {
	src := toStdImage(img)
	dstStd := stdimage.NewNRGBA(stdimage.Rect(0, 0, newW, newH))

	var scaler ximagedraw.Scaler
	if interp == InterpNearest {
		scaler = ximagedraw.NearestNeighbor
	} else {
		scaler = ximagedraw.CatmullRom
	}
	scaler.Scale(dstStd, dstStd.Bounds(), src, src.Bounds(), draw.Src, nil)

	return fromStdImage(dstStd, img.format)
}

// FromStdImage converts any standard library image.Image into a BGRA
// rasterimg.Image. Used by the decoder to perform the decode-boundary
// channel-order conversion exactly once.
func FromStdImage(src stdimage.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out, _ := New(w, h, FormatBGRA8)

	// Prefer the straight-alpha NRGBA representation when available so
	// that alpha==0 pixels don't lose their color/RGBA()'s
	// premultiplication rounding.
	if nrgba, ok := src.(*stdimage.NRGBA); ok {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				out.SetBGR(x, y, c.B, c.G, c.R)
				out.SetAlpha(x, y, c.A)
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, a32 := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.SetBGR(x, y, uint8(b32>>8), uint8(g32>>8), uint8(r32>>8))
			out.SetAlpha(x, y, uint8(a32>>8))
		}
	}
	return out
}

// toStdImage converts a rasterimg.Image to a standard library image.Image
// (NRGBA), performing the one-time BGR(A)->RGBA channel-order conversion.
func toStdImage(img *Image) *stdimage.NRGBA {
	out := stdimage.NewNRGBA(stdimage.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			b, g, r, a := img.At(x, y)
			out.SetNRGBA(x, y, stdimage.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return out
}

// fromStdImage converts a standard library image back into the given
// rasterimg.Format (BGR or BGRA channel order).
func fromStdImage(src *stdimage.NRGBA, format Format) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out, _ := New(w, h, format)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			out.SetBGR(x, y, c.B, c.G, c.R)
			out.SetAlpha(x, y, c.A)
		}
	}
	return out
}
