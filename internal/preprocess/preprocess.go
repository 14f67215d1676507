// Package preprocess applies the mode-indexed sequence of upscale,
// denoise, bilateral filter, CLAHE and unsharp mask stages to a decoded
// image before quantization.
package preprocess

import (
	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// params holds the resolved, mode-indexed stage parameters for a
// single Apply call.
type params struct {
	denoise   bool
	bilateral bool
	clahe     bool
	sharpen   bool
	hLum      float64
	bilatD    int
	bilatSig  float64
	claheClip float64
	sharpAmt  float64
}

// resolveParams implements the mode-indexed parameter matrix, including
// the photo heavy-noise branch (laplacian-variance > 500) and the CLAHE
// gate (unique-gray-ratio < 0.3 OR mode == photo).
func resolveParams(img *rasterimg.Image, mode string) params {
	switch mode {
	case "pixel_art":
		return params{}
	case "line_art":
		return params{
			denoise: true, bilateral: false, clahe: true, sharpen: true,
			hLum: 4, bilatD: 7, bilatSig: 75, claheClip: 3.0, sharpAmt: 1.5,
		}
	case "logo":
		return params{
			denoise: true, bilateral: true, clahe: true, sharpen: true,
			hLum: 5, bilatD: 9, bilatSig: 75, claheClip: 2.0, sharpAmt: 0.8,
		}
	default: // photo
		hLum, bilatSig := 6.0, 75.0
		if laplacianVariance(img) > 500 {
			hLum, bilatSig = 10, 100
		}
		uniqueGrayRatio := rasterimg.UniqueGrayRatio(img)
		claheOn := uniqueGrayRatio < 0.3 || mode == "photo"
		return params{
			denoise: true, bilateral: true, clahe: claheOn, sharpen: true,
			hLum: hLum, bilatD: 9, bilatSig: bilatSig, claheClip: 2.0, sharpAmt: 1.0,
		}
	}
}

// toggles applied per-stage setting flags on top of the mode matrix.
type toggles struct {
	upscale, denoise, bilateral, clahe, sharpen bool
}

// Apply runs upscale -> denoise -> bilateral -> CLAHE -> unsharp in
// order. Alpha is split off before color-only stages and re-merged
// after (resized to match, with high-quality interpolation). Any panic
// or failure inside a stage degrades that stage to identity: the
// preprocessor continues with the unmodified intermediate.
func Apply(img *rasterimg.Image, mode string, t toggles) (out *rasterimg.Image) {
	out = img

	if t.upscale {
		out = safeStage(out, func(in *rasterimg.Image) *rasterimg.Image {
			return upscale(in, mode == "pixel_art")
		})
	}

	p := resolveParams(out, mode)

	var alpha *rasterimg.Image
	color := out
	if out.HasAlpha() {
		color, alpha = out.SplitAlpha()
	}

	if t.denoise && p.denoise {
		color = safeStage(color, func(in *rasterimg.Image) *rasterimg.Image {
			return denoise(in, p.hLum)
		})
	}
	if t.bilateral && p.bilateral {
		color = safeStage(color, func(in *rasterimg.Image) *rasterimg.Image {
			return bilateralFilter(in, p.bilatD, p.bilatSig)
		})
	}
	if t.clahe && p.clahe {
		color = safeStage(color, func(in *rasterimg.Image) *rasterimg.Image {
			return clahe(in, p.claheClip)
		})
	}
	if t.sharpen && p.sharpen {
		color = safeStage(color, func(in *rasterimg.Image) *rasterimg.Image {
			return unsharpMask(in, p.sharpAmt)
		})
	}

	if alpha != nil {
		if alpha.Width() != color.Width() || alpha.Height() != color.Height() {
			alpha = rasterimg.Resize(alpha, color.Width(), color.Height(), rasterimg.InterpHighQuality)
		}
		out = rasterimg.MergeAlpha(color, alpha)
	} else {
		out = color
	}
	return out
}

// Toggles constructs a toggles value from the four independent
// preprocessor settings flags plus upscale.
func Toggles(upscaleOn, denoiseOn, bilateralOn, claheOn, sharpenOn bool) toggles {
	return toggles{upscale: upscaleOn, denoise: denoiseOn, bilateral: bilateralOn, clahe: claheOn, sharpen: sharpenOn}
}

// safeStage runs fn and falls back to the unmodified input if fn
// panics: any failure inside a stage degrades to identity rather than
// failing the whole pipeline (StageDegraded).
func safeStage(in *rasterimg.Image, fn func(*rasterimg.Image) *rasterimg.Image) (out *rasterimg.Image) {
	out = in
	defer func() {
		if recover() != nil {
			out = in
		}
	}()
	out = fn(in)
	return out
}
