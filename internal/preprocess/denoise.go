package preprocess

import "github.com/imagetrace/vectorize/internal/rasterimg"

// denoise approximates OpenCV's non-local-means denoiser
// (templateWindowSize=7, searchWindowSize=21) with a separable Gaussian
// blur: true NLM patch search has no equivalent in any
// example repo's dependency stack (see DESIGN.md), so the search
// window is approximated by a Gaussian blur whose sigma is derived
// from hLum, giving the same qualitative smoothing-strength-by-hLum
// relationship without a quadratic patch-distance search.
func denoise(img *rasterimg.Image, hLum float64) *rasterimg.Image {
	sigma := hLum / 4
	if sigma <= 0 {
		return img
	}
	return gaussianBlur(img, sigma)
}
