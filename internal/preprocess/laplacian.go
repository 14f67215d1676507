package preprocess

import "github.com/imagetrace/vectorize/internal/rasterimg"

// laplacianVariance computes the variance of the image's Laplacian,
// used to distinguish low-noise from heavy-noise photos.
func laplacianVariance(img *rasterimg.Image) float64 {
	w, h := img.Width(), img.Height()
	if w < 3 || h < 3 {
		return 0
	}

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return float64(img.GrayscaleValue(x, y))
	}

	lap := make([]float64, 0, w*h)
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := -4*at(x, y) + at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1)
			lap = append(lap, v)
			sum += v
		}
	}

	mean := sum / float64(len(lap))
	var variance float64
	for _, v := range lap {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(lap))
}
