// Package modedetect classifies a decoded image into one of the
// pipeline's four processing modes from pixel statistics.
package modedetect

import (
	"math/rand"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// seed is the fixed deterministic seed used for the sampled unique-color
// count, matching the pipeline-wide determinism requirement.
const seed = 42

// Detect classifies img in a fixed decision order (first match wins):
// 1-channel input -> line_art; unique<64 && edge<0.05 -> logo;
// unique<16 -> pixel_art; std<30 -> line_art; unique>1000 -> photo;
// else -> photo.
func Detect(img *rasterimg.Image) string {
	if img.Format() == rasterimg.FormatGray8 {
		return "line_art"
	}

	unique := sampleUniqueColors(img)
	edgeDensity := edgeDensity(img)
	std := rasterimg.GrayStdDev(img)

	switch {
	case unique < 64 && edgeDensity < 0.05:
		return "logo"
	case unique < 16:
		return "pixel_art"
	case std < 30:
		return "line_art"
	case unique > 1000:
		return "photo"
	default:
		return "photo"
	}
}

// sampleUniqueColors counts distinct BGR triples in a deterministic
// sample of at most 10000 pixels.
func sampleUniqueColors(img *rasterimg.Image) int {
	w, h := img.Width(), img.Height()
	n := w * h
	type rgb struct{ b, g, r uint8 }
	seen := make(map[rgb]struct{})

	if n <= 10000 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b, g, r, _ := img.At(x, y)
				seen[rgb{b, g, r}] = struct{}{}
			}
		}
		return len(seen)
	}

	rng := rand.New(rand.NewSource(seed))
	idx := make(map[int]struct{}, 10000)
	for len(idx) < 10000 {
		idx[rng.Intn(n)] = struct{}{}
	}
	for i := range idx {
		x, y := i%w, i/w
		b, g, r, _ := img.At(x, y)
		seen[rgb{b, g, r}] = struct{}{}
	}
	return len(seen)
}
