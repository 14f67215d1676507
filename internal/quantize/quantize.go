// Package quantize reduces a preprocessed color image to a small
// palette and a set of per-color binary masks, the input to contour
// tracing.
package quantize

import (
	"fmt"
	"math/rand"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// Method selects the palette-computation algorithm.
type Method int

const (
	MethodKMeans Method = iota
	MethodMedianCut
	MethodOctree
)

// Result is the output contract: the quantized (palette-mapped) image,
// the palette as lowercase #rrggbb hex strings, and one binary mask per
// palette entry.
type Result struct {
	QuantizedImage *rasterimg.Image
	Palette        []string
	Masks          []*rasterimg.Mask
}

const maxKMeansSamples = 100000
const maxOctreeSamples = 50000
const sampleSeed = 42

// Quantize clamps nColorsRequested to [2, 64] (0 triggers auto-K from the
// grayscale histogram), computes a palette with the given method,
// assigns every pixel to its nearest entry, then runs the two-pass
// refinement (coverage pruning, perceptual merge). If img has exactly
// one unique color, it bypasses quantization entirely (K=1, one full
// mask).
func Quantize(img *rasterimg.Image, nColorsRequested int, method Method, alpha *rasterimg.Image) Result {
	if single, ok := singleColorFastPath(img, alpha); ok {
		return single
	}

	k := resolveK(img, nColorsRequested)

	samples, maxSamples := collectSamples(img, method)
	palette := computePalette(samples, k, method, maxSamples)

	labels := assignLabels(img, palette)
	palette, labels = coveragePrune(palette, labels)
	palette, labels = perceptualMerge(palette, labels)

	return buildResult(img, palette, labels, alpha)
}

func resolveK(img *rasterimg.Image, requested int) int {
	if requested == 0 {
		hist := rasterimg.GrayHistogram(img)
		nonZero := 0
		for _, c := range hist {
			if c > 0 {
				nonZero++
			}
		}
		k := nonZero / 8
		if k < 2 {
			k = 2
		}
		if k > 32 {
			k = 32
		}
		return k
	}
	if requested < 2 {
		return 2
	}
	if requested > 64 {
		return 64
	}
	return requested
}

func collectSamples(img *rasterimg.Image, method Method) ([][3]float64, int) {
	max := maxKMeansSamples
	if method == MethodOctree {
		max = maxOctreeSamples
	}

	w, h := img.Width(), img.Height()
	n := w * h
	all := make([][3]float64, 0, n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r, _ := img.At(x, y)
			all = append(all, [3]float64{float64(b), float64(g), float64(r)})
		}
	}
	if len(all) <= max {
		return all, max
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	sampled := make([][3]float64, max)
	for i := range sampled {
		sampled[i] = all[rng.Intn(len(all))]
	}
	return sampled, max
}

func computePalette(samples [][3]float64, k int, method Method, maxSamples int) [][3]float64 {
	switch method {
	case MethodMedianCut:
		return medianCut(samples, k)
	case MethodOctree:
		return octreeQuantize(samples, k)
	default:
		return kmeans(samples, k)
	}
}

func assignLabels(img *rasterimg.Image, palette [][3]float64) []int {
	w, h := img.Width(), img.Height()
	labels := make([]int, w*h)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r, _ := img.At(x, y)
			labels[i] = nearestIndex(float64(b), float64(g), float64(r), palette)
			i++
		}
	}
	return labels
}

func buildResult(img *rasterimg.Image, palette [][3]float64, labels []int, alpha *rasterimg.Image) Result {
	w, h := img.Width(), img.Height()

	quantized, _ := rasterimg.New(w, h, rasterimg.FormatBGR8)
	masks := make([]*rasterimg.Mask, len(palette))
	for i := range masks {
		masks[i] = rasterimg.NewMask(w, h)
	}

	idx := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			label := labels[idx]
			c := palette[label]
			quantized.SetBGR(x, y, clampByte(c[0]), clampByte(c[1]), clampByte(c[2]))
			masks[label].Set(x, y, true)
			idx++
		}
	}

	if alpha != nil {
		for _, m := range masks {
			m.AndAlpha(alpha)
		}
	}

	hex := make([]string, len(palette))
	for i, c := range palette {
		hex[i] = fmt.Sprintf("#%02x%02x%02x", clampByte(c[2]), clampByte(c[1]), clampByte(c[0]))
	}

	return Result{QuantizedImage: quantized, Palette: hex, Masks: masks}
}

func singleColorFastPath(img *rasterimg.Image, alpha *rasterimg.Image) (Result, bool) {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return Result{}, false
	}
	b0, g0, r0, _ := img.At(0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r, _ := img.At(x, y)
			if b != b0 || g != g0 || r != r0 {
				return Result{}, false
			}
		}
	}

	mask := rasterimg.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, true)
		}
	}
	if alpha != nil {
		mask.AndAlpha(alpha)
	}

	return Result{
		QuantizedImage: img.Clone(),
		Palette:        []string{fmt.Sprintf("#%02x%02x%02x", r0, g0, b0)},
		Masks:          []*rasterimg.Mask{mask},
	}, true
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
