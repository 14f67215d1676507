package modedetect

import (
	"math"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// Canny thresholds, on an 8-bit gradient magnitude scale.
const (
	lowThreshold  = 50.0
	highThreshold = 150.0
)

// edgeDensity returns edge_pixel_count / (H*W) using a from-scratch
// Sobel-gradient + non-maximum-suppression + hysteresis edge detector,
// the closest stdlib-buildable analogue to OpenCV's Canny(50, 150). No
// example repo in the pack carries a general-purpose CV edge detector
// (see DESIGN.md), so this is implemented directly rather than wired to
// a third-party library.
func edgeDensity(img *rasterimg.Image) float64 {
	w, h := img.Width(), img.Height()
	if w < 3 || h < 3 {
		return 0
	}
	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray[y*w+x] = float64(img.GrayscaleValue(x, y))
		}
	}

	gx := make([]float64, w*h)
	gy := make([]float64, w*h)
	mag := make([]float64, w*h)
	dir := make([]float64, w*h)

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
		return gray[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			sy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			gx[y*w+x] = sx
			gy[y*w+x] = sy
			mag[y*w+x] = math.Hypot(sx, sy)
			dir[y*w+x] = math.Atan2(sy, sx)
		}
	}

	suppressed := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			angle := dir[y*w+x] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}
			m := mag[y*w+x]

			var n1, n2 float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				n1, n2 = mag[y*w+x-1], mag[y*w+x+1]
			case angle < 67.5:
				n1, n2 = mag[(y-1)*w+x+1], mag[(y+1)*w+x-1]
			case angle < 112.5:
				n1, n2 = mag[(y-1)*w+x], mag[(y+1)*w+x]
			default:
				n1, n2 = mag[(y-1)*w+x-1], mag[(y+1)*w+x+1]
			}

			if m >= n1 && m >= n2 {
				suppressed[y*w+x] = m
			}
		}
	}

	strong := make([]bool, w*h)
	weak := make([]bool, w*h)
	for i, m := range suppressed {
		if m >= highThreshold {
			strong[i] = true
		} else if m >= lowThreshold {
			weak[i] = true
		}
	}

	// Hysteresis: promote weak pixels 8-connected to a strong pixel.
	edge := make([]bool, w*h)
	copy(edge, strong)
	changed := true
	for changed {
		changed = false
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				i := y*w + x
				if !weak[i] || edge[i] {
					continue
				}
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if edge[(y+dy)*w+(x+dx)] {
							edge[i] = true
							changed = true
						}
					}
				}
			}
		}
	}

	count := 0
	for _, e := range edge {
		if e {
			count++
		}
	}
	return float64(count) / float64(w*h)
}
