package preprocess

import (
	"math"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

const claheTileSize = 8

// clahe applies contrast-limited adaptive histogram equalization to the
// L channel of the image's CIE L*a*b* representation, tiles of 8x8,
// then converts back to BGR. No example repo carries an L*a*b*/CLAHE
// implementation, so the colorspace conversion and tiled equalization
// are both built directly from the standard textbook formulas.
func clahe(img *rasterimg.Image, clipLimit float64) *rasterimg.Image {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return img
	}

	l := make([]float64, w*h)
	a := make([]float64, w*h)
	bb := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bc, gc, rc, _ := img.At(x, y)
			ll, aa, lb := bgrToLab(bc, gc, rc)
			l[y*w+x] = ll
			a[y*w+x] = aa
			bb[y*w+x] = lb
		}
	}

	equalized := claheEqualizeL(l, w, h, clipLimit)

	out, _ := rasterimg.New(w, h, img.Format())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			b, g, r := labToBGR(equalized[i], a[i], bb[i])
			out.SetBGR(x, y, b, g, r)
			if img.HasAlpha() {
				_, _, _, al := img.At(x, y)
				out.SetAlpha(x, y, al)
			}
		}
	}
	return out
}

// claheEqualizeL runs tiled, clip-limited histogram equalization over
// the L channel (expected range [0, 100]) and bilinearly interpolates
// tile mappings across pixel positions to avoid tile-boundary seams.
func claheEqualizeL(l []float64, w, h int, clipLimit float64) []float64 {
	tilesX := (w + claheTileSize - 1) / claheTileSize
	tilesY := (h + claheTileSize - 1) / claheTileSize
	if tilesX == 0 || tilesY == 0 {
		return l
	}

	// Per-tile cumulative mapping, 256 bins scaled from L's [0,100] range.
	mappings := make([][256]float64, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, x1 := tx*claheTileSize, min((tx+1)*claheTileSize, w)
			y0, y1 := ty*claheTileSize, min((ty+1)*claheTileSize, h)

			var hist [256]int
			n := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					bin := clampBin(l[y*w+x] / 100 * 255)
					hist[bin]++
					n++
				}
			}
			if n == 0 {
				continue
			}

			// Normalize to per-bin fractions before clipping so tiles of
			// different pixel counts (partial tiles at the image edge)
			// produce the same mapping for the same distribution shape.
			var frac [256]float64
			for i, c := range hist {
				frac[i] = float64(c) / float64(n)
			}

			clipFrac := clipLimit / 256
			if clipFrac <= 0 {
				clipFrac = 1.0 / 256
			}
			excess := 0.0
			for i := range frac {
				if frac[i] > clipFrac {
					excess += frac[i] - clipFrac
					frac[i] = clipFrac
				}
			}
			redistribute := excess / 256
			for i := range frac {
				frac[i] += redistribute
			}

			var cdf [256]float64
			sum := 0.0
			for i, f := range frac {
				sum += f
				cdf[i] = sum * 100
			}
			mappings[ty*tilesX+tx] = cdf
		}
	}

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = claheInterpolate(l[y*w+x], x, y, tilesX, tilesY, mappings)
		}
	}
	return out
}

func claheInterpolate(v float64, x, y, tilesX, tilesY int, mappings [][256]float64) float64 {
	tx := float64(x)/claheTileSize - 0.5
	ty := float64(y)/claheTileSize - 0.5

	tx0 := int(math.Floor(tx))
	ty0 := int(math.Floor(ty))
	fx := tx - float64(tx0)
	fy := ty - float64(ty0)

	lookup := func(tx, ty int) float64 {
		tx = clampInt(tx, 0, tilesX-1)
		ty = clampInt(ty, 0, tilesY-1)
		bin := clampBin(v / 100 * 255)
		return mappings[ty*tilesX+tx][bin]
	}

	v00 := lookup(tx0, ty0)
	v10 := lookup(tx0+1, ty0)
	v01 := lookup(tx0, ty0+1)
	v11 := lookup(tx0+1, ty0+1)

	top := v00*(1-fx) + v10*fx
	bottom := v01*(1-fx) + v11*fx
	return top*(1-fy) + bottom*fy
}

func clampBin(v float64) int {
	return clampInt(int(v+0.5), 0, 255)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bgrToLab converts an 8-bit BGR triple to CIE L*a*b* via sRGB->XYZ->Lab.
func bgrToLab(b, g, r uint8) (l, a, bb float64) {
	rl := srgbToLinear(float64(r) / 255)
	gl := srgbToLinear(float64(g) / 255)
	bl := srgbToLinear(float64(b) / 255)

	x := rl*0.4124564 + gl*0.3575761 + bl*0.1804375
	y := rl*0.2126729 + gl*0.7151522 + bl*0.0721750
	z := rl*0.0193339 + gl*0.1191920 + bl*0.9503041

	const xn, yn, zn = 0.950456, 1.0, 1.088754
	fx := labF(x / xn)
	fy := labF(y / yn)
	fz := labF(z / zn)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	bb = 200 * (fy - fz)
	return
}

func labToBGR(l, a, bb float64) (b, g, r uint8) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - bb/200

	const xn, yn, zn = 0.950456, 1.0, 1.088754
	x := xn * labFInv(fx)
	y := yn * labFInv(fy)
	z := zn * labFInv(fz)

	rl := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	gl := x*-0.9692660 + y*1.8760108 + z*0.0415560
	bl := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return clampByte(linearToSRGB(bl) * 255), clampByte(linearToSRGB(gl) * 255), clampByte(linearToSRGB(rl) * 255)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}
