package preprocess

import "github.com/imagetrace/vectorize/internal/rasterimg"

// gaussianBlur applies a separable Gaussian blur to a BGR image.
//
// Same two-pass horizontal/vertical convolution structure as a
// rendering library's BlurFilter.Apply, retargeted from an RGBA Pixmap
// to a 3-channel BGR rasterimg.Image.
func gaussianBlur(img *rasterimg.Image, sigma float64) *rasterimg.Image {
	kernel := gaussianKernel(sigma)
	w, h := img.Width(), img.Height()

	temp := make([][3]float64, w*h)
	blurHorizontal(img, temp, kernel)

	out, _ := rasterimg.New(w, h, img.Format())
	blurVertical(temp, w, h, kernel, out)
	return out
}

func blurHorizontal(src *rasterimg.Image, temp [][3]float64, kernel []float64) {
	w, h := src.Width(), src.Height()
	half := len(kernel) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sb, sg, sr float64
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 {
					sx = 0
				} else if sx >= w {
					sx = w - 1
				}
				b, g, r, _ := src.At(sx, y)
				sb += float64(b) * weight
				sg += float64(g) * weight
				sr += float64(r) * weight
			}
			temp[y*w+x] = [3]float64{sb, sg, sr}
		}
	}
}

func blurVertical(temp [][3]float64, w, h int, kernel []float64, dst *rasterimg.Image) {
	half := len(kernel) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sb, sg, sr float64
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 {
					sy = 0
				} else if sy >= h {
					sy = h - 1
				}
				c := temp[sy*w+x]
				sb += c[0] * weight
				sg += c[1] * weight
				sr += c[2] * weight
			}
			dst.SetBGR(x, y, clampByte(sb), clampByte(sg), clampByte(sr))
		}
	}
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
