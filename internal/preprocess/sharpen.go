package preprocess

import "github.com/imagetrace/vectorize/internal/rasterimg"

// unsharpMask computes:
// sharpened = clip(image*(1+a) + blur(image, sigma=1)*(-a), 0, 255).
func unsharpMask(img *rasterimg.Image, amount float64) *rasterimg.Image {
	blurred := gaussianBlur(img, 1)

	w, h := img.Width(), img.Height()
	out, _ := rasterimg.New(w, h, img.Format())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b, g, r, a := img.At(x, y)
			bb, bg, br, _ := blurred.At(x, y)

			nb := float64(b)*(1+amount) - float64(bb)*amount
			ng := float64(g)*(1+amount) - float64(bg)*amount
			nr := float64(r)*(1+amount) - float64(br)*amount

			out.SetBGR(x, y, clampByte(nb), clampByte(ng), clampByte(nr))
			if img.HasAlpha() {
				out.SetAlpha(x, y, a)
			}
		}
	}
	return out
}
