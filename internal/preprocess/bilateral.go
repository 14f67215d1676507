package preprocess

import (
	"math"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

// bilateralFilter applies an edge-preserving joint spatial/range filter,
// diameter d with an intensity-domain sigmaColor; the spatial-domain
// sigma is fixed at d/2 per OpenCV's cv2.bilateralFilter convention when
// sigmaSpace is left to its diameter-derived default.
func bilateralFilter(img *rasterimg.Image, d int, sigmaColor float64) *rasterimg.Image {
	if d <= 1 {
		return img
	}
	radius := d / 2
	sigmaSpace := float64(d) / 2

	w, h := img.Width(), img.Height()
	out, _ := rasterimg.New(w, h, img.Format())

	twoSigmaSpaceSq := 2 * sigmaSpace * sigmaSpace
	twoSigmaColorSq := 2 * sigmaColor * sigmaColor

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cb, cg, cr, _ := img.At(x, y)

			var sumB, sumG, sumR, sumW float64
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					nb, ng, nr, _ := img.At(nx, ny)

					spatialDist := float64(dx*dx + dy*dy)
					spatialWeight := math.Exp(-spatialDist / twoSigmaSpaceSq)

					rangeDist := colorDistSq(cb, cg, cr, nb, ng, nr)
					rangeWeight := math.Exp(-rangeDist / twoSigmaColorSq)

					weight := spatialWeight * rangeWeight
					sumB += weight * float64(nb)
					sumG += weight * float64(ng)
					sumR += weight * float64(nr)
					sumW += weight
				}
			}

			if sumW == 0 {
				out.SetBGR(x, y, cb, cg, cr)
				continue
			}
			out.SetBGR(x, y, clampByte(sumB/sumW), clampByte(sumG/sumW), clampByte(sumR/sumW))
		}
	}
	return out
}

func colorDistSq(b1, g1, r1, b2, g2, r2 uint8) float64 {
	db := float64(b1) - float64(b2)
	dg := float64(g1) - float64(g2)
	dr := float64(r1) - float64(r2)
	return db*db + dg*dg + dr*dr
}
