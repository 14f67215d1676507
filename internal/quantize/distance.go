package quantize

import "math"

// squaredEuclidean returns the squared Euclidean BGR distance used for
// nearest-palette-entry assignment.
func squaredEuclidean(b1, g1, r1, b2, g2, r2 float64) float64 {
	db := b1 - b2
	dg := g1 - g2
	dr := r1 - r2
	return db*db + dg*dg + dr*dr
}

// perceptualDistance is the weighted color-distance formula used by the
// palette-merge refinement pass:
// d = sqrt((2+r̄/256)*Δr² + 4*Δg² + (2+(255-r̄)/256)*Δb²).
func perceptualDistance(b1, g1, r1, b2, g2, r2 float64) float64 {
	rMean := (r1 + r2) / 2
	dr := r1 - r2
	dg := g1 - g2
	db := b1 - b2
	d := (2+rMean/256)*dr*dr + 4*dg*dg + (2+(255-rMean)/256)*db*db
	return math.Sqrt(d)
}

// nearestIndex returns the index of the palette entry closest to (b,g,r)
// in squared Euclidean BGR space, ties broken toward the lower index.
func nearestIndex(b, g, r float64, palette [][3]float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range palette {
		d := squaredEuclidean(b, g, r, c[0], c[1], c[2])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
