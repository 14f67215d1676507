package preprocess

import "math"

// gaussianKernel generates a normalized 1D Gaussian kernel for the given
// sigma. Kernel size is 2*ceil(sigma*3)+1, covering 3 standard
// deviations. For sigma <= 0 it returns the identity kernel [1.0].
//
// Same shape as a rendering library's GaussianKernel helper.
func gaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1.0}
	}
	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float64, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}
	if sum > 0 {
		for i := range kernel {
			kernel[i] /= sum
		}
	}
	return kernel
}
