package quantize

import "math/rand"

// octreeSeed matches the pipeline-wide deterministic seed.
const octreeSeed = 42

// octreeQuantize approximates octree quantization via k-means with
// OpenCV-style stopping criteria (EPS+max_iter=20, epsilon=1.0) and 5
// restarts, k-means++ initialization. The "octree" name is kept for API
// compatibility; a true octree data structure is not implemented (see
// DESIGN.md).
func octreeQuantize(samples [][3]float64, k int) [][3]float64 {
	if k <= 0 {
		return nil
	}
	if len(samples) <= k {
		return padCenters(samples, k)
	}

	rng := rand.New(rand.NewSource(octreeSeed))

	var best [][3]float64
	bestInertia := -1.0

	for restart := 0; restart < 5; restart++ {
		centers := kmeansPlusPlusInit(samples, k, rng)
		centers, inertia := opencvStyleLloyd(samples, centers, 20, 1.0)
		if bestInertia < 0 || inertia < bestInertia {
			bestInertia = inertia
			best = centers
		}
	}
	return best
}

// opencvStyleLloyd runs full-batch Lloyd iterations until either maxIter
// is reached or the center shift drops below epsilon, mirroring
// cv2.kmeans's TermCriteria(EPS+COUNT, maxIter, epsilon).
func opencvStyleLloyd(samples [][3]float64, centers [][3]float64, maxIter int, epsilon float64) ([][3]float64, float64) {
	k := len(centers)

	for iter := 0; iter < maxIter; iter++ {
		sums := make([][3]float64, k)
		counts := make([]int, k)

		for _, s := range samples {
			idx := nearestIndex(s[0], s[1], s[2], centers)
			sums[idx][0] += s[0]
			sums[idx][1] += s[1]
			sums[idx][2] += s[2]
			counts[idx]++
		}

		var shift float64
		for i := range centers {
			if counts[i] == 0 {
				continue
			}
			newCenter := [3]float64{
				sums[i][0] / float64(counts[i]),
				sums[i][1] / float64(counts[i]),
				sums[i][2] / float64(counts[i]),
			}
			shift += squaredEuclidean(newCenter[0], newCenter[1], newCenter[2], centers[i][0], centers[i][1], centers[i][2])
			centers[i] = newCenter
		}
		if shift < epsilon*epsilon {
			break
		}
	}

	inertia := 0.0
	for _, s := range samples {
		idx := nearestIndex(s[0], s[1], s[2], centers)
		inertia += squaredEuclidean(s[0], s[1], s[2], centers[idx][0], centers[idx][1], centers[idx][2])
	}
	return centers, inertia
}
