package quantize

import "sort"

// colorBox is one bucket of samples in the median-cut algorithm.
//
// Grounded on the pack's arugaz-gg quantize/mediancut.go box-splitting
// structure (bucketize/partition), adapted from its RGBA color.Palette
// model to this package's plain BGR float64 triples.
type colorBox struct {
	samples [][3]float64
}

// medianCut implements classical Heckbert median-cut: start with one box
// containing all pixels, repeatedly pop the box with the most pixels and
// split it at the median of its longest-range channel, stopping when the
// box count reaches k or a popped box has fewer than 2 samples.
func medianCut(samples [][3]float64, k int) [][3]float64 {
	if len(samples) == 0 || k <= 0 {
		return nil
	}

	boxes := []colorBox{{samples: samples}}

	for len(boxes) < k {
		largestIdx := largestBox(boxes)
		box := boxes[largestIdx]
		if len(box.samples) < 2 {
			break
		}

		left, right := splitBox(box)
		boxes[largestIdx] = boxes[len(boxes)-1]
		boxes = boxes[:len(boxes)-1]
		boxes = append(boxes, left, right)
	}

	centers := make([][3]float64, 0, len(boxes))
	for _, b := range boxes {
		centers = append(centers, boxMean(b.samples))
	}
	return centers
}

func largestBox(boxes []colorBox) int {
	best := 0
	for i, b := range boxes {
		if len(b.samples) > len(boxes[best].samples) {
			best = i
		}
	}
	return best
}

// splitBox partitions a box at the median of its longest-range channel.
func splitBox(box colorBox) (colorBox, colorBox) {
	channel := longestRangeChannel(box.samples)

	sorted := make([][3]float64, len(box.samples))
	copy(sorted, box.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][channel] < sorted[j][channel] })

	mid := len(sorted) / 2
	return colorBox{samples: sorted[:mid]}, colorBox{samples: sorted[mid:]}
}

func longestRangeChannel(samples [][3]float64) int {
	var min, max [3]float64
	min = samples[0]
	max = samples[0]
	for _, s := range samples {
		for c := 0; c < 3; c++ {
			if s[c] < min[c] {
				min[c] = s[c]
			}
			if s[c] > max[c] {
				max[c] = s[c]
			}
		}
	}

	channel := 0
	widest := max[0] - min[0]
	for c := 1; c < 3; c++ {
		if r := max[c] - min[c]; r > widest {
			widest = r
			channel = c
		}
	}
	return channel
}

func boxMean(samples [][3]float64) [3]float64 {
	var sum [3]float64
	for _, s := range samples {
		sum[0] += s[0]
		sum[1] += s[1]
		sum[2] += s[2]
	}
	n := float64(len(samples))
	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}
