package quantize

// coveragePrune drops any palette entry whose label count divided by
// total pixel count is below 0.001, reassigning dropped labels' pixels
// to the nearest surviving entry. If pruning would leave zero entries,
// only the index with the maximum count is retained.
func coveragePrune(palette [][3]float64, labels []int) ([][3]float64, []int) {
	total := len(labels)
	if total == 0 {
		return palette, labels
	}

	counts := make([]int, len(palette))
	for _, l := range labels {
		counts[l]++
	}

	keep := make([]bool, len(palette))
	anyKept := false
	for i, c := range counts {
		if float64(c)/float64(total) >= 0.001 {
			keep[i] = true
			anyKept = true
		}
	}
	if !anyKept {
		maxIdx := 0
		for i, c := range counts {
			if c > counts[maxIdx] {
				maxIdx = i
			}
		}
		keep[maxIdx] = true
	}

	return compact(palette, labels, keep)
}

// compact removes palette entries where keep[i] is false, remapping
// dropped labels to the nearest surviving entry and shifting surviving
// indices down to close the gap.
func compact(palette [][3]float64, labels []int, keep []bool) ([][3]float64, []int) {
	newPalette := make([][3]float64, 0, len(palette))
	remap := make([]int, len(palette))
	for i, k := range keep {
		if k {
			remap[i] = len(newPalette)
			newPalette = append(newPalette, palette[i])
		}
	}
	for i, k := range keep {
		if !k {
			remap[i] = nearestIndex(palette[i][0], palette[i][1], palette[i][2], newPalette)
		}
	}

	newLabels := make([]int, len(labels))
	for i, l := range labels {
		newLabels[i] = remap[l]
	}
	return newPalette, newLabels
}

// perceptualMerge repeatedly collapses the first pair (i, j), i<j, whose
// perceptual distance is below 15, until no such pair remains or the
// palette has shrunk to 2 entries.
func perceptualMerge(palette [][3]float64, labels []int) ([][3]float64, []int) {
	for len(palette) > 2 {
		i, j, found := findMergePair(palette)
		if !found {
			break
		}
		palette, labels = mergeInto(palette, labels, i, j)
	}
	return palette, labels
}

func findMergePair(palette [][3]float64) (int, int, bool) {
	for i := 0; i < len(palette); i++ {
		for j := i + 1; j < len(palette); j++ {
			c1, c2 := palette[i], palette[j]
			if perceptualDistance(c1[0], c1[1], c1[2], c2[0], c2[1], c2[2]) < 15 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// mergeInto relabels pixels with label j to i, removes entry j, and
// shifts labels greater than j down by one.
func mergeInto(palette [][3]float64, labels []int, i, j int) ([][3]float64, []int) {
	newPalette := make([][3]float64, 0, len(palette)-1)
	newPalette = append(newPalette, palette[:j]...)
	newPalette = append(newPalette, palette[j+1:]...)

	newLabels := make([]int, len(labels))
	for k, l := range labels {
		switch {
		case l == j:
			newLabels[k] = i
		case l > j:
			newLabels[k] = l - 1
		default:
			newLabels[k] = l
		}
	}
	return newPalette, newLabels
}
