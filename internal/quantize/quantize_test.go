package quantize

import (
	"testing"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

func checkerboard(t *testing.T, w, h int) *rasterimg.Image {
	t.Helper()
	img, err := rasterimg.New(w, h, rasterimg.FormatBGR8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetBGR(x, y, 0, 0, 0)
			} else {
				img.SetBGR(x, y, 255, 255, 255)
			}
		}
	}
	return img
}

func TestQuantizeSolidColorIsSingleEntry(t *testing.T) {
	img, _ := rasterimg.New(10, 10, rasterimg.FormatBGR8)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetBGR(x, y, 0, 0, 255)
		}
	}
	result := Quantize(img, 16, MethodKMeans, nil)
	if len(result.Palette) != 1 {
		t.Fatalf("Palette len = %d, want 1", len(result.Palette))
	}
	if result.Palette[0] != "#ff0000" {
		t.Fatalf("Palette[0] = %q, want #ff0000", result.Palette[0])
	}
	if result.Masks[0].CountSet() != 100 {
		t.Fatalf("mask coverage = %d, want 100", result.Masks[0].CountSet())
	}
}

func TestQuantizeCheckerboardTwoColors(t *testing.T) {
	img := checkerboard(t, 8, 8)
	result := Quantize(img, 2, MethodKMeans, nil)
	if len(result.Palette) != 2 {
		t.Fatalf("Palette len = %d, want 2", len(result.Palette))
	}
	for i, m := range result.Masks {
		if m.CountSet() == 0 {
			t.Fatalf("mask %d is empty", i)
		}
	}
}

func TestQuantizeKClampedToRequested(t *testing.T) {
	img := checkerboard(t, 16, 16)
	result := Quantize(img, 64, MethodMedianCut, nil)
	if len(result.Palette) < 1 || len(result.Palette) > 64 {
		t.Fatalf("Palette len = %d, want within [1, 64]", len(result.Palette))
	}
}

func TestCoveragePruneDropsRareEntries(t *testing.T) {
	palette := [][3]float64{{0, 0, 0}, {255, 255, 255}, {10, 10, 10}}
	labels := make([]int, 0, 2000)
	for i := 0; i < 1997; i++ {
		labels = append(labels, 0)
	}
	labels = append(labels, 1, 1, 2) // entry 1 sits at the 0.001 floor, entry 2 is below it

	newPalette, newLabels := coveragePrune(palette, labels)
	if len(newPalette) != 2 {
		t.Fatalf("after pruning, len(palette) = %d, want 2", len(newPalette))
	}
	for _, l := range newLabels {
		if l >= len(newPalette) {
			t.Fatalf("label %d out of range for palette of len %d", l, len(newPalette))
		}
	}
}

func TestPerceptualMergeEnforcesMinimumDistance(t *testing.T) {
	palette := [][3]float64{{0, 0, 0}, {2, 2, 2}, {200, 200, 200}}
	labels := []int{0, 1, 2}

	newPalette, _ := perceptualMerge(palette, labels)
	for i := 0; i < len(newPalette); i++ {
		for j := i + 1; j < len(newPalette); j++ {
			c1, c2 := newPalette[i], newPalette[j]
			d := perceptualDistance(c1[0], c1[1], c1[2], c2[0], c2[1], c2[2])
			if d < 15 {
				t.Fatalf("entries %d,%d still within perceptual distance 15 (d=%f)", i, j, d)
			}
		}
	}
}

func TestResolveKAutoFromHistogram(t *testing.T) {
	img := checkerboard(t, 8, 8)
	if k := resolveK(img, 0); k < 2 || k > 32 {
		t.Fatalf("resolveK(0) = %d, want within [2, 32]", k)
	}
}

func TestAlphaMasksRespectTransparency(t *testing.T) {
	img := checkerboard(t, 4, 4)
	alpha, _ := rasterimg.New(4, 4, rasterimg.FormatGray8)
	// Left half transparent, right half opaque.
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			alpha.Data()[y*4+x] = 255
		}
	}
	result := Quantize(img, 2, MethodKMeans, alpha)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			for _, m := range result.Masks {
				if m.At(x, y) {
					t.Fatalf("mask set at transparent pixel (%d,%d)", x, y)
				}
			}
		}
	}
}
