package trace

import (
	"strings"
	"testing"
)

func TestExtractContoursSinglePixel(t *testing.T) {
	mask := []bool{true}
	layers := ExtractContours(mask, 1, 1, 4)
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if len(layers[0].Outer.Points) < 4 {
		t.Fatalf("single-pixel outer boundary has %d points, want >= 4", len(layers[0].Outer.Points))
	}
}

func TestExtractContoursSolidBlock(t *testing.T) {
	w, h := 10, 10
	mask := make([]bool, w*h)
	for i := range mask {
		mask[i] = true
	}
	layers := ExtractContours(mask, w, h, 4)
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if len(layers[0].Holes) != 0 {
		t.Fatalf("solid block should have no holes, got %d", len(layers[0].Holes))
	}
}

func TestExtractContoursAnnulusHasHole(t *testing.T) {
	size := 64
	mask := make([]bool, size*size)
	cx, cy := float64(size)/2, float64(size)/2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			dist := dx*dx + dy*dy
			if dist <= 28*28 && dist >= 10*10 {
				mask[y*size+x] = true
			}
		}
	}
	layers := ExtractContours(mask, size, size, 4)
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if len(layers[0].Holes) == 0 {
		t.Fatalf("annulus should have at least one hole")
	}
}

func TestProcessContourEmitsPathCommands(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	d := ProcessContour(points, "medium", true)
	if !strings.HasPrefix(d, "M ") {
		t.Fatalf("path data %q should start with M", d)
	}
	if !strings.HasSuffix(d, "Z") {
		t.Fatalf("path data %q should end with Z", d)
	}
}

func TestAssembleSVGContainsViewBoxAndPath(t *testing.T) {
	layers := []Layer{{Outer: Contour{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}}}
	svg := AssembleSVG(10, 10, "none", []LayerPath{{FillHex: "#ff0000", Layers: layers}}, "medium", true)
	if !strings.Contains(svg, `viewBox="0 0 10 10"`) {
		t.Fatalf("svg missing viewBox: %s", svg)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Fatalf("svg missing fill: %s", svg)
	}
	if strings.Count(svg, "<path") != 1 {
		t.Fatalf("svg should contain exactly one <path>, got: %s", svg)
	}
}

func TestSimplifyRDPCollapsesColinearPoints(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	simplified := SimplifyRDP(points, 0.5)
	if len(simplified) != 2 {
		t.Fatalf("len(simplified) = %d, want 2 (collinear points should collapse)", len(simplified))
	}
}

func TestChaikinSmoothIncreasesPointCount(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	smoothed := ChaikinSmooth(points, 1)
	if len(smoothed) != len(points)*2 {
		t.Fatalf("len(smoothed) = %d, want %d", len(smoothed), len(points)*2)
	}
}
