// Package trace extracts vector contours from binary masks and emits SVG
// path data, assembling one <path> per color layer.
package trace

// Contour is a single closed boundary: an outer boundary (ccw) or a hole
// (cw), as a pixel-center polyline.
type Contour struct {
	Points []Point
	Area   float64
}

// Layer is one top-level contour together with its direct holes.
// No hierarchy deeper than outer/hole is modeled; a foreground component
// lying inside a hole is its own top-level Layer with its own holes.
type Layer struct {
	Outer Contour
	Holes []Contour
}

// moore-neighborhood offsets in clockwise order starting at North.
var mooreOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// ExtractContours finds every foreground connected component in mask
// and, for each, its outer boundary and any directly-enclosed holes,
// dropping contours whose enclosed area is below minArea.
//
// No example repo in the pack carries a CV-style contour tracer, so the
// component labeling and Moore-neighbor boundary walk below are built
// from the textbook algorithm rather than wired to a third-party library
// (see DESIGN.md).
func ExtractContours(mask []bool, w, h int, minArea float64) []Layer {
	labels, numComponents := labelComponents(mask, w, h, true)

	type candidate struct {
		comp int
		area float64
		pts  []Point
	}
	candidates := make([]candidate, 0, numComponents)
	bestIdx := -1
	for comp := 1; comp <= numComponents; comp++ {
		outer := traceComponentBoundary(labels, w, h, comp)
		area := float64(pixelCount(labels, comp))
		candidates = append(candidates, candidate{comp: comp, area: area, pts: outer})
		if bestIdx < 0 || area > candidates[bestIdx].area {
			bestIdx = len(candidates) - 1
		}
	}

	var layers []Layer
	for _, c := range candidates {
		if c.area < minArea {
			continue
		}
		holes := findHoles(mask, labels, w, h, c.comp, minArea)
		layers = append(layers, Layer{
			Outer: Contour{Points: c.pts, Area: c.area},
			Holes: holes,
		})
	}

	// minArea never drops every contour: if nothing passed the
	// threshold, keep the single largest component anyway so a
	// fully-covered image never yields an empty document.
	if len(layers) == 0 && bestIdx >= 0 {
		c := candidates[bestIdx]
		holes := findHoles(mask, labels, w, h, c.comp, minArea)
		layers = append(layers, Layer{
			Outer: Contour{Points: c.pts, Area: c.area},
			Holes: holes,
		})
	}
	return layers
}

// labelComponents runs a 4-connected flood fill over pixels where
// mask[i] == want, returning a 1-based label grid (0 = unlabeled) and
// the number of components found.
func labelComponents(mask []bool, w, h int, want bool) ([]int, int) {
	labels := make([]int, w*h)
	label := 0

	stack := make([]int, 0, 64)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if mask[i] != want || labels[i] != 0 {
				continue
			}
			label++
			stack = stack[:0]
			stack = append(stack, i)
			labels[i] = label
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%w, cur/w
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if mask[ni] == want && labels[ni] == 0 {
						labels[ni] = label
						stack = append(stack, ni)
					}
				}
			}
		}
	}
	return labels, label
}

// traceComponentBoundary walks the boundary of connected component comp
// using Moore-neighbor tracing, returning pixel-center points in
// clockwise order as drawn in image/SVG space (Y down), which is
// counter-clockwise under the Y-up math convention; findHoles reuses
// this same walk on each hole's own pixel set and then reverses the
// result, so holes are oriented opposite their parent.
func traceComponentBoundary(labels []int, w, h, comp int) []Point {
	belongs := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return labels[y*w+x] == comp
	}

	sx, sy := -1, -1
	for y := 0; y < h && sx < 0; y++ {
		for x := 0; x < w; x++ {
			if labels[y*w+x] == comp {
				sx, sy = x, y
				break
			}
		}
	}
	if sx < 0 {
		return nil
	}
	if !belongs(sx+1, sy) && !belongs(sx-1, sy) && !belongs(sx, sy+1) && !belongs(sx, sy-1) {
		// Isolated single-pixel component: Moore tracing has nothing to
		// walk, so emit the pixel's own unit-square boundary directly.
		fx, fy := float64(sx), float64(sy)
		return []Point{{X: fx, Y: fy}, {X: fx + 1, Y: fy}, {X: fx + 1, Y: fy + 1}, {X: fx, Y: fy + 1}}
	}

	points := []Point{{X: float64(sx) + 0.5, Y: float64(sy) + 0.5}}
	backtrackDir := 6 // west, since sx is the first foreground pixel scanning left-to-right
	cx, cy := sx, sy

	for iter := 0; iter < w*h*8+8; iter++ {
		found := false
		for k := 1; k <= 8; k++ {
			dirIdx := (backtrackDir + k) % 8
			off := mooreOffsets[dirIdx]
			nx, ny := cx+off[0], cy+off[1]
			if belongs(nx, ny) {
				cx, cy = nx, ny
				backtrackDir = (dirIdx + 4) % 8
				found = true
				break
			}
		}
		if !found {
			break
		}
		if cx == sx && cy == sy {
			break
		}
		points = append(points, Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5})
	}
	return points
}

// findHoles locates background regions fully enclosed within
// component comp's bounding box and not touching the mask border,
// tracing each as its own contour.
func findHoles(mask []bool, fgLabels []int, w, h, comp int, minArea float64) []Contour {
	minX, minY, maxX, maxY := componentBounds(fgLabels, w, h, comp)
	if minX > maxX {
		return nil
	}

	bgLabels, _ := labelComponents(mask, w, h, false)

	seen := map[int]bool{}
	var holes []Contour
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if fgLabels[y*w+x] != comp {
				continue
			}
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				bgLabel := bgLabels[ny*w+nx]
				if bgLabel == 0 || seen[bgLabel] {
					continue
				}
				if touchesBorder(bgLabels, w, h, bgLabel) {
					continue
				}
				seen[bgLabel] = true

				hx0, hy0, hx1, hy1 := componentBounds(bgLabels, w, h, bgLabel)
				if hx0 < minX || hy0 < minY || hx1 > maxX || hy1 > maxY {
					continue
				}

				boundary := traceComponentBoundary(bgLabels, w, h, bgLabel)
				for a, b := 0, len(boundary)-1; a < b; a, b = a+1, b-1 {
					boundary[a], boundary[b] = boundary[b], boundary[a]
				}
				area := polygonArea(boundary)
				if area < minArea {
					continue
				}
				holes = append(holes, Contour{Points: boundary, Area: area})
			}
		}
	}
	return holes
}

func pixelCount(labels []int, comp int) int {
	n := 0
	for _, l := range labels {
		if l == comp {
			n++
		}
	}
	return n
}

func componentBounds(labels []int, w, h, comp int) (minX, minY, maxX, maxY int) {
	minX, minY = w, h
	maxX, maxY = -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labels[y*w+x] != comp {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return
}

func touchesBorder(labels []int, w, h, label int) bool {
	for x := 0; x < w; x++ {
		if labels[x] == label || labels[(h-1)*w+x] == label {
			return true
		}
	}
	for y := 0; y < h; y++ {
		if labels[y*w] == label || labels[y*w+w-1] == label {
			return true
		}
	}
	return false
}

// polygonArea returns the absolute area of a closed polygon via the
// shoelace formula.
func polygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
