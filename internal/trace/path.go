package trace

import (
	"fmt"
	"strconv"
	"strings"
)

// ProcessContour runs simplify -> smooth -> curve-fit -> path emission
// for a single closed contour, returning its subpath data (an "M ... Z"
// fragment).
func ProcessContour(points []Point, detail string, smooth bool) string {
	simplified := SimplifyRDP(points, epsilonForDetail(detail))
	if len(simplified) < 1 {
		return ""
	}

	if smooth {
		simplified = ChaikinSmooth(simplified, chaikinIterationsForDetail(detail))
	}

	segments := FitCurve(simplified, smooth)
	return emitPath(simplified[0], segments)
}

// emitPath formats a start point and its segments as SVG path data:
// "M x y" followed by one L or C command per segment, terminated by Z.
func emitPath(start Point, segments []Segment) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(formatCoord(start.X))
	b.WriteString(" ")
	b.WriteString(formatCoord(start.Y))

	for _, seg := range segments {
		if seg.IsCurve {
			b.WriteString(fmt.Sprintf(" C %s %s %s %s %s %s",
				formatCoord(seg.C1.X), formatCoord(seg.C1.Y),
				formatCoord(seg.C2.X), formatCoord(seg.C2.Y),
				formatCoord(seg.End.X), formatCoord(seg.End.Y)))
		} else {
			b.WriteString(fmt.Sprintf(" L %s %s", formatCoord(seg.End.X), formatCoord(seg.End.Y)))
		}
	}
	b.WriteString(" Z")
	return b.String()
}

// formatCoord formats a coordinate to 2 decimal places.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// AssembleLayerPath builds the single <path> element for one color
// layer: the outer contour plus all of its holes as further subpaths,
// sharing one evenodd fill rule.
func AssembleLayerPath(layers []Layer, fillHex string, detail string, smooth bool) string {
	var d strings.Builder
	for _, layer := range layers {
		d.WriteString(ProcessContour(layer.Outer.Points, detail, smooth))
		for _, hole := range layer.Holes {
			d.WriteString(" ")
			d.WriteString(ProcessContour(hole.Points, detail, smooth))
		}
	}
	return fmt.Sprintf(`<path fill="%s" fill-rule="evenodd" d="%s"/>`, fillHex, d.String())
}
