package trace

// Segment is one piece of path geometry: either a straight line to End,
// or a cubic Bezier to End via control points C1, C2.
type Segment struct {
	IsCurve bool
	C1, C2  Point
	End     Point
}

// FitCurve converts a closed polyline into a sequence of segments. When
// smooth is true and there are more than 3 points, each consecutive pair
// (P1, P2) becomes a cubic Bezier via Catmull-Rom-to-Bezier conversion
// (the polyline is closed, so neighbors wrap around the ends rather than
// being clamped). Otherwise every pair becomes a straight line.
func FitCurve(points []Point, smooth bool) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	if !smooth || n <= 3 {
		segs := make([]Segment, 0, n)
		for i := 1; i < n; i++ {
			segs = append(segs, Segment{End: points[i]})
		}
		segs = append(segs, Segment{End: points[0]})
		return segs
	}

	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		p0 := points[(i-1+n)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		p3 := points[(i+2)%n]

		c1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6))
		c2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6))
		segs = append(segs, Segment{IsCurve: true, C1: c1, C2: c2, End: p2})
	}
	return segs
}
