package trace

import "math"

// epsilonForDetail returns the RDP threshold for a detail level string.
func epsilonForDetail(detail string) float64 {
	switch detail {
	case "low":
		return 3.0
	case "high":
		return 0.8
	case "ultra":
		return 0.3
	default: // medium
		return 1.5
	}
}

// SimplifyRDP runs recursive Ramer-Douglas-Peucker simplification with
// the given threshold, deduplicating adjacent identical points in the
// result while preserving original order.
func SimplifyRDP(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return dedup(points)
	}
	kept := rdpRecurse(points, epsilon)
	return dedup(kept)
}

func rdpRecurse(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}

	start, end := points[0], points[len(points)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], start, end)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > epsilon {
		left := rdpRecurse(points[:maxIdx+1], epsilon)
		right := rdpRecurse(points[maxIdx:], epsilon)
		return append(left[:len(left)-1], right...)
	}
	return []Point{start, end}
}

func perpendicularDistance(p, a, b Point) float64 {
	if a == b {
		return p.Distance(a)
	}
	num := math.Abs((b.Y-a.Y)*p.X - (b.X-a.X)*p.Y + b.X*a.Y - b.Y*a.X)
	den := a.Distance(b)
	return num / den
}

func dedup(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	out := []Point{points[0]}
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
