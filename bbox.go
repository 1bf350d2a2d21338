package polybool

import "math"

// bbox is an axis-aligned bounding box, always normalised so Min <= Max on
// both axes.
type bbox struct {
	Min, Max Point
}

// newBBox returns the bounding box of the two given points.
func newBBox(p, q Point) bbox {
	return bbox{
		Min: Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)},
		Max: Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)},
	}
}

// contains reports whether p lies within b, inclusive of the boundary,
// under epsilon tolerance.
func (b bbox) contains(p Point, epsilon float64) bool {
	return flpCompare(p.X, b.Min.X, epsilon) >= 0 && flpCompare(p.X, b.Max.X, epsilon) <= 0 &&
		flpCompare(p.Y, b.Min.Y, epsilon) >= 0 && flpCompare(p.Y, b.Max.Y, epsilon) <= 0
}

// overlap returns the bounding box of the overlap between a and b, and
// false if they do not overlap at all. The result may collapse to a
// horizontal segment, vertical segment, or a single point.
func (a bbox) overlap(b bbox, epsilon float64) (bbox, bool) {
	minX := math.Max(a.Min.X, b.Min.X)
	maxX := math.Min(a.Max.X, b.Max.X)
	if flpLT(maxX, minX, epsilon) {
		return bbox{}, false
	}
	minY := math.Max(a.Min.Y, b.Min.Y)
	maxY := math.Min(a.Max.Y, b.Max.Y)
	if flpLT(maxY, minY, epsilon) {
		return bbox{}, false
	}
	return bbox{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}, true
}

// corners returns the unique corner points of b, collapsing to fewer than
// four when the box degenerates to a line or a point.
func (b bbox) corners(epsilon float64) []Point {
	pts := []Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
	out := make([]Point, 0, 4)
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if arePointsEqual(p, q, epsilon) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
