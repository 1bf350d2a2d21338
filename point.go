package polybool

import "math"

// Point is an ordered pair in the plane. Equality between two Points is
// always tolerant (see flpEQ) rather than exact: the sweep never compares
// raw coordinates with ==.
type Point struct {
	X, Y float64
}

// flpEQ reports whether a and b are equal within a tolerance relative to
// their magnitude.
func flpEQ(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	mag := 1.0
	if ax := math.Abs(a); ax > mag {
		mag = ax
	}
	if bx := math.Abs(b); bx > mag {
		mag = bx
	}
	return math.Abs(a-b) <= epsilon*mag
}

// flpLT reports whether a is strictly less than b once tolerant equality
// has been ruled out.
func flpLT(a, b, epsilon float64) bool {
	return a < b && !flpEQ(a, b, epsilon)
}

// flpCompare returns -1, 0, or 1 for a compared to b under the same
// tolerance flpEQ and flpLT use.
func flpCompare(a, b, epsilon float64) int {
	if flpEQ(a, b, epsilon) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// arePointsEqual reports whether p and q are the same point within
// epsilon on both axes.
func arePointsEqual(p, q Point, epsilon float64) bool {
	return flpEQ(p.X, q.X, epsilon) && flpEQ(p.Y, q.Y, epsilon)
}

// comparePoints totally orders points lexicographically on (x, y): smaller
// x first, ties broken by smaller y. This is the order that defines
// "leftmost" for the sweep (spec §4.2).
func comparePoints(p, q Point, epsilon float64) int {
	if c := flpCompare(p.X, q.X, epsilon); c != 0 {
		return c
	}
	return flpCompare(p.Y, q.Y, epsilon)
}

// cross is the 2D cross product u.x*v.y - u.y*v.x. Its sign gives the
// orientation of the turn from u to v.
func cross(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

// sub returns p - q as a vector.
func sub(p, q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// add returns p + q.
func add(p, q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// scale returns p scaled by t.
func scale(p Point, t float64) Point {
	return Point{X: p.X * t, Y: p.Y * t}
}

// compareVectorAngles returns sign(cross(b-a, p-a)): positive if p is
// above the directed line a->b, negative if below, zero if colinear.
func compareVectorAngles(p, a, b Point, epsilon float64) int {
	c := cross(sub(b, a), sub(p, a))
	if flpEQ(c, 0, epsilon) {
		return 0
	}
	if c > 0 {
		return 1
	}
	return -1
}
