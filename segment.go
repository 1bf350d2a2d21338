package polybool

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
)

// Segment is an undirected geometric edge with two endpoints. It stores
// the Ring it originated from, the active-status neighbour it had when it
// became active (prev), and — once the sweep has classified it — the
// boundary-membership sets spec.md §4.7 describes. Per Design Notes
// (spec.md §9), these are computed eagerly at the single point in the
// sweep where prev stabilises, rather than lazily cached and invalidated.
type Segment struct {
	id int64

	leftSE, rightSE *SweepEvent

	ringIn  *Ring
	ringOut *Ring

	prev *Segment

	classified             bool
	sweepLineEntersRingVal bool
	ringsOnEdgeOf          *hashset.Set
	ringsEntering          *hashset.Set
	ringsExiting           *hashset.Set
	ringsInsideOf          *hashset.Set
	isValidEdgeForPoly     bool
	slEntersPoly           bool
	slExitsPoly            bool
	polysInsideOf          *hashset.Set
	multiPolysInsideOf     *hashset.Set
	multiPolysSLPEnters    *hashset.Set
	multiPolysSLPExits     *hashset.Set
	isInResult             bool
}

// newSegment canonicalises p and q into leftSE/rightSE via comparePoints
// and fails if they are tolerantly equal (spec.md §4.3, invariant "a
// Segment never has arePointsEqual(left, right)").
func newSegment(id int64, p, q Point, ringIn *Ring, epsilon float64) (*Segment, error) {
	if arePointsEqual(p, q, epsilon) {
		return nil, ErrDegenerateSegment
	}
	left, right := p, q
	if comparePoints(p, q, epsilon) > 0 {
		left, right = q, p
	}
	s := &Segment{id: id, ringIn: ringIn}
	s.leftSE = &SweepEvent{Point: left, isLeft: true, segment: s}
	s.rightSE = &SweepEvent{Point: right, isLeft: false, segment: s}
	return s, nil
}

// Points returns the segment's two endpoints, left then right.
func (s *Segment) Points() (Point, Point) { return s.leftSE.Point, s.rightSE.Point }

// BBox returns the segment's axis-aligned bounding box.
func (s *Segment) BBox() bbox { return newBBox(s.leftSE.Point, s.rightSE.Point) }

// Vector returns the segment's direction vector, from left to right.
func (s *Segment) Vector() Point { return sub(s.rightSE.Point, s.leftSE.Point) }

// IsVertical reports whether the segment's two endpoints share an x.
func (s *Segment) IsVertical(epsilon float64) bool {
	return flpEQ(s.leftSE.Point.X, s.rightSE.Point.X, epsilon)
}

// yAt linearly interpolates the segment's y at x, clamping to the nearer
// endpoint's y outside the segment's own x range.
func (s *Segment) yAt(x, epsilon float64) float64 {
	if s.IsVertical(epsilon) {
		return s.leftSE.Point.Y
	}
	if flpCompare(x, s.leftSE.Point.X, epsilon) <= 0 {
		return s.leftSE.Point.Y
	}
	if flpCompare(x, s.rightSE.Point.X, epsilon) >= 0 {
		return s.rightSE.Point.Y
	}
	t := (x - s.leftSE.Point.X) / (s.rightSE.Point.X - s.leftSE.Point.X)
	return s.leftSE.Point.Y + t*(s.rightSE.Point.Y-s.leftSE.Point.Y)
}

// IsPointOn reports whether p lies within the segment's bbox and is
// colinear with its two endpoints.
func (s *Segment) IsPointOn(p Point, epsilon float64) bool {
	if !s.BBox().contains(p, epsilon) {
		return false
	}
	return compareVectorAngles(p, s.leftSE.Point, s.rightSE.Point, epsilon) == 0
}

// IsColinearWith reports whether both endpoints of other are colinear with
// self's line.
func (s *Segment) IsColinearWith(other *Segment, epsilon float64) bool {
	return compareVectorAngles(other.leftSE.Point, s.leftSE.Point, s.rightSE.Point, epsilon) == 0 &&
		compareVectorAngles(other.rightSE.Point, s.leftSE.Point, s.rightSE.Point, epsilon) == 0
}

// IsCoincidentWith reports whether self and other have tolerantly-equal
// endpoint pairs.
func (s *Segment) IsCoincidentWith(other *Segment, epsilon float64) bool {
	return arePointsEqual(s.leftSE.Point, other.leftSE.Point, epsilon) &&
		arePointsEqual(s.rightSE.Point, other.rightSE.Point, epsilon)
}

// IsPointAbove reports whether p is strictly above self's line; an
// endpoint of self is itself neither above nor below.
func (s *Segment) IsPointAbove(p Point, epsilon float64) bool {
	return compareVectorAngles(p, s.leftSE.Point, s.rightSE.Point, epsilon) > 0
}

// IsPointBelow reports whether p is strictly below self's line.
func (s *Segment) IsPointBelow(p Point, epsilon float64) bool {
	return compareVectorAngles(p, s.leftSE.Point, s.rightSE.Point, epsilon) < 0
}

func isEndpointOf(p Point, s *Segment, epsilon float64) bool {
	return arePointsEqual(p, s.leftSE.Point, epsilon) || arePointsEqual(p, s.rightSE.Point, epsilon)
}

// GetIntersections implements spec.md §4.5: bbox-overlap corners that are
// endpoints of either segment and lie on the other are reported exactly
// (no rounding); failing that, the general parameterised intersection is
// solved and the two near-equal estimates are averaged.
func (s *Segment) GetIntersections(other *Segment, epsilon float64) []Point {
	ov, ok := s.BBox().overlap(other.BBox(), epsilon)
	if !ok {
		return nil
	}

	var corners []Point
	for _, p := range ov.corners(epsilon) {
		if !isEndpointOf(p, s, epsilon) && !isEndpointOf(p, other, epsilon) {
			continue
		}
		if s.IsPointOn(p, epsilon) && other.IsPointOn(p, epsilon) {
			corners = appendUniquePoint(corners, p, epsilon)
		}
	}
	if len(corners) > 0 {
		sort.Slice(corners, func(i, j int) bool {
			return comparePoints(corners[i], corners[j], epsilon) < 0
		})
		return corners
	}

	r := s.Vector()
	sv := other.Vector()
	rxs := cross(r, sv)
	if flpEQ(rxs, 0, epsilon) {
		return nil
	}
	qp := sub(other.leftSE.Point, s.leftSE.Point)
	t := cross(qp, sv) / rxs
	u := cross(qp, r) / rxs
	if flpLT(t, 0, epsilon) || flpLT(1, t, epsilon) {
		return nil
	}
	if flpLT(u, 0, epsilon) || flpLT(1, u, epsilon) {
		return nil
	}
	p1 := add(s.leftSE.Point, scale(r, t))
	p2 := add(other.leftSE.Point, scale(sv, u))
	return []Point{scale(add(p1, p2), 0.5)}
}

func appendUniquePoint(pts []Point, p Point, epsilon float64) []Point {
	for _, q := range pts {
		if arePointsEqual(p, q, epsilon) {
			return pts
		}
	}
	return append(pts, p)
}

// split mutates self and creates one new segment per split point, per
// spec.md §4.6. Points are deduplicated and sorted first; splitting on an
// existing endpoint is a fatal ErrSplitOnEndpoint. It returns every new
// SweepEvent created (self.rightSE's replacement plus each new segment's
// leftSE), to be pushed onto the event queue by the caller.
func (s *Segment) split(points []Point, epsilon float64, nextID func() int64) ([]*SweepEvent, error) {
	pts := dedupeSortPoints(points, epsilon)
	for _, p := range pts {
		if isEndpointOf(p, s, epsilon) {
			return nil, ErrSplitOnEndpoint
		}
	}
	if len(pts) == 0 {
		return nil, nil
	}

	p := pts[0]
	newSeg := &Segment{id: nextID(), ringIn: s.ringIn}

	inheritedRight := s.rightSE
	inheritedRight.segment = newSeg
	newSeg.rightSE = inheritedRight
	newSeg.leftSE = &SweepEvent{Point: p, isLeft: true, segment: newSeg}

	s.rightSE = &SweepEvent{Point: p, isLeft: false, segment: s}

	events := []*SweepEvent{s.rightSE, newSeg.leftSE}
	if len(pts) > 1 {
		more, err := newSeg.split(pts[1:], epsilon, nextID)
		if err != nil {
			return nil, err
		}
		events = append(events, more...)
	}
	return events, nil
}

func dedupeSortPoints(points []Point, epsilon float64) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return comparePoints(sorted[i], sorted[j], epsilon) < 0
	})
	out := sorted[:0:0]
	for _, p := range sorted {
		if len(out) == 0 || !arePointsEqual(p, out[len(out)-1], epsilon) {
			out = append(out, p)
		}
	}
	return out
}

// registerPrev sets the active-status neighbour a segment had when it
// became active. It is set exactly once, at the point spec.md §4.9
// describes, and never mutated afterward.
func (s *Segment) registerPrev(prev *Segment) { s.prev = prev }

// registerRingOut assigns the output ring a result segment was stitched
// into. This is the only mutation of a Segment that happens outside the
// sweep itself (spec.md §3: "assigned during result stitching").
func (s *Segment) registerRingOut(r *Ring) { s.ringOut = r }

// Compare implements spec.md §4.3's total order over the active segments
// in the status structure. An OrderingError signals the "any residual
// case" spec.md §7 calls an internal ordering failure — in practice a
// predicate bug or NaN input.
func (a *Segment) Compare(b *Segment, epsilon float64) (int, error) {
	if a == b {
		return 0, nil
	}

	if flpLT(a.rightSE.Point.X, b.leftSE.Point.X, epsilon) {
		return 1, nil
	}
	if flpLT(b.rightSE.Point.X, a.leftSE.Point.X, epsilon) {
		return -1, nil
	}

	if a.IsColinearWith(b, epsilon) {
		if c := flpCompare(a.leftSE.Point.X, b.leftSE.Point.X, epsilon); c != 0 {
			return c, nil
		}
		if a.ringIn != nil && b.ringIn != nil && a.ringIn.id != b.ringIn.id {
			if a.ringIn.id < b.ringIn.id {
				return -1, nil
			}
			return 1, nil
		}
		return 0, nil
	}

	if arePointsEqual(a.leftSE.Point, b.leftSE.Point, epsilon) {
		if a.IsPointBelow(b.rightSE.Point, epsilon) {
			return 1, nil
		}
		if a.IsPointAbove(b.rightSE.Point, epsilon) {
			return -1, nil
		}
	}

	if flpEQ(a.leftSE.Point.X, b.leftSE.Point.X, epsilon) {
		if c := flpCompare(a.leftSE.Point.Y, b.leftSE.Point.Y, epsilon); c != 0 {
			return c, nil
		}
	}

	xAt := math.Max(a.leftSE.Point.X, b.leftSE.Point.X)
	if c := flpCompare(a.yAt(xAt, epsilon), b.yAt(xAt, epsilon), epsilon); c != 0 {
		return c, nil
	}

	return 0, &OrderingError{A: a, B: b}
}
