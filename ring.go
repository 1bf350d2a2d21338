package polybool

import (
	"sync/atomic"

	"github.com/emirpasic/gods/sets/hashset"
)

// ringIDs is the monotonic id generator backing Ring.id. A single shared
// counter across computations is safe: rings are immutable once built and
// id uniqueness, not any mutable sweep state, is all concurrent
// computations share (spec.md §5).
var ringIDs atomic.Int64

// Ring is a closed, directed sequence of points belonging to one polygon,
// tagged as exterior or interior (hole). Its id is assigned once at
// construction and is used throughout the sweep as a deterministic
// tie-breaker (Design Notes, spec.md §9).
type Ring struct {
	id         int64
	Points     []Point
	IsExterior bool
	Poly       *Poly
}

// NewRing drops consecutive tolerantly-equal points and assigns a fresh
// monotonic id. Rings are stored open and treated as implicitly closed: a
// trailing point tolerantly equal to the first is dropped, and no closing
// point is appended. It returns ErrDegenerateRing if fewer than 3 distinct
// points remain after cleanup.
func NewRing(points []Point, isExterior bool, epsilon float64) (*Ring, error) {
	cleaned := dedupeConsecutive(points, epsilon)
	if len(cleaned) >= 2 && arePointsEqual(cleaned[0], cleaned[len(cleaned)-1], epsilon) {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		return nil, ErrDegenerateRing
	}
	return &Ring{
		id:         ringIDs.Add(1),
		Points:     cleaned,
		IsExterior: isExterior,
	}, nil
}

func dedupeConsecutive(points []Point, epsilon float64) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if !arePointsEqual(p, out[len(out)-1], epsilon) {
			out = append(out, p)
		}
	}
	return out
}

// ID returns the ring's stable, monotonically increasing identifier.
func (r *Ring) ID() int64 { return r.id }

// segments returns the directed edges of the ring as consecutive point
// pairs, wrapping from the last point back to the first.
func (r *Ring) segments() [][2]Point {
	n := len(r.Points)
	out := make([][2]Point, 0, n)
	for i := 0; i < n; i++ {
		a := r.Points[i]
		b := r.Points[(i+1)%n]
		out = append(out, [2]Point{a, b})
	}
	return out
}

// IsValid implements the interface spec.md §6 names: an exterior ring is
// valid unless it is found strictly inside its own poly's exterior (a
// self-intersecting ring that loops back inside itself — duplicate/nested
// exteriors are folded away); a hole is valid only when it lies inside its
// poly's exterior. entering && exiting both true means the ring's boundary
// folds back on itself at this exact edge (a zero-width sliver), which is
// never a valid edge for any poly.
func (r *Ring) IsValid(entering, exiting bool, ringsInsideOf *hashset.Set) bool {
	if entering && exiting {
		return false
	}
	if r.IsExterior {
		return !ringsInsideOf.Contains(r)
	}
	if r.Poly == nil {
		return false
	}
	return ringsInsideOf.Contains(r.Poly.Exterior)
}
