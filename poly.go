package polybool

import "github.com/emirpasic/gods/sets/hashset"

// Poly is an ordered collection of one exterior ring and zero-or-more
// interior (hole) rings, and knows its parent MultiPoly.
type Poly struct {
	Exterior  *Ring
	Holes     []*Ring
	MultiPoly *MultiPoly
}

// NewPoly builds a Poly from an already-constructed exterior ring and
// holes, wiring the parent links both directions.
func NewPoly(exterior *Ring, holes ...*Ring) *Poly {
	exterior.IsExterior = true
	p := &Poly{Exterior: exterior, Holes: holes}
	exterior.Poly = p
	for _, h := range holes {
		h.IsExterior = false
		h.Poly = p
	}
	return p
}

// Rings returns every ring belonging to the poly, exterior first.
func (p *Poly) Rings() []*Ring {
	out := make([]*Ring, 0, 1+len(p.Holes))
	out = append(out, p.Exterior)
	out = append(out, p.Holes...)
	return out
}

// IsInside implements the interface spec.md §6 names: true iff a segment
// classified as inside p's exterior and inside none of p's holes, and not
// lying on the edge of any of p's own rings (which would otherwise
// double-count a boundary segment as also being "inside" its own poly).
func (p *Poly) IsInside(ringsOnEdgeOf, ringsInsideOf *hashset.Set) bool {
	if ringsOnEdgeOf.Contains(p.Exterior) {
		return false
	}
	for _, h := range p.Holes {
		if ringsOnEdgeOf.Contains(h) {
			return false
		}
	}
	if !ringsInsideOf.Contains(p.Exterior) {
		return false
	}
	for _, h := range p.Holes {
		if ringsInsideOf.Contains(h) {
			return false
		}
	}
	return true
}
