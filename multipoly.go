package polybool

// MultiPoly is a set of Polys treated as a single geometric operand. It
// carries no subject/clipping tag; which operand is the subject of a
// Difference is recorded in Operation.Subject.
type MultiPoly struct {
	Polys []*Poly
}

// NewMultiPoly wires the parent link from each Poly back to the returned
// MultiPoly.
func NewMultiPoly(polys ...*Poly) *MultiPoly {
	mp := &MultiPoly{Polys: polys}
	for _, p := range polys {
		p.MultiPoly = mp
	}
	return mp
}

// Rings returns every ring across every poly in the multipolygon.
func (mp *MultiPoly) Rings() []*Ring {
	var out []*Ring
	for _, p := range mp.Polys {
		out = append(out, p.Rings()...)
	}
	return out
}
