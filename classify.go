package polybool

import "github.com/emirpasic/gods/sets/hashset"

// classify computes every per-segment derived value spec.md §4.7 names, in
// the single dependency order each depends on the last. Per Design Notes
// (spec.md §9) this runs once, eagerly, at the point in the sweep where
// seg.prev has just stabilised (after status insertion and any
// intersection-driven splits of seg, and after coincidence with its
// neighbours has been registered) — there is no lazy-cache invalidation
// discipline to maintain because nothing is ever recomputed.
func classify(seg *Segment, ci *coincidenceIndex, epsilon float64) {
	seg.sweepLineEntersRingVal = sweepLineEntersRing(seg)

	group := ci.group(seg)
	seg.ringsOnEdgeOf = hashset.New()
	seg.ringsEntering = hashset.New()
	seg.ringsExiting = hashset.New()
	for _, c := range group {
		seg.ringsOnEdgeOf.Add(c.ringIn)
		if c == seg {
			if seg.sweepLineEntersRingVal {
				seg.ringsEntering.Add(c.ringIn)
			} else {
				seg.ringsExiting.Add(c.ringIn)
			}
			continue
		}
		if c.sweepLineEntersRingVal {
			seg.ringsEntering.Add(c.ringIn)
		} else {
			seg.ringsExiting.Add(c.ringIn)
		}
	}

	seg.ringsInsideOf = computeRingsInsideOf(seg, ci, epsilon)

	seg.isValidEdgeForPoly = seg.ringIn.IsValid(
		seg.ringsEntering.Contains(seg.ringIn),
		seg.ringsExiting.Contains(seg.ringIn),
		seg.ringsInsideOf,
	)
	if seg.isValidEdgeForPoly {
		seg.slEntersPoly = seg.ringIn.IsExterior == seg.sweepLineEntersRingVal
		seg.slExitsPoly = !seg.slEntersPoly
	}

	seg.polysInsideOf = computePolysInsideOf(seg)

	seg.multiPolysInsideOf = hashset.New()
	for _, v := range seg.polysInsideOf.Values() {
		p := v.(*Poly)
		if p.MultiPoly != nil {
			seg.multiPolysInsideOf.Add(p.MultiPoly)
		}
	}

	seg.multiPolysSLPEnters = hashset.New()
	seg.multiPolysSLPExits = hashset.New()
	for _, v := range seg.multiPolysInsideOf.Values() {
		seg.multiPolysSLPEnters.Add(v)
		seg.multiPolysSLPExits.Add(v)
	}
	for _, c := range group {
		if !c.isValidEdgeForPoly || c.ringIn.Poly == nil || c.ringIn.Poly.MultiPoly == nil {
			continue
		}
		mp := c.ringIn.Poly.MultiPoly
		if c.slEntersPoly {
			seg.multiPolysSLPEnters.Add(mp)
		}
		if c.slExitsPoly {
			seg.multiPolysSLPExits.Add(mp)
		}
	}

	seg.classified = true
}

// sweepLineEntersRing walks seg.prev, skipping segments from other rings,
// to find the nearest already-active segment from the same ring. With no
// such segment below, the ring's boundary is being entered for the first
// time; otherwise entries and exits alternate.
func sweepLineEntersRing(seg *Segment) bool {
	cur := seg.prev
	for cur != nil && (cur.ringIn == nil || seg.ringIn == nil || cur.ringIn.id != seg.ringIn.id) {
		cur = cur.prev
	}
	if cur == nil {
		return true
	}
	return !cur.sweepLineEntersRingVal
}

// computeRingsInsideOf implements spec.md §4.7's inheritance rule: direct
// copy from a coincident prev, otherwise prev's ringsInsideOf adjusted by
// prev's ringsEntering/ringsExiting, minus self's own ringsOnEdgeOf.
func computeRingsInsideOf(seg *Segment, ci *coincidenceIndex, epsilon float64) *hashset.Set {
	result := hashset.New()
	if seg.prev != nil {
		if ci.find(seg.prev.id) == ci.find(seg.id) {
			for _, v := range seg.prev.ringsInsideOf.Values() {
				result.Add(v)
			}
		} else {
			for _, v := range seg.prev.ringsInsideOf.Values() {
				result.Add(v)
			}
			for _, v := range seg.prev.ringsEntering.Values() {
				result.Add(v)
			}
			for _, v := range seg.prev.ringsExiting.Values() {
				result.Remove(v)
			}
		}
	}
	for _, v := range seg.ringsOnEdgeOf.Values() {
		result.Remove(v)
	}
	return result
}

// computePolysInsideOf groups ringsInsideOf by Poly and keeps only the
// candidates Poly.IsInside confirms (spec.md §4.7's "prevents
// double-counting when on a ring edge").
func computePolysInsideOf(seg *Segment) *hashset.Set {
	candidates := make(map[*Poly]bool)
	for _, v := range seg.ringsInsideOf.Values() {
		r := v.(*Ring)
		if r.Poly != nil {
			candidates[r.Poly] = true
		}
	}
	out := hashset.New()
	for p := range candidates {
		if p.IsInside(seg.ringsOnEdgeOf, seg.ringsInsideOf) {
			out.Add(p)
		}
	}
	return out
}
