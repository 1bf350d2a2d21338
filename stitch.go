package polybool

import "math"

// stitch is the external ring-stitching collaborator spec.md §6 names:
// it walks every segment with isInResult == true into oriented Rings,
// pairs holes with their enclosing exterior by point-in-polygon
// containment, and assembles the final MultiPoly. This is explicitly
// named out of the core's scope in spec.md §1 ("final ring-stitching...
// consume only the interfaces defined in §6"); it is implemented here so
// the module is a complete, usable library, not because it is part of
// the sweep engine itself.
//
// Each result segment contributes one directed edge, oriented so the
// poly's filled interior is always on the edge's left: left-to-right when
// the sweep line enters the poly there, right-to-left when it exits. A
// planar face-trace then follows those directed edges — at a vertex where
// more than one unused outgoing edge is available, the edge requiring the
// smallest clockwise turn from the reverse of the arriving edge (the
// sharpest left turn, which keeps to the current face) is chosen — until
// each loop closes. A loop's signed area decides
// whether it is an exterior (positive, CCW) or a hole (negative, CW),
// matching the convention go-clipper2's port package also uses.
func stitch(segments []*Segment, epsilon float64) *MultiPoly {
	type dirEdge struct {
		from, to Point
		seg      *Segment
	}

	var edges []dirEdge
	for _, seg := range segments {
		if !seg.isInResult {
			continue
		}
		left, right := seg.Points()
		if seg.slEntersPoly {
			edges = append(edges, dirEdge{from: left, to: right, seg: seg})
		} else {
			edges = append(edges, dirEdge{from: right, to: left, seg: seg})
		}
	}
	if len(edges) == 0 {
		return NewMultiPoly()
	}

	type vertex struct {
		point    Point
		outgoing []int
	}
	var vertices []vertex
	findOrAddVertex := func(p Point) int {
		for i := range vertices {
			if arePointsEqual(vertices[i].point, p, epsilon) {
				return i
			}
		}
		vertices = append(vertices, vertex{point: p})
		return len(vertices) - 1
	}
	for i, e := range edges {
		vi := findOrAddVertex(e.from)
		vertices[vi].outgoing = append(vertices[vi].outgoing, i)
		findOrAddVertex(e.to)
	}

	pickNext := func(vertexIdx int, incomingDir Point, used []bool) int {
		refAngle := math.Atan2(-incomingDir.Y, -incomingDir.X)
		best, bestDelta := -1, math.Inf(-1)
		for _, idx := range vertices[vertexIdx].outgoing {
			if used[idx] {
				continue
			}
			dir := sub(edges[idx].to, edges[idx].from)
			delta := math.Atan2(dir.Y, dir.X) - refAngle
			for delta <= 0 {
				delta += 2 * math.Pi
			}
			for delta > 2*math.Pi {
				delta -= 2 * math.Pi
			}
			if delta > bestDelta {
				bestDelta, best = delta, idx
			}
		}
		return best
	}

	used := make([]bool, len(edges))
	var rings []*Ring
	ringMembers := make(map[*Ring][]*Segment)

	for start := range edges {
		if used[start] {
			continue
		}
		var loopPoints []Point
		var members []*Segment

		cur := start
		used[cur] = true
		loopPoints = append(loopPoints, edges[cur].from)
		members = append(members, edges[cur].seg)
		firstVertex := findOrAddVertex(edges[start].from)
		curVertex := findOrAddVertex(edges[cur].to)

		for steps := 0; curVertex != firstVertex && steps <= len(edges); steps++ {
			next := pickNext(curVertex, sub(edges[cur].to, edges[cur].from), used)
			if next < 0 {
				break
			}
			used[next] = true
			loopPoints = append(loopPoints, edges[next].from)
			members = append(members, edges[next].seg)
			cur = next
			curVertex = findOrAddVertex(edges[cur].to)
		}

		if len(loopPoints) < 3 {
			continue
		}
		isExterior := signedArea(loopPoints) > 0
		ring, err := NewRing(loopPoints, isExterior, epsilon)
		if err != nil {
			continue
		}
		rings = append(rings, ring)
		ringMembers[ring] = members
	}

	var exteriors, holes []*Ring
	for _, r := range rings {
		if r.IsExterior {
			exteriors = append(exteriors, r)
		} else {
			holes = append(holes, r)
		}
	}

	polys := make([]*Poly, len(exteriors))
	for i, ext := range exteriors {
		polys[i] = NewPoly(ext)
	}
	for _, h := range holes {
		owner := smallestEnclosing(h, exteriors)
		if owner == nil {
			// No enclosing exterior found (degenerate input); treat as its
			// own region rather than dropping it silently.
			polys = append(polys, NewPoly(h))
			continue
		}
		for i, ext := range exteriors {
			if ext == owner {
				polys[i].Holes = append(polys[i].Holes, h)
				h.Poly = polys[i]
				break
			}
		}
	}

	result := NewMultiPoly(polys...)
	for _, r := range rings {
		for _, seg := range ringMembers[r] {
			seg.registerRingOut(r)
		}
	}
	return result
}

// signedArea computes twice the shoelace-formula signed area of a closed
// polygon's vertex list; positive for a CCW ring, negative for CW.
func signedArea(points []Point) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// pointInRing reports whether p lies inside ring using the even-odd
// ray-casting rule.
func pointInRing(p Point, ring *Ring) bool {
	inside := false
	pts := ring.Points
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// smallestEnclosing returns the exterior ring in candidates that contains
// hole h's first point and has the smallest area among those that do —
// the tightest enclosing exterior, so nested exteriors pick the right
// owner for a hole between them.
func smallestEnclosing(h *Ring, candidates []*Ring) *Ring {
	var best *Ring
	bestArea := math.Inf(1)
	if len(h.Points) == 0 {
		return nil
	}
	probe := h.Points[0]
	for _, ext := range candidates {
		if !pointInRing(probe, ext) {
			continue
		}
		area := math.Abs(signedArea(ext.Points))
		if area < bestArea {
			bestArea, best = area, ext
		}
	}
	return best
}
