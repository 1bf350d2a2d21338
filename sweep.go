package polybool

// runSweep implements spec.md §4.9's main loop: decompose every ring of
// every operand into directed segments, seed the event queue with both
// endpoints of each, then repeatedly pop the leftmost pending event,
// maintaining the status structure and splitting on genuine interior
// intersections with the new segment's immediate neighbours.
//
// It returns every segment created during the sweep (initial and split),
// each with isInResult already decided, for the stitcher to consume.
func runSweep(op *Operation, epsilon float64) ([]*Segment, error) {
	var allSegments []*Segment
	var nextID int64

	newID := func() int64 {
		id := nextID
		nextID++
		return id
	}

	eq := newEventQueue(epsilon)

	for _, mp := range op.MultiPolys {
		for _, ring := range mp.Rings() {
			for _, edge := range ring.segments() {
				seg, err := newSegment(newID(), edge[0], edge[1], ring, epsilon)
				if err != nil {
					return nil, err
				}
				allSegments = append(allSegments, seg)
				eq.push(seg.leftSE)
				eq.push(seg.rightSE)
			}
		}
	}

	status := NewStatus(epsilon)
	ci := newCoincidenceIndex()

	splitOnto := func(seg *Segment, pts []Point) error {
		filtered := pts[:0:0]
		for _, p := range pts {
			if !isEndpointOf(p, seg, epsilon) {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return nil
		}
		events, err := seg.split(filtered, epsilon, newID)
		if err != nil {
			return err
		}
		for _, e := range events {
			if e.segment != seg {
				allSegments = append(allSegments, e.segment)
			}
			eq.push(e)
		}
		return nil
	}

	checkAndSplit := func(a, b *Segment) error {
		if a == nil || b == nil {
			return nil
		}
		pts := a.GetIntersections(b, epsilon)
		if len(pts) == 0 {
			return nil
		}
		if err := splitOnto(a, pts); err != nil {
			return err
		}
		if err := splitOnto(b, pts); err != nil {
			return err
		}
		return nil
	}

	for !eq.empty() {
		e, _ := eq.pop()

		if e.isLeft {
			logDebugf("left event at %+v for segment %d", e.Point, e.segment.id)
			seg := e.segment
			status.Add(seg)
			above, below := status.FindNeighbors(seg)
			if err := status.Err(); err != nil {
				return nil, err
			}
			seg.registerPrev(below)

			if err := checkAndSplit(seg, below); err != nil {
				return nil, err
			}
			if err := checkAndSplit(seg, above); err != nil {
				return nil, err
			}

			if below != nil && seg.IsCoincidentWith(below, epsilon) {
				ci.union(seg, below)
			}
			if above != nil && seg.IsCoincidentWith(above, epsilon) {
				ci.union(seg, above)
			}

			classify(seg, ci, epsilon)
			in, err := isInResult(seg, op, ci)
			if err != nil {
				return nil, err
			}
			seg.isInResult = in
		} else {
			logDebugf("right event at %+v for segment %d", e.Point, e.segment.id)
			seg := e.segment
			above, below := status.FindNeighbors(seg)
			if err := status.Err(); err != nil {
				return nil, err
			}
			status.Remove(seg)
			if err := checkAndSplit(above, below); err != nil {
				return nil, err
			}
		}
	}

	return allSegments, nil
}
