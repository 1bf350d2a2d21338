package polybool

// coincidenceIndex groups Segments that share both endpoints tolerantly
// (spec.md §4.7) using a union-find over segment ids, per Design Notes'
// recommendation to replace the teacher source's shared-mutable-list
// approach. The winner of a group is the member with the smallest
// ringIn.id; only the winner may ever be marked isInResult.
type coincidenceIndex struct {
	parent  map[int64]int64
	members map[int64][]*Segment
}

func newCoincidenceIndex() *coincidenceIndex {
	return &coincidenceIndex{
		parent:  make(map[int64]int64),
		members: make(map[int64][]*Segment),
	}
}

func (c *coincidenceIndex) ensure(seg *Segment) {
	if _, ok := c.parent[seg.id]; !ok {
		c.parent[seg.id] = seg.id
		c.members[seg.id] = []*Segment{seg}
	}
}

func (c *coincidenceIndex) find(id int64) int64 {
	parent, ok := c.parent[id]
	if !ok || parent == id {
		return id
	}
	root := c.find(parent)
	c.parent[id] = root
	return root
}

// union merges a's and b's coincidence groups. It is idempotent: calling
// it again for segments already in the same group is a no-op.
func (c *coincidenceIndex) union(a, b *Segment) {
	c.ensure(a)
	c.ensure(b)
	ra, rb := c.find(a.id), c.find(b.id)
	if ra == rb {
		return
	}
	ma, mb := c.members[ra], c.members[rb]
	if len(ma) < len(mb) {
		ra, rb = rb, ra
		ma, mb = mb, ma
	}
	c.parent[rb] = ra
	c.members[ra] = append(ma, mb...)
	delete(c.members, rb)
}

// group returns every segment coincident with seg, including seg itself.
func (c *coincidenceIndex) group(seg *Segment) []*Segment {
	c.ensure(seg)
	return c.members[c.find(seg.id)]
}

// winner returns the coincidence-group representative eligible to be
// marked isInResult: the member with the smallest ringIn.id.
func (c *coincidenceIndex) winner(seg *Segment) *Segment {
	group := c.group(seg)
	best := group[0]
	for _, s := range group[1:] {
		if s.ringIn.id < best.ringIn.id {
			best = s
		}
	}
	return best
}

// isWinner reports whether seg is its coincidence group's winner.
func (c *coincidenceIndex) isWinner(seg *Segment) bool {
	return c.winner(seg) == seg
}
