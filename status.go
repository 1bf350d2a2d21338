package polybool

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// Status is the sweep-line status structure: the set of Segments
// currently active (crossing the sweep line), ordered by Segment.Compare.
// It is implemented with a Red-Black Tree for O(log n) insert, remove,
// and neighbour lookups — the same structure and library the teacher
// sweep used for exactly this purpose.
type Status struct {
	tree    *rbt.Tree
	epsilon float64
	err     error
}

// NewStatus creates an empty status structure. Unlike the teacher's
// sweep-position-dependent comparator, ordering here depends only on each
// Segment's own geometry and ringIn.id (spec.md §4.3), so there is no
// per-event SetX step to remember to call.
func NewStatus(epsilon float64) *Status {
	s := &Status{epsilon: epsilon}
	s.tree = rbt.NewWith(func(a, b interface{}) int {
		c, err := a.(*Segment).Compare(b.(*Segment), s.epsilon)
		if err != nil && s.err == nil {
			s.err = err
		}
		return c
	})
	return s
}

// Err returns the first OrderingError (or other comparator error)
// encountered by any comparison since construction, or nil.
func (s *Status) Err() error { return s.err }

// Add inserts a segment into the status tree.
func (s *Status) Add(seg *Segment) { s.tree.Put(seg, true) }

// Remove deletes a segment from the status tree.
func (s *Status) Remove(seg *Segment) { s.tree.Remove(seg) }

// findSuccessor finds the in-order successor of a node (the next largest
// element).
func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

// findPredecessor finds the in-order predecessor of a node (the next
// smallest element).
func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}

// FindNeighbors returns the segments immediately above and below seg in
// the status tree, or nil for a side with no neighbour.
func (s *Status) FindNeighbors(seg *Segment) (above, below *Segment) {
	node := s.tree.GetNode(seg)
	if node == nil {
		return nil, nil
	}
	if predNode := findPredecessor(node); predNode != nil {
		below = predNode.Key.(*Segment)
	}
	if succNode := findSuccessor(node); succNode != nil {
		above = succNode.Key.(*Segment)
	}
	return above, below
}

// Size returns the number of currently active segments.
func (s *Status) Size() int { return s.tree.Size() }
