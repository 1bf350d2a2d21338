package polybool

import "github.com/emirpasic/gods/queues/priorityqueue"

// eventQueue is the ordered set of pending SweepEvents spec.md §4.4
// describes. It is built on gods' priority queue — the same collections
// library the status structure already uses — rather than a hand-rolled
// container/heap wrapper, so the "ordered set" spec.md asks for is backed
// by a dedicated ordered-collection type end to end.
type eventQueue struct {
	q *priorityqueue.Queue
}

func newEventQueue(epsilon float64) *eventQueue {
	return &eventQueue{
		q: priorityqueue.NewWith(func(a, b interface{}) int {
			return compareEvents(a.(*SweepEvent), b.(*SweepEvent), epsilon)
		}),
	}
}

func (eq *eventQueue) push(e *SweepEvent) { eq.q.Enqueue(e) }

func (eq *eventQueue) pop() (*SweepEvent, bool) {
	v, ok := eq.q.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*SweepEvent), true
}

func (eq *eventQueue) peek() (*SweepEvent, bool) {
	v, ok := eq.q.Peek()
	if !ok {
		return nil, false
	}
	return v.(*SweepEvent), true
}

func (eq *eventQueue) empty() bool { return eq.q.Empty() }
func (eq *eventQueue) size() int   { return eq.q.Size() }
