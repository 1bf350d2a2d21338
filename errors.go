package polybool

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal taxonomy of spec.md §7. Every case here is
// a programmer/invariant violation, not a user-recoverable condition: the
// computation aborts with no partial result.
var (
	errDegenerateSegment = errors.New("segment endpoints are tolerantly equal")
	// ErrDegenerateSegment is returned when a Segment is constructed from two
	// tolerantly-equal points.
	ErrDegenerateSegment = fmt.Errorf("polybool: %w", errDegenerateSegment)

	errSplitOnEndpoint = errors.New("split point equals an existing segment endpoint")
	// ErrSplitOnEndpoint is returned when Segment.split is asked to split at a
	// point that already is one of the segment's endpoints.
	ErrSplitOnEndpoint = fmt.Errorf("polybool: %w", errSplitOnEndpoint)

	errUnknownOperation = errors.New("unknown operation type")
	// ErrUnknownOperation is returned for an Operation whose Type is none of
	// Union, Intersection, Difference, XOR.
	ErrUnknownOperation = fmt.Errorf("polybool: %w", errUnknownOperation)

	errForeignEvent = errors.New("event does not belong to this segment")
	// ErrForeignEvent is returned by SweepEvent.OtherEvent when called on an
	// event that is neither the segment's leftSE nor its rightSE.
	ErrForeignEvent = fmt.Errorf("polybool: %w", errForeignEvent)

	errMissingSubject = errors.New("difference requires a subject multipolygon")
	// ErrMissingSubject is returned when an Operation of type Difference has
	// no Subject set.
	ErrMissingSubject = fmt.Errorf("polybool: %w", errMissingSubject)

	errDegenerateRing = errors.New("ring has fewer than 3 distinct points")
	// ErrDegenerateRing is returned by NewRing when, after closing the ring
	// and deduplicating consecutive tolerantly-equal points, fewer than 3
	// distinct vertices remain.
	ErrDegenerateRing = fmt.Errorf("polybool: %w", errDegenerateRing)
)

// OrderingError reports that Segment.Compare could not decide an order
// between two distinct, non-identical active segments — spec.md §7's
// "internal ordering failure", almost always a sign of a predicate bug or
// NaN input.
type OrderingError struct {
	A, B *Segment
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("polybool: internal ordering failure between segment %d and segment %d",
		e.A.id, e.B.id)
}
