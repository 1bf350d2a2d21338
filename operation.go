package polybool

// OperationType selects which Boolean set operation a sweep computes.
type OperationType int

const (
	// Union combines every operand; a segment survives if exactly one side
	// of it has no operand multipolygon at all.
	Union OperationType = iota
	// Intersection keeps only what every operand shares.
	Intersection
	// XOR keeps what an odd number of operands cover.
	XOR
	// Difference subtracts every clipping operand from Subject.
	Difference
)

// Operation describes a single Boolean computation: which operands
// participate, and — for Difference — which one is being subtracted from.
// Modeled as an explicit value threaded through the sweep rather than a
// module-level singleton (Design Notes, spec.md §9).
type Operation struct {
	Type       OperationType
	MultiPolys []*MultiPoly
	Subject    *MultiPoly
}

// isInResult implements spec.md §4.8's inclusion table. Only a
// coincidence-group winner may ever be included.
func isInResult(seg *Segment, op *Operation, ci *coincidenceIndex) (bool, error) {
	if !ci.isWinner(seg) {
		return false, nil
	}

	enters := seg.multiPolysSLPEnters.Size()
	exits := seg.multiPolysSLPExits.Size()

	switch op.Type {
	case Union:
		return (enters == 0) != (exits == 0), nil

	case Intersection:
		m := enters
		if exits > m {
			m = exits
		}
		return m == len(op.MultiPolys), nil

	case XOR:
		d := enters - exits
		if d < 0 {
			d = -d
		}
		return d%2 == 1, nil

	case Difference:
		if op.Subject == nil {
			return false, ErrMissingSubject
		}
		entersIsSubjectAlone := seg.multiPolysSLPEnters.Size() == 1 && seg.multiPolysSLPEnters.Contains(op.Subject)
		exitsIsSubjectAlone := seg.multiPolysSLPExits.Size() == 1 && seg.multiPolysSLPExits.Contains(op.Subject)
		return entersIsSubjectAlone != exitsIsSubjectAlone, nil

	default:
		return false, ErrUnknownOperation
	}
}
