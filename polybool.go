package polybool

// Union combines every operand: a point ends up in the result if it lies
// inside any one of them. Matches spec.md §4.8's Union row.
func Union(operands []*MultiPoly, opts ...Option) (*MultiPoly, error) {
	return run(&Operation{Type: Union, MultiPolys: operands}, opts...)
}

// Intersection keeps only the region covered by every operand.
func Intersection(operands []*MultiPoly, opts ...Option) (*MultiPoly, error) {
	return run(&Operation{Type: Intersection, MultiPolys: operands}, opts...)
}

// XOR keeps the region covered by an odd number of operands.
func XOR(operands []*MultiPoly, opts ...Option) (*MultiPoly, error) {
	return run(&Operation{Type: XOR, MultiPolys: operands}, opts...)
}

// Difference subtracts every clipping operand from subject. Returns
// ErrMissingSubject if subject is nil.
func Difference(subject *MultiPoly, clipping []*MultiPoly, opts ...Option) (*MultiPoly, error) {
	if subject == nil {
		return nil, ErrMissingSubject
	}
	operands := append([]*MultiPoly{subject}, clipping...)
	return run(&Operation{Type: Difference, MultiPolys: operands, Subject: subject}, opts...)
}

// run threads a Config through a full computation: sweep, then stitch.
func run(op *Operation, opts ...Option) (*MultiPoly, error) {
	cfg := newConfig(opts)
	segments, err := runSweep(op, cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	return stitch(segments, cfg.Epsilon), nil
}
