package measures

import "github.com/npillmayer/segtree"

// First aggregates the leftmost value of a span.
//
// Join is intentionally not commutative: it keeps whichever operand covers
// the lower index range, which the tree always passes as left. Present
// distinguishes seeded spans from the neutral element.
type First struct {
	Value   int64
	Present bool
}

// FirstOf folds int64 values into leftmost-value aggregates.
type FirstOf struct{}

// Zero returns the neutral aggregate.
func (FirstOf) Zero() First { return First{} }

// FromValue creates the aggregate for a single slot.
func (FirstOf) FromValue(at int, value int64) First {
	return First{Value: value, Present: true}
}

// Join keeps the left operand when it is present.
func (FirstOf) Join(left, right First) First {
	if left.Present {
		return left
	}
	return right
}

// FirstOps applies SetAdd operations to First aggregates.
type FirstOps struct{}

// Apply transforms the aggregate of a whole span. A Set determines the
// leftmost value even for unseeded spans; an Add only shifts known values.
func (FirstOps) Apply(agg First, op SetAdd, span segtree.Span) First {
	if op.set {
		return First{Value: op.arg, Present: true}
	}
	if !agg.Present {
		return agg
	}
	return First{Value: agg.Value + op.arg, Present: true}
}

// Compose merges two operations targeting the same span, earlier first.
func (FirstOps) Compose(earlier, later SetAdd, span segtree.Span) SetAdd {
	return earlier.andThen(later)
}
