package measures

import "github.com/npillmayer/segtree"

// Sum aggregates the total over a span of values.
type Sum struct {
	Total int64
}

// SumOf folds int64 values into running totals.
type SumOf struct{}

// Zero returns the neutral aggregate.
func (SumOf) Zero() Sum { return Sum{} }

// FromValue creates the aggregate for a single slot.
func (SumOf) FromValue(at int, value int64) Sum {
	return Sum{Total: value}
}

// Join combines two adjacent aggregates.
func (SumOf) Join(left, right Sum) Sum {
	return Sum{Total: left.Total + right.Total}
}

// SumOps applies SetAdd operations to Sum aggregates.
//
// Apply is span-size aware: assigning v to a span of length l yields the
// total v*l, adding d shifts the total by d*l.
type SumOps struct{}

// Apply transforms the aggregate of a whole span.
func (SumOps) Apply(agg Sum, op SetAdd, span segtree.Span) Sum {
	l := int64(span.Len())
	if op.set {
		return Sum{Total: op.arg * l}
	}
	return Sum{Total: agg.Total + op.arg*l}
}

// Compose merges two operations targeting the same span, earlier first.
func (SumOps) Compose(earlier, later SetAdd, span segtree.Span) SetAdd {
	return earlier.andThen(later)
}
