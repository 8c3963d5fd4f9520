package measures

import "github.com/npillmayer/segtree"

// Runs aggregates the longest run of equal adjacent values in a span.
//
// Joining two spans may glue a run ending at the left span's right edge to
// a run starting at the right span's left edge, so the aggregate carries
// both edge runs alongside the winner. Len is the number of slots covered;
// a Len of zero marks the neutral element.
type Runs struct {
	Longest  int
	LeftLen  int
	RightLen int
	LeftVal  int64
	RightVal int64
	Len      int
}

// RunsOf folds int64 values into longest-run aggregates.
type RunsOf struct{}

// Zero returns the neutral aggregate.
func (RunsOf) Zero() Runs { return Runs{} }

// FromValue creates the aggregate for a single slot.
func (RunsOf) FromValue(at int, value int64) Runs {
	return Runs{
		Longest:  1,
		LeftLen:  1,
		RightLen: 1,
		LeftVal:  value,
		RightVal: value,
		Len:      1,
	}
}

// Join glues two adjacent aggregates, left covering the lower indices.
func (RunsOf) Join(left, right Runs) Runs {
	if left.Len == 0 {
		return right
	}
	if right.Len == 0 {
		return left
	}
	joined := Runs{
		LeftLen:  left.LeftLen,
		RightLen: right.RightLen,
		LeftVal:  left.LeftVal,
		RightVal: right.RightVal,
		Len:      left.Len + right.Len,
	}
	glued := 0
	if left.RightVal == right.LeftVal {
		glued = left.RightLen + right.LeftLen
		if left.LeftLen == left.Len {
			joined.LeftLen = left.Len + right.LeftLen
		}
		if right.RightLen == right.Len {
			joined.RightLen = right.Len + left.RightLen
		}
	}
	joined.Longest = max(left.Longest, right.Longest, glued)
	return joined
}

// RunsOps applies SetAdd operations to Runs aggregates.
type RunsOps struct{}

// Apply transforms the aggregate of a whole span. A Set collapses the span
// into a single run; an Add shifts every value uniformly, which keeps the
// run structure intact and only moves the edge values.
func (RunsOps) Apply(agg Runs, op SetAdd, span segtree.Span) Runs {
	if op.set {
		l := span.Len()
		return Runs{
			Longest:  l,
			LeftLen:  l,
			RightLen: l,
			LeftVal:  op.arg,
			RightVal: op.arg,
			Len:      l,
		}
	}
	if agg.Len == 0 {
		return agg
	}
	agg.LeftVal += op.arg
	agg.RightVal += op.arg
	return agg
}

// Compose merges two operations targeting the same span, earlier first.
func (RunsOps) Compose(earlier, later SetAdd, span segtree.Span) SetAdd {
	return earlier.andThen(later)
}
