package measures

import (
	"math"

	"github.com/npillmayer/segtree"
)

// MinMax aggregates the minimum and maximum over a span of values.
//
// The neutral element keeps Min at its largest and Max at its smallest
// possible value, so empty spans never win a comparison. Deltas on the
// neutral element are meaningless; seed trees before adding.
type MinMax struct {
	Min, Max int64
}

// MinMaxOf folds int64 values into MinMax aggregates.
type MinMaxOf struct{}

// Zero returns the neutral aggregate.
func (MinMaxOf) Zero() MinMax {
	return MinMax{Min: math.MaxInt64, Max: math.MinInt64}
}

// FromValue creates the aggregate for a single slot.
func (MinMaxOf) FromValue(at int, value int64) MinMax {
	return MinMax{Min: value, Max: value}
}

// Join combines two adjacent aggregates.
func (MinMaxOf) Join(left, right MinMax) MinMax {
	return MinMax{
		Min: min(left.Min, right.Min),
		Max: max(left.Max, right.Max),
	}
}

// MinMaxOps applies SetAdd operations to MinMax aggregates.
type MinMaxOps struct{}

// Apply transforms the aggregate of a whole span.
func (MinMaxOps) Apply(agg MinMax, op SetAdd, span segtree.Span) MinMax {
	if op.set {
		return MinMax{Min: op.arg, Max: op.arg}
	}
	return MinMax{Min: agg.Min + op.arg, Max: agg.Max + op.arg}
}

// Compose merges two operations targeting the same span, earlier first.
func (MinMaxOps) Compose(earlier, later SetAdd, span segtree.Span) SetAdd {
	return earlier.andThen(later)
}
