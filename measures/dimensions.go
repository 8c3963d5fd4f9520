package measures

import "math"

// SumPrefix seeks by prefix total over Sum aggregates. Seeking target t
// finds the first slot at which the running total reaches t. Accumulation
// is only monotone when slot values are non-negative; with negative slots
// seek results are unspecified.
type SumPrefix struct{}

// Zero returns the starting accumulator.
func (SumPrefix) Zero() int64 { return 0 }

// Add accumulates a span's total into the running prefix.
func (SumPrefix) Add(acc int64, agg Sum) int64 { return acc + agg.Total }

// Compare orders the accumulator against the seek target.
func (SumPrefix) Compare(acc, target int64) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	}
	return 0
}

// MinReach seeks by running minimum over MinMax aggregates. Seeking target
// t finds the first slot at which a value of t or below has been seen. The
// accumulator shrinks monotonically from Zero downwards, so the comparison
// is inverted: the target counts as reached once the accumulated minimum
// drops to t or below.
type MinReach struct{}

// Zero returns the starting accumulator, above every slot value.
func (MinReach) Zero() int64 { return math.MaxInt64 }

// Add accumulates a span's minimum into the running minimum.
func (MinReach) Add(acc int64, agg MinMax) int64 { return min(acc, agg.Min) }

// Compare orders the accumulator against the seek target, inverted.
func (MinReach) Compare(acc, target int64) int {
	switch {
	case acc > target:
		return -1
	case acc < target:
		return 1
	}
	return 0
}
