package segtree

import "testing"

// total is the house aggregate for engine tests: a running sum over int
// values.
type total struct {
	Sum int
}

type totalsAgg struct{}

func (totalsAgg) Zero() total                       { return total{} }
func (totalsAgg) FromValue(at int, value int) total { return total{Sum: value} }
func (totalsAgg) Join(left, right total) total      { return total{Sum: left.Sum + right.Sum} }

// shift adds a delta to every slot of a span.
type shift struct {
	Delta int
}

type shiftOps struct{}

func (shiftOps) Apply(agg total, op shift, span Span) total {
	return total{Sum: agg.Sum + op.Delta*span.Len()}
}

func (shiftOps) Compose(earlier, later shift, span Span) shift {
	return shift{Delta: earlier.Delta + later.Delta}
}

// countingOps wraps shiftOps and counts Apply invocations, to observe how
// far updates and flushes actually descend.
type countingOps struct {
	applies *int
}

func (c countingOps) Apply(agg total, op shift, span Span) total {
	*c.applies++
	return shiftOps{}.Apply(agg, op, span)
}

func (c countingOps) Compose(earlier, later shift, span Span) shift {
	return shiftOps{}.Compose(earlier, later, span)
}

// affine maps every slot value v to Scale*v + Offset. Composition of two
// affines is order-sensitive, which makes it the fixture of choice for
// pending-composition tests.
type affine struct {
	Scale, Offset int
}

type affineOps struct{}

func (affineOps) Apply(agg total, op affine, span Span) total {
	return total{Sum: op.Scale*agg.Sum + op.Offset*span.Len()}
}

func (affineOps) Compose(earlier, later affine, span Span) affine {
	return affine{
		Scale:  later.Scale * earlier.Scale,
		Offset: later.Scale*earlier.Offset + later.Offset,
	}
}

func newTotalsTree(t *testing.T, values []int) *Tree[int, total, shift] {
	t.Helper()
	tree, err := NewFromValues(Config[int, total, shift]{
		Agg: totalsAgg{},
		Ops: shiftOps{},
	}, values)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	return tree
}

func totalsEq(a, b total) bool { return a == b }

func sumOf(values []int, i, j int) int {
	s := 0
	for k := max(i, 0); k <= j && k < len(values); k++ {
		s += values[k]
	}
	return s
}
