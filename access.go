package segtree

import "iter"

// At returns the aggregate for the single slot at index.
//
// Unlike Query, which tolerates arbitrary ranges, At treats an out-of-bounds
// index as an error.
func (t *Tree[V, A, O]) At(index int) (A, error) {
	var zero A
	if t == nil || index < 0 || index >= t.size {
		return zero, ErrIndexOutOfBounds
	}
	return t.atNode(1, t.rootSpan(), index), nil
}

func (t *Tree[V, A, O]) atNode(k int, node Span, index int) A {
	assert(node.From <= index && index <= node.To, "atNode index routing outside node span")
	if node.Single() {
		return t.agg[k]
	}
	t.flush(k, node)
	if index <= node.Mid() {
		return t.atNode(left(k), node.LeftHalf(), index)
	}
	return t.atNode(right(k), node.RightHalf(), index)
}

// EachLeaf walks slot aggregates in index order.
//
// Iteration stops early if the callback returns false. The walk pushes
// pending operations down on its way, which changes internal bookkeeping but
// not observable content.
func (t *Tree[V, A, O]) EachLeaf(fn func(index int, agg A) bool) {
	if t == nil || fn == nil {
		return
	}
	t.eachLeafNode(1, t.rootSpan(), fn)
}

func (t *Tree[V, A, O]) eachLeafNode(k int, node Span, fn func(index int, agg A) bool) bool {
	if node.Single() {
		return fn(node.From, t.agg[k])
	}
	t.flush(k, node)
	if !t.eachLeafNode(left(k), node.LeftHalf(), fn) {
		return false
	}
	return t.eachLeafNode(right(k), node.RightHalf(), fn)
}

// RangeLeaf returns an iterator over slot aggregates in index order.
func (t *Tree[V, A, O]) RangeLeaf() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		t.EachLeaf(yield)
	}
}
