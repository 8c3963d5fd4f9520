package segtree

// NodeInfo is a read-only snapshot of one tree node for inspection tools.
type NodeInfo[A, O any] struct {
	// ID is the heap slot of the node; the root is 1, children of k are
	// 2k and 2k+1.
	ID   int
	Span Span
	Agg  A
	// Pending is only meaningful when HasPending is set.
	Pending    O
	HasPending bool
	Leaf       bool
}

// EachNode walks all nodes in pre-order, parents before children.
//
// The walk is strictly read-only: no pending operations are pushed down, so
// the snapshots expose the internal lazy state as-is. Iteration stops early
// if the callback returns false.
func (t *Tree[V, A, O]) EachNode(fn func(info NodeInfo[A, O]) bool) {
	if t == nil || fn == nil {
		return
	}
	t.eachNode(1, t.rootSpan(), fn)
}

func (t *Tree[V, A, O]) eachNode(k int, node Span, fn func(info NodeInfo[A, O]) bool) bool {
	info := NodeInfo[A, O]{
		ID:         k,
		Span:       node,
		Agg:        t.agg[k],
		Pending:    t.pend[k],
		HasPending: t.hasPend[k],
		Leaf:       node.Single(),
	}
	if !fn(info) {
		return false
	}
	if info.Leaf {
		return true
	}
	if !t.eachNode(left(k), node.LeftHalf(), fn) {
		return false
	}
	return t.eachNode(right(k), node.RightHalf(), fn)
}
