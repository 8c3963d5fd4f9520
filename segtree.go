package segtree

import (
	"fmt"
)

// Tree is a fixed-size range aggregation tree with deferred range updates.
//
// V is the leaf value type, A the aggregate type and O the update operation
// type. A tree covers the index range [0, n-1] and stores one aggregate per
// node in an implicit heap layout: the root occupies slot 1, the children of
// slot k occupy slots 2k and 2k+1. Every node aggregate already reflects the
// node's own pending operation; only the nodes below it still have to
// receive it.
//
// Trees are not safe for concurrent use.
type Tree[V, A, O any] struct {
	cfg     Config[V, A, O]
	size    int
	agg     []A    // node aggregates, 1-indexed heap layout
	pend    []O    // pending operation per node
	hasPend []bool // whether pend[k] holds an operation
}

// New creates a tree over the index range [0, n-1] with validated
// configuration. Every slot starts out holding the aggregator's neutral
// value; use Build or NewFromValues to seed content.
func New[V, A, O any](cfg Config[V, A, O], n int) (*Tree[V, A, O], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	cfg = cfg.normalized()
	t := &Tree[V, A, O]{
		cfg:     cfg,
		size:    n,
		agg:     make([]A, 4*n+1),
		pend:    make([]O, 4*n+1),
		hasPend: make([]bool, 4*n+1),
	}
	zero := cfg.Agg.Zero()
	for k := range t.agg {
		t.agg[k] = zero
	}
	return t, nil
}

// NewFromValues creates a tree seeded with values; the tree size is
// len(values).
func NewFromValues[V, A, O any](cfg Config[V, A, O], values []V) (*Tree[V, A, O], error) {
	t, err := New(cfg, len(values))
	if err != nil {
		return nil, err
	}
	if err := t.Build(values); err != nil {
		return nil, err
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V, A, O]) Config() Config[V, A, O] {
	return t.cfg
}

// Size returns the number of value slots.
func (t *Tree[V, A, O]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Aggregate returns the aggregate over the whole index range in O(1).
func (t *Tree[V, A, O]) Aggregate() A {
	return t.agg[1]
}

// Build seeds the tree with one value per slot, replacing all previous
// content and dropping all pending operations. Runs in O(n).
func (t *Tree[V, A, O]) Build(values []V) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if len(values) != t.size {
		return fmt.Errorf("%w: got %d values for size %d", ErrSizeMismatch, len(values), t.size)
	}
	t.build(1, t.rootSpan(), values)
	return nil
}

func (t *Tree[V, A, O]) build(k int, node Span, values []V) {
	t.hasPend[k] = false
	if node.Single() {
		t.agg[k] = t.cfg.Agg.FromValue(node.From, values[node.From])
		return
	}
	t.build(left(k), node.LeftHalf(), values)
	t.build(right(k), node.RightHalf(), values)
	t.agg[k] = t.cfg.Agg.Join(t.agg[left(k)], t.agg[right(k)])
}

// Query returns the aggregate over the target range [i, j].
//
// Ranges reaching outside [0, Size()-1] contribute nothing for the part that
// misses the tree, and a range with j < i yields the aggregator's neutral
// value. Neither case is an error. Query pushes pending operations down as
// it descends but never changes observable content.
func (t *Tree[V, A, O]) Query(i, j int) A {
	return t.query(1, t.rootSpan(), Span{From: i, To: j})
}

func (t *Tree[V, A, O]) query(k int, node Span, target Span) A {
	if node.Disjoint(target) {
		return t.cfg.Agg.Zero()
	}
	if target.Covers(node) {
		return t.agg[k]
	}
	t.flush(k, node)
	lhs := t.query(left(k), node.LeftHalf(), target)
	rhs := t.query(right(k), node.RightHalf(), target)
	return t.cfg.Agg.Join(lhs, rhs)
}

// Update applies op to every slot in the target range [i, j].
//
// Ranges that miss the tree entirely, or have j < i, change nothing. A
// subtree fully covered by the target absorbs op into its aggregate and
// records it as pending instead of descending to every leaf; later
// traversals push the recorded operation down on demand. On a tree
// configured without an Operator, Update is a no-op.
func (t *Tree[V, A, O]) Update(i, j int, op O) {
	if t.cfg.Ops == nil {
		return
	}
	t.update(1, t.rootSpan(), Span{From: i, To: j}, op)
}

func (t *Tree[V, A, O]) update(k int, node Span, target Span, op O) {
	if node.Disjoint(target) {
		return
	}
	if node.Single() {
		// Leaves take the operation directly and never record a pending.
		t.agg[k] = t.cfg.Ops.Apply(t.agg[k], op, node)
		return
	}
	if target.Covers(node) {
		t.agg[k] = t.cfg.Ops.Apply(t.agg[k], op, node)
		if t.hasPend[k] {
			t.pend[k] = t.cfg.Ops.Compose(t.pend[k], op, node)
		} else {
			t.pend[k] = op
			t.hasPend[k] = true
		}
		return
	}
	t.flush(k, node)
	mid := node.Mid()
	if target.From <= mid {
		t.update(left(k), node.LeftHalf(), target, op)
	}
	if target.To > mid {
		t.update(right(k), node.RightHalf(), target, op)
	}
	t.agg[k] = t.cfg.Agg.Join(t.agg[left(k)], t.agg[right(k)])
}

// flush pushes a node's recorded pending operation down to both children.
//
// The pending operation is re-issued as an update targeting the node's whole
// span, which covers either child completely: children absorb it into their
// aggregates and record it as their own pending (or apply it directly when
// they are leaves). The node's aggregate is unaffected, it already included
// the operation when it was recorded.
func (t *Tree[V, A, O]) flush(k int, node Span) {
	if !t.hasPend[k] {
		return
	}
	t.update(left(k), node.LeftHalf(), node, t.pend[k])
	t.update(right(k), node.RightHalf(), node, t.pend[k])
	t.hasPend[k] = false
}

func (t *Tree[V, A, O]) rootSpan() Span {
	return Span{From: 0, To: t.size - 1}
}

func left(k int) int  { return 2 * k }
func right(k int) int { return 2*k + 1 }
