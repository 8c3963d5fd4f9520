package segtree

import "fmt"

// Check validates structural tree invariants.
//
// The checker verifies storage sizing, that leaves hold no pending
// operations, and that every inner node aggregate is consistent with its
// children under eq: clean nodes must equal the join of their children, and
// nodes carrying a pending operation must equal that join with the pending
// operation applied. This checker is intentionally strict and should be used
// in tests.
func (t *Tree[V, A, O]) Check(eq func(a, b A) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if eq == nil {
		return fmt.Errorf("%w: equality predicate is required", ErrInvalidConfig)
	}
	if t.size < 1 {
		return fmt.Errorf("%w: size=%d", ErrInvalidSize, t.size)
	}
	slots := 4*t.size + 1
	if len(t.agg) != slots || len(t.pend) != slots || len(t.hasPend) != slots {
		return fmt.Errorf("%w: storage sized %d/%d/%d, want %d",
			ErrInvalidSize, len(t.agg), len(t.pend), len(t.hasPend), slots)
	}
	return t.checkNode(1, t.rootSpan(), eq)
}

func (t *Tree[V, A, O]) checkNode(k int, node Span, eq func(a, b A) bool) error {
	if node.Single() {
		if t.hasPend[k] {
			return fmt.Errorf("%w: leaf %s holds a pending operation", ErrInvalidConfig, node)
		}
		return nil
	}
	joined := t.cfg.Agg.Join(t.agg[left(k)], t.agg[right(k)])
	if t.hasPend[k] {
		if t.cfg.Ops == nil {
			return fmt.Errorf("%w: node %s pending without an operator", ErrInvalidConfig, node)
		}
		joined = t.cfg.Ops.Apply(joined, t.pend[k], node)
	}
	if !eq(t.agg[k], joined) {
		return fmt.Errorf("%w: node %s aggregate inconsistent with children", ErrInvalidConfig, node)
	}
	if err := t.checkNode(left(k), node.LeftHalf(), eq); err != nil {
		return err
	}
	return t.checkNode(right(k), node.RightHalf(), eq)
}
