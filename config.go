package segtree

import "fmt"

// Aggregator defines how leaf values enter the tree and how aggregates are
// combined up the tree.
//
// For aggregates a, b, c, Join should be associative:
//
//	Join(Join(a, b), c) == Join(a, Join(b, c))
//
// and Zero should be the neutral element:
//
//	Join(Zero(), a) == a == Join(a, Zero())
//
// Join always receives the operand covering the lower index range as left,
// so implementations need not be commutative.
type Aggregator[V, A any] interface {
	Zero() A
	FromValue(at int, value V) A
	Join(left, right A) A
}

// Operator defines range update operations over aggregates.
//
// Apply transforms the aggregate of a whole span in one step. Compose merges
// two operations targeting the same span into one, with earlier applied
// before later:
//
//	Apply(Apply(a, earlier, s), later, s) == Apply(a, Compose(earlier, later, s), s)
//
// Compose is not commutative. An absolute assignment as the later operand
// discards the earlier operation entirely, while as the earlier operand it
// stays visible underneath the later operation's delta.
type Operator[A, O any] interface {
	Apply(agg A, op O, span Span) A
	Compose(earlier, later O, span Span) O
}

// Config configures a lazy range aggregation tree.
type Config[V, A, O any] struct {
	// Agg folds values into aggregates; required.
	Agg Aggregator[V, A]
	// Ops applies range updates to aggregates. A nil Ops creates a query-only
	// tree on which every Update is a no-op.
	Ops Operator[A, O]
}

func (cfg Config[V, A, O]) normalized() Config[V, A, O] {
	return cfg
}

func (cfg Config[V, A, O]) validate() error {
	cfg = cfg.normalized()
	if cfg.Agg == nil {
		return fmt.Errorf("%w: aggregator is required", ErrInvalidConfig)
	}
	return nil
}

// NoOps is an explicit Operator for trees that never receive range updates.
//
// It is equivalent to leaving Config.Ops nil, but lets query-only trees state
// their operation type as struct{}.
type NoOps[A any] struct{}

// Apply returns the aggregate unchanged.
func (NoOps[A]) Apply(agg A, op struct{}, span Span) A { return agg }

// Compose returns the empty operation.
func (NoOps[A]) Compose(earlier, later struct{}, span Span) struct{} { return struct{}{} }
