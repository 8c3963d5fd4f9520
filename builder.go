package segtree

import "fmt"

// Builder incrementally stages values and finalizes them into a Tree.
//
// Builder collects values front and back and materializes a tree only when
// BuildTree is called. Staging is cheap; the tree is seeded in one O(n) pass
// at materialization time.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[V any] struct {
	// front keeps prepended values in reverse logical order.
	front []V
	// back keeps appended values in logical order.
	back []V

	done bool
}

// NewBuilder creates a new and empty value builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// Len returns the number of staged values.
func (b *Builder[V]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// AppendValue appends one value to the staged build.
func (b *Builder[V]) AppendValue(v V) error {
	if b == nil {
		return fmt.Errorf("%w: nil builder", ErrInvalidConfig)
	}
	if b.done {
		return ErrBuilderDone
	}
	b.back = append(b.back, v)
	return nil
}

// AppendValues appends values in order to the staged build.
func (b *Builder[V]) AppendValues(values ...V) error {
	if b == nil {
		return fmt.Errorf("%w: nil builder", ErrInvalidConfig)
	}
	if b.done {
		return ErrBuilderDone
	}
	b.back = append(b.back, values...)
	return nil
}

// PrependValue prepends one value to the staged build.
func (b *Builder[V]) PrependValue(v V) error {
	if b == nil {
		return fmt.Errorf("%w: nil builder", ErrInvalidConfig)
	}
	if b.done {
		return ErrBuilderDone
	}
	b.front = append(b.front, v)
	return nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[V]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
}

// Values returns the staged values in logical order.
func (b *Builder[V]) Values() []V {
	if b == nil {
		return nil
	}
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]V, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// BuildTree materializes a builder's staged values into a tree.
//
// The builder is sealed afterwards: staging more values fails with
// ErrBuilderDone. BuildTree may be called again, also with a different
// configuration, and rebuilds from the same staged values.
func BuildTree[V, A, O any](b *Builder[V], cfg Config[V, A, O]) (*Tree[V, A, O], error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil builder", ErrInvalidConfig)
	}
	if b.Len() == 0 {
		tracer().Debugf("tree builder: no values staged")
		return nil, fmt.Errorf("%w: no values staged", ErrInvalidSize)
	}
	b.done = true
	return NewFromValues(cfg, b.Values())
}
