package segtree

import "fmt"

// Dimension describes a seek dimension over aggregates.
//
// K is the dimension key/position type. Add accumulates aggregates from left
// to right; Compare must report a non-negative result exactly from the point
// where the accumulator reaches the seek target, and accumulation must be
// monotone with respect to Compare for seeks to be well-defined.
type Dimension[A any, K any] interface {
	Zero() K
	Add(acc K, agg A) K
	Compare(acc K, target K) int
}

// Cursor tracks seek positions in a tree along a given dimension.
type Cursor[V, A, O any, K any] struct {
	tree *Tree[V, A, O]
	dim  Dimension[A, K]
}

// NewCursor creates a cursor for a tree and a dimension.
func NewCursor[V, A, O any, K any](tree *Tree[V, A, O], dim Dimension[A, K]) (*Cursor[V, A, O, K], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	return &Cursor[V, A, O, K]{
		tree: tree,
		dim:  dim,
	}, nil
}

// Seek finds the first slot index at which the accumulated dimension reaches
// target. When the target is never reached, Seek returns the tree size and
// the total accumulated value.
func (c *Cursor[V, A, O, K]) Seek(target K) (index int, acc K, err error) {
	if c == nil || c.tree == nil || c.dim == nil {
		var zero K
		return 0, zero, fmt.Errorf("%w: cursor not initialized", ErrInvalidDimension)
	}
	zero := c.dim.Zero()
	if c.dim.Compare(zero, target) >= 0 {
		return 0, zero, nil
	}
	idx, reached, found := c.seekNode(1, c.tree.rootSpan(), zero, target)
	if found {
		return idx, reached, nil
	}
	return c.tree.Size(), reached, nil
}

// seekNode descends to the first leaf where the accumulated dimension
// reaches target.
//
// `acc` describes the prefix state before subtree k. Subtrees whose whole
// contribution stays below target are skipped via their node aggregate; the
// descent flushes pendings so that child aggregates are current.
func (c *Cursor[V, A, O, K]) seekNode(k int, node Span, acc K, target K) (idx int, reached K, found bool) {
	if node.Single() {
		next := c.dim.Add(acc, c.tree.agg[k])
		if c.dim.Compare(next, target) >= 0 {
			return node.From, next, true
		}
		return node.From + 1, next, false
	}
	c.tree.flush(k, node)
	withLeft := c.dim.Add(acc, c.tree.agg[left(k)])
	if c.dim.Compare(withLeft, target) >= 0 {
		return c.seekNode(left(k), node.LeftHalf(), acc, target)
	}
	return c.seekNode(right(k), node.RightHalf(), withLeft, target)
}
