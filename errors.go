package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvalidSize signals a non-positive tree size.
	ErrInvalidSize = errors.New("segtree: invalid tree size")
	// ErrSizeMismatch signals that a value count does not match the tree size.
	ErrSizeMismatch = errors.New("segtree: value count does not match tree size")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrBuilderDone signals that a builder has already materialized a tree and
	// it is illegal to stage further values.
	ErrBuilderDone = errors.New("segtree: builder has been completed")
	// ErrInvalidDimension signals an invalid or missing dimension configuration.
	ErrInvalidDimension = errors.New("segtree: invalid dimension")
)
