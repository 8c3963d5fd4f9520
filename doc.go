/*
Package segtree provides a generic range aggregation tree with deferred
(lazy) range updates, known in the algorithms literature as a segment tree
with lazy propagation.

A tree is created for a fixed index range [0, n-1] and maintains one
aggregate per contiguous sub-range in an implicit binary heap layout. The
index range is split at its midpoint on every level, so both queries and
range updates touch O(log n) nodes.

Clients configure a tree with two small capability objects. An Aggregator
turns leaf values into aggregates and joins adjacent aggregates; an Operator
applies range updates to aggregates and composes deferred updates. Package
measures ships ready-made instances (min/max, totals, value runs, exact
decimal totals) together with the matching set/add operations.

Lazy propagation means a range update covering a whole subtree does not
descend to every leaf. The subtree root absorbs the operation into its
aggregate and records it as pending; later traversals push pending
operations one level down as they descend. The cost of refining an update is
paid by the traversals that actually need the refined state.

Trees are not safe for concurrent use. Callers that share a tree across
goroutines must serialize access.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
