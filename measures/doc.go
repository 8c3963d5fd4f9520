/*
Package measures provides some pre-manufactured aggregates and range
operations for segment trees.

Aggregate families come in pairs: a stateless aggregator (MinMaxOf, SumOf,
FirstOf, RunsOf, DecimalSumOf) and a matching operator (MinMaxOps, SumOps,
FirstOps, RunsOps, DecimalSumOps) that applies SetAdd-style range updates to
the family's aggregates. Dimensions (SumPrefix, MinReach) make the families
seekable through segtree cursors.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package measures

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
