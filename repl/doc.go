/*
Package repl implements the line-oriented command protocol for driving a
range tree interactively.

Every input line carries four tokens

	<code> <start> <end> <arg>

where code selects the action: 's' assigns arg to every slot of the range,
'a' adds arg to every slot, 'm' and 'M' answer the minimum respectively
maximum over the range. Anything else is answered with an invalid-command
message. Sessions run over a min/max tree with every slot starting at zero.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package repl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
