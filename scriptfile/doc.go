/*
Package scriptfile reads protocol command scripts from disk.

A script is a plain text file with one command per line, in the shape the
repl package understands. Blank lines and lines starting with '#' are
skipped. Opening a script is synchronous, reading and parsing happen in the
background, and every parsed command is broadcast to subscribers as it
arrives.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package scriptfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
