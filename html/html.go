/*
Package html renders range trees as nested HTML lists, mainly for
inspecting tree state in documentation and debugging sessions.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
)

// Write renders the node structure of a tree as nested unordered lists.
// Every node becomes a list item carrying its span and aggregate, with its
// children as a sub-list. Nodes holding a deferred operation carry it as a
// trailing annotation. Aggregate and operation values are formatted with %v
// and HTML-escaped.
func Write[V, A, O any](w io.Writer, t *segtree.Tree[V, A, O]) error {
	if t == nil {
		return fmt.Errorf("%w: tree is nil", segtree.ErrInvalidConfig)
	}
	nodes := make(map[int]segtree.NodeInfo[A, O])
	t.EachNode(func(info segtree.NodeInfo[A, O]) bool {
		nodes[info.ID] = info
		return true
	})
	if _, err := io.WriteString(w, "<ul class=\"segtree\">\n"); err != nil {
		return err
	}
	if err := writeNode(w, nodes, 1, 1); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</ul>\n")
	return err
}

// writeNode emits the list item for heap slot id, recursing into the slots
// of its children.
func writeNode[A, O any](w io.Writer, nodes map[int]segtree.NodeInfo[A, O], id int, depth int) error {
	info, ok := nodes[id]
	if !ok {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	label := fmt.Sprintf("%s %v", info.Span, info.Agg)
	if info.HasPending {
		label += fmt.Sprintf(" pending %v", info.Pending)
	}
	if info.Leaf {
		_, err := fmt.Fprintf(w, "%s<li>@%d %s</li>\n", indent, info.Span.From, html.EscapeString(label))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s<li>%s\n%s<ul>\n", indent, html.EscapeString(label), indent); err != nil {
		return err
	}
	if err := writeNode(w, nodes, 2*id, depth+1); err != nil {
		return err
	}
	if err := writeNode(w, nodes, 2*id+1, depth+1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s</ul>\n%s</li>\n", indent, indent)
	return err
}
