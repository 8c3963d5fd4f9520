package segtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes carrying a pending operation are highlighted and show the operation
// below their aggregate. Node identifiers are the heap slots, so dumps of
// the same tree shape are stable across runs.
func Tree2Dot[V, A, O any](t *Tree[V, A, O], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	t.EachNode(func(info NodeInfo[A, O]) bool {
		styles := nodeDotStyles(info)
		if info.Leaf {
			label := fmt.Sprintf("@%d\\n%v", info.Span.From, info.Agg)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
			return true
		}
		label := fmt.Sprintf("%s\\n%v", info.Span, info.Agg)
		if info.HasPending {
			label += fmt.Sprintf("\\n~%v", info.Pending)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.ID, left(info.ID))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.ID, right(info.ID))
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles[A, O any](info NodeInfo[A, O]) string {
	s := ",style=filled"
	if info.Leaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
		if info.HasPending {
			s += ",fillcolor=\"#FFAA66\""
		} else {
			s += ",fillcolor=\"#a3d7e4\""
		}
	}
	return s
}
