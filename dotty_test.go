package segtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := newTotalsTree(t, []int{1, 2, 3, 4})
	tree.Update(0, 3, shift{Delta: 1})

	var sb strings.Builder
	Tree2Dot(tree, &sb)
	dot := sb.String()

	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Fatalf("missing digraph header: %q", dot[:min(len(dot), 40)])
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Fatalf("missing closing brace")
	}

	inner, leaves := 0, 0
	tree.EachNode(func(info NodeInfo[total, shift]) bool {
		if info.Leaf {
			leaves++
		} else {
			inner++
		}
		return true
	})
	if leaves != 4 {
		t.Fatalf("expected 4 leaves, got %d", leaves)
	}
	if got := strings.Count(dot, "->"); got != 2*inner {
		t.Fatalf("edge count: got=%d want=%d", got, 2*inner)
	}
	// The whole-range update is still pending at the root.
	if !strings.Contains(dot, "~") {
		t.Fatalf("pending marker missing from dump")
	}
}
