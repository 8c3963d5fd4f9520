package segtree

import "testing"

func TestSpanGeometry(t *testing.T) {
	s := NewSpan(2, 9)
	if s.Len() != 8 {
		t.Fatalf("Len: got=%d want=8", s.Len())
	}
	if s.Empty() || s.Single() {
		t.Fatalf("span %s misclassified", s)
	}
	if s.Mid() != 5 {
		t.Fatalf("Mid: got=%d want=5", s.Mid())
	}
	if lh := s.LeftHalf(); lh != (Span{From: 2, To: 5}) {
		t.Fatalf("LeftHalf: got=%s", lh)
	}
	if rh := s.RightHalf(); rh != (Span{From: 6, To: 9}) {
		t.Fatalf("RightHalf: got=%s", rh)
	}
	if s.String() != "[2,9]" {
		t.Fatalf("String: got=%q", s.String())
	}
}

func TestSpanEmptyAndSingle(t *testing.T) {
	e := NewSpan(5, 4)
	if !e.Empty() || e.Len() != 0 {
		t.Fatalf("reversed span should be empty: %s", e)
	}
	one := NewSpan(3, 3)
	if !one.Single() || one.Len() != 1 {
		t.Fatalf("single span misclassified: %s", one)
	}
}

func TestSpanCoversAndDisjoint(t *testing.T) {
	type tc struct {
		a, b     Span
		covers   bool
		disjoint bool
	}
	cases := []tc{
		{a: NewSpan(0, 9), b: NewSpan(3, 5), covers: true, disjoint: false},
		{a: NewSpan(3, 5), b: NewSpan(0, 9), covers: false, disjoint: false},
		{a: NewSpan(0, 4), b: NewSpan(5, 9), covers: false, disjoint: true},
		{a: NewSpan(0, 4), b: NewSpan(4, 9), covers: false, disjoint: false},
		{a: NewSpan(2, 7), b: NewSpan(2, 7), covers: true, disjoint: false},
		{a: NewSpan(0, 9), b: NewSpan(4, 3), covers: true, disjoint: false}, // empty target: contained, but not disjoint per the traversal rules
	}
	for _, c := range cases {
		if got := c.a.Covers(c.b); got != c.covers {
			t.Fatalf("%s covers %s: got=%v want=%v", c.a, c.b, got, c.covers)
		}
		if got := c.a.Disjoint(c.b); got != c.disjoint {
			t.Fatalf("%s disjoint %s: got=%v want=%v", c.a, c.b, got, c.disjoint)
		}
	}
}
