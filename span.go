package segtree

import "fmt"

// Span is an inclusive index interval [From, To].
//
// Spans with To < From cover no indices. They are legal as query and update
// targets and behave as covering nothing; node spans produced by splitting
// are never empty.
type Span struct {
	From, To int
}

// NewSpan creates the inclusive interval [from, to].
func NewSpan(from, to int) Span {
	return Span{From: from, To: to}
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	if s.To < s.From {
		return 0
	}
	return s.To - s.From + 1
}

// Empty reports whether the span covers no indices.
func (s Span) Empty() bool {
	return s.To < s.From
}

// Single reports whether the span covers exactly one index.
func (s Span) Single() bool {
	return s.From == s.To
}

// Mid returns the split index for descending: the left half is [From, Mid],
// the right half [Mid+1, To].
func (s Span) Mid() int {
	return (s.From + s.To) / 2
}

// LeftHalf returns the lower half after splitting at Mid.
func (s Span) LeftHalf() Span {
	return Span{From: s.From, To: s.Mid()}
}

// RightHalf returns the upper half after splitting at Mid.
func (s Span) RightHalf() Span {
	return Span{From: s.Mid() + 1, To: s.To}
}

// Covers reports whether s fully contains other.
func (s Span) Covers(other Span) bool {
	return s.From <= other.From && other.To <= s.To
}

// Disjoint reports whether s and other share no index.
func (s Span) Disjoint(other Span) bool {
	return other.To < s.From || other.From > s.To
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.From, s.To)
}
