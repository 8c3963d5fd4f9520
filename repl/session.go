package repl

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/measures"
)

// DefaultSize is the slot count of sessions created for interactive use.
const DefaultSize = 100

// InvalidAnswer is the protocol answer for lines the session cannot act on.
const InvalidAnswer = "Invalid command."

// Session holds the tree state behind a command stream. Commands address a
// min/max tree over int64 slots which all start out at zero.
type Session struct {
	tree *segtree.Tree[int64, measures.MinMax, measures.SetAdd]
}

// NewSession creates a session over n zero-valued slots.
func NewSession(n int) (*Session, error) {
	tree, err := segtree.NewFromValues(segtree.Config[int64, measures.MinMax, measures.SetAdd]{
		Agg: measures.MinMaxOf{},
		Ops: measures.MinMaxOps{},
	}, make([]int64, n))
	if err != nil {
		return nil, err
	}
	return &Session{tree: tree}, nil
}

// Size returns the session's slot count.
func (s *Session) Size() int {
	return s.tree.Size()
}

// Tree exposes the session's tree, e.g. for rendering its current shape.
func (s *Session) Tree() *segtree.Tree[int64, measures.MinMax, measures.SetAdd] {
	return s.tree
}

// Exec runs a single command against the tree. Update commands answer with
// an empty string, query commands with the decimal aggregate value. Unknown
// command codes return ErrBadCommand.
func (s *Session) Exec(cmd Command) (string, error) {
	switch cmd.Code {
	case CodeSet:
		s.tree.Update(cmd.From, cmd.To, measures.Set(cmd.Arg))
		return "", nil
	case CodeAdd:
		s.tree.Update(cmd.From, cmd.To, measures.Add(cmd.Arg))
		return "", nil
	case CodeMin:
		agg := s.tree.Query(cmd.From, cmd.To)
		return strconv.FormatInt(agg.Min, 10), nil
	case CodeMax:
		agg := s.tree.Query(cmd.From, cmd.To)
		return strconv.FormatInt(agg.Max, 10), nil
	}
	return "", fmt.Errorf("%w: unknown command code %q", ErrBadCommand, cmd.Code)
}

// Do parses and executes one protocol line. Malformed lines and unknown
// command codes answer with the invalid-command message; update commands
// answer with the empty string.
func (s *Session) Do(line string) string {
	cmd, err := Parse(line)
	if err != nil {
		tracer().Debugf("rejected input line %q: %v", line, err)
		return InvalidAnswer
	}
	answer, err := s.Exec(cmd)
	if err != nil {
		tracer().Debugf("rejected command %q: %v", cmd, err)
		return InvalidAnswer
	}
	return answer
}
