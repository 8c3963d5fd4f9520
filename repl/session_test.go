package repl

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	session, err := NewSession(n)
	if err != nil {
		t.Fatalf("NewSession(%d) failed: %v", n, err)
	}
	return session
}

// Drives the full set/add/min/max command cycle through the protocol,
// starting from the all-zero state and seeding slots one by one.
func TestSessionScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	session := newTestSession(t, 5)

	script := []struct {
		line string
		want string
	}{
		{"s 0 0 5", ""},
		{"s 1 1 3", ""},
		{"s 2 2 8", ""},
		{"s 3 3 1", ""},
		{"s 4 4 9", ""}, // slots now 5 3 8 1 9
		{"m 0 4 0", "1"},
		{"M 0 4 0", "9"},
		{"s 1 3 0", ""}, // slots now 5 0 0 0 9
		{"m 0 4 0", "0"},
		{"M 0 4 0", "9"},
		{"a 0 4 2", ""}, // slots now 7 2 2 2 11
		{"m 0 4 0", "2"},
		{"M 0 4 0", "11"},
		{"m 1 1 0", "2"},
		{"M 1 1 0", "2"},
	}
	for i, step := range script {
		if got := session.Do(step.line); got != step.want {
			t.Fatalf("step %d %q: got=%q want=%q", i, step.line, got, step.want)
		}
	}
}

func TestSessionStartsZeroed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	session := newTestSession(t, 100)

	if got := session.Do("m 0 99 0"); got != "0" {
		t.Errorf("initial min: got=%q want=%q", got, "0")
	}
	if got := session.Do("M 17 42 0"); got != "0" {
		t.Errorf("initial max: got=%q want=%q", got, "0")
	}
	if session.Size() != 100 {
		t.Errorf("size: got=%d want=100", session.Size())
	}
}

func TestSessionRejectsUnknownCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	session := newTestSession(t, 10)

	if _, err := session.Exec(Command{Code: 'x', From: 0, To: 4, Arg: 1}); !errors.Is(err, ErrBadCommand) {
		t.Errorf("Exec with unknown code: expected ErrBadCommand, got %v", err)
	}
	if got := session.Do("x 0 4 1"); got != InvalidAnswer {
		t.Errorf("Do with unknown code: got=%q want=%q", got, InvalidAnswer)
	}
	if got := session.Do("nonsense"); got != InvalidAnswer {
		t.Errorf("Do with malformed line: got=%q want=%q", got, InvalidAnswer)
	}
}

func TestSessionRejectsInvalidSize(t *testing.T) {
	if _, err := NewSession(0); err == nil {
		t.Errorf("NewSession(0) should fail")
	}
}
