package scriptfile

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree/repl"
)

func TestLoadCollectsCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	script, err := Load("testdata/demo.script")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	commands := script.Commands()
	if len(commands) != 12 {
		t.Fatalf("command count: got=%d want=12", len(commands))
	}
	if commands[0].String() != "s 0 0 5" {
		t.Errorf("first command: got=%q", commands[0])
	}
	if commands[11].String() != "M 0 4 0" {
		t.Errorf("last command: got=%q", commands[11])
	}
	if err := script.Err(); err != nil {
		t.Errorf("clean script reported error: %v", err)
	}
	if script.Path() != "testdata/demo.script" {
		t.Errorf("path: got=%q", script.Path())
	}
}

func TestSubscribeSeesWholeScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	script, err := Load("testdata/demo.script")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var received []repl.Command
	for cmd := range script.Subscribe() {
		received = append(received, cmd)
	}
	want := script.Commands()
	if len(received) != len(want) {
		t.Fatalf("received %d commands, want %d", len(received), len(want))
	}
	for i := range want {
		if received[i] != want[i] {
			t.Fatalf("command %d: got=%v want=%v", i, received[i], want[i])
		}
	}
}

// A subscriber attaching after parsing finished still sees the entire
// script, replayed from the record.
func TestSubscribeAfterParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	script, err := Load("testdata/demo.script")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	script.Wait()
	var count int
	for range script.Subscribe() {
		count++
	}
	if count != 12 {
		t.Fatalf("late subscriber saw %d commands, want 12", count)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	script, err := Load("testdata/dirty.script")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	commands := script.Commands()
	if len(commands) != 3 {
		t.Fatalf("command count: got=%d want=3", len(commands))
	}
	if err := script.Err(); !errors.Is(err, repl.ErrBadCommand) {
		t.Errorf("expected ErrBadCommand from dirty script, got %v", err)
	}
}

func TestLoadRejectsMissingAndIrregularFiles(t *testing.T) {
	if _, err := Load("testdata/no-such.script"); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := Load("testdata"); err == nil {
		t.Errorf("expected error for directory")
	}
}

func TestReplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	session, err := repl.NewSession(5)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	answers, err := Replay("testdata/demo.script", session)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	want := []string{"1", "9", "0", "2", "11"}
	if len(answers) != len(want) {
		t.Fatalf("answers: got=%v want=%v", answers, want)
	}
	for i := range want {
		if answers[i] != want[i] {
			t.Fatalf("answer %d: got=%q want=%q", i, answers[i], want[i])
		}
	}
}

func TestReplayAnswersInvalidForUnknownCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	session, err := repl.NewSession(5)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	answers, err := Replay("testdata/dirty.script", session)
	if !errors.Is(err, repl.ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand, got %v", err)
	}
	want := []string{"7", repl.InvalidAnswer}
	if len(answers) != len(want) || answers[0] != want[0] || answers[1] != want[1] {
		t.Fatalf("answers: got=%v want=%v", answers, want)
	}
}
