package scriptfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree/repl"
)

// Script represents a protocol script file which is read in the background.
type Script struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle, closed by the background reader
	cast *caster.Caster // broadcaster for commands as they are parsed

	mx        sync.Mutex // guards commands and the broadcast against snapshots
	commands  []repl.Command
	lastError error

	closeOnce sync.Once
	done      chan struct{} // closed when the background reader is finished
}

// Load opens a script file and starts reading it in the background.
// Opening and stat-ing happen synchronously, so callers learn about missing
// or irregular files right away. Commands become available through
// Subscribe and, after parsing finished, through Commands.
func Load(name string) (*Script, error) {
	script, err := openScript(name)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loading script %q (%d bytes)", name, script.info.Size())
	go script.parse()
	return script, nil
}

// openScript opens an OS file and collects some useful information on it,
// checking for error conditions.
func openScript(name string) (*Script, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("script is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	script := &Script{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
	return script, nil
}

// parse is the background reader. It scans the file line by line, skips
// blank and comment lines, records every well-formed command and broadcasts
// it. Malformed lines are traced and remembered, then skipped.
func (s *Script) parse() {
	defer close(s.done)
	defer s.closeCast()
	defer s.file.Close()

	scanner := bufio.NewScanner(s.file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := repl.Parse(line)
		if err != nil {
			tracer().Errorf("%s:%d: %v", s.path, lineno, err)
			s.lastError = err
			continue
		}
		if !s.record(cmd) {
			return // broadcaster was closed, abandon the rest
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("reading %s: %v", s.path, err)
		s.lastError = err
	}
}

// record appends a command to the script's log and broadcasts it. Holding
// the lock across both keeps subscriber snapshots exact: a subscriber never
// misses a command and never sees one twice.
func (s *Script) record(cmd repl.Command) bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.commands = append(s.commands, cmd)
	return s.cast.Pub(cmd)
}

// Subscribe returns a channel yielding every command of the script in file
// order. Commands parsed before subscribing are replayed from the record,
// later ones arrive as the background reader broadcasts them. The channel
// is closed once the script is exhausted. Subscribers should drain the
// channel promptly.
func (s *Script) Subscribe() <-chan repl.Command {
	s.mx.Lock()
	snapshot := append([]repl.Command(nil), s.commands...)
	sub, live := s.cast.Sub(nil, 32)
	s.mx.Unlock()

	out := make(chan repl.Command, 32)
	go func() {
		defer close(out)
		for _, cmd := range snapshot {
			out <- cmd
		}
		if !live { // broadcaster already closed, the snapshot was complete
			return
		}
		defer s.cast.Unsub(sub)
		for m := range sub {
			if cmd, ok := m.(repl.Command); ok {
				out <- cmd
			}
		}
	}()
	return out
}

// Commands waits for the background reader to finish and returns all of the
// script's commands in file order.
func (s *Script) Commands() []repl.Command {
	<-s.done
	return s.commands
}

// Wait blocks until the background reader is finished with the script.
func (s *Script) Wait() {
	<-s.done
}

// Err waits for the background reader and reports the last problem it ran
// into, nil for a clean script.
func (s *Script) Err() error {
	<-s.done
	return s.lastError
}

// Path returns the name the script was loaded from.
func (s *Script) Path() string {
	return s.path
}

// Close shuts down broadcasting. A background reader still working on the
// script will notice and abandon the remainder.
func (s *Script) Close() error {
	s.closeCast()
	return nil
}

func (s *Script) closeCast() {
	s.closeOnce.Do(func() { s.cast.Close() })
}

// Replay loads a script and runs every command against the session,
// returning the non-empty answers in order. Commands a session cannot act
// on contribute the usual invalid-command answer.
func Replay(name string, session *repl.Session) ([]string, error) {
	if session == nil {
		return nil, repl.ErrNoSession
	}
	script, err := Load(name)
	if err != nil {
		return nil, err
	}
	var answers []string
	for cmd := range script.Subscribe() {
		answer, err := session.Exec(cmd)
		if err != nil {
			answer = repl.InvalidAnswer
		}
		if answer != "" {
			answers = append(answers, answer)
		}
	}
	return answers, script.Err()
}
