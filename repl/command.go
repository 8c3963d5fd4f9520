package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCommand flags an input line that does not follow the four-token
// protocol shape.
var ErrBadCommand = errors.New("repl: malformed command line")

// Known command codes. Every other code parses fine but is answered with an
// invalid-command message when executed.
const (
	CodeSet byte = 's'
	CodeAdd byte = 'a'
	CodeMin byte = 'm'
	CodeMax byte = 'M'
)

// Command is one decoded line of the harness protocol.
type Command struct {
	Code byte
	From int
	To   int
	Arg  int64
}

func (cmd Command) String() string {
	return fmt.Sprintf("%c %d %d %d", cmd.Code, cmd.From, cmd.To, cmd.Arg)
}

// Parse decodes a protocol line into a Command. It enforces shape only:
// exactly four tokens, a single-character code and three integers. Whether
// the code means anything is decided at execution time.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Command{}, fmt.Errorf("%w: expected 4 tokens, got %d", ErrBadCommand, len(fields))
	}
	if len(fields[0]) != 1 {
		return Command{}, fmt.Errorf("%w: command code must be a single character, got %q", ErrBadCommand, fields[0])
	}
	from, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: range start %q is not an integer", ErrBadCommand, fields[1])
	}
	to, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("%w: range end %q is not an integer", ErrBadCommand, fields[2])
	}
	arg, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: argument %q is not an integer", ErrBadCommand, fields[3])
	}
	return Command{
		Code: fields[0][0],
		From: from,
		To:   to,
		Arg:  arg,
	}, nil
}
