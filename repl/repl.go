package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ErrNoSession flags a driver that was started without a session.
var ErrNoSession = errors.New("repl: no session")

// Tone classifies REPL output for colorization.
type Tone int

// The tones a palette may colorize.
const (
	PromptTone Tone = iota
	AnswerTone
	InvalidTone
)

func makeDefaultPalette() map[Tone]*color.Color {
	palette := map[Tone]*color.Color{
		PromptTone:  color.New(color.FgBlue),
		AnswerTone:  color.New(color.FgGreen),
		InvalidTone: color.New(color.FgRed),
	}
	return palette
}

// REPL drives a session over a line-based reader/writer pair.
//
// When Interactive is set, answers are colorized through the palette and a
// short usage banner precedes the prompt loop. NewREPL preselects
// Interactive by probing whether stdin is a terminal, so scripted runs stay
// free of escape sequences.
type REPL struct {
	Interactive bool
	session     *Session
	colors      map[Tone]*color.Color
}

// NewREPL creates a driver for a session. colors maps tones to display
// colors and may be nil, selecting a default palette.
func NewREPL(session *Session, colors map[Tone]*color.Color) *REPL {
	r := &REPL{
		Interactive: term.IsTerminal(0),
		session:     session,
		colors:      makeDefaultPalette(),
	}
	if colors != nil {
		r.colors = colors
	}
	return r
}

// Run reads protocol lines from in until EOF, answering on out. The prompt
// is written before every read attempt, so a trailing prompt precedes the
// end of the stream.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	if r.session == nil {
		return ErrNoSession
	}
	if r.Interactive {
		r.banner(out)
	}
	scanner := bufio.NewScanner(in)
	for {
		r.print(out, PromptTone, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		answer := r.session.Do(line)
		if answer == "" {
			continue
		}
		tone := AnswerTone
		if answer == InvalidAnswer {
			tone = InvalidTone
		}
		r.print(out, tone, answer+"\n")
	}
	return scanner.Err()
}

// banner writes a one-line usage hint, trimmed to the terminal width.
func (r *REPL) banner(out io.Writer) {
	hint := fmt.Sprintf("range tree with %d slots; commands: s|a|m|M <start> <end> <arg>",
		r.session.Size())
	width := 65
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		width = w
	}
	if len(hint) > width {
		hint = hint[:width]
	}
	r.print(out, AnswerTone, hint+"\n")
}

func (r *REPL) print(out io.Writer, tone Tone, s string) {
	if r.Interactive {
		if c, ok := r.colors[tone]; ok {
			c.Fprint(out, s)
			return
		}
	}
	io.WriteString(out, s)
}
