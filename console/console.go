// Package console provides line oriented terminal I/O for the interactive
// stack machine session.
package console

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
)

// Console reads command lines from Input, prompting on Output when both are
// a terminal.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Prompt string

	err error
}

// isTerminal returns true if v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Interactive returns true if input and output are both a terminal.
func (con *Console) Interactive() bool {
	return isTerminal(con.Input) && isTerminal(con.Output)
}

// Lines returns an iterator over input lines. When interactive, the prompt
// is written before each line is read.
func (con *Console) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		prompt := con.Interactive() && len(con.Prompt) > 0
		scanner := bufio.NewScanner(con.Input)
		for {
			if prompt {
				fmt.Fprint(con.Output, con.Prompt)
			}
			if !scanner.Scan() {
				con.err = scanner.Err()
				return
			}
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

// Err returns the read error that ended Lines, if any.
func (con *Console) Err() error {
	return con.err
}

// Words splits a line shell style. An unquoted ';' ends the command, so
// the remainder of the line is a comment. Any other unquoted operator
// ('&', '|', '<', '>') is an error.
func Words(line string) (words []string, err error) {
	parser := shellwords.NewParser()
	words, err = parser.Parse(line)
	if err != nil || parser.Position < 0 {
		return
	}

	// Position is a rune index. For 'N>' it points at the digit N.
	rest := string([]rune(line)[parser.Position:])
	if rest[0] == ';' {
		return
	}

	words = nil
	n := strings.IndexAny(rest, ";&|<>")
	err = ErrOperator(rest[n : n+1])

	return
}
