package script

import (
	"iter"
	"strings"

	"github.com/ezrec/stackm/machine"
)

// Line is a single command of a script, with its source location.
type Line struct {
	LineNo  int
	Words   []string
	Op      machine.Op
	Operand string // PUSH operand, after equate and $() expansion.
}

func (line Line) String() string {
	if line.Op == machine.OP_PUSH {
		return line.Op.String() + " " + line.Operand
	}
	return line.Op.String()
}

type Program struct {
	Lines []Line
}

// Find returns the command parsed from a source line, if any.
func (prog *Program) Find(lineno int) (line *Line) {
	for n := range prog.Lines {
		if prog.Lines[n].LineNo == lineno {
			return &prog.Lines[n]
		}
	}

	return
}

// Steps iterates over the commands with their source line numbers.
func (prog *Program) Steps() iter.Seq2[int, Line] {
	return func(yield func(lineno int, line Line) bool) {
		for _, line := range prog.Lines {
			if !yield(line.LineNo, line) {
				return
			}
		}
	}
}

// String lists the expanded program, one command per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, line := range prog.Lines {
		text.WriteString(line.String())
		text.WriteString("\n")
	}

	return text.String()
}
