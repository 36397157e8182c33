package session

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/ezrec/stackm/machine"
)

var (
	topLabel   = color.New(color.FgCyan, color.Bold).SprintFunc()
	errorEntry = color.New(color.FgRed).SprintFunc()
	disabled   = color.New(color.FgHiBlack).SprintFunc()
)

// formatEntry renders a log entry as a '> ' prefixed line.
func formatEntry(entry machine.Entry) string {
	text := "> " + entry.Text
	if entry.Failed() {
		return errorEntry(text)
	}
	return text
}

// RenderStack writes the stack top to bottom, right aligned, labelling the top.
func (s *Session) RenderStack() (err error) {
	if s.Stack.Empty() {
		_, err = fmt.Fprintln(s.Output, f("(empty stack)"))
		return
	}

	width := 0
	for _, value := range s.Stack.TopDown() {
		width = max(width, runewidth.StringWidth(machine.FormatNumber(value)))
	}

	for depth, value := range s.Stack.TopDown() {
		line := "  " + runewidth.FillLeft(machine.FormatNumber(value), width)
		if depth == 0 {
			line += "  " + topLabel(f("TOP"))
		}
		_, err = fmt.Fprintln(s.Output, line)
		if err != nil {
			return
		}
	}

	return
}

// RenderLog writes the log, most recent entry first.
func (s *Session) RenderLog() (err error) {
	for entry := range s.Log.Entries() {
		_, err = fmt.Fprintln(s.Output, formatEntry(entry))
		if err != nil {
			return
		}
	}

	return
}

// RenderControls writes the commands, dimming those whose stack depth
// requirement is not met.
func (s *Session) RenderControls() (err error) {
	var words []string
	for _, op := range machine.Ops() {
		name := strings.ToLower(op.String())
		if !s.Enabled(op) {
			name = disabled(name)
		}
		words = append(words, name)
	}
	words = append(words, "input", "stack", "log", "state", "help")

	_, err = fmt.Fprintf(s.Output, "%v %v\n", f("available commands:"), strings.Join(words, " "))

	return
}
