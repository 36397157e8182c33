// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package session drives a stack machine from user commands and scripts,
// and renders its stack and log views.
package session

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/stackm/machine"
	"github.com/ezrec/stackm/script"
)

// Session state. Machine + output surface.
type Session struct {
	*machine.Machine           // Reference to the machine simulation.
	Output           io.Writer // Destination of views and echoed log entries.
	Strict           bool      // If set, Run stops at the first failing command.
	Echo             bool      // If set, the latest log entry is written after each op.
}

// NewSession creates a new session writing to output.
func NewSession(output io.Writer, logCapacity int) (s *Session) {
	s = &Session{
		Machine: machine.NewMachine(logCapacity),
		Output:  output,
	}

	return
}

type handler func(s *Session, name string, args []string) error

var commands map[string]handler

func init() {
	commands = map[string]handler{
		"push":  (*Session).cmdPush,
		"input": (*Session).cmdInput,
		"stack": noArgs((*Session).RenderStack),
		"log":   noArgs((*Session).RenderLog),
		"state": noArgs((*Session).WriteState),
		"help":  noArgs((*Session).RenderControls),
	}
	for _, op := range machine.Ops() {
		if op == machine.OP_PUSH {
			continue
		}
		commands[strings.ToLower(op.String())] = noArgs(func(s *Session) error {
			return s.apply(op)
		})
	}
}

func noArgs(fn func(s *Session) error) handler {
	return func(s *Session, name string, args []string) error {
		if len(args) > 0 {
			return ErrArgs(name)
		}
		return fn(s)
	}
}

// Execute runs one command given as words. Machine failures are returned
// after they have been logged.
func (s *Session) Execute(words []string) (err error) {
	if len(words) == 0 {
		return
	}

	name := strings.ToLower(words[0])
	cmd, ok := commands[name]
	if !ok {
		err = ErrCommandUnknown(words[0])
		return
	}

	log.WithFields(log.Fields{
		"command": name,
		"args":    words[1:],
		"depth":   s.Stack.Depth(),
	}).Debug("session: execute")

	err = cmd(s, name, words[1:])

	return
}

// cmdPush stages its arguments, if any, then pushes the staged input.
func (s *Session) cmdPush(name string, args []string) error {
	if len(args) > 0 {
		s.Stage(strings.Join(args, " "))
	}
	return s.apply(machine.OP_PUSH)
}

func (s *Session) cmdInput(name string, args []string) error {
	s.Stage(strings.Join(args, " "))
	return nil
}

// apply runs an op on the machine. Disabled controls are still dispatched;
// the machine checks stack depth itself.
func (s *Session) apply(op machine.Op) (err error) {
	if !s.Enabled(op) {
		log.WithField("op", op).Debug("session: control disabled")
	}

	_, err = s.Apply(op)

	if s.Echo {
		s.echo()
	}

	return
}

// echo writes the latest log entry.
func (s *Session) echo() {
	entry, ok := s.Log.Latest()
	if ok {
		fmt.Fprintln(s.Output, formatEntry(entry))
	}
}

// Run replays a program. Failing commands are logged; in Strict mode the
// first one ends the run.
func (s *Session) Run(prog *script.Program) (err error) {
	for lineno, line := range prog.Steps() {
		if line.Op == machine.OP_PUSH {
			s.Stage(line.Operand)
		}

		err = s.apply(line.Op)
		if err != nil && s.Strict {
			err = &ErrRuntime{LineNo: lineno, Err: err}
			return
		}
	}

	err = nil
	return
}
