package machine

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// Machine is the simulation context of the stack machine.
type Machine struct {
	Stack Stack  // Operand stack.
	Log   Log    // Operation log, most recent first.
	Input string // Text staged for the next PUSH.
}

// NewMachine creates a machine keeping up to logCapacity log entries.
// A non-positive capacity selects LOG_DEFAULT_CAPACITY.
func NewMachine(logCapacity int) (m *Machine) {
	m = &Machine{}
	m.Log.Capacity = logCapacity
	m.Log.Reset(Entry{Text: f("simulator ready")})

	return
}

// note records a successful operation.
func (m *Machine) note(text string) {
	log.WithField("depth", m.Stack.Depth()).Debugf("machine: %v", text)
	m.Log.Add(Entry{Text: text})
}

// fail records a failed operation, and returns its error.
func (m *Machine) fail(err error) error {
	log.WithField("depth", m.Stack.Depth()).Debugf("machine: %v", err)
	m.Log.Add(Entry{Text: f("ERROR: %v", err), Err: err})
	return err
}

// Stage sets the input for the next PushInput.
func (m *Machine) Stage(text string) {
	m.Input = text
}

// Push parses text as a number and pushes it.
func (m *Machine) Push(text string) (value float64, err error) {
	value, err = ParseNumber(text)
	if err != nil {
		err = m.fail(err)
		return
	}

	m.Stack.Push(value)
	m.note(f("PUSH %v", FormatNumber(value)))

	return
}

// PushInput pushes the staged input. The input is cleared only on success.
func (m *Machine) PushInput() (value float64, err error) {
	value, err = m.Push(m.Input)
	if err == nil {
		m.Input = ""
	}

	return
}

// Pop removes and returns the top of the stack.
func (m *Machine) Pop() (value float64, err error) {
	value, ok := m.Stack.Pop()
	if !ok {
		err = m.fail(ErrStackUnderflow{Op: OP_POP, Need: 1})
		return
	}

	m.note(f("POP %v", FormatNumber(value)))

	return
}

// BinaryOp pops the right operand b, then the left operand a, and pushes
// a op b. On failure both operands are left on the stack.
func (m *Machine) BinaryOp(op Op) (value float64, err error) {
	if !op.Binary() {
		err = m.fail(ErrNotBinary(op))
		return
	}

	if m.Stack.Depth() < 2 {
		err = m.fail(ErrStackUnderflow{Op: op, Need: 2, Have: m.Stack.Depth()})
		return
	}

	b, _ := m.Stack.Pop()
	a, _ := m.Stack.Pop()

	switch op {
	case OP_ADD:
		value = a + b
	case OP_SUB:
		value = a - b
	case OP_MUL:
		value = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			break
		}
		value = a / b
	}

	if err == nil && math.IsNaN(value) {
		err = ErrInvalidResult(op)
	}

	if err != nil {
		m.Stack.Push(a)
		m.Stack.Push(b)
		value = 0
		err = m.fail(err)
		return
	}

	m.Stack.Push(value)

	result := FormatNumber(value)
	m.note(f("%v: %v %v %v = %v. Result %v on the stack.",
		op, FormatNumber(a), op.Symbol(), FormatNumber(b), result, result))

	return
}

// Apply runs an op. PUSH pushes the staged input.
func (m *Machine) Apply(op Op) (value float64, err error) {
	switch op {
	case OP_PUSH:
		return m.PushInput()
	case OP_POP:
		return m.Pop()
	case OP_CLEAR:
		m.Clear()
		return
	}

	return m.BinaryOp(op)
}

// Enabled reports whether the control for op would be available.
// Operations check the stack depth themselves regardless.
func (m *Machine) Enabled(op Op) bool {
	return m.Stack.Depth() >= op.Need()
}

// Clear empties the stack and the staged input, and restarts the log.
func (m *Machine) Clear() {
	log.Debug("machine: clear")

	m.Stack.Reset()
	m.Input = ""
	m.Log.Reset(Entry{Text: f("simulator cleared and ready")})
}
