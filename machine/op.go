package machine

import (
	"strings"
)

// Op is a command understood by the machine.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_PUSH  = Op(0) // PUSH
	OP_POP   = Op(1) // POP
	OP_ADD   = Op(2) // ADD
	OP_SUB   = Op(3) // SUB
	OP_MUL   = Op(4) // MUL
	OP_DIV   = Op(5) // DIV
	OP_CLEAR = Op(6) // CLEAR
)

// opMap maps command names to ops.
var opMap = map[string]Op{
	"push":  OP_PUSH,
	"pop":   OP_POP,
	"add":   OP_ADD,
	"sub":   OP_SUB,
	"mul":   OP_MUL,
	"div":   OP_DIV,
	"clear": OP_CLEAR,
}

// ParseOp looks up an op by name, ignoring case.
func ParseOp(word string) (op Op, ok bool) {
	op, ok = opMap[strings.ToLower(word)]
	return
}

// Ops lists all ops in control order.
func Ops() []Op {
	return []Op{OP_PUSH, OP_POP, OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_CLEAR}
}

// Binary returns true for the arithmetic ops.
func (op Op) Binary() bool {
	return op >= OP_ADD && op <= OP_DIV
}

// Need returns the stack depth the op requires.
func (op Op) Need() int {
	switch {
	case op == OP_POP:
		return 1
	case op.Binary():
		return 2
	}
	return 0
}

// Symbol returns the infix operator of an arithmetic op.
func (op Op) Symbol() string {
	switch op {
	case OP_ADD:
		return "+"
	case OP_SUB:
		return "-"
	case OP_MUL:
		return "*"
	case OP_DIV:
		return "/"
	}
	return ""
}
