package machine

import (
	"github.com/ezrec/stackm/translate"
)

var f = translate.From

// ErrDivisionByZero is returned by DIV when the right operand is zero.
var ErrDivisionByZero error = errDivisionByZero{}

type errDivisionByZero struct{}

func (errDivisionByZero) Error() string {
	return f("division by zero")
}

// ErrInvalidOperand is the text a PUSH could not parse as a number.
type ErrInvalidOperand string

func (err ErrInvalidOperand) Error() string {
	return f("invalid value for PUSH: %q", string(err))
}

func (err ErrInvalidOperand) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidOperand)
	return
}

// ErrStackUnderflow is returned when an op needs more values than the stack holds.
type ErrStackUnderflow struct {
	Op   Op
	Need int
	Have int
}

func (err ErrStackUnderflow) Error() string {
	if err.Need == 1 {
		return f("stack empty, cannot %v", err.Op)
	}
	return f("stack needs %d operands for %v", err.Need, err.Op)
}

func (err ErrStackUnderflow) Is(target error) (ok bool) {
	_, ok = target.(ErrStackUnderflow)
	return
}

// ErrInvalidResult is returned when an arithmetic op yields NaN.
type ErrInvalidResult Op

func (err ErrInvalidResult) Error() string {
	return f("result of %v is not a number", Op(err))
}

func (err ErrInvalidResult) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidResult)
	return
}

// ErrNotBinary is returned when BinaryOp is given a non-arithmetic op.
type ErrNotBinary Op

func (err ErrNotBinary) Error() string {
	return f("%v is not an arithmetic op", Op(err))
}
