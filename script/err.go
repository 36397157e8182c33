package script

import (
	"github.com/ezrec/stackm/translate"
)

var f = translate.From

// errText is a fixed message, translated when the error is printed.
type errText string

func (err errText) Error() string {
	return f(string(err))
}

var (
	ErrEquateSyntax    error = errText(".equ syntax")
	ErrEquateDuplicate error = errText(".equ duplicated")
	ErrMacroSyntax     error = errText(".macro syntax")
	ErrMacroNesting    error = errText(".macro in .macro prohibited")
	ErrMacroDuplicate  error = errText(".macro duplicated")
	ErrMacroLonely     error = errText(".macro without .endm")
	ErrMacroLonelyEndm error = errText(".endm without .macro")
	ErrExtraArgs       error = errText("excessive arguments")
	ErrOperandMissing  error = errText("operand missing")
)

type ErrCommandInvalid string

func (err ErrCommandInvalid) Error() string {
	return f("'%v' is not a command", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
