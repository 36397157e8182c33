package session

import (
	"github.com/ezrec/stackm/translate"
)

var f = translate.From

// ErrRuntime indicates the script location of a failed command.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrCommandUnknown string

func (err ErrCommandUnknown) Error() string {
	return f("unknown command %q", string(err))
}

type ErrArgs string

func (err ErrArgs) Error() string {
	return f("%v takes no arguments", string(err))
}
