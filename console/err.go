package console

import (
	"github.com/ezrec/stackm/translate"
)

var f = translate.From

// ErrOperator is a shell operator found unquoted on a command line.
type ErrOperator string

func (err ErrOperator) Error() string {
	return f("unsupported operator %q", string(err))
}
